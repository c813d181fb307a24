package service

import (
	"context"
	"net/url"

	"github.com/learnhub/admin-console/internal/apiclient"
	"github.com/learnhub/admin-console/internal/core"
	"github.com/learnhub/admin-console/internal/domain/model"
)

const helpDeskBasePath = "/help-desk"

// HelpDeskServiceOptions groups dependencies for HelpDeskService.
type HelpDeskServiceOptions struct {
	Requester core.Requester // Required
}

// HelpDeskService is the client for student support conversations.
type HelpDeskService struct {
	requester core.Requester
}

// NewHelpDeskService constructs a new HelpDeskService.
func NewHelpDeskService(opts HelpDeskServiceOptions) *HelpDeskService {
	if opts.Requester == nil {
		panic("requester is required")
	}
	return &HelpDeskService{requester: opts.Requester}
}

func conversationPath(id string) string {
	return "/conversations" + idPath(id)
}

// ListConversations returns conversations, filtered by status when non-empty.
func (s *HelpDeskService) ListConversations(ctx context.Context, status model.ConversationStatus) ([]model.Conversation, error) {
	req := apiclient.Get("/conversations", "Failed to retrieve conversations")
	if status != "" {
		req.Query = url.Values{"status": []string{string(status)}}
	}
	return call[[]model.Conversation](ctx, s.requester, helpDeskBasePath, req)
}

// GetConversation returns one conversation with its messages.
func (s *HelpDeskService) GetConversation(ctx context.Context, id string) (*model.Conversation, error) {
	return call[*model.Conversation](ctx, s.requester, helpDeskBasePath,
		apiclient.Get(conversationPath(id), "Failed to retrieve conversation"))
}

// Reply appends an admin message to a conversation.
func (s *HelpDeskService) Reply(ctx context.Context, id string, req *model.ReplyRequest) (*model.Conversation, error) {
	return call[*model.Conversation](ctx, s.requester, helpDeskBasePath,
		apiclient.Post(conversationPath(id)+"/reply", req, "Failed to send reply"))
}

// Close marks a conversation as resolved.
func (s *HelpDeskService) Close(ctx context.Context, id string) (*model.Conversation, error) {
	return call[*model.Conversation](ctx, s.requester, helpDeskBasePath,
		apiclient.Patch(conversationPath(id)+"/close", nil, "Failed to close conversation"))
}
