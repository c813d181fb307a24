package service

import (
	"context"
	"net/http"

	"github.com/learnhub/admin-console/internal/apiclient"
	"github.com/learnhub/admin-console/internal/core"
	"github.com/learnhub/admin-console/internal/domain/model"
)

const (
	chatBasePath = "/community-chat"

	// Group creation accepts the icon as "image"; older deployments read "icon".
	groupIconField       = "image"
	groupLegacyIconField = "icon"
)

// ChatServiceOptions groups dependencies for ChatService.
type ChatServiceOptions struct {
	Requester core.Requester // Required
}

// ChatService is the client for community chat groups and messages.
type ChatService struct {
	requester core.Requester
}

// NewChatService constructs a new ChatService.
func NewChatService(opts ChatServiceOptions) *ChatService {
	if opts.Requester == nil {
		panic("requester is required")
	}
	return &ChatService{requester: opts.Requester}
}

func groupPath(id string) string {
	return "/groups" + idPath(id)
}

// ListGroups returns every chat group.
func (s *ChatService) ListGroups(ctx context.Context) ([]model.ChatGroup, error) {
	return call[[]model.ChatGroup](ctx, s.requester, chatBasePath,
		apiclient.Get("/groups", "Failed to retrieve chat groups"))
}

// GetGroup returns a chat group by id.
func (s *ChatService) GetGroup(ctx context.Context, id string) (*model.ChatGroup, error) {
	return call[*model.ChatGroup](ctx, s.requester, chatBasePath,
		apiclient.Get(groupPath(id), "Failed to retrieve chat group"))
}

// CreateGroup creates a group as a multipart form with an optional icon.
func (s *ChatService) CreateGroup(ctx context.Context, req *model.CreateChatGroupRequest) (*model.ChatGroup, error) {
	form := apiclient.NewForm().
		Field("name", req.Name).
		OptionalField("description", req.Description).
		OptionalField("subject", req.Subject)
	if req.Icon != nil {
		form.File(groupIconField, apiclient.File{
			Filename:    req.Icon.Filename,
			ContentType: req.Icon.ContentType,
			Data:        req.Icon.Data,
		}, groupLegacyIconField)
	}
	return call[*model.ChatGroup](ctx, s.requester, chatBasePath,
		apiclient.Upload(http.MethodPost, "/groups", form, "Failed to create chat group"))
}

// DeleteGroup deletes a chat group.
func (s *ChatService) DeleteGroup(ctx context.Context, id string) error {
	return exec(ctx, s.requester, chatBasePath, apiclient.Delete(groupPath(id), "Failed to delete chat group"))
}

// ListMessages returns the messages posted to a group.
func (s *ChatService) ListMessages(ctx context.Context, groupID string) ([]model.ChatMessage, error) {
	return call[[]model.ChatMessage](ctx, s.requester, chatBasePath,
		apiclient.Get(groupPath(groupID)+"/messages", "Failed to retrieve messages"))
}

// SendMessage posts a message to a group as the signed-in admin.
func (s *ChatService) SendMessage(ctx context.Context, groupID string, req *model.SendChatMessageRequest) (*model.ChatMessage, error) {
	return call[*model.ChatMessage](ctx, s.requester, chatBasePath,
		apiclient.Post(groupPath(groupID)+"/messages", req, "Failed to send message"))
}

// DeleteMessage removes a message.
func (s *ChatService) DeleteMessage(ctx context.Context, messageID string) error {
	return exec(ctx, s.requester, chatBasePath,
		apiclient.Delete("/messages"+idPath(messageID), "Failed to delete message"))
}
