package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/learnhub/admin-console/internal/apiclient"
	"github.com/learnhub/admin-console/internal/core"
	"github.com/learnhub/admin-console/internal/domain/model"
	svcerrors "github.com/learnhub/admin-console/internal/errors"
	"github.com/learnhub/admin-console/internal/mocks"
)

// facadeCall is one façade operation plus the request it is expected to build.
type facadeCall struct {
	name     string
	invoke   func(ctx context.Context, r core.Requester) error
	base     string
	method   string
	path     string
	fallback string
}

func facadeCalls() []facadeCall {
	subjects := func(r core.Requester) *SubjectService { return NewSubjectService(SubjectServiceOptions{Requester: r}) }
	exams := func(r core.Requester) *ExamService { return NewExamService(ExamServiceOptions{Requester: r}) }
	library := func(r core.Requester) *LibraryService { return NewLibraryService(LibraryServiceOptions{Requester: r}) }
	chat := func(r core.Requester) *ChatService { return NewChatService(ChatServiceOptions{Requester: r}) }
	helpDesk := func(r core.Requester) *HelpDeskService { return NewHelpDeskService(HelpDeskServiceOptions{Requester: r}) }
	wallet := func(r core.Requester) *WalletService { return NewWalletService(WalletServiceOptions{Requester: r}) }
	quizzes := func(r core.Requester) *QuizService { return NewQuizService(QuizServiceOptions{Requester: r}) }

	return []facadeCall{
		{"subjects list", func(ctx context.Context, r core.Requester) error {
			_, err := subjects(r).List(ctx)
			return err
		}, "/subject", http.MethodGet, "", "Failed to retrieve subjects"},
		{"subjects by level", func(ctx context.Context, r core.Requester) error {
			_, err := subjects(r).ListByLevel(ctx, "A Level")
			return err
		}, "/subject", http.MethodGet, "/level/A%20Level", "Failed to retrieve subjects"},
		{"subject update", func(ctx context.Context, r core.Requester) error {
			_, err := subjects(r).Update(ctx, "s1", &model.UpdateSubjectRequest{})
			return err
		}, "/subject", http.MethodPut, "/s1", "Failed to update subject"},
		{"subject delete", func(ctx context.Context, r core.Requester) error {
			return subjects(r).Delete(ctx, "s1")
		}, "/subject", http.MethodDelete, "/s1", "Failed to delete subject"},
		{"exam get", func(ctx context.Context, r core.Requester) error {
			_, err := exams(r).Get(ctx, "e/1")
			return err
		}, "/exam", http.MethodGet, "/e%2F1", "Failed to retrieve exam"},
		{"exam create", func(ctx context.Context, r core.Requester) error {
			_, err := exams(r).Create(ctx, &model.CreateExamRequest{Title: "Finals"})
			return err
		}, "/exam", http.MethodPost, "", "Failed to create exam"},
		{"books list", func(ctx context.Context, r core.Requester) error {
			_, err := library(r).List(ctx)
			return err
		}, "/library-book", http.MethodGet, "", "Failed to retrieve books"},
		{"book delete", func(ctx context.Context, r core.Requester) error {
			return library(r).Delete(ctx, "b1")
		}, "/library-book", http.MethodDelete, "/b1", "Failed to delete book"},
		{"chat groups", func(ctx context.Context, r core.Requester) error {
			_, err := chat(r).ListGroups(ctx)
			return err
		}, "/community-chat", http.MethodGet, "/groups", "Failed to retrieve chat groups"},
		{"chat messages", func(ctx context.Context, r core.Requester) error {
			_, err := chat(r).ListMessages(ctx, "g1")
			return err
		}, "/community-chat", http.MethodGet, "/groups/g1/messages", "Failed to retrieve messages"},
		{"chat send", func(ctx context.Context, r core.Requester) error {
			_, err := chat(r).SendMessage(ctx, "g1", &model.SendChatMessageRequest{Text: "hi"})
			return err
		}, "/community-chat", http.MethodPost, "/groups/g1/messages", "Failed to send message"},
		{"chat delete message", func(ctx context.Context, r core.Requester) error {
			return chat(r).DeleteMessage(ctx, "m1")
		}, "/community-chat", http.MethodDelete, "/messages/m1", "Failed to delete message"},
		{"chat delete group", func(ctx context.Context, r core.Requester) error {
			return chat(r).DeleteGroup(ctx, "g1")
		}, "/community-chat", http.MethodDelete, "/groups/g1", "Failed to delete chat group"},
		{"help-desk get", func(ctx context.Context, r core.Requester) error {
			_, err := helpDesk(r).GetConversation(ctx, "c1")
			return err
		}, "/help-desk", http.MethodGet, "/conversations/c1", "Failed to retrieve conversation"},
		{"help-desk reply", func(ctx context.Context, r core.Requester) error {
			_, err := helpDesk(r).Reply(ctx, "c1", &model.ReplyRequest{Text: "on it"})
			return err
		}, "/help-desk", http.MethodPost, "/conversations/c1/reply", "Failed to send reply"},
		{"help-desk close", func(ctx context.Context, r core.Requester) error {
			_, err := helpDesk(r).Close(ctx, "c1")
			return err
		}, "/help-desk", http.MethodPatch, "/conversations/c1/close", "Failed to close conversation"},
		{"wallets list", func(ctx context.Context, r core.Requester) error {
			_, err := wallet(r).List(ctx)
			return err
		}, "/wallet", http.MethodGet, "", "Failed to retrieve wallets"},
		{"wallet by user", func(ctx context.Context, r core.Requester) error {
			_, err := wallet(r).GetByUser(ctx, "u1")
			return err
		}, "/wallet", http.MethodGet, "/user/u1", "Failed to retrieve wallet"},
		{"wallet transactions", func(ctx context.Context, r core.Requester) error {
			_, err := wallet(r).Transactions(ctx, "w1")
			return err
		}, "/wallet", http.MethodGet, "/w1/transactions", "Failed to retrieve transactions"},
		{"wallet credit", func(ctx context.Context, r core.Requester) error {
			_, err := wallet(r).Credit(ctx, &model.CreditRequest{UserID: "u1", Amount: 10})
			return err
		}, "/wallet", http.MethodPost, "/credit", "Failed to credit wallet"},
		{"quizzes by subject", func(ctx context.Context, r core.Requester) error {
			_, err := quizzes(r).ListBySubject(ctx, "s1")
			return err
		}, "/end-lesson-quiz", http.MethodGet, "/subject/s1", "Failed to retrieve quizzes"},
		{"quiz create", func(ctx context.Context, r core.Requester) error {
			_, err := quizzes(r).Create(ctx, &model.CreateQuizRequest{Title: "Q1"})
			return err
		}, "/end-lesson-quiz", http.MethodPost, "", "Failed to create quiz"},
		{"quiz delete", func(ctx context.Context, r core.Requester) error {
			return quizzes(r).Delete(ctx, "q1")
		}, "/end-lesson-quiz", http.MethodDelete, "/q1", "Failed to delete quiz"},
	}
}

func TestFacades_BuildExpectedRequests(t *testing.T) {
	for _, tc := range facadeCalls() {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			requester := mocks.NewMockRequester(ctrl)

			requester.EXPECT().
				Do(gomock.Any(), tc.base, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, req apiclient.Request) (json.RawMessage, error) {
					assert.Equal(t, tc.method, req.Method)
					assert.Equal(t, tc.path, req.Path)
					assert.Equal(t, tc.fallback, req.Fallback)
					assert.True(t, req.RequiresAuth())
					return nil, nil
				})

			require.NoError(t, tc.invoke(context.Background(), requester))
		})
	}
}

func TestFacades_PropagateServiceErrorUnchanged(t *testing.T) {
	for _, tc := range facadeCalls() {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			requester := mocks.NewMockRequester(ctrl)
			want := svcerrors.Conflict("already exists")
			requester.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, want)

			err := tc.invoke(context.Background(), requester)
			assert.Same(t, want, err)
		})
	}
}

func TestFacades_UnauthorizedClearsSessionForEveryFamily(t *testing.T) {
	for _, tc := range facadeCalls() {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.signIn(t, "T")

			u, err := url.Parse(tc.base + tc.path)
			require.NoError(t, err)
			h.backend.Handle(tc.method, u.Path, http.StatusUnauthorized, map[string]any{"message": "Session expired, please log in"})

			err = tc.invoke(context.Background(), h.exec)
			svcErr, ok := svcerrors.As(err)
			require.True(t, ok)
			assert.Equal(t, svcerrors.KindUnauthorized, svcErr.Kind)
			assert.Equal(t, "Session expired, please log in", svcErr.Message)

			_, hasCredential := h.credential()
			assert.False(t, hasCredential)
		})
	}
}

func TestFacades_FallbackWhenBackendSilent(t *testing.T) {
	for _, tc := range facadeCalls() {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.signIn(t, "T")

			u, err := url.Parse(tc.base + tc.path)
			require.NoError(t, err)
			h.backend.Handle(tc.method, u.Path, http.StatusTeapot, nil)

			err = tc.invoke(context.Background(), h.exec)
			svcErr, ok := svcerrors.As(err)
			require.True(t, ok)
			assert.Equal(t, svcerrors.KindUnknown, svcErr.Kind)
			assert.Equal(t, tc.fallback, svcErr.Message)
			assert.Equal(t, http.StatusTeapot, svcErr.Status)
		})
	}
}
