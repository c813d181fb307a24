package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/admin-console/internal/domain/model"
	svcerrors "github.com/learnhub/admin-console/internal/errors"
	"github.com/learnhub/admin-console/internal/testutil"
)

func TestSubjectService_CRUD(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "T")
	h.backend.Handle(http.MethodGet, "/subject", http.StatusOK, envelope([]map[string]any{
		{"_id": "s1", "name": "Physics", "level": "O Level"},
	}))
	h.backend.Handle(http.MethodGet, "/subject/s1", http.StatusOK, envelope(map[string]any{"_id": "s1", "name": "Physics"}))
	h.backend.Handle(http.MethodPut, "/subject/s1", http.StatusOK, envelope(map[string]any{"_id": "s1", "name": "Physics II"}))
	h.backend.Handle(http.MethodDelete, "/subject/s1", http.StatusNoContent, nil)

	svc := NewSubjectService(SubjectServiceOptions{Requester: h.exec})
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "O Level", list[0].Level)

	got, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Physics", got.Name)

	updated, err := svc.Update(ctx, "s1", &model.UpdateSubjectRequest{Name: testutil.StringPtr("Physics II")})
	require.NoError(t, err)
	assert.Equal(t, "Physics II", updated.Name)
	assert.JSONEq(t, `{"name":"Physics II"}`, string(h.backend.Last().Body))

	require.NoError(t, svc.Delete(ctx, "s1"))
}

func TestSubjectService_CreateWithoutSessionStillAttempts(t *testing.T) {
	h := newHarness(t)
	h.backend.Handle(http.MethodPost, "/subject", http.StatusUnauthorized, map[string]any{"message": "Not authorized, no token"})

	_, err := NewSubjectService(SubjectServiceOptions{Requester: h.exec}).
		Create(context.Background(), &model.CreateSubjectRequest{Name: "Physics", Level: "O Level"})

	assert.True(t, svcerrors.IsUnauthorized(err))
	assert.Equal(t, "Not authorized, no token", err.Error())
	require.Len(t, h.backend.Requests(), 1)
}

func TestSubjectService_MalformedSuccessBody(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "T")
	h.backend.Handle(http.MethodGet, "/subject", http.StatusOK, envelope("not a list"))

	_, err := NewSubjectService(SubjectServiceOptions{Requester: h.exec}).List(context.Background())
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, svcerrors.KindUnknown, svcErr.Kind)
	assert.Equal(t, "Failed to retrieve subjects", svcErr.Message)
}

func TestNewSubjectService_RequiresRequester(t *testing.T) {
	assert.Panics(t, func() { NewSubjectService(SubjectServiceOptions{}) })
}
