package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcerrors "github.com/learnhub/admin-console/internal/errors"
)

func TestDashboardService_Load(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "T")
	h.backend.Handle(http.MethodGet, "/subject", http.StatusOK, envelope([]map[string]any{{"_id": "s1"}, {"_id": "s2"}}))
	h.backend.Handle(http.MethodGet, "/exam", http.StatusOK, envelope([]map[string]any{{"_id": "e1"}}))
	h.backend.Handle(http.MethodGet, "/library-book", http.StatusOK, envelope([]map[string]any{}))
	h.backend.Handle(http.MethodGet, "/help-desk/conversations", http.StatusOK, envelope([]map[string]any{
		{"_id": "c1", "status": "open"},
	}))

	dash, err := NewDashboardService(DashboardServiceOptions{Requester: h.exec}).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, dash.Subjects, 2)
	assert.Len(t, dash.Exams, 1)
	assert.Empty(t, dash.Books)
	assert.Len(t, dash.OpenConversations, 1)
	assert.Len(t, h.backend.Requests(), 4)
}

func TestDashboardService_LoadFailure(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "T")
	h.backend.Handle(http.MethodGet, "/subject", http.StatusOK, envelope([]map[string]any{}))
	h.backend.Handle(http.MethodGet, "/exam", http.StatusOK, envelope([]map[string]any{}))
	h.backend.Handle(http.MethodGet, "/library-book", http.StatusInternalServerError, map[string]any{"message": "db down"})
	h.backend.Handle(http.MethodGet, "/help-desk/conversations", http.StatusOK, envelope([]map[string]any{}))

	dash, err := NewDashboardService(DashboardServiceOptions{Requester: h.exec}).Load(context.Background())
	assert.Nil(t, dash)
	require.Error(t, err)
	assert.True(t, svcerrors.IsServerFault(err) || svcerrors.IsNetwork(err))
}
