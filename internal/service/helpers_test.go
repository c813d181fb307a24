package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/learnhub/admin-console/internal/adapters/memory"
	"github.com/learnhub/admin-console/internal/apiclient"
	domainauth "github.com/learnhub/admin-console/internal/domain/auth"
	"github.com/learnhub/admin-console/internal/session"
	"github.com/learnhub/admin-console/internal/testutil"
)

// harness wires the real executor and session store to a fake backend.
type harness struct {
	backend  *testutil.Backend
	storage  *memory.Storage
	sessions *session.Store
	exec     *apiclient.Executor
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	backend := testutil.NewBackend(t)
	storage := memory.NewStorage()
	sessions := session.NewStore(session.StoreOptions{Storage: storage, Logger: logger})
	exec, err := apiclient.NewExecutor(apiclient.Config{
		BaseURL:  backend.URL(),
		Sessions: sessions,
		Logger:   logger,
	})
	require.NoError(t, err)

	return &harness{backend: backend, storage: storage, sessions: sessions, exec: exec}
}

// signIn seeds an authenticated session without a login round trip.
func (h *harness) signIn(t *testing.T, token string) {
	t.Helper()
	identity := &domainauth.Identity{ID: "adm-1", DisplayName: "Ada", Role: domainauth.RoleAdmin}
	require.NoError(t, h.sessions.SetSession(context.Background(), token, identity))
}

func (h *harness) credential() (string, bool) {
	return h.sessions.Credential()
}

// envelope wraps data the way the backend does on success.
func envelope(data any) map[string]any {
	return map[string]any{"success": true, "message": "ok", "data": data}
}
