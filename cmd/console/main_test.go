package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/admin-console/config"
	"github.com/learnhub/admin-console/internal/adapters/memory"
	"github.com/learnhub/admin-console/internal/bootstrap"
	svcerrors "github.com/learnhub/admin-console/internal/errors"
	"github.com/learnhub/admin-console/internal/testutil"
)

type cliHarness struct {
	backend *testutil.Backend
	out     *bytes.Buffer
	cmdCtx  *commandContext
}

func newCLIHarness(t *testing.T, stdin string) *cliHarness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend := testutil.NewBackend(t)

	services, err := bootstrap.BuildServices(context.Background(), bootstrap.ServiceDeps{
		API: config.APIConfig{
			BaseURL:                backend.URL(),
			AttemptUnauthenticated: true,
		},
		Storage: memory.NewStorage(),
		Logger:  logger,
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &cliHarness{
		backend: backend,
		out:     out,
		cmdCtx: &commandContext{
			Ctx:      context.Background(),
			Logger:   logger,
			Services: services,
			Out:      out,
			In:       strings.NewReader(stdin),
		},
	}
}

func (h *cliHarness) run(t *testing.T, name string, args ...string) error {
	t.Helper()
	cmd, ok := commands()[name]
	require.True(t, ok, "command %q not registered", name)
	return cmd.run(h.cmdCtx, args)
}

func TestCommandsAreRegisteredByName(t *testing.T) {
	for key, cmd := range commands() {
		assert.Equal(t, key, cmd.name)
		assert.NotEmpty(t, cmd.description, key)
		assert.NotNil(t, cmd.run, key)
	}
}

func TestPrintUsageIsSorted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printUsage(&buf))

	out := buf.String()
	require.Contains(t, out, "Usage: console <command>")
	assert.Less(t, strings.Index(out, "admins"), strings.Index(out, "wallets"))
}

func TestParseLoginFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing email", []string{"--password", "x"}, "--email is required"},
		{"missing password", []string{"--email", "a@b.c"}, "one of --password"},
		{"both password sources", []string{"--email", "a@b.c", "--password", "x", "--password-stdin"}, "mutually exclusive"},
		{"ok", []string{"--email", " a@b.c ", "--password", "x"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseLoginFlags(tt.args)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a@b.c", opts.Email)
		})
	}
}

func TestLoginThenWhoAmI(t *testing.T) {
	h := newCLIHarness(t, "s3cret\n")
	h.backend.Handle(http.MethodPost, "/admin/login", http.StatusOK, map[string]any{
		"data": map[string]any{
			"token": "T",
			"admin": map[string]any{"_id": "adm-1", "fullName": "Ada", "email": "ada@example.com", "role": "admin"},
		},
	})

	require.NoError(t, h.run(t, "login", "--email", "ada@example.com", "--password-stdin"))
	assert.Contains(t, h.out.String(), "Signed in as Ada <ada@example.com> [admin]")
	assert.JSONEq(t, `{"email":"ada@example.com","password":"s3cret"}`, string(h.backend.Last().Body))

	h.out.Reset()
	require.NoError(t, h.run(t, "whoami"))
	assert.Equal(t, "Ada <ada@example.com> [admin]\n", h.out.String())

	h.out.Reset()
	require.NoError(t, h.run(t, "logout"))
	h.out.Reset()
	require.NoError(t, h.run(t, "whoami"))
	assert.Equal(t, "Not signed in\n", h.out.String())
}

func TestSubjectsTable(t *testing.T) {
	h := newCLIHarness(t, "")
	h.backend.Handle(http.MethodGet, "/subject/level/JSS1", http.StatusOK, map[string]any{
		"data": []map[string]any{{"_id": "s1", "name": "Maths", "level": "JSS1"}},
	})

	require.NoError(t, h.run(t, "subjects", "--level", "JSS1"))
	out := h.out.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Maths")
}

func TestEmptyListPrintsNone(t *testing.T) {
	h := newCLIHarness(t, "")
	h.backend.Handle(http.MethodGet, "/wallet", http.StatusOK, map[string]any{"data": []any{}})

	require.NoError(t, h.run(t, "wallets"))
	assert.Equal(t, "(none)\n", h.out.String())
}

func TestBookUploadSendsDocument(t *testing.T) {
	h := newCLIHarness(t, "")
	h.backend.Handle(http.MethodPost, "/library-book/upload", http.StatusCreated, map[string]any{
		"data": map[string]any{"_id": "b1", "title": "Algebra"},
	})

	path := filepath.Join(t.TempDir(), "algebra.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	require.NoError(t, h.run(t, "book-upload", "--title", "Algebra", "--author", "Ada", "--file", path))
	assert.Equal(t, "Uploaded book b1\n", h.out.String())

	rec := h.backend.Last()
	assert.True(t, strings.HasPrefix(rec.Header.Get("Content-Type"), "multipart/form-data"))
	assert.Contains(t, string(rec.Body), `filename="algebra.pdf"`)
}

func TestBookPublishWithoutBlobStore(t *testing.T) {
	h := newCLIHarness(t, "")
	path := filepath.Join(t.TempDir(), "algebra.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	err := h.run(t, "book-publish", "--title", "Algebra", "--author", "Ada", "--file", path)
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, svcerrors.KindUnknown, svcErr.Kind)
	assert.Empty(t, h.backend.Requests())
}

func TestWalletCreditValidatesFlags(t *testing.T) {
	h := newCLIHarness(t, "")
	require.ErrorContains(t, h.run(t, "wallet-credit", "--amount", "5"), "--user is required")
	require.ErrorContains(t, h.run(t, "wallet-credit", "--user", "u1", "--amount", "0"), "greater than zero")
	assert.Empty(t, h.backend.Requests())
}

func TestHelpDeskRejectsUnknownStatus(t *testing.T) {
	h := newCLIHarness(t, "")
	require.ErrorContains(t, h.run(t, "help-desk", "--status", "pending"), "invalid --status")
}

func TestDashboardSummary(t *testing.T) {
	h := newCLIHarness(t, "")
	h.backend.Handle(http.MethodGet, "/subject", http.StatusOK, map[string]any{"data": []map[string]any{{"_id": "s1"}}})
	h.backend.Handle(http.MethodGet, "/exam", http.StatusOK, map[string]any{"data": []any{}})
	h.backend.Handle(http.MethodGet, "/library-book", http.StatusOK, map[string]any{"data": []any{}})
	h.backend.Handle(http.MethodGet, "/help-desk/conversations", http.StatusOK, map[string]any{
		"data": []map[string]any{{"_id": "c1", "status": "open"}, {"_id": "c2", "status": "open"}},
	})

	require.NoError(t, h.run(t, "dashboard"))
	out := h.out.String()
	assert.Regexp(t, `Subjects\s+1`, out)
	assert.Regexp(t, `Open conversations\s+2`, out)
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"plain", errors.New("boom"), []string{"error: boom"}},
		{"unauthorized", svcerrors.Unauthorized("Session expired"), []string{"error: Session expired", "console login"}},
		{"validation details", svcerrors.Validation("Invalid input", map[string]any{"email": "required"}), []string{
			"error: Invalid input", `"email": "required"`,
		}},
		{"network", svcerrors.Network(errors.New("dial"), "Failed to retrieve subjects"), []string{"API_BASE_URL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, reportError(&buf, tt.err))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
