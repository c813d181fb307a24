// Package apiclient turns request descriptors into authenticated backend calls
// and collapses every failure into a *errors.ServiceError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	svcerrors "github.com/learnhub/admin-console/internal/errors"
	obserrors "github.com/learnhub/admin-console/internal/observability/errors"
	"github.com/learnhub/admin-console/internal/observability/metrics"
	"github.com/learnhub/admin-console/internal/observability/statsd"
	"github.com/learnhub/admin-console/internal/ports"
)

const (
	defaultUserAgent   = "learnhub-admin-console"
	genericFailureText = "request failed"
	requestIDHeader    = "X-Request-ID"
)

// Config captures what the executor needs to reach the backend.
type Config struct {
	BaseURL string

	// Client is the transport; nil builds one with Timeout.
	Client *http.Client
	// Timeout of zero leaves the transport default in place.
	Timeout   time.Duration
	UserAgent string

	// Sessions supplies the bearer credential and is cleared on 401.
	Sessions ports.CredentialStore

	// FailFastWithoutCredential short-circuits authenticated calls when no
	// credential exists. The default (false) still issues the call with an
	// empty bearer value and lets the backend answer 401.
	FailFastWithoutCredential bool

	Envelope EnvelopePaths
	Logger   *slog.Logger
	// Metrics receives one count and timing per call (optional).
	Metrics statsd.Sink
}

// Executor issues requests on behalf of every resource client.
// It is safe for concurrent use; the only shared state is the credential store.
type Executor struct {
	baseURL   string
	client    *http.Client
	userAgent string
	sessions  ports.CredentialStore
	failFast  bool
	envelope  EnvelopePaths
	logger    *slog.Logger
	metrics   statsd.Sink
}

// NewExecutor builds an executor. Callers should pass a validated config.
func NewExecutor(cfg Config) (*Executor, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}

	envelope := cfg.Envelope.withDefaults()
	if err := envelope.validate(); err != nil {
		return nil, err
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{}
		if cfg.Timeout > 0 {
			hc.Timeout = cfg.Timeout
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{
		baseURL:   baseURL,
		client:    hc,
		userAgent: fallbackString(strings.TrimSpace(cfg.UserAgent), defaultUserAgent),
		sessions:  cfg.Sessions,
		failFast:  cfg.FailFastWithoutCredential,
		envelope:  envelope,
		logger:    logger,
		metrics:   cfg.Metrics,
	}, nil
}

// BaseURL returns the backend root all resource paths are joined to.
func (e *Executor) BaseURL() string { return e.baseURL }

// Do issues req against basePath and returns the response body unchanged on 2xx.
// Any other outcome is returned as a *errors.ServiceError.
func (e *Executor) Do(ctx context.Context, basePath string, req Request) (json.RawMessage, error) {
	start := time.Now()
	raw, err := e.do(ctx, basePath, req)
	metrics.EmitRequest(e.metrics, metrics.RequestMetric{
		Resource: basePath,
		Method:   req.method(),
		Duration: time.Since(start),
		Err:      err,
	})
	return raw, err
}

func (e *Executor) do(ctx context.Context, basePath string, req Request) (json.RawMessage, error) {
	if err := req.validate(); err != nil {
		return nil, svcerrors.Wrap(err, svcerrors.KindUnknown, fallbackMessage(req.Fallback))
	}

	credential, hasCredential := e.credential()
	if req.RequiresAuth() && !hasCredential && e.failFast {
		return nil, svcerrors.Unauthorized(fallbackMessage(req.Fallback))
	}

	httpReq, err := e.buildRequest(ctx, basePath, req)
	if err != nil {
		return nil, svcerrors.Wrap(err, svcerrors.KindUnknown, fallbackMessage(req.Fallback))
	}
	if req.RequiresAuth() {
		// An absent credential still yields "Bearer " so the backend decides.
		token := &oauth2.Token{AccessToken: credential, TokenType: "Bearer"}
		token.SetAuthHeader(httpReq)
	}

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		svcErr := svcerrors.Network(err, transportMessage(err, req.Fallback))
		e.logFailure(ctx, httpReq, svcErr, time.Since(start))
		return nil, svcErr
	}

	body, readErr := readAndClose(resp)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if readErr != nil {
			svcErr := svcerrors.Network(readErr, transportMessage(readErr, req.Fallback))
			svcErr.Status = resp.StatusCode
			e.logFailure(ctx, httpReq, svcErr, time.Since(start))
			return nil, svcErr
		}
		e.logger.DebugContext(ctx, "api request completed",
			"method", httpReq.Method,
			"path", httpReq.URL.Path,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds())
		if len(body) == 0 {
			return nil, nil
		}
		return json.RawMessage(body), nil
	}

	svcErr := e.classify(resp.StatusCode, body, req.Fallback)
	if readErr != nil {
		svcErr.Cause = readErr
	}
	if svcErr.Kind == svcerrors.KindUnauthorized {
		e.clearSession(ctx)
	}
	e.logFailure(ctx, httpReq, svcErr, time.Since(start))
	return nil, svcErr
}

func (e *Executor) credential() (string, bool) {
	if e.sessions == nil {
		return "", false
	}
	return e.sessions.Credential()
}

func (e *Executor) clearSession(ctx context.Context) {
	if e.sessions == nil {
		return
	}
	if err := e.sessions.Clear(ctx); err != nil {
		e.logger.WarnContext(ctx, "clear session after unauthorized response failed", "error", err)
	}
}

func (e *Executor) buildRequest(ctx context.Context, basePath string, req Request) (*http.Request, error) {
	target, err := e.resolve(basePath, req)
	if err != nil {
		return nil, err
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		data, ct, encErr := req.Form.Encode()
		if encErr != nil {
			return nil, fmt.Errorf("encode multipart body: %w", encErr)
		}
		body, contentType = bytes.NewReader(data), ct
	case req.JSON != nil:
		data, encErr := json.Marshal(req.JSON)
		if encErr != nil {
			return nil, fmt.Errorf("encode json body: %w", encErr)
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method(), target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", e.userAgent)
	httpReq.Header.Set(requestIDHeader, uuid.NewString())
	return httpReq, nil
}

func (e *Executor) resolve(basePath string, req Request) (string, error) {
	var sb strings.Builder
	sb.WriteString(e.baseURL)
	if base := strings.Trim(basePath, "/"); base != "" {
		sb.WriteByte('/')
		sb.WriteString(base)
	}
	if req.Path != "" {
		if !strings.HasPrefix(req.Path, "/") {
			sb.WriteByte('/')
		}
		sb.WriteString(req.Path)
	}

	u, err := url.Parse(sb.String())
	if err != nil {
		return "", fmt.Errorf("build request url: %w", err)
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}
	return u.String(), nil
}

// classify maps a non-2xx response onto a ServiceError.
// Message order: backend message, backend error, operation fallback.
func (e *Executor) classify(status int, body []byte, fallback string) *svcerrors.ServiceError {
	parsed := e.envelope.read(body)

	message := parsed.message
	if message == "" {
		message = parsed.err
	}
	if message == "" {
		message = fallbackMessage(fallback)
	}

	return &svcerrors.ServiceError{
		Kind:    svcerrors.KindForStatus(status),
		Message: message,
		Details: parsed.details,
		Status:  status,
	}
}

func (e *Executor) logFailure(ctx context.Context, req *http.Request, svcErr *svcerrors.ServiceError, elapsed time.Duration) {
	attrs := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"kind", svcErr.Kind,
		"message", svcErr.Message,
		"request_id", req.Header.Get(requestIDHeader),
		"duration_ms", elapsed.Milliseconds(),
	}
	if svcErr.HasStatus() {
		attrs = append(attrs, "status", svcErr.Status)
	}
	if svcErr.Cause != nil {
		attrs = append(attrs, "error_class", obserrors.Classify(svcErr.Cause), "error", svcErr.Cause)
	}
	e.logger.WarnContext(ctx, "api request failed", attrs...)
}

func readAndClose(resp *http.Response) ([]byte, error) {
	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return body, errors.Join(fmt.Errorf("read response body: %w", readErr), closeErr)
	}
	return body, nil
}

func transportMessage(err error, fallback string) string {
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			return msg
		}
	}
	return fallbackMessage(fallback)
}

func fallbackMessage(fallback string) string {
	return fallbackString(strings.TrimSpace(fallback), genericFailureText)
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
