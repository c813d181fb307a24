package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/learnhub/admin-console/config"
	"github.com/learnhub/admin-console/internal/adapters/tokenclaims"
	"github.com/learnhub/admin-console/internal/apiclient"
	"github.com/learnhub/admin-console/internal/observability/statsd"
	"github.com/learnhub/admin-console/internal/ports"
	"github.com/learnhub/admin-console/internal/service"
	"github.com/learnhub/admin-console/internal/session"
)

// ServiceContainer holds the session, the executor and every resource client.
type ServiceContainer struct {
	Sessions  *session.Store
	Executor  *apiclient.Executor
	Auth      *service.AuthService
	Subjects  *service.SubjectService
	Exams     *service.ExamService
	Library   *service.LibraryService
	Chat      *service.ChatService
	HelpDesk  *service.HelpDeskService
	Wallet    *service.WalletService
	Quizzes   *service.QuizService
	Dashboard *service.DashboardService
}

// ServiceDeps contains dependencies for service initialization.
type ServiceDeps struct {
	API     config.APIConfig
	Storage ports.LocalStorage // Optional: nil keeps the session in memory
	Blobs   ports.BlobStore    // Optional
	Client  *http.Client       // Optional
	Metrics statsd.Sink        // Optional
	Logger  *slog.Logger
}

// BuildServices restores the persisted session and wires every resource client
// to a single executor.
func BuildServices(ctx context.Context, deps ServiceDeps) (*ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sessions := session.NewStore(session.StoreOptions{Storage: deps.Storage, Logger: logger})
	if err := sessions.Restore(ctx); err != nil {
		// A broken store must not block login; start anonymous.
		logger.WarnContext(ctx, "session restore failed", "error", err)
	}

	exec, err := apiclient.NewExecutor(apiclient.Config{
		BaseURL:                   deps.API.BaseURL,
		Client:                    deps.Client,
		Timeout:                   deps.API.Timeout,
		UserAgent:                 deps.API.UserAgent,
		Sessions:                  sessions,
		FailFastWithoutCredential: !deps.API.AttemptUnauthenticated,
		Envelope: apiclient.EnvelopePaths{
			Message: deps.API.EnvelopeMessage,
			Error:   deps.API.EnvelopeError,
			Details: deps.API.EnvelopeDetails,
		},
		Logger:  logger,
		Metrics: deps.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("create api executor: %w", err)
	}

	return &ServiceContainer{
		Sessions: sessions,
		Executor: exec,
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Requester:  exec,
			Sessions:   sessions,
			Identities: tokenclaims.NewResolver(),
		}),
		Subjects:  service.NewSubjectService(service.SubjectServiceOptions{Requester: exec}),
		Exams:     service.NewExamService(service.ExamServiceOptions{Requester: exec}),
		Library:   service.NewLibraryService(service.LibraryServiceOptions{Requester: exec, Blobs: deps.Blobs}),
		Chat:      service.NewChatService(service.ChatServiceOptions{Requester: exec}),
		HelpDesk:  service.NewHelpDeskService(service.HelpDeskServiceOptions{Requester: exec}),
		Wallet:    service.NewWalletService(service.WalletServiceOptions{Requester: exec}),
		Quizzes:   service.NewQuizService(service.QuizServiceOptions{Requester: exec}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{Requester: exec}),
	}, nil
}

// App is a fully wired console: services plus the resources to release on exit.
type App struct {
	*ServiceContainer
	closers []func() error
}

// Close releases storage connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewApp wires storage, the blob store, the HTTP client and the services from cfg.
func NewApp(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	storage, err := NewLocalStorage(ctx, StorageDeps{Session: cfg.Session, Redis: cfg.Redis, Logger: logger})
	if err != nil {
		return nil, err
	}
	app := &App{closers: []func() error{storage.Close}}

	blobs, err := NewBlobStore(cfg.BlobStore, logger)
	if err != nil {
		return nil, errors.Join(err, app.Close())
	}

	client, err := NewHTTPClient(cfg.API)
	if err != nil {
		return nil, errors.Join(err, app.Close())
	}

	sink, err := statsd.NewClient(ctx, statsd.Config{
		Enabled: cfg.Metrics.IsEnabled(),
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  cfg.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create statsd client: %w", err), app.Close())
	}
	app.closers = append(app.closers, sink.Close)

	services, err := BuildServices(ctx, ServiceDeps{
		API:     cfg.API,
		Storage: storage.Local,
		Blobs:   blobs,
		Client:  client,
		Metrics: sink,
		Logger:  logger,
	})
	if err != nil {
		return nil, errors.Join(err, app.Close())
	}
	app.ServiceContainer = services
	return app, nil
}
