package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/learnhub/admin-console/config"
	"github.com/learnhub/admin-console/internal/adapters/blobstore"
	"github.com/learnhub/admin-console/internal/adapters/filestore"
	"github.com/learnhub/admin-console/internal/adapters/memory"
	redisstore "github.com/learnhub/admin-console/internal/adapters/redis"
	"github.com/learnhub/admin-console/internal/ports"
)

// StorageDeps contains dependencies for session storage selection.
type StorageDeps struct {
	Session config.SessionConfig
	Redis   config.RedisConfig
	Logger  *slog.Logger
}

// Storage is the selected durable backend plus a release function.
type Storage struct {
	Local ports.LocalStorage
	Close func() error
}

func noopClose() error { return nil }

// NewLocalStorage builds the durable storage the session store mirrors to.
func NewLocalStorage(ctx context.Context, deps StorageDeps) (*Storage, error) {
	switch deps.Session.Backend {
	case config.SessionBackendMemory:
		return &Storage{Local: memory.NewStorage(), Close: noopClose}, nil
	case config.SessionBackendRedis:
		client, err := ConnectRedis(ctx, RedisConnectConfig{Redis: deps.Redis, Logger: deps.Logger})
		if err != nil {
			return nil, fmt.Errorf("connect redis session storage: %w", err)
		}
		local := redisstore.NewLocalStorage(client, redisstore.LocalStorageOptions{
			Prefix: deps.Session.RedisPrefix,
			TTL:    deps.Session.TTL,
		})
		return &Storage{Local: local, Close: client.Close}, nil
	case config.SessionBackendFile, "":
		local, err := filestore.NewStorage(deps.Session.FilePath)
		if err != nil {
			return nil, fmt.Errorf("create session file storage: %w", err)
		}
		return &Storage{Local: local, Close: noopClose}, nil
	default:
		return nil, fmt.Errorf("unsupported session backend %q", deps.Session.Backend)
	}
}

// NewBlobStore returns the document blob store, or nil when uploads go
// straight to the backend.
//
//nolint:ireturn // callers only need the port; nil signals "disabled".
func NewBlobStore(cfg config.BlobStoreConfig, logger *slog.Logger) (ports.BlobStore, error) {
	if !cfg.IsEnabled() {
		return nil, nil
	}
	store, err := blobstore.New(blobstore.Config{
		Bucket:    cfg.Bucket,
		Region:    cfg.Region,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Endpoint:  cfg.Endpoint,
		PathStyle: cfg.PathStyle,
		Prefix:    cfg.Prefix,
		PublicURL: cfg.PublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create blob store: %w", err)
	}
	if logger != nil {
		logger.Info("blob store enabled", "bucket", cfg.Bucket, "endpoint", cfg.Endpoint)
	}
	return store, nil
}
