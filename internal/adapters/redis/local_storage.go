// Package redis provides Redis-based adapters for the admin console.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnhub/admin-console/internal/ports"
)

const defaultPrefix = "console:session:"

// LocalStorage is a Redis-backed durable key/value store for the console session.
// Entries written together share one MULTI/EXEC so a reader never sees half a session.
type LocalStorage struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ ports.LocalStorage = (*LocalStorage)(nil)

// LocalStorageOptions configures a LocalStorage.
type LocalStorageOptions struct {
	Prefix string        // defaults to "console:session:"
	TTL    time.Duration // zero keeps entries until removed
}

// NewLocalStorage creates a new Redis-backed local storage.
func NewLocalStorage(client redis.UniversalClient, opts LocalStorageOptions) *LocalStorage {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	ttl := opts.TTL
	if ttl < 0 {
		ttl = 0
	}
	return &LocalStorage{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *LocalStorage) Load(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	values, err := s.client.MGet(ctx, s.keys(keys)...).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return out, nil
		}
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		out[keys[i]] = str
	}
	return out, nil
}

func (s *LocalStorage) Store(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, s.prefix+k, v, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set session entries: %w", err)
	}
	return nil
}

func (s *LocalStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil // Nothing to delete
	}
	if err := s.client.Del(ctx, s.keys(keys)...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *LocalStorage) keys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = s.prefix + k
	}
	return out
}
