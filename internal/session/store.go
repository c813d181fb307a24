// Package session holds the process-wide console session: the bearer credential
// and the last-known identity, mirrored to durable local storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	domainauth "github.com/learnhub/admin-console/internal/domain/auth"
	"github.com/learnhub/admin-console/internal/ports"
)

// Durable storage keys. All three are written and removed together.
const (
	KeyToken  = "token"
	KeyUser   = "user"
	KeyUserID = "userId"
)

var persistedKeys = []string{KeyToken, KeyUser, KeyUserID}

// ErrEmptyCredential is returned when SetSession is called without a credential.
var ErrEmptyCredential = errors.New("credential cannot be empty")

// StoreOptions groups dependencies for Store.
type StoreOptions struct {
	Storage ports.LocalStorage // optional: nil keeps the session in memory only
	Logger  *slog.Logger       // optional
}

// Store is the single source of truth for "am I authenticated, and as whom".
// Reads are lock-free snapshots; writes replace the whole session.
type Store struct {
	current atomic.Pointer[domainauth.Session]
	writeMu sync.Mutex
	storage ports.LocalStorage
	logger  *slog.Logger
}

var _ ports.SessionStore = (*Store)(nil)

// NewStore creates an empty (anonymous) session store.
func NewStore(opts StoreOptions) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		storage: opts.Storage,
		logger:  logger,
	}
	s.current.Store(&domainauth.Session{})
	return s
}

// SetSession replaces the entire session after a successful login.
// The durable copy is written first; on failure the in-memory session is unchanged.
func (s *Store) SetSession(ctx context.Context, credential string, identity *domainauth.Identity) error {
	if credential == "" {
		return ErrEmptyCredential
	}

	next := &domainauth.Session{Credential: credential}
	if identity != nil {
		id := *identity
		next.Identity = &id
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.current.Store(next)
	return nil
}

func (s *Store) persist(ctx context.Context, sess *domainauth.Session) error {
	if s.storage == nil {
		return nil
	}

	if sess.Identity == nil {
		// Drop any identity left over from a previous login before writing the token.
		if err := s.storage.Remove(ctx, KeyUser, KeyUserID); err != nil {
			return fmt.Errorf("remove stale identity: %w", err)
		}
		if err := s.storage.Store(ctx, map[string]string{KeyToken: sess.Credential}); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
		return nil
	}

	user, err := json.Marshal(sess.Identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	entries := map[string]string{
		KeyToken:  sess.Credential,
		KeyUser:   string(user),
		KeyUserID: sess.Identity.ID,
	}
	if err := s.storage.Store(ctx, entries); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Credential returns the current bearer credential.
func (s *Store) Credential() (string, bool) {
	sess := s.current.Load()
	if sess.Credential == "" {
		return "", false
	}
	return sess.Credential, true
}

// Identity returns a copy of the last-known identity.
func (s *Store) Identity() (domainauth.Identity, bool) {
	sess := s.current.Load()
	if sess.Identity == nil {
		return domainauth.Identity{}, false
	}
	return *sess.Identity, true
}

// Snapshot returns the current session value.
func (s *Store) Snapshot() domainauth.Session {
	return *s.current.Load()
}

// State reports Anonymous or Authenticated.
func (s *Store) State() domainauth.SessionState {
	return s.current.Load().State()
}

// Clear drops the credential and identity from memory and durable storage.
// Memory is cleared first so a storage failure never leaves a dead credential in use.
func (s *Store) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	prev := s.current.Swap(&domainauth.Session{})
	if !prev.IsAnonymous() {
		s.logger.InfoContext(ctx, "session cleared")
	}

	if s.storage == nil {
		return nil
	}
	if err := s.storage.Remove(ctx, persistedKeys...); err != nil {
		return fmt.Errorf("remove persisted session: %w", err)
	}
	return nil
}

// Restore loads a previously persisted session, if any.
// A corrupt identity entry is dropped; the credential alone is still restored.
func (s *Store) Restore(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	entries, err := s.storage.Load(ctx, persistedKeys...)
	if err != nil {
		return fmt.Errorf("load persisted session: %w", err)
	}

	token := entries[KeyToken]
	if token == "" {
		return nil
	}

	next := &domainauth.Session{Credential: token}
	if raw := entries[KeyUser]; raw != "" {
		var identity domainauth.Identity
		if unmarshalErr := json.Unmarshal([]byte(raw), &identity); unmarshalErr != nil {
			s.logger.WarnContext(ctx, "discarding unreadable persisted identity", "error", unmarshalErr)
		} else {
			if identity.ID == "" {
				identity.ID = entries[KeyUserID]
			}
			next.Identity = &identity
		}
	}

	s.writeMu.Lock()
	s.current.Store(next)
	s.writeMu.Unlock()

	s.logger.InfoContext(ctx, "session restored", "has_identity", next.Identity != nil)
	return nil
}
