// Package ports defines interfaces (hexagonal ports) for session and upload behavior.
// Implementations live in internal/adapters; orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/learnhub/admin-console/internal/domain/auth"
)

// LocalStorage is the durable key/value store backing the console session.
// Store must write all entries or none; Remove ignores missing keys.
type LocalStorage interface {
	Load(ctx context.Context, keys ...string) (map[string]string, error)
	Store(ctx context.Context, entries map[string]string) error
	Remove(ctx context.Context, keys ...string) error
}

// CredentialStore is the slice of the session store the request executor needs.
type CredentialStore interface {
	// Credential returns the current bearer credential, never blocking.
	Credential() (string, bool)

	// Clear drops the session after the backend rejected the credential.
	Clear(ctx context.Context) error
}

// BlobStore uploads bytes to object storage and returns a public URL.
type BlobStore interface {
	Put(ctx context.Context, data []byte, contentType string) (string, error)
}

// SessionStore is the full session lifecycle used by login and profile refresh.
type SessionStore interface {
	CredentialStore
	SetSession(ctx context.Context, credential string, identity *domainauth.Identity) error
}

// IdentityResolver derives an identity from a bearer credential without
// contacting the backend.
type IdentityResolver interface {
	IdentityFromToken(token string) (*domainauth.Identity, error)
}
