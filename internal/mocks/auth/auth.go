// Package auth contains simple hand-written test doubles for session and upload ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/learnhub/admin-console/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialStore = (*StaticCredentials)(nil)
	_ ports.BlobStore       = (*RecordingBlobStore)(nil)
)

// StaticCredentials serves a fixed credential and records Clear calls.
type StaticCredentials struct {
	mu         sync.Mutex
	token      string
	clearCalls int
	ClearErr   error
}

// NewStaticCredentials creates a credential store holding token ("" means anonymous).
func NewStaticCredentials(token string) *StaticCredentials {
	return &StaticCredentials{token: token}
}

func (s *StaticCredentials) Credential() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *StaticCredentials) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCalls++
	s.token = ""
	return s.ClearErr
}

// ClearCalls returns how many times Clear ran.
func (s *StaticCredentials) ClearCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearCalls
}

// BlobPut records one upload.
type BlobPut struct {
	Data        []byte
	ContentType string
}

// RecordingBlobStore returns deterministic URLs and remembers uploads.
type RecordingBlobStore struct {
	mu      sync.Mutex
	BaseURL string
	Err     error
	puts    []BlobPut
}

// NewRecordingBlobStore creates a blob store double serving URLs under baseURL.
func NewRecordingBlobStore(baseURL string) *RecordingBlobStore {
	return &RecordingBlobStore{BaseURL: baseURL}
}

func (b *RecordingBlobStore) Put(_ context.Context, data []byte, contentType string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return "", b.Err
	}
	if len(data) == 0 {
		return "", errors.New("empty upload")
	}
	b.puts = append(b.puts, BlobPut{Data: append([]byte(nil), data...), ContentType: contentType})
	return b.BaseURL + "/" + strconv.Itoa(len(b.puts)), nil
}

// Puts returns recorded uploads.
func (b *RecordingBlobStore) Puts() []BlobPut {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]BlobPut, len(b.puts))
	copy(out, b.puts)
	return out
}
