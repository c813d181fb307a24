// Package filestore persists console session entries to a JSON file so a CLI
// restart does not force a re-login.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/learnhub/admin-console/internal/ports"
)

const fileMode = 0o600

// Storage is a LocalStorage backed by a single JSON object on disk.
// Every write replaces the file via rename so readers never see a partial document.
type Storage struct {
	path string
	mu   sync.Mutex
}

var _ ports.LocalStorage = (*Storage)(nil)

// NewStorage creates a file-backed storage. The file is created lazily on first write.
func NewStorage(path string) (*Storage, error) {
	if path == "" {
		return nil, errors.New("session file path is required")
	}
	return &Storage{path: filepath.Clean(path)}, nil
}

// Path returns the backing file path.
func (s *Storage) Path() string { return s.path }

func (s *Storage) Load(_ context.Context, keys ...string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := all[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *Storage) Store(_ context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return err
	}
	for k, v := range entries {
		all[k] = v
	}
	return s.write(all)
}

func (s *Storage) Remove(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return err
	}
	changed := false
	for _, k := range keys {
		if _, ok := all[k]; ok {
			delete(all, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.write(all)
}

func (s *Storage) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	all := map[string]string{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return all, nil
}

func (s *Storage) write(all map[string]string) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
		return fmt.Errorf("create session dir: %w", mkErr)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		return errors.Join(fmt.Errorf("write session file: %w", err), closeAndRemove(tmp, tmpName))
	}
	if err := tmp.Chmod(fileMode); err != nil {
		return errors.Join(fmt.Errorf("chmod session file: %w", err), closeAndRemove(tmp, tmpName))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(fmt.Errorf("close session file: %w", err), os.Remove(tmpName))
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Join(fmt.Errorf("replace session file: %w", err), os.Remove(tmpName))
	}
	return nil
}

func closeAndRemove(f *os.File, name string) error {
	return errors.Join(f.Close(), os.Remove(name))
}
