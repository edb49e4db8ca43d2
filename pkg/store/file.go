package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore keeps one JSON file per record in a directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store.
// If baseDir is empty, defaults to ~/.config/overlaykit/scenes/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "overlaykit", "scenes")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create scene dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Put(ctx context.Context, rec *Record) error {
	if rec.ID != "" {
		if err := validID(rec.ID); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID != "" && rec.CreatedAt.IsZero() {
		if old, err := s.read(rec.ID); err == nil {
			rec.CreatedAt = old.CreatedAt
		}
	}
	stamp(rec, time.Now())

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(s.recordPath(rec.ID), data, 0600); err != nil {
		return fmt.Errorf("write scene file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*Record, error) {
	if err := validID(id); err != nil {
		return nil, notFound(id)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(id)
}

func (s *FileStore) read(id string) (*Record, error) {
	data, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse scene file: %w", err)
	}
	return &rec, nil
}

func (s *FileStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read scene dir: %w", err)
	}
	var out []*Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		rec, err := s.read(entry.Name()[:len(entry.Name())-len(".json")])
		if err != nil {
			continue
		}
		out = append(out, rec)
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return notFound(id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.recordPath(id)); err != nil {
		if os.IsNotExist(err) {
			return notFound(id)
		}
		return fmt.Errorf("remove scene file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for scene files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
