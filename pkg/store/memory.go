package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps records in a map.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
	now     func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record), now: time.Now}
}

func (s *MemoryStore) Put(ctx context.Context, rec *Record) error {
	if rec.ID != "" {
		if err := validID(rec.ID); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.records[rec.ID]; ok && rec.CreatedAt.IsZero() {
		rec.CreatedAt = old.CreatedAt
	}
	stamp(rec, s.now())
	c, err := rec.clone()
	if err != nil {
		return err
	}
	s.records[rec.ID] = c
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, notFound(id)
	}
	return rec.clone()
}

func (s *MemoryStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		c, err := rec.clone()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return notFound(id)
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func sortNewestFirst(recs []*Record) {
	slices.SortFunc(recs, func(a, b *Record) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

var _ Store = (*MemoryStore)(nil)
