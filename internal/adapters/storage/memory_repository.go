package storage

import (
	"context"
	"sync"

	"tasktimers/internal/ports"
)

// MemoryRepository is an in-process ports.StateStore.
// It backs ephemeral runs and tests; the error fields inject failures.
type MemoryRepository struct {
	entryStore
	mu      sync.RWMutex
	entries map[string]string

	// Error injection for testing
	LoadErr error
	SaveErr error
}

var _ ports.StateStore = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty repository
func NewMemoryRepository() *MemoryRepository {
	repo := &MemoryRepository{entries: make(map[string]string)}
	repo.entryStore = entryStore{backend: repo}
	return repo
}

// SetRaw stores a raw entry, bypassing encoding
func (r *MemoryRepository) SetRaw(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = value
}

// Raw returns a raw entry and whether it exists
func (r *MemoryRepository) Raw(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

func (r *MemoryRepository) Close() error {
	return nil
}

func (r *MemoryRepository) loadEntries(ctx context.Context, keys []string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}

	entries := make(map[string]string, len(keys))
	for _, key := range keys {
		if v, ok := r.entries[key]; ok {
			entries[key] = v
		}
	}
	return entries, nil
}

func (r *MemoryRepository) saveEntries(ctx context.Context, set map[string]string, unset []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}

	for _, key := range unset {
		delete(r.entries, key)
	}
	for key, value := range set {
		r.entries[key] = value
	}
	return nil
}
