package prefs

import (
	"context"
	"sync"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

// MemoryStore keeps the selection in process memory. Used in development
// and tests when Redis is not configured.
type MemoryStore struct {
	mu  sync.RWMutex
	sel *model.FilterSelection
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the stored selection, or the first-use default when none
// was saved yet.
func (s *MemoryStore) Get(_ context.Context) (model.FilterSelection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sel == nil {
		return model.DefaultFilters(time.Now()), nil
	}
	return *s.sel, nil
}

// Set stores the selection.
func (s *MemoryStore) Set(_ context.Context, sel model.FilterSelection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = &sel
	return nil
}
