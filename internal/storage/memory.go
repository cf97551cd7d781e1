// Package storage provides run store implementations.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/engine"
	"github.com/hammamikhairi/ottocraft/internal/logger"
)

// Compile-time interface check.
var _ engine.RunStore = (*MemoryStore)(nil)

// MemoryStore keeps runs in memory. Safe for concurrent access; the runs
// it hands out are shared, not copied.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*engine.Run
	log  *logger.Logger
}

// NewMemoryStore creates an empty in-memory run store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		runs: make(map[string]*engine.Run),
		log:  log,
	}
}

// Save stores a run, overwriting any run with the same ID.
func (s *MemoryStore) Save(ctx context.Context, run *engine.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving run %s (plan=%s, round=%d, status=%s)", run.ID, run.PlanID, run.Round, run.Status)
	s.runs[run.ID] = run
	return nil
}

// Load retrieves a run by ID.
func (s *MemoryStore) Load(ctx context.Context, id string) (*engine.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		s.log.Debug("run not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return run, nil
}

// Delete removes a run by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.runs, id)
	s.log.Debug("deleted run %s", id)
	return nil
}

// ListActive returns every run that has not been abandoned, oldest first.
func (s *MemoryStore) ListActive(ctx context.Context) ([]*engine.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*engine.Run
	for _, run := range s.runs {
		if run.Status != domain.RunAbandoned {
			out = append(out, run)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	s.log.Debug("listing active runs, count=%d", len(out))
	return out, nil
}
