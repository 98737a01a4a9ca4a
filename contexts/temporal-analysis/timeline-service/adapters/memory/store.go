package memory

import (
	"context"
	"sync"
	"time"

	"senkron/contexts/temporal-analysis/timeline-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory event source and scan-run repository used for
// tests and DSN-less boots.
type Store struct {
	mu     sync.RWMutex
	events []ports.SourceEvent
	runs   []ports.ScanRun
}

func NewStore(seed []ports.SourceEvent) *Store {
	return &Store{
		events: append([]ports.SourceEvent(nil), seed...),
		runs:   make([]ports.ScanRun, 0),
	}
}

func (s *Store) SeedEvent(event ports.SourceEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *Store) FetchAll(_ context.Context) ([]ports.SourceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.SourceEvent(nil), s.events...), nil
}

func (s *Store) SaveRun(_ context.Context, run ports.ScanRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

func (s *Store) ListRuns(_ context.Context, limit int) ([]ports.ScanRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.runs) {
		limit = len(s.runs)
	}
	// Most recent first.
	out := make([]ports.ScanRun, 0, limit)
	for i := len(s.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.runs[i])
	}
	return out, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
