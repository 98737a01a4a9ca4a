package memory

import (
	"context"
	"sort"
	"sync"

	"senkron/contexts/temporal-analysis/event-catalog-service/domain/entities"
	"senkron/contexts/temporal-analysis/event-catalog-service/ports"
)

// Store is the in-memory catalog repository used when no database is
// configured, and by tests.
type Store struct {
	mu     sync.RWMutex
	events map[string]entities.CatalogEvent
}

func NewStore() *Store {
	return &Store{events: map[string]entities.CatalogEvent{}}
}

func (s *Store) UpsertBatch(ctx context.Context, events []entities.CatalogEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, event := range events {
		s.events[event.ID] = event
	}
	return nil
}

func (s *Store) List(ctx context.Context, filter ports.ListFilter) ([]entities.CatalogEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.CatalogEvent, 0, len(s.events))
	for _, event := range s.events {
		if filter.Category != "" && event.Category != filter.Category {
			continue
		}
		if event.Weight < filter.MinWeight {
			continue
		}
		if !filter.From.IsZero() && event.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && event.Date.After(filter.To) {
			continue
		}
		matched = append(matched, event)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date.Equal(matched[j].Date) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].Date.Before(matched[j].Date)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events), nil
}
