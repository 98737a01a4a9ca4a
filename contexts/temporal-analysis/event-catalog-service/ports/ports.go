package ports

import (
	"context"
	"time"

	"senkron/contexts/temporal-analysis/event-catalog-service/domain/entities"
)

// ListFilter narrows catalog listings. Zero values mean "no constraint".
type ListFilter struct {
	Category  string
	MinWeight float64
	From      time.Time
	To        time.Time
	Limit     int
}

// Repository stores catalog events. UpsertBatch replaces rows sharing an
// id, so repeated imports of the same file are idempotent.
type Repository interface {
	UpsertBatch(ctx context.Context, events []entities.CatalogEvent) error
	List(ctx context.Context, filter ListFilter) ([]entities.CatalogEvent, error)
	Count(ctx context.Context) (int, error)
}

// RawEvent is one unvalidated row from an import source, all fields
// textual. Normalization into a CatalogEvent happens in the application
// layer so every source shares the same rules.
type RawEvent struct {
	ID             string
	Date           string
	Title          string
	Category       string
	Description    string
	AstroSignature string
	Weight         string
}

// RowSource yields raw rows from some import medium (CSV file, upload).
type RowSource interface {
	ReadAll(ctx context.Context) ([]RawEvent, error)
}

// BatchValidator checks a JSON batch payload against the import
// contract before any row is parsed.
type BatchValidator interface {
	Validate(payload []byte) error
}

// CatalogObserver receives catalog size telemetry after imports.
type CatalogObserver interface {
	SetCatalogSize(total int)
}

// Capability is the static self-description surfaced by health reporting.
type Capability struct {
	Name     string
	Ready    bool
	Features []string
	Notes    string
}
