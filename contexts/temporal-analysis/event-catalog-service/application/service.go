package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"senkron/contexts/temporal-analysis/event-catalog-service/domain/entities"
	domainerrors "senkron/contexts/temporal-analysis/event-catalog-service/domain/errors"
	"senkron/contexts/temporal-analysis/event-catalog-service/ports"
)

// dateLayouts accepted on import rows, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ImportReport summarizes one import: how many rows were accepted, how
// many were skipped with the reason, and the catalog size afterwards.
type ImportReport struct {
	Imported     int
	Skipped      int
	SkipReasons  map[string]int
	CatalogTotal int
}

type Service struct {
	Repo      ports.Repository
	Validator ports.BatchValidator
	Observer  ports.CatalogObserver
	Logger    *slog.Logger
}

// ImportRows normalizes and stores raw rows from any source. Rows that
// fail normalization are skipped and counted, never fatal: one bad line
// must not sink a whole historical file.
func (s Service) ImportRows(ctx context.Context, rows []ports.RawEvent) (ImportReport, error) {
	logger := resolveLogger(s.Logger)
	report := ImportReport{SkipReasons: map[string]int{}}

	accepted := make([]entities.CatalogEvent, 0, len(rows))
	for _, row := range rows {
		event, reason := s.normalizeRow(row)
		if reason != "" {
			report.Skipped++
			report.SkipReasons[reason]++
			continue
		}
		accepted = append(accepted, event)
	}

	if len(accepted) > 0 {
		if err := s.Repo.UpsertBatch(ctx, accepted); err != nil {
			return ImportReport{}, fmt.Errorf("store imported events: %w", err)
		}
	}
	report.Imported = len(accepted)

	total, err := s.Repo.Count(ctx)
	if err == nil {
		report.CatalogTotal = total
		if s.Observer != nil {
			s.Observer.SetCatalogSize(total)
		}
	}

	logger.Info("catalog import completed",
		"event", "catalog_import_completed",
		"module", "temporal-analysis/event-catalog-service",
		"layer", "application",
		"imported", report.Imported,
		"skipped", report.Skipped,
		"catalog_total", report.CatalogTotal,
	)
	return report, nil
}

// ImportSource drains a row source and imports what it yields.
func (s Service) ImportSource(ctx context.Context, source ports.RowSource) (ImportReport, error) {
	rows, err := source.ReadAll(ctx)
	if err != nil {
		return ImportReport{}, fmt.Errorf("%w: %v", domainerrors.ErrSourceUnavailable, err)
	}
	return s.ImportRows(ctx, rows)
}

// batchPayload is the JSON import contract: a top-level events array.
type batchPayload struct {
	Events []struct {
		ID             string  `json:"id"`
		Date           string  `json:"date"`
		Title          string  `json:"title"`
		Category       string  `json:"category"`
		Description    string  `json:"description"`
		AstroSignature string  `json:"astro_signature"`
		Weight         float64 `json:"weight"`
	} `json:"events"`
}

// ImportBatch validates a JSON payload against the import schema, then
// runs the rows through the same normalization path as file imports.
func (s Service) ImportBatch(ctx context.Context, payload []byte) (ImportReport, error) {
	if s.Validator != nil {
		if err := s.Validator.Validate(payload); err != nil {
			return ImportReport{}, fmt.Errorf("%w: %v", domainerrors.ErrInvalidBatch, err)
		}
	}

	var batch batchPayload
	if err := json.Unmarshal(payload, &batch); err != nil {
		return ImportReport{}, fmt.Errorf("%w: %v", domainerrors.ErrInvalidBatch, err)
	}

	rows := make([]ports.RawEvent, 0, len(batch.Events))
	for _, event := range batch.Events {
		weight := ""
		if event.Weight != 0 {
			weight = strconv.FormatFloat(event.Weight, 'f', -1, 64)
		}
		rows = append(rows, ports.RawEvent{
			ID:             event.ID,
			Date:           event.Date,
			Title:          event.Title,
			Category:       event.Category,
			Description:    event.Description,
			AstroSignature: event.AstroSignature,
			Weight:         weight,
		})
	}
	return s.ImportRows(ctx, rows)
}

// ListEvents returns catalog events matching the filter.
func (s Service) ListEvents(ctx context.Context, filter ports.ListFilter) ([]entities.CatalogEvent, error) {
	if filter.MinWeight < 0 || filter.MinWeight > entities.MaxWeight {
		return nil, domainerrors.ErrInvalidFilter
	}
	if filter.Limit < 0 {
		return nil, domainerrors.ErrInvalidFilter
	}
	return s.Repo.List(ctx, filter)
}

// Describe reports the module's static capability descriptor.
func (s Service) Describe() ports.Capability {
	return ports.Capability{
		Name:  "event-catalog-service",
		Ready: s.Repo != nil,
		Features: []string{
			"csv event import",
			"validated json batch import",
			"filtered catalog listing",
		},
		Notes: "historical event catalog backing the timeline engine",
	}
}

func (s Service) normalizeRow(row ports.RawEvent) (entities.CatalogEvent, string) {
	if strings.TrimSpace(row.Title) == "" {
		return entities.CatalogEvent{}, "missing_title"
	}

	date, ok := parseDate(strings.TrimSpace(row.Date))
	if !ok {
		resolveLogger(s.Logger).Debug("skipping row with unparsable date",
			"event", "catalog_row_skipped",
			"module", "temporal-analysis/event-catalog-service",
			"layer", "application",
			"raw_date", row.Date,
			"title", row.Title,
		)
		return entities.CatalogEvent{}, "bad_date"
	}

	// An unreadable weight never drops the row; it falls back to the
	// default so a sloppy column does not cost historical coverage.
	weight := entities.DefaultWeight
	if trimmed := strings.TrimSpace(row.Weight); trimmed != "" {
		if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
			weight = parsed
		} else {
			resolveLogger(s.Logger).Debug("unreadable weight, using default",
				"event", "catalog_weight_defaulted",
				"module", "temporal-analysis/event-catalog-service",
				"layer", "application",
				"raw_weight", row.Weight,
				"title", row.Title,
			)
		}
	}

	event, err := entities.NewCatalogEvent(
		row.ID, date, row.Title, row.Category, row.Description, row.AstroSignature, weight,
	)
	if err != nil {
		return entities.CatalogEvent{}, "invalid_event"
	}
	return event, ""
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
