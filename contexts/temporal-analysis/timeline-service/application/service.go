package application

import (
	"context"
	"log/slog"
	"time"

	"senkron/contexts/temporal-analysis/timeline-service/domain/entities"
	domainerrors "senkron/contexts/temporal-analysis/timeline-service/domain/errors"
	"senkron/contexts/temporal-analysis/timeline-service/domain/services"
	"senkron/contexts/temporal-analysis/timeline-service/ports"
)

// dateLayouts accepted on source rows, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type Service struct {
	Source    ports.EventSource
	Clock     ports.Clock
	Discovery services.Config
	Logger    *slog.Logger
}

// BuildWindow loads the events whose date falls inside [start, end],
// inclusive on both ends. Source order is preserved; rows with a missing
// required field or an unparsable date are skipped and logged. A failing
// source degrades to an empty window so callers' windowing logic stays
// total. An empty window means "no data", not "error".
func (s Service) BuildWindow(ctx context.Context, start, end time.Time) []entities.EventRecord {
	logger := resolveLogger(s.Logger)
	window := []entities.EventRecord{}

	if start.After(end) {
		return window
	}

	rows, err := s.Source.FetchAll(ctx)
	if err != nil {
		logger.Warn("event source unavailable, returning empty window",
			"event", "timeline_source_unavailable",
			"module", "temporal-analysis/timeline-service",
			"layer", "application",
			"error", err.Error(),
		)
		return window
	}

	skipped := 0
	for _, row := range rows {
		record, ok := s.buildRecord(row)
		if !ok {
			skipped++
			continue
		}
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		window = append(window, record)
	}

	logger.Info("window built",
		"event", "timeline_window_built",
		"module", "temporal-analysis/timeline-service",
		"layer", "application",
		"start", start.Format("2006-01-02"),
		"end", end.Format("2006-01-02"),
		"events", len(window),
		"skipped_rows", skipped,
	)
	return window
}

func (s Service) buildRecord(row ports.SourceEvent) (entities.EventRecord, bool) {
	date, ok := parseDate(row.Date)
	if !ok {
		resolveLogger(s.Logger).Debug("skipping row with unparsable date",
			"event", "timeline_row_skipped",
			"module", "temporal-analysis/timeline-service",
			"layer", "application",
			"row_id", row.ID,
			"raw_date", row.Date,
		)
		return entities.EventRecord{}, false
	}

	id := row.ID
	if id == "" {
		id = entities.DeriveEventID(row.Label, date)
	}

	record, err := entities.NewEventRecord(
		id,
		date,
		row.Label,
		entities.ParseAstroSignature(row.AstroSignature),
		map[string]string{
			"category":    row.Category,
			"description": row.Description,
		},
	)
	if err != nil {
		resolveLogger(s.Logger).Debug("skipping invalid row",
			"event", "timeline_row_skipped",
			"module", "temporal-analysis/timeline-service",
			"layer", "application",
			"row_id", row.ID,
			"error", err.Error(),
		)
		return entities.EventRecord{}, false
	}
	return record, true
}

// DiscoverTriggers builds the two requested windows and runs the
// pairwise trigger scan over them.
func (s Service) DiscoverTriggers(ctx context.Context, req ports.DiscoverRequest) ([]entities.MetaPattern, error) {
	if err := validateWindows(req); err != nil {
		return nil, err
	}

	cfg := s.Discovery
	if req.MinScore != nil {
		if *req.MinScore < 0 || *req.MinScore > 1 {
			return nil, domainerrors.ErrInvalidWindow
		}
		cfg.MinScore = *req.MinScore
	}
	if req.Limit > 0 {
		cfg.TopN = req.Limit
	}

	windowA := s.BuildWindow(ctx, req.WindowAStart, req.WindowAEnd)
	windowB := s.BuildWindow(ctx, req.WindowBStart, req.WindowBEnd)

	patterns := services.DiscoverTriggers(windowA, windowB, cfg)

	resolveLogger(s.Logger).Info("trigger discovery completed",
		"event", "timeline_triggers_discovered",
		"module", "temporal-analysis/timeline-service",
		"layer", "application",
		"window_a_events", len(windowA),
		"window_b_events", len(windowB),
		"patterns", len(patterns),
	)
	return patterns, nil
}

// AnalyzeClusters runs discovery and aggregates the result into the
// cluster summary.
func (s Service) AnalyzeClusters(ctx context.Context, req ports.DiscoverRequest) (services.ClusterSummary, error) {
	patterns, err := s.DiscoverTriggers(ctx, req)
	if err != nil {
		return services.ClusterSummary{}, err
	}
	return services.AnalyzePatternClusters(patterns, 0)
}

// Describe reports the module's static capability descriptor.
func (s Service) Describe() ports.Capability {
	return ports.Capability{
		Name:  "timeline-service",
		Ready: s.Source != nil,
		Features: []string{
			"date-window event loading",
			"astrological signature similarity",
			"forward-in-time trigger discovery",
			"pattern cluster analysis",
		},
		Notes: "pairwise causal trigger scan over two event windows",
	}
}

func validateWindows(req ports.DiscoverRequest) error {
	if req.WindowAStart.IsZero() || req.WindowAEnd.IsZero() ||
		req.WindowBStart.IsZero() || req.WindowBEnd.IsZero() {
		return domainerrors.ErrInvalidWindow
	}
	return nil
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
