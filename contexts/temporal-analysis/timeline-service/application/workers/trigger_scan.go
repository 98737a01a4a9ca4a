package workers

import (
	"context"
	"log/slog"
	"time"

	application "senkron/contexts/temporal-analysis/timeline-service/application"
	"senkron/contexts/temporal-analysis/timeline-service/ports"
)

const discoveredTopic = "timeline.pattern.discovered"

// TriggerScan periodically splits the recent past into two adjacent
// windows, runs trigger discovery across them, records the run, and
// publishes the leading patterns on the bus.
type TriggerScan struct {
	Service      application.Service
	Runs         ports.RunRepository
	Publisher    ports.EventPublisher
	IDGen        ports.IDGenerator
	Clock        ports.Clock
	Observer     ports.ScanObserver
	LookbackDays int
	PublishTop   int
	Logger       *slog.Logger
}

func (w TriggerScan) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(w.Logger)

	now := time.Now().UTC()
	if w.Clock != nil {
		now = w.Clock.Now().UTC()
	}
	started := now

	lookback := w.LookbackDays
	if lookback <= 0 {
		lookback = 60
	}
	publishTop := w.PublishTop
	if publishTop <= 0 {
		publishTop = 3
	}

	windowAStart := now.AddDate(0, 0, -lookback)
	split := now.AddDate(0, 0, -lookback/2)

	patterns, err := w.Service.DiscoverTriggers(ctx, ports.DiscoverRequest{
		WindowAStart: windowAStart,
		WindowAEnd:   split,
		WindowBStart: split,
		WindowBEnd:   now,
	})
	if err != nil {
		logger.Error("trigger scan failed",
			"event", "timeline_scan_failed",
			"module", "temporal-analysis/timeline-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	runID := ""
	if w.IDGen != nil {
		runID, err = w.IDGen.NewID(ctx)
		if err != nil {
			return err
		}
	}

	run := ports.ScanRun{
		RunID:        runID,
		WindowAStart: windowAStart,
		WindowAEnd:   split,
		WindowBStart: split,
		WindowBEnd:   now,
		PatternCount: len(patterns),
		StartedAt:    started,
		CompletedAt:  now,
	}
	if len(patterns) > 0 {
		run.TopScore = patterns[0].Score
	}
	if w.Runs != nil {
		if err := w.Runs.SaveRun(ctx, run); err != nil {
			return err
		}
	}

	if w.Publisher != nil {
		top := len(patterns)
		if top > publishTop {
			top = publishTop
		}
		for _, pattern := range patterns[:top] {
			eventID := runID
			if w.IDGen != nil {
				if id, idErr := w.IDGen.NewID(ctx); idErr == nil {
					eventID = id
				}
			}
			envelope := ports.EventEnvelope{
				EventID:       eventID,
				EventType:     discoveredTopic,
				OccurredAtUTC: now,
				EntityType:    "meta_pattern",
				EntityID:      pattern.Name,
				Payload: map[string]any{
					"name":        pattern.Name,
					"score":       pattern.Score,
					"description": pattern.Description,
					"nodes":       pattern.Nodes,
					"links":       pattern.Links,
				},
			}
			if err := w.Publisher.Publish(ctx, discoveredTopic, envelope); err != nil {
				logger.Error("pattern publish failed",
					"event", "timeline_pattern_publish_failed",
					"module", "temporal-analysis/timeline-service",
					"layer", "worker",
					"pattern", pattern.Name,
					"error", err.Error(),
				)
			}
		}
	}

	if w.Observer != nil {
		w.Observer.ObserveScan(started, len(patterns))
	}

	logger.Info("trigger scan completed",
		"event", "timeline_scan_completed",
		"module", "temporal-analysis/timeline-service",
		"layer", "worker",
		"run_id", runID,
		"patterns", len(patterns),
	)
	return nil
}
