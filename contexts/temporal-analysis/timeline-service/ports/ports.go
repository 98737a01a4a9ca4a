package ports

import (
	"context"
	"time"
)

// SourceEvent is one raw row from an event source. Dates stay textual at
// this boundary; the window builder parses and filters them, skipping
// rows it cannot make sense of.
type SourceEvent struct {
	ID             string
	Date           string
	Label          string
	Category       string
	Description    string
	AstroSignature string
}

// EventSource supplies raw rows for window building. A failing or empty
// source yields an empty window, never an error surfaced to callers:
// distinguishing "no events" from "source broken" is the wiring layer's
// job, not the engine's.
type EventSource interface {
	FetchAll(ctx context.Context) ([]SourceEvent, error)
}

// DiscoverRequest selects the two windows and optional tuning overrides
// for one discovery run.
type DiscoverRequest struct {
	WindowAStart time.Time
	WindowAEnd   time.Time
	WindowBStart time.Time
	WindowBEnd   time.Time

	// MinScore overrides the configured acceptance threshold when set.
	MinScore *float64
	// Limit truncates the ranked result when positive.
	Limit int
}

// ScanRun records one worker discovery sweep.
type ScanRun struct {
	RunID        string
	WindowAStart time.Time
	WindowAEnd   time.Time
	WindowBStart time.Time
	WindowBEnd   time.Time
	PatternCount int
	TopScore     float64
	StartedAt    time.Time
	CompletedAt  time.Time
}

type RunRepository interface {
	SaveRun(ctx context.Context, run ScanRun) error
	ListRuns(ctx context.Context, limit int) ([]ScanRun, error)
}

// EventEnvelope is the bus shape this module publishes. The platform bus
// adapter translates it to the shared envelope contract.
type EventEnvelope struct {
	EventID       string
	EventType     string
	OccurredAtUTC time.Time
	EntityType    string
	EntityID      string
	Payload       any
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ScanObserver receives scan telemetry (duration, discovered count).
type ScanObserver interface {
	ObserveScan(started time.Time, discovered int)
}

// Capability is the static self-description surfaced by health reporting.
type Capability struct {
	Name     string
	Ready    bool
	Features []string
	Notes    string
}
