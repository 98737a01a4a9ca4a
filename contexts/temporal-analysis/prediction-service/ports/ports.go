package ports

import (
	"context"
	"time"

	"senkron/contexts/temporal-analysis/prediction-service/domain/services"
)

// BodyPosition is one celestial body's computed state at an instant.
type BodyPosition struct {
	Name       string
	Longitude  float64
	Retrograde bool
	Zodiac     services.ZodiacPosition
}

// Ephemeris computes ecliptic positions for the supported bodies. The
// returned slice is ordered sun-to-pluto so output stays deterministic.
type Ephemeris interface {
	PositionsAt(when time.Time) ([]BodyPosition, error)
}

// WindowStats summarizes the event window feeding the astro component
// of a unified prediction.
type WindowStats struct {
	EventCount     int
	SignatureCount int
}

// WindowStatsSource reports window statistics from the event timeline.
// The wiring layer bridges this to the timeline engine.
type WindowStatsSource interface {
	WindowStats(ctx context.Context, start, end time.Time) (WindowStats, error)
}

// Capability is the static self-description surfaced by health reporting.
type Capability struct {
	Name     string
	Ready    bool
	Features []string
	Notes    string
}
