package application

import (
	"context"
	"io"
	"log/slog"
	"time"

	domainerrors "senkron/contexts/temporal-analysis/prediction-service/domain/errors"
	"senkron/contexts/temporal-analysis/prediction-service/domain/services"
	"senkron/contexts/temporal-analysis/prediction-service/ports"
)

type Service struct {
	Ephemeris ports.Ephemeris
	Stats     ports.WindowStatsSource
	Quantum   services.QuantumParams
	Weights   services.FusionWeights
	Logger    *slog.Logger
}

// UnifiedRequest carries the inputs of one fused prediction: the event
// window feeding the astro component and the quantum model inputs.
type UnifiedRequest struct {
	Start     time.Time
	End       time.Time
	Energy    float64
	GravShift float64
	Distance  float64

	// Weights override the configured fusion weights when non-zero.
	Weights *services.FusionWeights
}

// UnifiedResult reports the component scores next to the fused one so
// callers can see what drove the outcome.
type UnifiedResult struct {
	AstroScore   float64
	QuantScore   float64
	FinalScore   float64
	Weights      services.FusionWeights
	WindowEvents int
}

// UnifiedScore computes the fused prediction: aspect density over the
// window, quantum success probability, then the sigmoid blend.
func (s Service) UnifiedScore(ctx context.Context, req UnifiedRequest) (UnifiedResult, error) {
	if req.Start.IsZero() || req.End.IsZero() || !req.Start.Before(req.End) {
		return UnifiedResult{}, domainerrors.ErrInvalidRange
	}

	weights := s.Weights
	if req.Weights != nil {
		weights = *req.Weights
	}
	if weights == (services.FusionWeights{}) {
		weights = services.DefaultFusionWeights()
	}

	params := s.Quantum
	if params == (services.QuantumParams{}) {
		params = services.DefaultQuantumParams()
	}

	astroScore := 0.0
	windowEvents := 0
	if s.Stats != nil {
		stats, err := s.Stats.WindowStats(ctx, req.Start, req.End)
		if err != nil {
			// A missing window degrades the astro component to zero
			// instead of failing the whole prediction.
			resolveLogger(s.Logger).Warn("window stats unavailable",
				"event", "prediction_stats_unavailable",
				"module", "temporal-analysis/prediction-service",
				"layer", "application",
				"error", err.Error(),
			)
		} else {
			astroScore = services.AspectDensity(stats.SignatureCount, stats.EventCount)
			windowEvents = stats.EventCount
		}
	}

	quantScore, err := services.SuccessProbability(req.Energy, req.GravShift, req.Distance, params)
	if err != nil {
		return UnifiedResult{}, err
	}

	finalScore, err := services.FuseScores(astroScore, quantScore, weights)
	if err != nil {
		return UnifiedResult{}, err
	}

	resolveLogger(s.Logger).Info("unified score computed",
		"event", "prediction_unified_scored",
		"module", "temporal-analysis/prediction-service",
		"layer", "application",
		"astro", astroScore,
		"quant", quantScore,
		"final", finalScore,
	)

	return UnifiedResult{
		AstroScore:   astroScore,
		QuantScore:   quantScore,
		FinalScore:   finalScore,
		Weights:      weights,
		WindowEvents: windowEvents,
	}, nil
}

// Positions returns the ephemeris snapshot for the given instant.
func (s Service) Positions(ctx context.Context, when time.Time) ([]ports.BodyPosition, error) {
	if when.IsZero() {
		return nil, domainerrors.ErrInvalidDate
	}
	return s.Ephemeris.PositionsAt(when.UTC())
}

// Houses computes the whole-sign house layout for an ascendant degree.
func (s Service) Houses(ascendantDeg float64) []string {
	return services.WholeSignHouses(ascendantDeg)
}

// Describe reports the module's static capability descriptor.
func (s Service) Describe() ports.Capability {
	return ports.Capability{
		Name:  "prediction-service",
		Ready: s.Ephemeris != nil,
		Features: []string{
			"ephemeris positions",
			"quantum success probability",
			"unified score fusion",
			"whole-sign houses",
		},
		Notes: "mean-orbit ephemeris with sigmoid score fusion",
	}
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
