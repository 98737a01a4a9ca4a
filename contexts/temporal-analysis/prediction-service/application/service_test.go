package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"senkron/contexts/temporal-analysis/prediction-service/adapters/ephemeris"
	domainerrors "senkron/contexts/temporal-analysis/prediction-service/domain/errors"
	"senkron/contexts/temporal-analysis/prediction-service/ports"
)

type fakeStats struct {
	stats ports.WindowStats
	err   error
}

func (f fakeStats) WindowStats(ctx context.Context, start, end time.Time) (ports.WindowStats, error) {
	return f.stats, f.err
}

func day(offset int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestUnifiedScoreRejectsBadRange(t *testing.T) {
	svc := Service{Stats: fakeStats{}}

	_, err := svc.UnifiedScore(context.Background(), UnifiedRequest{
		Start: day(10), End: day(0), Energy: 5, Distance: 2,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	_, err = svc.UnifiedScore(context.Background(), UnifiedRequest{
		Start: day(0), End: day(0), Energy: 5, Distance: 2,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for equal dates, got %v", err)
	}
}

func TestUnifiedScoreRejectsNegativeDistance(t *testing.T) {
	svc := Service{Stats: fakeStats{}}

	_, err := svc.UnifiedScore(context.Background(), UnifiedRequest{
		Start: day(0), End: day(30), Energy: 5, Distance: -1,
	})
	if !errors.Is(err, domainerrors.ErrNegativeDistance) {
		t.Fatalf("expected ErrNegativeDistance, got %v", err)
	}
}

func TestUnifiedScoreComputesComponents(t *testing.T) {
	svc := Service{
		Stats: fakeStats{stats: ports.WindowStats{EventCount: 5, SignatureCount: 25}},
	}

	result, err := svc.UnifiedScore(context.Background(), UnifiedRequest{
		Start: day(0), End: day(30), Energy: 5, GravShift: 0.1, Distance: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AstroScore != 0.5 {
		t.Fatalf("expected astro 0.5, got %f", result.AstroScore)
	}
	if result.QuantScore < 0 || result.QuantScore > 1 {
		t.Fatalf("quant score out of range: %f", result.QuantScore)
	}
	if result.FinalScore < 0 || result.FinalScore > 1 {
		t.Fatalf("final score out of range: %f", result.FinalScore)
	}
	if result.Weights.Astro != 0.7 || result.Weights.Quantum != 0.3 {
		t.Fatalf("expected default weights, got %+v", result.Weights)
	}
	if result.WindowEvents != 5 {
		t.Fatalf("expected 5 window events, got %d", result.WindowEvents)
	}
}

func TestUnifiedScoreDegradesWhenStatsUnavailable(t *testing.T) {
	svc := Service{Stats: fakeStats{err: errors.New("catalog down")}}

	result, err := svc.UnifiedScore(context.Background(), UnifiedRequest{
		Start: day(0), End: day(30), Energy: 5, GravShift: 0.1, Distance: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AstroScore != 0.0 {
		t.Fatalf("expected astro to degrade to 0, got %f", result.AstroScore)
	}
}

func TestPositionsRejectsZeroDate(t *testing.T) {
	svc := Service{Ephemeris: ephemeris.NewEngine()}

	if _, err := svc.Positions(context.Background(), time.Time{}); !errors.Is(err, domainerrors.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestPositionsReturnsSnapshot(t *testing.T) {
	svc := Service{Ephemeris: ephemeris.NewEngine()}

	positions, err := svc.Positions(context.Background(), day(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(positions) != 10 {
		t.Fatalf("expected 10 bodies, got %d", len(positions))
	}
}

func TestHousesStartAtAscendantSign(t *testing.T) {
	svc := Service{}

	houses := svc.Houses(95.0) // Cancer
	if houses[0] != "Cancer" {
		t.Fatalf("expected Cancer first house, got %q", houses[0])
	}
}

func TestDescribeReflectsWiring(t *testing.T) {
	if (Service{}).Describe().Ready {
		t.Fatal("service without an ephemeris must not report ready")
	}
	svc := Service{Ephemeris: ephemeris.NewEngine()}
	if !svc.Describe().Ready {
		t.Fatal("service with an ephemeris must report ready")
	}
}
