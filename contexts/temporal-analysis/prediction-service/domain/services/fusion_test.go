package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	domainerrors "senkron/contexts/temporal-analysis/prediction-service/domain/errors"
)

func TestFuseScoresBlendsComponents(t *testing.T) {
	// Shifting weight between the components must change the outcome.
	astroHeavy, err := FuseScores(0.9, 0.1, FusionWeights{Astro: 0.9, Quantum: 0.1})
	require.NoError(t, err)
	quantHeavy, err := FuseScores(0.9, 0.1, FusionWeights{Astro: 0.1, Quantum: 0.9})
	require.NoError(t, err)
	require.NotEqual(t, astroHeavy, quantHeavy)

	final, err := FuseScores(0.5, 0.5, DefaultFusionWeights())
	require.NoError(t, err)
	require.GreaterOrEqual(t, final, 0.0)
	require.LessOrEqual(t, final, 1.0)
}

func TestFuseScoresRejectsOutOfRangeWeights(t *testing.T) {
	_, err := FuseScores(0.5, 0.5, FusionWeights{Astro: 1.5, Quantum: 0.5})
	require.ErrorIs(t, err, domainerrors.ErrInvalidWeights)

	_, err = FuseScores(0.5, 0.5, FusionWeights{Astro: 0.5, Quantum: -0.1})
	require.ErrorIs(t, err, domainerrors.ErrInvalidWeights)
}

func TestAspectDensity(t *testing.T) {
	require.Equal(t, 0.0, AspectDensity(10, 0))
	require.Equal(t, 0.0, AspectDensity(0, 5))
	require.InDelta(t, 0.5, AspectDensity(25, 5), 1e-12)
	// Saturates at full capacity.
	require.Equal(t, 1.0, AspectDensity(200, 5))
}
