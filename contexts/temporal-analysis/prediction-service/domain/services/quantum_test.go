package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	domainerrors "senkron/contexts/temporal-analysis/prediction-service/domain/errors"
)

func TestSuccessProbabilityStaysInUnitInterval(t *testing.T) {
	params := DefaultQuantumParams()

	cases := []struct {
		energy, gravShift, distance float64
	}{
		{5.0, 0.1, 2.0},
		{5.0, 0.1, 0.0},
		{100.0, 0.1, 1.0},
		{5.0, 0.1, 100.0},
		{1000.0, 0.0, 0.1},
		{-1000.0, 0.0, 0.1},
	}
	for _, tc := range cases {
		p, err := SuccessProbability(tc.energy, tc.gravShift, tc.distance, params)
		require.NoError(t, err)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
	}
}

func TestSuccessProbabilityMonotonicInEnergy(t *testing.T) {
	params := DefaultQuantumParams()

	p1, err := SuccessProbability(3.0, 0.1, 1.0, params)
	require.NoError(t, err)
	p2, err := SuccessProbability(5.0, 0.1, 1.0, params)
	require.NoError(t, err)
	p3, err := SuccessProbability(7.0, 0.1, 1.0, params)
	require.NoError(t, err)

	require.LessOrEqual(t, p1, p2)
	require.LessOrEqual(t, p2, p3)
}

func TestSuccessProbabilityMonotonicInDistance(t *testing.T) {
	params := DefaultQuantumParams()

	p1, err := SuccessProbability(5.0, 0.1, 0.5, params)
	require.NoError(t, err)
	p2, err := SuccessProbability(5.0, 0.1, 2.0, params)
	require.NoError(t, err)
	p3, err := SuccessProbability(5.0, 0.1, 5.0, params)
	require.NoError(t, err)

	require.GreaterOrEqual(t, p1, p2)
	require.GreaterOrEqual(t, p2, p3)
}

func TestSuccessProbabilityMonotonicInGravShift(t *testing.T) {
	params := DefaultQuantumParams()

	p1, err := SuccessProbability(5.0, -0.1, 2.0, params)
	require.NoError(t, err)
	p2, err := SuccessProbability(5.0, 0.0, 2.0, params)
	require.NoError(t, err)
	p3, err := SuccessProbability(5.0, 0.1, 2.0, params)
	require.NoError(t, err)

	require.LessOrEqual(t, p1, p2)
	require.LessOrEqual(t, p2, p3)
}

func TestSuccessProbabilityRejectsNegativeDistance(t *testing.T) {
	_, err := SuccessProbability(5.0, 0.1, -1.0, DefaultQuantumParams())
	require.ErrorIs(t, err, domainerrors.ErrNegativeDistance)
}

func TestSuccessProbabilityMatchesFormula(t *testing.T) {
	params := DefaultQuantumParams()
	energy, gravShift, distance := 5.0, 0.1, 2.0

	x := params.K * (energy - params.E0 - params.Alpha*distance + params.Beta*gravShift)
	want := (1.0 / (1.0 + math.Exp(-x))) * math.Exp(-params.Gamma*distance)

	got, err := SuccessProbability(energy, gravShift, distance, params)
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-12)
}

func TestSigmoidClampsExtremeInputs(t *testing.T) {
	require.Equal(t, 1.0, Sigmoid(501))
	require.Equal(t, 0.0, Sigmoid(-501))
	require.InDelta(t, 0.5, Sigmoid(0), 1e-12)
}
