package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDegrees(t *testing.T) {
	require.Equal(t, 0.0, NormalizeDegrees(360.0))
	require.Equal(t, 10.0, NormalizeDegrees(370.0))
	require.Equal(t, 350.0, NormalizeDegrees(-10.0))
	require.Equal(t, 0.0, NormalizeDegrees(-720.0))
}

func TestNormalizeDegreesTinyNegativeStaysBelow360(t *testing.T) {
	// -1e-16 + 360 rounds to exactly 360 in float64; the fold must land
	// back at 0 so sign lookup never indexes past Pisces.
	folded := NormalizeDegrees(-1e-16)
	require.Equal(t, 0.0, folded)

	pos := DegreesToZodiac(-1e-16)
	require.Equal(t, "Aries", pos.Sign)
	require.Equal(t, 0, pos.SignIndex)
}

func TestDegreesToDMS(t *testing.T) {
	dms := DegreesToDMS(15.5)
	require.Equal(t, 15, dms.Degrees)
	require.Equal(t, 30, dms.Minutes)
	require.InDelta(t, 0.0, dms.Seconds, 1e-9)

	dms = DegreesToDMS(0.5125)
	require.Equal(t, 0, dms.Degrees)
	require.Equal(t, 30, dms.Minutes)
	require.InDelta(t, 45.0, dms.Seconds, 1e-9)
}

func TestDegreesToZodiac(t *testing.T) {
	pos := DegreesToZodiac(0.0)
	require.Equal(t, "Aries", pos.Sign)
	require.Equal(t, 0, pos.SignIndex)

	pos = DegreesToZodiac(45.0)
	require.Equal(t, "Taurus", pos.Sign)
	require.Equal(t, 1, pos.SignIndex)
	require.InDelta(t, 15.0, pos.DegInSign, 1e-9)

	pos = DegreesToZodiac(359.9)
	require.Equal(t, "Pisces", pos.Sign)
	require.Equal(t, 11, pos.SignIndex)

	// Longitudes fold before bucketing.
	pos = DegreesToZodiac(390.0)
	require.Equal(t, "Taurus", pos.Sign)
}

func TestWholeSignHouses(t *testing.T) {
	houses := WholeSignHouses(125.0) // 125 deg = Leo ascendant
	require.Len(t, houses, 12)
	require.Equal(t, "Leo", houses[0])
	require.Equal(t, "Virgo", houses[1])
	require.Equal(t, "Cancer", houses[11])
}
