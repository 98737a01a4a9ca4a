package services

import (
	domainerrors "senkron/contexts/temporal-analysis/prediction-service/domain/errors"
)

// FusionWeights blend the astrological and quantum component scores.
type FusionWeights struct {
	Astro   float64
	Quantum float64
}

func DefaultFusionWeights() FusionWeights {
	return FusionWeights{Astro: 0.7, Quantum: 0.3}
}

// FuseScores combines the two component scores through a sigmoid:
// final = sigmoid(wA*astro + wQ*quant). Both weights must sit in [0, 1].
func FuseScores(astroScore, quantScore float64, weights FusionWeights) (float64, error) {
	if weights.Astro < 0 || weights.Astro > 1 || weights.Quantum < 0 || weights.Quantum > 1 {
		return 0, domainerrors.ErrInvalidWeights
	}
	return Sigmoid(weights.Astro*astroScore + weights.Quantum*quantScore), nil
}

// aspectCapacity is the signature-entry count per event at which the
// density score saturates.
const aspectCapacity = 10

// AspectDensity normalizes the total number of signature entries over a
// window to [0, 1]: entries / (capacity * events), capped at 1. A window
// with no events scores 0.
func AspectDensity(totalEntries, eventCount int) float64 {
	if eventCount <= 0 {
		return 0.0
	}
	density := float64(totalEntries) / float64(aspectCapacity*eventCount)
	if density > 1.0 {
		return 1.0
	}
	if density < 0 {
		return 0.0
	}
	return density
}
