package services

import (
	"math"

	domainerrors "senkron/contexts/temporal-analysis/prediction-service/domain/errors"
)

// QuantumParams are the calibrated constants of the success-probability
// model p = sigmoid(k*(E - E0 - alpha*D + beta*dg)) * exp(-gamma*D).
type QuantumParams struct {
	// E0 is the base energy threshold.
	E0 float64
	// K scales the sigmoid input.
	K float64
	// Alpha is the distance attenuation coefficient.
	Alpha float64
	// Beta amplifies the gravitational shift term.
	Beta float64
	// Gamma is the exponential decay coefficient on distance.
	Gamma float64
}

func DefaultQuantumParams() QuantumParams {
	return QuantumParams{
		E0:    3.0,
		K:     1.25,
		Alpha: 0.9,
		Beta:  8.0,
		Gamma: 0.8,
	}
}

// SuccessProbability evaluates the quantum model for an energy level,
// gravitational shift and distance factor. Distance must be
// non-negative; the result is clamped to [0, 1].
func SuccessProbability(energy, gravShift, distance float64, params QuantumParams) (float64, error) {
	if distance < 0 {
		return 0, domainerrors.ErrNegativeDistance
	}

	x := params.K * (energy - params.E0 - params.Alpha*distance + params.Beta*gravShift)
	p := Sigmoid(x) * math.Exp(-params.Gamma*distance)

	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p, nil
}

// Sigmoid is the logistic function with the input clamped at |x| > 500,
// where exp would overflow or vanish anyway.
func Sigmoid(x float64) float64 {
	switch {
	case x > 500:
		return 1.0
	case x < -500:
		return 0.0
	default:
		return 1.0 / (1.0 + math.Exp(-x))
	}
}
