package errors

import "errors"

var (
	// ErrNegativeDistance marks a quantum distance factor below zero.
	ErrNegativeDistance = errors.New("distance factor must be non-negative")

	// ErrInvalidWeights marks fusion weights outside [0, 1].
	ErrInvalidWeights = errors.New("fusion weights must be within [0, 1]")

	// ErrInvalidRange marks a prediction range whose start is not before
	// its end.
	ErrInvalidRange = errors.New("start date must precede end date")

	// ErrInvalidDate marks an unparsable ephemeris timestamp.
	ErrInvalidDate = errors.New("invalid ephemeris date")

	// ErrInvalidDegrees marks an unreadable ecliptic angle.
	ErrInvalidDegrees = errors.New("invalid ecliptic degrees")
)
