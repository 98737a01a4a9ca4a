package errors

import "errors"

var (
	// ErrInvalidBatch marks a batch payload that failed schema validation.
	ErrInvalidBatch = errors.New("batch payload failed validation")

	// ErrInvalidFilter marks an out-of-range list filter.
	ErrInvalidFilter = errors.New("invalid list filter")

	// ErrSourceUnavailable marks an unreadable import source.
	ErrSourceUnavailable = errors.New("import source unavailable")
)
