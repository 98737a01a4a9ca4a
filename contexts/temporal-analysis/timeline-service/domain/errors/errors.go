package errors

import "errors"

var (
	ErrInvalidWindow = errors.New("window bounds are invalid")
	ErrNoPatterns    = errors.New("no patterns available for analysis")
)
