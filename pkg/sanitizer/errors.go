package sanitizer

import "errors"

var (
	// ErrInvalidConfig is the umbrella error for all construction-time
	// configuration failures. Every more specific error below is joined
	// with it, so callers can match on either.
	ErrInvalidConfig = errors.New("invalid sanitizer configuration")

	ErrNoSensitiveKeys         = errors.New("sensitive key set is empty")
	ErrEmptyMaskToken          = errors.New("mask token is empty")
	ErrMaskTokenTooLong        = errors.New("mask token exceeds 40 characters")
	ErrForbiddenMaskToken      = errors.New("mask token matches forbidden pattern")
	ErrInvalidPattern          = errors.New("invalid sensitive pattern")
	ErrInvalidSeparator        = errors.New("invalid phrase separator")
	ErrInvalidForbiddenPattern = errors.New("invalid mask token forbidden pattern")
)
