package bench

import "errors"

// Error variables for registry, selection and configuration.
var (
	ErrUnknownTag         = errors.New("unknown tag")
	ErrEmptyName          = errors.New("benchmark name cannot be empty")
	ErrDuplicateBenchmark = errors.New("benchmark already registered")
	ErrInvalidConfig      = errors.New("invalid run config")
)
