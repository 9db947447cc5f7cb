package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingModel indicates the editor model is required but not set.
	ErrMissingModel = errors.New("execution context: model is required")

	// ErrMissingHistory indicates history is required but not set.
	ErrMissingHistory = errors.New("execution context: history is required")

	// ErrMissingUI indicates the user interface is required but not set.
	ErrMissingUI = errors.New("execution context: user interface is required")
)
