package script

import "errors"

// Errors for script execution.
var (
	// ErrClosed is returned when running a script on a closed runner.
	ErrClosed = errors.New("script: runner is closed")

	// ErrTimeout is returned when a script runs past its deadline.
	ErrTimeout = errors.New("script: execution timeout")

	// ErrUnhandledAction is raised in strict mode for an action that
	// no handler accepted.
	ErrUnhandledAction = errors.New("script: action not handled")
)
