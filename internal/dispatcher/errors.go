package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnrecognizedAction indicates no segment recognized the action
	// string, or its argument did not fit the prefix grammar.
	ErrUnrecognizedAction = errors.New("dispatcher: unrecognized action")

	// ErrDuplicateHandler indicates two handlers registered under one name.
	ErrDuplicateHandler = errors.New("dispatcher: duplicate handler")

	// ErrNilHandler indicates a nil handler was registered.
	ErrNilHandler = errors.New("dispatcher: nil handler")

	// ErrActionCancelled indicates the action was cancelled by a hook.
	ErrActionCancelled = errors.New("dispatcher: action cancelled by hook")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")
)
