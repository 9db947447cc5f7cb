package handler

import (
	"fmt"
)

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates the action was recognized and applied.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action was recognized but intentionally
	// skipped, e.g. because a precondition did not hold.
	StatusNoOp
	// StatusError indicates the mutation failed after the action was
	// recognized.
	StatusError
	// StatusCancelled indicates a pre-dispatch hook rejected the action.
	StatusCancelled
	// StatusUnhandled indicates the action was not recognized, or its
	// argument did not fit the grammar.
	StatusUnhandled
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	case StatusCancelled:
		return "cancelled"
	case StatusUnhandled:
		return "unhandled"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling an action.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Error contains any error that occurred. For StatusUnhandled it
	// explains why the action was not recognized.
	Error error

	// Message is an optional status message for display.
	Message string

	// Data holds handler-specific return data.
	Data map[string]interface{}
}

// Handled reports whether the action was recognized. A recognized action
// may still be a no-op or fail.
func (r Result) Handled() bool {
	return r.Status != StatusUnhandled && r.Status != StatusCancelled
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// SuccessWithMessage creates a successful result with a message.
func SuccessWithMessage(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NoOpWithMessage creates a no-operation result with a message.
func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...interface{}) Result {
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf(format, args...),
	}
}

// Cancelled creates a result for an action a hook rejected.
func Cancelled(err error) Result {
	return Result{Status: StatusCancelled, Error: err}
}

// Unhandled creates a result for an unrecognized action.
func Unhandled() Result {
	return Result{Status: StatusUnhandled}
}

// Malformed creates an unhandled result carrying the grammar failure.
func Malformed(err error) Result {
	return Result{Status: StatusUnhandled, Error: err}
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithData returns a copy of the result with data added.
func (r Result) WithData(key string, value interface{}) Result {
	if r.Data == nil {
		r.Data = make(map[string]interface{})
	}
	r.Data[key] = value
	return r
}

// GetData retrieves a value from the result data.
func (r Result) GetData(key string) (interface{}, bool) {
	if r.Data == nil {
		return nil, false
	}
	v, ok := r.Data[key]
	return v, ok
}

// GetDataString retrieves a string value from the result data.
func (r Result) GetDataString(key string) string {
	if v, ok := r.GetData(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
