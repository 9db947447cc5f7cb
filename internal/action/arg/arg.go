// Package arg parses the argument payloads that follow an action prefix.
//
// Every parser rejects an empty payload. Failures wrap ErrMalformedArgument
// so callers can tell a bad argument from an unknown action.
package arg

import (
	"errors"
	"fmt"
)

// ErrMalformedArgument indicates a payload that does not fit its grammar.
var ErrMalformedArgument = errors.New("arg: malformed argument")

// Parser converts a raw payload into a typed value.
type Parser[T any] func(payload string) (T, error)

// Kind names an argument grammar.
type Kind string

// Argument grammars.
const (
	KindText   Kind = "text"
	KindInt    Kind = "int"
	KindIndex  Kind = "index"
	KindHex    Kind = "hex"
	KindFloat  Kind = "float"
	KindEnum   Kind = "enum"
	KindTuple  Kind = "tuple"
	KindColor  Kind = "color"
	KindVector Kind = "vector"
)

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedArgument, fmt.Sprintf(format, args...))
}

// IsMalformed reports whether err came from a grammar failure.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedArgument)
}
