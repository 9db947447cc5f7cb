package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownToken indicates a token that is not a member of an enumeration.
var ErrUnknownToken = errors.New("model: unknown enumeration token")

// Enum is a closed enumeration whose members are addressed by exact,
// case-sensitive tokens in action text.
type Enum[T ~int] struct {
	kind  string
	names []string
	index map[string]T
}

// NewEnum creates an enumeration; the i-th name is the token for value T(i).
func NewEnum[T ~int](kind string, names ...string) Enum[T] {
	index := make(map[string]T, len(names))
	for i, n := range names {
		index[n] = T(i)
	}
	return Enum[T]{kind: kind, names: names, index: index}
}

// Kind returns the enumeration's name, used in error messages.
func (e Enum[T]) Kind() string {
	return e.kind
}

// Parse resolves a token to its value.
func (e Enum[T]) Parse(token string) (T, error) {
	v, ok := e.index[token]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownToken, e.kind, token)
	}
	return v, nil
}

// Name returns the token for v, or "" if v is out of range.
func (e Enum[T]) Name(v T) string {
	if int(v) < 0 || int(v) >= len(e.names) {
		return ""
	}
	return e.names[v]
}

// Names returns every token in sorted order.
func (e Enum[T]) Names() []string {
	out := append([]string(nil), e.names...)
	sort.Strings(out)
	return out
}

// Len returns the number of members.
func (e Enum[T]) Len() int {
	return len(e.names)
}
