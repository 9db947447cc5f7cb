package arg

import (
	"strings"

	"github.com/dshills/rigedit/internal/model"
)

// Fields splits a payload on single blanks and checks the field count
// against the accepted arities. Empty fields (doubled blanks, leading or
// trailing blanks) are malformed.
func Fields(payload string, arities ...int) ([]string, error) {
	if payload == "" {
		return nil, malformed("empty tuple")
	}
	fields := strings.Split(payload, " ")
	for _, f := range fields {
		if f == "" {
			return nil, malformed("empty field in %q", payload)
		}
	}
	for _, n := range arities {
		if len(fields) == n {
			return fields, nil
		}
	}
	return nil, malformed("%d fields in %q, want %v", len(fields), payload, arities)
}

// Head splits a payload into its first field and the remainder. Both
// must be non-empty.
func Head(payload string) (string, string, error) {
	head, rest, ok := strings.Cut(payload, " ")
	if !ok || head == "" || rest == "" {
		return "", "", malformed("want at least 2 fields in %q", payload)
	}
	return head, rest, nil
}

// Keyed is a value tagged by a leading token.
type Keyed[K any, V any] struct {
	Key   K
	Value V
}

// EnumFloat parses "<enum> <float>".
func EnumFloat[T ~int](e model.Enum[T]) Parser[Keyed[T, float32]] {
	key := Enum(e)
	return func(payload string) (Keyed[T, float32], error) {
		var out Keyed[T, float32]
		fields, err := Fields(payload, 2)
		if err != nil {
			return out, err
		}
		if out.Key, err = key(fields[0]); err != nil {
			return out, err
		}
		out.Value, err = Float(fields[1])
		return out, err
	}
}

// EnumColor parses "<enum> <color>"; the color is everything after the
// first blank.
func EnumColor[T ~int](e model.Enum[T]) Parser[Keyed[T, model.Color]] {
	key := Enum(e)
	return func(payload string) (Keyed[T, model.Color], error) {
		var out Keyed[T, model.Color]
		head, rest, err := Head(payload)
		if err != nil {
			return out, err
		}
		if out.Key, err = key(head); err != nil {
			return out, err
		}
		out.Value, err = Color(rest)
		return out, err
	}
}

// IntColor parses "<int> <color>".
func IntColor(payload string) (Keyed[int, model.Color], error) {
	var out Keyed[int, model.Color]
	head, rest, err := Head(payload)
	if err != nil {
		return out, err
	}
	if out.Key, err = Int(head); err != nil {
		return out, err
	}
	out.Value, err = Color(rest)
	return out, err
}

// Floats returns a parser for exactly n blank-separated numbers.
func Floats(n int) Parser[[]float32] {
	return func(payload string) ([]float32, error) {
		fields, err := Fields(payload, n)
		if err != nil {
			return nil, err
		}
		out := make([]float32, n)
		for i, f := range fields {
			if out[i], err = Float(f); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
}
