package arg

import (
	"math"
	"strconv"
	"strings"

	"github.com/dshills/rigedit/internal/model"
)

// Text accepts any non-empty payload verbatim, embedded blanks included.
func Text(payload string) (string, error) {
	if payload == "" {
		return "", malformed("empty name")
	}
	return payload, nil
}

// Int parses a decimal integer.
func Int(payload string) (int, error) {
	n, err := strconv.Atoi(payload)
	if err != nil {
		return 0, malformed("integer %q", payload)
	}
	return n, nil
}

// Count parses a positive decimal integer.
func Count(payload string) (int, error) {
	n, err := Int(payload)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, malformed("count %d", n)
	}
	return n, nil
}

// Hex parses a base-16 id without a 0x prefix.
func Hex(payload string) (uint64, error) {
	n, err := strconv.ParseUint(payload, 16, 64)
	if err != nil {
		return 0, malformed("hex id %q", payload)
	}
	return n, nil
}

// Float parses a finite single-precision number. Range checks belong to
// the model setter.
func Float(payload string) (float32, error) {
	f, err := strconv.ParseFloat(payload, 32)
	if err != nil {
		return 0, malformed("number %q", payload)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, malformed("non-finite number %q", payload)
	}
	return float32(f), nil
}

// IndexBase parses the value of the index-base option, which is 0 or 1.
func IndexBase(payload string) (int, error) {
	switch payload {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	default:
		return 0, malformed("index base %q", payload)
	}
}

// Enum returns a parser for exact tokens of e.
func Enum[T ~int](e model.Enum[T]) Parser[T] {
	return func(payload string) (T, error) {
		v, err := e.Parse(payload)
		if err != nil {
			return 0, malformed("%v", err)
		}
		return v, nil
	}
}

// NamedID parses "<name>:<hex id>", the form used by shape menus. The
// name part is informational and may be empty.
func NamedID(payload string) (uint64, error) {
	i := strings.LastIndexByte(payload, ':')
	if i < 0 {
		return 0, malformed("missing ':' in %q", payload)
	}
	return Hex(payload[i+1:])
}
