package arg

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/rigedit/internal/model"
)

// Color parses "#rrggbb", "#rgb", or "r g b [a]" with components in
// [0, 1]. Alpha defaults to 1.
func Color(text string) (model.Color, error) {
	if strings.HasPrefix(text, "#") {
		c, err := colorful.Hex(text)
		if err != nil {
			return model.Color{}, malformed("color %q", text)
		}
		return model.Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}, nil
	}

	fields, err := Fields(text, 3, 4)
	if err != nil {
		return model.Color{}, err
	}
	var rgba [4]float32
	rgba[3] = 1
	for i, f := range fields {
		if rgba[i], err = Float(f); err != nil {
			return model.Color{}, err
		}
	}

	c := colorful.Color{R: float64(rgba[0]), G: float64(rgba[1]), B: float64(rgba[2])}
	if !c.IsValid() || rgba[3] < 0 || rgba[3] > 1 {
		return model.Color{}, malformed("color component out of range in %q", text)
	}
	return model.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}

// Vector parses three numbers separated by blanks, optionally written as
// "(x, y, z)".
func Vector(text string) (model.Vector3, error) {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, ",", " ")
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return model.Vector3{}, malformed("vector %q", text)
	}
	var xyz [3]float32
	for i, f := range fields {
		v, err := Float(f)
		if err != nil {
			return model.Vector3{}, err
		}
		xyz[i] = v
	}
	return model.Vector3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
