package model

import (
	"errors"
	"testing"
)

func TestEnumParse(t *testing.T) {
	v, err := ShadowModes.Parse("CastAndReceive")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := ShadowModes.Name(v); got != "CastAndReceive" {
		t.Errorf("Name = %q, want CastAndReceive", got)
	}

	_, err = ShadowModes.Parse("castandreceive")
	if !errors.Is(err, ErrUnknownToken) {
		t.Errorf("expected ErrUnknownToken, got %v", err)
	}
}

func TestEnumNames(t *testing.T) {
	e := NewEnum[int]("Letter", "c", "a", "b")
	if e.Kind() != "Letter" {
		t.Errorf("Kind = %q", e.Kind())
	}
	if e.Len() != 3 {
		t.Errorf("Len = %d, want 3", e.Len())
	}

	names := e.Names()
	want := []string{"a", "b", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names = %v, want %v", names, want)
		}
	}

	// Names must not reorder the value mapping.
	if v, _ := e.Parse("c"); v != 0 {
		t.Errorf("Parse(c) = %d, want 0", v)
	}
	if e.Name(-1) != "" || e.Name(3) != "" {
		t.Error("out of range values should have no name")
	}
}

func TestEnumTokensAreDistinct(t *testing.T) {
	check := func(kind string, names []string) {
		seen := make(map[string]bool)
		for _, n := range names {
			if seen[n] {
				t.Errorf("%s: duplicate token %q", kind, n)
			}
			seen[n] = true
		}
	}
	check(WhichCgms.Kind(), WhichCgms.Names())
	check(PlayTimeSlots.Kind(), PlayTimeSlots.Names())
	check(Backgrounds.Kind(), Backgrounds.Names())
	check(RigidBodyParameters.Kind(), RigidBodyParameters.Names())
	check(ShapeParameters.Kind(), ShapeParameters.Names())
	check(TweenRotationModes.Kind(), TweenRotationModes.Names())
}

func TestValueStrings(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 1}
	if got := c.String(); got != "1 0.5 0 1" {
		t.Errorf("Color.String = %q", got)
	}
	v := Vector3{X: 1, Y: -2, Z: 0.25}
	if got := v.String(); got != "(1, -2, 0.25)" {
		t.Errorf("Vector3.String = %q", got)
	}
	if v.IsZero() || !(Vector3{}).IsZero() {
		t.Error("IsZero mismatch")
	}
	if AxisY.String() != "Y" || Axis(9).String() != "?" {
		t.Error("Axis.String mismatch")
	}
}
