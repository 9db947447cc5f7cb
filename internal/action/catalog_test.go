package action

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/dshills/rigedit/internal/action/arg"
)

type surface struct {
	names []string
}

func (s *surface) AddActionName(text string) { s.names = append(s.names, text) }

func literal(text, segment string) Entry {
	return Entry{Text: text, Kind: KindLiteral, Segment: segment}
}

func prefixEntry(text, segment string, g arg.Kind) Entry {
	return Entry{Text: text, Kind: KindPrefix, Segment: segment, Grammar: g}
}

func claimAll(t *testing.T, c *Catalog, entries ...Entry) {
	t.Helper()
	for _, e := range entries {
		if err := c.Claim(e); err != nil {
			t.Fatalf("Claim(%q): %v", e.Text, err)
		}
	}
}

func TestCatalogClaim(t *testing.T) {
	c := NewCatalog()
	claimAll(t, c,
		literal("next checkpoint", "next"),
		prefixEntry("select bone ", "select[a-n]", arg.KindText))

	e, ok := c.Lookup("select bone ")
	if !ok {
		t.Fatal("prefix not found")
	}
	if e.Kind != KindPrefix || e.Grammar != arg.KindText {
		t.Errorf("entry = %+v", e)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	if _, ok := c.Lookup("select bone"); ok {
		t.Error("lookup without the trailing space should miss")
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	c := NewCatalog()
	claimAll(t, c, literal("next checkpoint", "next"))

	err := c.Claim(literal("next checkpoint", "previous"))
	if !errors.Is(err, ErrDuplicateAction) {
		t.Fatalf("error = %v, want ErrDuplicateAction", err)
	}
	if !strings.Contains(err.Error(), "next and previous") {
		t.Errorf("error %q should name both segments", err)
	}

	claimAll(t, c, prefixEntry("select bone ", "select[a-n]", arg.KindText))
	err = c.Claim(prefixEntry("select bone ", "select[o-z]", arg.KindText))
	if !errors.Is(err, ErrDuplicateAction) {
		t.Errorf("error = %v, want ErrDuplicateAction", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCatalogRejectsMalformedEntries(t *testing.T) {
	tests := []Entry{
		literal("checkpoint", "next"),
		literal("next ", "next"),
		literal("next checkpoint ", "next"),
		literal("next  checkpoint", "next"),
		prefixEntry("select bone", "select[a-n]", arg.KindText),
		prefixEntry("select bone  ", "select[a-n]", arg.KindText),
	}
	for _, e := range tests {
		if err := NewCatalog().Claim(e); !errors.Is(err, ErrMalformedEntry) {
			t.Errorf("Claim(%q): error = %v, want ErrMalformedEntry", e.Text, err)
		}
	}
}

func TestCatalogClaimAllJoinsErrors(t *testing.T) {
	c := NewCatalog()
	err := c.ClaimAll([]Entry{
		literal("next bone", "next"),
		literal("next bone", "next"),
		literal("next", "next"),
		literal("next track", "next"),
	})
	if !errors.Is(err, ErrDuplicateAction) || !errors.Is(err, ErrMalformedEntry) {
		t.Errorf("error = %v, want both ErrDuplicateAction and ErrMalformedEntry", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCatalogValidate(t *testing.T) {
	c := NewCatalog()
	claimAll(t, c,
		prefixEntry("select bone ", "select[a-n]", arg.KindText),
		literal("select bone Hand_L", "select[a-n]"))
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	claimAll(t, c, literal("select bone Foot_R", "select[o-z]"))
	if err := c.Validate(); !errors.Is(err, ErrLiteralShadowed) {
		t.Errorf("error = %v, want ErrLiteralShadowed", err)
	}
}

func TestCatalogListings(t *testing.T) {
	c := NewCatalog()
	claimAll(t, c,
		literal("previous checkpoint", "previous"),
		literal("next checkpoint", "next"),
		prefixEntry("select keyframe ", "select[a-n]", arg.KindIndex),
		prefixEntry("select bone ", "select[a-n]", arg.KindText))

	if got := c.Literals(); !slices.Equal(got, []string{"next checkpoint", "previous checkpoint"}) {
		t.Errorf("Literals() = %q", got)
	}
	if got := c.Prefixes(); !slices.Equal(got, []string{"select bone ", "select keyframe "}) {
		t.Errorf("Prefixes() = %q", got)
	}

	entries := c.Entries()
	if len(entries) != 4 {
		t.Fatalf("Entries() has %d entries, want 4", len(entries))
	}
	if entries[0].Text != "previous checkpoint" || entries[3].Text != "select bone " {
		t.Errorf("entries out of order: %q ... %q", entries[0].Text, entries[3].Text)
	}
}

func TestCatalogRegisterAll(t *testing.T) {
	c := NewCatalog()
	claimAll(t, c,
		literal("next checkpoint", "next"),
		prefixEntry("select bone ", "select[a-n]", arg.KindText),
		literal("next bone", "next"))

	s := &surface{}
	if n := c.RegisterAll(s); n != 2 {
		t.Errorf("RegisterAll() = %d, want 2", n)
	}
	if !slices.Equal(s.names, []string{"next bone", "next checkpoint"}) {
		t.Errorf("registered %q", s.names)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{KindLiteral: "literal", KindPrefix: "prefix", Kind(7): "unknown"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
