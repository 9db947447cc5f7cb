package dispatcher

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/dshills/rigedit/internal/action"
)

// Suggester proposes a catalog string close to an unrecognized one.
type Suggester struct {
	catalog     *action.Catalog
	maxDistance int
}

// NewSuggester creates a suggester over the catalog. Candidates further
// than maxDistance edits away are never proposed.
func NewSuggester(catalog *action.Catalog, maxDistance int) *Suggester {
	return &Suggester{catalog: catalog, maxDistance: maxDistance}
}

// Suggest returns the closest literal, or the closest prefix when the
// text looks like a prefixed action. Ties go to the lexically smaller
// string. It returns "" when nothing is close enough.
func (s *Suggester) Suggest(text string) string {
	if s == nil || s.catalog == nil || text == "" {
		return ""
	}

	best := ""
	bestDist := s.maxDistance + 1
	consider := func(candidate string, dist int) {
		if dist < bestDist || (dist == bestDist && candidate < best) {
			best, bestDist = candidate, dist
		}
	}

	verb := ExtractVerb(text)
	for _, lit := range s.catalog.Literals() {
		consider(lit, levenshtein.ComputeDistance(text, lit))
	}
	for _, p := range s.catalog.Prefixes() {
		// Compare only the head of text; the argument is free-form.
		n := len(p)
		if n > len(text) {
			n = len(text)
		}
		d := levenshtein.ComputeDistance(text[:n], p)
		if ExtractVerb(p) != verb {
			d++
		}
		consider(strings.TrimSuffix(p, " "), d)
	}

	if bestDist > s.maxDistance {
		return ""
	}
	return best
}
