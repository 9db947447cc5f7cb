package action

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/rigedit/internal/action/arg"
)

// Catalog errors.
var (
	// ErrDuplicateAction indicates two claims of the same string.
	ErrDuplicateAction = errors.New("action: duplicate action string")

	// ErrMalformedEntry indicates a string that breaks the wire format.
	ErrMalformedEntry = errors.New("action: malformed catalog entry")

	// ErrOutOfSpan indicates a string whose noun lies outside the letter
	// span of the segment claiming it.
	ErrOutOfSpan = errors.New("action: noun outside segment span")

	// ErrLiteralShadowed indicates a literal that begins with a prefix
	// owned by a different segment.
	ErrLiteralShadowed = errors.New("action: literal shadowed by foreign prefix")
)

// Kind distinguishes literals from prefixes.
type Kind uint8

const (
	// KindLiteral is an exact action string.
	KindLiteral Kind = iota
	// KindPrefix is an action string template followed by an argument.
	KindPrefix
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// Entry is one catalog string and its owner.
type Entry struct {
	// Text is the literal, or the prefix including its trailing blank.
	Text string

	// Kind is literal or prefix.
	Kind Kind

	// Segment names the dispatcher segment that claimed the string.
	Segment string

	// Grammar is the argument grammar of a prefix.
	Grammar arg.Kind
}

// Command is an action string resolved against the vocabulary: the
// matched literal or prefix and the argument payload that follows it.
type Command struct {
	Kind    Kind
	Key     string
	Payload string
}

// Surface is anything that binds physical input to action strings.
type Surface interface {
	AddActionName(text string)
}

// Catalog is the process-wide set of action strings. It is populated
// once at startup and read-only afterwards.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Claim adds an entry. It fails on a duplicate string or a string that
// breaks the wire format.
func (c *Catalog) Claim(e Entry) error {
	if err := checkFormat(e); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.entries[e.Text]; ok {
		return fmt.Errorf("%w: %q claimed by %s and %s", ErrDuplicateAction, e.Text, prev.Segment, e.Segment)
	}
	c.entries[e.Text] = e
	c.order = append(c.order, e.Text)
	return nil
}

// ClaimAll claims every entry and joins the failures.
func (c *Catalog) ClaimAll(entries []Entry) error {
	var errs []error
	for _, e := range entries {
		if err := c.Claim(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkFormat(e Entry) error {
	text := e.Text
	verb, rest, ok := strings.Cut(text, " ")
	switch {
	case !ok || verb == "" || rest == "":
		return fmt.Errorf("%w: %q lacks verb and noun", ErrMalformedEntry, text)
	case e.Kind == KindLiteral && strings.HasSuffix(text, " "):
		return fmt.Errorf("%w: literal %q ends with a blank", ErrMalformedEntry, text)
	case e.Kind == KindPrefix && (!strings.HasSuffix(text, " ") || strings.HasSuffix(text, "  ")):
		return fmt.Errorf("%w: prefix %q must end with one blank", ErrMalformedEntry, text)
	case strings.Contains(text, "  "):
		return fmt.Errorf("%w: %q contains a doubled blank", ErrMalformedEntry, text)
	}
	return nil
}

// Validate checks cross-segment invariants once all segments have
// claimed their strings.
func (c *Catalog) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var errs []error
	for _, lit := range c.order {
		le := c.entries[lit]
		if le.Kind != KindLiteral {
			continue
		}
		for _, p := range c.order {
			pe := c.entries[p]
			if pe.Kind == KindPrefix && pe.Segment != le.Segment && strings.HasPrefix(lit, p) {
				errs = append(errs, fmt.Errorf("%w: %q (%s) begins with %q (%s)",
					ErrLiteralShadowed, lit, le.Segment, p, pe.Segment))
			}
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the entry for an exact literal or prefix string.
func (c *Catalog) Lookup(text string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[text]
	return e, ok
}

// Entries returns every entry in claim order.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.order))
	for i, text := range c.order {
		out[i] = c.entries[text]
	}
	return out
}

// Literals returns every literal, sorted.
func (c *Catalog) Literals() []string {
	return c.sorted(KindLiteral)
}

// Prefixes returns every prefix, sorted.
func (c *Catalog) Prefixes() []string {
	return c.sorted(KindPrefix)
}

func (c *Catalog) sorted(kind Kind) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []string
	for text, e := range c.entries {
		if e.Kind == kind {
			out = append(out, text)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// RegisterAll pushes every literal, in sorted order, to the surface.
// Prefixes are not bound; their argument is supplied at dispatch time.
// It returns the number of literals registered.
func (c *Catalog) RegisterAll(s Surface) int {
	literals := c.Literals()
	for _, text := range literals {
		s.AddActionName(text)
	}
	return len(literals)
}
