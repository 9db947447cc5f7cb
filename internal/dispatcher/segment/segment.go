// Package segment implements the dispatch unit for one verb and one
// letter span of nouns.
//
// A Segment resolves an action string in two phases. The exact-literal
// phase looks the whole string up in a map. Only when that fails does the
// prefix phase run, testing prefixes from longest to shortest, so a
// prefix such as "set time toKeyframe " is matched before "set time ".
package segment

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

// Span is an inclusive range of noun first characters.
type Span struct {
	First byte
	Last  byte
	Label string
}

// Standard spans. A noun starting with a digit or an uppercase letter
// belongs to the a-n span.
var (
	SpanAll = Span{First: '!', Last: '~', Label: ""}
	SpanAN  = Span{First: '0', Last: 'n', Label: "a-n"}
	SpanOZ  = Span{First: 'o', Last: 'z', Label: "o-z"}
)

// Contains reports whether c falls in the span.
func (s Span) Contains(c byte) bool {
	return c >= s.First && c <= s.Last
}

// Mutation applies a recognized action to the context.
type Mutation func(ctx *execctx.ExecutionContext) handler.Result

// prefixRule is a prefix with its argument handler. check, when set,
// validates a payload without applying it.
type prefixRule struct {
	text    string
	grammar arg.Kind
	check   func(payload string) error
	apply   func(ctx *execctx.ExecutionContext, payload string) handler.Result
}

// Segment dispatches the literals and prefixes of one verb and span.
// It is built once at startup and read-only afterwards.
type Segment struct {
	verb string
	span Span
	name string

	literals map[string]Mutation
	releases map[string]Mutation
	prefixes []prefixRule
	entries  []action.Entry
	errs     []error
	require  func(ctx *execctx.ExecutionContext) error
}

// New creates an empty segment for a verb and span.
func New(verb string, span Span) *Segment {
	name := verb
	if span.Label != "" {
		name = verb + "[" + span.Label + "]"
	}
	return &Segment{
		verb:     verb,
		span:     span,
		name:     name,
		literals: make(map[string]Mutation),
		releases: make(map[string]Mutation),
	}
}

// Name implements handler.Handler.
func (s *Segment) Name() string { return s.name }

// Verb returns the verb the segment dispatches.
func (s *Segment) Verb() string { return s.verb }

// claim checks that text belongs to this segment and is not yet taken.
func (s *Segment) claim(text string, kind action.Kind, grammar arg.Kind) bool {
	if !s.CanHandle(text) {
		s.errs = append(s.errs, fmt.Errorf("%w: %q in %s", action.ErrOutOfSpan, text, s.name))
		return false
	}
	for _, e := range s.entries {
		if e.Text == text {
			s.errs = append(s.errs, fmt.Errorf("%w: %q twice in %s", action.ErrDuplicateAction, text, s.name))
			return false
		}
	}
	s.entries = append(s.entries, action.Entry{Text: text, Kind: kind, Segment: s.name, Grammar: grammar})
	return true
}

// Literal registers an exact action string.
func (s *Segment) Literal(text string, fn Mutation) *Segment {
	if s.claim(text, action.KindLiteral, "") {
		s.literals[text] = fn
	}
	return s
}

// Release registers the handler for the release event of a literal that
// was registered with Literal.
func (s *Segment) Release(text string, fn Mutation) *Segment {
	if _, ok := s.literals[text]; !ok {
		s.errs = append(s.errs, fmt.Errorf("segment %s: release of unregistered literal %q", s.name, text))
		return s
	}
	s.releases[text] = fn
	return s
}

// Prefix registers a prefix whose payload is passed through unparsed.
// An empty payload is rejected before apply runs.
func (s *Segment) Prefix(text string, grammar arg.Kind, apply func(ctx *execctx.ExecutionContext, payload string) handler.Result) *Segment {
	return s.addPrefix(prefixRule{text: text, grammar: grammar, apply: apply})
}

func (s *Segment) addPrefix(rule prefixRule) *Segment {
	if !s.claim(rule.text, action.KindPrefix, rule.grammar) {
		return s
	}
	s.prefixes = append(s.prefixes, rule)
	sort.SliceStable(s.prefixes, func(i, j int) bool {
		return len(s.prefixes[i].text) > len(s.prefixes[j].text)
	})
	return s
}

// On registers a prefix whose payload is parsed before apply runs. A parse
// failure leaves the action unhandled with the grammar error attached.
func On[T any](s *Segment, text string, grammar arg.Kind, parse arg.Parser[T], apply func(ctx *execctx.ExecutionContext, v T) handler.Result) *Segment {
	return s.addPrefix(prefixRule{
		text:    text,
		grammar: grammar,
		check: func(payload string) error {
			_, err := parse(payload)
			return err
		},
		apply: func(ctx *execctx.ExecutionContext, payload string) handler.Result {
			v, err := parse(payload)
			if err != nil {
				return handler.Malformed(fmt.Errorf("%q: %w", text+payload, err))
			}
			return apply(ctx, v)
		},
	})
}

// Require installs a check run before any recognized action of the
// segment is applied. A failing check turns the action into an error.
func (s *Segment) Require(check func(ctx *execctx.ExecutionContext) error) *Segment {
	s.require = check
	return s
}

// RequireModel is a check that the context carries an editor model.
func RequireModel(ctx *execctx.ExecutionContext) error {
	if ctx.Model == nil {
		return execctx.ErrMissingModel
	}
	return nil
}

// Err returns every registration error.
func (s *Segment) Err() error {
	return errors.Join(s.errs...)
}

// Entries returns the claimed strings in registration order.
func (s *Segment) Entries() []action.Entry {
	return append([]action.Entry(nil), s.entries...)
}

// CanHandle implements handler.Handler. It reports whether the string
// starts with this segment's verb and a noun in its span.
func (s *Segment) CanHandle(actionName string) bool {
	n := len(s.verb)
	return len(actionName) > n+1 &&
		actionName[n] == ' ' &&
		strings.HasPrefix(actionName, s.verb) &&
		s.span.Contains(actionName[n+1])
}

// Resolve matches an action string against the segment's vocabulary.
func (s *Segment) Resolve(text string) (action.Command, bool) {
	if _, ok := s.literals[text]; ok {
		return action.Command{Kind: action.KindLiteral, Key: text}, true
	}
	for _, p := range s.prefixes {
		if strings.HasPrefix(text, p.text) {
			return action.Command{Kind: action.KindPrefix, Key: p.text, Payload: text[len(p.text):]}, true
		}
	}
	return action.Command{}, false
}

// Handle implements handler.Handler.
func (s *Segment) Handle(a action.Action, ctx *execctx.ExecutionContext) handler.Result {
	if !s.CanHandle(a.Name) {
		return handler.Unhandled()
	}
	cmd, ok := s.Resolve(a.Name)
	if !ok {
		return handler.Unhandled()
	}

	if s.require != nil {
		if err := s.require(ctx); err != nil {
			return handler.Error(fmt.Errorf("%s: %w", a.Name, err))
		}
	}

	if !a.Ongoing {
		return s.release(a.Name, cmd, ctx)
	}

	if cmd.Kind == action.KindLiteral {
		return s.literals[cmd.Key](ctx)
	}
	if cmd.Payload == "" {
		return handler.Malformed(emptyArgument(a.Name))
	}
	if p, ok := s.prefix(cmd.Key); ok {
		return p.apply(ctx, cmd.Payload)
	}
	return handler.Unhandled()
}

// release handles the release event of a recognized string. A literal runs
// its registered release, if any. A prefix whose payload does not parse is
// malformed. Every other release is a no-op.
func (s *Segment) release(name string, cmd action.Command, ctx *execctx.ExecutionContext) handler.Result {
	if cmd.Kind == action.KindLiteral {
		if fn, ok := s.releases[cmd.Key]; ok {
			return fn(ctx)
		}
		return handler.NoOp()
	}
	if cmd.Payload == "" {
		return handler.Malformed(emptyArgument(name))
	}
	if p, ok := s.prefix(cmd.Key); ok && p.check != nil {
		if err := p.check(cmd.Payload); err != nil {
			return handler.Malformed(fmt.Errorf("%q: %w", name, err))
		}
	}
	return handler.NoOp()
}

func (s *Segment) prefix(text string) (prefixRule, bool) {
	for _, p := range s.prefixes {
		if p.text == text {
			return p, true
		}
	}
	return prefixRule{}, false
}

func emptyArgument(name string) error {
	return fmt.Errorf("%q: %w: empty argument", name, arg.ErrMalformedArgument)
}

var _ handler.Handler = (*Segment)(nil)
