package keymap

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Binding errors
var (
	ErrUnknownAction = errors.New("keymap: unknown action")
	ErrNotBound      = errors.New("keymap: chord not bound")
)

// Keymap holds the registered action names and the chords bound to them.
// It is safe for concurrent use.
type Keymap struct {
	mu       sync.RWMutex
	names    map[string]struct{}
	bindings map[Chord]Binding
	order    []Chord
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{
		names:    make(map[string]struct{}),
		bindings: make(map[Chord]Binding),
	}
}

// AddActionName registers a bindable action string.
func (k *Keymap) AddActionName(text string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.names[text] = struct{}{}
}

// HasActionName reports whether text was registered.
func (k *Keymap) HasActionName(text string) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	_, ok := k.names[text]
	return ok
}

// ActionNames returns every registered action string, sorted.
func (k *Keymap) ActionNames() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]string, 0, len(k.names))
	for name := range k.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Bind binds a chord to a registered action. A later binding of the
// same chord replaces the earlier one.
func (k *Keymap) Bind(spec, action string) error {
	return k.Add(Binding{Keys: spec, Action: action})
}

// Add binds a fully described binding.
func (k *Keymap) Add(b Binding) error {
	c, err := k.check(b)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.put(c, b)
	return nil
}

func (k *Keymap) check(b Binding) (Chord, error) {
	c, err := ParseChord(b.Keys)
	if err != nil {
		return Chord{}, fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	if !k.HasActionName(b.Action) {
		return Chord{}, fmt.Errorf("%w: %q bound to %s", ErrUnknownAction, b.Action, c)
	}
	return c, nil
}

// put must be called with the lock held.
func (k *Keymap) put(c Chord, b Binding) {
	if _, ok := k.bindings[c]; !ok {
		k.order = append(k.order, c)
	}
	b.Keys = c.String()
	k.bindings[c] = b
}

// Unbind removes the binding of a chord.
func (k *Keymap) Unbind(spec string) error {
	c, err := ParseChord(spec)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if _, ok := k.bindings[c]; !ok {
		return fmt.Errorf("%w: %s", ErrNotBound, c)
	}
	delete(k.bindings, c)
	for i, o := range k.order {
		if o == c {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
	return nil
}

// Apply binds every binding of a file. Bad bindings are skipped and
// their errors joined; the good ones are still bound.
func (k *Keymap) Apply(f *File) error {
	var errs []error
	for _, b := range f.Bindings {
		if err := k.Add(b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Replace swaps every binding for those of f. If any binding of f is
// bad the keymap is left unchanged.
func (k *Keymap) Replace(f *File) error {
	chords := make([]Chord, len(f.Bindings))
	var errs []error
	for i, b := range f.Bindings {
		c, err := k.check(b)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		chords[i] = c
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	k.bindings = make(map[Chord]Binding, len(f.Bindings))
	k.order = nil
	for i, b := range f.Bindings {
		k.put(chords[i], b)
	}
	return nil
}

// Resolve returns the action bound to a key event.
func (k *Keymap) Resolve(ev *tcell.EventKey) (string, bool) {
	if ev == nil {
		return "", false
	}
	b, ok := k.Lookup(chordOf(ev))
	return b.Action, ok
}

// Lookup returns the binding of a chord.
func (k *Keymap) Lookup(c Chord) (Binding, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	b, ok := k.bindings[c]
	return b, ok
}

// Bindings returns every binding in the order chords were first bound.
// Keys are in canonical form.
func (k *Keymap) Bindings() []Binding {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]Binding, len(k.order))
	for i, c := range k.order {
		out[i] = k.bindings[c]
	}
	return out
}

// Len returns the number of bound chords.
func (k *Keymap) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings)
}
