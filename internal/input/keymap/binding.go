package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("keymap: empty key specification")
	ErrInvalidSpec = errors.New("keymap: invalid key specification")
)

// Binding maps one key chord to an action string.
type Binding struct {
	// Keys is the chord, e.g. "Ctrl+Z" or "<C-z>".
	Keys string `yaml:"keys" json:"keys"`

	// Action is a literal action string, e.g. "previous checkpoint".
	Action string `yaml:"action" json:"action"`

	// Description is shown in key map listings.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Chord is a normalized key press.
type Chord struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

var keyNames = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"return":    tcell.KeyEnter,
	"cr":        tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"backspace": tcell.KeyBackspace2,
	"bs":        tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"del":       tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"ins":       tcell.KeyInsert,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pageup":    tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"pagedown":  tcell.KeyPgDn,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
}

var canonicalNames = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyEscape:     "Esc",
	tcell.KeyTab:        "Tab",
	tcell.KeyBacktab:    "Backtab",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PgUp",
	tcell.KeyPgDn:       "PgDn",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
}

func init() {
	for i := 1; i <= 12; i++ {
		k := tcell.KeyF1 + tcell.Key(i-1)
		keyNames[fmt.Sprintf("f%d", i)] = k
		canonicalNames[k] = fmt.Sprintf("F%d", i)
	}
}

// ParseChord parses a key specification.
//
// Supported formats:
//   - Single character: "a", "A", "1", "]"
//   - Named keys: "Enter", "Esc", "Tab", "Space", "PgUp", "F1"
//   - With modifiers: "Ctrl+Z", "Alt+F4", "Shift+Tab"
//   - Angle brackets: "<C-z>", "<A-x>", "<S-F5>", "<Esc>"
func ParseChord(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseBracketed(spec[1 : len(spec)-1])
	}
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModified(spec)
	}
	return parseKey(spec, tcell.ModNone)
}

// parseBracketed parses "C-s", "A-F4", "CR", "Esc".
func parseBracketed(inner string) (Chord, error) {
	parts := strings.Split(inner, "-")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		// "<C-->" binds the minus key.
		parts = append(parts[:len(parts)-2], "-")
	}

	var mods tcell.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods |= tcell.ModCtrl
		case "a":
			mods |= tcell.ModAlt
		case "s":
			mods |= tcell.ModShift
		case "m", "d":
			mods |= tcell.ModMeta
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKey(parts[len(parts)-1], mods)
}

// parseModified parses "Ctrl+S", "Ctrl+Shift+Up", "Alt++".
func parseModified(spec string) (Chord, error) {
	parts := strings.Split(spec, "+")
	if parts[len(parts)-1] == "" {
		parts = append(parts[:len(parts)-2], "+")
	}

	var mods tcell.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control":
			mods |= tcell.ModCtrl
		case "alt", "opt", "option":
			mods |= tcell.ModAlt
		case "shift":
			mods |= tcell.ModShift
		case "meta", "cmd", "super":
			mods |= tcell.ModMeta
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKey(parts[len(parts)-1], mods)
}

func parseKey(name string, mods tcell.ModMask) (Chord, error) {
	if name == "" {
		return Chord{}, fmt.Errorf("%w: missing key", ErrInvalidSpec)
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsPrint(r) {
			return Chord{}, fmt.Errorf("%w: unprintable key %q", ErrInvalidSpec, name)
		}
		return normalize(Chord{Key: tcell.KeyRune, Rune: r, Mod: mods}), nil
	}

	lower := strings.ToLower(name)
	if lower == "space" {
		return normalize(Chord{Key: tcell.KeyRune, Rune: ' ', Mod: mods}), nil
	}
	k, ok := keyNames[lower]
	if !ok {
		return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	return normalize(Chord{Key: k, Mod: mods}), nil
}

// chordOf converts a terminal key event.
func chordOf(ev *tcell.EventKey) Chord {
	c := Chord{Key: ev.Key(), Mod: ev.Modifiers()}
	if c.Key == tcell.KeyRune {
		c.Rune = ev.Rune()
	}
	return normalize(c)
}

// normalize folds the different ways terminals report the same chord
// into one form. Shift is absorbed into runes, Ctrl+letter becomes the
// tcell control key, and Shift+Tab becomes Backtab.
func normalize(c Chord) Chord {
	if c.Key == tcell.KeyBackspace {
		c.Key = tcell.KeyBackspace2
	}

	switch {
	case c.Key == tcell.KeyRune:
		if c.Mod&tcell.ModShift != 0 {
			c.Rune = unicode.ToUpper(c.Rune)
			c.Mod &^= tcell.ModShift
		}
		if c.Mod&tcell.ModCtrl != 0 && c.Rune < utf8.RuneSelf && unicode.IsLetter(c.Rune) {
			c.Key = tcell.KeyCtrlA + tcell.Key(unicode.ToLower(c.Rune)-'a')
			c.Rune = 0
		}
	case c.Key == tcell.KeyTab && c.Mod&tcell.ModShift != 0:
		c.Key = tcell.KeyBacktab
		c.Mod &^= tcell.ModShift
		c.Rune = 0
	case isCtrlLetter(c.Key):
		c.Mod |= tcell.ModCtrl
		c.Mod &^= tcell.ModShift
		c.Rune = 0
	default:
		c.Rune = 0
	}
	return c
}

// isCtrlLetter reports whether k is a control key that has no key of its
// own. Ctrl+H, Ctrl+I and Ctrl+M share codes with Backspace, Tab and Enter.
func isCtrlLetter(k tcell.Key) bool {
	if k < tcell.KeyCtrlA || k > tcell.KeyCtrlZ {
		return false
	}
	switch k {
	case tcell.KeyCtrlH, tcell.KeyCtrlI, tcell.KeyCtrlM:
		return false
	}
	return true
}

// String returns the canonical specification of the chord.
func (c Chord) String() string {
	var b strings.Builder
	if c.Mod&tcell.ModCtrl != 0 {
		b.WriteString("Ctrl+")
	}
	if c.Mod&tcell.ModAlt != 0 {
		b.WriteString("Alt+")
	}
	if c.Mod&tcell.ModMeta != 0 {
		b.WriteString("Meta+")
	}
	if c.Mod&tcell.ModShift != 0 {
		b.WriteString("Shift+")
	}

	switch {
	case c.Key == tcell.KeyRune && c.Rune == ' ':
		b.WriteString("Space")
	case c.Key == tcell.KeyRune:
		b.WriteRune(c.Rune)
	default:
		if name, ok := canonicalNames[c.Key]; ok {
			b.WriteString(name)
		} else if c.Key >= tcell.KeyCtrlA && c.Key <= tcell.KeyCtrlZ {
			b.WriteRune('A' + rune(c.Key-tcell.KeyCtrlA))
		} else {
			fmt.Fprintf(&b, "Key(%d)", c.Key)
		}
	}
	return b.String()
}
