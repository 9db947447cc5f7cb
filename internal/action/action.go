package action

import "strings"

// Source indicates the origin of an action.
type Source uint8

const (
	// SourceKeyboard indicates a key binding.
	SourceKeyboard Source = iota
	// SourceMouse indicates a mouse button binding.
	SourceMouse
	// SourceMenu indicates a menu or popup item.
	SourceMenu
	// SourceDialog indicates a dialog commit.
	SourceDialog
	// SourceScript indicates a Lua action script.
	SourceScript
	// SourceConsole indicates the interactive console or a replay file.
	SourceConsole
)

// String returns a string representation of the action source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouse:
		return "mouse"
	case SourceMenu:
		return "menu"
	case SourceDialog:
		return "dialog"
	case SourceScript:
		return "script"
	case SourceConsole:
		return "console"
	default:
		return "unknown"
	}
}

// Action is one user command. It is consumed by exactly one dispatch.
type Action struct {
	// Name is the action string, e.g. "select bone Hand_L".
	Name string

	// Ongoing is false for the release half of a key or button gesture.
	Ongoing bool

	// Source records where the action came from.
	Source Source
}

// New creates an ongoing action.
func New(name string, source Source) Action {
	return Action{Name: name, Ongoing: true, Source: source}
}

// Release creates the release event of a gesture.
func Release(name string, source Source) Action {
	return Action{Name: name, Ongoing: false, Source: source}
}

// Verb returns the first word of the action string.
func (a Action) Verb() string {
	verb, _, _ := strings.Cut(a.Name, " ")
	return verb
}

// Noun returns the second word of the action string, or "".
func (a Action) Noun() string {
	_, rest, ok := strings.Cut(a.Name, " ")
	if !ok {
		return ""
	}
	noun, _, _ := strings.Cut(rest, " ")
	return noun
}

// String returns the action string.
func (a Action) String() string {
	return a.Name
}
