// Package keymap binds terminal key presses to action strings.
//
// A Keymap is the input binding surface of the editor. The action catalog
// pushes every literal action string into it through AddActionName, and
// key-binding files then attach key chords to those names. Prefix actions
// are never bound; their argument comes from a dialog or submenu.
//
// # Key Specifications
//
// Chords can be written in several notations:
//
//	"h"        - Single character
//	"Space"    - Named key
//	"Ctrl+Z"   - Ctrl+Z (readable notation)
//	"<C-z>"    - Ctrl+Z (angle bracket notation)
//	"Shift+F5" - Shift+F5
//
// # Binding Files
//
// YAML:
//
//	name: maud
//	bindings:
//	  - keys: Ctrl+Z
//	    action: previous checkpoint
//
// JSON, either as a list or as an object keyed by chord:
//
//	{"name": "maud", "bindings": {"Ctrl+Z": "previous checkpoint"}}
//
// # Usage
//
//	km := keymap.New()
//	catalog.RegisterAll(km)
//	if err := km.Apply(keymap.Defaults()); err != nil {
//	    // unknown action or bad chord
//	}
//	if text, ok := km.Resolve(ev); ok {
//	    d.Dispatch(action.New(text, action.SourceKeyboard))
//	}
package keymap
