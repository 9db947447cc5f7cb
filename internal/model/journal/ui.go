package journal

import (
	"github.com/dshills/rigedit/internal/model"
)

// UI is a recording user interface. Calls are written to the journal it
// was created from under the path "ui".
type UI struct {
	j        *Journal
	tools    map[string]bool
	items    map[string]bool
	mouse    model.Cgm
	sceneful bool
}

// NewUI creates a user interface that records into j. The named tools
// can be selected and moved; every other tool name is rejected.
func (j *Journal) NewUI(tools ...string) *UI {
	u := &UI{
		j:     j,
		tools: make(map[string]bool, len(tools)),
		items: make(map[string]bool),
	}
	for _, t := range tools {
		u.tools[t] = true
	}
	return u
}

// AddMenuItems makes the given menu paths selectable.
func (u *UI) AddMenuItems(paths ...string) {
	for _, p := range paths {
		u.items[p] = true
	}
}

// PointAt places the pointer over a view of the given model; scene
// selects the scene view rather than the score view.
func (u *UI) PointAt(which model.WhichCgm, scene bool) {
	u.mouse = u.j.Cgm(which)
	u.sceneful = scene
}

// PointAway moves the pointer off every model view.
func (u *UI) PointAway() {
	u.mouse = nil
	u.sceneful = false
}

// OpenMenu records a popup menu.
func (u *UI) OpenMenu(name string) {
	u.j.record("ui", "openMenu", name)
}

// OpenDialog records a dialog with its preset arguments.
func (u *UI) OpenDialog(name string, args ...string) {
	a := make([]interface{}, 0, len(args)+1)
	a = append(a, name)
	for _, s := range args {
		a = append(a, s)
	}
	u.j.record("ui", "openDialog", a...)
}

// SelectMenuItem records the item if it is known.
func (u *UI) SelectMenuItem(path string) bool {
	if !u.items[path] {
		return false
	}
	u.j.record("ui", "selectMenuItem", path)
	return true
}

// SelectTool records the tool if it is known.
func (u *UI) SelectTool(name string) bool {
	if !u.tools[name] {
		return false
	}
	u.j.record("ui", "selectTool", name)
	return true
}

// MoveTool records the tool position if the tool is known.
func (u *UI) MoveTool(name string, x, y int) bool {
	if !u.tools[name] {
		return false
	}
	u.j.record("ui", "moveTool", name, x, y)
	return true
}

func (u *UI) Pick(what string)         { u.j.record("ui", "pick", what) }
func (u *UI) StopDragging(what string) { u.j.record("ui", "stopDragging", what) }
func (u *UI) ToggleDragSide()          { u.j.record("ui", "toggleDragSide") }
func (u *UI) WarpCursor()              { u.j.record("ui", "warpCursor") }

// MouseCgm returns the model under the pointer.
func (u *UI) MouseCgm() model.Cgm {
	return u.mouse
}

// MouseViewIsScene reports whether the pointer is over a scene view.
func (u *UI) MouseViewIsScene() bool {
	return u.mouse != nil && u.sceneful
}
