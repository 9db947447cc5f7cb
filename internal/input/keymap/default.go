package keymap

// Defaults returns the bindings used when no key map file is configured.
func Defaults() *File {
	return &File{
		Name: "default",
		Bindings: []Binding{
			// History
			{Keys: "Ctrl+Z", Action: "previous checkpoint", Description: "Undo"},
			{Keys: "Ctrl+Y", Action: "next checkpoint", Description: "Redo"},
			{Keys: "Ctrl+N", Action: "new checkpoint", Description: "Checkpoint"},
			{Keys: "Ctrl+L", Action: "warp lastCheckpoint", Description: "Redo all"},

			// Selection
			{Keys: ".", Action: "next bone", Description: "Next bone"},
			{Keys: ",", Action: "previous bone", Description: "Previous bone"},
			{Keys: "]", Action: "next track", Description: "Next track"},
			{Keys: "[", Action: "previous track", Description: "Previous track"},
			{Keys: "PgDn", Action: "next animation", Description: "Next animation"},
			{Keys: "PgUp", Action: "previous animation", Description: "Previous animation"},
			{Keys: "Home", Action: "select keyframeFirst", Description: "First keyframe"},
			{Keys: "End", Action: "select keyframeLast", Description: "Last keyframe"},
			{Keys: "Left", Action: "select keyframePrevious", Description: "Previous keyframe"},
			{Keys: "Right", Action: "select keyframeNext", Description: "Next keyframe"},
			{Keys: "Esc", Action: "reset bone selection", Description: "Deselect bone"},

			// Playback and view
			{Keys: "Space", Action: "toggle pause", Description: "Pause"},
			{Keys: "p", Action: "toggle projection", Description: "Projection"},
			{Keys: "h", Action: "view horizontal", Description: "Level camera"},
			{Keys: "w", Action: "warp cursor", Description: "Warp 3D cursor"},
			{Keys: "Ctrl+D", Action: "toggle degrees", Description: "Degrees"},
			{Keys: "F2", Action: "toggle dragSide", Description: "Drag side"},
		},
	}
}
