// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/model"
)

// HistoryInterface abstracts the checkpoint history for handlers.
type HistoryInterface interface {
	// Checkpoint records the current model state and returns its id.
	Checkpoint(description string) string

	// Undo restores the previous checkpoint.
	Undo() error

	// Redo restores the next checkpoint.
	Redo() error

	// RedoAll restores the most recent checkpoint and returns the
	// number of steps taken.
	RedoAll() int
}

// UIInterface abstracts the user-interface layer for handlers.
type UIInterface interface {
	// Menus and dialogs
	OpenMenu(name string)
	OpenDialog(name string, args ...string)
	SelectMenuItem(path string) bool

	// Tool windows
	SelectTool(name string) bool
	MoveTool(name string, x, y int) bool

	// Pointer interaction
	Pick(what string)
	StopDragging(what string)
	ToggleDragSide()
	WarpCursor()

	// MouseCgm returns the model under the pointer, or nil.
	MouseCgm() model.Cgm

	// MouseViewIsScene reports whether the pointer is over a scene view.
	MouseViewIsScene() bool
}

// ExecutionContext provides context for action execution.
// It contains references to all editor subsystems needed by handlers.
type ExecutionContext struct {
	// Model provides access to the editor state.
	Model model.EditorModel

	// History provides undo/redo checkpoints.
	History HistoryInterface

	// UI provides menus, dialogs, tools and pointer state.
	UI UIInterface

	// Source records where the action came from.
	Source action.Source

	// Data holds handler-specific context data.
	Data map[string]interface{}
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Data: make(map[string]interface{}),
	}
}

// WithModel returns the context with the model set.
func (ctx *ExecutionContext) WithModel(m model.EditorModel) *ExecutionContext {
	ctx.Model = m
	return ctx
}

// WithHistory returns the context with history set.
func (ctx *ExecutionContext) WithHistory(history HistoryInterface) *ExecutionContext {
	ctx.History = history
	return ctx
}

// WithUI returns the context with the user interface set.
func (ctx *ExecutionContext) WithUI(ui UIInterface) *ExecutionContext {
	ctx.UI = ui
	return ctx
}

// WithSource returns the context with the action source set.
func (ctx *ExecutionContext) WithSource(src action.Source) *ExecutionContext {
	ctx.Source = src
	return ctx
}

// IndexBase returns the ordinal base of index arguments, 0 or 1.
func (ctx *ExecutionContext) IndexBase() int {
	if ctx.Model == nil {
		return 0
	}
	return ctx.Model.Misc().IndexBase()
}

// Index converts a user-facing ordinal to a zero-based index.
func (ctx *ExecutionContext) Index(ordinal int) int {
	return ordinal - ctx.IndexBase()
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value interface{}) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]interface{})
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (interface{}, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// GetDataString retrieves a string value from context data.
func (ctx *ExecutionContext) GetDataString(key string) string {
	if v, ok := ctx.GetData(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetDataInt retrieves an int value from context data.
func (ctx *ExecutionContext) GetDataInt(key string) int {
	if v, ok := ctx.GetData(key); ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// GetDataBool retrieves a bool value from context data.
func (ctx *ExecutionContext) GetDataBool(key string) bool {
	if v, ok := ctx.GetData(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Validate checks that the context has all required components.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Model == nil {
		return ErrMissingModel
	}
	if ctx.History == nil {
		return ErrMissingHistory
	}
	if ctx.UI == nil {
		return ErrMissingUI
	}
	return nil
}
