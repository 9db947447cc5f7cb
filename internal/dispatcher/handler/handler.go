// Package handler provides the handler interface and types for action dispatch.
package handler

import (
	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
)

// Handler processes a partition of the action vocabulary.
type Handler interface {
	// Handle executes the action and returns a result. It returns
	// StatusUnhandled for strings it does not recognize.
	Handle(a action.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if the action falls in this handler's
	// partition. It does not guarantee the action is recognized.
	CanHandle(actionName string) bool

	// Name identifies the handler in logs and catalog entries.
	Name() string
}

// Vocabulary is implemented by handlers that claim catalog strings.
type Vocabulary interface {
	Entries() []action.Entry
}

// HandlerFunc is a function adapter for Handler interface.
// It allows using a simple function as a Handler.
type HandlerFunc struct {
	name string
	fn   func(a action.Action, ctx *execctx.ExecutionContext) Result
}

// NewHandlerFunc creates a named HandlerFunc from a function.
func NewHandlerFunc(name string, fn func(a action.Action, ctx *execctx.ExecutionContext) Result) *HandlerFunc {
	return &HandlerFunc{name: name, fn: fn}
}

// Handle implements Handler.Handle.
func (f *HandlerFunc) Handle(a action.Action, ctx *execctx.ExecutionContext) Result {
	if f.fn == nil {
		return Errorf("handler function is nil")
	}
	return f.fn(a, ctx)
}

// CanHandle implements Handler.CanHandle.
// HandlerFunc always returns true; caller must ensure correct routing.
func (f *HandlerFunc) CanHandle(actionName string) bool {
	return true
}

// Name implements Handler.Name.
func (f *HandlerFunc) Name() string {
	return f.name
}

// SimpleHandler wraps a function with an explicit action name.
type SimpleHandler struct {
	// ActionName is the exact action string this handler processes.
	ActionName string

	// Fn is the handler function.
	Fn func(a action.Action, ctx *execctx.ExecutionContext) Result
}

// Handle implements Handler.Handle.
func (h *SimpleHandler) Handle(a action.Action, ctx *execctx.ExecutionContext) Result {
	if a.Name != h.ActionName {
		return Unhandled()
	}
	if h.Fn == nil {
		return Errorf("handler function is nil")
	}
	return h.Fn(a, ctx)
}

// CanHandle implements Handler.CanHandle.
func (h *SimpleHandler) CanHandle(actionName string) bool {
	return actionName == h.ActionName
}

// Name implements Handler.Name.
func (h *SimpleHandler) Name() string {
	return h.ActionName
}

// Entries implements Vocabulary; the action name is claimed as a literal.
func (h *SimpleHandler) Entries() []action.Entry {
	return []action.Entry{{Text: h.ActionName, Kind: action.KindLiteral, Segment: h.ActionName}}
}
