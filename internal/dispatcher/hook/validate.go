package hook

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
)

// ErrControlCharacter indicates an action string containing a control
// character such as a tab or a newline.
var ErrControlCharacter = errors.New("hook: action contains a control character")

// ValidationHook cancels actions its check rejects.
type ValidationHook struct {
	name     string
	priority Priority
	check    func(a *action.Action) error
}

// NewValidationHook creates a validation hook. A nil check accepts every
// action.
func NewValidationHook(name string, priority Priority, check func(a *action.Action) error) *ValidationHook {
	return &ValidationHook{name: name, priority: priority, check: check}
}

// NewWireFormatHook rejects action strings with control characters. Such
// strings never match the vocabulary and come from a broken script or
// replay file.
func NewWireFormatHook() *ValidationHook {
	return NewValidationHook("wire-format", PriorityWireFormat, func(a *action.Action) error {
		if i := strings.IndexFunc(a.Name, unicode.IsControl); i >= 0 {
			return fmt.Errorf("%w at byte %d of %q", ErrControlCharacter, i, a.Name)
		}
		return nil
	})
}

func (h *ValidationHook) Name() string       { return h.name }
func (h *ValidationHook) Priority() Priority { return h.priority }

// PreDispatch implements PreDispatchHook.
func (h *ValidationHook) PreDispatch(a *action.Action, ctx *execctx.ExecutionContext) error {
	if h.check == nil {
		return nil
	}
	return h.check(a)
}
