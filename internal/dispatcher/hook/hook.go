package hook

import (
	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

// Priority orders hooks. Pre-dispatch hooks run from the highest priority
// down; post-dispatch hooks run from the lowest up, so the outermost hook
// sees the final result.
type Priority int

// Priorities of the hooks the editor registers.
const (
	PriorityTiming       Priority = 1000
	PriorityAudit        Priority = 900
	PriorityWireFormat   Priority = 800
	PriorityUnrecognized Priority = 100
)

// Hook identifies a dispatch hook. Registering a hook under a name that is
// already taken replaces the earlier hook.
type Hook interface {
	Name() string
	Priority() Priority
}

// PreDispatchHook runs before an action is routed. A non-nil error
// cancels the dispatch and becomes the cause of the cancelled result.
type PreDispatchHook interface {
	Hook
	PreDispatch(a *action.Action, ctx *execctx.ExecutionContext) error
}

// PostDispatchHook runs after an action is routed, cancelled or not. It
// may rewrite the result.
type PostDispatchHook interface {
	Hook
	PostDispatch(a *action.Action, ctx *execctx.ExecutionContext, result *handler.Result)
}

// Logger is the structured logger hooks write to.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
