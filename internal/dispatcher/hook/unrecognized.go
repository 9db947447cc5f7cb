package hook

import (
	"sync"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

// UnrecognizedHook counts and warns about actions no segment recognized.
// Malformed arguments are reported with their grammar error.
type UnrecognizedHook struct {
	logger Logger

	mu     sync.Mutex
	counts map[string]int
	total  int
}

// NewUnrecognizedHook creates a hook that warns through logger.
func NewUnrecognizedHook(logger Logger) *UnrecognizedHook {
	return &UnrecognizedHook{logger: logger, counts: make(map[string]int)}
}

func (h *UnrecognizedHook) Name() string       { return "unrecognized" }
func (h *UnrecognizedHook) Priority() Priority { return PriorityUnrecognized }

// PostDispatch implements PostDispatchHook.
func (h *UnrecognizedHook) PostDispatch(a *action.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	if result.Status != handler.StatusUnhandled {
		return
	}

	h.mu.Lock()
	h.counts[a.Name]++
	h.total++
	h.mu.Unlock()

	if h.logger == nil {
		return
	}
	kv := []interface{}{"action", a.Name, "source", a.Source.String()}
	if result.Error != nil {
		kv = append(kv, "error", result.Error)
	}
	if s := result.GetDataString("suggestion"); s != "" {
		kv = append(kv, "suggestion", s)
	}
	h.logger.Warn("unrecognized action", kv...)
}

// Count returns how many times the action string went unrecognized.
func (h *UnrecognizedHook) Count(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counts[name]
}

// Total returns the number of unrecognized dispatches.
func (h *UnrecognizedHook) Total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}
