package hook

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

// Manager holds the registered hooks of one dispatcher. Registration
// replaces the hook lists instead of editing them, so a dispatch in
// flight keeps the lists it started with.
type Manager struct {
	mu   sync.RWMutex
	pre  []PreDispatchHook
	post []PostDispatchHook
}

// NewManager creates an empty hook manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds h to every phase it implements. Hooks of equal priority
// keep their registration order.
func (m *Manager) Register(h Hook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := h.(PreDispatchHook); ok {
		m.pre = insert(m.pre, p, func(a, b Priority) bool { return a > b })
	}
	if p, ok := h.(PostDispatchHook); ok {
		m.post = insert(m.post, p, func(a, b Priority) bool { return a < b })
	}
}

// insert returns a copy of hooks with h placed before the first hook it
// outranks and any hook of the same name removed.
func insert[H Hook](hooks []H, h H, outranks func(a, b Priority) bool) []H {
	out := slices.DeleteFunc(slices.Clone(hooks), func(x H) bool {
		return x.Name() == h.Name()
	})
	i := 0
	for i < len(out) && !outranks(h.Priority(), out[i].Priority()) {
		i++
	}
	return slices.Insert(out, i, h)
}

// RunPreDispatch runs the pre-dispatch hooks and stops at the first one
// that rejects the action. The returned error names that hook.
func (m *Manager) RunPreDispatch(a *action.Action, ctx *execctx.ExecutionContext) error {
	m.mu.RLock()
	hooks := m.pre
	m.mu.RUnlock()

	for _, h := range hooks {
		if err := h.PreDispatch(a, ctx); err != nil {
			return fmt.Errorf("hook %s: %w", h.Name(), err)
		}
	}
	return nil
}

// RunPostDispatch runs every post-dispatch hook.
func (m *Manager) RunPostDispatch(a *action.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	m.mu.RLock()
	hooks := m.post
	m.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(a, ctx, result)
	}
}

// Names returns the hook names of each phase in run order.
func (m *Manager) Names() (pre, post []string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, h := range m.pre {
		pre = append(pre, h.Name())
	}
	for _, h := range m.post {
		post = append(post, h.Name())
	}
	return pre, post
}
