package dispatcher

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

// Router tries handlers in registration order. The order is fixed once
// the dispatcher is built, so when two handlers could recognize the same
// string the earlier one always wins.
type Router struct {
	mu sync.RWMutex

	chain  []handler.Handler
	byName map[string]handler.Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		byName: make(map[string]handler.Handler),
	}
}

// Append adds a handler at the end of the chain.
func (r *Router) Append(h handler.Handler) error {
	if h == nil {
		return ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[h.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, h.Name())
	}
	r.chain = append(r.chain, h)
	r.byName[h.Name()] = h
	return nil
}

// Route runs the action through the chain and returns the first handled
// result together with the handler that produced it. When nothing
// handles the action, the first unhandled result that carries an error
// is returned so a malformed argument is not reported as a bare miss.
func (r *Router) Route(a action.Action, ctx *execctx.ExecutionContext) (handler.Result, handler.Handler) {
	miss := handler.Unhandled()
	var missBy handler.Handler
	for _, h := range r.candidates(a.Name) {
		result := h.Handle(a, ctx)
		if result.Status != handler.StatusUnhandled {
			return result, h
		}
		if result.Error != nil && miss.Error == nil {
			miss, missBy = result, h
		}
	}
	return miss, missBy
}

// candidates returns the handlers that could recognize the action, in
// chain order.
func (r *Router) candidates(actionName string) []handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []handler.Handler
	for _, h := range r.chain {
		if h.CanHandle(actionName) {
			out = append(out, h)
		}
	}
	return out
}

// Names returns the handler names in chain order.
func (r *Router) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.chain))
	for i, h := range r.chain {
		names[i] = h.Name()
	}
	return names
}

// ExtractVerb returns the text before the first blank, or the whole
// string when there is no blank.
func ExtractVerb(actionName string) string {
	verb, _, _ := strings.Cut(actionName, " ")
	return verb
}
