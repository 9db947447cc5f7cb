package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/hook"
	"github.com/dshills/rigedit/internal/model"
)

// Dispatcher routes actions to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	// Core components
	catalog   *action.Catalog
	router    *Router
	suggester *Suggester

	// Editor subsystems
	model   model.EditorModel
	history execctx.HistoryInterface
	ui      execctx.UIInterface

	config  Config
	metrics *Metrics

	hookManager *hook.Manager
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		catalog: action.NewCatalog(),
		router:  NewRouter(),
		config:  config,
	}

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	if config.Suggest {
		d.suggester = NewSuggester(d.catalog, config.SuggestDistance)
	}

	return d
}

// SetModel sets the editor model.
func (d *Dispatcher) SetModel(m model.EditorModel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.model = m
}

// SetHistory sets the checkpoint history.
func (d *Dispatcher) SetHistory(history execctx.HistoryInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.history = history
}

// SetUI sets the user-interface layer.
func (d *Dispatcher) SetUI(ui execctx.UIInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ui = ui
}

// Model returns the editor model.
func (d *Dispatcher) Model() model.EditorModel {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.model
}

// History returns the checkpoint history.
func (d *Dispatcher) History() execctx.HistoryInterface {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.history
}

// UI returns the user-interface layer.
func (d *Dispatcher) UI() execctx.UIInterface {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ui
}

// Add appends a handler to the routing chain. Handlers that implement
// handler.Vocabulary claim their strings in the catalog first; a
// duplicate string anywhere in the catalog fails the registration.
func (d *Dispatcher) Add(h handler.Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	if e, ok := h.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return fmt.Errorf("dispatcher: handler %s: %w", h.Name(), err)
		}
	}
	if v, ok := h.(handler.Vocabulary); ok {
		if err := d.catalog.ClaimAll(v.Entries()); err != nil {
			return fmt.Errorf("dispatcher: handler %s: %w", h.Name(), err)
		}
	}
	return d.router.Append(h)
}

// Dispatch applies an action and returns once it has been handled. A
// pre-dispatch hook that rejects the action turns it into a cancelled
// result carrying ErrActionCancelled; post-dispatch hooks still see it.
func (d *Dispatcher) Dispatch(a action.Action) handler.Result {
	startTime := time.Now()

	ctx := d.buildContext(a.Source)

	var result handler.Result
	switch err := d.runPreHooks(&a, ctx); {
	case err != nil:
		result = handler.Cancelled(fmt.Errorf("%w: %w", ErrActionCancelled, err))
	case d.config.RecoverFromPanic:
		result = d.routeWithRecovery(a, ctx)
	default:
		result, _ = d.router.Route(a, ctx)
	}

	if result.Status == handler.StatusUnhandled {
		result = d.unrecognized(a, result)
	}

	d.runPostHooks(&a, ctx, &result)

	if d.metrics != nil {
		d.metrics.RecordDispatch(a.Name, time.Since(startTime), result.Status)
	}

	return result
}

// DispatchString dispatches an ongoing console action.
func (d *Dispatcher) DispatchString(text string) handler.Result {
	return d.Dispatch(action.New(text, action.SourceConsole))
}

// unrecognized tags an unhandled result with ErrUnrecognizedAction and,
// when enabled, the closest catalog string.
func (d *Dispatcher) unrecognized(a action.Action, result handler.Result) handler.Result {
	if result.Error == nil {
		result.Error = fmt.Errorf("%w: %q", ErrUnrecognizedAction, a.Name)
	} else {
		result.Error = fmt.Errorf("%w: %w", ErrUnrecognizedAction, result.Error)
	}
	if s := d.suggester.Suggest(a.Name); s != "" && s != a.Name {
		result = result.WithData("suggestion", s)
	}
	return result
}

// routeWithRecovery routes an action with panic recovery.
func (d *Dispatcher) routeWithRecovery(a action.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = handler.Error(fmt.Errorf("%w for %s: %v\n%s", ErrPanic, a.Name, r, string(stack[:n])))

			if d.metrics != nil {
				d.metrics.RecordPanic(a.Name)
			}
		}
	}()

	result, _ = d.router.Route(a, ctx)
	return result
}

// buildContext builds an execution context from current state.
func (d *Dispatcher) buildContext(src action.Source) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return execctx.New().
		WithModel(d.model).
		WithHistory(d.history).
		WithUI(d.ui).
		WithSource(src)
}

// runPreHooks runs all pre-dispatch hooks and returns the error of the
// hook that rejected the action, if any.
func (d *Dispatcher) runPreHooks(a *action.Action, ctx *execctx.ExecutionContext) error {
	d.mu.RLock()
	manager := d.hookManager
	d.mu.RUnlock()

	if manager == nil {
		return nil
	}
	return manager.RunPreDispatch(a, ctx)
}

// runPostHooks runs all post-dispatch hooks.
func (d *Dispatcher) runPostHooks(a *action.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	d.mu.RLock()
	manager := d.hookManager
	d.mu.RUnlock()

	if manager != nil {
		manager.RunPostDispatch(a, ctx, result)
	}
}

// Catalog returns the action catalog.
func (d *Dispatcher) Catalog() *action.Catalog {
	return d.catalog
}

// Router returns the action router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// HookManager returns the hook manager (may be nil).
func (d *Dispatcher) HookManager() *hook.Manager {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.hookManager
}

// SetHookManager sets the hook manager.
func (d *Dispatcher) SetHookManager(manager *hook.Manager) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hookManager = manager
}

// EnableHookManager creates and sets a new hook manager if not already set.
// Returns the hook manager.
func (d *Dispatcher) EnableHookManager() *hook.Manager {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hookManager == nil {
		d.hookManager = hook.NewManager()
	}
	return d.hookManager
}
