package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// Dispatcher is the part of the dispatcher a script needs.
type Dispatcher interface {
	Dispatch(a action.Action) handler.Result
	Catalog() *action.Catalog
}

// Logger receives log() calls and failed actions.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Stats counts the actions a runner dispatched.
type Stats struct {
	Dispatched int
	Handled    int
	Unhandled  int
	Failed     int
}

// Runner executes Lua scripts. It is not safe to run two scripts on one
// runner at the same time; calls are serialized.
//
// gopher-lua states are single-threaded, so each runner owns one state
// and guards it with a mutex.
type Runner struct {
	d       Dispatcher
	L       *lua.LState
	logger  Logger
	timeout time.Duration
	strict  bool

	mu     sync.Mutex
	stats  Stats
	abort  error
	closed bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the deadline of each run. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger used by log() and for failed actions.
func WithLogger(l Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithStrict makes unhandled actions raise a Lua error.
func WithStrict(strict bool) Option {
	return func(r *Runner) {
		r.strict = strict
	}
}

// NewRunner creates a runner that dispatches through d.
func NewRunner(d Dispatcher, opts ...Option) *Runner {
	r := &Runner{
		d:       d,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(r.L)
	r.install()
	return r
}

// openSafeLibraries opens only the libraries that cannot reach the
// file system or the process.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (r *Runner) install() {
	r.L.SetGlobal("dispatch", r.L.NewFunction(r.luaDispatch(true)))
	r.L.SetGlobal("release", r.L.NewFunction(r.luaDispatch(false)))
	r.L.SetGlobal("literals", r.L.NewFunction(r.luaList(func(c *action.Catalog) []string { return c.Literals() })))
	r.L.SetGlobal("prefixes", r.L.NewFunction(r.luaList(func(c *action.Catalog) []string { return c.Prefixes() })))
	r.L.SetGlobal("log", r.L.NewFunction(r.luaLog))
}

// luaDispatch returns dispatch(text) or release(text). Both return the
// status name and, for a failure, the error message.
func (r *Runner) luaDispatch(ongoing bool) lua.LGFunction {
	return func(L *lua.LState) int {
		text := L.CheckString(1)

		a := action.New(text, action.SourceScript)
		if !ongoing {
			a = action.Release(text, action.SourceScript)
		}
		result := r.d.Dispatch(a)
		r.count(result)

		if !result.Handled() {
			if r.logger != nil {
				r.logger.Warn("script action not handled", "action", text, "status", result.Status.String(), "error", result.Error)
			}
			if r.strict {
				r.abort = fmt.Errorf("%w: %q", ErrUnhandledAction, text)
				L.RaiseError("%v", r.abort)
				return 0
			}
		}

		L.Push(lua.LString(result.Status.String()))
		switch {
		case result.Error != nil:
			L.Push(lua.LString(result.Error.Error()))
		case result.Message != "":
			L.Push(lua.LString(result.Message))
		default:
			L.Push(lua.LNil)
		}
		return 2
	}
}

func (r *Runner) luaList(list func(*action.Catalog) []string) lua.LGFunction {
	return func(L *lua.LState) int {
		t := L.NewTable()
		for _, s := range list(r.d.Catalog()) {
			t.Append(lua.LString(s))
		}
		L.Push(t)
		return 1
	}
}

func (r *Runner) luaLog(L *lua.LState) int {
	msg := L.CheckString(1)
	if r.logger != nil {
		r.logger.Info(msg, "source", "script")
	}
	return 0
}

func (r *Runner) count(result handler.Result) {
	r.stats.Dispatched++
	switch {
	case result.Handled():
		r.stats.Handled++
	default:
		r.stats.Unhandled++
	}
	if result.IsError() {
		r.stats.Failed++
	}
}

// RunString executes Lua source.
func (r *Runner) RunString(code string) error {
	return r.RunContext(context.Background(), code)
}

// RunFile executes a Lua file.
func (r *Runner) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: reading %s: %w", path, err)
	}
	return r.RunContext(context.Background(), string(data))
}

// RunContext executes Lua source until it finishes, fails, or ctx or
// the runner timeout expires.
func (r *Runner) RunContext(ctx context.Context, code string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()
	r.abort = nil

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("script: lua panic: %v", rec)
		}
	}()

	if err := r.L.DoString(code); err != nil {
		if r.abort != nil {
			return r.abort
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// Stats returns the action counts since the runner was created.
func (r *Runner) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Close releases the Lua state.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}
