// Package app wires the action dispatcher to a model, an undo history, a
// key map and a logger, and replays action streams against them.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/config"
	"github.com/dshills/rigedit/internal/dispatcher"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/hook"
	"github.com/dshills/rigedit/internal/engine/history"
	"github.com/dshills/rigedit/internal/input/keymap"
	"github.com/dshills/rigedit/internal/model/journal"
	"github.com/dshills/rigedit/internal/script"
)

// Tools lists the tool windows the application's user interface accepts
// for "select tool" and "select toolAt".
var Tools = []string{
	"animation", "axes", "background", "bone", "boneAngle", "boneOffset",
	"boneRotation", "boneScale", "boneTranslation", "bounds", "camera", "cgm",
	"cursor", "displaySettings", "history", "joint", "keyframe", "lights",
	"mapping", "material", "model", "object", "overrides", "physics",
	"platform", "render", "retarget", "score", "sgc", "shadowMode", "shape",
	"skeleton", "skeletonColor", "sky", "sourceAnimation", "spatial",
	"spatialDetails", "spatialRotation", "spatialScale", "spatialTranslation",
	"twist", "userData", "vertex",
}

// releasePrefix marks a replay line as a release rather than an ongoing
// action.
const releasePrefix = "-"

// slowDispatch is the dispatch duration above which the timing hook warns.
const slowDispatch = 100 * time.Millisecond

// App is the composition root.
type App struct {
	opts config.Options

	logger       *Logger
	out          io.Writer
	model        *journal.Journal
	ui           *journal.UI
	history      *history.History
	dispatcher   *dispatcher.Dispatcher
	unrecognized *hook.UnrecognizedHook
	keymap       *keymap.Keymap
	watcher      *config.Watcher

	strictScripts bool
	runner        *script.Runner

	mu     sync.Mutex
	closed bool
}

// Option configures an App.
type Option func(*App)

// WithOutput sets where Run writes replay results. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithLogger replaces the logger built from the options' log level.
func WithLogger(l *Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithStrictScripts makes scripts stop at the first unhandled action.
func WithStrictScripts(strict bool) Option {
	return func(a *App) {
		a.strictScripts = strict
	}
}

// New builds the application from validated options.
func New(opts config.Options, appOpts ...Option) (*App, error) {
	a := &App{
		opts: opts,
		out:  os.Stdout,
	}
	for _, opt := range appOpts {
		opt(a)
	}
	if a.logger == nil {
		cfg := DefaultLoggerConfig()
		cfg.Level = ParseLogLevel(opts.LogLevel)
		a.logger = NewLogger(cfg)
	}

	a.model = journal.New()
	a.ui = a.model.NewUI(Tools...)
	a.history = history.New(opts.HistoryCapacity)
	a.history.Attach(a.model)

	if err := a.initDispatcher(); err != nil {
		return nil, err
	}
	if err := a.initKeymap(); err != nil {
		return nil, err
	}

	a.model.Misc().SetIndexBase(opts.IndexBase)
	a.history.Checkpoint("start")
	a.model.Reset()

	pre, post := a.dispatcher.HookManager().Names()
	a.logger.Debug("application ready",
		"segments", strings.Join(a.dispatcher.Router().Names(), ","),
		"literals", len(a.dispatcher.Catalog().Literals()),
		"prefixes", len(a.dispatcher.Catalog().Prefixes()),
		"pre_hooks", strings.Join(pre, ","),
		"post_hooks", strings.Join(post, ","),
		"bindings", a.keymap.Len())
	return a, nil
}

func (a *App) initDispatcher() error {
	cfg := dispatcher.DefaultConfig().
		WithPanicRecovery(a.opts.RecoverFromPanic).
		WithSuggestions(a.opts.Suggest, dispatcher.DefaultConfig().SuggestDistance)
	if a.opts.Metrics {
		cfg = cfg.WithMetrics()
	}

	d, err := dispatcher.NewStandard(cfg)
	if err != nil {
		return NewComponentError("dispatcher", "register segments", err)
	}
	d.SetModel(a.model)
	d.SetHistory(a.history)
	d.SetUI(a.ui)

	hooks := d.EnableHookManager()
	hooks.Register(hook.NewTimingHook(a.logger.WithComponent("timing"), slowDispatch))
	hooks.Register(hook.NewAuditHook(a.logger.WithComponent("audit")))
	hooks.Register(hook.NewWireFormatHook())
	a.unrecognized = hook.NewUnrecognizedHook(a.logger.WithComponent("dispatcher"))
	hooks.Register(a.unrecognized)

	a.dispatcher = d
	return nil
}

func (a *App) initKeymap() error {
	a.keymap = keymap.New()
	a.dispatcher.Catalog().RegisterAll(a.keymap)

	if a.opts.Keymap == "" {
		if err := a.keymap.Apply(keymap.Defaults()); err != nil {
			return NewComponentError("keymap", "apply defaults", err)
		}
		return nil
	}

	f, err := keymap.LoadFile(a.opts.Keymap)
	if err != nil {
		return NewComponentError("keymap", "load", err)
	}
	if err := a.keymap.Apply(f); err != nil {
		return NewComponentError("keymap", "apply "+a.opts.Keymap, err)
	}

	log := a.logger.WithComponent("keymap")
	w, err := config.NewWatcher(a.opts.Keymap, a.reloadKeymap,
		config.WithErrorHandler(func(err error) {
			log.Warn("watch failed", "path", a.opts.Keymap, "error", err)
		}))
	if err != nil {
		return NewComponentError("keymap", "watch", err)
	}
	a.watcher = w
	return nil
}

// reloadKeymap swaps in the bindings of a changed key-map file. A file
// that fails to load or apply leaves the current bindings in place.
func (a *App) reloadKeymap(path string) {
	log := a.logger.WithComponent("keymap")

	f, err := keymap.LoadFile(path)
	if err == nil {
		err = a.keymap.Replace(f)
	}
	if err != nil {
		log.Warn("reload rejected", "path", path, "error", err)
		return
	}
	log.Info("reloaded", "path", path, "bindings", a.keymap.Len())
}

// Dispatcher returns the action dispatcher.
func (a *App) Dispatcher() *dispatcher.Dispatcher { return a.dispatcher }

// Model returns the recording model actions are applied to.
func (a *App) Model() *journal.Journal { return a.model }

// UI returns the recording user interface.
func (a *App) UI() *journal.UI { return a.ui }

// History returns the undo history.
func (a *App) History() *history.History { return a.history }

// Keymap returns the key map.
func (a *App) Keymap() *keymap.Keymap { return a.keymap }

// Logger returns the application logger.
func (a *App) Logger() *Logger { return a.logger }

// Unhandled returns the number of actions no segment handled.
func (a *App) Unhandled() int { return a.unrecognized.Total() }

// HandleKey dispatches the action bound to a key event. It reports false
// when the key is not bound.
func (a *App) HandleKey(ev *tcell.EventKey) (handler.Result, bool) {
	name, ok := a.keymap.Resolve(ev)
	if !ok {
		return handler.Result{}, false
	}
	return a.dispatcher.Dispatch(action.New(name, action.SourceKeyboard)), true
}

// Run replays actions read from r, one per line, and writes each result
// followed by the model calls it made. Blank lines and lines starting
// with '#' are skipped. A line starting with '-' is dispatched as a
// release.
func (a *App) Run(ctx context.Context, r io.Reader) error {
	if a.isClosed() {
		return ErrClosed
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		act := action.New(line, action.SourceConsole)
		if rest, ok := strings.CutPrefix(line, releasePrefix); ok {
			act = action.Release(rest, action.SourceConsole)
		}

		mark := a.model.Len()
		result := a.dispatcher.Dispatch(act)
		if err := a.report(line, result, a.model.Since(mark)); err != nil {
			return fmt.Errorf("app: writing result of line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("app: reading actions: %w", err)
	}
	return nil
}

func (a *App) report(line string, result handler.Result, calls []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\t%s", result.Status, line)
	if result.Error != nil {
		fmt.Fprintf(&b, ": %v", result.Error)
	}
	if s := result.GetDataString("suggestion"); s != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", s)
	}
	b.WriteByte('\n')
	for _, c := range calls {
		b.WriteString("\t")
		b.WriteString(c)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(a.out, b.String())
	return err
}

// RunScript runs a Lua action script. The script runner is created on
// first use and kept for later scripts.
func (a *App) RunScript(ctx context.Context, path string) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrClosed
	}
	if a.runner == nil {
		a.runner = script.NewRunner(a.dispatcher,
			script.WithLogger(a.logger.WithComponent("script")),
			script.WithStrict(a.strictScripts))
	}
	runner := a.runner
	a.mu.Unlock()

	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("app: reading script: %w", err)
	}
	mark := a.model.Len()
	if err := runner.RunContext(ctx, string(code)); err != nil {
		return err
	}
	for _, c := range a.model.Since(mark) {
		if _, err := fmt.Fprintln(a.out, c); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) isClosed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

// Close stops the key-map watcher and releases the script runner.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	if a.runner != nil {
		a.runner.Close()
	}
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}
