package dispatcher_test

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/dispatcher"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/hook"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
	"github.com/dshills/rigedit/internal/model/journal"
)

// testSegment builds a small "poke" vocabulary.
func testSegment(calls *int32) *segment.Segment {
	s := segment.New("poke", segment.SpanAll)
	s.Literal("poke bone", segment.Do(func(ctx *execctx.ExecutionContext) {
		atomic.AddInt32(calls, 1)
	}))
	segment.On(s, "poke count ", arg.KindInt, arg.Count, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		atomic.AddInt32(calls, int32(n))
	}))
	return s
}

func TestNewDefaults(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())

	if d == nil {
		t.Fatal("expected non-nil dispatcher")
	}
	if d.Catalog() == nil {
		t.Error("expected non-nil catalog")
	}
	if d.Router() == nil {
		t.Error("expected non-nil router")
	}

	// Metrics should be nil by default
	if d.Metrics() != nil {
		t.Error("expected nil metrics by default")
	}
}

func TestNewWithMetrics(t *testing.T) {
	config := dispatcher.DefaultConfig().WithMetrics()
	d := dispatcher.New(config)

	if d.Metrics() == nil {
		t.Error("expected non-nil metrics when enabled")
	}
}

func TestDispatchNoHandler(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())

	result := d.Dispatch(action.New("frobnicate widget", action.SourceConsole))

	if result.Status != handler.StatusUnhandled {
		t.Errorf("expected StatusUnhandled for unknown action, got %v", result.Status)
	}
	if !errors.Is(result.Error, dispatcher.ErrUnrecognizedAction) {
		t.Errorf("expected ErrUnrecognizedAction, got %v", result.Error)
	}
}

func TestAddClaimsVocabulary(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())
	var calls int32

	if err := d.Add(testSegment(&calls)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := d.Catalog().Lookup("poke bone"); !ok {
		t.Error("expected literal in catalog")
	}
	if _, ok := d.Catalog().Lookup("poke count "); !ok {
		t.Error("expected prefix in catalog")
	}

	result := d.DispatchString("poke bone")
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
	result = d.DispatchString("poke count 4")
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
	if atomic.LoadInt32(&calls) != 5 {
		t.Errorf("expected 5 calls, got %d", calls)
	}
}

func TestAddRejectsDuplicateStrings(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())
	var calls int32

	if err := d.Add(testSegment(&calls)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	other := segment.New("poke", segment.SpanAN)
	other.Literal("poke bone", segment.Do(func(*execctx.ExecutionContext) {}))
	err := d.Add(other)
	if !errors.Is(err, action.ErrDuplicateAction) {
		t.Errorf("expected ErrDuplicateAction, got %v", err)
	}
}

func TestAddRejectsBrokenSegment(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())

	s := segment.New("poke", segment.SpanOZ)
	s.Literal("poke bone", segment.Do(func(*execctx.ExecutionContext) {}))
	if err := d.Add(s); !errors.Is(err, action.ErrOutOfSpan) {
		t.Errorf("expected ErrOutOfSpan, got %v", err)
	}
	if err := d.Add(nil); !errors.Is(err, dispatcher.ErrNilHandler) {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}
}

func TestDispatchMalformedArgument(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())
	var calls int32
	_ = d.Add(testSegment(&calls))

	result := d.DispatchString("poke count zero")

	if result.Status != handler.StatusUnhandled {
		t.Errorf("expected StatusUnhandled, got %v", result.Status)
	}
	if !errors.Is(result.Error, dispatcher.ErrUnrecognizedAction) {
		t.Errorf("expected ErrUnrecognizedAction, got %v", result.Error)
	}
	if !errors.Is(result.Error, arg.ErrMalformedArgument) {
		t.Errorf("expected ErrMalformedArgument, got %v", result.Error)
	}
	if calls != 0 {
		t.Errorf("expected no calls, got %d", calls)
	}
}

func TestDispatchSuggestion(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())
	var calls int32
	_ = d.Add(testSegment(&calls))

	result := d.DispatchString("poke bonw")
	if got := result.GetDataString("suggestion"); got != "poke bone" {
		t.Errorf("expected suggestion 'poke bone', got %q", got)
	}

	result = d.DispatchString("poke cout 3")
	if got := result.GetDataString("suggestion"); got != "poke count" {
		t.Errorf("expected suggestion 'poke count', got %q", got)
	}

	result = d.DispatchString("frobnicate widget")
	if got := result.GetDataString("suggestion"); got != "" {
		t.Errorf("expected no suggestion, got %q", got)
	}
}

func TestDispatchWithoutSuggestions(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig().WithSuggestions(false, 0))
	var calls int32
	_ = d.Add(testSegment(&calls))

	result := d.DispatchString("poke bonw")
	if _, ok := result.GetData("suggestion"); ok {
		t.Error("expected no suggestion when disabled")
	}
}

func TestDispatchRelease(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())
	var calls int32
	_ = d.Add(testSegment(&calls))

	result := d.Dispatch(action.Release("poke bone", action.SourceKeyboard))
	if result.Status != handler.StatusNoOp {
		t.Errorf("expected StatusNoOp for release, got %v", result.Status)
	}
	if calls != 0 {
		t.Errorf("release must not apply the literal, got %d calls", calls)
	}
}

func TestDispatchPanicRecovery(t *testing.T) {
	config := dispatcher.DefaultConfig().WithPanicRecovery(true).WithMetrics()
	d := dispatcher.New(config)

	s := segment.New("poke", segment.SpanAll)
	s.Literal("poke panic", func(*execctx.ExecutionContext) handler.Result {
		panic("boom")
	})
	_ = d.Add(s)

	result := d.DispatchString("poke panic")

	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError after panic, got %v", result.Status)
	}
	if !errors.Is(result.Error, dispatcher.ErrPanic) {
		t.Errorf("expected ErrPanic, got %v", result.Error)
	}
	if d.Metrics().TotalPanics() != 1 {
		t.Errorf("expected 1 panic recorded, got %d", d.Metrics().TotalPanics())
	}
}

func TestDispatchContext(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())
	j := journal.New()
	d.SetModel(j)
	d.SetUI(j.NewUI())

	var got *execctx.ExecutionContext
	s := segment.New("poke", segment.SpanAll)
	s.Literal("poke context", func(ctx *execctx.ExecutionContext) handler.Result {
		got = ctx
		return handler.Success()
	})
	_ = d.Add(s)

	d.Dispatch(action.New("poke context", action.SourceScript))

	if got == nil {
		t.Fatal("handler was not called")
	}
	if got.Model != j {
		t.Error("expected model in context")
	}
	if got.UI == nil {
		t.Error("expected UI in context")
	}
	if got.History != nil {
		t.Error("expected no history in context")
	}
	if got.Source != action.SourceScript {
		t.Errorf("expected source script, got %v", got.Source)
	}
}

// statusRecorder is a post-dispatch hook that records every status it sees.
type statusRecorder struct {
	seen []string
}

func (r *statusRecorder) Name() string            { return "recorder" }
func (r *statusRecorder) Priority() hook.Priority { return 0 }

func (r *statusRecorder) PostDispatch(a *action.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	r.seen = append(r.seen, result.Status.String())
	*result = result.WithData("seen", true)
}

func TestDispatchHooks(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig())
	var calls int32
	_ = d.Add(testSegment(&calls))

	m := d.EnableHookManager()
	if d.EnableHookManager() != m {
		t.Error("expected the same hook manager on second enable")
	}
	rec := &statusRecorder{}
	unrecognized := hook.NewUnrecognizedHook(nil)
	m.Register(hook.NewWireFormatHook())
	m.Register(unrecognized)
	m.Register(rec)

	result := d.DispatchString("poke count 2")
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
	if v, _ := result.GetData("seen"); v != true {
		t.Error("expected post hook to tag the result")
	}

	result = d.DispatchString("poke count\t9")
	if result.Status != handler.StatusCancelled {
		t.Errorf("expected StatusCancelled, got %v", result.Status)
	}
	if !errors.Is(result.Error, dispatcher.ErrActionCancelled) {
		t.Errorf("expected ErrActionCancelled, got %v", result.Error)
	}
	if !errors.Is(result.Error, hook.ErrControlCharacter) {
		t.Errorf("expected the hook's error as cause, got %v", result.Error)
	}
	if result.Handled() {
		t.Error("a cancelled action is not handled")
	}
	if calls != 2 {
		t.Errorf("cancelled action must not run, got %d calls", calls)
	}
	if unrecognized.Total() != 0 {
		t.Errorf("a cancelled action is not unrecognized, got %d", unrecognized.Total())
	}

	d.DispatchString("poke nothing")
	if unrecognized.Total() != 1 {
		t.Errorf("expected 1 unrecognized action, got %d", unrecognized.Total())
	}

	want := []string{"ok", "cancelled", "unhandled"}
	if strings.Join(rec.seen, ",") != strings.Join(want, ",") {
		t.Errorf("post hook saw %v, want %v", rec.seen, want)
	}
}

func TestDispatchMetrics(t *testing.T) {
	d := dispatcher.New(dispatcher.DefaultConfig().WithMetrics())
	var calls int32
	_ = d.Add(testSegment(&calls))

	d.DispatchString("poke bone")
	d.DispatchString("poke bone")
	d.DispatchString("poke nothing")

	m := d.Metrics()
	if m.TotalDispatches() != 3 {
		t.Errorf("expected 3 dispatches, got %d", m.TotalDispatches())
	}
	if m.TotalUnhandled() != 1 {
		t.Errorf("expected 1 unhandled, got %d", m.TotalUnhandled())
	}
	if m.StatusCount(handler.StatusOK) != 2 {
		t.Errorf("expected 2 OK, got %d", m.StatusCount(handler.StatusOK))
	}

	stats := m.ActionStats("poke bone")
	if stats == nil || stats.DispatchCount != 2 {
		t.Errorf("expected 2 dispatches of 'poke bone', got %+v", stats)
	}
	top := m.TopUnhandled(5)
	if len(top) != 1 || top[0].Name != "poke nothing" {
		t.Errorf("expected 'poke nothing' as top unhandled, got %+v", top)
	}
}
