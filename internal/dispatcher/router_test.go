package dispatcher_test

import (
	"errors"
	"testing"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/dispatcher"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
)

func literalSegment(verb string, span segment.Span, text string, result handler.Result) *segment.Segment {
	s := segment.New(verb, span)
	s.Literal(text, func(*execctx.ExecutionContext) handler.Result { return result })
	return s
}

func TestRouterAppend(t *testing.T) {
	router := dispatcher.NewRouter()

	if err := router.Append(literalSegment("select", segment.SpanAN, "select bone", handler.Success())); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := router.Append(literalSegment("select", segment.SpanOZ, "select vertex", handler.Success())); err != nil {
		t.Fatalf("Append: %v", err)
	}

	err := router.Append(literalSegment("select", segment.SpanAN, "select light", handler.Success()))
	if !errors.Is(err, dispatcher.ErrDuplicateHandler) {
		t.Errorf("expected ErrDuplicateHandler, got %v", err)
	}
	if err := router.Append(nil); !errors.Is(err, dispatcher.ErrNilHandler) {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}

	want := []string{"select[a-n]", "select[o-z]"}
	names := router.Names()
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
		}
	}
}

func TestRouterRoute(t *testing.T) {
	router := dispatcher.NewRouter()
	an := literalSegment("select", segment.SpanAN, "select bone", handler.SuccessWithMessage("an"))
	oz := literalSegment("select", segment.SpanOZ, "select vertex", handler.SuccessWithMessage("oz"))
	_ = router.Append(an)
	_ = router.Append(oz)

	result, h := router.Route(action.New("select vertex", action.SourceKeyboard), execctx.New())
	if result.Message != "oz" {
		t.Errorf("expected o-z segment to handle, got %q", result.Message)
	}
	if h != oz {
		t.Error("expected the o-z segment to be returned")
	}

	result, h = router.Route(action.New("select nothing", action.SourceKeyboard), execctx.New())
	if result.Status != handler.StatusUnhandled {
		t.Errorf("expected StatusUnhandled, got %v", result.Status)
	}
	if h != nil {
		t.Error("expected no handler for a plain miss")
	}
}

func TestRouterFirstHandledWins(t *testing.T) {
	router := dispatcher.NewRouter()
	first := handler.NewHandlerFunc("first", func(a action.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.NoOpWithMessage("first")
	})
	second := handler.NewHandlerFunc("second", func(a action.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.SuccessWithMessage("second")
	})
	_ = router.Append(first)
	_ = router.Append(second)

	result, _ := router.Route(action.New("anything at all", action.SourceConsole), execctx.New())
	if result.Message != "first" {
		t.Errorf("expected first handler to win, got %q", result.Message)
	}
}

func TestRouterKeepsMalformedMiss(t *testing.T) {
	router := dispatcher.NewRouter()

	s := segment.New("set", segment.SpanAll)
	segment.On(s, "set count ", arg.KindInt, arg.Int, segment.Set(func(*execctx.ExecutionContext, int) {}))
	_ = router.Append(s)
	_ = router.Append(handler.NewHandlerFunc("decline", func(action.Action, *execctx.ExecutionContext) handler.Result {
		return handler.Unhandled()
	}))

	result, h := router.Route(action.New("set count many", action.SourceConsole), execctx.New())
	if result.Status != handler.StatusUnhandled {
		t.Errorf("expected StatusUnhandled, got %v", result.Status)
	}
	if !errors.Is(result.Error, arg.ErrMalformedArgument) {
		t.Errorf("expected malformed argument error, got %v", result.Error)
	}
	if h != s {
		t.Error("expected the segment that rejected the argument")
	}
}

func TestExtractVerb(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"select bone", "select"},
		{"set time toKeyframe sourceCgm currentTime 2", "set"},
		{"wrap", "wrap"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := dispatcher.ExtractVerb(tt.action); got != tt.want {
			t.Errorf("ExtractVerb(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}
