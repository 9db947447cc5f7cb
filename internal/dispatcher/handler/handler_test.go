package handler_test

import (
	"testing"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

func TestHandlerFunc(t *testing.T) {
	called := false
	fn := handler.NewHandlerFunc("test", func(a action.Action, ctx *execctx.ExecutionContext) handler.Result {
		called = true
		return handler.Success()
	})

	result := fn.Handle(action.New("test it", action.SourceConsole), execctx.New())

	if !called {
		t.Error("expected handler func to be called")
	}
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
	if fn.Name() != "test" {
		t.Errorf("expected name 'test', got %q", fn.Name())
	}
}

func TestHandlerFuncNil(t *testing.T) {
	fn := &handler.HandlerFunc{}
	result := fn.Handle(action.New("test it", action.SourceConsole), execctx.New())

	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError for nil func, got %v", result.Status)
	}
}

func TestHandlerFuncCanHandle(t *testing.T) {
	fn := handler.NewHandlerFunc("any", func(a action.Action, ctx *execctx.ExecutionContext) handler.Result {
		return handler.Success()
	})

	// HandlerFunc always returns true for CanHandle
	if !fn.CanHandle("anything at all") {
		t.Error("expected CanHandle to return true")
	}
}

func TestSimpleHandler(t *testing.T) {
	called := false
	sh := &handler.SimpleHandler{
		ActionName: "warp cursor",
		Fn: func(a action.Action, ctx *execctx.ExecutionContext) handler.Result {
			called = true
			return handler.Success()
		},
	}

	result := sh.Handle(action.New("warp cursor", action.SourceKeyboard), execctx.New())

	if !called {
		t.Error("expected handler to be called")
	}
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}

	other := sh.Handle(action.New("warp elsewhere", action.SourceKeyboard), execctx.New())
	if other.Handled() {
		t.Errorf("expected other action to be unhandled, got %v", other.Status)
	}
}

func TestSimpleHandlerCanHandle(t *testing.T) {
	sh := &handler.SimpleHandler{ActionName: "warp cursor"}

	if !sh.CanHandle("warp cursor") {
		t.Error("expected CanHandle('warp cursor') to return true")
	}
	if sh.CanHandle("warp lastCheckpoint") {
		t.Error("expected CanHandle('warp lastCheckpoint') to return false")
	}
}

func TestSimpleHandlerNilFn(t *testing.T) {
	sh := &handler.SimpleHandler{ActionName: "warp cursor"}
	result := sh.Handle(action.New("warp cursor", action.SourceKeyboard), execctx.New())

	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError for nil func, got %v", result.Status)
	}
}

func TestSimpleHandlerEntries(t *testing.T) {
	sh := &handler.SimpleHandler{ActionName: "warp cursor"}
	entries := sh.Entries()

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "warp cursor" || entries[0].Kind != action.KindLiteral {
		t.Errorf("unexpected entry %+v", entries[0])
	}
}
