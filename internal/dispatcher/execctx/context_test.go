package execctx_test

import (
	"testing"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/engine/history"
	"github.com/dshills/rigedit/internal/model/journal"
)

func TestNew(t *testing.T) {
	ctx := execctx.New()

	if ctx.Data == nil {
		t.Error("expected Data to be initialized")
	}
	if ctx.IndexBase() != 0 {
		t.Errorf("expected index base 0 without a model, got %d", ctx.IndexBase())
	}
}

func TestWithBuilders(t *testing.T) {
	j := journal.New()
	h := history.New(10)
	ui := j.NewUI()

	ctx := execctx.New().
		WithModel(j).
		WithHistory(h).
		WithUI(ui).
		WithSource(action.SourceMenu)

	if ctx.Model != j {
		t.Error("expected Model to be set")
	}
	if ctx.History != h {
		t.Error("expected History to be set")
	}
	if ctx.UI != ui {
		t.Error("expected UI to be set")
	}
	if ctx.Source != action.SourceMenu {
		t.Errorf("expected SourceMenu, got %v", ctx.Source)
	}
}

func TestIndex(t *testing.T) {
	j := journal.New()
	ctx := execctx.New().WithModel(j)

	if got := ctx.Index(3); got != 3 {
		t.Errorf("base 0: Index(3) = %d, want 3", got)
	}

	j.Misc().SetIndexBase(1)
	if got := ctx.Index(3); got != 2 {
		t.Errorf("base 1: Index(3) = %d, want 2", got)
	}
	if got := ctx.Index(0); got != -1 {
		t.Errorf("base 1: Index(0) = %d, want -1", got)
	}
}

func TestSetData(t *testing.T) {
	ctx := execctx.New()
	ctx.SetData("key", "value")

	v, ok := ctx.GetData("key")
	if !ok {
		t.Fatal("expected key to exist")
	}
	if v != "value" {
		t.Errorf("expected 'value', got %v", v)
	}
}

func TestSetDataNilMap(t *testing.T) {
	ctx := &execctx.ExecutionContext{}
	ctx.SetData("key", "value")

	if ctx.GetDataString("key") != "value" {
		t.Error("expected SetData to initialize nil map")
	}
}

func TestGetDataNilMap(t *testing.T) {
	ctx := &execctx.ExecutionContext{}

	if _, ok := ctx.GetData("key"); ok {
		t.Error("expected GetData on nil map to return false")
	}
}

func TestGetDataString(t *testing.T) {
	ctx := execctx.New()
	ctx.SetData("str", "hello")
	ctx.SetData("int", 42)

	if got := ctx.GetDataString("str"); got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if got := ctx.GetDataString("int"); got != "" {
		t.Errorf("expected empty string for non-string, got %q", got)
	}
	if got := ctx.GetDataString("missing"); got != "" {
		t.Errorf("expected empty string for missing, got %q", got)
	}
}

func TestGetDataInt(t *testing.T) {
	ctx := execctx.New()
	ctx.SetData("int", 42)
	ctx.SetData("int64", int64(100))
	ctx.SetData("float64", float64(3.7))
	ctx.SetData("str", "hello")

	tests := []struct {
		key      string
		expected int
	}{
		{"int", 42},
		{"int64", 100},
		{"float64", 3},
		{"str", 0},
		{"missing", 0},
	}

	for _, tt := range tests {
		if got := ctx.GetDataInt(tt.key); got != tt.expected {
			t.Errorf("GetDataInt(%q) = %d, want %d", tt.key, got, tt.expected)
		}
	}
}

func TestGetDataBool(t *testing.T) {
	ctx := execctx.New()
	ctx.SetData("true", true)
	ctx.SetData("str", "true")

	if !ctx.GetDataBool("true") {
		t.Error("expected true")
	}
	if ctx.GetDataBool("str") {
		t.Error("expected false for non-bool")
	}
	if ctx.GetDataBool("missing") {
		t.Error("expected false for missing")
	}
}

func TestValidate(t *testing.T) {
	j := journal.New()

	tests := []struct {
		name string
		ctx  *execctx.ExecutionContext
		err  error
	}{
		{"empty", execctx.New(), execctx.ErrMissingModel},
		{"model only", execctx.New().WithModel(j), execctx.ErrMissingHistory},
		{"no ui", execctx.New().WithModel(j).WithHistory(history.New(1)), execctx.ErrMissingUI},
		{"complete", execctx.New().WithModel(j).WithHistory(history.New(1)).WithUI(j.NewUI()), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ctx.Validate(); err != tt.err {
				t.Errorf("Validate() = %v, want %v", err, tt.err)
			}
		})
	}
}
