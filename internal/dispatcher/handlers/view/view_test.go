package view_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/handlers/view"
	"github.com/dshills/rigedit/internal/engine/history"
	"github.com/dshills/rigedit/internal/model"
	"github.com/dshills/rigedit/internal/model/journal"
)

func press(text string) action.Action {
	return action.New(text, action.SourceKeyboard)
}

func expect(t *testing.T, r handler.Result, status handler.ResultStatus, j *journal.Journal, last string) {
	t.Helper()
	if r.Status != status {
		t.Errorf("status = %v, want %v (%v)", r.Status, status, r.Error)
	}
	if got := j.Last(); got != last {
		t.Errorf("last call = %q, want %q", got, last)
	}
}

func TestResetActions(t *testing.T) {
	reset := view.NewResetHandler()
	if err := reset.Err(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		action string
		want   string
	}{
		{action.ResetBoneAngleToAnimation, "target.bone setRotationToAnimation"},
		{action.ResetBoneAngleToBind, "target.bone resetRotation"},
		{action.ResetBoneOffsetToAnimation, "target.bone setTranslationToAnimation"},
		{action.ResetBoneOffsetToBind, "target.bone resetTranslation"},
		{action.ResetBoneScaleToAnimation, "target.bone setScaleToAnimation"},
		{action.ResetBoneScaleToBind, "target.bone resetScale"},
		{action.ResetSpatialRotation, "target resetSpatialRotation"},
		{action.ResetSpatialScale, "target resetSpatialScale"},
		{action.ResetSpatialTranslation, "target resetSpatialTranslation"},
		{action.ResetTwist, "map resetTwist"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			j := journal.New()
			r := reset.Handle(press(tt.action), execctx.New().WithModel(j))
			expect(t, r, handler.StatusOK, j, tt.want)
		})
	}
}

func TestResetSelectionFollowsPointer(t *testing.T) {
	reset := view.NewResetHandler()
	j := journal.New()
	ui := j.NewUI()
	ctx := execctx.New().WithModel(j).WithUI(ui)

	r := reset.Handle(press(action.ResetBoneSelection), ctx)
	expect(t, r, handler.StatusNoOp, j, "")

	ui.PointAt(model.SourceCgm, false)
	r = reset.Handle(press(action.ResetBoneSelection), ctx)
	expect(t, r, handler.StatusOK, j, "source.bone deselect")

	ui.PointAt(model.TargetCgm, true)
	r = reset.Handle(press(action.ResetVertexSelection), ctx)
	expect(t, r, handler.StatusOK, j, "target.vertex deselect")

	r = reset.Handle(press(action.ResetVertexSelection), execctx.New().WithModel(j))
	if !errors.Is(r.Error, execctx.ErrMissingUI) {
		t.Errorf("error = %v, want ErrMissingUI", r.Error)
	}
}

func TestToggleActions(t *testing.T) {
	toggle := view.NewToggleHandler()
	if err := toggle.Err(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		action string
		want   []string
	}{
		{action.ToggleDegrees, []string{"misc toggleAnglesInDegrees"}},
		{action.ToggleDragSide, []string{"ui toggleDragSide"}},
		{action.ToggleFreezeTarget, []string{"target.pose toggleFrozen"}},
		{action.ToggleIndexBase, []string{"misc toggleIndexBase"}},
		{action.TogglePause, []string{"source.animation togglePaused", "target.animation togglePaused"}},
		{action.TogglePauseSource, []string{"source.animation togglePaused"}},
		{action.TogglePauseTarget, []string{"target.animation togglePaused"}},
		{action.ToggleProjection, []string{"scene.camera toggleProjection"}},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			j := journal.New()
			r := toggle.Handle(press(tt.action), execctx.New().WithModel(j).WithUI(j.NewUI()))
			if r.Status != handler.StatusOK {
				t.Errorf("status = %v, want ok", r.Status)
			}
			if got := j.Calls(); !slices.Equal(got, tt.want) {
				t.Errorf("calls = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTogglePauseTargetOfRetargetedPose(t *testing.T) {
	j := journal.New()
	j.SetFlag("target.animation.retargetedPose", true)

	r := view.NewToggleHandler().Handle(press(action.TogglePauseTarget), execctx.New().WithModel(j))
	expect(t, r, handler.StatusOK, j, "source.animation togglePaused")
	if j.Len() != 1 {
		t.Errorf("calls = %q, want only the source pause", j.Calls())
	}
}

func TestToggleIndexBaseChangesOrdinals(t *testing.T) {
	j := journal.New()
	ctx := execctx.New().WithModel(j)
	toggle := view.NewToggleHandler()

	toggle.Handle(press(action.ToggleIndexBase), ctx)
	if got := ctx.IndexBase(); got != 1 {
		t.Errorf("index base = %d, want 1", got)
	}
	toggle.Handle(press(action.ToggleIndexBase), ctx)
	if got := ctx.IndexBase(); got != 0 {
		t.Errorf("index base = %d, want 0", got)
	}
}

func TestViewHorizontal(t *testing.T) {
	v := view.NewViewHandler()
	if err := v.Err(); err != nil {
		t.Fatal(err)
	}

	j := journal.New()
	ui := j.NewUI()
	ctx := execctx.New().WithModel(j).WithUI(ui)

	r := v.Handle(press(action.ViewHorizontal), ctx)
	expect(t, r, handler.StatusNoOp, j, "")

	ui.PointAt(model.SourceCgm, false)
	r = v.Handle(press(action.ViewHorizontal), ctx)
	expect(t, r, handler.StatusNoOp, j, "")

	ui.PointAt(model.SourceCgm, true)
	r = v.Handle(press(action.ViewHorizontal), ctx)
	expect(t, r, handler.StatusOK, j, "source goHorizontal")
}

func TestViewLicense(t *testing.T) {
	v := view.NewViewHandler()
	j := journal.New()
	ctx := execctx.New().WithModel(j).WithUI(j.NewUI())

	r := v.Handle(press("view license CC0"), ctx)
	expect(t, r, handler.StatusOK, j, "ui openDialog view license CC0")

	r = v.Handle(press("view license cc0"), ctx)
	if r.Status != handler.StatusUnhandled || !errors.Is(r.Error, arg.ErrMalformedArgument) {
		t.Errorf("result = %v %v, want unhandled malformed argument", r.Status, r.Error)
	}
}

func TestWarp(t *testing.T) {
	warp := view.NewWarpHandler()
	if err := warp.Err(); err != nil {
		t.Fatal(err)
	}

	j := journal.New()
	h := history.New(0)
	h.Attach(j)
	ctx := execctx.New().WithModel(j).WithHistory(h).WithUI(j.NewUI())

	r := warp.Handle(press(action.WarpCursor), ctx)
	expect(t, r, handler.StatusOK, j, "ui warpCursor")

	r = warp.Handle(press(action.WarpLastCheckpoint), ctx)
	if r.Status != handler.StatusNoOp {
		t.Errorf("status = %v, want no-op without checkpoints", r.Status)
	}

	h.Checkpoint("a")
	h.Checkpoint("b")
	h.Checkpoint("c")
	if err := h.Undo(); err != nil {
		t.Fatal(err)
	}
	if err := h.Undo(); err != nil {
		t.Fatal(err)
	}

	r = warp.Handle(press(action.WarpLastCheckpoint), ctx)
	if r.Status != handler.StatusOK || r.Data["redone"] != 2 {
		t.Errorf("result = %v redone=%v, want ok redone=2", r.Status, r.Data["redone"])
	}
	if info, ok := h.Current(); !ok || info.Description != "c" {
		t.Errorf("current checkpoint = %q, want %q", info.Description, "c")
	}
}

func TestWarpWithoutHistory(t *testing.T) {
	r := view.NewWarpHandler().Handle(press(action.WarpLastCheckpoint), execctx.New())
	if !errors.Is(r.Error, execctx.ErrMissingHistory) {
		t.Errorf("error = %v, want ErrMissingHistory", r.Error)
	}
}
