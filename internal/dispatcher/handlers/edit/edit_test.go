package edit_test

import (
	"errors"
	"testing"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/handlers/edit"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
	"github.com/dshills/rigedit/internal/engine/history"
	"github.com/dshills/rigedit/internal/model/journal"
)

func newContext(j *journal.Journal) *execctx.ExecutionContext {
	return execctx.New().WithModel(j).WithHistory(history.New(0)).WithUI(j.NewUI())
}

func allSegments() []*segment.Segment {
	return []*segment.Segment{
		edit.NewCopyHandler(),
		edit.NewDeleteHandler(),
		edit.NewNewHandler(),
		edit.NewReduceHandler(),
		edit.NewRenameHandler(),
		edit.NewResampleHandler(),
		edit.NewRetargetHandler(),
		edit.NewWrapHandler(),
	}
}

func dispatch(t *testing.T, j *journal.Journal, text string) handler.Result {
	t.Helper()
	ctx := newContext(j)
	for _, s := range allSegments() {
		if s.CanHandle(text) {
			return s.Handle(action.New(text, action.SourceKeyboard), ctx)
		}
	}
	t.Fatalf("no segment accepts %q", text)
	return handler.Unhandled()
}

func TestSegmentsRegisterCleanly(t *testing.T) {
	for _, s := range allSegments() {
		if err := s.Err(); err != nil {
			t.Errorf("%s: %v", s.Name(), err)
		}
		if len(s.Entries()) == 0 {
			t.Errorf("%s has no entries", s.Name())
		}
	}
}

func TestEditActions(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"copy animation walk 2", "target.animation copyAndLoad walk 2"},
		{action.DeleteAnimation, "target.animation delete"},
		{action.DeleteMapping, "map deleteBoneMapping"},
		{action.DeleteSgc, "target.sgc delete"},
		{action.DeleteSingleKeyframe, "target.track deleteSelectedKeyframe"},
		{action.DeleteUserKey, "target.userData delete"},
		{"delete nextKeyframes 3", "target.track deleteNextKeyframes 3"},
		{"delete previousKeyframes 1", "target.track deletePreviousKeyframes 1"},
		{action.NewAnimationFromPose, "ui openDialog new animation fromPose"},
		{action.NewMapping, "map mapBones"},
		{action.NewSgc, "ui openMenu new sgc"},
		{action.NewUserKey, "ui openMenu new userKey"},
		{"new animation fromPose rest", "target.animation poseAndLoad rest"},
		{"new animation fromMix 0,2 blend", "target.animControl mix 0,2 blend"},
		{"new animation fromMix 0,2", "ui openDialog new animation fromMix 0,2"},
		{"new userKey string note", "target addUserKey string note"},
		{"new userKey float", "ui openDialog new userKey float"},
		{action.ReduceAnimation, "ui openDialog reduce animation"},
		{action.ReduceTrack, "ui openDialog reduce track"},
		{"reduce animation 2", "target.animation reduce 2"},
		{"reduce track 4", "target.track reduce 4"},
		{action.RenameBone, "ui openDialog rename bone"},
		{"rename animation run fast", "target.animation rename run fast"},
		{"rename bone Hand_L", "target renameBone Hand_L"},
		{"rename spatial root", "target renameSpatial root"},
		{"rename userKey note", "target renameUserKey note"},
		{"resample animation atRate 30", "target.animation resampleAtRate 30"},
		{"resample animation toNumber 12", "target.animation resampleToNumber 12"},
		{"resample track atRate 2.5", "target.track resampleAtRate 2.5"},
		{"resample track toNumber 8", "target.track resampleToNumber 8"},
		{action.RetargetAnimation, "ui openDialog retarget animation"},
		{"retarget animation walk", "map retargetAndLoad walk"},
		{action.WrapTrack, "target.track wrap"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			j := journal.New()
			r := dispatch(t, j, tt.action)
			if r.Status != handler.StatusOK {
				t.Fatalf("status = %v, want ok (%s)", r.Status, r.Message)
			}
			if got := j.Last(); got != tt.want {
				t.Errorf("last call = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSingleKeyframeNeedsSelectedTrack(t *testing.T) {
	j := journal.New()

	r := dispatch(t, j, action.NewSingleKeyframe)
	if r.Status != handler.StatusNoOp || !r.Handled() {
		t.Errorf("without a selected track: status = %v, handled = %v", r.Status, r.Handled())
	}
	if j.Len() != 0 {
		t.Errorf("calls = %q, want none", j.Calls())
	}

	j.SetFlag("target.track.selected", true)
	r = dispatch(t, j, action.NewSingleKeyframe)
	if r.Status != handler.StatusOK {
		t.Errorf("status = %v, want ok", r.Status)
	}
	if got := j.Last(); got != "target.track insertOrReplaceKeyframe" {
		t.Errorf("last call = %q", got)
	}
}

func TestNewCheckpoint(t *testing.T) {
	j := journal.New()
	h := history.New(0)
	h.Attach(j)
	ctx := execctx.New().WithModel(j).WithHistory(h)

	r := edit.NewNewHandler().Handle(action.New(action.NewCheckpoint, action.SourceKeyboard), ctx)
	if r.Status != handler.StatusOK {
		t.Fatalf("status = %v, want ok: %v", r.Status, r.Error)
	}
	if r.GetDataString("checkpoint") == "" {
		t.Error("result should carry the checkpoint id")
	}

	info, ok := h.Current()
	if !ok {
		t.Fatal("history has no current checkpoint")
	}
	if info.Description != edit.CheckpointDescription {
		t.Errorf("description = %q, want %q", info.Description, edit.CheckpointDescription)
	}

	r = edit.NewNewHandler().Handle(action.New(action.NewCheckpoint, action.SourceKeyboard), execctx.New().WithModel(j))
	if !errors.Is(r.Error, execctx.ErrMissingHistory) {
		t.Errorf("error = %v, want ErrMissingHistory", r.Error)
	}
}

func TestMalformedArguments(t *testing.T) {
	tests := []string{
		"delete nextKeyframes 0",
		"delete nextKeyframes -2",
		"delete previousKeyframes many",
		"reduce track 0",
		"resample animation atRate 0",
		"resample track atRate -5",
		"resample track atRate NaN",
		"resample animation toNumber x",
		"new userKey string ",
		"new animation fromMix 0,1 ",
		"copy animation ",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			j := journal.New()
			r := dispatch(t, j, text)
			if r.Status != handler.StatusUnhandled {
				t.Errorf("status = %v, want unhandled", r.Status)
			}
			if !errors.Is(r.Error, arg.ErrMalformedArgument) {
				t.Errorf("error = %v, want ErrMalformedArgument", r.Error)
			}
			if j.Len() != 0 {
				t.Errorf("calls = %q, want none", j.Calls())
			}
		})
	}
}

func TestUnknownNounsAreUnhandled(t *testing.T) {
	for _, text := range []string{"delete bone", "new frobnicator", "wrap animation", "rename"} {
		j := journal.New()
		handled := false
		for _, s := range allSegments() {
			if s.Handle(action.New(text, action.SourceKeyboard), newContext(j)).Handled() {
				handled = true
			}
		}
		if handled {
			t.Errorf("%q should be unhandled", text)
		}
	}
}

func TestReleaseIsNoOp(t *testing.T) {
	j := journal.New()
	r := edit.NewDeleteHandler().Handle(action.Release(action.DeleteAnimation, action.SourceKeyboard), newContext(j))
	if r.Status != handler.StatusNoOp {
		t.Errorf("status = %v, want no-op", r.Status)
	}
	if j.Len() != 0 {
		t.Errorf("calls = %q, want none", j.Calls())
	}
}

func TestMissingModel(t *testing.T) {
	r := edit.NewWrapHandler().Handle(action.New(action.WrapTrack, action.SourceKeyboard), execctx.New())
	if r.Status != handler.StatusError || !errors.Is(r.Error, execctx.ErrMissingModel) {
		t.Errorf("result = %v %v, want error ErrMissingModel", r.Status, r.Error)
	}
}
