package settings_test

import (
	"errors"
	"testing"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/handlers/settings"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
	"github.com/dshills/rigedit/internal/model"
	"github.com/dshills/rigedit/internal/model/journal"
)

type fixture struct {
	t   *testing.T
	j   *journal.Journal
	ui  *journal.UI
	ctx *execctx.ExecutionContext
	an  *segment.Segment
	oz  *segment.Segment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	j := journal.New()
	ui := j.NewUI()
	f := &fixture{
		t:   t,
		j:   j,
		ui:  ui,
		ctx: execctx.New().WithModel(j).WithUI(ui),
		an:  settings.NewHandlerAN(),
		oz:  settings.NewHandlerOZ(),
	}
	if err := f.an.Err(); err != nil {
		t.Fatalf("NewHandlerAN: %v", err)
	}
	if err := f.oz.Err(); err != nil {
		t.Fatalf("NewHandlerOZ: %v", err)
	}
	return f
}

func (f *fixture) press(text string) handler.Result {
	a := action.New(text, action.SourceKeyboard)
	if f.an.CanHandle(text) {
		return f.an.Handle(a, f.ctx)
	}
	return f.oz.Handle(a, f.ctx)
}

// expect presses text and checks the result status.
func (f *fixture) expect(text string, want handler.ResultStatus) handler.Result {
	f.t.Helper()
	r := f.press(text)
	if r.Status != want {
		f.t.Errorf("%q: expected %s, got %s (%v)", text, want, r.Status, r.Error)
	}
	return r
}

func (f *fixture) lastCall(want string) {
	f.t.Helper()
	if got := f.j.Last(); got != want {
		f.t.Errorf("expected call %q, got %q", want, got)
	}
}

func TestSetPrefixes(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"set 3DCursorColor 1 #ff0000", "scene.cursor setColor 1 1 0 0 1"},
		{"set 3DCursorSize 0.5", "scene.cursor setSize 0.5"},
		{"set anisotropy 8", "target.texture setAnisotropy 8"},
		{"set backgroundColor TargetScores 0 0 1", "model setBackgroundColor TargetScores 0 0 1 1"},
		{"set boundsColor 0.5 0.5 0.5 0.25", "scene.bounds setColor 0.5 0.5 0.5 0.25"},
		{"set bufferStride 12", "target.buffer setStride 12"},
		{"set dumpIndentSpaces 4", "dumper setIndentIncrement 4"},
		{"set dumpMaxChildren 10", "dumper setMaxChildren 10"},
		{"set durationSame 2", "target.animation setDurationSame 2"},
		{"set frameTime 0.25", "target.keyframe setTime 0.25"},
		{"set mainDirection (1, -1, 0)", "scene.lights setDirection (1, -1, 0)"},
		{"set matParamValue 0.8", "target setMatParamValue 0.8"},
		{"set meshWeights 4", "target setMeshWeights 4"},
		{"set overrideValue true", "target setOverrideValue true"},
		{"set physicsRbpValue Mass 2.5", "target.object setRigidBodyParameter Mass 2.5"},
		{"set platformDiameter sourceCgm 3", "scene setPlatformDiameter sourceCgm 3"},
		{"set queueBucket Transparent", "target setQueueBucket Transparent"},
		{"set submenuWarp 0.5 0.25", "misc setSubmenuWarp 0.5 0.25"},
		{"set userData hello world", "target setUserData hello world"},
		{"set xBoundary 0.3", "misc setXBoundary 0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			f := newFixture(t)
			r := f.press(tt.action)
			if r.Status != handler.StatusOK {
				t.Fatalf("expected ok, got %s: %v", r.Status, r.Error)
			}
			f.lastCall(tt.want)
		})
	}
}

func TestSetLiterals(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{action.SetAnisotropy, "ui openDialog set anisotropy"},
		{action.SetLinkMass, "ui openDialog set linkMass"},
		{action.SetMeshWeights, "ui openMenu set meshWeights"},
		{action.SetLightDirReverse, "target.light reverseDirection"},
		{action.SetQueueBucket, "ui openMenu set queueBucket"},
		{action.SetSpatialAngleSnapY, "target.spatial snapRotation Y"},
		{action.SetTwistCardinal, "map cardinalizeTwist"},
		{action.SetTwistSnapZ, "map snapTwist Z"},
		{action.SetTrackScaleAll, "target.track setScaleAll"},
		{action.SetUserData, "ui openDialog set userData"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			f := newFixture(t)
			r := f.press(tt.action)
			if r.Status != handler.StatusOK {
				t.Fatalf("expected ok, got %s: %v", r.Status, r.Error)
			}
			f.lastCall(tt.want)
		})
	}
}

func TestValueDialogsNeedSelection(t *testing.T) {
	f := newFixture(t)

	f.expect(action.SetMatParamValue, handler.StatusNoOp)
	f.expect(action.SetOverrideValue, handler.StatusNoOp)
	if f.j.Len() != 0 {
		t.Errorf("expected no calls, got %v", f.j.Calls())
	}

	f.j.SetFlag("target.matParam.selected", true)
	f.j.SetFlag("target.override.selected", true)
	f.expect(action.SetMatParamValue, handler.StatusOK)
	f.lastCall("ui openDialog set matParamValue")
	f.expect(action.SetOverrideValue, handler.StatusOK)
	f.lastCall("ui openDialog set overrideValue")
}

func TestParameterDialogsCarryCurrentParameter(t *testing.T) {
	f := newFixture(t)
	f.j.Misc().SetRbp(model.RigidBodyParameter(8))
	f.j.Reset()

	f.press(action.SetPhysicsRbpValue)
	f.lastCall("ui openDialog set physicsRbpValue Mass")

	f.press(action.SetShapeParmValue)
	f.lastCall("ui openDialog set shapeParmValue " + model.ShapeParameters.Name(f.j.Misc().ShapeParameter()))
}

func TestSetTimeArity(t *testing.T) {
	f := newFixture(t)

	r := f.expect("set time sourceCgm", handler.StatusUnhandled)
	if !errors.Is(r.Error, arg.ErrMalformedArgument) {
		t.Errorf("expected ErrMalformedArgument, got %v", r.Error)
	}

	f.expect("set time targetCgm lowerLimit", handler.StatusOK)
	f.lastCall("ui openDialog set time targetCgm lowerLimit")

	f.expect("set time targetCgm lowerLimit 1.5", handler.StatusOK)
	f.lastCall("target.play setTime lowerLimit 1.5")
	if got := f.j.Play(model.TargetCgm).Time(model.LowerLimit); got != 1.5 {
		t.Errorf("expected lower limit 1.5, got %v", got)
	}

	for _, text := range []string{
		"set time targetCgm lowerLimit 1.5 2",
		"set time targetCgm soon 1",
		"set time TargetCgm currentTime 1",
		"set time targetCgm currentTime x",
		"set time targetCgm  currentTime",
	} {
		r = f.expect(text, handler.StatusUnhandled)
		if !errors.Is(r.Error, arg.ErrMalformedArgument) {
			t.Errorf("%q: expected ErrMalformedArgument, got %v", text, r.Error)
		}
	}
}

func TestSetTimeToKeyframe(t *testing.T) {
	f := newFixture(t)
	f.j.SetKeyframeTimes(model.SourceCgm, 0, 0.5, 1.25)

	f.expect("set time toKeyframe sourceCgm currentTime", handler.StatusOK)
	f.lastCall("ui openDialog set time toKeyframe sourceCgm currentTime")

	f.expect("set time toKeyframe sourceCgm currentTime 2", handler.StatusOK)
	f.lastCall("source.play setTime currentTime 1.25")

	f.j.Misc().SetIndexBase(1)
	f.expect("set time toKeyframe sourceCgm upperLimit 2", handler.StatusOK)
	f.lastCall("source.play setTime upperLimit 0.5")

	n := f.j.Len()
	f.expect("set time toKeyframe sourceCgm upperLimit 9", handler.StatusNoOp)
	if f.j.Len() != n {
		t.Errorf("missing keyframe must not touch the model, got %v", f.j.Since(n))
	}
}

func TestSetTimeToKeyframeBelowIndexBase(t *testing.T) {
	f := newFixture(t)
	f.j.SetKeyframeTimes(model.TargetCgm, 0, 0.5)
	f.j.Misc().SetIndexBase(1)
	f.j.Reset()

	r := f.expect("set time toKeyframe targetCgm currentTime 0", handler.StatusUnhandled)
	if !errors.Is(r.Error, arg.ErrMalformedArgument) {
		t.Errorf("expected ErrMalformedArgument, got %v", r.Error)
	}
	if f.j.Len() != 0 {
		t.Errorf("malformed ordinal must not touch the model, got %v", f.j.Calls())
	}

	f.expect("set time toKeyframe targetCgm currentTime 1", handler.StatusOK)
	f.lastCall("target.play setTime currentTime 0")
}

func TestTimeLimitsFollowPointer(t *testing.T) {
	f := newFixture(t)
	play := f.j.Play(model.TargetCgm)
	play.SetTime(model.LowerLimit, 1)
	play.SetTime(model.UpperLimit, 3)
	play.SetTime(model.CurrentTime, 2)
	f.j.Reset()

	f.expect(action.SetTimeLimitLower, handler.StatusNoOp)
	if f.j.Len() != 0 {
		t.Errorf("expected no calls without a pointer, got %v", f.j.Calls())
	}

	f.ui.PointAt(model.TargetCgm, false)
	f.expect(action.SetTimeLimitLower, handler.StatusOK)
	if got := play.Time(model.LowerLimit); got != 2 {
		t.Errorf("expected lower limit 2, got %v", got)
	}

	play.SetTime(model.CurrentTime, 4)
	f.expect(action.SetTimeLimitUpper, handler.StatusOK)
	if got := play.Time(model.UpperLimit); got != 4 {
		t.Errorf("expected upper limit 4, got %v", got)
	}

	play.SetTime(model.CurrentTime, 5)
	f.expect(action.SetTimeLimitLower, handler.StatusNoOp)
	if got := play.Time(model.LowerLimit); got != 2 {
		t.Errorf("lower limit must not cross the upper limit, got %v", got)
	}

	play.SetTime(model.CurrentTime, 1)
	f.expect(action.SetTimeLimitUpper, handler.StatusNoOp)
	if got := play.Time(model.UpperLimit); got != 4 {
		t.Errorf("upper limit must not cross the lower limit, got %v", got)
	}
}

func TestMalformedSettings(t *testing.T) {
	for _, text := range []string{
		"set dumpIndentSpaces -1",
		"set anisotropy many",
		"set boundsColor 2 0 0",
		"set boundsColor #gg0000",
		"set physicsRbpValue mass 1",
		"set physicsRbpValue Mass",
		"set submenuWarp 0.5",
		"set xBoundary ",
		"set hour Inf",
	} {
		t.Run(text, func(t *testing.T) {
			f := newFixture(t)
			r := f.expect(text, handler.StatusUnhandled)
			if !errors.Is(r.Error, arg.ErrMalformedArgument) {
				t.Errorf("expected ErrMalformedArgument, got %v", r.Error)
			}
			if f.j.Len() != 0 {
				t.Errorf("expected no calls, got %v", f.j.Calls())
			}
		})
	}
}
