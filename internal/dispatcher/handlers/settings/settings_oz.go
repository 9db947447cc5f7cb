package settings

import (
	"fmt"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/action/prefix"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
	"github.com/dshills/rigedit/internal/model"
)

// Dialogs opened by the "set time" prefixes when the value is omitted.
const (
	DialogTime           = "set time"
	DialogTimeToKeyframe = "set time toKeyframe"
)

// NewHandlerOZ creates the "set" segment for nouns o through z.
func NewHandlerOZ() *segment.Segment {
	s := segment.New("set", segment.SpanOZ).Require(segment.RequireModel)

	s.Literal(action.SetOverrideValue, func(ctx *execctx.ExecutionContext) handler.Result {
		if !ctx.Model.Target().Override().IsSelected() {
			return handler.NoOpWithMessage("no override selected")
		}
		return segment.Dialog(action.SetOverrideValue)(ctx)
	})
	s.Literal(action.SetPhysicsRbpValue, func(ctx *execctx.ExecutionContext) handler.Result {
		rbp := model.RigidBodyParameters.Name(ctx.Model.Misc().Rbp())
		return segment.Dialog(action.SetPhysicsRbpValue, rbp)(ctx)
	})
	s.Literal(action.SetQueueBucket, segment.Menu(action.SetQueueBucket))
	s.Literal(action.SetRefreshRate, segment.Menu(action.SetRefreshRate))
	s.Literal(action.SetShadowMode, segment.Menu(action.SetShadowMode))
	s.Literal(action.SetShapeParmValue, func(ctx *execctx.ExecutionContext) handler.Result {
		parm := model.ShapeParameters.Name(ctx.Model.Misc().ShapeParameter())
		return segment.Dialog(action.SetShapeParmValue, parm)(ctx)
	})
	s.Literal(action.SetSpatialAngleCardinal, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Spatial().CardinalizeRotation()
	}))
	s.Literal(action.SetSpatialAngleSnapX, snapSpatial(model.AxisX))
	s.Literal(action.SetSpatialAngleSnapY, snapSpatial(model.AxisY))
	s.Literal(action.SetSpatialAngleSnapZ, snapSpatial(model.AxisZ))
	s.Literal(action.SetTimeLimitLower, setLimit(model.LowerLimit))
	s.Literal(action.SetTimeLimitUpper, setLimit(model.UpperLimit))
	s.Literal(action.SetTrackRotationAll, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Track().SetRotationAll()
	}))
	s.Literal(action.SetTrackScaleAll, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Track().SetScaleAll()
	}))
	s.Literal(action.SetTrackTranslationAll, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Track().SetTranslationAll()
	}))
	s.Literal(action.SetTwistCardinal, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Map().CardinalizeTwist()
	}))
	s.Literal(action.SetTwistSnapX, snapTwist(model.AxisX))
	s.Literal(action.SetTwistSnapY, snapTwist(model.AxisY))
	s.Literal(action.SetTwistSnapZ, snapTwist(model.AxisZ))
	s.Literal(action.SetUserData, segment.Dialog(action.SetUserData))

	segment.On(s, prefix.SetOverrideValue, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, value string) {
		ctx.Model.Target().SetOverrideValue(value)
	}))
	segment.On(s, prefix.SetPhysicsRbpValue, arg.KindTuple, arg.EnumFloat(model.RigidBodyParameters), segment.Set(func(ctx *execctx.ExecutionContext, v arg.Keyed[model.RigidBodyParameter, float32]) {
		ctx.Model.Target().Object().SetRigidBodyParameter(v.Key, v.Value)
	}))
	segment.On(s, prefix.SetPlatformDiameter, arg.KindTuple, arg.EnumFloat(model.WhichCgms), segment.Set(func(ctx *execctx.ExecutionContext, v arg.Keyed[model.WhichCgm, float32]) {
		ctx.Model.Scene().SetPlatformDiameter(v.Key, v.Value)
	}))
	segment.On(s, prefix.SetQueueBucket, arg.KindEnum, arg.Enum(model.QueueBuckets), segment.Set(func(ctx *execctx.ExecutionContext, v model.QueueBucket) {
		ctx.Model.Target().SetQueueBucket(v)
	}))
	segment.On(s, prefix.SetRefreshRate, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, hertz int) {
		ctx.Model.Misc().SetRefreshRate(hertz)
	}))
	segment.On(s, prefix.SetShadowMode, arg.KindEnum, arg.Enum(model.ShadowModes), segment.Set(func(ctx *execctx.ExecutionContext, v model.ShadowMode) {
		ctx.Model.Target().SetShadowMode(v)
	}))
	segment.On(s, prefix.SetShapeParmValue, arg.KindTuple, arg.EnumFloat(model.ShapeParameters), segment.Set(func(ctx *execctx.ExecutionContext, v arg.Keyed[model.ShapeParameter, float32]) {
		ctx.Model.Target().Shape().SetParameter(v.Key, v.Value)
	}))
	segment.On(s, prefix.SetSkeletonColor, arg.KindColor, arg.EnumColor(model.SkeletonColorSlots), segment.Set(func(ctx *execctx.ExecutionContext, v arg.Keyed[model.SkeletonColors, model.Color]) {
		ctx.Model.Scene().SetSkeletonColor(v.Key, v.Value)
	}))
	segment.On(s, prefix.SetSkeletonLineWidth, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, width float32) {
		ctx.Model.Scene().SetSkeletonLineWidth(width)
	}))
	segment.On(s, prefix.SetSkeletonPointSize, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, size float32) {
		ctx.Model.Scene().SetSkeletonPointSize(size)
	}))
	segment.On(s, prefix.SetSubmenuWarp, arg.KindTuple, arg.Floats(2), segment.Set(func(ctx *execctx.ExecutionContext, xy []float32) {
		ctx.Model.Misc().SetSubmenuWarp(xy[0], xy[1])
	}))
	segment.On(s, prefix.SetTime, arg.KindTuple, parsePlayTime, setTime)
	segment.On(s, prefix.SetTimeToKeyframe, arg.KindTuple, parseKeyframeTime, setTimeToKeyframe)
	segment.On(s, prefix.SetUserData, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, value string) {
		ctx.Model.Target().SetUserData(value)
	}))
	segment.On(s, prefix.SetVertexColor, arg.KindColor, arg.Color, segment.Set(func(ctx *execctx.ExecutionContext, c model.Color) {
		ctx.Model.Scene().SetVertexColor(c)
	}))
	segment.On(s, prefix.SetVertexPointSize, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, size float32) {
		ctx.Model.Scene().SetVertexPointSize(size)
	}))
	segment.On(s, prefix.SetXBoundary, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, position float32) {
		ctx.Model.Misc().SetXBoundary(position)
	}))

	return s
}

func snapSpatial(axis model.Axis) segment.Mutation {
	return segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Spatial().SnapRotation(axis)
	})
}

func snapTwist(axis model.Axis) segment.Mutation {
	return segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Map().SnapTwist(axis)
	})
}

// setLimit moves a play limit of the model under the pointer to its
// current time. A limit is never moved past the opposite limit.
func setLimit(slot model.PlayTimes) segment.Mutation {
	return func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.UI == nil {
			return handler.Error(execctx.ErrMissingUI)
		}
		cgm := ctx.UI.MouseCgm()
		if cgm == nil {
			return handler.NoOpWithMessage("pointer is not over a model")
		}

		play := cgm.Play()
		current := play.Time(model.CurrentTime)
		switch {
		case slot == model.LowerLimit && current > play.Time(model.UpperLimit),
			slot == model.UpperLimit && current < play.Time(model.LowerLimit):
			return handler.NoOpWithMessage(fmt.Sprintf("%s would cross the opposite limit", slot))
		}
		play.SetTime(slot, current)
		return handler.Success()
	}
}
