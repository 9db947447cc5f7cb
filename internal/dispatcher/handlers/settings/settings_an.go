// Package settings provides the "set" segments, which change option
// values and properties of the selected entities.
package settings

import (
	"strings"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/action/prefix"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
	"github.com/dshills/rigedit/internal/model"
)

// dialogsAN are the a-n literals that open a value dialog.
var dialogsAN = []string{
	action.SetAnisotropy,
	action.SetBufferInstanceSpan,
	action.SetBufferLimit,
	action.SetBufferStride,
	action.SetDumpIndentSpaces,
	action.SetDumpMaxChildren,
	action.SetLinkMass,
}

// NewHandlerAN creates the "set" segment for nouns a through n.
func NewHandlerAN() *segment.Segment {
	s := segment.New("set", segment.SpanAN).Require(segment.RequireModel)

	for _, text := range dialogsAN {
		s.Literal(text, segment.Dialog(text))
	}
	s.Literal(action.SetLightDirCardinal, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Light().CardinalizeDirection()
	}))
	s.Literal(action.SetLightDirReverse, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Light().ReverseDirection()
	}))
	s.Literal(action.SetMatParamValue, func(ctx *execctx.ExecutionContext) handler.Result {
		if !ctx.Model.Target().MatParam().IsSelected() {
			return handler.NoOpWithMessage("no material parameter selected")
		}
		return segment.Dialog(action.SetMatParamValue)(ctx)
	})
	s.Literal(action.SetMeshWeights, segment.Menu(action.SetMeshWeights))

	segment.On(s, prefix.Set3DCursorColor, arg.KindColor, arg.IntColor, segment.Set(func(ctx *execctx.ExecutionContext, v arg.Keyed[int, model.Color]) {
		ctx.Model.Scene().SetCursorColor(v.Key, v.Value)
	}))
	segment.On(s, prefix.Set3DCursorCycleTime, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, seconds float32) {
		ctx.Model.Scene().SetCursorCycleTime(seconds)
	}))
	segment.On(s, prefix.Set3DCursorSize, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, size float32) {
		ctx.Model.Scene().SetCursorSize(size)
	}))
	segment.On(s, prefix.SetAmbientLevel, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, level float32) {
		ctx.Model.Scene().SetAmbientLevel(level)
	}))
	segment.On(s, prefix.SetAnisotropy, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Target().Texture().SetAnisotropy(n)
	}))
	segment.On(s, prefix.SetAxesLineWidth, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, width float32) {
		ctx.Model.Scene().SetAxesLineWidth(width)
	}))
	segment.On(s, prefix.SetBackgroundColor, arg.KindColor, arg.EnumColor(model.Backgrounds), segment.Set(func(ctx *execctx.ExecutionContext, v arg.Keyed[model.Background, model.Color]) {
		ctx.Model.SetBackgroundColor(v.Key, v.Value)
	}))
	segment.On(s, prefix.SetBoundsColor, arg.KindColor, arg.Color, segment.Set(func(ctx *execctx.ExecutionContext, c model.Color) {
		ctx.Model.Scene().SetBoundsColor(c)
	}))
	segment.On(s, prefix.SetBoundsLineWidth, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, width float32) {
		ctx.Model.Scene().SetBoundsLineWidth(width)
	}))
	segment.On(s, prefix.SetBufferInstanceSpan, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Target().Buffer().SetInstanceSpan(n)
	}))
	segment.On(s, prefix.SetBufferLimit, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Target().Buffer().SetLimit(n)
	}))
	segment.On(s, prefix.SetBufferStride, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Target().Buffer().SetStride(n)
	}))
	segment.On(s, prefix.SetCloudiness, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, fraction float32) {
		ctx.Model.Scene().SetCloudiness(fraction)
	}))
	segment.On(s, prefix.SetDumpIndentSpaces, arg.KindInt, arg.Int, func(ctx *execctx.ExecutionContext, n int) handler.Result {
		if n < 0 {
			return handler.Malformed(malformed(prefix.SetDumpIndentSpaces, "negative indent %d", n))
		}
		ctx.Model.Dumper().SetIndentIncrement(strings.Repeat(" ", n))
		return handler.Success()
	})
	segment.On(s, prefix.SetDumpMaxChildren, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Dumper().SetMaxChildren(n)
	}))
	segment.On(s, prefix.SetDurationProportional, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, seconds float32) {
		ctx.Model.Target().Animation().SetDurationProportional(seconds)
	}))
	segment.On(s, prefix.SetDurationSame, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, seconds float32) {
		ctx.Model.Target().Animation().SetDurationSame(seconds)
	}))
	segment.On(s, prefix.SetFrameTime, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, seconds float32) {
		ctx.Model.Target().Keyframe().SetTime(seconds)
	}))
	segment.On(s, prefix.SetHour, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, hour float32) {
		ctx.Model.Scene().SetHour(hour)
	}))
	segment.On(s, prefix.SetLinkMass, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, mass float32) {
		ctx.Model.Target().SetLinkMass(mass)
	}))
	segment.On(s, prefix.SetMainDirection, arg.KindVector, arg.Vector, segment.Set(func(ctx *execctx.ExecutionContext, v model.Vector3) {
		ctx.Model.Scene().SetMainDirection(v)
	}))
	segment.On(s, prefix.SetMainLevel, arg.KindFloat, arg.Float, segment.Set(func(ctx *execctx.ExecutionContext, level float32) {
		ctx.Model.Scene().SetMainLevel(level)
	}))
	segment.On(s, prefix.SetMapSize, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Scene().SetShadowMapSize(n)
	}))
	segment.On(s, prefix.SetMatParamValue, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, value string) {
		ctx.Model.Target().SetMatParamValue(value)
	}))
	segment.On(s, prefix.SetMeshWeights, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Target().SetMeshWeights(n)
	}))
	segment.On(s, prefix.SetNumSplits, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Scene().SetNumSplits(n)
	}))

	return s
}
