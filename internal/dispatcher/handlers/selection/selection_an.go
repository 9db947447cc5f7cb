package selection

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

// menusAN are the a-n literals that only pop up a menu of candidates.
var menusAN = []string{
	action.SelectAnimControl,
	action.SelectAxesDragEffect,
	action.SelectAxesSubject,
	action.SelectBackground,
	action.SelectBatchHint,
	action.SelectBone,
	action.SelectBoneChild,
	action.SelectBuffer,
	action.SelectBufferUsage,
	action.SelectCullHint,
	action.SelectEdgeFilter,
	action.SelectFaceCull,
	action.SelectGeometry,
	action.SelectIndexBase,
	action.SelectJoint,
	action.SelectLight,
	action.SelectLoadBvhAxisOrder,
	action.SelectMaterialEditMenu,
	action.SelectMatParam,
	action.SelectMeshMode,
	action.SelectMovement,
}

// NewHandlerAN creates the "select" segment for nouns a through n.
func NewHandlerAN() *segment.Segment {
	s := segment.New("select", segment.SpanAN).Require(segment.RequireModel)

	for _, text := range menusAN {
		s.Literal(text, segment.Menu(text))
	}

	s.Literal(action.SelectAnimationEditMenu, func(ctx *execctx.ExecutionContext) handler.Result {
		if !ctx.Model.Target().Animation().IsReal() {
			return handler.NoOpWithMessage("no real animation loaded")
		}
		return segment.Menu(action.SelectAnimationEditMenu)(ctx)
	})
	s.Literal(action.SelectBoneParent, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Bone().SelectParent()
	}))
	s.Literal(action.SelectBoneTrack, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Bone().SelectTrack()
	}))
	s.Literal(action.SelectKeyframeFirst, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Keyframe().SelectFirst()
	}))
	s.Literal(action.SelectKeyframeLast, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Keyframe().SelectLast()
	}))
	s.Literal(action.SelectKeyframeNearest, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Keyframe().SelectNearest()
	}))
	s.Literal(action.SelectKeyframeNext, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Keyframe().SelectNext()
	}))
	s.Literal(action.SelectKeyframePrevious, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Keyframe().SelectPrevious()
	}))
	s.Literal(action.SelectLightOwner, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Spatial().SelectLightOwner()
	}))
	s.Literal(action.SelectMapSourceBone, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Map().SelectFromSource()
	}))
	s.Literal(action.SelectMapTargetBone, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Map().SelectFromTarget()
	}))

	segment.On(s, prefix.SelectAnimControl, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().AnimControl().Select(name)
	}))
	segment.On(s, prefix.SelectAxesDragEffect, arg.KindEnum, arg.Enum(model.AxesDragEffects), segment.Set(func(ctx *execctx.ExecutionContext, v model.AxesDragEffect) {
		ctx.Model.Scene().SetAxesDragEffect(v)
	}))
	segment.On(s, prefix.SelectAxesSubject, arg.KindEnum, arg.Enum(model.AxesSubjects), segment.Set(func(ctx *execctx.ExecutionContext, v model.AxesSubject) {
		ctx.Model.Scene().SetAxesSubject(v)
	}))
	segment.On(s, prefix.SelectBackground, arg.KindEnum, arg.Enum(model.Backgrounds), segment.Set(func(ctx *execctx.ExecutionContext, v model.Background) {
		ctx.Model.Misc().SelectBackground(v)
	}))
	segment.On(s, prefix.SelectBatchHint, arg.KindEnum, arg.Enum(model.BatchHints), segment.Set(func(ctx *execctx.ExecutionContext, v model.BatchHint) {
		ctx.Model.Target().SetBatchHint(v)
	}))
	segment.On(s, prefix.SelectBone, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Bone().Select(name)
	}))
	segment.On(s, prefix.SelectBoneChild, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Bone().SelectChild(name)
	}))
	segment.On(s, prefix.SelectBoneIndex, arg.KindIndex, arg.Int, segment.Ordinal(func(ctx *execctx.ExecutionContext, i int) {
		ctx.Model.Target().Bone().SelectIndex(i)
	}))
	segment.On(s, prefix.SelectBuffer, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, desc string) {
		ctx.Model.Target().Buffer().Select(desc)
	}))
	segment.On(s, prefix.SelectBufferUsage, arg.KindEnum, arg.Enum(model.BufferUsages), segment.Set(func(ctx *execctx.ExecutionContext, v model.BufferUsage) {
		ctx.Model.Target().SetBufferUsage(v)
	}))
	segment.On(s, prefix.SelectCullHint, arg.KindEnum, arg.Enum(model.CullHints), segment.Set(func(ctx *execctx.ExecutionContext, v model.CullHint) {
		ctx.Model.Target().SetCullHint(v)
	}))
	segment.On(s, prefix.SelectCursorColor, arg.KindInt, arg.Int, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Misc().SetColorIndex(n)
	}))
	segment.On(s, prefix.SelectEdgeFilter, arg.KindEnum, arg.Enum(model.EdgeFilters), segment.Set(func(ctx *execctx.ExecutionContext, v model.EdgeFilter) {
		ctx.Model.Scene().SetEdgeFilter(v)
	}))
	segment.On(s, prefix.SelectExtremeVertex, arg.KindVector, arg.Floats(3), segment.Set(func(ctx *execctx.ExecutionContext, xyz []float32) {
		ctx.Model.Target().Vertex().SelectExtreme(model.Vector3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}))
	segment.On(s, prefix.SelectFaceCull, arg.KindEnum, arg.Enum(model.FaceCulls), segment.Set(func(ctx *execctx.ExecutionContext, v model.FaceCull) {
		ctx.Model.Target().SetFaceCullMode(v)
	}))
	segment.On(s, prefix.SelectGeometry, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Geometry().Select(name)
	}))
	segment.On(s, prefix.SelectIndexBase, arg.KindInt, arg.IndexBase, segment.Set(func(ctx *execctx.ExecutionContext, base int) {
		ctx.Model.Misc().SetIndexBase(base)
	}))
	segment.On(s, prefix.SelectJoint, arg.KindHex, arg.Hex, segment.Set(func(ctx *execctx.ExecutionContext, id uint64) {
		ctx.Model.Target().Joint().SelectID(id)
	}))
	segment.On(s, prefix.SelectKeyframe, arg.KindIndex, arg.Int, segment.Ordinal(func(ctx *execctx.ExecutionContext, i int) {
		ctx.Model.Target().Keyframe().SelectIndex(i)
	}))
	segment.On(s, prefix.SelectLight, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Light().Select(name)
	}))
	segment.On(s, prefix.SelectLoadBvhAxisOrder, arg.KindEnum, arg.Enum(model.LoadBvhAxisOrders), segment.Set(func(ctx *execctx.ExecutionContext, v model.LoadBvhAxisOrder) {
		ctx.Model.Misc().SetLoadBvhAxisOrder(v)
	}))
	segment.On(s, prefix.SelectMatParam, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().MatParam().Select(name)
	}))
	s.Prefix(prefix.SelectMenuItem, arg.KindText, selectMenuItem)
	segment.On(s, prefix.SelectMeshMode, arg.KindEnum, arg.Enum(model.MeshModes), segment.Set(func(ctx *execctx.ExecutionContext, v model.MeshMode) {
		ctx.Model.Target().SetMeshMode(v)
	}))
	segment.On(s, prefix.SelectMovement, arg.KindEnum, arg.Enum(model.MovementModes), segment.Set(func(ctx *execctx.ExecutionContext, v model.MovementMode) {
		ctx.Model.Scene().SetMovement(v)
	}))

	return s
}

// selectMenuItem is handled only when the UI knows the menu path.
func selectMenuItem(ctx *execctx.ExecutionContext, path string) handler.Result {
	if ctx.UI == nil {
		return handler.Error(execctx.ErrMissingUI)
	}
	if !ctx.UI.SelectMenuItem(path) {
		return handler.Unhandled().WithMessage(fmt.Sprintf("no menu item %q", path))
	}
	return handler.Success()
}
