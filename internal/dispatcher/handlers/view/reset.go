package view

import (
	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
	"github.com/dshills/rigedit/internal/model"
)

// NewResetHandler creates the "reset" segment.
func NewResetHandler() *segment.Segment {
	s := segment.New("reset", segment.SpanAll).Require(segment.RequireModel)

	bone := func(fn func(b model.Bone)) segment.Mutation {
		return segment.Do(func(ctx *execctx.ExecutionContext) {
			fn(ctx.Model.Target().Bone())
		})
	}
	s.Literal(action.ResetBoneAngleToAnimation, bone(model.Bone.SetRotationToAnimation))
	s.Literal(action.ResetBoneAngleToBind, bone(model.Bone.ResetRotation))
	s.Literal(action.ResetBoneOffsetToAnimation, bone(model.Bone.SetTranslationToAnimation))
	s.Literal(action.ResetBoneOffsetToBind, bone(model.Bone.ResetTranslation))
	s.Literal(action.ResetBoneScaleToAnimation, bone(model.Bone.SetScaleToAnimation))
	s.Literal(action.ResetBoneScaleToBind, bone(model.Bone.ResetScale))

	s.Literal(action.ResetBoneSelection, underMouse(func(cgm model.Cgm) {
		cgm.Bone().Deselect()
	}))
	s.Literal(action.ResetVertexSelection, underMouse(func(cgm model.Cgm) {
		cgm.Vertex().Deselect()
	}))

	s.Literal(action.ResetSpatialRotation, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().ResetSpatialRotation()
	}))
	s.Literal(action.ResetSpatialScale, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().ResetSpatialScale()
	}))
	s.Literal(action.ResetSpatialTranslation, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().ResetSpatialTranslation()
	}))
	s.Literal(action.ResetTwist, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Map().ResetTwist()
	}))
	return s
}

// underMouse applies fn to the model whose view is under the pointer. With
// no such model the action does nothing.
func underMouse(fn func(cgm model.Cgm)) segment.Mutation {
	return func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.UI == nil {
			return handler.Error(execctx.ErrMissingUI)
		}
		cgm := ctx.UI.MouseCgm()
		if cgm == nil {
			return handler.NoOpWithMessage("no model under the pointer")
		}
		fn(cgm)
		return handler.Success()
	}
}
