package view

import (
	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
)

// NewToggleHandler creates the "toggle" segment.
func NewToggleHandler() *segment.Segment {
	s := segment.New("toggle", segment.SpanAll).Require(segment.RequireModel)

	s.Literal(action.ToggleDegrees, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Misc().ToggleAnglesInDegrees()
	}))
	s.Literal(action.ToggleDragSide, func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.UI == nil {
			return handler.Error(execctx.ErrMissingUI)
		}
		ctx.UI.ToggleDragSide()
		return handler.Success()
	})
	s.Literal(action.ToggleFreezeTarget, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Pose().ToggleFrozen()
	}))
	s.Literal(action.ToggleIndexBase, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Misc().ToggleIndexBase()
	}))
	s.Literal(action.TogglePause, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Source().Animation().TogglePaused()
		ctx.Model.Target().Animation().TogglePaused()
	}))
	s.Literal(action.TogglePauseSource, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Source().Animation().TogglePaused()
	}))
	// A retargeted pose follows the source animation, so pausing the
	// target means pausing the source.
	s.Literal(action.TogglePauseTarget, segment.Do(func(ctx *execctx.ExecutionContext) {
		if ctx.Model.Target().Animation().IsRetargetedPose() {
			ctx.Model.Source().Animation().TogglePaused()
			return
		}
		ctx.Model.Target().Animation().TogglePaused()
	}))
	s.Literal(action.ToggleProjection, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Scene().ToggleProjection()
	}))
	return s
}
