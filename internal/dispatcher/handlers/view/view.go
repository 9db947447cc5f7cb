package view

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

// NewViewHandler creates the "view" segment.
func NewViewHandler() *segment.Segment {
	s := segment.New("view", segment.SpanAll).Require(segment.RequireModel)

	s.Literal(action.ViewHorizontal, func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.UI == nil {
			return handler.Error(execctx.ErrMissingUI)
		}
		if !ctx.UI.MouseViewIsScene() {
			return handler.NoOpWithMessage("pointer is not over a scene view")
		}
		cgm := ctx.UI.MouseCgm()
		if cgm == nil {
			return handler.NoOpWithMessage("no model under the pointer")
		}
		cgm.GoHorizontal()
		return handler.Success()
	})

	dialog := strings.TrimSuffix(prefix.ViewLicense, " ")
	segment.On(s, prefix.ViewLicense, arg.KindEnum, arg.Enum(model.LicenseTypes), func(ctx *execctx.ExecutionContext, v model.LicenseType) handler.Result {
		return segment.Dialog(dialog, model.LicenseTypes.Name(v))(ctx)
	})
	return s
}

// NewWarpHandler creates the "warp" segment.
func NewWarpHandler() *segment.Segment {
	s := segment.New("warp", segment.SpanAll)

	s.Literal(action.WarpCursor, func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.UI == nil {
			return handler.Error(execctx.ErrMissingUI)
		}
		ctx.UI.WarpCursor()
		return handler.Success()
	})
	s.Literal(action.WarpLastCheckpoint, func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.History == nil {
			return handler.Error(execctx.ErrMissingHistory)
		}
		n := ctx.History.RedoAll()
		if n == 0 {
			return handler.NoOpWithMessage("already at the last checkpoint")
		}
		return handler.Success().WithData("redone", n)
	})
	return s
}
