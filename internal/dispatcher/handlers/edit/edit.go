// Package edit provides the handlers for structural edits of the target
// model: copy, delete, new, reduce, rename, resample, retarget and wrap.
//
// Each verb is a single segment covering every noun. Literals that need
// a value the user has not supplied open the dialog named by the literal;
// the dialog commits by dispatching the matching prefix.
package edit

import (
	"strings"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/action/arg"
	"github.com/dshills/rigedit/internal/action/prefix"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
)

// CheckpointDescription labels checkpoints created by "new checkpoint".
const CheckpointDescription = "user interface"

func newSegment(verb string) *segment.Segment {
	return segment.New(verb, segment.SpanAll).Require(segment.RequireModel)
}

// NewCopyHandler creates the "copy" segment.
func NewCopyHandler() *segment.Segment {
	s := newSegment("copy")
	segment.On(s, prefix.CopyAnimation, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Animation().CopyAndLoad(name)
	}))
	return s
}

// NewDeleteHandler creates the "delete" segment.
func NewDeleteHandler() *segment.Segment {
	s := newSegment("delete")

	s.Literal(action.DeleteAnimation, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Animation().Delete()
	}))
	s.Literal(action.DeleteMapping, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Map().DeleteBoneMapping()
	}))
	s.Literal(action.DeleteSgc, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Sgc().Delete()
	}))
	s.Literal(action.DeleteSingleKeyframe, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Track().DeleteSelectedKeyframe()
	}))
	s.Literal(action.DeleteUserKey, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().UserData().Delete()
	}))

	segment.On(s, prefix.DeleteNextKeyframes, arg.KindInt, arg.Count, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Target().Track().DeleteNextKeyframes(n)
	}))
	segment.On(s, prefix.DeletePreviousKeyframes, arg.KindInt, arg.Count, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Target().Track().DeletePreviousKeyframes(n)
	}))
	return s
}

// NewNewHandler creates the "new" segment.
func NewNewHandler() *segment.Segment {
	s := newSegment("new")

	s.Literal(action.NewAnimationFromPose, segment.Dialog(action.NewAnimationFromPose))
	s.Literal(action.NewCheckpoint, func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.History == nil {
			return handler.Error(execctx.ErrMissingHistory)
		}
		id := ctx.History.Checkpoint(CheckpointDescription)
		return handler.Success().WithData("checkpoint", id)
	})
	s.Literal(action.NewMapping, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Map().MapBones()
	}))
	s.Literal(action.NewSgc, segment.Menu(action.NewSgc))
	s.Literal(action.NewSingleKeyframe, func(ctx *execctx.ExecutionContext) handler.Result {
		track := ctx.Model.Target().Track()
		if !track.IsSelected() {
			return handler.NoOpWithMessage("no track selected")
		}
		track.InsertOrReplaceKeyframe()
		return handler.Success()
	})
	s.Literal(action.NewUserKey, segment.Menu(action.NewUserKey))

	s.Prefix(prefix.NewAnimationFromMix, arg.KindTuple, newFromMix)
	segment.On(s, prefix.NewAnimationFromPose, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Animation().PoseAndLoad(name)
	}))
	s.Prefix(prefix.NewUserKey, arg.KindTuple, newUserKey)
	return s
}

// newFromMix handles "indices name". Without a name the naming dialog
// opens with the indices filled in.
func newFromMix(ctx *execctx.ExecutionContext, payload string) handler.Result {
	if !strings.Contains(payload, " ") {
		return segment.Dialog(strings.TrimSuffix(prefix.NewAnimationFromMix, " "), payload)(ctx)
	}
	indices, name, err := arg.Head(payload)
	if err != nil {
		return handler.Malformed(err)
	}
	ctx.Model.Target().AnimControl().Mix(indices, name)
	return handler.Success()
}

// newUserKey handles "type key". Without a key the key dialog opens for
// the chosen type.
func newUserKey(ctx *execctx.ExecutionContext, payload string) handler.Result {
	if !strings.Contains(payload, " ") {
		return segment.Dialog(action.NewUserKey, payload)(ctx)
	}
	dataType, key, err := arg.Head(payload)
	if err != nil {
		return handler.Malformed(err)
	}
	ctx.Model.Target().AddUserKey(dataType, key)
	return handler.Success()
}

// NewReduceHandler creates the "reduce" segment.
func NewReduceHandler() *segment.Segment {
	s := newSegment("reduce")

	s.Literal(action.ReduceAnimation, segment.Dialog(action.ReduceAnimation))
	s.Literal(action.ReduceTrack, segment.Dialog(action.ReduceTrack))

	segment.On(s, prefix.ReduceAnimation, arg.KindInt, arg.Count, segment.Set(func(ctx *execctx.ExecutionContext, factor int) {
		ctx.Model.Target().Animation().Reduce(factor)
	}))
	segment.On(s, prefix.ReduceTrack, arg.KindInt, arg.Count, segment.Set(func(ctx *execctx.ExecutionContext, factor int) {
		ctx.Model.Target().Track().Reduce(factor)
	}))
	return s
}

// NewRenameHandler creates the "rename" segment.
func NewRenameHandler() *segment.Segment {
	s := newSegment("rename")

	for _, text := range []string{
		action.RenameAnimation,
		action.RenameBone,
		action.RenameSpatial,
		action.RenameUserKey,
	} {
		s.Literal(text, segment.Dialog(text))
	}

	segment.On(s, prefix.RenameAnimation, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Animation().Rename(name)
	}))
	segment.On(s, prefix.RenameBone, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().RenameBone(name)
	}))
	segment.On(s, prefix.RenameSpatial, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().RenameSpatial(name)
	}))
	segment.On(s, prefix.RenameUserKey, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().RenameUserKey(name)
	}))
	return s
}

// NewResampleHandler creates the "resample" segment. It has no literals;
// the resample menus dispatch the prefixes directly.
func NewResampleHandler() *segment.Segment {
	s := newSegment("resample")

	segment.On(s, prefix.ResampleAnimationAtRate, arg.KindFloat, positiveRate, segment.Set(func(ctx *execctx.ExecutionContext, rate float32) {
		ctx.Model.Target().Animation().ResampleAtRate(rate)
	}))
	segment.On(s, prefix.ResampleAnimationToNumber, arg.KindInt, arg.Count, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Target().Animation().ResampleToNumber(n)
	}))
	segment.On(s, prefix.ResampleTrackAtRate, arg.KindFloat, positiveRate, segment.Set(func(ctx *execctx.ExecutionContext, rate float32) {
		ctx.Model.Target().Track().ResampleAtRate(rate)
	}))
	segment.On(s, prefix.ResampleTrackToNumber, arg.KindInt, arg.Count, segment.Set(func(ctx *execctx.ExecutionContext, n int) {
		ctx.Model.Target().Track().ResampleToNumber(n)
	}))
	return s
}

// NewRetargetHandler creates the "retarget" segment.
func NewRetargetHandler() *segment.Segment {
	s := newSegment("retarget")

	s.Literal(action.RetargetAnimation, segment.Dialog(action.RetargetAnimation))
	segment.On(s, prefix.RetargetAnimation, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Map().RetargetAndLoad(name)
	}))
	return s
}

// NewWrapHandler creates the "wrap" segment.
func NewWrapHandler() *segment.Segment {
	s := newSegment("wrap")
	s.Literal(action.WrapTrack, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Track().Wrap()
	}))
	return s
}
