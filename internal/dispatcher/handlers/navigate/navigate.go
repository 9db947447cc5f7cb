// Package navigate provides the "next" and "previous" segments, which
// step selection cursors and the checkpoint history.
package navigate

import (
	"errors"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
	"github.com/dshills/rigedit/internal/dispatcher/segment"
	"github.com/dshills/rigedit/internal/engine/history"
	"github.com/dshills/rigedit/internal/model"
)

// step pairs the next and previous literals of one cursor.
type step struct {
	next, previous string
	cursor         func(m model.EditorModel) model.Navigator
}

// steps lists every cursor reachable by next/previous.
var steps = []step{
	{action.NextAnimation, action.PreviousAnimation, func(m model.EditorModel) model.Navigator { return m.Target().Animation() }},
	{action.NextAnimControl, action.PreviousAnimControl, func(m model.EditorModel) model.Navigator { return m.Target().AnimControl() }},
	{action.NextBone, action.PreviousBone, func(m model.EditorModel) model.Navigator { return m.Target().Bone() }},
	{action.NextBuffer, action.PreviousBuffer, func(m model.EditorModel) model.Navigator { return m.Target().Buffer() }},
	{action.NextGeometry, action.PreviousGeometry, func(m model.EditorModel) model.Navigator { return m.Target().Geometry() }},
	{action.NextJoint, action.PreviousJoint, func(m model.EditorModel) model.Navigator { return m.Target().Joint() }},
	{action.NextLight, action.PreviousLight, func(m model.EditorModel) model.Navigator { return m.Target().Light() }},
	{action.NextLink, action.PreviousLink, func(m model.EditorModel) model.Navigator { return m.Target().Link() }},
	{action.NextMapping, action.PreviousMapping, func(m model.EditorModel) model.Navigator { return m.Map() }},
	{action.NextMatParam, action.PreviousMatParam, func(m model.EditorModel) model.Navigator { return m.Target().MatParam() }},
	{action.NextOverride, action.PreviousOverride, func(m model.EditorModel) model.Navigator { return m.Target().Override() }},
	{action.NextPerformanceMode, action.PreviousPerformanceMode, func(m model.EditorModel) model.Navigator { return m.Misc().PerformanceModes() }},
	{action.NextPhysics, action.PreviousPhysics, func(m model.EditorModel) model.Navigator { return m.Target().Object() }},
	{action.NextSgc, action.PreviousSgc, func(m model.EditorModel) model.Navigator { return m.Target().Sgc() }},
	{action.NextShape, action.PreviousShape, func(m model.EditorModel) model.Navigator { return m.Target().Shape() }},
	{action.NextSourceAnimation, action.PreviousSourceAnimation, func(m model.EditorModel) model.Navigator { return m.Source().Animation() }},
	{action.NextSourceAnimControl, action.PreviousSourceAnimControl, func(m model.EditorModel) model.Navigator { return m.Source().AnimControl() }},
	{action.NextTexture, action.PreviousTexture, func(m model.EditorModel) model.Navigator { return m.Target().Texture() }},
	{action.NextTrack, action.PreviousTrack, func(m model.EditorModel) model.Navigator { return m.Target().Track() }},
	{action.NextUserData, action.PreviousUserData, func(m model.EditorModel) model.Navigator { return m.Target().UserData() }},
	{action.NextVertex, action.PreviousVertex, func(m model.EditorModel) model.Navigator { return m.Target().Vertex() }},
	{action.NextViewMode, action.PreviousViewMode, func(m model.EditorModel) model.Navigator { return m.Misc().ViewModes() }},
}

// NewNextHandler creates the "next" segment.
func NewNextHandler() *segment.Segment {
	s := segment.New("next", segment.SpanAll).Require(segment.RequireModel)
	for _, st := range steps {
		cursor := st.cursor
		s.Literal(st.next, func(ctx *execctx.ExecutionContext) handler.Result {
			cursor(ctx.Model).SelectNext()
			return handler.Success()
		})
	}
	s.Literal(action.NextCheckpoint, redo)
	return s
}

// NewPreviousHandler creates the "previous" segment.
func NewPreviousHandler() *segment.Segment {
	s := segment.New("previous", segment.SpanAll).Require(segment.RequireModel)
	for _, st := range steps {
		cursor := st.cursor
		s.Literal(st.previous, func(ctx *execctx.ExecutionContext) handler.Result {
			cursor(ctx.Model).SelectPrevious()
			return handler.Success()
		})
	}
	s.Literal(action.PreviousCheckpoint, undo)
	return s
}

// redo and undo never check model state. An empty stack is reported as a
// no-op; the action is still recognized.
func redo(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.History == nil {
		return handler.Error(execctx.ErrMissingHistory)
	}
	return checkpointResult(ctx.History.Redo())
}

func undo(ctx *execctx.ExecutionContext) handler.Result {
	if ctx.History == nil {
		return handler.Error(execctx.ErrMissingHistory)
	}
	return checkpointResult(ctx.History.Undo())
}

func checkpointResult(err error) handler.Result {
	switch {
	case err == nil:
		return handler.Success()
	case errors.Is(err, history.ErrNothingToUndo), errors.Is(err, history.ErrNothingToRedo):
		return handler.NoOpWithMessage(err.Error())
	default:
		return handler.Error(err)
	}
}
