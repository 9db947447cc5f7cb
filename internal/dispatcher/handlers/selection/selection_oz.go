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

// Tool windows raised by selection actions.
const (
	ToolObject = "object"
	ToolShape  = "shape"
)

// menusOZ are the o-z literals that only pop up a menu of candidates.
var menusOZ = []string{
	action.SelectOrbitCenter,
	action.SelectOverride,
	action.SelectPhysics,
	action.SelectPhysicsRbp,
	action.SelectPlatformType,
	action.SelectProjection,
	action.SelectSceneBones,
	action.SelectScoreBonesNone,
	action.SelectScoreBonesWhen,
	action.SelectSgc,
	action.SelectShape,
	action.SelectShapeChild,
	action.SelectShapeParm,
	action.SelectShapeUser,
	action.SelectSourceAnimControl,
	action.SelectSourceBone,
	action.SelectSpatialChild,
	action.SelectTriangleMode,
	action.SelectTweenRotations,
	action.SelectTweenScales,
	action.SelectTweenTranslations,
	action.SelectUserKey,
	action.SelectVertex,
	action.SelectViewMode,
}

// screenPicks maps the screen literals to what they pick.
var screenPicks = map[string]string{
	action.SelectScreenBone:     "bone",
	action.SelectScreenGnomon:   "gnomon",
	action.SelectScreenKeyframe: "keyframe",
	action.SelectScreenVertex:   "vertex",
	action.SelectScreenXY:       "xy",
}

// NewHandlerOZ creates the "select" segment for nouns o through z.
func NewHandlerOZ() *segment.Segment {
	s := segment.New("select", segment.SpanOZ).Require(segment.RequireModel)

	for _, text := range menusOZ {
		s.Literal(text, segment.Menu(text))
	}
	for _, text := range []string{
		action.SelectScreenBone,
		action.SelectScreenGnomon,
		action.SelectScreenKeyframe,
		action.SelectScreenVertex,
		action.SelectScreenXY,
	} {
		s.Literal(text, segment.Pick(screenPicks[text]))
	}

	// Releasing the pick button ends any drag it started.
	noDrag := func(ctx *execctx.ExecutionContext) handler.Result { return handler.NoOp() }
	s.Release(action.SelectScreenBone, noDrag)
	s.Release(action.SelectScreenKeyframe, noDrag)
	s.Release(action.SelectScreenVertex, noDrag)
	s.Release(action.SelectScreenGnomon, stopDragging("gnomon"))
	s.Release(action.SelectScreenXY, stopDragging("boundary", "gnomon", "scene"))

	s.Literal(action.SelectPhysicsShape, selectPhysicsShape)
	s.Literal(action.SelectSgcObject, selectSgcObject)
	s.Literal(action.SelectSgcSpatial, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Spatial().SelectControlled()
	}))
	s.Literal(action.SelectSpatialParent, segment.Do(func(ctx *execctx.ExecutionContext) {
		ctx.Model.Target().Spatial().SelectParent()
	}))

	segment.On(s, prefix.SelectOrbitCenter, arg.KindEnum, arg.Enum(model.OrbitCenters), segment.Set(func(ctx *execctx.ExecutionContext, v model.OrbitCenter) {
		ctx.Model.Scene().SetOrbitCenter(v)
	}))
	segment.On(s, prefix.SelectOverride, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Override().Select(name)
	}))
	segment.On(s, prefix.SelectPhysics, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Object().Select(name)
	}))
	segment.On(s, prefix.SelectPhysicsRbp, arg.KindEnum, arg.Enum(model.RigidBodyParameters), segment.Set(func(ctx *execctx.ExecutionContext, v model.RigidBodyParameter) {
		ctx.Model.Misc().SetRbp(v)
	}))
	segment.On(s, prefix.SelectPlatformType, arg.KindEnum, arg.Enum(model.PlatformTypes), segment.Set(func(ctx *execctx.ExecutionContext, v model.PlatformType) {
		ctx.Model.Scene().SetPlatformType(v)
	}))
	segment.On(s, prefix.SelectProjection, arg.KindEnum, arg.Enum(model.ProjectionModes), segment.Set(func(ctx *execctx.ExecutionContext, v model.ProjectionMode) {
		ctx.Model.Scene().SetProjection(v)
	}))
	segment.On(s, prefix.SelectSceneBones, arg.KindEnum, arg.Enum(model.ShowBonesOptions), segment.Set(func(ctx *execctx.ExecutionContext, v model.ShowBones) {
		ctx.Model.Scene().SetShowBones(v)
	}))
	segment.On(s, prefix.SelectScoreBonesNone, arg.KindEnum, arg.Enum(model.ShowBonesOptions), segment.Set(func(ctx *execctx.ExecutionContext, v model.ShowBones) {
		ctx.Model.Score().SetShowNoneSelected(v)
	}))
	segment.On(s, prefix.SelectScoreBonesWhen, arg.KindEnum, arg.Enum(model.ShowBonesOptions), segment.Set(func(ctx *execctx.ExecutionContext, v model.ShowBones) {
		ctx.Model.Score().SetShowWhenSelected(v)
	}))
	segment.On(s, prefix.SelectSgc, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Sgc().Select(name)
	}))
	segment.On(s, prefix.SelectShape, arg.KindText, arg.NamedID, segment.Set(func(ctx *execctx.ExecutionContext, id uint64) {
		ctx.Model.Target().Shape().SelectID(id)
	}))
	segment.On(s, prefix.SelectShapeParm, arg.KindEnum, arg.Enum(model.ShapeParameters), segment.Set(func(ctx *execctx.ExecutionContext, v model.ShapeParameter) {
		ctx.Model.Misc().SetShapeParameter(v)
	}))
	segment.On(s, prefix.SelectSourceAnimControl, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Source().AnimControl().Select(name)
	}))
	segment.On(s, prefix.SelectSourceBone, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Source().Bone().Select(name)
	}))
	segment.On(s, prefix.SelectSpatial, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, path string) {
		ctx.Model.Target().Spatial().Select(path)
	}))
	segment.On(s, prefix.SelectSpatialChild, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, name string) {
		ctx.Model.Target().Spatial().SelectChild(name)
	}))
	s.Prefix(prefix.SelectTool, arg.KindText, selectTool)
	segment.On(s, prefix.SelectToolAt, arg.KindTuple, parseToolAt, moveTool)
	segment.On(s, prefix.SelectTriangleMode, arg.KindEnum, arg.Enum(model.TriangleModes), segment.Set(func(ctx *execctx.ExecutionContext, v model.TriangleMode) {
		ctx.Model.Scene().SetTriangleMode(v)
	}))
	segment.On(s, prefix.SelectTweenRotations, arg.KindEnum, arg.Enum(model.TweenRotationModes), segment.Set(func(ctx *execctx.ExecutionContext, v model.TweenRotations) {
		ctx.Model.Tween().SetTweenRotations(v)
	}))
	segment.On(s, prefix.SelectTweenScales, arg.KindEnum, arg.Enum(model.TweenVectorModes), segment.Set(func(ctx *execctx.ExecutionContext, v model.TweenVectors) {
		ctx.Model.Tween().SetTweenScales(v)
	}))
	segment.On(s, prefix.SelectTweenTranslations, arg.KindEnum, arg.Enum(model.TweenVectorModes), segment.Set(func(ctx *execctx.ExecutionContext, v model.TweenVectors) {
		ctx.Model.Tween().SetTweenTranslations(v)
	}))
	segment.On(s, prefix.SelectUserKey, arg.KindText, arg.Text, segment.Set(func(ctx *execctx.ExecutionContext, key string) {
		ctx.Model.Target().UserData().SelectKey(key)
	}))
	segment.On(s, prefix.SelectVertex, arg.KindIndex, arg.Int, segment.Ordinal(func(ctx *execctx.ExecutionContext, i int) {
		ctx.Model.Target().Vertex().SelectIndex(i)
	}))
	segment.On(s, prefix.SelectViewMode, arg.KindEnum, arg.Enum(model.ViewModes), segment.Set(func(ctx *execctx.ExecutionContext, v model.ViewMode) {
		ctx.Model.Misc().SetViewMode(v)
	}))

	return s
}

func stopDragging(what ...string) segment.Mutation {
	return func(ctx *execctx.ExecutionContext) handler.Result {
		if ctx.UI == nil {
			return handler.Error(execctx.ErrMissingUI)
		}
		for _, w := range what {
			ctx.UI.StopDragging(w)
		}
		return handler.Success()
	}
}

// selectPhysicsShape selects the shape of the selected physics object.
func selectPhysicsShape(ctx *execctx.ExecutionContext) handler.Result {
	target := ctx.Model.Target()
	id, ok := target.Object().ShapeID()
	if !ok {
		return handler.NoOpWithMessage("selected object has no shape")
	}
	target.Shape().SelectID(id)
	if ctx.UI != nil {
		ctx.UI.SelectTool(ToolShape)
	}
	return handler.Success()
}

// selectSgcObject selects the physics object of the selected control.
func selectSgcObject(ctx *execctx.ExecutionContext) handler.Result {
	target := ctx.Model.Target()
	sgc := target.Sgc()
	name := sgc.PhysicsObjectName()
	if name == "" || !sgc.IsEnabled() {
		return handler.NoOpWithMessage("control has no enabled physics object")
	}
	target.Object().Select(name)
	if ctx.UI != nil {
		ctx.UI.SelectTool(ToolObject)
	}
	return handler.Success()
}

// selectTool raises a tool window. An unknown tool is not recognized.
func selectTool(ctx *execctx.ExecutionContext, name string) handler.Result {
	if ctx.UI == nil {
		return handler.Error(execctx.ErrMissingUI)
	}
	if !ctx.UI.SelectTool(name) {
		return handler.Unhandled().WithMessage(fmt.Sprintf("no tool %q", name))
	}
	return handler.Success()
}

// toolAt is a tool window and its new position.
type toolAt struct {
	name string
	x, y int
}

func parseToolAt(payload string) (toolAt, error) {
	fields, err := arg.Fields(payload, 3)
	if err != nil {
		return toolAt{}, err
	}
	t := toolAt{name: fields[0]}
	if t.x, err = arg.Int(fields[1]); err != nil {
		return toolAt{}, err
	}
	if t.y, err = arg.Int(fields[2]); err != nil {
		return toolAt{}, err
	}
	return t, nil
}

// moveTool repositions a tool window. An unknown tool is not recognized.
func moveTool(ctx *execctx.ExecutionContext, t toolAt) handler.Result {
	if ctx.UI == nil {
		return handler.Error(execctx.ErrMissingUI)
	}
	if !ctx.UI.MoveTool(t.name, t.x, t.y) {
		return handler.Unhandled().WithMessage(fmt.Sprintf("no tool %q", t.name))
	}
	return handler.Success()
}
