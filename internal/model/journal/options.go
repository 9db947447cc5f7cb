package journal

import (
	"github.com/dshills/rigedit/internal/model"
)

// options records the editor-wide, scene, score, tween and dump options.
type options struct {
	j *Journal

	indexBase int
	rbp       model.RigidBodyParameter
	shapeParm model.ShapeParameter
}

func (o *options) rec(path, method string, args ...interface{}) { o.j.record(path, method, args...) }

// Misc

func (o *options) IndexBase() int {
	o.j.mu.Lock()
	defer o.j.mu.Unlock()
	return o.indexBase
}

func (o *options) SetIndexBase(base int) {
	o.j.mu.Lock()
	o.indexBase = base
	o.j.mu.Unlock()
	o.rec("misc", "setIndexBase", base)
}

func (o *options) ToggleIndexBase() {
	o.j.mu.Lock()
	o.indexBase = 1 - o.indexBase
	o.j.mu.Unlock()
	o.rec("misc", "toggleIndexBase")
}

func (o *options) PerformanceModes() model.Navigator {
	return &cursor{j: o.j, path: "misc.performanceMode"}
}

func (o *options) ViewModes() model.Navigator {
	return &cursor{j: o.j, path: "misc.viewMode"}
}

func (o *options) SetViewMode(mode model.ViewMode) {
	o.rec("misc", "setViewMode", model.ViewModes.Name(mode))
}

func (o *options) SetColorIndex(index int) { o.rec("misc", "setColorIndex", index) }

func (o *options) Rbp() model.RigidBodyParameter {
	o.j.mu.Lock()
	defer o.j.mu.Unlock()
	return o.rbp
}

func (o *options) SetRbp(parameter model.RigidBodyParameter) {
	o.j.mu.Lock()
	o.rbp = parameter
	o.j.mu.Unlock()
	o.rec("misc", "setRbp", model.RigidBodyParameters.Name(parameter))
}

func (o *options) ShapeParameter() model.ShapeParameter {
	o.j.mu.Lock()
	defer o.j.mu.Unlock()
	return o.shapeParm
}

func (o *options) SetShapeParameter(parameter model.ShapeParameter) {
	o.j.mu.Lock()
	o.shapeParm = parameter
	o.j.mu.Unlock()
	o.rec("misc", "setShapeParameter", model.ShapeParameters.Name(parameter))
}

func (o *options) SelectBackground(background model.Background) {
	o.rec("misc", "selectBackground", model.Backgrounds.Name(background))
}

func (o *options) SetLoadBvhAxisOrder(order model.LoadBvhAxisOrder) {
	o.rec("misc", "setLoadBvhAxisOrder", model.LoadBvhAxisOrders.Name(order))
}

func (o *options) SetSubmenuWarp(x, y float32)   { o.rec("misc", "setSubmenuWarp", x, y) }
func (o *options) SetXBoundary(position float32) { o.rec("misc", "setXBoundary", position) }
func (o *options) SetRefreshRate(hertz int)      { o.rec("misc", "setRefreshRate", hertz) }
func (o *options) ToggleAnglesInDegrees()        { o.rec("misc", "toggleAnglesInDegrees") }

// Scene

func (o *options) SetAxesDragEffect(effect model.AxesDragEffect) {
	o.rec("scene.axes", "setDragEffect", model.AxesDragEffects.Name(effect))
}

func (o *options) SetAxesSubject(subject model.AxesSubject) {
	o.rec("scene.axes", "setSubject", model.AxesSubjects.Name(subject))
}

func (o *options) SetAxesLineWidth(width float32) { o.rec("scene.axes", "setLineWidth", width) }

func (o *options) SetBoundsColor(c model.Color)     { o.rec("scene.bounds", "setColor", c) }
func (o *options) SetBoundsLineWidth(width float32) { o.rec("scene.bounds", "setLineWidth", width) }

func (o *options) SetCursorColor(index int, c model.Color) {
	o.rec("scene.cursor", "setColor", index, c)
}

func (o *options) SetCursorCycleTime(seconds float32) { o.rec("scene.cursor", "setCycleTime", seconds) }
func (o *options) SetCursorSize(size float32)         { o.rec("scene.cursor", "setSize", size) }

func (o *options) SetOrbitCenter(center model.OrbitCenter) {
	o.rec("scene.camera", "setOrbitCenter", model.OrbitCenters.Name(center))
}

func (o *options) SetMovement(mode model.MovementMode) {
	o.rec("scene.camera", "setMovement", model.MovementModes.Name(mode))
}

func (o *options) SetProjection(mode model.ProjectionMode) {
	o.rec("scene.camera", "setProjection", model.ProjectionModes.Name(mode))
}

func (o *options) ToggleProjection() { o.rec("scene.camera", "toggleProjection") }

func (o *options) SetAmbientLevel(level float32) { o.rec("scene.lights", "setAmbientLevel", level) }
func (o *options) SetMainLevel(level float32)    { o.rec("scene.lights", "setMainLevel", level) }

func (o *options) SetMainDirection(direction model.Vector3) {
	o.rec("scene.lights", "setDirection", direction)
}

func (o *options) SetEdgeFilter(filter model.EdgeFilter) {
	o.rec("scene.render", "setEdgeFilter", model.EdgeFilters.Name(filter))
}

func (o *options) SetCloudiness(fraction float32) { o.rec("scene.render", "setCloudiness", fraction) }
func (o *options) SetHour(hour float32)           { o.rec("scene.render", "setHour", hour) }
func (o *options) SetShadowMapSize(size int)      { o.rec("scene.render", "setShadowMapSize", size) }
func (o *options) SetNumSplits(splits int)        { o.rec("scene.render", "setNumSplits", splits) }

func (o *options) SetTriangleMode(mode model.TriangleMode) {
	o.rec("scene.render", "setTriangleMode", model.TriangleModes.Name(mode))
}

func (o *options) SetPlatformType(platform model.PlatformType) {
	o.rec("scene", "setPlatformType", model.PlatformTypes.Name(platform))
}

func (o *options) SetPlatformDiameter(which model.WhichCgm, diameter float32) {
	o.rec("scene", "setPlatformDiameter", which, diameter)
}

func (o *options) SetShowBones(option model.ShowBones) {
	o.rec("scene.skeleton", "setShowBones", model.ShowBonesOptions.Name(option))
}

func (o *options) SetSkeletonColor(slot model.SkeletonColors, c model.Color) {
	o.rec("scene.skeleton", "setColor", model.SkeletonColorSlots.Name(slot), c)
}

func (o *options) SetSkeletonLineWidth(width float32) { o.rec("scene.skeleton", "setLineWidth", width) }
func (o *options) SetSkeletonPointSize(size float32)  { o.rec("scene.skeleton", "setPointSize", size) }

func (o *options) SetVertexColor(c model.Color)    { o.rec("scene.vertex", "setColor", c) }
func (o *options) SetVertexPointSize(size float32) { o.rec("scene.vertex", "setPointSize", size) }

// Score

func (o *options) SetShowNoneSelected(option model.ShowBones) {
	o.rec("score", "setShowNoneSelected", model.ShowBonesOptions.Name(option))
}

func (o *options) SetShowWhenSelected(option model.ShowBones) {
	o.rec("score", "setShowWhenSelected", model.ShowBonesOptions.Name(option))
}

// Tween

func (o *options) SetTweenRotations(mode model.TweenRotations) {
	o.rec("tween", "setTweenRotations", model.TweenRotationModes.Name(mode))
}

func (o *options) SetTweenScales(mode model.TweenVectors) {
	o.rec("tween", "setTweenScales", model.TweenVectorModes.Name(mode))
}

func (o *options) SetTweenTranslations(mode model.TweenVectors) {
	o.rec("tween", "setTweenTranslations", model.TweenVectorModes.Name(mode))
}

// Dumper

func (o *options) SetIndentIncrement(indent string) {
	o.rec("dumper", "setIndentIncrement", len(indent))
}

func (o *options) SetMaxChildren(count int) { o.rec("dumper", "setMaxChildren", count) }

var (
	_ model.Misc   = (*options)(nil)
	_ model.Scene  = (*options)(nil)
	_ model.Score  = (*options)(nil)
	_ model.Tween  = (*options)(nil)
	_ model.Dumper = (*options)(nil)
)
