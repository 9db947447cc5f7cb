package journal

import (
	"github.com/dshills/rigedit/internal/model"
)

// cursor records calls made on any selectable entity. A single type
// covers every entity interface; the path tells them apart.
type cursor struct {
	j    *Journal
	path string
}

func (c *cursor) rec(method string, args ...interface{}) { c.j.record(c.path, method, args...) }

func (c *cursor) SelectNext()     { c.rec("selectNext") }
func (c *cursor) SelectPrevious() { c.rec("selectPrevious") }

func (c *cursor) Select(name string)      { c.rec("select", name) }
func (c *cursor) SelectIndex(index int)   { c.rec("selectIndex", index) }
func (c *cursor) SelectID(id uint64)      { c.rec("selectID", id) }
func (c *cursor) SelectChild(name string) { c.rec("selectChild", name) }
func (c *cursor) SelectKey(key string)    { c.rec("selectKey", key) }
func (c *cursor) SelectParent()           { c.rec("selectParent") }
func (c *cursor) SelectTrack()            { c.rec("selectTrack") }
func (c *cursor) SelectFirst()            { c.rec("selectFirst") }
func (c *cursor) SelectLast()             { c.rec("selectLast") }
func (c *cursor) SelectNearest()          { c.rec("selectNearest") }
func (c *cursor) SelectLightOwner()       { c.rec("selectLightOwner") }
func (c *cursor) SelectControlled()       { c.rec("selectControlled") }
func (c *cursor) SelectFromSource()       { c.rec("selectFromSource") }
func (c *cursor) SelectFromTarget()       { c.rec("selectFromTarget") }
func (c *cursor) SelectExtreme(direction model.Vector3) {
	c.rec("selectExtreme", direction)
}
func (c *cursor) Deselect() { c.rec("deselect") }
func (c *cursor) Delete()   { c.rec("delete") }

func (c *cursor) IsReal() bool           { return c.j.flag(c.path + ".real") }
func (c *cursor) IsRetargetedPose() bool { return c.j.flag(c.path + ".retargetedPose") }
func (c *cursor) IsSelected() bool       { return c.j.flag(c.path + ".selected") }
func (c *cursor) IsEnabled() bool        { return c.j.flag(c.path + ".enabled") }

func (c *cursor) PhysicsObjectName() string { return c.j.name(c.path + ".object") }

func (c *cursor) ShapeID() (uint64, bool) {
	c.j.mu.Lock()
	defer c.j.mu.Unlock()
	id, ok := c.j.ids[c.path+".shape"]
	return id, ok
}

func (c *cursor) KeyframeTime(index int) (float32, bool) {
	c.j.mu.Lock()
	defer c.j.mu.Unlock()
	times := c.j.frames[c.path]
	if index < 0 || index >= len(times) {
		return 0, false
	}
	return times[index], true
}

// Animation

func (c *cursor) CopyAndLoad(name string)           { c.rec("copyAndLoad", name) }
func (c *cursor) Rename(name string)                { c.rec("rename", name) }
func (c *cursor) Reduce(factor int)                 { c.rec("reduce", factor) }
func (c *cursor) ResampleToNumber(samples int)      { c.rec("resampleToNumber", samples) }
func (c *cursor) ResampleAtRate(rate float32)       { c.rec("resampleAtRate", rate) }
func (c *cursor) PoseAndLoad(name string)           { c.rec("poseAndLoad", name) }
func (c *cursor) Mix(indices, animation string)     { c.rec("mix", indices, animation) }
func (c *cursor) TogglePaused()                     { c.rec("togglePaused") }
func (c *cursor) SetDurationProportional(d float32) { c.rec("setDurationProportional", d) }
func (c *cursor) SetDurationSame(d float32)         { c.rec("setDurationSame", d) }

// Bone

func (c *cursor) ResetRotation()             { c.rec("resetRotation") }
func (c *cursor) ResetTranslation()          { c.rec("resetTranslation") }
func (c *cursor) ResetScale()                { c.rec("resetScale") }
func (c *cursor) SetRotationToAnimation()    { c.rec("setRotationToAnimation") }
func (c *cursor) SetTranslationToAnimation() { c.rec("setTranslationToAnimation") }
func (c *cursor) SetScaleToAnimation()       { c.rec("setScaleToAnimation") }

// Buffer, keyframe, texture

func (c *cursor) SetInstanceSpan(span int)     { c.rec("setInstanceSpan", span) }
func (c *cursor) SetLimit(limit int)           { c.rec("setLimit", limit) }
func (c *cursor) SetStride(stride int)         { c.rec("setStride", stride) }
func (c *cursor) SetTime(seconds float32)      { c.rec("setTime", seconds) }
func (c *cursor) SetAnisotropy(anisotropy int) { c.rec("setAnisotropy", anisotropy) }

// Light and spatial

func (c *cursor) CardinalizeDirection()        { c.rec("cardinalizeDirection") }
func (c *cursor) ReverseDirection()            { c.rec("reverseDirection") }
func (c *cursor) CardinalizeRotation()         { c.rec("cardinalizeRotation") }
func (c *cursor) SnapRotation(axis model.Axis) { c.rec("snapRotation", axis) }

// Physics

func (c *cursor) SetRigidBodyParameter(parameter model.RigidBodyParameter, value float32) {
	c.rec("setRigidBodyParameter", model.RigidBodyParameters.Name(parameter), value)
}

func (c *cursor) SetParameter(parameter model.ShapeParameter, value float32) {
	c.rec("setParameter", model.ShapeParameters.Name(parameter), value)
}

// Track

func (c *cursor) InsertOrReplaceKeyframe()          { c.rec("insertOrReplaceKeyframe") }
func (c *cursor) DeleteSelectedKeyframe()           { c.rec("deleteSelectedKeyframe") }
func (c *cursor) DeleteNextKeyframes(count int)     { c.rec("deleteNextKeyframes", count) }
func (c *cursor) DeletePreviousKeyframes(count int) { c.rec("deletePreviousKeyframes", count) }
func (c *cursor) SetRotationAll()                   { c.rec("setRotationAll") }
func (c *cursor) SetScaleAll()                      { c.rec("setScaleAll") }
func (c *cursor) SetTranslationAll()                { c.rec("setTranslationAll") }
func (c *cursor) Wrap()                             { c.rec("wrap") }

// Pose

func (c *cursor) ToggleFrozen() { c.rec("toggleFrozen") }

// Mapping

func (c *cursor) CardinalizeTwist()           { c.rec("cardinalizeTwist") }
func (c *cursor) SnapTwist(axis model.Axis)   { c.rec("snapTwist", axis) }
func (c *cursor) ResetTwist()                 { c.rec("resetTwist") }
func (c *cursor) DeleteBoneMapping()          { c.rec("deleteBoneMapping") }
func (c *cursor) MapBones()                   { c.rec("mapBones") }
func (c *cursor) RetargetAndLoad(name string) { c.rec("retargetAndLoad", name) }

var (
	_ model.Animation     = (*cursor)(nil)
	_ model.AnimControl   = (*cursor)(nil)
	_ model.Bone          = (*cursor)(nil)
	_ model.Buffer        = (*cursor)(nil)
	_ model.Geometry      = (*cursor)(nil)
	_ model.Joint         = (*cursor)(nil)
	_ model.Keyframe      = (*cursor)(nil)
	_ model.Light         = (*cursor)(nil)
	_ model.Parameter     = (*cursor)(nil)
	_ model.PhysicsObject = (*cursor)(nil)
	_ model.Pose          = (*cursor)(nil)
	_ model.Sgc           = (*cursor)(nil)
	_ model.Shape         = (*cursor)(nil)
	_ model.Spatial       = (*cursor)(nil)
	_ model.Texture       = (*cursor)(nil)
	_ model.Track         = (*cursor)(nil)
	_ model.UserData      = (*cursor)(nil)
	_ model.Vertex        = (*cursor)(nil)
	_ model.Mapping       = (*cursor)(nil)
)
