package journal

import (
	"github.com/dshills/rigedit/internal/model"
)

// cgm records edits to one loaded model.
type cgm struct {
	j    *Journal
	path string
	play *PlayOptions
}

func newCgm(j *Journal, path string) *cgm {
	return &cgm{j: j, path: path, play: &PlayOptions{j: j, path: path + ".play"}}
}

func (c *cgm) sel(name string) *cursor {
	return &cursor{j: c.j, path: c.path + "." + name}
}

func (c *cgm) Animation() model.Animation     { return c.sel("animation") }
func (c *cgm) AnimControl() model.AnimControl { return c.sel("animControl") }
func (c *cgm) Bone() model.Bone               { return c.sel("bone") }
func (c *cgm) Buffer() model.Buffer           { return c.sel("buffer") }
func (c *cgm) Geometry() model.Geometry       { return c.sel("geometry") }
func (c *cgm) Joint() model.Joint             { return c.sel("joint") }
func (c *cgm) Keyframe() model.Keyframe       { return c.sel("keyframe") }
func (c *cgm) Light() model.Light             { return c.sel("light") }
func (c *cgm) Link() model.Navigator          { return c.sel("link") }
func (c *cgm) MatParam() model.Parameter      { return c.sel("matParam") }
func (c *cgm) Override() model.Parameter      { return c.sel("override") }
func (c *cgm) Object() model.PhysicsObject    { return c.sel("object") }
func (c *cgm) Play() model.PlayOptions        { return c.play }
func (c *cgm) Pose() model.Pose               { return c.sel("pose") }
func (c *cgm) Sgc() model.Sgc                 { return c.sel("sgc") }
func (c *cgm) Shape() model.Shape             { return c.sel("shape") }
func (c *cgm) Spatial() model.Spatial         { return c.sel("spatial") }
func (c *cgm) Texture() model.Texture         { return c.sel("texture") }
func (c *cgm) Track() model.Track             { return c.sel("track") }
func (c *cgm) UserData() model.UserData       { return c.sel("userData") }
func (c *cgm) Vertex() model.Vertex           { return c.sel("vertex") }

func (c *cgm) GoHorizontal() { c.j.record(c.path, "goHorizontal") }

func (c *cgm) SetBatchHint(hint model.BatchHint) {
	c.j.record(c.path, "setBatchHint", model.BatchHints.Name(hint))
}

func (c *cgm) SetCullHint(hint model.CullHint) {
	c.j.record(c.path, "setCullHint", model.CullHints.Name(hint))
}

func (c *cgm) SetQueueBucket(bucket model.QueueBucket) {
	c.j.record(c.path, "setQueueBucket", model.QueueBuckets.Name(bucket))
}

func (c *cgm) SetShadowMode(mode model.ShadowMode) {
	c.j.record(c.path, "setShadowMode", model.ShadowModes.Name(mode))
}

func (c *cgm) SetBufferUsage(usage model.BufferUsage) {
	c.j.record(c.path, "setBufferUsage", model.BufferUsages.Name(usage))
}

func (c *cgm) SetFaceCullMode(mode model.FaceCull) {
	c.j.record(c.path, "setFaceCullMode", model.FaceCulls.Name(mode))
}

func (c *cgm) SetMeshMode(mode model.MeshMode) {
	c.j.record(c.path, "setMeshMode", model.MeshModes.Name(mode))
}

func (c *cgm) SetLinkMass(mass float32)        { c.j.record(c.path, "setLinkMass", mass) }
func (c *cgm) SetMatParamValue(value string)   { c.j.record(c.path, "setMatParamValue", value) }
func (c *cgm) SetMeshWeights(maxWeights int)   { c.j.record(c.path, "setMeshWeights", maxWeights) }
func (c *cgm) SetOverrideValue(value string)   { c.j.record(c.path, "setOverrideValue", value) }
func (c *cgm) SetUserData(value string)        { c.j.record(c.path, "setUserData", value) }
func (c *cgm) RenameBone(name string)          { c.j.record(c.path, "renameBone", name) }
func (c *cgm) RenameSpatial(name string)       { c.j.record(c.path, "renameSpatial", name) }
func (c *cgm) RenameUserKey(name string)       { c.j.record(c.path, "renameUserKey", name) }
func (c *cgm) AddUserKey(dataType, key string) { c.j.record(c.path, "addUserKey", dataType, key) }
func (c *cgm) ResetSpatialRotation()           { c.j.record(c.path, "resetSpatialRotation") }
func (c *cgm) ResetSpatialScale()              { c.j.record(c.path, "resetSpatialScale") }
func (c *cgm) ResetSpatialTranslation()        { c.j.record(c.path, "resetSpatialTranslation") }

var _ model.EditableCgm = (*cgm)(nil)

// PlayOptions records and stores the player times of one model.
type PlayOptions struct {
	j     *Journal
	path  string
	times [3]float32
}

// Time implements model.PlayOptions.
func (p *PlayOptions) Time(slot model.PlayTimes) float32 {
	p.j.mu.Lock()
	defer p.j.mu.Unlock()
	return p.times[slot]
}

// SetTime implements model.PlayOptions.
func (p *PlayOptions) SetTime(slot model.PlayTimes, seconds float32) {
	p.j.mu.Lock()
	p.times[slot] = seconds
	p.j.mu.Unlock()
	p.j.record(p.path, "setTime", slot, seconds)
}
