package model

// Navigator steps a selection cursor through its candidates.
type Navigator interface {
	SelectNext()
	SelectPrevious()
}

// Animation is the loaded animation of a model. Next/previous load the
// adjacent animation.
type Animation interface {
	Navigator
	IsReal() bool
	IsRetargetedPose() bool
	CopyAndLoad(name string)
	Delete()
	Rename(name string)
	Reduce(factor int)
	ResampleToNumber(samples int)
	ResampleAtRate(rate float32)
	PoseAndLoad(name string)
	SetDurationProportional(duration float32)
	SetDurationSame(duration float32)
	TogglePaused()
}

// AnimControl is the selected animation control.
type AnimControl interface {
	Navigator
	Select(name string)
	Mix(indices, animation string)
}

// Bone is the selected bone of a model.
type Bone interface {
	Navigator
	Select(name string)
	SelectIndex(index int)
	SelectChild(name string)
	SelectParent()
	SelectTrack()
	Deselect()
	ResetRotation()
	ResetTranslation()
	ResetScale()
	SetRotationToAnimation()
	SetTranslationToAnimation()
	SetScaleToAnimation()
}

// Buffer is the selected vertex buffer.
type Buffer interface {
	Navigator
	Select(description string)
	SetInstanceSpan(span int)
	SetLimit(limit int)
	SetStride(stride int)
}

// Geometry is the selected geometry.
type Geometry interface {
	Navigator
	Select(name string)
}

// Joint is the selected physics joint.
type Joint interface {
	Navigator
	SelectID(id uint64)
}

// Keyframe is the selected keyframe of the selected track.
type Keyframe interface {
	Navigator
	SelectIndex(index int)
	SelectFirst()
	SelectLast()
	SelectNearest()
	SetTime(seconds float32)
}

// Light is the selected light.
type Light interface {
	Navigator
	Select(name string)
	CardinalizeDirection()
	ReverseDirection()
}

// Parameter is a selected material parameter or parameter override.
type Parameter interface {
	Navigator
	Select(name string)
	IsSelected() bool
}

// PhysicsObject is the selected physics collision object.
type PhysicsObject interface {
	Navigator
	Select(name string)
	// ShapeID returns the id of the object's shape, if it has one.
	ShapeID() (uint64, bool)
	SetRigidBodyParameter(parameter RigidBodyParameter, value float32)
}

// Sgc is the selected scene-graph control.
type Sgc interface {
	Navigator
	Select(name string)
	PhysicsObjectName() string
	IsEnabled() bool
	Delete()
}

// Shape is the selected collision shape.
type Shape interface {
	Navigator
	SelectID(id uint64)
	SetParameter(parameter ShapeParameter, value float32)
}

// Spatial is the selected scene-graph node.
type Spatial interface {
	Select(path string)
	SelectChild(name string)
	SelectParent()
	SelectLightOwner()
	SelectControlled()
	CardinalizeRotation()
	SnapRotation(axis Axis)
}

// Texture is the selected texture.
type Texture interface {
	Navigator
	SetAnisotropy(anisotropy int)
}

// Track is the selected animation track.
type Track interface {
	Navigator
	IsSelected() bool
	// KeyframeTime returns the time of the indexed keyframe.
	KeyframeTime(index int) (float32, bool)
	InsertOrReplaceKeyframe()
	DeleteSelectedKeyframe()
	DeleteNextKeyframes(count int)
	DeletePreviousKeyframes(count int)
	Reduce(factor int)
	ResampleToNumber(samples int)
	ResampleAtRate(rate float32)
	SetRotationAll()
	SetScaleAll()
	SetTranslationAll()
	Wrap()
}

// UserData is the selected user-data key.
type UserData interface {
	Navigator
	SelectKey(key string)
	Delete()
}

// Vertex is the selected mesh vertex.
type Vertex interface {
	Navigator
	SelectIndex(index int)
	SelectExtreme(direction Vector3)
	Deselect()
}

// PlayOptions holds the animation player times of one model.
type PlayOptions interface {
	Time(slot PlayTimes) float32
	SetTime(slot PlayTimes, seconds float32)
}

// Pose is the displayed pose of a model.
type Pose interface {
	ToggleFrozen()
}

// Cgm is a loaded computer-graphics model and its selections.
type Cgm interface {
	Animation() Animation
	AnimControl() AnimControl
	Bone() Bone
	Buffer() Buffer
	Geometry() Geometry
	Joint() Joint
	Keyframe() Keyframe
	Light() Light
	Link() Navigator
	MatParam() Parameter
	Override() Parameter
	Object() PhysicsObject
	Play() PlayOptions
	Pose() Pose
	Sgc() Sgc
	Shape() Shape
	Spatial() Spatial
	Texture() Texture
	Track() Track
	UserData() UserData
	Vertex() Vertex
	// GoHorizontal levels the scene camera of this model's view.
	GoHorizontal()
}

// EditableCgm is the target model, which accepts structural edits.
type EditableCgm interface {
	Cgm
	SetBatchHint(hint BatchHint)
	SetCullHint(hint CullHint)
	SetQueueBucket(bucket QueueBucket)
	SetShadowMode(mode ShadowMode)
	SetBufferUsage(usage BufferUsage)
	SetFaceCullMode(mode FaceCull)
	SetMeshMode(mode MeshMode)
	SetLinkMass(mass float32)
	SetMatParamValue(value string)
	SetMeshWeights(maxWeights int)
	SetOverrideValue(value string)
	SetUserData(value string)
	RenameBone(name string)
	RenameSpatial(name string)
	RenameUserKey(name string)
	AddUserKey(dataType, key string)
	ResetSpatialRotation()
	ResetSpatialScale()
	ResetSpatialTranslation()
}

// Mapping is the bone mapping used for retargeting.
type Mapping interface {
	Navigator
	SelectFromSource()
	SelectFromTarget()
	CardinalizeTwist()
	SnapTwist(axis Axis)
	ResetTwist()
	DeleteBoneMapping()
	MapBones()
	RetargetAndLoad(animation string)
}

// Misc holds editor-wide options.
type Misc interface {
	// IndexBase is 0 or 1; ordinal arguments are offset by it.
	IndexBase() int
	SetIndexBase(base int)
	ToggleIndexBase()
	PerformanceModes() Navigator
	ViewModes() Navigator
	SetViewMode(mode ViewMode)
	SetColorIndex(index int)
	Rbp() RigidBodyParameter
	SetRbp(parameter RigidBodyParameter)
	ShapeParameter() ShapeParameter
	SetShapeParameter(parameter ShapeParameter)
	SelectBackground(background Background)
	SetLoadBvhAxisOrder(order LoadBvhAxisOrder)
	SetSubmenuWarp(x, y float32)
	SetXBoundary(position float32)
	SetRefreshRate(hertz int)
	ToggleAnglesInDegrees()
}

// Scene holds the scene-view options.
type Scene interface {
	SetAxesDragEffect(effect AxesDragEffect)
	SetAxesSubject(subject AxesSubject)
	SetAxesLineWidth(width float32)
	SetBoundsColor(c Color)
	SetBoundsLineWidth(width float32)
	SetCursorColor(index int, c Color)
	SetCursorCycleTime(seconds float32)
	SetCursorSize(size float32)
	SetOrbitCenter(center OrbitCenter)
	SetMovement(mode MovementMode)
	SetProjection(mode ProjectionMode)
	ToggleProjection()
	SetAmbientLevel(level float32)
	SetMainLevel(level float32)
	SetMainDirection(direction Vector3)
	SetEdgeFilter(filter EdgeFilter)
	SetCloudiness(fraction float32)
	SetHour(hour float32)
	SetShadowMapSize(size int)
	SetNumSplits(splits int)
	SetTriangleMode(mode TriangleMode)
	SetPlatformType(platform PlatformType)
	SetPlatformDiameter(which WhichCgm, diameter float32)
	SetShowBones(option ShowBones)
	SetSkeletonColor(slot SkeletonColors, c Color)
	SetSkeletonLineWidth(width float32)
	SetSkeletonPointSize(size float32)
	SetVertexColor(c Color)
	SetVertexPointSize(size float32)
}

// Score holds the score-view options.
type Score interface {
	SetShowNoneSelected(option ShowBones)
	SetShowWhenSelected(option ShowBones)
}

// Tween holds the interpolation techniques.
type Tween interface {
	SetTweenRotations(mode TweenRotations)
	SetTweenScales(mode TweenVectors)
	SetTweenTranslations(mode TweenVectors)
}

// Dumper holds the scene-dump options.
type Dumper interface {
	SetIndentIncrement(indent string)
	SetMaxChildren(count int)
}

// EditorModel is the root of the editor's state.
type EditorModel interface {
	Target() EditableCgm
	Source() Cgm
	Cgm(which WhichCgm) Cgm
	Map() Mapping
	Misc() Misc
	Scene() Scene
	Score() Score
	Tween() Tween
	Dumper() Dumper
	SetBackgroundColor(background Background, c Color)
}
