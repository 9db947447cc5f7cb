package model

// Closed enumerations referenced by action arguments. Tokens are
// wire-format and must not be renamed.

// WhichCgm selects the source or target model.
type WhichCgm int

const (
	SourceCgm WhichCgm = iota
	TargetCgm
)

// WhichCgms parses WhichCgm tokens.
var WhichCgms = NewEnum[WhichCgm]("WhichCgm", "sourceCgm", "targetCgm")

func (w WhichCgm) String() string { return WhichCgms.Name(w) }

// PlayTimes names one of the time slots of an animation player.
type PlayTimes int

const (
	CurrentTime PlayTimes = iota
	LowerLimit
	UpperLimit
)

// PlayTimeSlots parses PlayTimes tokens.
var PlayTimeSlots = NewEnum[PlayTimes]("PlayTimes", "currentTime", "lowerLimit", "upperLimit")

func (p PlayTimes) String() string { return PlayTimeSlots.Name(p) }

// AxesDragEffect is what dragging a visualized axis does.
type AxesDragEffect int

// AxesDragEffects parses AxesDragEffect tokens.
var AxesDragEffects = NewEnum[AxesDragEffect]("AxesDragEffect",
	"None", "Rotate", "ScaleAll", "ScaleAxis", "Translate")

// AxesSubject is what the visualized axes are attached to.
type AxesSubject int

// AxesSubjects parses AxesSubject tokens.
var AxesSubjects = NewEnum[AxesSubject]("AxesSubject",
	"Model", "SelectedBone", "SelectedPhysics", "SelectedShape", "SelectedSpatial", "World")

// Background identifies a view background.
type Background int

// Backgrounds parses Background tokens.
var Backgrounds = NewEnum[Background]("Background",
	"SourceScenesWithNoSky", "SourceScenesWithSky", "SourceScores",
	"TargetScenesWithNoSky", "TargetScenesWithSky", "TargetScores")

// BatchHint controls geometry batching.
type BatchHint int

// BatchHints parses BatchHint tokens.
var BatchHints = NewEnum[BatchHint]("BatchHint", "Always", "Inherit", "Never")

// CullHint controls frustum culling.
type CullHint int

// CullHints parses CullHint tokens.
var CullHints = NewEnum[CullHint]("CullHint", "Always", "Dynamic", "Inherit", "Never")

// BufferUsage is the usage hint of a vertex buffer.
type BufferUsage int

// BufferUsages parses BufferUsage tokens.
var BufferUsages = NewEnum[BufferUsage]("BufferUsage", "CpuOnly", "Dynamic", "Static", "Stream")

// EdgeFilter is the shadow edge filtering mode.
type EdgeFilter int

// EdgeFilters parses EdgeFilter tokens.
var EdgeFilters = NewEnum[EdgeFilter]("EdgeFilter",
	"Bilinear", "Dither", "Nearest", "PCF4", "PCF8", "PCFPOISSON")

// FaceCull is a material face culling mode.
type FaceCull int

// FaceCulls parses FaceCull tokens.
var FaceCulls = NewEnum[FaceCull]("FaceCull", "Back", "Front", "FrontAndBack", "Off")

// LoadBvhAxisOrder controls the axis order used when importing BVH files.
type LoadBvhAxisOrder int

// LoadBvhAxisOrders parses LoadBvhAxisOrder tokens.
var LoadBvhAxisOrders = NewEnum[LoadBvhAxisOrder]("LoadBvhAxisOrder", "Classic", "Header")

// MeshMode is a mesh primitive mode.
type MeshMode int

// MeshModes parses MeshMode tokens.
var MeshModes = NewEnum[MeshMode]("MeshMode",
	"Hybrid", "LineLoop", "LineStrip", "Lines", "Patch", "Points",
	"TriangleFan", "TriangleStrip", "Triangles")

// MovementMode is the camera movement mode.
type MovementMode int

// MovementModes parses MovementMode tokens.
var MovementModes = NewEnum[MovementMode]("MovementMode", "Fly", "Orbit")

// OrbitCenter is the point an orbiting camera revolves around.
type OrbitCenter int

// OrbitCenters parses OrbitCenter tokens.
var OrbitCenters = NewEnum[OrbitCenter]("OrbitCenter",
	"DddCursor", "Origin", "SelectedBone", "SelectedVertex")

// PlatformType is the kind of platform drawn under a model.
type PlatformType int

// PlatformTypes parses PlatformType tokens.
var PlatformTypes = NewEnum[PlatformType]("PlatformType", "None", "Square")

// ProjectionMode is the camera projection.
type ProjectionMode int

// ProjectionModes parses ProjectionMode tokens.
var ProjectionModes = NewEnum[ProjectionMode]("ProjectionMode", "Parallel", "Perspective")

// QueueBucket is a render queue bucket.
type QueueBucket int

// QueueBuckets parses QueueBucket tokens.
var QueueBuckets = NewEnum[QueueBucket]("QueueBucket",
	"Gui", "Inherit", "Opaque", "Sky", "Translucent", "Transparent")

// RigidBodyParameter is an editable rigid-body property.
type RigidBodyParameter int

// RigidBodyParameters parses RigidBodyParameter tokens.
var RigidBodyParameters = NewEnum[RigidBodyParameter]("RigidBodyParameter",
	"AngularDamping", "AngularSleep", "Friction", "GravityX", "GravityY", "GravityZ",
	"LinearDamping", "LinearSleep", "Mass", "Restitution")

// ShadowMode controls shadow casting and receiving.
type ShadowMode int

// ShadowModes parses ShadowMode tokens.
var ShadowModes = NewEnum[ShadowMode]("ShadowMode",
	"Cast", "CastAndReceive", "Inherit", "Off", "Receive")

// ShapeParameter is an editable collision-shape property.
type ShapeParameter int

// ShapeParameters parses ShapeParameter tokens.
var ShapeParameters = NewEnum[ShapeParameter]("ShapeParameter",
	"HalfExtentX", "HalfExtentY", "HalfExtentZ", "Height", "Margin", "Radius",
	"ScaleX", "ScaleY", "ScaleZ", "ScaledVolume")

// ShowBones selects which bones are visualized.
type ShowBones int

// ShowBonesOptions parses ShowBones tokens.
var ShowBonesOptions = NewEnum[ShowBones]("ShowBones",
	"All", "Ancestry", "Family", "Influencers", "Leaves", "Mapped", "None",
	"Roots", "Selected", "Subtree", "Tracked", "Unmapped")

// SkeletonColors names a skeleton visualization color slot.
type SkeletonColors int

// SkeletonColorSlots parses SkeletonColors tokens.
var SkeletonColorSlots = NewEnum[SkeletonColors]("SkeletonColors",
	"IdleBones", "Links", "MappedBones", "TrackedBones", "UnmappedBones")

// TriangleMode selects how triangles are rendered.
type TriangleMode int

// TriangleModes parses TriangleMode tokens.
var TriangleModes = NewEnum[TriangleMode]("TriangleMode", "Backward", "Forward", "PerMaterial")

// TweenRotations is a rotation interpolation technique.
type TweenRotations int

// TweenRotationModes parses TweenRotations tokens.
var TweenRotationModes = NewEnum[TweenRotations]("TweenRotations",
	"LoopNlerp", "LoopQuickSlerp", "LoopSlerp", "LoopSpline",
	"Nlerp", "QuickSlerp", "Slerp", "Spline")

// TweenVectors is a vector interpolation technique.
type TweenVectors int

// TweenVectorModes parses TweenVectors tokens.
var TweenVectorModes = NewEnum[TweenVectors]("TweenVectors",
	"CatmullRomSpline", "CentripetalSpline", "FdcSpline", "Lerp",
	"LoopCatmullRomSpline", "LoopCentripetalSpline", "LoopFdcSpline", "LoopLerp")

// ViewMode selects which views are shown.
type ViewMode int

// ViewModes parses ViewMode tokens.
var ViewModes = NewEnum[ViewMode]("ViewMode", "Hybrid", "Scene", "Score")

// LicenseType names a license that can be displayed.
type LicenseType int

// LicenseTypes parses LicenseType tokens.
var LicenseTypes = NewEnum[LicenseType]("LicenseType", "BSD3", "CC0", "FreeFont", "Maud")
