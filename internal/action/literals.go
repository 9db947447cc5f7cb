package action

// Literal action strings, grouped by verb.

// delete
const (
	DeleteAnimation      = "delete animation"
	DeleteMapping        = "delete mapping"
	DeleteSgc            = "delete sgc"
	DeleteSingleKeyframe = "delete singleKeyframe"
	DeleteUserKey        = "delete userKey"
)

// new
const (
	NewAnimationFromPose = "new animation fromPose"
	NewCheckpoint        = "new checkpoint"
	NewMapping           = "new mapping"
	NewSgc               = "new sgc"
	NewSingleKeyframe    = "new singleKeyframe"
	NewUserKey           = "new userKey"
)

// next
const (
	NextAnimation         = "next animation"
	NextAnimControl       = "next animControl"
	NextBone              = "next bone"
	NextBuffer            = "next buffer"
	NextCheckpoint        = "next checkpoint"
	NextGeometry          = "next geometry"
	NextJoint             = "next joint"
	NextLight             = "next light"
	NextLink              = "next link"
	NextMapping           = "next mapping"
	NextMatParam          = "next matParam"
	NextOverride          = "next override"
	NextPerformanceMode   = "next performanceMode"
	NextPhysics           = "next physics"
	NextSgc               = "next sgc"
	NextShape             = "next shape"
	NextSourceAnimation   = "next sourceAnimation"
	NextSourceAnimControl = "next sourceAnimControl"
	NextTexture           = "next texture"
	NextTrack             = "next track"
	NextUserData          = "next userData"
	NextVertex            = "next vertex"
	NextViewMode          = "next viewMode"
)

// previous
const (
	PreviousAnimation         = "previous animation"
	PreviousAnimControl       = "previous animControl"
	PreviousBone              = "previous bone"
	PreviousBuffer            = "previous buffer"
	PreviousCheckpoint        = "previous checkpoint"
	PreviousGeometry          = "previous geometry"
	PreviousJoint             = "previous joint"
	PreviousLight             = "previous light"
	PreviousLink              = "previous link"
	PreviousMapping           = "previous mapping"
	PreviousMatParam          = "previous matParam"
	PreviousOverride          = "previous override"
	PreviousPerformanceMode   = "previous performanceMode"
	PreviousPhysics           = "previous physics"
	PreviousSgc               = "previous sgc"
	PreviousShape             = "previous shape"
	PreviousSourceAnimation   = "previous sourceAnimation"
	PreviousSourceAnimControl = "previous sourceAnimControl"
	PreviousTexture           = "previous texture"
	PreviousTrack             = "previous track"
	PreviousUserData          = "previous userData"
	PreviousVertex            = "previous vertex"
	PreviousViewMode          = "previous viewMode"
)

// reduce, rename, retarget
const (
	ReduceAnimation   = "reduce animation"
	ReduceTrack       = "reduce track"
	RenameAnimation   = "rename animation"
	RenameBone        = "rename bone"
	RenameSpatial     = "rename spatial"
	RenameUserKey     = "rename userKey"
	RetargetAnimation = "retarget animation"
)

// reset
const (
	ResetBoneAngleToAnimation  = "reset bone ang anim"
	ResetBoneAngleToBind       = "reset bone ang bind"
	ResetBoneOffsetToAnimation = "reset bone off anim"
	ResetBoneOffsetToBind      = "reset bone off bind"
	ResetBoneScaleToAnimation  = "reset bone sca anim"
	ResetBoneScaleToBind       = "reset bone sca bind"
	ResetBoneSelection         = "reset bone selection"
	ResetSpatialRotation       = "reset spatial rotation"
	ResetSpatialScale          = "reset spatial scale"
	ResetSpatialTranslation    = "reset spatial translation"
	ResetTwist                 = "reset twist"
	ResetVertexSelection       = "reset vertex selection"
)

// select, nouns a through n
const (
	SelectAnimationEditMenu = "select animationEditMenu"
	SelectAnimControl       = "select animControl"
	SelectAxesDragEffect    = "select axesDragEffect"
	SelectAxesSubject       = "select axesSubject"
	SelectBackground        = "select background"
	SelectBatchHint         = "select batchHint"
	SelectBone              = "select bone"
	SelectBoneChild         = "select boneChild"
	SelectBoneParent        = "select boneParent"
	SelectBoneTrack         = "select boneTrack"
	SelectBuffer            = "select buffer"
	SelectBufferUsage       = "select bufferUsage"
	SelectCullHint          = "select cullHint"
	SelectEdgeFilter        = "select edgeFilter"
	SelectFaceCull          = "select faceCull"
	SelectGeometry          = "select geometry"
	SelectIndexBase         = "select indexBase"
	SelectJoint             = "select joint"
	SelectKeyframeFirst     = "select keyframeFirst"
	SelectKeyframeLast      = "select keyframeLast"
	SelectKeyframeNearest   = "select keyframeNearest"
	SelectKeyframeNext      = "select keyframeNext"
	SelectKeyframePrevious  = "select keyframePrevious"
	SelectLight             = "select light"
	SelectLightOwner        = "select lightOwner"
	SelectLoadBvhAxisOrder  = "select loadBvhAxisOrder"
	SelectMapSourceBone     = "select mapSourceBone"
	SelectMapTargetBone     = "select mapTargetBone"
	SelectMaterialEditMenu  = "select materialEditMenu"
	SelectMatParam          = "select matParam"
	SelectMeshMode          = "select meshMode"
	SelectMovement          = "select movement"
)

// select, nouns o through z
const (
	SelectOrbitCenter       = "select orbitCenter"
	SelectOverride          = "select override"
	SelectPhysics           = "select physics"
	SelectPhysicsRbp        = "select physicsRbp"
	SelectPhysicsShape      = "select physicsShape"
	SelectPlatformType      = "select platformType"
	SelectProjection        = "select projection"
	SelectSceneBones        = "select sceneBones"
	SelectScoreBonesNone    = "select scoreBonesNone"
	SelectScoreBonesWhen    = "select scoreBonesWhen"
	SelectScreenBone        = "select screenBone"
	SelectScreenGnomon      = "select screenGnomon"
	SelectScreenKeyframe    = "select screenKeyframe"
	SelectScreenVertex      = "select screenVertex"
	SelectScreenXY          = "select screenXY"
	SelectSgc               = "select sgc"
	SelectSgcObject         = "select sgcObject"
	SelectSgcSpatial        = "select sgcSpatial"
	SelectShape             = "select shape"
	SelectShapeChild        = "select shapeChild"
	SelectShapeParm         = "select shapeParm"
	SelectShapeUser         = "select shapeUser"
	SelectSourceAnimControl = "select sourceAnimControl"
	SelectSourceBone        = "select sourceBone"
	SelectSpatialChild      = "select spatialChild"
	SelectSpatialParent     = "select spatialParent"
	SelectTriangleMode      = "select triangleMode"
	SelectTweenRotations    = "select tweenRotations"
	SelectTweenScales       = "select tweenScales"
	SelectTweenTranslations = "select tweenTranslations"
	SelectUserKey           = "select userKey"
	SelectVertex            = "select vertex"
	SelectViewMode          = "select viewMode"
)

// set, nouns a through n
const (
	SetAnisotropy         = "set anisotropy"
	SetBufferInstanceSpan = "set bufferInstanceSpan"
	SetBufferLimit        = "set bufferLimit"
	SetBufferStride       = "set bufferStride"
	SetDumpIndentSpaces   = "set dumpIndentSpaces"
	SetDumpMaxChildren    = "set dumpMaxChildren"
	SetLightDirCardinal   = "set lightDirCardinal"
	SetLightDirReverse    = "set lightDirReverse"
	SetLinkMass           = "set linkMass"
	SetMatParamValue      = "set matParamValue"
	SetMeshWeights        = "set meshWeights"
)

// set, nouns o through z
const (
	SetOverrideValue        = "set overrideValue"
	SetPhysicsRbpValue      = "set physicsRbpValue"
	SetQueueBucket          = "set queueBucket"
	SetRefreshRate          = "set refreshRate"
	SetShadowMode           = "set shadowMode"
	SetShapeParmValue       = "set shapeParmValue"
	SetSpatialAngleCardinal = "set spatialAngleCardinal"
	SetSpatialAngleSnapX    = "set spatialAngleSnapX"
	SetSpatialAngleSnapY    = "set spatialAngleSnapY"
	SetSpatialAngleSnapZ    = "set spatialAngleSnapZ"
	SetTimeLimitLower       = "set timeLimitLower"
	SetTimeLimitUpper       = "set timeLimitUpper"
	SetTrackRotationAll     = "set track rotation all"
	SetTrackScaleAll        = "set track scale all"
	SetTrackTranslationAll  = "set track translation all"
	SetTwistCardinal        = "set twist cardinal"
	SetTwistSnapX           = "set twist snapX"
	SetTwistSnapY           = "set twist snapY"
	SetTwistSnapZ           = "set twist snapZ"
	SetUserData             = "set userData"
)

// toggle
const (
	ToggleDegrees      = "toggle degrees"
	ToggleDragSide     = "toggle dragSide"
	ToggleFreezeTarget = "toggle freeze target"
	ToggleIndexBase    = "toggle indexBase"
	TogglePause        = "toggle pause"
	TogglePauseSource  = "toggle pause source"
	TogglePauseTarget  = "toggle pause target"
	ToggleProjection   = "toggle projection"
)

// view, warp, wrap
const (
	ViewHorizontal     = "view horizontal"
	WarpCursor         = "warp cursor"
	WarpLastCheckpoint = "warp lastCheckpoint"
	WrapTrack          = "wrap track"
)
