// Package prefix lists the action-string prefixes. Each prefix ends with
// a single blank and is followed by an argument; the comment on each
// constant gives the argument grammar.
package prefix

// copy, delete, new
const (
	CopyAnimation           = "copy animation "           // name
	DeleteNextKeyframes     = "delete nextKeyframes "     // count
	DeletePreviousKeyframes = "delete previousKeyframes " // count
	NewAnimationFromMix     = "new animation fromMix "    // indices [name]
	NewAnimationFromPose    = "new animation fromPose "   // name
	NewUserKey              = "new userKey "              // type [key]
)

// reduce, rename, resample, retarget
const (
	ReduceAnimation           = "reduce animation "            // factor
	ReduceTrack               = "reduce track "                // factor
	RenameAnimation           = "rename animation "            // name
	RenameBone                = "rename bone "                 // name
	RenameSpatial             = "rename spatial "              // name
	RenameUserKey             = "rename userKey "              // name
	ResampleAnimationAtRate   = "resample animation atRate "   // samples per second
	ResampleAnimationToNumber = "resample animation toNumber " // sample count
	ResampleTrackAtRate       = "resample track atRate "       // samples per second
	ResampleTrackToNumber     = "resample track toNumber "     // sample count
	RetargetAnimation         = "retarget animation "          // name
)

// select, nouns a through n
const (
	SelectAnimControl      = "select animControl "      // name
	SelectAxesDragEffect   = "select axesDragEffect "   // AxesDragEffect
	SelectAxesSubject      = "select axesSubject "      // AxesSubject
	SelectBackground       = "select background "       // Background
	SelectBatchHint        = "select batchHint "        // BatchHint
	SelectBone             = "select bone "             // name
	SelectBoneChild        = "select boneChild "        // name
	SelectBoneIndex        = "select boneIndex "        // index
	SelectBuffer           = "select buffer "           // description
	SelectBufferUsage      = "select bufferUsage "      // BufferUsage
	SelectCullHint         = "select cullHint "         // CullHint
	SelectCursorColor      = "select cursorColor "      // color index
	SelectEdgeFilter       = "select edgeFilter "       // EdgeFilter
	SelectExtremeVertex    = "select extremeVertex "    // x y z
	SelectFaceCull         = "select faceCull "         // FaceCull
	SelectGeometry         = "select geometry "         // name
	SelectIndexBase        = "select indexBase "        // 0 or 1
	SelectJoint            = "select joint "            // hex id
	SelectKeyframe         = "select keyframe "         // index
	SelectLight            = "select light "            // name
	SelectLoadBvhAxisOrder = "select loadBvhAxisOrder " // LoadBvhAxisOrder
	SelectMatParam         = "select matParam "         // name
	SelectMenuItem         = "select menuItem "         // menu path
	SelectMeshMode         = "select meshMode "         // MeshMode
	SelectMovement         = "select movement "         // MovementMode
)

// select, nouns o through z
const (
	SelectOrbitCenter       = "select orbitCenter "       // OrbitCenter
	SelectOverride          = "select override "          // name
	SelectPhysics           = "select physics "           // name
	SelectPhysicsRbp        = "select physicsRbp "        // RigidBodyParameter
	SelectPlatformType      = "select platformType "      // PlatformType
	SelectProjection        = "select projection "        // ProjectionMode
	SelectSceneBones        = "select sceneBones "        // ShowBones
	SelectScoreBonesNone    = "select scoreBonesNone "    // ShowBones
	SelectScoreBonesWhen    = "select scoreBonesWhen "    // ShowBones
	SelectSgc               = "select sgc "               // name
	SelectShape             = "select shape "             // name:hex id
	SelectShapeParm         = "select shapeParm "         // ShapeParameter
	SelectSourceAnimControl = "select sourceAnimControl " // name
	SelectSourceBone        = "select sourceBone "        // name
	SelectSpatial           = "select spatial "           // path
	SelectSpatialChild      = "select spatialChild "      // name
	SelectTool              = "select tool "              // tool name
	SelectToolAt            = "select toolAt "            // tool x y
	SelectTriangleMode      = "select triangleMode "      // TriangleMode
	SelectTweenRotations    = "select tweenRotations "    // TweenRotations
	SelectTweenScales       = "select tweenScales "       // TweenVectors
	SelectTweenTranslations = "select tweenTranslations " // TweenVectors
	SelectUserKey           = "select userKey "           // key
	SelectVertex            = "select vertex "            // index
	SelectViewMode          = "select viewMode "          // ViewMode
)

// set, nouns a through n
const (
	Set3DCursorColor        = "set 3DCursorColor "        // index color
	Set3DCursorCycleTime    = "set 3DCursorCycleTime "    // seconds
	Set3DCursorSize         = "set 3DCursorSize "         // size
	SetAmbientLevel         = "set ambientLevel "         // level
	SetAnisotropy           = "set anisotropy "           // int
	SetAxesLineWidth        = "set axesLineWidth "        // width
	SetBackgroundColor      = "set backgroundColor "      // Background color
	SetBoundsColor          = "set boundsColor "          // color
	SetBoundsLineWidth      = "set boundsLineWidth "      // width
	SetBufferInstanceSpan   = "set bufferInstanceSpan "   // int
	SetBufferLimit          = "set bufferLimit "          // int
	SetBufferStride         = "set bufferStride "         // int
	SetCloudiness           = "set cloudiness "           // fraction
	SetDumpIndentSpaces     = "set dumpIndentSpaces "     // int
	SetDumpMaxChildren      = "set dumpMaxChildren "      // int
	SetDurationProportional = "set durationProportional " // seconds
	SetDurationSame         = "set durationSame "         // seconds
	SetFrameTime            = "set frameTime "            // seconds
	SetHour                 = "set hour "                 // hour
	SetLinkMass             = "set linkMass "             // mass
	SetMainDirection        = "set mainDirection "        // vector
	SetMainLevel            = "set mainLevel "            // level
	SetMapSize              = "set mapSize "              // int
	SetMatParamValue        = "set matParamValue "        // value text
	SetMeshWeights          = "set meshWeights "          // int
	SetNumSplits            = "set numSplits "            // int
)

// set, nouns o through z
const (
	SetOverrideValue     = "set overrideValue "     // value text
	SetPhysicsRbpValue   = "set physicsRbpValue "   // RigidBodyParameter value
	SetPlatformDiameter  = "set platformDiameter "  // WhichCgm diameter
	SetQueueBucket       = "set queueBucket "       // QueueBucket
	SetRefreshRate       = "set refreshRate "       // hertz
	SetShadowMode        = "set shadowMode "        // ShadowMode
	SetShapeParmValue    = "set shapeParmValue "    // ShapeParameter value
	SetSkeletonColor     = "set skeletonColor "     // SkeletonColors color
	SetSkeletonLineWidth = "set skeletonLineWidth " // width
	SetSkeletonPointSize = "set skeletonPointSize " // size
	SetSubmenuWarp       = "set submenuWarp "       // x y
	SetTime              = "set time "              // WhichCgm PlayTimes [seconds]
	SetTimeToKeyframe    = "set time toKeyframe "   // WhichCgm PlayTimes [index]
	SetUserData          = "set userData "          // value text
	SetVertexColor       = "set vertexColor "       // color
	SetVertexPointSize   = "set vertexPointSize "   // size
	SetXBoundary         = "set xBoundary "         // fraction
)

// view
const (
	ViewLicense = "view license " // LicenseType
)
