package tetra

// Tuning constants for both pipeline variants. Empirically tuned; treat
// them as opaque.
const (
	FractalScale = 2.0

	BasicIterations    = 12
	EnhancedIterations = 14

	BasicMaxSteps = 256
	BasicMaxDist  = 20.0
	BasicEpsilon  = 1e-3
	BasicRelax    = 0.5

	EnhancedMaxSteps = 200
	EnhancedMaxDist  = 50.0
	EnhancedEpsilon  = 1e-4
	EnhancedRelax    = 0.6

	// Central-difference step for normal estimation.
	NormalH = 1e-4

	AOSamples       = 5
	AODecayBasic    = 0.95
	AODecayEnhanced = 0.85

	ShadowSteps     = 32
	ShadowSharpness = 8.0
	ShadowMinT      = 0.02
	ShadowMaxT      = 5.0

	GlowSteps = 32

	Metallic = 0.6

	BasicFog    = 0.12
	EnhancedFog = 0.04

	BasicFocal    = 1.5
	EnhancedFocal = 1.8

	DefaultZoom = 4.5
	MinZoom     = 2.0
	MaxZoom     = 10.0
	PanStep     = 0.1
	ZoomStep    = 0.2

	Gamma = 2.2

	// Config defaults.
	DefaultWidth    = 640
	DefaultHeight   = 360
	DefaultGIFDelay = 5 // 100ths of a second per frame
	DefaultFrames   = 120
	DefaultTimeStep = 1.0 / 30.0

	// Orbit traps start well outside any reachable iterate.
	trapInit = 1e10

	// Offset along the normal before tracing secondary rays.
	bumpShift = 0.01
)
