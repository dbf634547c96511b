package viz

// Audio analysis.
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	FFTSize        = 2048
	DefaultBands   = 32 // spectral bands per channel (hzIndexSize)
	DefaultFPS     = 30.0
	BeatsPerOrbit  = 4.0 // one full angle revolution per this many beats
	DefaultTempo   = 120.0
)

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// Beat detection.
const (
	BeatHistoryFrames  = 43 // ~1 s of energy history
	BeatThreshold      = 1.35
	BeatRefractory     = 8 // frames before the same drum can retrigger
	KickBandHi         = 3 // kick energy = bands [0, KickBandHi)
	HatBandFraction    = 4 // hat energy = top 1/HatBandFraction of bands
)

// Sphere strategy.
const (
	SphereSpawnDepth = -4000.0
	SphereZStep      = 80.0
	SphereOrbit      = 0.28 // spawn circle radius, fraction of screen height
)

// Curve / LineTunnel strategies.
const (
	CurveZAmount      = 200.0
	CurveDepthCount   = 50
	TunnelZAmount     = 100.0
	TunnelOpacity     = 0.25
	CurveMarkerRadius = 0.012 // fraction of screen height
)

// Hexagon strategies.
const (
	HexZAmount         = 200.0
	HexDepthCount      = 50
	SpinHexZStep       = 120.0
	SpinHexDepthLimit  = -9000.0
	SpinHexSpinPerBeat = 12.0 // degrees of channel rotation per beat
)

// LevelBezier strategy.
const (
	LevelCapBase   = 100.0 // population cap = LevelCapBase * (15 / fps) pairs
	LevelCapRefFPS = 15.0
)

// RingSwaying / flocking.
const (
	FlockAgeLimit  = 60
	FlockDepth     = 600.0 // z bound for the bounce rule
	FlockCohesion  = 0.05
	FlockAlignDiv  = 100.0
	FlockSpeedDiv  = 60.0 // max speed = min(w, h) / FlockSpeedDiv
)
