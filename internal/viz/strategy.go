package viz

import "math"

// Point is one visual sample: world-space position plus the spectral
// values it was born with. Strategies mutate position in place each frame.
type Point struct {
	X, Y, Z float64
	Amp     float64 // average amplitude at spawn, [0, 1]
	Band    int     // dominant band index at spawn
}

func (p Point) Pos() Vec3 { return Vec3{p.X, p.Y, p.Z} }

// Canvas is the drawing surface handed to strategies. Coordinates are
// world-space with the origin at screen centre, y up, z toward the viewer
// (negative = far); the renderer applies perspective projection.
type Canvas interface {
	Size() (w, h float64)
	Clear(bg Color)
	Sphere(p Vec3, radius float64, col Color)
	Ring(p Vec3, radius, weight float64, col Color)
	Curve(pts []Vec3, tension, weight float64, col Color)
	Bezier(a, c1, c2, d Vec3, weight float64, col Color)
	Hexagon(p Vec3, radius, roll float64, col Color)
}

// VisualStrategy is the per-variant rendering contract. Exactly one
// registered strategy is primary per frame: it receives AddPoint; all
// non-empty strategies receive Visualize.
type VisualStrategy interface {
	Name() string
	AddPoint(angle float64, right, left []float64)
	Visualize(c Canvas, primary bool, angle float64)
	IsEmpty() bool
}

// trailKeeper marks strategies whose output accumulates across frames;
// the engine skips the background clear while one is primary.
type trailKeeper interface {
	KeepsTrails() bool
}

// Clock carries the tempo and frame-rate shared by tempo-scaled strategies.
// Updated once per tick by the engine before any strategy runs.
type Clock struct {
	TempoBPM float64
	FPS      float64
}

func NewClock(fps float64) *Clock {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Clock{TempoBPM: DefaultTempo, FPS: fps}
}

// samplePoint builds a Point from one channel's spectrum, placed on a
// circle of the given radius at the given angle (degrees).
func samplePoint(bands []float64, angle, radius, z float64) Point {
	rad := radians(angle)
	return Point{
		X:    math.Cos(rad) * radius,
		Y:    math.Sin(rad) * radius,
		Z:    z,
		Amp:  AverageAmplitude(bands, 0, len(bands)),
		Band: DominantBand(bands, len(bands)),
	}
}

// spawnPair appends one circle-spawned point per channel: the right
// channel at angle, the left mirrored at angle+180.
func spawnPair(st *Store[Point], angle float64, right, left []float64, radius, z float64) {
	st.Append(Right, samplePoint(right, angle, radius, z))
	st.Append(Left, samplePoint(left, angle+180, radius, z))
}

// trimIfTrailing applies the convergence rule: a non-primary strategy with
// points drops its single oldest point per channel each frame, so trailing
// populations shrink toward the primary's.
func trimIfTrailing[T any](st *Store[T], primary bool) {
	if primary || st.IsEmpty() {
		return
	}
	st.DropOldest(Right)
	st.DropOldest(Left)
}
