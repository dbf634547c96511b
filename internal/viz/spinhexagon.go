package viz

import "math"

// SpinningHexagonStrategy pushes points away from the camera while the
// whole channel rotates at a tempo-proportional rate. The opposite depth
// sign to Curve is deliberate: points recede instead of approaching.
type SpinningHexagonStrategy struct {
	store    Store[Point]
	bands    int
	hueBasis float64
	clock    *Clock

	spin float64 // accumulated channel rotation, wraps at 360
}

func NewSpinningHexagon(bands int, hueBasis float64, clock *Clock) *SpinningHexagonStrategy {
	return &SpinningHexagonStrategy{bands: bands, hueBasis: hueBasis, clock: clock}
}

func (s *SpinningHexagonStrategy) Name() string  { return "spinhexagon" }
func (s *SpinningHexagonStrategy) IsEmpty() bool { return s.store.IsEmpty() }

func (s *SpinningHexagonStrategy) AddPoint(angle float64, right, left []float64) {
	orbit := float64(WindowHeight) * 0.25
	spawnPair(&s.store, angle, right, left, orbit, 0)
}

func (s *SpinningHexagonStrategy) Visualize(c Canvas, primary bool, angle float64) {
	_, h := c.Size()
	// Channel rotation advances with tempo and resets every full turn.
	s.spin += SpinHexSpinPerBeat * s.clock.TempoBPM / 60.0 / s.clock.FPS
	if s.spin >= 360 {
		s.spin -= 360
	}
	sin, cos := math.Sincos(radians(s.spin))
	for _, ch := range channels {
		s.store.ForEachRemovable(ch, func(p *Point) bool {
			p.Z -= SpinHexZStep
			if p.Z < SpinHexDepthLimit {
				return false
			}
			hue := HueFromBand(s.hueBasis, p.Band, s.bands)
			col := HSVA(hue, 0.85, 1.0, 0.2+0.8*p.Amp)
			// Rotate the whole channel about the screen centre.
			pos := Vec3{
				X: p.X*cos - p.Y*sin,
				Y: p.X*sin + p.Y*cos,
				Z: p.Z,
			}
			roll := radians(angle) * p.Amp
			c.Hexagon(pos, h*0.05*(0.3+p.Amp), roll, col)
			return true
		})
	}
	trimIfTrailing(&s.store, primary)
}
