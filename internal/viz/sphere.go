package viz

// SphereStrategy renders each point as a filled sphere approaching the
// camera from deep in the scene. Hue is a direct band-to-hue ramp with no
// basis rotation.
type SphereStrategy struct {
	store Store[Point]
	bands int
}

func NewSphere(bands int) *SphereStrategy {
	return &SphereStrategy{bands: bands}
}

func (s *SphereStrategy) Name() string  { return "sphere" }
func (s *SphereStrategy) IsEmpty() bool { return s.store.IsEmpty() }

func (s *SphereStrategy) AddPoint(angle float64, right, left []float64) {
	spawnPair(&s.store, angle, right, left, s.orbitRadius(), SphereSpawnDepth)
}

func (s *SphereStrategy) orbitRadius() float64 {
	return float64(WindowHeight) * SphereOrbit
}

func (s *SphereStrategy) Visualize(c Canvas, primary bool, angle float64) {
	_, h := c.Size()
	for _, ch := range channels {
		s.store.ForEachRemovable(ch, func(p *Point) bool {
			p.Z += SphereZStep
			if p.Z > 0 {
				return false
			}
			hue := float64(p.Band) / float64(s.bands) * 360.0
			col := HSVA(hue, 0.85, 1.0, 0.15+0.85*p.Amp)
			c.Sphere(p.Pos(), h*0.02*(0.5+p.Amp), col)
			return true
		})
	}
	trimIfTrailing(&s.store, primary)
}
