package viz

// RingSwayingStrategy renders amplitude-sized rings whose motion is a
// boids flock. The first spawn on an empty store pre-seeds FlockAgeLimit
// random boids per channel so the flocking rules have neighbours from
// frame one.
type RingSwayingStrategy struct {
	store    Store[Boid]
	bands    int
	hueBasis float64
	rng      *Rand
}

func NewRingSwaying(bands int, hueBasis float64, rng *Rand) *RingSwayingStrategy {
	return &RingSwayingStrategy{bands: bands, hueBasis: hueBasis, rng: rng}
}

func (s *RingSwayingStrategy) Name() string  { return "ringswaying" }
func (s *RingSwayingStrategy) IsEmpty() bool { return s.store.IsEmpty() }

func (s *RingSwayingStrategy) AddPoint(angle float64, right, left []float64) {
	if s.store.IsEmpty() {
		for _, ch := range channels {
			s.seed(ch)
		}
	}
	orbit := float64(WindowHeight) * 0.3
	s.store.Append(Right, s.boid(samplePoint(right, angle, orbit, 0)))
	s.store.Append(Left, s.boid(samplePoint(left, angle+180, orbit, 0)))
}

func (s *RingSwayingStrategy) seed(ch Channel) {
	w := float64(WindowWidth)
	h := float64(WindowHeight)
	for i := 0; i < FlockAgeLimit; i++ {
		s.store.Append(ch, Boid{
			Point: Point{
				X:   s.rng.RangeF(-w/2, w/2),
				Y:   s.rng.RangeF(-h/2, h/2),
				Z:   s.rng.RangeF(-FlockDepth, FlockDepth),
				Amp: s.rng.Float64(),
			},
			VX:  s.rng.RangeF(-1, 1),
			VY:  s.rng.RangeF(-1, 1),
			VZ:  s.rng.RangeF(-1, 1),
			Age: s.rng.Intn(FlockAgeLimit),
		})
	}
}

func (s *RingSwayingStrategy) boid(p Point) Boid {
	return Boid{
		Point: p,
		VX:    s.rng.RangeF(-1, 1),
		VY:    s.rng.RangeF(-1, 1),
		VZ:    s.rng.RangeF(-1, 1),
	}
}

func (s *RingSwayingStrategy) Visualize(c Canvas, primary bool, angle float64) {
	w, h := c.Size()
	for _, ch := range channels {
		n := s.store.Len(ch)
		if n == 0 {
			continue
		}
		s.store.ForEachRemovable(ch, func(b *Boid) bool {
			if b.Age >= FlockAgeLimit {
				return false
			}
			hue := HueFromBand(s.hueBasis, b.Band, s.bands)
			alpha := clampF(float64(n-b.Age)/float64(n), 0, 1)
			c.Ring(b.Pos(), h*0.02*(0.3+b.Amp), 1.5, HSVA(hue, 0.8, 1.0, alpha))
			return true
		})
		if !primary && s.store.Len(ch) > 0 {
			s.store.DropOldest(ch)
		}
		if s.store.Len(ch) >= 2 {
			flockStep(s.store.Slice(ch), w, h, s.rng)
		}
	}
}
