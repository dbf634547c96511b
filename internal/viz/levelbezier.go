package viz

// LevelBezierStrategy abandons the circular spawn: each channel's point
// enters near the centre at a height proportional to the instantaneous
// amplitude, drifts outward by a tempo-scaled step each frame, and is
// joined to its mirrored twin by a cubic bezier.
//
// Population is capped at LevelCapBase*(15/fps) pairs by dropping the
// oldest pair. The cap is skipped while primary, so growth is unbounded
// until another strategy takes over.
type LevelBezierStrategy struct {
	store    Store[Point]
	bands    int
	hueBasis float64
	clock    *Clock
}

func NewLevelBezier(bands int, hueBasis float64, clock *Clock) *LevelBezierStrategy {
	return &LevelBezierStrategy{bands: bands, hueBasis: hueBasis, clock: clock}
}

func (s *LevelBezierStrategy) Name() string  { return "levelbezier" }
func (s *LevelBezierStrategy) IsEmpty() bool { return s.store.IsEmpty() }

func (s *LevelBezierStrategy) AddPoint(angle float64, right, left []float64) {
	h := float64(WindowHeight)
	r := samplePoint(right, 0, 0, 0)
	l := samplePoint(left, 0, 0, 0)
	r.X = h * 0.02
	l.X = -h * 0.02
	r.Y = r.Amp * h * 0.4
	l.Y = -l.Amp * h * 0.4
	s.store.Append(Right, r)
	s.store.Append(Left, l)
}

func (s *LevelBezierStrategy) cap() int {
	n := int(LevelCapBase * LevelCapRefFPS / s.clock.FPS)
	if n < 1 {
		n = 1
	}
	return n
}

func (s *LevelBezierStrategy) Visualize(c Canvas, primary bool, angle float64) {
	w, h := c.Size()
	step := w * 0.004 * s.clock.TempoBPM / 60.0
	for _, ch := range channels {
		dir := 1.0
		if ch == Left {
			dir = -1.0
		}
		s.store.ForEachRemovable(ch, func(p *Point) bool {
			p.X += step * dir
			p.Y += (p.Amp - 0.5) * h * 0.004 * dir
			return true
		})
	}

	// Bezier between mirrored pairs.
	n := s.store.Len(Right)
	if m := s.store.Len(Left); m < n {
		n = m
	}
	rs := s.store.Slice(Right)
	ls := s.store.Slice(Left)
	for i := 0; i < n; i++ {
		a, d := rs[i], ls[i]
		hue := 360 - HueFromBand(s.hueBasis, a.Band, s.bands)
		col := HSVA(hue, 0.9, 1.0, 0.2+0.8*a.Amp)
		c1 := Vec3{X: a.X * 0.25, Y: a.Y, Z: a.Z}
		c2 := Vec3{X: d.X * 0.25, Y: d.Y, Z: d.Z}
		c.Bezier(a.Pos(), c1, c2, d.Pos(), 1.5, col)
	}

	if primary {
		return // reference strategy grows unbounded while active
	}
	for capN := s.cap(); s.store.Len(Right) > capN || s.store.Len(Left) > capN; {
		s.store.DropOldest(Right)
		s.store.DropOldest(Left)
	}
	trimIfTrailing(&s.store, primary)
}
