package viz

import "math"

// BeatSource reports per-frame drum hits. Consumed only by the Hexagon
// strategy: kicks gate the right channel, hats the left.
type BeatSource interface {
	KickNow() bool
	HatNow() bool
}

// HexagonStrategy spawns points only on detected beats and renders each as
// a hexagon sized by the amplitude-scaled offset, joined by a curve.
type HexagonStrategy struct {
	store    Store[Point]
	bands    int
	hueBasis float64
	beats    BeatSource

	pts []Vec3
}

func NewHexagon(bands int, hueBasis float64, beats BeatSource) *HexagonStrategy {
	return &HexagonStrategy{bands: bands, hueBasis: hueBasis, beats: beats}
}

func (s *HexagonStrategy) Name() string  { return "hexagon" }
func (s *HexagonStrategy) IsEmpty() bool { return s.store.IsEmpty() }

func (s *HexagonStrategy) AddPoint(angle float64, right, left []float64) {
	z := -HexZAmount * float64(HexDepthCount)
	orbit := float64(WindowHeight) * 0.3
	if s.beats == nil || s.beats.KickNow() {
		s.store.Append(Right, samplePoint(right, angle, orbit, z))
	}
	if s.beats == nil || s.beats.HatNow() {
		s.store.Append(Left, samplePoint(left, angle+180, orbit, z))
	}
}

func (s *HexagonStrategy) Visualize(c Canvas, primary bool, angle float64) {
	_, h := c.Size()
	tension := 0.5 + 0.5*math.Sin(radians(angle))
	for _, ch := range channels {
		s.pts = s.pts[:0]
		amp, band := 0.0, 0
		s.store.ForEachRemovable(ch, func(p *Point) bool {
			p.Z += HexZAmount
			if p.Z > 0 {
				return false
			}
			s.pts = append(s.pts, p.Pos())
			amp = p.Amp
			band = p.Band
			return true
		})
		if len(s.pts) == 0 {
			continue
		}
		hue := 360 - HueFromBand(s.hueBasis, band, s.bands)
		col := HSVA(hue, 0.9, 1.0, 0.25+0.75*amp)
		side := h * 0.04 * (0.3 + amp)
		for _, p := range s.pts {
			c.Hexagon(p, side, radians(angle), col)
		}
		if len(s.pts) >= 2 {
			c.Curve(s.pts, tension, 1.5, col.WithAlpha(col.A*0.6))
		}
	}
	trimIfTrailing(&s.store, primary)
}
