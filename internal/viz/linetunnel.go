package viz

import "math"

// LineTunnelStrategy draws only the connecting curve, at low opacity and a
// shallower depth step than Curve. It never clears the background, so the
// strokes accumulate into a tunnel of trails.
type LineTunnelStrategy struct {
	store    Store[Point]
	bands    int
	hueBasis float64

	pts []Vec3
}

func NewLineTunnel(bands int, hueBasis float64) *LineTunnelStrategy {
	return &LineTunnelStrategy{bands: bands, hueBasis: hueBasis}
}

func (s *LineTunnelStrategy) Name() string      { return "linetunnel" }
func (s *LineTunnelStrategy) IsEmpty() bool     { return s.store.IsEmpty() }
func (s *LineTunnelStrategy) KeepsTrails() bool { return true }

func (s *LineTunnelStrategy) AddPoint(angle float64, right, left []float64) {
	z := -TunnelZAmount * float64(CurveDepthCount)
	orbit := float64(WindowHeight) * 0.3
	spawnPair(&s.store, angle, right, left, orbit, z)
}

func (s *LineTunnelStrategy) Visualize(c Canvas, primary bool, angle float64) {
	tension := 0.5 + 0.5*math.Cos(radians(angle))
	for _, ch := range channels {
		s.pts = s.pts[:0]
		amp, band := 0.0, 0
		s.store.ForEachRemovable(ch, func(p *Point) bool {
			p.Z += TunnelZAmount
			if p.Z > 0 {
				return false
			}
			s.pts = append(s.pts, p.Pos())
			amp = p.Amp
			band = p.Band
			return true
		})
		if len(s.pts) < 2 {
			continue
		}
		hue := 360 - HueFromBand(s.hueBasis, band, s.bands)
		c.Curve(s.pts, tension, 1, HSVA(hue, 0.8, 1.0, TunnelOpacity*(0.4+0.6*amp)))
	}
	trimIfTrailing(&s.store, primary)
}
