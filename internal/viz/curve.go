package viz

import "math"

// CurveStrategy connects the live points of each channel with one
// continuous curved stroke and marks every point with a double ring.
type CurveStrategy struct {
	store    Store[Point]
	bands    int
	hueBasis float64
	zAmount  float64
	scale    float64

	pts []Vec3 // reused per frame
}

func NewCurve(bands int, hueBasis, screenScale float64) *CurveStrategy {
	if screenScale <= 0 {
		screenScale = 1
	}
	return &CurveStrategy{
		bands:    bands,
		hueBasis: hueBasis,
		zAmount:  CurveZAmount * screenScale,
		scale:    screenScale,
	}
}

func (s *CurveStrategy) Name() string  { return "curve" }
func (s *CurveStrategy) IsEmpty() bool { return s.store.IsEmpty() }

func (s *CurveStrategy) AddPoint(angle float64, right, left []float64) {
	z := -s.zAmount * float64(CurveDepthCount)
	orbit := float64(WindowHeight) * 0.3 * s.scale
	spawnPair(&s.store, angle, right, left, orbit, z)
}

func (s *CurveStrategy) Visualize(c Canvas, primary bool, angle float64) {
	_, h := c.Size()
	// Smoothing tension follows the rotation phase.
	tension := 0.5 + 0.5*math.Sin(radians(angle))
	for _, ch := range channels {
		s.pts = s.pts[:0]
		amp, band := 0.0, 0
		s.store.ForEachRemovable(ch, func(p *Point) bool {
			p.Z += s.zAmount
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
		col := HSVA(hue, 0.9, 1.0, 0.2+0.8*amp)
		c.Curve(s.pts, tension, 2, col)
		r := h * CurveMarkerRadius * (0.5 + amp)
		for _, p := range s.pts {
			c.Ring(p, r, 1.5, col)
			c.Ring(p, r*1.8, 1, col.WithAlpha(col.A*0.5))
		}
	}
	trimIfTrailing(&s.store, primary)
}
