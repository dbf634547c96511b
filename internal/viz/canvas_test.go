package viz

// recordCanvas counts draw calls so tests can assert on rendering
// behavior without a GL context.
type recordCanvas struct {
	w, h float64

	clears   int
	spheres  int
	rings    int
	curves   int
	beziers  int
	hexagons int
}

func newRecordCanvas() *recordCanvas {
	return &recordCanvas{w: WindowWidth, h: WindowHeight}
}

func (c *recordCanvas) Size() (float64, float64)                 { return c.w, c.h }
func (c *recordCanvas) Clear(bg Color)                           { c.clears++ }
func (c *recordCanvas) Sphere(p Vec3, r float64, col Color)      { c.spheres++ }
func (c *recordCanvas) Ring(p Vec3, r, w float64, col Color)     { c.rings++ }
func (c *recordCanvas) Curve(p []Vec3, t, w float64, col Color)  { c.curves++ }
func (c *recordCanvas) Bezier(a, b, d, e Vec3, w float64, col Color) {
	c.beziers++
}
func (c *recordCanvas) Hexagon(p Vec3, r, roll float64, col Color) { c.hexagons++ }

// fourBands is a small test spectrum with a clear dominant band.
var fourBands = []float64{0.1, 0.9, 0.2, 0.05}
