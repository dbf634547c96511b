package viz

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	curveSubdiv   = 8  // samples per curve segment
	bezierSubdiv  = 16 // samples per cubic bezier
	ringSegments  = 24
	maxLineVerts  = 1 << 16
	maxSpriteData = 1 << 16
)

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer is the GL-backed Canvas. Strategies hand it world-space
// geometry; it applies a simple perspective projection (focal length =
// screen height) and draws point sprites and line strips.
type Renderer struct {
	fbW, fbH int

	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32
	spURes     int32

	lineProg uint32
	lineVAO  uint32
	lineVBO  uint32
	lnURes   int32

	spriteBuf []float32
	lineBuf   []float32
}

func NewRenderer(fbW, fbH int) (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, sphereFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("line program: %w", err)
	}

	r := &Renderer{fbW: fbW, fbH: fbH, spriteProg: spriteProg, lineProg: lineProg}

	// Sprite VAO/VBO: streaming [x, y, size, r, g, b, a] * N.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)
	stride := int32(7 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSpriteData*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spURes = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))
	gl.Uniform2f(r.spURes, float32(fbW), float32(fbH))

	// Line VAO/VBO: streaming [x, y, r, g, b, a] * N.
	var lVAO, lVBO uint32
	gl.GenVertexArrays(1, &lVAO)
	gl.GenBuffers(1, &lVBO)
	gl.BindVertexArray(lVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lVBO)
	lstride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxLineVerts*int(lstride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, lstride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, lstride, glOffset(2*4))
	r.lineVAO = lVAO
	r.lineVBO = lVBO

	gl.UseProgram(lineProg)
	r.lnURes = gl.GetUniformLocation(lineProg, gl.Str("uResolution\x00"))
	gl.Uniform2f(r.lnURes, float32(fbW), float32(fbH))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.lineVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.lineVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteProg, r.lineProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// Resize updates the framebuffer size on window changes.
func (r *Renderer) Resize(fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.UseProgram(r.spriteProg)
	gl.Uniform2f(r.spURes, float32(fbW), float32(fbH))
	gl.UseProgram(r.lineProg)
	gl.Uniform2f(r.lnURes, float32(fbW), float32(fbH))
}

func (r *Renderer) Size() (float64, float64) {
	return float64(r.fbW), float64(r.fbH)
}

// project maps a world-space point to screen pixels and a size scale.
// Focal length is the screen height; z <= 0 recedes, z -> focal clips.
func (r *Renderer) project(p Vec3) (sx, sy, scale float64) {
	focal := float64(r.fbH)
	denom := focal - p.Z
	if denom < 1 {
		denom = 1
	}
	scale = focal / denom
	sx = float64(r.fbW)/2 + p.X*scale
	sy = float64(r.fbH)/2 - p.Y*scale
	return
}

func (r *Renderer) Clear(bg Color) {
	gl.ClearColor(float32(bg.R), float32(bg.G), float32(bg.B), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) Sphere(p Vec3, radius float64, col Color) {
	sx, sy, scale := r.project(p)
	size := 2 * radius * scale
	if size < 1 {
		size = 1
	}
	r.spriteBuf = append(r.spriteBuf[:0],
		float32(sx), float32(sy), float32(size),
		float32(col.R), float32(col.G), float32(col.B), float32(col.A))
	r.flushSprites(1)
}

func (r *Renderer) flushSprites(count int) {
	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.spriteBuf)*4, gl.Ptr(&r.spriteBuf[0]))
	gl.DrawArrays(gl.POINTS, 0, int32(count))
}

// strokeScreen draws the accumulated screen-space polyline.
func (r *Renderer) strokeScreen(weight float64) {
	n := len(r.lineBuf) / 6
	if n < 2 {
		return
	}
	gl.UseProgram(r.lineProg)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.lineBuf)*4, gl.Ptr(&r.lineBuf[0]))
	gl.LineWidth(float32(clampF(weight, 1, 8)))
	gl.DrawArrays(gl.LINE_STRIP, 0, int32(n))
}

func (r *Renderer) lineVert(sx, sy float64, col Color) {
	r.lineBuf = append(r.lineBuf,
		float32(sx), float32(sy),
		float32(col.R), float32(col.G), float32(col.B), float32(col.A))
}

func (r *Renderer) Ring(p Vec3, radius, weight float64, col Color) {
	sx, sy, scale := r.project(p)
	sr := radius * scale
	if sr < 0.5 {
		return
	}
	r.lineBuf = r.lineBuf[:0]
	for i := 0; i <= ringSegments; i++ {
		a := float64(i) / ringSegments * 2 * math.Pi
		r.lineVert(sx+math.Cos(a)*sr, sy+math.Sin(a)*sr, col)
	}
	r.strokeScreen(weight)
}

// Curve draws a smoothed stroke through the points. Tension 0 gives
// straight segments; 1 gives full Catmull-Rom rounding.
func (r *Renderer) Curve(pts []Vec3, tension, weight float64, col Color) {
	if len(pts) < 2 {
		return
	}
	tension = clampF(tension, 0, 1)
	r.lineBuf = r.lineBuf[:0]
	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[maxI(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[minI(i+2, len(pts)-1)]
		for s := 0; s < curveSubdiv; s++ {
			t := float64(s) / curveSubdiv
			q := catmullRom(p0, p1, p2, p3, t, tension)
			sx, sy, _ := r.project(q)
			r.lineVert(sx, sy, col)
		}
	}
	sx, sy, _ := r.project(pts[len(pts)-1])
	r.lineVert(sx, sy, col)
	r.strokeScreen(weight)
}

func (r *Renderer) Bezier(a, c1, c2, d Vec3, weight float64, col Color) {
	r.lineBuf = r.lineBuf[:0]
	for s := 0; s <= bezierSubdiv; s++ {
		t := float64(s) / bezierSubdiv
		q := cubicBezier(a, c1, c2, d, t)
		sx, sy, _ := r.project(q)
		r.lineVert(sx, sy, col)
	}
	r.strokeScreen(weight)
}

func (r *Renderer) Hexagon(p Vec3, radius, roll float64, col Color) {
	sx, sy, scale := r.project(p)
	sr := radius * scale
	if sr < 0.5 {
		return
	}
	r.lineBuf = r.lineBuf[:0]
	for i := 0; i <= 6; i++ {
		a := roll + float64(i)/6*2*math.Pi
		r.lineVert(sx+math.Cos(a)*sr, sy+math.Sin(a)*sr, col)
	}
	r.strokeScreen(1.5)
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minI(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// catmullRom interpolates between p1 and p2; tension scales the tangents
// so a tension of 0 degenerates to linear interpolation.
func catmullRom(p0, p1, p2, p3 Vec3, t, tension float64) Vec3 {
	m1 := p2.Sub(p0).Scale(0.5 * tension)
	m2 := p3.Sub(p1).Scale(0.5 * tension)
	t2 := t * t
	t3 := t2 * t
	a := p1.Scale(2*t3 - 3*t2 + 1)
	b := m1.Scale(t3 - 2*t2 + t)
	c := p2.Scale(-2*t3 + 3*t2)
	d := m2.Scale(t3 - t2)
	return a.Add(b).Add(c).Add(d)
}

func cubicBezier(a, c1, c2, d Vec3, t float64) Vec3 {
	u := 1 - t
	return a.Scale(u * u * u).
		Add(c1.Scale(3 * u * u * t)).
		Add(c2.Scale(3 * u * t * t)).
		Add(d.Scale(t * t * t))
}
