package viz

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA colour, all components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// HSVA converts a hue angle (degrees), saturation, value and alpha to Color.
func HSVA(h, s, v, a float64) Color {
	c := colorful.Hsv(wrap360(h), clampF(s, 0, 1), clampF(v, 0, 1))
	return Color{R: c.R, G: c.G, B: c.B, A: clampF(a, 0, 1)}
}

// ParseHex parses a "#rrggbb" background colour from scene config.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

func (c Color) WithAlpha(a float64) Color {
	c.A = clampF(a, 0, 1)
	return c
}
