package lighthouse

import (
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)

// Color channels are linear floats in [0, 1], not premultiplied.
type Color struct {
	R, G, B, A float64
}

func Gray(x float64) Color {
	return Color{x, x, x, 1}
}

// Hex builds an opaque color from a 0xRRGGBB literal.
func Hex(rgb uint32) Color {
	r := float64((rgb>>16)&0xff) / 255
	g := float64((rgb>>8)&0xff) / 255
	b := float64(rgb&0xff) / 255
	return Color{r, g, b, 1}
}

// ParseHexColor accepts "rgb", "rrggbb" and either form prefixed with '#'.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Black, errors.Wrapf(err, "parse color %q", s)
	}
	return Color{c.R, c.G, c.B, 1}, nil
}

// HexColor is ParseHexColor for literals; malformed input yields black.
func HexColor(s string) Color {
	c, _ := ParseHexColor(s)
	return c
}

func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	const d = 0xffff
	if a == 0 {
		return Transparent
	}
	// un-premultiply
	return Color{float64(r) / float64(a), float64(g) / float64(a), float64(b) / float64(a), float64(a) / d}
}

func (c Color) NRGBA() color.NRGBA {
	const d = 0xff
	r := Clamp(c.R, 0, 1)
	g := Clamp(c.G, 0, 1)
	b := Clamp(c.B, 0, 1)
	a := Clamp(c.A, 0, 1)
	return color.NRGBA{uint8(r*d + 0.5), uint8(g*d + 0.5), uint8(b*d + 0.5), uint8(a*d + 0.5)}
}

// Hex formats the color as rrggbb.
func (c Color) Hex() string {
	return colorful.Color{R: Clamp(c.R, 0, 1), G: Clamp(c.G, 0, 1), B: Clamp(c.B, 0, 1)}.Hex()[1:]
}

func (c Color) Opaque() Color {
	return Color{c.R, c.G, c.B, 1}
}

func (c Color) Alpha(alpha float64) Color {
	return Color{c.R, c.G, c.B, alpha}
}

func (c Color) Lerp(b Color, t float64) Color {
	return c.Add(b.Sub(c).MulScalar(t))
}

func (c Color) Add(b Color) Color {
	return Color{c.R + b.R, c.G + b.G, c.B + b.B, c.A + b.A}
}

func (c Color) Sub(b Color) Color {
	return Color{c.R - b.R, c.G - b.G, c.B - b.B, c.A - b.A}
}

func (c Color) Mul(b Color) Color {
	return Color{c.R * b.R, c.G * b.G, c.B * b.B, c.A * b.A}
}

func (c Color) MulScalar(b float64) Color {
	return Color{c.R * b, c.G * b, c.B * b, c.A * b}
}

func (c Color) DivScalar(b float64) Color {
	return Color{c.R / b, c.G / b, c.B / b, c.A / b}
}

func (c Color) Min(b Color) Color {
	return Color{math.Min(c.R, b.R), math.Min(c.G, b.G), math.Min(c.B, b.B), math.Min(c.A, b.A)}
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
