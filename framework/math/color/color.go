// Package color holds the float colour type used across the slider renderer.
//
// Channels are straight (not premultiplied) and gamma-encoded. All arithmetic
// here works on the encoded values directly, there is no linear-light math.
package color

import (
	"github.com/wieku/danser-sliders/framework/math/math32"
	"github.com/wieku/danser-sliders/framework/math/mutils"
)

var (
	Black       = NewRGB(0, 0, 0)
	White       = NewRGB(1, 1, 1)
	Transparent = NewRGBA(0, 0, 0, 0)
)

// Color components are nominally in [0, 1] but are not clamped.
type Color struct {
	R, G, B, A float32
}

func NewRGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func NewRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewL creates an opaque grey
func NewL(l float32) Color {
	return Color{R: l, G: l, B: l, A: 1}
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

func (c Color) MultiplyAlpha(f float32) Color {
	c.A *= f
	return c
}

// Darken scales RGB towards black, amount is clamped to [0, 1].
func (c Color) Darken(amount float32) Color {
	scale := 1 - mutils.Clamp(amount, 0, 1)

	return Color{
		R: c.R * scale,
		G: c.G * scale,
		B: c.B * scale,
		A: c.A,
	}
}

// LightenLegacy brightens the colour with a small multiplicative and additive boost.
// A plain lerp towards white washes out dark and saturated colours, this one doesn't.
func (c Color) LightenLegacy(amount float32) Color {
	amount *= 0.5

	return Color{
		R: math32.Min(1, c.R*(1+0.5*amount)+1*amount),
		G: math32.Min(1, c.G*(1+0.5*amount)+1*amount),
		B: math32.Min(1, c.B*(1+0.5*amount)+1*amount),
		A: c.A,
	}
}

// Mix blends towards end in sRGB space, see BlendSRGB.
func (c Color) Mix(end Color, t float32) Color {
	return BlendSRGB(t, c, end)
}

// BlendSRGB linearly interpolates every channel (alpha included) on the encoded values.
// t is clamped to [0, 1], both ends return the endpoint colours exactly.
func BlendSRGB(t float32, start, end Color) Color {
	if start == end || t <= 0 {
		return start
	}

	if t >= 1 {
		return end
	}

	return Color{
		R: mutils.Lerp(start.R, end.R, t),
		G: mutils.Lerp(start.G, end.G, t),
		B: mutils.Lerp(start.B, end.B, t),
		A: mutils.Lerp(start.A, end.A, t),
	}
}

func (c Color) IsFinite() bool {
	for _, v := range [4]float32{c.R, c.G, c.B, c.A} {
		if math32.IsNaN(v) || math32.IsInf(v) {
			return false
		}
	}

	return true
}
