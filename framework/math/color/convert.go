package color

import (
	"fmt"
	stdcolor "image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wieku/danser-sliders/framework/math/mutils"
)

func FromVec4(v mgl32.Vec4) Color {
	return Color{R: v.X(), G: v.Y(), B: v.Z(), A: v.W()}
}

func (c Color) ToVec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// ToNRGBA quantizes the colour to 8 bits per channel, out of range values are clamped.
func (c Color) ToNRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

func toByte(v float32) uint8 {
	if v != v {
		return 0
	}

	return uint8(mutils.Clamp(v, 0, 1)*255 + 0.5)
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa, the leading # is optional.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := float32(1)

	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in hex colour %q: %w", s, err)
		}

		alpha = float32(a) / 255
		s = s[:7]
	default:
		return Color{}, fmt.Errorf("invalid hex colour %q", s)
	}

	parsed, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return NewRGBA(float32(parsed.R), float32(parsed.G), float32(parsed.B), alpha), nil
}

// Hex formats the colour as #rrggbb, with an alpha byte appended if it isn't opaque.
func (c Color) Hex() string {
	n := c.ToNRGBA()
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}

	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func (c Color) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f, %.4f)", c.R, c.G, c.B, c.A)
}
