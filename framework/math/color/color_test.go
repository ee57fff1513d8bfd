package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDarken(t *testing.T) {
	t.Parallel()

	c := NewRGBA(1, 0.5, 0.25, 0.7)

	assert.Equal(t, c, c.Darken(0))
	assert.Equal(t, NewRGBA(0, 0, 0, 0.7), c.Darken(1))
	assert.Equal(t, NewRGBA(0, 0, 0, 0.7), c.Darken(2), "amount above 1 is clamped")
	assert.Equal(t, c, c.Darken(-1), "negative amount is clamped")

	half := c.Darken(0.5)
	assert.InDelta(t, 0.5, half.R, 1e-6)
	assert.InDelta(t, 0.25, half.G, 1e-6)
	assert.InDelta(t, 0.125, half.B, 1e-6)
	assert.Equal(t, float32(0.7), half.A)
}

func TestLightenLegacy(t *testing.T) {
	t.Parallel()

	c := NewRGBA(1, 0.5, 0, 0.7)

	assert.Equal(t, c, c.LightenLegacy(0))

	// amount 0.5 halves to 0.25: ch*1.125 + 0.25, capped at 1
	l := c.LightenLegacy(0.5)
	assert.Equal(t, float32(1), l.R)
	assert.InDelta(t, 0.8125, l.G, 1e-6)
	assert.InDelta(t, 0.25, l.B, 1e-6)
	assert.Equal(t, float32(0.7), l.A)
}

func TestLightenLegacyKeepsDarkColoursDark(t *testing.T) {
	t.Parallel()

	dark := NewRGB(0.1, 0, 0.1)
	l := dark.LightenLegacy(0.5)

	naive := dark.Mix(White, 0.5)
	assert.Less(t, l.R, naive.R)
	assert.Less(t, l.G, naive.G)
}

func TestBlendSRGB(t *testing.T) {
	t.Parallel()

	a := NewRGBA(0.1, 0.2, 0.3, 0.4)
	b := NewRGBA(0.9, 0.7, 0.3, 1)

	assert.Equal(t, a, BlendSRGB(0, a, b))
	assert.Equal(t, b, BlendSRGB(1, a, b))
	assert.Equal(t, a, BlendSRGB(-3, a, b))
	assert.Equal(t, b, BlendSRGB(3, a, b))

	for _, tt := range []float32{0, 0.3, 0.5, 1, 7} {
		assert.Equal(t, a, BlendSRGB(tt, a, a))
	}

	mid := BlendSRGB(0.5, NewRGBA(0, 0, 0, 0), NewRGBA(1, 0.5, 0.25, 1))
	assert.Equal(t, NewRGBA(0.5, 0.25, 0.125, 0.5), mid)
}

func TestBlendSRGBIsNotGammaCorrected(t *testing.T) {
	t.Parallel()

	// linear light blending would give ~0.735 for the midpoint of black and white
	mid := Black.Mix(White, 0.5)
	assert.Equal(t, float32(0.5), mid.R)
}

func TestIsFinite(t *testing.T) {
	t.Parallel()

	assert.True(t, NewRGBA(0.2, 0.3, 0.4, 1).IsFinite())

	var zero float32
	assert.False(t, NewRGBA(0, 0, 0, zero/zero).IsFinite())
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", White},
		{"000000", Black},
		{"#f00", NewRGB(1, 0, 0)},
		{"#00000000", Transparent},
		{" #ff000080 ", NewRGBA(1, 0, 0, 128.0/255)},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want.R, got.R, 1e-6, tt.in)
		assert.InDelta(t, tt.want.G, got.G, 1e-6, tt.in)
		assert.InDelta(t, tt.want.B, got.B, 1e-6, tt.in)
		assert.InDelta(t, tt.want.A, got.A, 1e-6, tt.in)
	}

	for _, bad := range []string{"", "#12", "#1234", "#gggggg", "#ffffffzz"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff8000", NewRGB(1, 0.5, 0).Hex())
	assert.Equal(t, "#00000080", NewRGBA(0, 0, 0, 0.5).Hex())
}

func TestToNRGBAClamps(t *testing.T) {
	t.Parallel()

	n := NewRGBA(1.5, -0.2, 0.5, 1).ToNRGBA()
	assert.Equal(t, uint8(255), n.R)
	assert.Equal(t, uint8(0), n.G)
	assert.Equal(t, uint8(128), n.B)
	assert.Equal(t, uint8(255), n.A)
}

func TestVec4RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewRGBA(0.1, 0.2, 0.3, 0.4)
	assert.Equal(t, c, FromVec4(c.ToVec4()))
}
