package sliderrenderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"

	"github.com/wieku/danser-sliders/framework/math/color"
	"github.com/wieku/danser-sliders/framework/math/math32"
)

// aaPortion is the part of the cross-section faded in at the outer edge
const aaPortion float32 = 0.02

var ErrInvalidSize = errors.New("texture size must be positive")

// Sample is a single cross-section evaluation.
type Sample struct {
	Position float32
	Colour   color.Color
}

// TextureWidth returns the width of the cross-section texture for a path of the given radius.
func TextureWidth(pathRadius float32) int {
	return max(int(pathRadius)*2, 1)
}

// Samples evaluates the cross-section at count evenly spaced positions, both ends included.
func Samples(cs CrossSection, count int) []Sample {
	samples := make([]Sample, 0, max(count, 0))

	for i := 0; i < count; i++ {
		position := progressAt(i, count)
		samples = append(samples, Sample{Position: position, Colour: cs.ColourAt(position)})
	}

	return samples
}

// Texels sweeps the cross-section into texture data ready for upload, with the
// outermost aaPortion faded in to smooth the track edge.
func Texels(cs CrossSection, width int) []mgl32.Vec4 {
	texels := make([]mgl32.Vec4, 0, max(width, 0))

	for _, s := range Samples(cs, width) {
		texel := s.Colour.ToVec4()
		texel[3] *= math32.Min(s.Position/aaPortion, 1)

		texels = append(texels, texel)
	}

	return texels
}

// Bake renders the cross-section into a one pixel high texture.
func Bake(cs CrossSection, width int) (*image.NRGBA, error) {
	if width < 1 {
		return nil, fmt.Errorf("bake width %d: %w", width, ErrInvalidSize)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, 1))

	for x, texel := range Texels(cs, width) {
		img.SetNRGBA(x, 0, color.FromVec4(texel).ToNRGBA())
	}

	return img, nil
}

// Preview renders the full track width (edge, centre, edge) scaled to width x height.
func Preview(cs CrossSection, width, height int) (*image.NRGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("preview size %dx%d: %w", width, height, ErrInvalidSize)
	}

	half := max(width/2, 1)

	strip, err := Bake(cs, half)
	if err != nil {
		return nil, err
	}

	track := image.NewNRGBA(image.Rect(0, 0, half*2, 1))

	for x := 0; x < half; x++ {
		c := strip.NRGBAAt(x, 0)

		track.SetNRGBA(x, 0, c)
		track.SetNRGBA(half*2-1-x, 0, c)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), track, track.Bounds(), draw.Src, nil)

	return dst, nil
}

func progressAt(i, count int) float32 {
	if count < 2 {
		return 0
	}

	return float32(i) / float32(count-1)
}
