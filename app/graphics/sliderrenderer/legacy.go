package sliderrenderer

import (
	"github.com/wieku/danser-sliders/framework/math/color"
)

const (
	ObjectRadius       float32 = 64
	LegacyCircleRadius         = ObjectRadius - 5

	// ShadowPortion is the outer part of the half-width covered by the drop shadow
	ShadowPortion = 1 - LegacyCircleRadius/ObjectRadius

	// LegacyBorderScale roughly matches stable's slider border thickness
	LegacyBorderScale   float32 = 0.77
	LegacyAccentOpacity float32 = 0.70

	shadowOpacity   float32 = 0.25
	outerDarkening  float32 = 0.1
	innerLightening float32 = 0.5
)

// Legacy reproduces stable's slider body: a black shadow ramp, a solid border and
// a gradient from a darkened to a lightened accent colour.
//
// Legacy is immutable and holds no caches, so it's safe to share between goroutines.
type Legacy struct {
	shadowPortion float32
	borderPortion float32
	borderColour  color.Color
	accentColour  color.Color
}

func NewLegacy(style BodyStyle) Legacy {
	return NewLegacyWithPortions(
		ShadowPortion,
		style.CalculatedBorderPortion()*LegacyBorderScale,
		style.BorderColour,
		style.AccentColour.MultiplyAlpha(LegacyAccentOpacity),
	)
}

// NewLegacyWithPortions uses the given portions and colours as they are, accent alpha
// is expected to be scaled already.
func NewLegacyWithPortions(shadowPortion, borderPortion float32, borderColour, accentColour color.Color) Legacy {
	return Legacy{
		shadowPortion: shadowPortion,
		borderPortion: borderPortion,
		borderColour:  borderColour,
		accentColour:  accentColour,
	}
}

func (body Legacy) ShadowPortion() float32 {
	return body.shadowPortion
}

func (body Legacy) BorderPortion() float32 {
	return body.borderPortion
}

// RealBorderPortion is where the border band ends, measured from the outer edge.
func (body Legacy) RealBorderPortion() float32 {
	return body.shadowPortion + body.borderPortion
}

func (body Legacy) RealGradientPortion() float32 {
	return 1 - body.RealBorderPortion()
}

func (body Legacy) AccentColour() color.Color {
	return body.accentColour
}

func (body Legacy) BorderColour() color.Color {
	return body.borderColour
}

func (body Legacy) ColourAt(position float32) color.Color {
	realBorderPortion := body.RealBorderPortion()
	realGradientPortion := 1 - realBorderPortion

	if position <= body.shadowPortion {
		if body.shadowPortion <= 0 {
			return color.Transparent
		}

		return color.NewRGBA(0, 0, 0, shadowOpacity*(position/body.shadowPortion))
	}

	if position <= realBorderPortion {
		return body.borderColour
	}

	position -= realBorderPortion

	outerColour := body.accentColour.Darken(outerDarkening)
	innerColour := body.accentColour.LightenLegacy(innerLightening)

	if realGradientPortion <= 0 {
		return outerColour
	}

	// stable never blended slider bodies in linear space
	return color.BlendSRGB(position/realGradientPortion, outerColour, innerColour)
}
