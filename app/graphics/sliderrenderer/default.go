package sliderrenderer

import (
	"github.com/wieku/danser-sliders/framework/math/color"
)

const (
	opacityAtCentre float32 = 0.3
	opacityAtEdge   float32 = 0.8
)

// Default is the plain cross-section: a solid border followed by the accent colour
// fading from opacityAtEdge to opacityAtCentre.
type Default struct {
	borderPortion float32
	borderColour  color.Color
	accentColour  color.Color
}

func NewDefault(style BodyStyle) Default {
	return Default{
		borderPortion: style.CalculatedBorderPortion(),
		borderColour:  style.BorderColour,
		accentColour:  style.AccentColour,
	}
}

func (body Default) ColourAt(position float32) color.Color {
	if body.borderPortion != 0 && position <= body.borderPortion {
		return body.borderColour
	}

	position -= body.borderPortion

	opacity := opacityAtEdge - (opacityAtEdge-opacityAtCentre)*position/GradientPortion

	return body.accentColour.MultiplyAlpha(opacity)
}
