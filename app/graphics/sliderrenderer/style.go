// Package sliderrenderer computes slider track cross-sections and bakes them into textures.
//
// A cross-section is sampled from the outer edge of the track (0) to its
// centre line (1). The renderer mirrors it to draw the full width.
package sliderrenderer

import (
	"github.com/wieku/danser-sliders/framework/math/color"
	"github.com/wieku/danser-sliders/framework/math/mutils"
)

const (
	// BorderPortion is the part of the half-width taken by a border of size 1
	BorderPortion   float32 = 0.128
	GradientPortion float32 = 1 - BorderPortion

	minBorderSize float32 = 0
	maxBorderSize float32 = 8
)

// CrossSection returns the colour at a normalized position across the track.
type CrossSection interface {
	ColourAt(position float32) color.Color
}

// BodyStyle is what the slider body supplies when it's created or reskinned.
type BodyStyle struct {
	AccentColour color.Color
	BorderColour color.Color
	BorderSize   float32
}

// CalculatedBorderPortion is the border portion before any skin specific scaling.
func (style BodyStyle) CalculatedBorderPortion() float32 {
	return mutils.Clamp(style.BorderSize, minBorderSize, maxBorderSize) * BorderPortion
}
