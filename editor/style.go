package editor

import (
	"image/color"

	"github.com/npillmayer/curvemaker/hermite"
	"golang.org/x/image/colornames"
)

// Style holds the visual parameters of an editor. Lengths are given in
// display units and are converted to local units where hit-testing needs
// them.
type Style struct {
	ArrowLength        float64     // length of a tangent handle
	ArrowHeadRadius    float64     // size of a handle's head, also its hit radius
	ArrowThick         float64     // stroke width of tangent handles
	ControlPointRadius float64     // size of control points, also their hit radius
	HoldScale          float64     // magnification of the point being dragged
	CurveThick         float64     // stroke width of the curve
	Split              int         // line pieces per segment
	IdleColor          color.Color // control points
	HoldColor          color.Color // the point being dragged
	CurveColor         color.Color
	ArrowColor         color.Color
	FillColor          color.Color // area under the curve; nil switches filling off
}

// DefaultStyle returns the style editors are created with.
func DefaultStyle() Style {
	return Style{
		ArrowLength:        100,
		ArrowHeadRadius:    20,
		ArrowThick:         3,
		ControlPointRadius: 10,
		HoldScale:          1.5,
		CurveThick:         2,
		Split:              hermite.DefaultSplit,
		IdleColor:          colornames.Red,
		HoldColor:          colornames.Magenta,
		CurveColor:         colornames.Blue,
		ArrowColor:         colornames.Black,
	}
}

// Translucent returns opaque color c with its opacity replaced by alpha.
func Translucent(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
