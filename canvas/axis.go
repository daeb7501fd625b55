/*
Package canvas places spline-local coordinate systems on a display.

An Axis maps local coordinates to display coordinates by scaling,
flipping axis orientations and shifting to an origin. A Graph is a
rectangular canvas with a pair of axes, laid out with margins inside
its rectangle.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package canvas

import (
	"github.com/npillmayer/curvemaker"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'canvas'
func tracer() tracing.Trace {
	return tracing.Select("canvas")
}

// Axis is a local coordinate system, placed on the display.
type Axis struct {
	Origin      curvemaker.Pair // in display coordinates
	Orientation curvemaker.Pair // per component: 1 = normal, -1 = reverse
	Scale       float64         // display units per local unit
}

// IdentityAxis maps local coordinates onto display coordinates unchanged.
var IdentityAxis = Axis{
	Origin:      curvemaker.Origin,
	Orientation: curvemaker.P(1, 1),
	Scale:       1,
}

// Out returns the affine transform from local to display coordinates.
func (axis Axis) Out() curvemaker.AT {
	o := axis.Orientation.Scaled(axis.Scale)
	return curvemaker.Scaling(o.X(), o.Y()).Combine(curvemaker.Translation(axis.Origin))
}

// Into returns the affine transform from display to local coordinates.
func (axis Axis) Into() curvemaker.AT {
	sx := axis.Orientation.X() / axis.Scale
	sy := axis.Orientation.Y() / axis.Scale
	return curvemaker.Translation(-axis.Origin).Combine(curvemaker.Scaling(sx, sy))
}

// ScaleOut converts a length from local to display units.
func (axis Axis) ScaleOut(f float64) float64 {
	return f * axis.Scale
}

// ScaleInto converts a length from display to local units.
func (axis Axis) ScaleInto(f float64) float64 {
	return f / axis.Scale
}

// OrientOut flips a local direction vector to display orientation.
func (axis Axis) OrientOut(v curvemaker.Pair) curvemaker.Pair {
	return v.Mul(axis.Orientation)
}

// OrientInto flips a display direction vector to local orientation.
// Orientations are ±1, hence this is the same operation as OrientOut.
func (axis Axis) OrientInto(v curvemaker.Pair) curvemaker.Pair {
	return v.Mul(axis.Orientation)
}

// ShiftOut maps a local point to display coordinates.
func (axis Axis) ShiftOut(v curvemaker.Pair) curvemaker.Pair {
	return axis.Out().Transform(v)
}

// ShiftInto maps a display point to local coordinates.
func (axis Axis) ShiftInto(v curvemaker.Pair) curvemaker.Pair {
	return axis.Into().Transform(v)
}
