// Package hermite fits piecewise cubic functions through control points.
/*

Each segment between two consecutive control points is a cubic polynomial

	f(x) = a·x³ + b·x² + c·x + d

fixed by four Hermite constraints: the function values at both ends equal
the y-coordinates of the control points, and the derivatives at both ends
equal the slopes (rise over run) of the control point tangents. The four
coefficients are found by solving a 4×4 linear system (package linsys).

Control points have to be ordered by strictly increasing x-coordinate.
The spline does not enforce this; package editor does by clamping pointer
input. Coinciding x-coordinates result in a singular system and non-finite
coefficients.

Tangents of the first and last control point are set by clients
(SetBeginTangent, SetEndTangent). Tangents of inner control points are
derived from their neighbours,

	t.i = z.(i+1) − z.(i−1)

in the manner of Catmull-Rom splines.

Usage

	spl := hermite.NewSpline()
	spl.Append(hermite.Knot(curvemaker.P(0, 0)))
	spl.Append(hermite.Knot(curvemaker.P(10, 5)))
	spl.Recompute()
	y := spl.Curve(0).Eval(4)

Recompute has to be called after every change of coordinates, point count
or boundary tangents; the spline does not track its own dirtiness.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hermite
