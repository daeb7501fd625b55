package hermite

import (
	"fmt"

	"github.com/npillmayer/curvemaker"
	"github.com/npillmayer/curvemaker/linsys"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hermite'
func tracer() tracing.Trace {
	return tracing.Select("hermite")
}

// CubicCurve is the polynomial a·x³ + b·x² + c·x + d of one spline segment.
type CubicCurve struct {
	A, B, C, D float64
}

// Eval evaluates the curve at x.
func (curve CubicCurve) Eval(x float64) float64 {
	return curve.A*curvemaker.Cube(x) + curve.B*curvemaker.Sq(x) + curve.C*x + curve.D
}

// Slope evaluates the first derivative of the curve at x.
func (curve CubicCurve) Slope(x float64) float64 {
	return 3*curve.A*curvemaker.Sq(x) + 2*curve.B*x + curve.C
}

func (curve CubicCurve) String() string {
	return fmt.Sprintf("%.4g·x³ + %.4g·x² + %.4g·x + %.4g", curve.A, curve.B, curve.C, curve.D)
}

// ControlPoint is a knot of a spline, together with its tangent.
// Tangents are directions and need not be normalized.
type ControlPoint struct {
	Coord   curvemaker.Pair
	Tangent curvemaker.Pair
}

// Knot creates a control point at z without tangent information.
func Knot(z curvemaker.Pair) ControlPoint {
	return ControlPoint{Coord: z}
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("%s{%s}", cp.Coord, cp.Tangent)
}

// SolveSegment finds the cubic curve through p1 and p2 which has the slopes
// of the tangents of p1 and p2 at the respective x-coordinates.
//
// The x-coordinates of p1 and p2 must differ and tangents must not be
// vertical, otherwise the coefficients will not be finite.
func SolveSegment(p1, p2 ControlPoint) CubicCurve {
	x1, x2 := p1.Coord.X(), p2.Coord.X()
	A := linsys.Mat4{
		{curvemaker.Cube(x1), curvemaker.Sq(x1), x1, 1},
		{curvemaker.Cube(x2), curvemaker.Sq(x2), x2, 1},
		{3 * curvemaker.Sq(x1), 2 * x1, 1, 0},
		{3 * curvemaker.Sq(x2), 2 * x2, 1, 0},
	}
	b := linsys.Vec4{p1.Coord.Y(), p2.Coord.Y(), p1.Tangent.Slope(), p2.Tangent.Slope()}
	x := linsys.Solve(A, b)
	return CubicCurve{A: x[0], B: x[1], C: x[2], D: x[3]}
}
