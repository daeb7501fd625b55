package hermite

import (
	"sort"

	"github.com/npillmayer/curvemaker"
)

const (
	// InitialCapacity is the number of control points a spline has room for
	// after its first point is appended.
	InitialCapacity = 10
	// GrowthFactor is applied to the capacity whenever a spline runs full.
	GrowthFactor = 2
)

// Spline is an ordered sequence of control points together with the cubic
// segments connecting them.
type Spline struct {
	beginTangent curvemaker.Pair // tangent at points[0]
	endTangent   curvemaker.Pair // tangent at points[n-1]
	points       []ControlPoint  // ordered by x
	curves       []CubicCurve    // max(n-1,1) entries, the extra slot for n ≤ 1 is unused
}

// NewSpline creates an empty spline with horizontal boundary tangents.
func NewSpline() *Spline {
	return &Spline{
		beginTangent: curvemaker.P(1, 0),
		endTangent:   curvemaker.P(1, 0),
	}
}

// N returns the number of control points.
func (spl *Spline) N() int {
	return len(spl.points)
}

// Segments returns the number of cubic segments, max(N-1, 0).
func (spl *Spline) Segments() int {
	if len(spl.points) < 2 {
		return 0
	}
	return len(spl.points) - 1
}

// Capacity returns the number of control points the spline may hold before
// its buffers have to grow.
func (spl *Spline) Capacity() int {
	return cap(spl.points)
}

// Point returns control point i.
func (spl *Spline) Point(i int) ControlPoint {
	return spl.points[i]
}

// Points returns a copy of the control points.
func (spl *Spline) Points() []ControlPoint {
	pts := make([]ControlPoint, len(spl.points))
	copy(pts, spl.points)
	return pts
}

// First returns the first control point. The spline must not be empty.
func (spl *Spline) First() ControlPoint {
	return spl.points[0]
}

// Last returns the last control point. The spline must not be empty.
func (spl *Spline) Last() ControlPoint {
	return spl.points[len(spl.points)-1]
}

// Curve returns the cubic segment between points i and i+1.
func (spl *Spline) Curve(i int) CubicCurve {
	return spl.curves[i]
}

// SetPointCoord moves control point i. Clients have to call Recompute
// afterwards.
func (spl *Spline) SetPointCoord(i int, z curvemaker.Pair) {
	spl.points[i].Coord = z
}

// BeginTangent is the tangent at the first control point.
func (spl *Spline) BeginTangent() curvemaker.Pair {
	return spl.beginTangent
}

// EndTangent is the tangent at the last control point.
func (spl *Spline) EndTangent() curvemaker.Pair {
	return spl.endTangent
}

// SetBeginTangent sets the tangent at the first control point. Clients have
// to call Recompute afterwards.
func (spl *Spline) SetBeginTangent(t curvemaker.Pair) {
	spl.beginTangent = t
}

// SetEndTangent sets the tangent at the last control point. Clients have
// to call Recompute afterwards.
func (spl *Spline) SetEndTangent(t curvemaker.Pair) {
	spl.endTangent = t
}

// Append adds a control point at the end of the spline. p.Coord.X() should
// be greater than the x-coordinate of the current last point; this is not
// checked. Curves are not recomputed.
func (spl *Spline) Append(p ControlPoint) {
	if cap(spl.points) == 0 {
		spl.points = make([]ControlPoint, 0, InitialCapacity)
		spl.curves = make([]CubicCurve, 0, InitialCapacity)
	} else if len(spl.points) == cap(spl.points) {
		newcap := GrowthFactor * cap(spl.points)
		tracer().Debugf("grow spline: cap %d, new cap %d", cap(spl.points), newcap)
		points := make([]ControlPoint, len(spl.points), newcap)
		copy(points, spl.points)
		spl.points = points
		curves := make([]CubicCurve, len(spl.curves), newcap)
		copy(curves, spl.curves)
		spl.curves = curves
	}
	spl.points = append(spl.points, p)
	for len(spl.curves) < max(len(spl.points)-1, 1) {
		spl.curves = append(spl.curves, CubicCurve{})
	}
}

// Recompute sets the tangents of all control points and solves every
// segment. It does nothing for splines with less than 2 control points.
//
// Boundary points get the begin and end tangents; an inner point i gets the
// difference of its neighbours' coordinates.
func (spl *Spline) Recompute() {
	n := len(spl.points)
	if n < 2 {
		return
	}
	spl.points[0].Tangent = spl.beginTangent
	spl.points[n-1].Tangent = spl.endTangent
	for i := 1; i < n-1; i++ {
		spl.points[i].Tangent = spl.points[i+1].Coord - spl.points[i-1].Coord
	}
	for i := 0; i < n-1; i++ {
		spl.curves[i] = SolveSegment(spl.points[i], spl.points[i+1])
	}
}

// IsMonotone is a predicate: are the control points ordered by strictly
// increasing x?
func (spl *Spline) IsMonotone() bool {
	for i := 0; i+1 < len(spl.points); i++ {
		if spl.points[i].Coord.X() >= spl.points[i+1].Coord.X() {
			return false
		}
	}
	return true
}

// SegmentAt returns the index of the segment whose x-range contains x.
// Returns false if x is outside of the spline's x-range.
func (spl *Spline) SegmentAt(x float64) (int, bool) {
	n := spl.Segments()
	if n == 0 || x < spl.points[0].Coord.X() || x > spl.points[n].Coord.X() {
		return -1, false
	}
	// first point strictly right of x, its predecessor starts the segment
	i := sort.Search(n+1, func(k int) bool {
		return spl.points[k].Coord.X() > x
	})
	return min(i-1, n-1), true
}

// At evaluates the spline at x.
func (spl *Spline) At(x float64) (float64, bool) {
	i, ok := spl.SegmentAt(x)
	if !ok {
		return 0, false
	}
	return spl.curves[i].Eval(x), true
}
