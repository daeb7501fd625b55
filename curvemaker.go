/*
Package curvemaker implements points, affine transformations and numeric
helpers shared by the spline editor packages.

The sub-packages build on each other: linsys solves the 4×4 systems,
hermite fits cubic segments between control points, canvas maps between
spline-local and display coordinates, and editor drives interactive
editing of a spline from pointer input.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curvemaker

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvemaker'
func tracer() tracing.Trace {
	return tracing.Select("curvemaker")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Clamp limits n to [lo, hi]. If lo > hi, hi wins, as the editor shrinks
// intervals by a margin which may exceed the interval itself.
func Clamp(n, lo, hi float64) float64 {
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return n
}

// Sq returns n².
func Sq(n float64) float64 {
	return n * n
}

// Cube returns n³.
func Cube(n float64) float64 {
	return n * n * n
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// Mul multiplies two pairs component-wise. This is not complex
// multiplication; it is used for flipping axis orientations.
func (p Pair) Mul(q Pair) Pair {
	return P(p.X()*q.X(), p.Y()*q.Y())
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	T := Translation(v)
	return T.Transform(p).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// Length is the euclidian length of p.
func (p Pair) Length() float64 {
	return math.Hypot(p.X(), p.Y())
}

// DistSqr is the squared distance between p and q.
func (p Pair) DistSqr(q Pair) float64 {
	d := q - p
	return Sq(d.X()) + Sq(d.Y())
}

// Normalized returns p scaled to length 1. The null vector stays (0,0).
func (p Pair) Normalized() Pair {
	l := p.Length()
	if l == 0 {
		tracer().Debugf("normalizing null vector")
		return Origin
	}
	return P(p.X()/l, p.Y()/l)
}

// Slope is the rise over run of a direction vector, y/x.
// A vertical vector results in ±Inf (or NaN for the null vector).
func (p Pair) Slope() float64 {
	return p.Y() / p.X()
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scale x by sx and y by sy. Negative factors flip an axis.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	return p1 + p2 + p3
}

// Combine 2 affine transformation to a new one. Returns a new transformation
// without changing the argument(s). The result applies m first, then n.
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m *AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 3)
	c[0] = dotProd(m.row(0), v)
	c[1] = dotProd(m.row(1), v)
	c[2] = dotProd(m.row(2), v)
	return c
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	c := []float64{p.X(), p.Y(), 1.0}
	c = m.multiplyVector(c)
	return P(c[0], c[1])
}

// TransformVector transforms a direction, ignoring the translation part.
func (m AT) TransformVector(v Pair) Pair {
	c := []float64{v.X(), v.Y(), 0.0}
	c = m.multiplyVector(c)
	return P(c[0], c[1])
}

// ScaleFactors returns the diagonal entries (sx, sy) of m.
func (m AT) ScaleFactors() (float64, float64) {
	return m.get(0, 0), m.get(1, 1)
}
