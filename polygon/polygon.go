/*
Package polygon implements polygons for bounds checks and region filling.

Polygons are built knot by knot, starting from a NullPolygon:

	pg := NullPolygon().Knot(curvemaker.P(0, 0)).Knot(curvemaker.P(1, 3)).Knot(curvemaker.P(3, 0)).Cycle()

Boolean operations are delegated to github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/curvemaker"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the 'polygon' tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of knots, optionally closed to a cycle.
type Polygon struct {
	knots  polyclip.Contour
	closed bool
}

// NullPolygon returns an empty polygon, ready to add knots to.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot to the polygon. Knots may not be added to a cycle.
func (pg *Polygon) Knot(p curvemaker.Pair) *Polygon {
	if pg.closed {
		L().Errorf("cannot add knot %s to a closed polygon", p)
		return pg
	}
	pg.knots.Add(pt(p))
	return pg
}

// Cycle closes a polygon.
func (pg *Polygon) Cycle() *Polygon {
	pg.closed = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.closed
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	if pg == nil {
		return 0
	}
	return len(pg.knots)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) curvemaker.Pair {
	return pair(pg.knots[i])
}

// Points returns the knots of pg.
func (pg *Polygon) Points() []curvemaker.Pair {
	pts := make([]curvemaker.Pair, len(pg.knots))
	for i, k := range pg.knots {
		pts[i] = pair(k)
	}
	return pts
}

// Box creates a rectangular cycle from two opposite corners.
func Box(topleft, bottomright curvemaker.Pair) *Polygon {
	return NullPolygon().
		Knot(topleft).
		Knot(curvemaker.P(bottomright.X(), topleft.Y())).
		Knot(bottomright).
		Knot(curvemaker.P(topleft.X(), bottomright.Y())).
		Cycle()
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-aligned rectangle containing all knots of pg.
func (pg *Polygon) BoundingBox() (curvemaker.Pair, curvemaker.Pair) {
	if pg.N() == 0 {
		return curvemaker.Origin, curvemaker.Origin
	}
	bb := pg.knots.BoundingBox()
	return pair(bb.Min), pair(bb.Max)
}

// InBox is a predicate: is p inside of or on the bounding box of pg?
func (pg *Polygon) InBox(p curvemaker.Pair) bool {
	if pg.N() == 0 {
		return false
	}
	lo, hi := pg.BoundingBox()
	return p.X() >= lo.X() && p.X() <= hi.X() && p.Y() >= lo.Y() && p.Y() <= hi.Y()
}

// Contains is a predicate: is p inside the area of cycle pg?
// Open polygons do not contain any points.
func (pg *Polygon) Contains(p curvemaker.Pair) bool {
	if !pg.closed || pg.N() < 3 {
		return false
	}
	return pg.knots.Contains(pt(p))
}

// Area returns the area enclosed by a non-self-intersecting cycle.
func (pg *Polygon) Area() float64 {
	if !pg.closed || pg.N() < 3 {
		return 0
	}
	var a float64
	n := len(pg.knots)
	for i, k := range pg.knots {
		l := pg.knots[(i+1)%n]
		a += k.X*l.Y - l.X*k.Y
	}
	return math.Abs(a) / 2
}

// Clip intersects cycle pg with cycle clip. The result may consist of
// zero or more separate cycles.
func Clip(pg, clip *Polygon) []*Polygon {
	if !pg.IsCycle() || !clip.IsCycle() {
		L().Errorf("clipping needs closed polygons")
		return nil
	}
	subject := polyclip.Polygon{pg.knots.Clone()}
	result := subject.Construct(polyclip.INTERSECTION, polyclip.Polygon{clip.knots.Clone()})
	regions := make([]*Polygon, 0, len(result))
	for _, c := range result {
		if len(c) < 3 {
			continue
		}
		regions = append(regions, &Polygon{knots: c, closed: true})
	}
	L().Debugf("clipping %d knots gives %d regions", pg.N(), len(regions))
	return regions
}

// UnderCurve creates a cycle enclosing the area between a polyline and a
// horizontal line at y = bottom. The polyline has to be ordered by x.
// If bottom lies above any of the samples it is lowered below the lowest
// one, so the cycle never crosses itself.
func UnderCurve(samples []curvemaker.Pair, bottom float64) *Polygon {
	pg := NullPolygon()
	if len(samples) < 2 {
		return pg
	}
	for _, s := range samples {
		if s.Y() <= bottom {
			bottom = s.Y() - 1
		}
		pg.Knot(s)
	}
	pg.Knot(curvemaker.P(samples[len(samples)-1].X(), bottom))
	pg.Knot(curvemaker.P(samples[0].X(), bottom))
	return pg.Cycle()
}

// AsString returns a string representation of a polygon, in a notation
// similar to MetaFont paths.
func AsString(pg *Polygon) string {
	if pg.N() == 0 {
		return "<empty polygon>"
	}
	var b strings.Builder
	for i, k := range pg.knots {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%.4g,%.4g)", k.X, k.Y)
	}
	if pg.closed {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func pt(p curvemaker.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) curvemaker.Pair {
	return curvemaker.P(p.X, p.Y)
}
