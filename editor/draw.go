package editor

import (
	"image/color"
	"math"

	"github.com/npillmayer/curvemaker"
	"github.com/npillmayer/curvemaker/canvas"
	"github.com/npillmayer/curvemaker/polygon"
)

// Renderer is the drawing capability an editor needs. All coordinates are
// display coordinates.
type Renderer interface {
	canvas.Painter
	DrawCircle(center curvemaker.Pair, radius float64, c color.Color)
}

// PolygonFiller is implemented by renderers able to fill polygons. Editors
// with a fill color use it to shade the area under the curve.
type PolygonFiller interface {
	FillPolygon(pts []curvemaker.Pair, c color.Color)
}

// Arrow is a tangent handle on the display.
type Arrow struct {
	Base       curvemaker.Pair
	Direction  curvemaker.Pair // unit vector
	Length     float64
	HeadRadius float64
}

// Head returns the tip of the arrow.
func (a Arrow) Head() curvemaker.Pair {
	return a.Base + a.Direction.Scaled(a.Length)
}

// Draw paints the arrow as a shaft and two head strokes.
func (a Arrow) Draw(r Renderer, thick float64, c color.Color) {
	h := a.Head()
	hu := h + a.Direction.Rotated(-150*curvemaker.Deg2Rad).Scaled(a.HeadRadius)
	hd := h + a.Direction.Rotated(-210*curvemaker.Deg2Rad).Scaled(a.HeadRadius)
	r.DrawLine(a.Base, h, thick, c)
	r.DrawLine(h, hu, thick, c)
	r.DrawLine(h, hd, thick, c)
}

// Draw paints the canvas, the curve, the control points and the tangent
// handles.
func (e *Entity) Draw(r Renderer) {
	e.Graph.Draw(r)
	axis := e.Graph.Axis
	spl := e.Spline
	if e.Style.FillColor != nil {
		if filler, ok := r.(PolygonFiller); ok {
			e.fill(filler)
		}
	}
	for i := 0; i < spl.Segments(); i++ {
		samples := spl.SampleSegment(i, e.Style.Split)
		for j := 1; j < len(samples); j++ {
			if !finite(samples[j-1]) || !finite(samples[j]) {
				continue
			}
			r.DrawLine(axis.ShiftOut(samples[j-1]), axis.ShiftOut(samples[j]), e.Style.CurveThick, e.Style.CurveColor)
		}
	}
	for i := 0; i < spl.N(); i++ {
		radius, c := e.Style.ControlPointRadius, e.Style.IdleColor
		if i == e.pointHold {
			radius *= e.Style.HoldScale
			c = e.Style.HoldColor
		}
		r.DrawCircle(axis.ShiftOut(spl.Point(i).Coord), radius, c)
	}
	if spl.N() > 0 {
		e.arrow(spl.First().Coord, spl.BeginTangent()).Draw(r, e.Style.ArrowThick, e.Style.ArrowColor)
	}
	if spl.N() > 1 {
		e.arrow(spl.Last().Coord, spl.EndTangent()).Draw(r, e.Style.ArrowThick, e.Style.ArrowColor)
	}
}

// arrow creates the display arrow for a tangent anchored at a local point.
func (e *Entity) arrow(anchor, tangent curvemaker.Pair) Arrow {
	axis := e.Graph.Axis
	return Arrow{
		Base:       axis.ShiftOut(anchor),
		Direction:  axis.OrientOut(tangent.Normalized()),
		Length:     e.Style.ArrowLength,
		HeadRadius: e.Style.ArrowHeadRadius,
	}
}

// FillRegions returns the area between the curve and the x-axis, clipped to
// the axes' area, in local coordinates.
func (e *Entity) FillRegions() []*polygon.Polygon {
	if e.Spline.Segments() == 0 {
		return nil
	}
	samples := e.Spline.Sample(e.Style.Split)
	for _, s := range samples {
		if !finite(s) {
			return nil
		}
	}
	under := polygon.UnderCurve(samples, -e.Graph.AxisLen.Y())
	box := polygon.Box(curvemaker.P(0, e.Graph.AxisLen.Y()), curvemaker.P(e.Graph.AxisLen.X(), 0))
	return polygon.Clip(under, box)
}

func (e *Entity) fill(filler PolygonFiller) {
	for _, region := range e.FillRegions() {
		pts := region.Points()
		for i, p := range pts {
			pts[i] = e.Graph.Axis.ShiftOut(p)
		}
		filler.FillPolygon(pts, e.Style.FillColor)
	}
}

func finite(p curvemaker.Pair) bool {
	for _, f := range []float64{p.X(), p.Y()} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
