package canvas

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/curvemaker"
	"golang.org/x/image/colornames"
)

// Rect is an axis-aligned rectangle in display coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Min is the top-left corner.
func (r Rect) Min() curvemaker.Pair {
	return curvemaker.P(r.X, r.Y)
}

// Max is the bottom-right corner.
func (r Rect) Max() curvemaker.Pair {
	return curvemaker.P(r.X+r.W, r.Y+r.H)
}

// Inset returns r shrunk by d on every side. Negative d grows r.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.W, r.H)
}

// Painter is the drawing capability a canvas needs.
type Painter interface {
	DrawLine(p0, p1 curvemaker.Pair, thick float64, c color.Color)
	DrawRect(r Rect, c color.Color)
	DrawRectOutline(r Rect, thick float64, c color.Color)
}

// Border decorates a canvas. The inner part is drawn inside the canvas
// rectangle, the outer part outside of it.
type Border struct {
	InThick  float64
	OutThick float64
	Color    color.Color
}

// Canvas is a rectangle on the display with its own local coordinate system.
type Canvas struct {
	ID         int
	Rect       Rect
	Axis       Axis
	Border     Border
	Background color.Color
}

// Draw paints background and border.
func (c *Canvas) Draw(p Painter) {
	p.DrawRect(c.Rect, c.Background)
	if c.Border.InThick > 0 || c.Border.OutThick > 0 {
		frame := c.Rect.Inset(-c.Border.OutThick)
		p.DrawRectOutline(frame, c.Border.InThick+c.Border.OutThick, c.Border.Color)
	}
}

// Graph is a canvas with a pair of axes. The axes' origin sits at the
// bottom left, inset by a margin of 10% of the canvas size; the y-axis
// points upwards.
type Graph struct {
	Canvas
	AxisLen   curvemaker.Pair // in local units
	AxisColor color.Color
}

// AxisThick is the display width of axis lines.
const AxisThick = 5

const marginFraction = 10.0

// NewGraph creates a graph canvas with unit scale for a display rectangle.
func NewGraph(id int, rect Rect) *Graph {
	g := &Graph{
		Canvas: Canvas{
			ID: id,
			Axis: Axis{
				Orientation: curvemaker.P(1, -1),
				Scale:       1,
			},
			Border: Border{
				InThick:  0,
				OutThick: 2,
				Color:    colornames.Blue,
			},
			Background: colornames.White,
		},
		AxisColor: colornames.Black,
	}
	g.SetRect(rect)
	return g
}

// SetRect moves and resizes a graph, keeping its scale.
func (g *Graph) SetRect(rect Rect) {
	margin := curvemaker.P(rect.W/marginFraction, rect.H/marginFraction)
	lenDisplay := curvemaker.P(rect.W-2*margin.X(), rect.H-2*margin.Y())
	g.Rect = rect
	g.Axis.Origin = curvemaker.P(rect.X+margin.X(), rect.Y+rect.H-margin.Y())
	g.AxisLen = lenDisplay.Scaled(1 / g.Axis.Scale)
	tracer().Debugf("graph %d: rect %s, origin %s, axis length %s", g.ID, rect, g.Axis.Origin, g.AxisLen)
}

// Contains is a predicate: does local point z lie on the axes' area?
func (g *Graph) Contains(z curvemaker.Pair) bool {
	return z.X() >= 0 && z.X() <= g.AxisLen.X() && z.Y() >= 0 && z.Y() <= g.AxisLen.Y()
}

// Draw paints the canvas and both axes.
func (g *Graph) Draw(p Painter) {
	g.Canvas.Draw(p)
	zero := g.Axis.ShiftOut(curvemaker.Origin)
	xend := g.Axis.ShiftOut(curvemaker.P(g.AxisLen.X(), 0))
	yend := g.Axis.ShiftOut(curvemaker.P(0, g.AxisLen.Y()))
	p.DrawLine(zero, xend, AxisThick, g.AxisColor)
	p.DrawLine(zero, yend, AxisThick, g.AxisColor)
}
