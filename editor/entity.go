/*
Package editor lets users edit a spline with a pointing device.

An Entity binds a spline to a graph canvas. Once per frame a driver feeds
it the pointer position and button edges, lets it update the spline and
has it draw itself:

	e.SetInput(pointer)
	e.ProcessInput(pressed, released)
	e.Update()
	e.Draw(renderer)

Step performs the first three calls from an Input.

Pressing the button on a tangent handle or a control point starts dragging
it; pressing it somewhere right of the last control point inserts a new
one. Releasing the button ends any drag. Control points are kept ordered
by x and inside the axes' area.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package editor

import (
	"fmt"
	"time"

	"github.com/npillmayer/curvemaker"
	"github.com/npillmayer/curvemaker/canvas"
	"github.com/npillmayer/curvemaker/hermite"
	"github.com/npillmayer/curvemaker/polygon"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/time/rate"
)

// tracer writes to trace with key 'editor'
func tracer() tracing.Trace {
	return tracing.Select("editor")
}

// Input is the pointer state of a frame.
type Input interface {
	PointerPosition() curvemaker.Pair // display coordinates
	ButtonPressed() bool              // primary button went down this frame
	ButtonReleased() bool             // primary button went up this frame
}

// State is the editing state of an entity.
type State int

const (
	Idle State = iota
	DraggingPoint
	DraggingBeginTangent
	DraggingEndTangent
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DraggingPoint:
		return "dragging-point"
	case DraggingBeginTangent:
		return "dragging-begin-tangent"
	case DraggingEndTangent:
		return "dragging-end-tangent"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// dragTraceInterval throttles tracing of drag positions.
const dragTraceInterval = 250 * time.Millisecond

// Entity is an editing session for a single spline on a graph canvas.
type Entity struct {
	Graph  *canvas.Graph
	Spline *hermite.Spline
	Style  Style

	pointHold        int             // index of dragged point, or -1
	beginTangentHold bool            // dragging the begin tangent handle
	endTangentHold   bool            // dragging the end tangent handle
	pointer          curvemaker.Pair // last pointer position, local
	dirty            bool            // spline needs recomputing
	dragTrace        *rate.Limiter
}

// NewEntity creates an editor for an empty spline on a graph canvas with
// display rectangle rect.
func NewEntity(id int, rect canvas.Rect, style Style) *Entity {
	return &Entity{
		Graph:     canvas.NewGraph(id, rect),
		Spline:    hermite.NewSpline(),
		Style:     style,
		pointHold: -1,
		dragTrace: rate.NewLimiter(rate.Every(dragTraceInterval), 1),
	}
}

// State returns the current editing state.
func (e *Entity) State() State {
	switch {
	case e.beginTangentHold:
		return DraggingBeginTangent
	case e.endTangentHold:
		return DraggingEndTangent
	case e.pointHold >= 0:
		return DraggingPoint
	}
	return Idle
}

// HeldPoint returns the index of the control point being dragged, or -1.
func (e *Entity) HeldPoint() int {
	return e.pointHold
}

// Pointer returns the last pointer position in local coordinates.
func (e *Entity) Pointer() curvemaker.Pair {
	return e.pointer
}

// SetInput transforms a pointer position from display to local coordinates
// and remembers it for this frame.
func (e *Entity) SetInput(pointer curvemaker.Pair) {
	e.pointer = e.Graph.Axis.ShiftInto(pointer)
}

// local returns the style's lengths in local units.
func (e *Entity) local() (arrowLength, headRadius, pointRadius float64) {
	axis := e.Graph.Axis
	return axis.ScaleInto(e.Style.ArrowLength),
		axis.ScaleInto(e.Style.ArrowHeadRadius),
		axis.ScaleInto(e.Style.ControlPointRadius)
}

// beginHandle returns the tip of the begin tangent handle, local.
func (e *Entity) beginHandle(arrowLength float64) curvemaker.Pair {
	return e.Spline.First().Coord + e.Spline.BeginTangent().Normalized().Scaled(arrowLength)
}

// endHandle returns the tip of the end tangent handle, local.
func (e *Entity) endHandle(arrowLength float64) curvemaker.Pair {
	return e.Spline.Last().Coord + e.Spline.EndTangent().Normalized().Scaled(arrowLength)
}

// InsertionBox returns the area in which a new control point may be
// inserted, or nil if there is no room left.
func (e *Entity) InsertionBox() *polygon.Polygon {
	_, _, r := e.local()
	xlow := 0.0
	if e.Spline.N() > 0 {
		xlow = e.Spline.Last().Coord.X()
	}
	lo := curvemaker.P(xlow+r, r)
	hi := curvemaker.P(e.Graph.AxisLen.X()-r, e.Graph.AxisLen.Y()-r)
	if lo.X() > hi.X() || lo.Y() > hi.Y() {
		return nil
	}
	return polygon.Box(curvemaker.P(lo.X(), hi.Y()), curvemaker.P(hi.X(), lo.Y()))
}

// ProcessInput reacts to button edges of this frame. A press hit-tests, in
// this order: the begin tangent handle, the end tangent handle, the control
// points; if nothing is hit, a control point is inserted at the pointer
// position, provided the position is inside the insertion box.
// A release ends any drag.
func (e *Entity) ProcessInput(pressed, released bool) {
	if pressed {
		e.press()
	}
	if released {
		e.pointHold = -1
		e.beginTangentHold = false
		e.endTangentHold = false
	}
}

func (e *Entity) press() {
	arrowLength, headRadius, pointRadius := e.local()
	p := e.pointer
	tracer().Debugf("editor %d: pointer at %s", e.Graph.ID, p)
	n := e.Spline.N()
	if n > 0 && e.beginHandle(arrowLength).DistSqr(p) <= curvemaker.Sq(headRadius) {
		e.beginTangentHold = true
		return
	}
	if n > 1 && e.endHandle(arrowLength).DistSqr(p) <= curvemaker.Sq(headRadius) {
		e.endTangentHold = true
		return
	}
	for i := 0; i < n; i++ {
		if e.Spline.Point(i).Coord.DistSqr(p) <= curvemaker.Sq(pointRadius) {
			e.pointHold = i
			return
		}
	}
	box := e.InsertionBox()
	if box == nil {
		tracer().Debugf("editor %d: no room for insertion", e.Graph.ID)
		return
	}
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		lo, hi := box.BoundingBox()
		tracer().Debugf("editor %d: insertion limits %s, %s", e.Graph.ID, lo, hi)
	}
	if box.InBox(p) {
		e.Spline.Append(hermite.Knot(p))
		e.dirty = true
	}
}

// Update applies an ongoing drag to the spline and recomputes the spline's
// curves if anything changed during this frame. A tangent handle dragged
// onto its anchor point keeps its previous direction.
func (e *Entity) Update() {
	switch e.State() {
	case DraggingBeginTangent:
		if t := (e.pointer - e.Spline.First().Coord).Normalized(); !t.IsOrigin() {
			e.Spline.SetBeginTangent(t)
		}
		e.dirty = true
	case DraggingEndTangent:
		if t := (e.pointer - e.Spline.Last().Coord).Normalized(); !t.IsOrigin() {
			e.Spline.SetEndTangent(t)
		}
		e.dirty = true
	case DraggingPoint:
		e.dragPoint()
		e.dirty = true
	}
	if e.dirty {
		e.Spline.Recompute()
		e.dirty = false
	}
}

// dragPoint moves the held point to the pointer, keeping it between its
// neighbours and inside the axes' area.
func (e *Entity) dragPoint() {
	_, _, r := e.local()
	i, n := e.pointHold, e.Spline.N()
	axisLen := e.Graph.AxisLen
	var xlow, xhigh float64
	switch {
	case i == 0:
		xlow = 0
		if n == 1 {
			xhigh = axisLen.X()
		} else {
			xhigh = e.Spline.Point(1).Coord.X()
		}
	case i == n-1:
		xlow = e.Spline.Point(i - 1).Coord.X()
		xhigh = axisLen.X()
	default:
		xlow = e.Spline.Point(i - 1).Coord.X()
		xhigh = e.Spline.Point(i + 1).Coord.X()
	}
	x := curvemaker.Clamp(e.pointer.X(), xlow+r, xhigh-r)
	y := curvemaker.Clamp(e.pointer.Y(), r, axisLen.Y()-r)
	e.Spline.SetPointCoord(i, curvemaker.P(x, y))
	if e.dragTrace.Allow() {
		tracer().Debugf("editor %d: point %d dragged to (%.2f,%.2f)", e.Graph.ID, i, x, y)
	}
}

// Step runs a frame's input processing and update.
func (e *Entity) Step(in Input) {
	e.SetInput(in.PointerPosition())
	e.ProcessInput(in.ButtonPressed(), in.ButtonReleased())
	e.Update()
}
