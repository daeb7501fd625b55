package editor

import (
	"image/color"
	"math"
	"testing"

	"github.com/npillmayer/curvemaker"
	"github.com/npillmayer/curvemaker/canvas"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

type circle struct {
	center curvemaker.Pair
	radius float64
	color  color.Color
}

type recorder struct {
	lines   int
	strokes [][2]curvemaker.Pair
	circles []circle
	fills   [][]curvemaker.Pair
}

func (r *recorder) DrawLine(p0, p1 curvemaker.Pair, thick float64, c color.Color) {
	r.lines++
	r.strokes = append(r.strokes, [2]curvemaker.Pair{p0, p1})
}

func (r *recorder) DrawRect(rect canvas.Rect, c color.Color)                      {}
func (r *recorder) DrawRectOutline(rect canvas.Rect, thick float64, c color.Color) {}

func (r *recorder) DrawCircle(center curvemaker.Pair, radius float64, c color.Color) {
	r.circles = append(r.circles, circle{center, radius, c})
}

// filler is a recorder able to fill polygons.
type filler struct {
	recorder
}

func (f *filler) FillPolygon(pts []curvemaker.Pair, c color.Color) {
	f.fills = append(f.fills, pts)
}

func TestArrow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Arrow{Base: curvemaker.P(10, 10), Direction: curvemaker.P(1, 0), Length: 100, HeadRadius: 20}
	assert.Equal(t, curvemaker.P(110, 10), a.Head())
	r := &recorder{}
	a.Draw(r, 3, colornames.Black)
	require.Equal(t, 3, r.lines)
	assert.Equal(t, [2]curvemaker.Pair{a.Base, a.Head()}, r.strokes[0])
	// head strokes point backwards at ±30° off the shaft
	for i, y := range []float64{0, 20} {
		from, to := r.strokes[i+1][0], r.strokes[i+1][1]
		assert.Equal(t, a.Head(), from)
		assert.InDelta(t, 110-20*math.Sqrt(3)/2, to.X(), 1e-3, "stroke %d", i+1)
		assert.InDelta(t, y, to.Y(), 1e-3, "stroke %d", i+1)
	}
}

func TestDraw(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := newTestEntity()
	click(e, 100, 100)
	click(e, 300, 200)
	r := &recorder{}
	e.Draw(r)
	// 2 axes + curve + 2 arrows
	assert.Equal(t, 2+DefaultStyle().Split+2*3, r.lines)
	require.Len(t, r.circles, 2)
	assert.Equal(t, at(e, 100, 100), r.circles[0].center)
	assert.Equal(t, 10.0, r.circles[0].radius)
	assert.Equal(t, colornames.Red, r.circles[0].color)
	press(e, 300, 200)
	r = &recorder{}
	e.Draw(r)
	require.Len(t, r.circles, 2)
	assert.Equal(t, 15.0, r.circles[1].radius)
	assert.Equal(t, colornames.Magenta, r.circles[1].color)
	assert.Empty(t, r.fills, "no fill color set")
}

func TestDrawSkipsDegenerateCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := newTestEntity()
	click(e, 100, 100)
	click(e, 300, 200)
	press(e, 200, 100)
	move(e, 100, 250) // vertical begin tangent
	r := &recorder{}
	e.Draw(r)
	assert.Equal(t, 2+2*3, r.lines)
	assert.Nil(t, e.FillRegions())
}

func TestFill(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	style := DefaultStyle()
	style.FillColor = Translucent(colornames.Cornflowerblue, 0x40)
	e := NewEntity(0, canvas.Rect{X: 0, Y: 0, W: 1000, H: 500}, style)
	f := &filler{}
	e.Draw(f)
	assert.Empty(t, f.fills, "nothing to fill without curves")
	click(e, 100, 100)
	click(e, 300, 200)
	regions := e.FillRegions()
	require.Len(t, regions, 1)
	assert.InDelta(t, 30000.0, regions[0].Area(), 1)
	lo, hi := regions[0].BoundingBox()
	assert.InDelta(t, 100.0, lo.X(), 1e-6)
	assert.InDelta(t, 0.0, lo.Y(), 1e-6)
	assert.InDelta(t, 300.0, hi.X(), 1e-6)
	assert.InDelta(t, 200.0, hi.Y(), 1e-6)
	e.Draw(f)
	require.Len(t, f.fills, 1)
	for _, p := range f.fills[0] {
		const eps = 1e-6
		assert.True(t, p.X() >= 100-eps && p.X() <= 900+eps && p.Y() >= 50-eps && p.Y() <= 450+eps, "%v outside of axes", p)
	}
	c, ok := style.FillColor.(color.NRGBA)
	require.True(t, ok)
	assert.Equal(t, uint8(0x40), c.A)
}
