package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/npillmayer/curvemaker"
	"github.com/npillmayer/curvemaker/canvas"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	// sampling the interior keeps texture edges from bleeding into fills
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

// fillOptions fills with the non-zero winding rule. Triangles of a
// concave polygon overlap, and plain drawing would cover the overlaps
// and the area outside the polygon.
var fillOptions = ebiten.DrawTrianglesOptions{
	FillRule:       ebiten.FillRuleNonZero,
	AntiAlias:      true,
	ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
}

func init() {
	whiteImage.Fill(color.White)
}

// screenRenderer draws onto an ebiten image.
type screenRenderer struct {
	screen *ebiten.Image
}

func (r screenRenderer) DrawLine(p0, p1 curvemaker.Pair, thick float64, c color.Color) {
	vector.StrokeLine(r.screen, float32(p0.X()), float32(p0.Y()), float32(p1.X()), float32(p1.Y()),
		float32(thick), c, true)
}

func (r screenRenderer) DrawCircle(center curvemaker.Pair, radius float64, c color.Color) {
	vector.DrawFilledCircle(r.screen, float32(center.X()), float32(center.Y()), float32(radius), c, true)
}

func (r screenRenderer) DrawRect(rect canvas.Rect, c color.Color) {
	vector.DrawFilledRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

func (r screenRenderer) DrawRectOutline(rect canvas.Rect, thick float64, c color.Color) {
	// StrokeRect centers the stroke on the rectangle's edges
	in := rect.Inset(thick / 2)
	vector.StrokeRect(r.screen, float32(in.X), float32(in.Y), float32(in.W), float32(in.H), float32(thick), c, false)
}

// FillPolygon fills a simple polygon with a (possibly translucent) color.
func (r screenRenderer) FillPolygon(pts []curvemaker.Pair, c color.Color) {
	vs, is := fillVertices(pts, c)
	if len(is) == 0 {
		return
	}
	op := fillOptions
	r.screen.DrawTriangles(vs, is, whiteSubImage, &op)
}

// fillVertices triangulates the outline pts for a fill with color c.
func fillVertices(pts []curvemaker.Pair, c color.Color) ([]ebiten.Vertex, []uint16) {
	if len(pts) < 3 {
		return nil, nil
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X()), float32(pts[0].Y()))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X()), float32(p.Y()))
	}
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	return vs, is
}

// mouse reads the primary mouse button and the cursor position.
type mouse struct{}

func (mouse) PointerPosition() curvemaker.Pair {
	x, y := ebiten.CursorPosition()
	return curvemaker.P(float64(x), float64(y))
}

func (mouse) ButtonPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (mouse) ButtonReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
