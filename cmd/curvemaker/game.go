package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/npillmayer/curvemaker/canvas"
	"github.com/npillmayer/curvemaker/editor"
)

// Game runs a grid of independent spline editors.
type Game struct {
	settings   Settings
	background color.Color
	editors    []*editor.Entity
	input      editor.Input
}

// NewGame creates editors for all cells of the grid configured in s.
func NewGame(s Settings, style editor.Style) *Game {
	g := &Game{
		settings:   s,
		background: s.BackgroundColor(),
		input:      mouse{},
	}
	for i, rect := range gridRects(s) {
		g.editors = append(g.editors, editor.NewEntity(i, rect, style))
	}
	return g
}

// gridRects splits the window into a grid of editor rectangles, separated
// by s.Margin and inset by half a margin from the window border.
func gridRects(s Settings) []canvas.Rect {
	cellW := float64(s.Width) / float64(s.Columns)
	cellH := float64(s.Height) / float64(s.Rows)
	half := s.Margin / 2
	rects := make([]canvas.Rect, 0, s.Columns*s.Rows)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Columns; col++ {
			rects = append(rects, canvas.Rect{
				X: float64(col)*cellW + half,
				Y: float64(row)*cellH + half,
				W: cellW - s.Margin,
				H: cellH - s.Margin,
			})
		}
	}
	return rects
}

// Update is part of interface ebiten.Game.
func (g *Game) Update() error {
	for _, e := range g.editors {
		e.Step(g.input)
	}
	return nil
}

// Draw is part of interface ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	r := screenRenderer{screen: screen}
	for _, e := range g.editors {
		e.Draw(r)
	}
}

// Layout is part of interface ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Width, g.settings.Height
}
