// Package termcanvas renders the logical 320×240 surface onto a tcell screen.
// Every 8×16 block of logical pixels maps to one terminal cell.
package termcanvas

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/wificonnect/internal/canvas"
)

// Cell dimensions in logical pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Canvas implements canvas.Canvas on a tcell.Screen.
type Canvas struct {
	screen tcell.Screen
	size   canvas.Size
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Canvas {
	return &Canvas{
		screen: screen,
		size:   canvas.Size{W: canvas.ScreenWidth, H: canvas.ScreenHeight},
	}
}

// Screen returns the underlying tcell screen.
func (c *Canvas) Screen() tcell.Screen { return c.screen }

// Bounds implements canvas.Canvas.
func (c *Canvas) Bounds() canvas.Size { return c.size }

// MeasureText implements canvas.Canvas. Every font renders one cell high.
func (c *Canvas) MeasureText(text string, _ canvas.Font) canvas.Size {
	return canvas.Size{W: runewidth.StringWidth(text) * CellWidth, H: CellHeight}
}

// DrawText implements canvas.Canvas.
func (c *Canvas) DrawText(p canvas.Point, text string, font canvas.Font, fg, bg canvas.Color) {
	style := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
	if font == canvas.FontHuge || font == canvas.FontLogo || font == canvas.FontLarge {
		style = style.Bold(true)
	}
	col, row := toCol(p.X), toRow(p.Y)
	maxCol := toCol(c.size.W)
	for _, r := range text {
		if col >= maxCol {
			break
		}
		c.screen.SetContent(col, row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

// DrawRect implements canvas.Canvas.
func (c *Canvas) DrawRect(r canvas.Rect, col canvas.Color, border int) {
	c0, c1 := span(r.X, r.W, CellWidth)
	r0, r1 := span(r.Y, r.H, CellHeight)
	if border == 0 {
		style := tcell.StyleDefault.Background(tcellColor(col))
		for y := r0; y < r1; y++ {
			for x := c0; x < c1; x++ {
				c.screen.SetContent(x, y, ' ', nil, style)
			}
		}
		return
	}
	for x := c0; x < c1; x++ {
		c.stroke(x, r0, tcell.RuneHLine, col)
		c.stroke(x, r1-1, tcell.RuneHLine, col)
	}
	for y := r0; y < r1; y++ {
		c.stroke(c0, y, tcell.RuneVLine, col)
		c.stroke(c1-1, y, tcell.RuneVLine, col)
	}
	c.stroke(c0, r0, tcell.RuneULCorner, col)
	c.stroke(c1-1, r0, tcell.RuneURCorner, col)
	c.stroke(c0, r1-1, tcell.RuneLLCorner, col)
	c.stroke(c1-1, r1-1, tcell.RuneLRCorner, col)
}

// DrawCircle implements canvas.Canvas as a single dot glyph.
func (c *Canvas) DrawCircle(center canvas.Point, _ int, col canvas.Color) {
	c.stroke(toCol(center.X), toRow(center.Y), '●', col)
}

// Present implements canvas.Canvas.
func (c *Canvas) Present() error {
	c.screen.Show()
	return nil
}

// stroke draws r in col while keeping the cell's existing background.
func (c *Canvas) stroke(x, y int, r rune, col canvas.Color) {
	_, _, existing, _ := c.screen.GetContent(x, y)
	_, bg, _ := existing.Decompose()
	c.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(tcellColor(col)).Background(bg))
}

func toCol(x int) int { return (x + CellWidth/2) / CellWidth }
func toRow(y int) int { return (y + CellHeight/2) / CellHeight }

// span converts a pixel interval to a half-open cell interval at least one
// cell wide when length is positive.
func span(start, length, cell int) (int, int) {
	if length <= 0 {
		return 0, 0
	}
	a := (start + cell/2) / cell
	b := (start + length + cell/2) / cell
	if b <= a {
		b = a + 1
	}
	return a, b
}

func tcellColor(c canvas.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
