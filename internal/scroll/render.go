package scroll

import "github.com/muurk/wificonnect/internal/canvas"

// Item is one renderable list row.
type Item interface {
	// Measure returns the row's natural size.
	Measure(cv canvas.Canvas) canvas.Size
	// Draw renders the row into r over bg. r is as wide as the widest
	// visible row.
	Draw(cv canvas.Canvas, r canvas.Rect, bg canvas.Color)
}

// Style positions and colors a rendered list.
type Style struct {
	Origin     canvas.Point
	Background canvas.Color
	Highlight  canvas.Color
}

// Layout describes where a list was drawn.
type Layout struct {
	// Bounds covers every visible row; its width is the widest visible row.
	Bounds canvas.Rect
	// Rows holds one rectangle per visible row, top to bottom.
	Rows []canvas.Rect
	// Start is the index of the first visible item.
	Start int
}

// Measure computes the layout of the visible slice of items without drawing.
func Measure(cv canvas.Canvas, w *Window, items []Item) Layout {
	if w.Empty() || len(items) == 0 {
		return Layout{}
	}
	start, end := w.Visible()
	if end > len(items) {
		end = len(items)
	}

	sizes := make([]canvas.Size, 0, end-start)
	maxWidth := 0
	for _, it := range items[start:end] {
		sz := it.Measure(cv)
		if sz.W > maxWidth {
			maxWidth = sz.W
		}
		sizes = append(sizes, sz)
	}

	l := Layout{Start: start, Rows: make([]canvas.Rect, 0, len(sizes))}
	y := 0
	for _, sz := range sizes {
		l.Rows = append(l.Rows, canvas.Rect{X: 0, Y: y, W: maxWidth, H: sz.H})
		y += sz.H
	}
	l.Bounds = canvas.Rect{W: maxWidth, H: y}
	return l
}

// Render draws the visible slice of items at style.Origin. The list
// background is filled first, then the highlight behind the selected row,
// then each row. Nothing is drawn for an empty window.
func Render(cv canvas.Canvas, w *Window, items []Item, style Style) Layout {
	l := Measure(cv, w, items)
	if len(l.Rows) == 0 {
		return l
	}
	dx, dy := style.Origin.X, style.Origin.Y
	l.Bounds = l.Bounds.Offset(dx, dy)
	for i := range l.Rows {
		l.Rows[i] = l.Rows[i].Offset(dx, dy)
	}

	cv.DrawRect(l.Bounds, style.Background, 0)

	hl := w.Highlight()
	if hl >= 0 && hl < len(l.Rows) {
		cv.DrawRect(l.Rows[hl], style.Highlight, 0)
	}

	for i, r := range l.Rows {
		bg := style.Background
		if i == hl {
			bg = style.Highlight
		}
		items[l.Start+i].Draw(cv, r, bg)
	}
	return l
}

// Text is a plain single-line list row.
type Text struct {
	Label string
	Font  canvas.Font
	Color canvas.Color
	// PadX and PadY are added on each side of the label.
	PadX, PadY int
}

// Measure implements Item.
func (t Text) Measure(cv canvas.Canvas) canvas.Size {
	sz := cv.MeasureText(t.Label, t.Font)
	return canvas.Size{W: sz.W + 2*t.PadX, H: sz.H + 2*t.PadY}
}

// Draw implements Item.
func (t Text) Draw(cv canvas.Canvas, r canvas.Rect, bg canvas.Color) {
	cv.DrawText(canvas.Point{X: r.X + t.PadX, Y: r.Y + t.PadY}, t.Label, t.Font, t.Color, bg)
}
