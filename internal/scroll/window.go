// Package scroll holds the windowing rule shared by every list on screen:
// which slice of a long list is visible and where the selection sits in it.
package scroll

// DefaultSize is the number of rows a list shows at once.
const DefaultSize = 5

// Window tracks a selection over total items of which size are visible.
// The visible range and highlight are derived on demand and never stored.
type Window struct {
	total    int
	selected int
	size     int
}

// New returns a window over total items with the selection at 0.
// A size below 1 uses DefaultSize.
func New(total, size int) *Window {
	if size < 1 {
		size = DefaultSize
	}
	if total < 0 {
		total = 0
	}
	return &Window{total: total, size: size}
}

// Total returns the item count.
func (w *Window) Total() int { return w.total }

// Size returns the visible row count.
func (w *Window) Size() int { return w.size }

// Selected returns the selected index, or -1 when the list is empty.
func (w *Window) Selected() int {
	if w.total == 0 {
		return -1
	}
	return w.selected
}

// Empty reports whether the list has no items.
func (w *Window) Empty() bool { return w.total == 0 }

// SetTotal changes the item count and clamps the selection into range.
func (w *Window) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	w.total = total
	w.Select(w.selected)
}

// Select moves the selection to i, clamped to [0, total-1].
func (w *Window) Select(i int) {
	switch {
	case w.total == 0:
		w.selected = 0
	case i < 0:
		w.selected = 0
	case i >= w.total:
		w.selected = w.total - 1
	default:
		w.selected = i
	}
}

// Move shifts the selection by delta without wrapping. It reports whether
// the selection changed.
func (w *Window) Move(delta int) bool {
	before := w.selected
	w.Select(w.selected + delta)
	return w.selected != before
}

// pivot is the row the selection is held at while scrolling through the
// middle of the list.
func (w *Window) pivot() int {
	return (w.size - 1) / 2
}

// Visible returns the half-open range [start, end) of items on screen.
//
// Near the top the first size items are shown; near the bottom the last
// size items; otherwise the selection is held at the pivot row.
func (w *Window) Visible() (start, end int) {
	if w.total == 0 {
		return 0, 0
	}
	if w.total <= w.size {
		return 0, w.total
	}
	p := w.pivot()
	switch {
	case w.selected <= p:
		return 0, w.size
	case w.selected >= w.total-(w.size-p):
		return w.total - w.size, w.total
	default:
		start = w.selected - p
		return start, start + w.size
	}
}

// Highlight returns the selection's row within the visible range, or -1
// when the list is empty.
func (w *Window) Highlight() int {
	if w.total == 0 {
		return -1
	}
	start, _ := w.Visible()
	return w.selected - start
}
