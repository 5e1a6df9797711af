package keyboard

// Direction is a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Cursor is the focused key position over a Layout.
//
// Invariant: 0 <= row < RowCount and 0 <= col < Columns(row) after every
// operation. Vertical moves clamp at the first and last row; horizontal
// moves wrap within the current row only.
type Cursor struct {
	layout *Layout
	row    int
	col    int
}

// NewCursor returns a cursor at (0, 0) on layout.
func NewCursor(layout *Layout) *Cursor {
	return &Cursor{layout: layout}
}

// Row returns the focused row.
func (c *Cursor) Row() int { return c.row }

// Column returns the focused column.
func (c *Cursor) Column() int { return c.col }

// Layout returns the active layout.
func (c *Cursor) Layout() *Layout { return c.layout }

// Move applies d.
func (c *Cursor) Move(d Direction) {
	switch d {
	case Up:
		c.MoveUp()
	case Down:
		c.MoveDown()
	case Left:
		c.MoveLeft()
	case Right:
		c.MoveRight()
	}
}

// MoveUp moves one row up, stopping at the first row.
func (c *Cursor) MoveUp() {
	if c.row > 0 {
		c.row--
	}
	c.clampColumn()
}

// MoveDown moves one row down, stopping at the last row.
func (c *Cursor) MoveDown() {
	if c.row < c.layout.RowCount()-1 {
		c.row++
	}
	c.clampColumn()
}

// MoveLeft moves one column left, wrapping to the end of the same row.
func (c *Cursor) MoveLeft() {
	n := c.layout.Columns(c.row)
	c.col = ((c.col-1)%n + n) % n
}

// MoveRight moves one column right, wrapping to the start of the same row.
func (c *Cursor) MoveRight() {
	n := c.layout.Columns(c.row)
	c.col = (c.col + 1) % n
}

// SwapLayout replaces the active layout and re-clamps the position. The row
// is clamped before the column because the column bound depends on it.
func (c *Cursor) SwapLayout(layout *Layout) {
	c.layout = layout
	c.clampRow()
	c.clampColumn()
}

// Reset moves the cursor to (0, 0) on layout.
func (c *Cursor) Reset(layout *Layout) {
	c.layout = layout
	c.row, c.col = 0, 0
}

// CurrentKey returns the focused label. An empty result means the slot is a
// placeholder and selecting it does nothing.
func (c *Cursor) CurrentKey() string {
	return c.layout.Key(c.row, c.col)
}

func (c *Cursor) clampRow() {
	if last := c.layout.RowCount() - 1; c.row > last {
		c.row = last
	}
	if c.row < 0 {
		c.row = 0
	}
}

func (c *Cursor) clampColumn() {
	if last := c.layout.Columns(c.row) - 1; c.col > last {
		c.col = last
	}
	if c.col < 0 {
		c.col = 0
	}
}
