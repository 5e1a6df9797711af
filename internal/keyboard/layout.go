// Package keyboard implements the on-screen soft keyboard: static key
// layouts, a focus cursor that stays valid across ragged rows, and the text
// buffer the selected keys accumulate into.
package keyboard

import "fmt"

// Mode names a keyboard layout.
type Mode int

const (
	ModeNormal Mode = iota
	ModeShift
	ModeHex
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeShift:
		return "shift"
	case ModeHex:
		return "hex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Layout is an immutable grid of key labels. Rows may have different
// lengths. An empty label is a placeholder slot that cannot be selected.
type Layout struct {
	mode Mode
	rows [][]string
}

// NewLayout builds a layout from rows of labels. It panics on an empty
// layout or an empty row since those would leave the cursor nowhere to go.
func NewLayout(mode Mode, rows [][]string) *Layout {
	if len(rows) == 0 {
		panic("keyboard: layout needs at least one row")
	}
	copied := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			panic(fmt.Sprintf("keyboard: row %d of %s layout is empty", i, mode))
		}
		copied[i] = append([]string(nil), row...)
	}
	return &Layout{mode: mode, rows: copied}
}

// runeRows splits each string into single-character labels.
func runeRows(rows ...string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		labels := make([]string, 0, len(r))
		for _, ch := range r {
			labels = append(labels, string(ch))
		}
		out = append(out, labels)
	}
	return out
}

// Built-in layouts.
var (
	Normal = NewLayout(ModeNormal, runeRows(
		"`1234567890-=",
		`qwertyuiop[]\`,
		`asdfghjkl;'`,
		"zxcvbnm,./",
	))
	Shift = NewLayout(ModeShift, runeRows(
		"~!@#$%^&*()_+",
		"QWERTYUIOP{}|",
		`ASDFGHJKL:"`,
		"ZXCVBNM<>?",
	))
	Hex = NewLayout(ModeHex, runeRows(
		"1234",
		"5678",
		"90AB",
		"CDEF",
	))
)

// Mode returns the layout's mode.
func (l *Layout) Mode() Mode { return l.mode }

// RowCount returns the number of rows.
func (l *Layout) RowCount() int { return len(l.rows) }

// Columns returns the number of slots in row, or 0 when row is out of range.
func (l *Layout) Columns(row int) int {
	if row < 0 || row >= len(l.rows) {
		return 0
	}
	return len(l.rows[row])
}

// Key returns the label at (row, col), or "" when out of range.
func (l *Layout) Key(row, col int) string {
	if col < 0 || col >= l.Columns(row) {
		return ""
	}
	return l.rows[row][col]
}

// Row returns a copy of the labels in row.
func (l *Layout) Row(row int) []string {
	if row < 0 || row >= len(l.rows) {
		return nil
	}
	return append([]string(nil), l.rows[row]...)
}

// Next returns the layout the "cycle" button switches to. Normal and shift
// alternate; the hex layout has no partner and returns itself.
func Next(l *Layout) *Layout {
	switch l.mode {
	case ModeNormal:
		return Shift
	case ModeShift:
		return Normal
	default:
		return l
	}
}
