package keyboard

import (
	"math/rand"
	"strings"
	"testing"
)

func TestBuiltinLayoutShapes(t *testing.T) {
	tests := []struct {
		name   string
		layout *Layout
		cols   []int
	}{
		{"normal", Normal, []int{13, 13, 11, 10}},
		{"shift", Shift, []int{13, 13, 11, 10}},
		{"hex", Hex, []int{4, 4, 4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.RowCount(); got != len(tt.cols) {
				t.Fatalf("RowCount() = %d, want %d", got, len(tt.cols))
			}
			for row, want := range tt.cols {
				if got := tt.layout.Columns(row); got != want {
					t.Errorf("Columns(%d) = %d, want %d", row, got, want)
				}
			}
		})
	}
}

func TestNextLayout(t *testing.T) {
	if Next(Normal) != Shift {
		t.Error("Next(Normal) should be Shift")
	}
	if Next(Shift) != Normal {
		t.Error("Next(Shift) should be Normal")
	}
	if Next(Hex) != Hex {
		t.Error("Next(Hex) should stay Hex")
	}
}

func TestCursorClampInvariant(t *testing.T) {
	ragged := NewLayout(ModeNormal, [][]string{
		{"a", "b", "c", "d", "e"},
		{"f", "g"},
		{"h", "i", "j", "k"},
		{"l"},
	})
	layouts := []*Layout{Normal, Shift, Hex, ragged}

	rng := rand.New(rand.NewSource(42))
	c := NewCursor(Normal)
	for i := 0; i < 5000; i++ {
		switch op := rng.Intn(5); op {
		case 4:
			c.SwapLayout(layouts[rng.Intn(len(layouts))])
		default:
			c.Move(Direction(op))
		}

		l := c.Layout()
		if c.Row() < 0 || c.Row() >= l.RowCount() {
			t.Fatalf("step %d: row %d out of range [0,%d)", i, c.Row(), l.RowCount())
		}
		if c.Column() < 0 || c.Column() >= l.Columns(c.Row()) {
			t.Fatalf("step %d: column %d out of range [0,%d) on row %d", i, c.Column(), l.Columns(c.Row()), c.Row())
		}
	}
}

func TestCursorRaggedRowClamp(t *testing.T) {
	c := NewCursor(Normal)
	c.MoveDown()
	c.MoveLeft() // wraps to the last column of row 1

	if c.Row() != 1 || c.Column() != 12 {
		t.Fatalf("position = (%d,%d), want (1,12)", c.Row(), c.Column())
	}
	if got := c.CurrentKey(); got != `\` {
		t.Errorf("CurrentKey() = %q, want %q", got, `\`)
	}

	c.MoveDown()
	if c.Row() != 2 {
		t.Fatalf("Row() = %d, want 2", c.Row())
	}
	if want := Normal.Columns(2) - 1; c.Column() != want {
		t.Errorf("Column() = %d, want %d", c.Column(), want)
	}
	if got := c.CurrentKey(); got != "'" {
		t.Errorf("CurrentKey() = %q, want %q", got, "'")
	}
}

func TestCursorVerticalClampsAtEdges(t *testing.T) {
	c := NewCursor(Normal)
	c.MoveUp()
	if c.Row() != 0 {
		t.Errorf("MoveUp at top: Row() = %d, want 0", c.Row())
	}

	for i := 0; i < 10; i++ {
		c.MoveDown()
	}
	if c.Row() != 3 {
		t.Errorf("MoveDown past bottom: Row() = %d, want 3", c.Row())
	}
}

func TestCursorHorizontalWrapsWithinRow(t *testing.T) {
	c := NewCursor(Hex)
	c.MoveDown()
	for i := 0; i < 4; i++ {
		c.MoveRight()
	}
	if c.Row() != 1 || c.Column() != 0 {
		t.Errorf("after full wrap position = (%d,%d), want (1,0)", c.Row(), c.Column())
	}
	c.MoveLeft()
	if c.Column() != 3 {
		t.Errorf("MoveLeft from column 0: Column() = %d, want 3", c.Column())
	}
}

func TestSwapLayoutClampsRowThenColumn(t *testing.T) {
	c := NewCursor(Normal)
	for i := 0; i < 3; i++ {
		c.MoveDown()
	}
	c.MoveLeft() // (3, 9)

	c.SwapLayout(Hex)
	if c.Row() != 3 || c.Column() != 3 {
		t.Errorf("position = (%d,%d), want (3,3)", c.Row(), c.Column())
	}

	small := NewLayout(ModeNormal, [][]string{{"x", "y"}})
	c.SwapLayout(small)
	if c.Row() != 0 || c.Column() != 1 {
		t.Errorf("position = (%d,%d), want (0,1)", c.Row(), c.Column())
	}
}

func TestCursorPlaceholderKey(t *testing.T) {
	l := NewLayout(ModeNormal, [][]string{{"a", "", "b"}})
	c := NewCursor(l)
	c.MoveRight()
	if got := c.CurrentKey(); got != "" {
		t.Errorf("CurrentKey() = %q, want empty placeholder", got)
	}

	e := NewEntry(KindKey, "net", 0)
	if e.Append(c.CurrentKey()) {
		t.Error("Append(placeholder) should be a no-op")
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d, want 0", e.Len())
	}
}

func TestEntryOverflowShrinksFont(t *testing.T) {
	e := NewEntry(KindKey, "net", DefaultShrinkThreshold)
	for i := 0; i < 20; i++ {
		e.Append("a")
		if e.DisplaySize() != SizeNormal {
			t.Fatalf("len %d: DisplaySize() = %v, want normal", e.Len(), e.DisplaySize())
		}
	}

	e.Append("a")
	if e.Len() != 21 {
		t.Fatalf("Len() = %d, want 21", e.Len())
	}
	if e.DisplaySize() != SizeShrunk {
		t.Errorf("len 21: DisplaySize() = %v, want shrunk", e.DisplaySize())
	}

	e.Delete()
	if e.DisplaySize() != SizeNormal {
		t.Errorf("len 20: DisplaySize() = %v, want normal", e.DisplaySize())
	}
}

func TestEntryEditing(t *testing.T) {
	e := NewEntry(KindSSID, "", 0)
	e.Append("M")
	e.Append("y")
	e.Space()
	e.Append("A")
	e.Append("P")
	if got := e.Text(); got != "My AP" {
		t.Errorf("Text() = %q, want %q", got, "My AP")
	}

	e.Delete()
	if got := e.Text(); got != "My A" {
		t.Errorf("Text() after Delete = %q, want %q", got, "My A")
	}

	e.Clear()
	if e.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", e.Len())
	}
	if e.Delete() {
		t.Error("Delete() on empty buffer should report false")
	}
}

func TestEntrySetTextRecomputesSize(t *testing.T) {
	e := NewEntry(KindKey, "net", 0)
	e.SetText(strings.Repeat("k", 30))
	if e.DisplaySize() != SizeShrunk {
		t.Errorf("DisplaySize() = %v, want shrunk", e.DisplaySize())
	}
	e.SetText("short")
	if e.DisplaySize() != SizeNormal {
		t.Errorf("DisplaySize() = %v, want normal", e.DisplaySize())
	}
}
