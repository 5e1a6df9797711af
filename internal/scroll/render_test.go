package scroll

import (
	"fmt"
	"strings"
	"testing"

	"github.com/muurk/wificonnect/internal/canvas"
)

func textItems(labels ...string) []Item {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = Text{Label: l, Font: canvas.FontMedium, Color: canvas.ColorActiveText, PadX: 2, PadY: 1}
	}
	return items
}

func TestRenderDrawsOnlyVisibleItems(t *testing.T) {
	labels := make([]string, 12)
	for i := range labels {
		labels[i] = fmt.Sprintf("item%d", i)
	}
	rec := canvas.NewRecorder()
	w := New(len(labels), 5)
	w.Select(6)

	Render(rec, w, textItems(labels...), Style{Background: canvas.ColorDarkBG, Highlight: canvas.ColorActiveSelection})

	got := rec.Texts()
	want := []string{"item4", "item5", "item6", "item7", "item8"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Texts() = %v, want %v", got, want)
	}
}

func TestRenderWidthFromVisibleItemsOnly(t *testing.T) {
	items := textItems("a", "bb", "ccc", "dd", "e", strings.Repeat("x", 40))
	rec := canvas.NewRecorder()
	w := New(len(items), 5)

	l := Render(rec, w, items, Style{Origin: canvas.Point{X: 10, Y: 40}})

	wantW := rec.MeasureText("ccc", canvas.FontMedium).W + 4
	if l.Bounds.W != wantW {
		t.Errorf("Bounds.W = %d, want %d", l.Bounds.W, wantW)
	}
	if l.Bounds.X != 10 || l.Bounds.Y != 40 {
		t.Errorf("Bounds origin = (%d,%d), want (10,40)", l.Bounds.X, l.Bounds.Y)
	}
	for _, r := range l.Rows {
		if r.W != wantW {
			t.Errorf("row width = %d, want %d", r.W, wantW)
		}
	}
}

func TestRenderRowsStackVertically(t *testing.T) {
	items := []Item{
		Text{Label: "small", Font: canvas.FontSmall},
		Text{Label: "large", Font: canvas.FontLarge},
		Text{Label: "tiny", Font: canvas.FontTiny},
	}
	rec := canvas.NewRecorder()
	l := Render(rec, New(3, 5), items, Style{})

	y := 0
	for i, r := range l.Rows {
		if r.Y != y {
			t.Errorf("row %d Y = %d, want %d", i, r.Y, y)
		}
		y += r.H
	}
	if l.Bounds.H != y {
		t.Errorf("Bounds.H = %d, want %d", l.Bounds.H, y)
	}
}

func TestRenderOrdering(t *testing.T) {
	rec := canvas.NewRecorder()
	w := New(3, 5)
	w.Select(1)

	l := Render(rec, w, textItems("one", "two", "three"), Style{Background: canvas.ColorDarkBG, Highlight: canvas.ColorActiveSelection})

	bgIdx := rec.IndexOf(func(op canvas.Op) bool {
		return op.Kind == canvas.OpRect && op.FG == canvas.ColorDarkBG && op.Rect == l.Bounds
	})
	hlIdx := rec.IndexOf(func(op canvas.Op) bool {
		return op.Kind == canvas.OpRect && op.FG == canvas.ColorActiveSelection && op.Rect == l.Rows[1]
	})
	firstText := rec.IndexOf(func(op canvas.Op) bool { return op.Kind == canvas.OpText })

	if bgIdx < 0 || hlIdx < 0 || firstText < 0 {
		t.Fatalf("missing ops: background=%d highlight=%d text=%d\n%v", bgIdx, hlIdx, firstText, rec.Ops)
	}
	if !(bgIdx < hlIdx && hlIdx < firstText) {
		t.Errorf("draw order background=%d highlight=%d text=%d, want increasing", bgIdx, hlIdx, firstText)
	}

	op, _ := rec.FindText("two")
	if op.BG != canvas.ColorActiveSelection {
		t.Errorf("selected row drawn over %v, want highlight", op.BG)
	}
}

func TestRenderEmptyIsNoop(t *testing.T) {
	rec := canvas.NewRecorder()
	l := Render(rec, New(0, 5), nil, Style{})
	if len(rec.Ops) != 0 {
		t.Errorf("Ops = %v, want none", rec.Ops)
	}
	if len(l.Rows) != 0 {
		t.Errorf("Rows = %v, want none", l.Rows)
	}
}
