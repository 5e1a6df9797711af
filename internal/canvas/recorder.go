package canvas

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpCircle
	OpPresent
)

// Op is one recorded Canvas call.
type Op struct {
	Kind   OpKind
	Rect   Rect
	Text   string
	Font   Font
	FG     Color
	BG     Color
	Border int
}

// String renders op in a compact form for test failure messages.
func (op Op) String() string {
	switch op.Kind {
	case OpText:
		return fmt.Sprintf("text(%d,%d %q)", op.Rect.X, op.Rect.Y, op.Text)
	case OpRect:
		return fmt.Sprintf("rect(%d,%d %dx%d c=%d b=%d)", op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, op.FG, op.Border)
	case OpCircle:
		return fmt.Sprintf("circle(%d,%d r=%d)", op.Rect.X, op.Rect.Y, op.Rect.W)
	case OpPresent:
		return "present"
	}
	return "?"
}

// Recorder is a Canvas that records calls instead of drawing.
// Text is measured with fixed per-font advances so layouts are deterministic.
type Recorder struct {
	Size     Size
	Ops      []Op
	Presents int
}

// NewRecorder returns a Recorder with the device screen size.
func NewRecorder() *Recorder {
	return &Recorder{Size: Size{W: ScreenWidth, H: ScreenHeight}}
}

// Bounds implements Canvas.
func (r *Recorder) Bounds() Size { return r.Size }

// MeasureText implements Canvas.
func (r *Recorder) MeasureText(text string, font Font) Size {
	adv, h := recorderMetrics(font)
	return Size{W: utf8.RuneCountInString(text) * adv, H: h}
}

// DrawText implements Canvas.
func (r *Recorder) DrawText(p Point, text string, font Font, fg, bg Color) {
	sz := r.MeasureText(text, font)
	r.Ops = append(r.Ops, Op{Kind: OpText, Rect: Rect{X: p.X, Y: p.Y, W: sz.W, H: sz.H}, Text: text, Font: font, FG: fg, BG: bg})
}

// DrawRect implements Canvas.
func (r *Recorder) DrawRect(rect Rect, c Color, border int) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: rect, FG: c, Border: border})
}

// DrawCircle implements Canvas.
func (r *Recorder) DrawCircle(center Point, radius int, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Rect: Rect{X: center.X, Y: center.Y, W: radius, H: radius}, FG: c})
}

// Present implements Canvas.
func (r *Recorder) Present() error {
	r.Presents++
	r.Ops = append(r.Ops, Op{Kind: OpPresent})
	return nil
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.Presents = 0
}

// Texts returns the text of every recorded DrawText call in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether any DrawText call drew exactly text.
func (r *Recorder) HasText(text string) bool {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == text {
			return true
		}
	}
	return false
}

// HasTextContaining reports whether any DrawText call contained sub.
func (r *Recorder) HasTextContaining(sub string) bool {
	for _, op := range r.Ops {
		if op.Kind == OpText && strings.Contains(op.Text, sub) {
			return true
		}
	}
	return false
}

// FindText returns the first DrawText op that drew text.
func (r *Recorder) FindText(text string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == text {
			return op, true
		}
	}
	return Op{}, false
}

// IndexOf returns the index of the first op matching pred, or -1.
func (r *Recorder) IndexOf(pred func(Op) bool) int {
	for i, op := range r.Ops {
		if pred(op) {
			return i
		}
	}
	return -1
}

func recorderMetrics(font Font) (advance, height int) {
	switch font {
	case FontTiny:
		return 5, 9
	case FontSmall:
		return 6, 12
	case FontMonoSmall:
		return 6, 13
	case FontMedium:
		return 7, 14
	case FontLarge:
		return 9, 19
	case FontHuge:
		return 27, 56
	case FontLogo:
		return 16, 28
	default:
		return 7, 14
	}
}
