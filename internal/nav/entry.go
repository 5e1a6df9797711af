package nav

import (
	"context"

	"github.com/muurk/wificonnect/internal/canvas"
	"github.com/muurk/wificonnect/internal/input"
	"github.com/muurk/wificonnect/internal/keyboard"
	"github.com/muurk/wificonnect/internal/netconf"
	"go.uber.org/zap"
)

// entryScreen is a soft keyboard session. parent is the state restored on
// cancel.
type entryScreen struct {
	parent State
	entry  *keyboard.Entry
	cursor *keyboard.Cursor
}

func (n *Navigator) openEntry(kind keyboard.Kind, ssid string, layout *keyboard.Layout, parent State) {
	n.entry = &entryScreen{
		parent: parent,
		entry:  keyboard.NewEntry(kind, ssid, n.opts.ShrinkThreshold),
		cursor: keyboard.NewCursor(layout),
	}
	n.log.Debug("text entry started",
		zap.Stringer("kind", kind),
		zap.String("ssid", ssid),
		zap.Stringer("layout", layout.Mode()))
	n.transition(parent, StateTextEntry, "enter "+kind.String())
}

// closeEntry ends the session and discards everything typed.
func (n *Navigator) closeEntry(reason string) {
	e := n.entry
	e.entry.Clear()
	e.cursor.Reset(keyboard.Normal)
	n.entry = nil
	n.transition(StateTextEntry, e.parent, reason)
}

func (n *Navigator) handleEntry(ctx context.Context, b input.Button) {
	e := n.entry
	switch b {
	case input.Up:
		e.cursor.MoveUp()
	case input.Down:
		e.cursor.MoveDown()
	case input.Left:
		e.cursor.MoveLeft()
	case input.Right:
		e.cursor.MoveRight()
	case input.A:
		e.entry.Append(e.cursor.CurrentKey())
	case input.B:
		e.entry.Space()
	case input.X:
		e.entry.Delete()
	case input.Y:
		e.cursor.SwapLayout(keyboard.Next(e.cursor.Layout()))
	case input.Select:
		n.closeEntry("canceled")
	case input.Start:
		n.commitEntry(ctx)
	}
}

// commitEntry finishes the session. An SSID continues into key entry for
// that network; a key is saved, the lists are closed and a connect attempt
// follows.
func (n *Navigator) commitEntry(ctx context.Context) {
	e := n.entry
	text := e.entry.Text()
	kind := e.entry.Kind()
	ssid := e.entry.SSID()
	hex := e.cursor.Layout().Mode() == keyboard.ModeHex

	n.closeEntry("finished")
	n.closeList("text entry finished")

	if kind == keyboard.KindSSID {
		if text == "" {
			return
		}
		n.openEntry(keyboard.KindKey, text, keyboard.Normal, StateMain)
		return
	}

	rec := netconf.Record{SSID: ssid, Passphrase: text}
	switch {
	case text == "":
	case hex:
		rec.Encryption = netconf.EncryptionWEP
	default:
		rec.Encryption = netconf.EncryptionWPA2
	}
	n.saveAndConnect(ctx, rec)
}

// Keyboard geometry.
const (
	keyLeft  = 32
	keyTop   = 136
	keySize  = 16
	keyPitch = 20
)

var (
	entryLabel = canvas.Rect{X: 0, Y: 35, W: canvas.ScreenWidth, H: 20}
	entryInput = canvas.Rect{X: 0, Y: 55, W: canvas.ScreenWidth, H: 45}
)

func (s *entryScreen) draw(cv canvas.Canvas) {
	label := "Enter network key"
	if s.entry.Kind() == keyboard.KindSSID {
		label = "Enter new SSID"
	}
	cv.DrawRect(entryLabel, canvas.ColorWhite, 0)
	canvas.TextCentered(cv, entryLabel, label, canvas.FontLarge, canvas.ColorLightBG, canvas.ColorWhite)

	cv.DrawRect(canvas.Rect{X: 0, Y: 100, W: canvas.ScreenWidth, H: 34}, canvas.ColorDarkBG, 0)

	cv.DrawRect(entryInput, canvas.ColorWhite, 0)
	font := canvas.FontMonoSmall
	if s.entry.DisplaySize() == keyboard.SizeShrunk {
		font = canvas.FontTiny
	}
	canvas.TextCentered(cv, entryInput, "[ "+s.entry.Text()+" ]", font, canvas.ColorBlack, canvas.ColorWhite)

	drawKeyboard(cv, s.cursor)
}

func drawKeyboard(cv canvas.Canvas, c *keyboard.Cursor) {
	cv.DrawRect(canvas.Rect{X: 0, Y: 134, W: canvas.ScreenWidth, H: 106}, canvas.ColorDarkBG, 0)

	cv.DrawRect(canvas.Rect{X: 0, Y: 224, W: canvas.ScreenWidth, H: 16}, canvas.ColorLightBG, 0)
	cv.DrawRect(canvas.Rect{X: 0, Y: 223, W: canvas.ScreenWidth, H: 1}, canvas.ColorWhite, 0)
	drawHint(cv, "select", "Cancel", 4, 227, canvas.ColorLightBG)
	drawHint(cv, "start", "Finish", 75, 227, canvas.ColorLightBG)
	drawHint(cv, "x", "Delete", 155, 227, canvas.ColorLightBG)
	drawHint(cv, "y", "Shift", 200, 227, canvas.ColorLightBG)
	drawHint(cv, "a", "Enter", 285, 227, canvas.ColorLightBG)

	layout := c.Layout()
	for row := 0; row < layout.RowCount(); row++ {
		for col, label := range layout.Row(row) {
			if label == "" {
				continue
			}
			box := keyRect(row, col)
			cv.DrawRect(box, canvas.ColorLightBG, 0)
			canvas.TextCentered(cv, box.Offset(0, -1), label, canvas.FontMedium, canvas.ColorWhite, canvas.ColorLightBG)
		}
	}

	sel := keyRect(c.Row(), c.Column())
	cv.DrawRect(canvas.Rect{X: sel.X, Y: sel.Y, W: keySize + 1, H: keySize + 1}, canvas.ColorWhite, 1)
}

func keyRect(row, col int) canvas.Rect {
	return canvas.Rect{X: keyLeft + col*keyPitch, Y: keyTop + row*keyPitch, W: keySize, H: keySize}
}
