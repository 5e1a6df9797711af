package nav

import (
	"context"
	"errors"
	"fmt"

	"github.com/muurk/wificonnect/internal/canvas"
	"github.com/muurk/wificonnect/internal/input"
	"github.com/muurk/wificonnect/internal/keyboard"
	"github.com/muurk/wificonnect/internal/netconf"
	"github.com/muurk/wificonnect/internal/network"
	"github.com/muurk/wificonnect/internal/scroll"
	"go.uber.org/zap"
)

var listOrigin = canvas.Point{X: 116, Y: 40}

// minRowWidth keeps room for the quality column on short SSIDs.
const minRowWidth = canvas.ScreenWidth - 116 - 3

type listRow struct {
	ssid       string
	quality    int
	encryption network.Encryption
}

// listScreen is the scanned or saved network list drawn beside the main menu.
type listScreen struct {
	state State
	win   *scroll.Window
	rows  []listRow
}

// signalLevel buckets quality into 0..3 bars, or -1 when no icon is shown.
func signalLevel(quality int) int {
	switch {
	case quality >= 75:
		return 3
	case quality >= 50:
		return 2
	case quality >= 25:
		return 1
	case quality >= 6:
		return 0
	default:
		return -1
	}
}

// networkItem renders one list row: SSID on top, quality percentage and a
// signal icon aligned to the row's right edge.
type networkItem struct {
	row listRow
}

func (it networkItem) Measure(cv canvas.Canvas) canvas.Size {
	sz := cv.MeasureText(it.row.ssid, canvas.FontMonoSmall)
	w := sz.W + 2*15
	if w < minRowWidth {
		w = minRowWidth
	}
	return canvas.Size{W: w, H: sz.H + 2*6 + 5}
}

func (it networkItem) Draw(cv canvas.Canvas, r canvas.Rect, bg canvas.Color) {
	cv.DrawText(canvas.Point{X: r.X + 2, Y: r.Y}, it.row.ssid, canvas.FontMonoSmall, canvas.ColorActiveText, bg)
	if it.row.quality == network.QualityUnknown {
		return
	}
	pct := fmt.Sprintf("%4s", fmt.Sprintf("%d%%", it.row.quality))
	cv.DrawText(canvas.Point{X: r.X + 137, Y: r.Y + 18}, pct, canvas.FontSmall, canvas.ColorLightGrey, bg)
	drawSignal(cv, canvas.Point{X: r.Right() - signalWidth - 3, Y: r.Y + 13}, signalLevel(it.row.quality))
}

const signalWidth = 4*3 + 3

// drawSignal draws four rising bars with level+1 of them lit.
func drawSignal(cv canvas.Canvas, p canvas.Point, level int) {
	if level < 0 {
		return
	}
	for i := 0; i < 4; i++ {
		h := 4 + 3*i
		c := canvas.ColorLightBG
		if i <= level {
			c = canvas.ColorWhite
		}
		cv.DrawRect(canvas.Rect{X: p.X + 4*i, Y: p.Y + 13 - h, W: 3, H: h}, c, 0)
	}
}

func (l *listScreen) draw(cv canvas.Canvas) {
	items := make([]scroll.Item, len(l.rows))
	for i, r := range l.rows {
		items[i] = networkItem{row: r}
	}
	scroll.Render(cv, l.win, items, scroll.Style{
		Origin:     listOrigin,
		Background: canvas.ColorDarkBG,
		Highlight:  canvas.ColorActiveSelection,
	})
}

func (n *Navigator) openList(state State, rows []listRow, reason string) {
	from := n.Active()
	n.list = &listScreen{state: state, win: scroll.New(len(rows), n.opts.WindowSize), rows: rows}
	n.transition(from, state, reason)
}

func (n *Navigator) closeList(reason string) {
	if n.list == nil {
		return
	}
	from := n.list.state
	n.list = nil
	n.transition(from, StateMain, reason)
}

// savedRows lists the stored networks. Saved rows carry no quality.
func (n *Navigator) savedRows() ([]listRow, error) {
	recs, err := n.store.List()
	if err != nil {
		return nil, err
	}
	rows := make([]listRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, listRow{ssid: rec.SSID, quality: network.QualityUnknown, encryption: recordEncryption(rec)})
	}
	return rows, nil
}

func recordEncryption(rec netconf.Record) network.Encryption {
	switch {
	case rec.Open():
		return network.EncryptionNone
	case rec.Encryption == netconf.EncryptionWEP:
		return network.EncryptionWEP
	default:
		return network.EncryptionWPA2
	}
}

func (n *Navigator) handleList(ctx context.Context, b input.Button) {
	l := n.list
	switch b {
	case input.Up:
		l.win.Move(-1)
	case input.Down:
		l.win.Move(1)
	case input.Left, input.B:
		n.closeList("back")
	case input.A:
		if row, ok := l.selected(); ok {
			n.connectRow(ctx, row)
		}
	case input.Select:
		if row, ok := l.selected(); ok {
			n.editKey(row)
		}
	case input.Y:
		if l.state != StateSavedList {
			return
		}
		if row, ok := l.selected(); ok {
			n.query("Forget AP configuration?", func(ctx context.Context, confirmed bool) {
				if confirmed {
					n.forget(row.ssid)
				}
			})
		}
	}
}

func (l *listScreen) selected() (listRow, bool) {
	i := l.win.Selected()
	if i < 0 || i >= len(l.rows) {
		return listRow{}, false
	}
	return l.rows[i], true
}

// connectRow connects to the selected network. Hosted APs and open networks
// are saved and joined directly; a network with no saved key asks for one.
func (n *Navigator) connectRow(ctx context.Context, row listRow) {
	if l := n.list; l.state == StateNetworkList {
		if key, ok := network.HostedKey(n.opts.HostedAPPrefix, row.ssid); ok {
			n.saveAndConnect(ctx, netconf.Record{SSID: row.ssid, Passphrase: key, Encryption: netconf.EncryptionWPA2})
			return
		}
		if _, err := n.store.Load(row.ssid); errors.Is(err, netconf.ErrNotFound) {
			if row.encryption == network.EncryptionNone {
				n.saveAndConnect(ctx, netconf.Record{SSID: row.ssid})
				return
			}
			n.openEntry(keyboard.KindKey, row.ssid, layoutFor(row.encryption), l.state)
			return
		}
	}
	n.connect(ctx, row.ssid)
}

func (n *Navigator) saveAndConnect(ctx context.Context, rec netconf.Record) {
	if err := n.store.Save(rec); err != nil {
		n.log.Error("failed to save network", zap.String("ssid", rec.SSID), zap.Error(err))
		n.wait("Failed to save network!")
		return
	}
	n.connect(ctx, rec.SSID)
}

// editKey opens the keyboard prefilled with the saved key for row.
func (n *Navigator) editKey(row listRow) {
	n.openEntry(keyboard.KindKey, row.ssid, layoutFor(row.encryption), n.list.state)
	if key, ok := n.store.Passphrase(row.ssid); ok {
		n.entry.entry.SetText(key)
	}
}

// forget deletes ssid and rebuilds the saved list, falling back to the main
// menu once nothing is left.
func (n *Navigator) forget(ssid string) {
	if err := n.store.Delete(ssid); err != nil {
		n.log.Warn("failed to forget network", zap.String("ssid", ssid), zap.Error(err))
	}
	rows, err := n.savedRows()
	if err != nil {
		n.log.Warn("saved networks unavailable", zap.Error(err))
	}
	if len(rows) == 0 {
		n.closeList("last saved network forgotten")
		return
	}
	if n.list == nil {
		return
	}
	n.list.rows = rows
	n.list.win.SetTotal(len(rows))
}

func layoutFor(enc network.Encryption) *keyboard.Layout {
	if enc == network.EncryptionWEP {
		return keyboard.Hex
	}
	return keyboard.Normal
}
