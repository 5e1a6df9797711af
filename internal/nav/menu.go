package nav

import (
	"context"
	"errors"

	"github.com/muurk/wificonnect/internal/canvas"
	"github.com/muurk/wificonnect/internal/input"
	"github.com/muurk/wificonnect/internal/keyboard"
	"github.com/muurk/wificonnect/internal/network"
	"github.com/muurk/wificonnect/internal/scroll"
	"go.uber.org/zap"
)

// Main menu labels.
const (
	itemDisconnect = "Disconnect"
	itemSaved      = "Saved Networks"
	itemScan       = "Scan for APs"
	itemManual     = "Manual Setup"
	itemAPInfo     = "AP info"
	itemCreateAP   = "Create AP"
	itemEnable     = "Enable WiFi"
	itemDisable    = "Disable WiFi"
	itemQuit       = "Quit"
)

// panel is the inline content shown to the right of the main menu.
type panel int

const (
	panelNone panel = iota
	panelNoNetworks
	panelEmpty
	panelAPInfo
)

type menuItem struct {
	label string
	run   func(n *Navigator, ctx context.Context)
}

type mainMenu struct {
	win   *scroll.Window
	items []menuItem
	panel panel
	// apSSID and apKey fill the AP info panel.
	apSSID, apKey string
}

var mainMenuOrigin = canvas.Point{X: 3, Y: 41}

func newMainMenu(size int) *mainMenu {
	return &mainMenu{win: scroll.New(0, size)}
}

// rebuild recomputes the item set for the interface state. The selection
// index is kept and clamped.
func (m *mainMenu) rebuild(info network.Info) {
	var items []menuItem
	if info.Status == network.StatusConnected || info.Status == network.StatusBroadcasting {
		items = append(items, menuItem{itemDisconnect, (*Navigator).disconnect})
	}
	items = append(items,
		menuItem{itemSaved, (*Navigator).openSaved},
		menuItem{itemScan, (*Navigator).scan},
		menuItem{itemManual, (*Navigator).manualSetup},
	)
	if info.SSID != "" {
		items = append(items, menuItem{itemAPInfo, (*Navigator).showAPInfo})
	} else {
		items = append(items, menuItem{itemCreateAP, (*Navigator).createAP})
	}
	if info.Status.Enabled() {
		items = append(items, menuItem{itemDisable, (*Navigator).disableWiFi})
	} else {
		items = append(items, menuItem{itemEnable, (*Navigator).enableWiFi})
	}
	items = append(items, menuItem{itemQuit, (*Navigator).quit})

	m.items = items
	m.win.SetTotal(len(items))
}

func (m *mainMenu) draw(cv canvas.Canvas, active bool) {
	cv.DrawRect(canvas.Rect{X: 0, Y: 35, W: canvas.ScreenWidth, H: 173}, canvas.ColorDarkBG, 0)

	style := scroll.Style{
		Origin:     mainMenuOrigin,
		Background: canvas.ColorDarkBG,
		Highlight:  canvas.ColorActiveSelection,
	}
	fg := canvas.ColorActiveText
	if !active {
		style.Highlight = canvas.ColorInactiveSelection
		fg = canvas.ColorInactiveText
	}
	rows := make([]scroll.Item, len(m.items))
	for i, it := range m.items {
		rows[i] = scroll.Text{Label: it.label, Font: canvas.FontMedium, Color: fg, PadX: 5, PadY: 5}
	}
	scroll.Render(cv, m.win, rows, style)

	if !active {
		return
	}
	switch m.panel {
	case panelNoNetworks:
		cv.DrawText(canvas.Point{X: 192, Y: 96}, ":(", canvas.FontHuge, canvas.ColorLightBG, canvas.ColorDarkBG)
	case panelEmpty:
		cv.DrawText(canvas.Point{X: 152, Y: 96}, "empty", canvas.FontHuge, canvas.ColorLightBG, canvas.ColorDarkBG)
	case panelAPInfo:
		canvas.TextRightAligned(cv, 318, 36, "SSID", canvas.FontHuge, canvas.ColorLightBG, canvas.ColorDarkBG)
		canvas.TextRightAligned(cv, 315, 98, m.apSSID, canvas.FontMonoSmall, canvas.ColorWhite, canvas.ColorDarkBG)
		canvas.TextRightAligned(cv, 314, 116, "Key", canvas.FontHuge, canvas.ColorLightBG, canvas.ColorDarkBG)
		canvas.TextRightAligned(cv, 315, 182, m.apKey, canvas.FontMonoSmall, canvas.ColorWhite, canvas.ColorDarkBG)
	}
}

func (n *Navigator) handleMain(ctx context.Context, b input.Button) {
	m := n.main
	switch b {
	case input.Up:
		m.panel = panelNone
		m.win.Move(-1)
	case input.Down:
		m.panel = panelNone
		m.win.Move(1)
	case input.A:
		m.panel = panelNone
		i := m.win.Selected()
		if i < 0 || i >= len(m.items) {
			return
		}
		it := m.items[i]
		n.log.Debug("main menu selected", zap.String("item", it.label))
		it.run(n, ctx)
	case input.B:
		n.quit(ctx)
	}
}

func (n *Navigator) quit(ctx context.Context) {
	n.log.Info("quit requested")
	n.done = true
}

// scan opens the network list, or shows the no-networks glyph when the scan
// fails or finds nothing.
func (n *Navigator) scan(ctx context.Context) {
	n.progress("Scanning...")
	aps, err := n.backend.Scan(ctx)
	if err != nil || len(aps) == 0 {
		if err != nil && !errors.Is(err, network.ErrNoNetworks) {
			n.log.Warn("scan failed", zap.Error(err))
		}
		n.main.panel = panelNoNetworks
		return
	}
	rows := make([]listRow, len(aps))
	for i, ap := range aps {
		rows[i] = listRow{ssid: ap.SSID, quality: ap.Quality, encryption: ap.Encryption}
	}
	n.openList(StateNetworkList, rows, "scan found networks")
}

// openSaved opens the saved network list, or shows "empty" when there is
// nothing saved.
func (n *Navigator) openSaved(ctx context.Context) {
	rows, err := n.savedRows()
	if err != nil {
		n.log.Warn("saved networks unavailable", zap.Error(err))
	}
	if len(rows) == 0 {
		n.main.panel = panelEmpty
		return
	}
	n.openList(StateSavedList, rows, "saved networks")
}

func (n *Navigator) manualSetup(ctx context.Context) {
	n.openEntry(keyboard.KindSSID, "", keyboard.Normal, StateMain)
}

func (n *Navigator) disconnect(ctx context.Context) {
	if n.info.Status == network.StatusBroadcasting {
		n.progress("Stopping AP...")
		if err := n.backend.StopHostedAP(ctx); err != nil {
			n.log.Warn("stop hosted AP failed", zap.Error(err))
			n.wait("Failed to stop AP...")
		}
		return
	}
	n.progress("Disconnecting...")
	if err := n.backend.Disconnect(ctx); err != nil {
		n.log.Warn("disconnect failed", zap.Error(err))
		n.notify("Disconnect failed!")
	}
}

func (n *Navigator) createAP(ctx context.Context) {
	n.progress("Creating AP...")
	if err := n.backend.StartHostedAP(ctx); err != nil {
		n.log.Warn("create AP failed", zap.Error(err))
		n.wait("Failed to create AP...")
		return
	}
	n.notify("AP created!")
}

// showAPInfo fills the AP info panel with the associated SSID and its key:
// the saved passphrase, or the hosted AP key derived from the SSID.
func (n *Navigator) showAPInfo(ctx context.Context) {
	ssid := n.info.SSID
	if ssid == "" {
		n.main.panel = panelNoNetworks
		return
	}
	key, ok := n.store.Passphrase(ssid)
	if !ok {
		key, ok = network.HostedKey(n.opts.HostedAPPrefix, ssid)
	}
	if !ok || key == "" {
		key = "none"
	}
	n.main.apSSID = ssid
	n.main.apKey = key
	n.main.panel = panelAPInfo
}

func (n *Navigator) enableWiFi(ctx context.Context) {
	n.progress("Enabling WiFi...")
	if err := n.backend.Enable(ctx); err != nil {
		n.log.Warn("enable failed", zap.Error(err))
		n.notify("Failed to enable WiFi")
	}
}

func (n *Navigator) disableWiFi(ctx context.Context) {
	n.progress("Disabling WiFi...")
	if err := n.backend.Disable(ctx); err != nil {
		n.log.Warn("disable failed", zap.Error(err))
		n.notify("Failed to disable WiFi")
	}
}
