package nav

import (
	"context"
	"time"

	"github.com/muurk/wificonnect/internal/canvas"
	"github.com/muurk/wificonnect/internal/input"
	"github.com/muurk/wificonnect/internal/keyboard"
	"github.com/muurk/wificonnect/internal/logging"
	"github.com/muurk/wificonnect/internal/netconf"
	"github.com/muurk/wificonnect/internal/network"
	"github.com/muurk/wificonnect/internal/scroll"
	"go.uber.org/zap"
)

// State is the screen that currently owns input.
type State string

const (
	StateMain        State = "main"
	StateNetworkList State = "network-list"
	StateSavedList   State = "saved-list"
	StateTextEntry   State = "text-entry"
	StateModal       State = "modal"
)

// DefaultModalTimeout is how long a timeout modal stays up.
const DefaultModalTimeout = 2500 * time.Millisecond

// DefaultHostedAPPrefix starts the SSID of the device's own access point.
const DefaultHostedAPPrefix = "gcwzero-"

// Options tunes a Navigator. Zero values select defaults.
type Options struct {
	// Interface names the wireless interface in the status bar.
	Interface       string
	WindowSize      int
	ShrinkThreshold int
	HostedAPPrefix  string
	ModalTimeout    time.Duration
	// Now is the clock used for timeout modal deadlines.
	Now    func() time.Time
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Interface == "" {
		o.Interface = "wlan0"
	}
	if o.WindowSize < 1 {
		o.WindowSize = scroll.DefaultSize
	}
	if o.ShrinkThreshold <= 0 {
		o.ShrinkThreshold = keyboard.DefaultShrinkThreshold
	}
	if o.HostedAPPrefix == "" {
		o.HostedAPPrefix = DefaultHostedAPPrefix
	}
	if o.ModalTimeout <= 0 {
		o.ModalTimeout = DefaultModalTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Navigator owns every piece of interactive state. It is not safe for
// concurrent use; the event loop calls it from one goroutine.
type Navigator struct {
	cv      canvas.Canvas
	backend network.Backend
	store   *netconf.Store
	opts    Options
	log     *zap.Logger

	main  *mainMenu
	list  *listScreen
	entry *entryScreen

	modals []*modal
	info   network.Info
	// mac is the last hardware address seen, shown while the interface is off.
	mac  string
	done bool
}

// New returns a Navigator on the main menu. Call Start to draw the first frame.
func New(cv canvas.Canvas, backend network.Backend, store *netconf.Store, opts Options) *Navigator {
	opts = opts.withDefaults()
	return &Navigator{
		cv:      cv,
		backend: backend,
		store:   store,
		opts:    opts,
		log:     opts.Logger,
		main:    newMainMenu(opts.WindowSize),
		info:    network.Info{Interface: opts.Interface},
	}
}

// Start draws the initial screen.
func (n *Navigator) Start(ctx context.Context) error {
	n.log.Info("navigator started", zap.String("interface", n.opts.Interface))
	return n.Redraw(ctx)
}

// Active returns the state that receives the next button.
func (n *Navigator) Active() State {
	switch {
	case len(n.modals) > 0:
		return StateModal
	case n.entry != nil:
		return StateTextEntry
	case n.list != nil:
		return n.list.state
	default:
		return StateMain
	}
}

// Done reports whether the user asked to quit.
func (n *Navigator) Done() bool { return n.done }

// HandleButton processes one button press and redraws.
func (n *Navigator) HandleButton(ctx context.Context, b input.Button) error {
	if len(n.modals) > 0 {
		return n.handleModal(ctx, b)
	}
	switch {
	case n.entry != nil:
		n.handleEntry(ctx, b)
	case n.list != nil:
		n.handleList(ctx, b)
	default:
		n.handleMain(ctx, b)
	}
	if n.done {
		return nil
	}
	return n.Redraw(ctx)
}

// Selected returns the selected row of the focused list, or -1 when the
// focused screen has no list.
func (n *Navigator) Selected() int {
	switch {
	case n.entry != nil:
		return -1
	case n.list != nil:
		return n.list.win.Selected()
	default:
		return n.main.win.Selected()
	}
}

// MainItems returns the main menu labels as last drawn.
func (n *Navigator) MainItems() []string {
	out := make([]string, len(n.main.items))
	for i, it := range n.main.items {
		out[i] = it.label
	}
	return out
}

// ListSSIDs returns the SSIDs of the open list, or nil on the main menu.
func (n *Navigator) ListSSIDs() []string {
	if n.list == nil {
		return nil
	}
	out := make([]string, len(n.list.rows))
	for i, r := range n.list.rows {
		out[i] = r.ssid
	}
	return out
}

// Entry returns the text entry session in progress, or nil.
func (n *Navigator) Entry() *keyboard.Entry {
	if n.entry == nil {
		return nil
	}
	return n.entry.entry
}

// Cursor returns the keyboard cursor of the text entry session, or nil.
func (n *Navigator) Cursor() *keyboard.Cursor {
	if n.entry == nil {
		return nil
	}
	return n.entry.cursor
}

func (n *Navigator) transition(from, to State, reason string) {
	if from == to {
		return
	}
	logging.LogTransition(n.log, string(from), string(to), reason)
}

// refresh reloads the interface snapshot and rebuilds the main menu from it.
func (n *Navigator) refresh(ctx context.Context) {
	info, err := n.backend.Info(ctx)
	if err != nil {
		n.log.Warn("interface status unavailable", zap.Error(err))
		info = network.Info{Interface: n.opts.Interface, Status: network.StatusOff}
	}
	if info.Interface == "" {
		info.Interface = n.opts.Interface
	}
	if info.MAC != "" {
		n.mac = info.MAC
	}
	n.info = info
	n.main.rebuild(info)
}

// Redraw repaints the whole screen: background, logo bar, menus, hints,
// status bar, keyboard, then any modal on top.
func (n *Navigator) Redraw(ctx context.Context) error {
	n.refresh(ctx)

	canvas.Clear(n.cv, canvas.ColorDarkBG)
	drawLogoBar(n.cv)

	n.main.draw(n.cv, n.list == nil)
	if n.list != nil {
		n.list.draw(n.cv)
	}
	n.drawHints()
	drawStatusBar(n.cv, n.info, n.mac)

	if n.entry != nil {
		n.entry.draw(n.cv)
	}
	if len(n.modals) > 0 {
		drawModal(n.cv, n.modals[0])
	}
	return n.cv.Present()
}

func (n *Navigator) drawHints() {
	n.cv.DrawRect(canvas.Rect{X: 0, Y: 208, W: canvas.ScreenWidth, H: 16}, canvas.ColorDarkBG, 0)
	if n.list == nil {
		drawHint(n.cv, "a", "Select", 8, 210, canvas.ColorDarkBG)
		return
	}
	drawHint(n.cv, "select", "Edit", 4, 210, canvas.ColorDarkBG)
	drawHint(n.cv, "a", "Connect", 75, 210, canvas.ColorDarkBG)
	drawHint(n.cv, "b", "/", 130, 210, canvas.ColorDarkBG)
	drawHint(n.cv, "left", "Back", 145, 210, canvas.ColorDarkBG)
	if n.list.state == StateSavedList {
		drawHint(n.cv, "y", "Forget", 195, 210, canvas.ColorDarkBG)
	}
}

// connect brings the interface up on ssid and reports the outcome in a
// timeout modal.
func (n *Navigator) connect(ctx context.Context, ssid string) {
	n.progress("Connecting...")
	start := time.Now()
	if err := n.backend.Connect(ctx, ssid); err != nil {
		n.log.Warn("connect failed", zap.String("ssid", ssid), zap.Error(err))
		n.notify("Connection failed!")
		return
	}
	n.log.Info("connected", zap.String("ssid", ssid), zap.Duration("duration", time.Since(start)))
	n.notify("Connected!")
}
