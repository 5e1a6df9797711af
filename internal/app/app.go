// Package app runs the interactive event loop: terminal key events are
// mapped to device buttons and fed to the navigator one at a time.
package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/muurk/wificonnect/internal/input"
	"github.com/muurk/wificonnect/internal/nav"
)

// App couples a tcell screen to a Navigator.
type App struct {
	screen tcell.Screen
	nav    *nav.Navigator
	keys   *input.KeyMap
	logger *zap.Logger
}

// New returns an App. The screen must already be initialised and is not
// finalised by Run.
func New(screen tcell.Screen, n *nav.Navigator, keys *input.KeyMap, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{screen: screen, nav: n, keys: keys, logger: logger}
}

// Run draws the first frame and processes events until the user quits,
// presses Ctrl-C, or ctx is canceled. Each event is handled to completion,
// redraw included, before the next is read.
func (a *App) Run(ctx context.Context) error {
	if err := a.nav.Start(ctx); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	for !a.nav.Done() {
		stop, err := a.step(ctx, events)
		if err != nil || stop {
			return err
		}
	}
	a.logger.Info("Interactive session finished")
	return nil
}

// step waits for one event or the current modal deadline, whichever comes
// first, and handles it.
func (a *App) step(ctx context.Context, events <-chan tcell.Event) (stop bool, err error) {
	var expired <-chan time.Time
	if deadline, ok := a.nav.Deadline(); ok {
		timer := time.NewTimer(time.Until(deadline))
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-ctx.Done():
		return true, ctx.Err()
	case now := <-expired:
		return false, a.nav.Tick(ctx, now)
	case ev, ok := <-events:
		if !ok {
			return true, nil
		}
		return a.handleEvent(ctx, ev)
	}
}

func (a *App) handleEvent(ctx context.Context, ev tcell.Event) (stop bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return false, a.nav.Redraw(ctx)

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			a.logger.Info("Interrupted from keyboard")
			return true, nil
		}
		btn, ok := a.keys.Lookup(ev)
		if !ok {
			a.logger.Debug("Unbound key", zap.String("key", ev.Name()))
			return false, nil
		}
		return false, a.nav.HandleButton(ctx, btn)

	case *tcell.EventInterrupt:
		return false, a.nav.Redraw(ctx)
	}
	return false, nil
}
