package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/wificonnect/internal/app"
	"github.com/muurk/wificonnect/internal/canvas/termcanvas"
	"github.com/muurk/wificonnect/internal/input"
	"github.com/muurk/wificonnect/internal/logging"
	"github.com/muurk/wificonnect/internal/nav"
)

// runInteractive starts the device screen on the terminal.
func runInteractive(cmd *cobra.Command, args []string) error {
	e := newEnv()

	if n, err := e.store.MigrateLegacyNames(); err != nil {
		e.logger.Warn("Failed to migrate legacy network file names", zap.Error(err))
	} else if n > 0 {
		e.logger.Info("Migrated legacy network file names", zap.Int("count", n))
	}

	keys, err := input.NewKeyMap(settings.KeyBindings())
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	n := nav.New(termcanvas.New(screen), e.backend, e.store, e.navOptions())
	defer logging.Sync()
	return app.New(screen, n, keys, logging.Named("app")).Run(cmd.Context())
}
