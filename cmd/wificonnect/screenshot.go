package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/wificonnect/internal/canvas/imgcanvas"
	"github.com/muurk/wificonnect/internal/input"
	"github.com/muurk/wificonnect/internal/nav"
	"github.com/muurk/wificonnect/internal/ui"
)

var (
	screenshotOutput string
	screenshotPress  string
)

func init() {
	screenshotCmd.Flags().StringVarP(&screenshotOutput, "output", "o", "wificonnect.png", "PNG file to write")
	screenshotCmd.Flags().StringVar(&screenshotPress, "press", "", "Comma-separated buttons to press before capturing (e.g. down,a)")
	rootCmd.AddCommand(screenshotCmd)
}

// screenshotCmd implements the 'screenshot' command
var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Render the device screen to a PNG file",
	Long: `Render the interactive screen at the device resolution (320x240) into a
PNG file. Buttons given with --press are applied in order first, and the
frame after the last one is written. Messages that close on their own are
dismissed before the next button.

Button actions run against the configured interface; combine with --demo to
capture screens without touching the network.`,
	Example: `  # Scan result list from the simulated interface
  wificonnect screenshot --demo --press down,a -o scan.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		buttons, err := parseButtons(screenshotPress)
		if err != nil {
			return err
		}

		e := newEnv()
		cv, err := imgcanvas.New(imgcanvas.PNGFile(screenshotOutput))
		if err != nil {
			return err
		}

		n := nav.New(cv, e.backend, e.store, e.navOptions())
		if err := n.Start(cmd.Context()); err != nil {
			return err
		}
		for _, b := range buttons {
			if n.Done() {
				break
			}
			// Timeout modals drop input until they expire, so expire them
			// now instead of waiting.
			if deadline, ok := n.Deadline(); ok {
				if err := n.Tick(cmd.Context(), deadline); err != nil {
					return err
				}
			}
			if err := n.HandleButton(cmd.Context(), b); err != nil {
				return fmt.Errorf("button %s: %w", b, err)
			}
		}

		e.logger.Info("Screenshot written",
			zap.String("path", screenshotOutput),
			zap.String("state", string(n.Active())))
		ui.NewPrinter(cmd.OutOrStdout()).Success("Screenshot written", map[string]string{
			"Path":  screenshotOutput,
			"State": string(n.Active()),
		})
		return nil
	},
}

// parseButtons parses a comma-separated button list.
func parseButtons(s string) ([]input.Button, error) {
	var buttons []input.Button
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		b, err := input.ParseButton(name)
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, b)
	}
	return buttons, nil
}
