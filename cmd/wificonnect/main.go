// Wificonnect is a WiFi configuration utility for a 320x240 handheld.
//
// Running without arguments starts the interactive screen: a main menu,
// scan and saved network lists, a soft keyboard for keys and SSIDs, and
// modal messages, all driven by the device buttons. The subcommands expose
// the same operations for scripting over a shell.
//
// Usage:
//
//	wificonnect [command] [flags]
//
// See 'wificonnect --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/wificonnect/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wificonnect",
	Short: "WiFi configuration utility",
	Long: `Configure the wireless interface of a handheld console.

Without a command, the interactive screen is started. It is driven by the
device buttons, which are mapped from terminal keys (see the keys section
of the config file).

Saved networks are stored one file per SSID in the networks directory and
copied into place for ifup when connecting.`,
	Version:           version.Version,
	PersistentPreRunE: setup,
	RunE:              runInteractive,
	SilenceUsage:      true,
	Example: `  # Start the interactive screen
  wificonnect

  # Try the interface without touching the real network
  wificonnect --demo

  # Scan from a shell
  wificonnect scan`,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Annotations: map[string]string{
		skipConfigAnnotation: "true",
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
