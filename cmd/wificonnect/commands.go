package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/wificonnect/internal/config"
	"github.com/muurk/wificonnect/internal/netconf"
	"github.com/muurk/wificonnect/internal/network"
	"github.com/muurk/wificonnect/internal/ui"
)

// Command flags
var (
	connectKey  string
	connectWEP  bool
	connectOpen bool
	forgetYes   bool
	savedReveal bool
	initForce   bool
)

func init() {
	connectCmd.Flags().StringVar(&connectKey, "key", "", "Passphrase to save before connecting")
	connectCmd.Flags().BoolVar(&connectWEP, "wep", false, "Save the key as a WEP hex key")
	connectCmd.Flags().BoolVar(&connectOpen, "open", false, "Save the network as open (no key)")
	connectCmd.MarkFlagsMutuallyExclusive("key", "open")

	forgetCmd.Flags().BoolVarP(&forgetYes, "yes", "y", false, "Do not ask for confirmation")
	savedCmd.Flags().BoolVar(&savedReveal, "reveal", false, "Show saved passphrases")
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")

	apCmd.AddCommand(apStartCmd, apStopCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(scanCmd, statusCmd, savedCmd, forgetCmd, connectCmd, apCmd, configCmd)
}

// scanCmd implements the 'scan' command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for access points",
	Long: `Scan for nearby access points and list them by signal quality.

Hidden networks are dropped and duplicates collapse to the strongest entry.
If the interface is off it is enabled for the scan and disabled again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.Header("Scan", "wificonnect scan", map[string]string{"Interface": settings.Interface})

		var aps []network.AccessPoint
		err := ui.RunWithSpinner(cmd.Context(), cmd.OutOrStdout(), "Scanning", func(ctx context.Context) error {
			var err error
			aps, err = e.backend.Scan(ctx)
			return err
		})
		if err == nil && len(aps) == 0 {
			err = network.ErrNoNetworks
		}
		if err != nil {
			p.Failure("Scan failed", err, ui.Troubleshoot(err))
			return err
		}

		saved, err := e.savedSet()
		if err != nil {
			return err
		}
		p.AccessPoints(aps, saved)
		return nil
	},
}

// statusCmd implements the 'status' command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the interface state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		info, err := e.backend.Info(cmd.Context())
		if err != nil {
			ui.NewPrinter(cmd.OutOrStdout()).Failure("Status unavailable", err, ui.Troubleshoot(err))
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).Status(info)
		return nil
	},
}

// savedCmd implements the 'saved' command
var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved networks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		p := ui.NewPrinter(cmd.OutOrStdout())

		recs, err := e.store.List()
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			p.Warning("No saved networks", map[string]string{"Directory": e.store.Dir()})
			return nil
		}
		p.SavedNetworks(recs, savedReveal)
		return nil
	},
}

// forgetCmd implements the 'forget' command
var forgetCmd = &cobra.Command{
	Use:   "forget <ssid>",
	Short: "Delete a saved network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ssid := args[0]
		e := newEnv()
		p := ui.NewPrinter(cmd.OutOrStdout())

		if _, err := e.store.Load(ssid); err != nil {
			return err
		}

		if !forgetYes {
			if !ui.StdinIsTerminal() {
				return fmt.Errorf("refusing to forget %q without --yes when stdin is not a terminal", ssid)
			}
			if !ui.Confirm(os.Stdin, cmd.OutOrStdout(), "Forget network",
				[]string{"The saved configuration for " + ssid + " will be deleted"},
				"Forget AP configuration?") {
				return nil
			}
		}

		if err := e.store.Delete(ssid); err != nil {
			return err
		}
		p.Success("Network forgotten", map[string]string{"SSID": ssid})
		return nil
	},
}

// connectCmd implements the 'connect' command
var connectCmd = &cobra.Command{
	Use:   "connect <ssid>",
	Short: "Connect to a network",
	Long: `Connect to a network, saving its configuration first when a key is given.

Without --key or --open the network must already be saved, unless it is a
hosted access point of another device, whose key is derived from its SSID.`,
	Example: `  # Save a WPA2 key and connect
  wificonnect connect HomeNet --key hunter22

  # Reconnect to a saved network
  wificonnect connect HomeNet`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ssid := args[0]
		e := newEnv()
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.Header("Connect", "wificonnect connect", map[string]string{
			"Interface": settings.Interface,
			"SSID":      ssid,
		})

		rec, save, err := connectRecord(e.store, ssid)
		if err != nil {
			return err
		}
		if save {
			if err := e.store.Save(rec); err != nil {
				p.Failure("Failed to save network", err, nil)
				return err
			}
		}

		err = ui.RunWithSpinner(cmd.Context(), cmd.OutOrStdout(), "Connecting", func(ctx context.Context) error {
			return e.backend.Connect(ctx, ssid)
		})
		if err != nil {
			p.Failure("Connection failed", err, ui.Troubleshoot(err))
			return err
		}

		details := map[string]string{"SSID": ssid}
		if info, err := e.backend.Info(cmd.Context()); err == nil && info.IP != "" {
			details["IP"] = info.IP
		}
		p.Success("Connected", details)
		return nil
	},
}

// connectRecord decides what record a connect uses and whether it has to be
// written first.
func connectRecord(store *netconf.Store, ssid string) (rec netconf.Record, save bool, err error) {
	switch {
	case connectKey != "":
		rec = netconf.Record{SSID: ssid, Passphrase: connectKey, Encryption: netconf.EncryptionWPA2}
		if connectWEP {
			rec.Encryption = netconf.EncryptionWEP
		}
		return rec, true, nil
	case connectOpen:
		return netconf.Record{SSID: ssid}, true, nil
	}

	rec, err = store.Load(ssid)
	if err == nil {
		return rec, false, nil
	}
	if !errors.Is(err, netconf.ErrNotFound) {
		return rec, false, err
	}
	if key, ok := network.HostedKey(settings.UI.HostedAPPrefix, ssid); ok {
		return netconf.Record{SSID: ssid, Passphrase: key, Encryption: netconf.EncryptionWPA2}, true, nil
	}
	return rec, false, fmt.Errorf("no saved configuration for %q; pass --key or --open", ssid)
}

var apCmd = &cobra.Command{
	Use:   "ap",
	Short: "Manage the hosted access point",
}

// apStartCmd implements the 'ap start' command
var apStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Broadcast a hosted access point",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		p := ui.NewPrinter(cmd.OutOrStdout())

		err := ui.RunWithSpinner(cmd.Context(), cmd.OutOrStdout(), "Creating AP", func(ctx context.Context) error {
			return e.backend.StartHostedAP(ctx)
		})
		if err != nil {
			p.Failure("Failed to create AP", err, ui.Troubleshoot(err))
			return err
		}

		details := map[string]string{}
		if info, err := e.backend.Info(cmd.Context()); err == nil && info.SSID != "" {
			details["SSID"] = info.SSID
			if key, ok := network.HostedKey(settings.UI.HostedAPPrefix, info.SSID); ok {
				details["Key"] = key
			}
		} else if err != nil {
			e.logger.Warn("Failed to read hosted AP details", zap.Error(err))
		}
		p.Success("AP created", details)
		return nil
	},
}

// apStopCmd implements the 'ap stop' command
var apStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the hosted access point",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		p := ui.NewPrinter(cmd.OutOrStdout())

		err := ui.RunWithSpinner(cmd.Context(), cmd.OutOrStdout(), "Stopping AP", func(ctx context.Context) error {
			return e.backend.StopHostedAP(ctx)
		})
		if err != nil {
			p.Failure("Failed to stop AP", err, ui.Troubleshoot(err))
			return err
		}
		p.Success("AP stopped", nil)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

// configInitCmd implements the 'config init' command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the defaults",
	Args:  cobra.NoArgs,
	Annotations: map[string]string{
		skipConfigAnnotation: "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists; pass --force to overwrite", path)
		}

		s, err := config.Defaults()
		if err != nil {
			return err
		}
		if ifaceFlag != "" {
			s.Interface = ifaceFlag
		}
		if err := s.Save(path); err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).Success("Config written", map[string]string{"Path": path})
		return nil
	},
}
