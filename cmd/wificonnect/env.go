package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/wificonnect/internal/config"
	"github.com/muurk/wificonnect/internal/logging"
	"github.com/muurk/wificonnect/internal/nav"
	"github.com/muurk/wificonnect/internal/netconf"
	"github.com/muurk/wificonnect/internal/network"
)

// skipConfigAnnotation marks commands that must run without a valid config
// file.
const skipConfigAnnotation = "wificonnect/skip-config"

// Global flags
var (
	configPath string
	ifaceFlag  string
	logLevel   string
	logFile    string
	demoMode   bool
)

// settings is loaded by setup before any command runs.
var settings *config.Settings

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/wificonnect/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&ifaceFlag, "interface", "i", "", "Wireless interface (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file, or - for stderr")
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "Use a simulated interface instead of the system tools")
}

// setup initializes logging and loads the settings.
func setup(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logging.Options{Level: logLevel, File: logFile}); err != nil {
		return err
	}
	if cmd.Annotations[skipConfigAnnotation] == "true" {
		return nil
	}

	s, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if ifaceFlag != "" {
		s.Interface = ifaceFlag
	}
	settings = s

	logging.Debug("Settings loaded",
		zap.String("interface", s.Interface),
		zap.String("networks", s.Paths.Networks),
		zap.Bool("demo", demoMode))
	return nil
}

// env bundles the collaborators a command works with.
type env struct {
	backend network.Backend
	store   *netconf.Store
	logger  *zap.Logger
}

func newEnv() *env {
	logger := logging.GetLogger()
	store := netconf.NewStore(settings.Paths.Networks, logging.Named("netconf"))

	var backend network.Backend
	if demoMode {
		backend = demoBackend(settings)
	} else {
		runner := network.NewExecRunner(settings.Timeouts.Command, logging.Named("exec"))
		backend = network.NewShellBackend(settings.NetworkConfig(), runner, store, logging.Named("network"))
	}
	return &env{backend: backend, store: store, logger: logger}
}

// navOptions maps the settings onto the navigator.
func (e *env) navOptions() nav.Options {
	return nav.Options{
		Interface:       settings.Interface,
		WindowSize:      settings.UI.WindowSize,
		ShrinkThreshold: settings.UI.ShrinkThreshold,
		HostedAPPrefix:  settings.UI.HostedAPPrefix,
		ModalTimeout:    settings.Timeouts.Modal,
		Logger:          logging.Named("nav"),
	}
}

// savedSet returns the SSIDs that have a stored record.
func (e *env) savedSet() (map[string]bool, error) {
	recs, err := e.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list saved networks: %w", err)
	}
	saved := make(map[string]bool, len(recs))
	for _, r := range recs {
		saved[r.SSID] = true
	}
	return saved, nil
}

func demoBackend(s *config.Settings) *network.Fake {
	f := network.NewFake(
		network.AccessPoint{SSID: "HomeNet", Quality: 82, MAC: "a0:b1:c2:d3:e4:f5", Encryption: network.EncryptionWPA2},
		network.AccessPoint{SSID: "Cafe Guest", Quality: 47, MAC: "10:20:30:40:50:60", Encryption: network.EncryptionNone},
		network.AccessPoint{SSID: "OldRouter", Quality: 31, MAC: "de:ad:be:ef:00:01", Encryption: network.EncryptionWEP},
		network.AccessPoint{SSID: "Neighbour 5G", Quality: 12, MAC: "66:77:88:99:aa:bb", Encryption: network.EncryptionWPA},
		network.AccessPoint{SSID: "gcwzero-00112233aabb", Quality: 64, MAC: "00:11:22:33:aa:bb", Encryption: network.EncryptionWPA2},
		network.AccessPoint{SSID: "Library", Quality: 5, MAC: "ab:cd:ef:01:23:45", Encryption: network.EncryptionWPA2},
	)
	f.Iface = s.Interface
	f.Prefix = s.UI.HostedAPPrefix
	return f
}
