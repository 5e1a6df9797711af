package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/muurk/wificonnect/internal/input"
	"github.com/muurk/wificonnect/internal/network"
)

const (
	appName    = "wificonnect"
	configFile = "config.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/wificonnect or $HOME/.config/wificonnect
//   - macOS: $HOME/.config/wificonnect (following XDG convention on macOS)
func GetConfigDir() (string, error) {
	if runtime.GOOS != "darwin" {
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Defaults returns NewSettings rooted at the current user's home directory.
func Defaults() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return NewSettings(homeDir), nil
}

// Load reads settings from path, or from GetConfigPath when path is empty.
// Values absent from the file keep their defaults. A missing file yields
// the defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	settings, err := Defaults()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return settings, nil
}

// Validate checks values that would break the UI or the backend.
func (s *Settings) Validate() error {
	if s.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", s.Version)
	}
	if s.Interface == "" {
		return fmt.Errorf("interface must not be empty")
	}
	if s.UI.WindowSize < 3 {
		return fmt.Errorf("ui.window_size must be at least 3, got %d", s.UI.WindowSize)
	}
	if s.UI.ShrinkThreshold < 1 {
		return fmt.Errorf("ui.shrink_threshold must be positive, got %d", s.UI.ShrinkThreshold)
	}
	switch network.ScanMode(s.Commands.ScanMode) {
	case network.ScanWlanScan, network.ScanIwlist:
	default:
		return fmt.Errorf("commands.scan_mode must be %q or %q, got %q",
			network.ScanWlanScan, network.ScanIwlist, s.Commands.ScanMode)
	}
	if s.Timeouts.Modal < 0 || s.Timeouts.Command < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if len(s.Keys) > 0 {
		if _, err := input.NewKeyMap(s.KeyBindings()); err != nil {
			return fmt.Errorf("keys: %w", err)
		}
	}
	return nil
}

// KeyBindings returns the default key bindings with any buttons listed in
// Keys replaced.
func (s *Settings) KeyBindings() map[string][]string {
	bindings := input.DefaultBindings()
	for button, keys := range s.Keys {
		bindings[button] = keys
	}
	return bindings
}

// NetworkConfig maps the settings onto the shell backend configuration.
func (s *Settings) NetworkConfig() network.Config {
	cfg := network.DefaultConfig()
	cfg.Interface = s.Interface
	cfg.SysfsDir = s.Paths.Sysfs
	cfg.SystemDir = s.Paths.System
	cfg.Sudo = s.Commands.Sudo
	cfg.Ifup = s.Commands.Ifup
	cfg.Ifdown = s.Commands.Ifdown
	cfg.IP = s.Commands.IP
	cfg.IW = s.Commands.IW
	cfg.Iwlist = s.Commands.Iwlist
	cfg.WlanScan = s.Commands.WlanScan
	cfg.AP = s.Commands.AP
	cfg.ScanMode = network.ScanMode(s.Commands.ScanMode)
	cfg.HostedAPPrefix = s.UI.HostedAPPrefix
	return cfg
}

// Save writes the settings to path, or GetConfigPath when path is empty.
// Performs an atomic write to prevent corruption on crash.
func (s *Settings) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# wificonnect configuration file
#
# Saved WiFi passphrases are NOT stored here. They live in one file per
# network under paths.networks.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
