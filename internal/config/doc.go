// Package config loads and saves wificonnect settings.
//
// Settings live in a YAML file that only needs to list values that differ
// from the defaults for the handheld:
//
//	version: 1
//	interface: wlan0
//	commands:
//	  sudo: ""          # already running as root
//	  scan_mode: iwlist
//	ui:
//	  window_size: 6
//	keys:
//	  start: ["Enter"]
//	  a: ["a", "Ctrl-A"]
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/wificonnect/config.yaml or $HOME/.config/wificonnect/config.yaml
//   - macOS: $HOME/.config/wificonnect/config.yaml
//
// # Security
//
// This file never holds WiFi passphrases. Those are kept by the netconf
// store, one record per network, in the format the device's network scripts
// read.
//
// # Thread Safety
//
// Save holds a package mutex and writes through a temporary file and rename.
package config
