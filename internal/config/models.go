package config

import "time"

// Settings is the whole configuration file.
type Settings struct {
	Version   int                 `yaml:"version"`
	Interface string              `yaml:"interface"` // Wireless interface, e.g. wlan0
	Paths     Paths               `yaml:"paths"`
	Commands  Commands            `yaml:"commands"`
	Timeouts  Timeouts            `yaml:"timeouts"`
	UI        UI                  `yaml:"ui"`
	Keys      map[string][]string `yaml:"keys,omitempty"` // Button name -> terminal key names
}

// Paths locates saved profiles and the system files the tools read.
type Paths struct {
	Networks string `yaml:"networks"` // Saved network records, one file per SSID
	System   string `yaml:"system"`   // Directory receiving config-<iface>.conf
	Sysfs    string `yaml:"sysfs"`    // sysfs network class directory
}

// Commands holds the tool paths. Sudo may be empty to run tools directly.
type Commands struct {
	Sudo     string `yaml:"sudo"`
	Ifup     string `yaml:"ifup"`
	Ifdown   string `yaml:"ifdown"`
	IP       string `yaml:"ip"`
	IW       string `yaml:"iw"`
	Iwlist   string `yaml:"iwlist"`
	WlanScan string `yaml:"wlan_scan"`
	AP       string `yaml:"ap"`
	ScanMode string `yaml:"scan_mode"` // "wlan-scan" or "iwlist"
}

// Timeouts bounds blocking operations.
type Timeouts struct {
	Command time.Duration `yaml:"command"` // Per external command
	Modal   time.Duration `yaml:"modal"`   // How long timeout modals stay up
}

// UI tunes the interactive screens.
type UI struct {
	WindowSize      int    `yaml:"window_size"`      // Visible rows per list
	ShrinkThreshold int    `yaml:"shrink_threshold"` // Text length above which the entry font shrinks
	HostedAPPrefix  string `yaml:"hosted_ap_prefix"` // Hosted AP SSID prefix
}

// NewSettings returns the defaults for the target device. homeDir roots the
// networks directory.
func NewSettings(homeDir string) *Settings {
	return &Settings{
		Version:   1,
		Interface: "wlan0",
		Paths: Paths{
			Networks: homeDir + "/.local/share/gcwconnect/networks",
			System:   "/usr/local/etc/network",
			Sysfs:    "/sys/class/net",
		},
		Commands: Commands{
			Sudo:     "sudo",
			Ifup:     "/sbin/ifup",
			Ifdown:   "/sbin/ifdown",
			IP:       "/sbin/ip",
			IW:       "/sbin/iw",
			Iwlist:   "/sbin/iwlist",
			WlanScan: "/usr/sbin/wlan-scan",
			AP:       "/usr/sbin/ap",
			ScanMode: "wlan-scan",
		},
		Timeouts: Timeouts{
			Command: 30 * time.Second,
			Modal:   2500 * time.Millisecond,
		},
		UI: UI{
			WindowSize:      5,
			ShrinkThreshold: 20,
			HostedAPPrefix:  "gcwzero-",
		},
	}
}
