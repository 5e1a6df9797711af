package network

import (
	"context"
	"fmt"
	"strings"
)

// QualityUnknown marks an access point whose signal quality was not reported.
const QualityUnknown = -1

// Encryption is the security scheme an access point advertises.
type Encryption string

const (
	EncryptionUnknown Encryption = ""
	EncryptionNone    Encryption = "none"
	EncryptionWEP     Encryption = "wep"
	EncryptionWPA     Encryption = "wpa"
	EncryptionWPA2    Encryption = "wpa2"
)

// AccessPoint is one scan result.
type AccessPoint struct {
	SSID string
	// Quality is 0..100, or QualityUnknown.
	Quality    int
	MAC        string
	Encryption Encryption
}

// Status is the state of the wireless interface.
type Status int

const (
	StatusOff Status = iota
	StatusUp
	StatusAssociated
	StatusConnected
	StatusBroadcasting
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOff:
		return "off"
	case StatusUp:
		return "up"
	case StatusAssociated:
		return "associated"
	case StatusConnected:
		return "connected"
	case StatusBroadcasting:
		return "broadcasting"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Enabled reports whether the interface is powered.
func (s Status) Enabled() bool { return s != StatusOff }

// Associated reports whether the interface is attached to a network, its
// own hosted one included.
func (s Status) Associated() bool {
	return s == StatusAssociated || s == StatusConnected || s == StatusBroadcasting
}

// Info is a snapshot for the status bar.
type Info struct {
	Interface string
	Status    Status
	// SSID is the associated or hosted network, empty when none.
	SSID string
	// IP is the routable IPv4 address, empty when none.
	IP string
	// MAC is the hardware address, empty when the interface is off.
	MAC string
}

// Backend is the set of operations the UI performs on the interface.
// Every call blocks until the underlying tools finish.
type Backend interface {
	Scan(ctx context.Context) ([]AccessPoint, error)
	Status(ctx context.Context) (Status, error)
	Info(ctx context.Context) (Info, error)
	Enable(ctx context.Context) error
	Disable(ctx context.Context) error
	Connect(ctx context.Context, ssid string) error
	Disconnect(ctx context.Context) error
	StartHostedAP(ctx context.Context) error
	StopHostedAP(ctx context.Context) error
}

// HostedSSID returns the SSID the device broadcasts as a hosted AP.
func HostedSSID(prefix, mac string) string {
	return prefix + strings.ReplaceAll(strings.ToLower(mac), ":", "")
}

// HostedKey returns the passphrase of a hosted AP: the SSID suffix after
// prefix. ok is false when ssid is not a hosted AP name.
func HostedKey(prefix, ssid string) (key string, ok bool) {
	if prefix == "" || !strings.HasPrefix(ssid, prefix) || len(ssid) == len(prefix) {
		return "", false
	}
	return ssid[len(prefix):], true
}
