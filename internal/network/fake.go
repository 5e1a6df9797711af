package network

import (
	"context"
	"fmt"
	"sync"
)

// Fake is a scripted Backend. It keeps a consistent interface state so the
// UI can be exercised without hardware.
type Fake struct {
	mu sync.Mutex

	// APs is returned by Scan after Normalize.
	APs []AccessPoint
	// ScanErr, ConnectErr, DisconnectErr and APErr force the matching
	// calls to fail.
	ScanErr       error
	ConnectErr    error
	DisconnectErr error
	APErr         error

	Iface  string
	MAC    string
	IP     string
	Prefix string

	state Status
	ssid  string
	calls []string
}

// NewFake returns an enabled, unassociated fake interface.
func NewFake(aps ...AccessPoint) *Fake {
	return &Fake{
		APs:    aps,
		Iface:  "wlan0",
		MAC:    "00:11:22:aa:bb:cc",
		IP:     "192.168.1.50",
		Prefix: "gcwzero-",
		state:  StatusUp,
	}
}

// SetStatus forces the interface state. ssid applies to associated states.
func (f *Fake) SetStatus(s Status, ssid string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
	f.ssid = ssid
}

// Calls returns the backend methods invoked so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *Fake) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// Scan implements Backend.
func (f *Fake) Scan(ctx context.Context) ([]AccessPoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("scan")
	if f.ScanErr != nil {
		return nil, f.ScanErr
	}
	aps := Normalize(f.APs)
	if len(aps) == 0 {
		return nil, ErrNoNetworks
	}
	return aps, nil
}

// Status implements Backend.
func (f *Fake) Status(ctx context.Context) (Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, nil
}

// Info implements Backend.
func (f *Fake) Info(ctx context.Context) (Info, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	info := Info{Interface: f.Iface, Status: f.state}
	if f.state == StatusOff {
		return info, nil
	}
	info.MAC = f.MAC
	switch f.state {
	case StatusBroadcasting:
		info.SSID = HostedSSID(f.Prefix, f.MAC)
		info.IP = f.IP
	case StatusConnected:
		info.SSID = f.ssid
		info.IP = f.IP
	case StatusAssociated:
		info.SSID = f.ssid
	}
	return info, nil
}

// Enable implements Backend.
func (f *Fake) Enable(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("enable")
	if f.state == StatusOff {
		f.state = StatusUp
	}
	return nil
}

// Disable implements Backend.
func (f *Fake) Disable(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("disable")
	f.state = StatusOff
	f.ssid = ""
	return nil
}

// Connect implements Backend.
func (f *Fake) Connect(ctx context.Context, ssid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("connect %s", ssid)
	if f.ConnectErr != nil {
		f.state = StatusUp
		f.ssid = ""
		return f.ConnectErr
	}
	f.state = StatusConnected
	f.ssid = ssid
	return nil
}

// Disconnect implements Backend.
func (f *Fake) Disconnect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("disconnect")
	if f.DisconnectErr != nil {
		return f.DisconnectErr
	}
	if f.state != StatusOff {
		f.state = StatusUp
	}
	f.ssid = ""
	return nil
}

// StartHostedAP implements Backend.
func (f *Fake) StartHostedAP(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ap start")
	if f.APErr != nil {
		return f.APErr
	}
	f.state = StatusBroadcasting
	f.ssid = ""
	return nil
}

// StopHostedAP implements Backend.
func (f *Fake) StopHostedAP(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ap stop")
	if f.APErr != nil {
		return f.APErr
	}
	if f.state == StatusBroadcasting {
		f.state = StatusUp
	}
	return nil
}
