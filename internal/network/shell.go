package network

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/wificonnect/internal/netconf"
)

// ScanMode selects the scanning tool.
type ScanMode string

const (
	// ScanWlanScan uses the vendor wlan-scan helper (JSON lines).
	ScanWlanScan ScanMode = "wlan-scan"
	// ScanIwlist uses "iwlist <iface> scan".
	ScanIwlist ScanMode = "iwlist"
)

// Config holds tool paths and behaviour for ShellBackend.
type Config struct {
	// Interface is the wireless interface name.
	Interface string
	// SysfsDir is the network class directory in sysfs.
	SysfsDir string
	// SystemDir receives the live config-<iface>.conf on connect.
	SystemDir string

	// Sudo prefixes privileged commands. Empty runs them directly.
	Sudo     string
	Ifup     string
	Ifdown   string
	IP       string
	IW       string
	Iwlist   string
	WlanScan string
	AP       string

	ScanMode ScanMode
	// HostedAPPrefix is prepended to the MAC to name the hosted AP.
	HostedAPPrefix string

	// EnableAttempts bounds how often "ip link set up" is retried.
	EnableAttempts int
	// EnableRetryDelay separates enable attempts.
	EnableRetryDelay time.Duration
}

// DefaultConfig returns the tool layout of the target device.
func DefaultConfig() Config {
	return Config{
		Interface:        "wlan0",
		SysfsDir:         "/sys/class/net",
		SystemDir:        "/usr/local/etc/network",
		Sudo:             "sudo",
		Ifup:             "/sbin/ifup",
		Ifdown:           "/sbin/ifdown",
		IP:               "/sbin/ip",
		IW:               "/sbin/iw",
		Iwlist:           "/sbin/iwlist",
		WlanScan:         "/usr/sbin/wlan-scan",
		AP:               "/usr/sbin/ap",
		ScanMode:         ScanWlanScan,
		HostedAPPrefix:   "gcwzero-",
		EnableAttempts:   50,
		EnableRetryDelay: 100 * time.Millisecond,
	}
}

// Activator installs a saved profile as the interface's live config.
// *netconf.Store implements it.
type Activator interface {
	Activate(ssid, systemDir, iface string) (string, error)
}

// ShellBackend implements Backend with the device's command-line tools.
type ShellBackend struct {
	cfg      Config
	runner   Runner
	profiles Activator
	logger   *zap.Logger
}

// NewShellBackend creates a backend. profiles may be nil, in which case
// Connect relies on whatever live config is already installed.
func NewShellBackend(cfg Config, runner Runner, profiles Activator, logger *zap.Logger) *ShellBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShellBackend{cfg: cfg, runner: runner, profiles: profiles, logger: logger}
}

// Config returns the backend configuration.
func (b *ShellBackend) Config() Config { return b.cfg }

// privileged runs a command through sudo when configured.
func (b *ShellBackend) privileged(ctx context.Context, name string, args ...string) (Result, error) {
	if b.cfg.Sudo == "" {
		return b.runner.Run(ctx, name, args...)
	}
	return b.runner.Run(ctx, b.cfg.Sudo, append([]string{name}, args...)...)
}

func (b *ShellBackend) sysfs(file string) (string, error) {
	data, err := os.ReadFile(filepath.Join(b.cfg.SysfsDir, b.cfg.Interface, file))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// MAC returns the interface hardware address, or "" when it is off.
func (b *ShellBackend) MAC() string {
	mac, err := b.sysfs("address")
	if err != nil {
		return ""
	}
	return mac
}

func (b *ShellBackend) broadcasting(ctx context.Context) bool {
	res, err := b.privileged(ctx, b.cfg.AP, "--status")
	if err != nil {
		return false
	}
	return APRunning(res.Stdout)
}

func (b *ShellBackend) linkSSID(ctx context.Context) string {
	res, err := b.runner.Run(ctx, b.cfg.IW, "dev", b.cfg.Interface, "link")
	if err != nil {
		return ""
	}
	return ParseLinkSSID(res.Stdout)
}

func (b *ShellBackend) ipv4(ctx context.Context) string {
	res, err := b.runner.Run(ctx, b.cfg.IP, "-4", "a", "show", b.cfg.Interface)
	if err != nil {
		return ""
	}
	return ParseIPv4(res.Stdout)
}

// Status implements Backend.
func (b *ShellBackend) Status(ctx context.Context) (Status, error) {
	info, err := b.Info(ctx)
	return info.Status, err
}

// Info implements Backend.
func (b *ShellBackend) Info(ctx context.Context) (Info, error) {
	info := Info{Interface: b.cfg.Interface, MAC: b.MAC()}

	if b.broadcasting(ctx) {
		info.Status = StatusBroadcasting
		info.SSID = HostedSSID(b.cfg.HostedAPPrefix, info.MAC)
		info.IP = b.ipv4(ctx)
		return info, nil
	}

	if _, err := b.sysfs("dormant"); err != nil {
		info.Status = StatusOff
		return info, nil
	}

	info.Status = StatusUp
	if info.SSID = b.linkSSID(ctx); info.SSID != "" {
		info.Status = StatusAssociated
		if info.IP = b.ipv4(ctx); info.IP != "" {
			info.Status = StatusConnected
		}
	}
	return info, ctx.Err()
}

// Enable implements Backend. It is a no-op when the interface is already up.
func (b *ShellBackend) Enable(ctx context.Context) error {
	if _, err := b.sysfs("dormant"); err == nil {
		return nil
	}
	return b.linkUp(ctx)
}

func (b *ShellBackend) linkUp(ctx context.Context) error {
	attempts := b.cfg.EnableAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if _, lastErr = b.privileged(ctx, b.cfg.IP, "link", "set", b.cfg.Interface, "up"); lastErr == nil {
			b.logger.Info("Interface enabled", zap.String("interface", b.cfg.Interface))
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.cfg.EnableRetryDelay):
		}
	}
	return fmt.Errorf("failed to enable %s: %w", b.cfg.Interface, lastErr)
}

// Disable implements Backend.
func (b *ShellBackend) Disable(ctx context.Context) error {
	if _, err := b.privileged(ctx, b.cfg.IP, "link", "set", b.cfg.Interface, "down"); err != nil {
		return fmt.Errorf("failed to disable %s: %w", b.cfg.Interface, err)
	}
	b.logger.Info("Interface disabled", zap.String("interface", b.cfg.Interface))
	return nil
}

// ifDown takes the interface off any network and stops the hosted AP.
// Failures are logged; both tools fail harmlessly when there is nothing to stop.
func (b *ShellBackend) ifDown(ctx context.Context) {
	if _, err := b.privileged(ctx, b.cfg.Ifdown, b.cfg.Interface); err != nil {
		b.logger.Debug("ifdown failed", zap.Error(err))
	}
	if _, err := b.privileged(ctx, b.cfg.AP, "--stop"); err != nil {
		b.logger.Debug("ap --stop failed", zap.Error(err))
	}
}

// prepare leaves the interface enabled and detached.
func (b *ShellBackend) prepare(ctx context.Context) error {
	status, err := b.Status(ctx)
	if err != nil {
		return err
	}
	if status.Enabled() {
		b.ifDown(ctx)
		return nil
	}
	return b.Enable(ctx)
}

// Connect implements Backend.
func (b *ShellBackend) Connect(ctx context.Context, ssid string) error {
	if b.profiles != nil {
		if _, err := b.profiles.Activate(ssid, b.cfg.SystemDir, b.cfg.Interface); err != nil {
			if !errors.Is(err, netconf.ErrNotFound) {
				return fmt.Errorf("failed to activate profile for %s: %w", ssid, err)
			}
			b.logger.Warn("No saved profile, using current live config", zap.String("ssid", ssid))
		}
	}

	if err := b.prepare(ctx); err != nil {
		return err
	}

	if _, err := b.privileged(ctx, b.cfg.Ifup, b.cfg.Interface); err != nil {
		b.logger.Warn("ifup failed", zap.String("ssid", ssid), zap.Error(err))
	}

	if b.linkSSID(ctx) == "" {
		return fmt.Errorf("connect to %s: %w", ssid, ErrNotAssociated)
	}
	b.logger.Info("Connected", zap.String("ssid", ssid))
	return nil
}

// Disconnect implements Backend.
func (b *ShellBackend) Disconnect(ctx context.Context) error {
	b.ifDown(ctx)
	return ctx.Err()
}

// StartHostedAP implements Backend.
func (b *ShellBackend) StartHostedAP(ctx context.Context) error {
	if err := b.prepare(ctx); err != nil {
		return err
	}
	if _, err := b.privileged(ctx, b.cfg.AP, "--start"); err != nil {
		return fmt.Errorf("failed to start hosted AP: %w", err)
	}
	if !b.broadcasting(ctx) {
		return fmt.Errorf("start hosted AP: %w", ErrAPNotRunning)
	}
	b.logger.Info("Hosted AP started", zap.String("ssid", HostedSSID(b.cfg.HostedAPPrefix, b.MAC())))
	return nil
}

// StopHostedAP implements Backend. Stopping an AP that is not running is a no-op.
func (b *ShellBackend) StopHostedAP(ctx context.Context) error {
	if !b.broadcasting(ctx) {
		return nil
	}
	if _, err := b.privileged(ctx, b.cfg.AP, "--stop"); err != nil {
		return fmt.Errorf("failed to stop hosted AP: %w", err)
	}
	if b.broadcasting(ctx) {
		return fmt.Errorf("stop hosted AP: %w", ErrAPNotRunning)
	}
	b.logger.Info("Hosted AP stopped")
	return nil
}

// Scan implements Backend.
func (b *ShellBackend) Scan(ctx context.Context) ([]AccessPoint, error) {
	_, dormantErr := b.sysfs("dormant")
	wasOff := dormantErr != nil
	if wasOff {
		if err := b.linkUp(ctx); err != nil {
			return nil, err
		}
		defer func() {
			b.ifDown(ctx)
			if err := b.Disable(ctx); err != nil {
				b.logger.Warn("Failed to disable interface after scan", zap.Error(err))
			}
		}()
	}

	aps, err := b.scan(ctx)
	if err != nil {
		return nil, err
	}
	aps = Normalize(aps)
	if len(aps) == 0 {
		return nil, ErrNoNetworks
	}
	b.logger.Info("Scan complete", zap.Int("networks", len(aps)))
	return aps, nil
}

func (b *ShellBackend) scan(ctx context.Context) ([]AccessPoint, error) {
	if b.cfg.ScanMode == ScanIwlist {
		res, err := b.privileged(ctx, b.cfg.Iwlist, b.cfg.Interface, "scan")
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		return ParseIwlist(res.Stdout), nil
	}

	res, err := b.privileged(ctx, b.cfg.WlanScan, b.cfg.Interface)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	aps, skipped := ParseWlanScan(res.Stdout)
	for _, line := range skipped {
		b.logger.Debug("Skipping unparsable scan line", zap.String("line", line))
	}
	if len(aps) == 0 && len(skipped) > 0 {
		return nil, &ParseError{Tool: "wlan-scan", Line: skipped[0], Err: ErrNoNetworks}
	}
	return aps, nil
}
