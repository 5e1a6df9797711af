package network

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/wificonnect/internal/netconf"
)

// scriptedRunner answers commands from a table keyed by the joined command line.
type scriptedRunner struct {
	responses map[string]Result
	failures  map[string]error
	calls     []string
	// onCall lets a test change state when a command runs.
	onCall func(cmd string)
}

func newScriptedRunner() *scriptedRunner {
	return &scriptedRunner{
		responses: make(map[string]Result),
		failures:  make(map[string]error),
	}
}

func (r *scriptedRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, cmd)
	if r.onCall != nil {
		r.onCall(cmd)
	}
	if err, ok := r.failures[cmd]; ok {
		return Result{ExitCode: 1}, err
	}
	return r.responses[cmd], nil
}

func (r *scriptedRunner) called(cmd string) bool {
	for _, c := range r.calls {
		if c == cmd {
			return true
		}
	}
	return false
}

type testIface struct {
	dir string
}

func newTestIface(t *testing.T, up bool) *testIface {
	t.Helper()
	dir := t.TempDir()
	ti := &testIface{dir: dir}
	if err := os.MkdirAll(filepath.Join(dir, "wlan0"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wlan0", "address"), []byte("00:11:22:aa:bb:cc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ti.setUp(t, up)
	return ti
}

func (ti *testIface) setUp(t *testing.T, up bool) {
	path := filepath.Join(ti.dir, "wlan0", "dormant")
	if up {
		if err := os.WriteFile(path, []byte("0\n"), 0644); err != nil {
			t.Fatal(err)
		}
		return
	}
	os.Remove(path)
}

func testConfig(sysfs string) Config {
	cfg := DefaultConfig()
	cfg.SysfsDir = sysfs
	cfg.Sudo = "sudo"
	cfg.EnableAttempts = 2
	cfg.EnableRetryDelay = 0
	return cfg
}

func TestShellStatus(t *testing.T) {
	tests := []struct {
		name      string
		up        bool
		responses map[string]Result
		want      Status
		wantSSID  string
		wantIP    string
	}{
		{
			name: "off",
			up:   false,
			want: StatusOff,
		},
		{
			name: "up",
			up:   true,
			want: StatusUp,
		},
		{
			name: "associated",
			up:   true,
			responses: map[string]Result{
				"/sbin/iw dev wlan0 link": {Stdout: "Connected to x\n\tSSID: HomeNet\n"},
			},
			want:     StatusAssociated,
			wantSSID: "HomeNet",
		},
		{
			name: "connected",
			up:   true,
			responses: map[string]Result{
				"/sbin/iw dev wlan0 link":   {Stdout: "\tSSID: HomeNet\n"},
				"/sbin/ip -4 a show wlan0": {Stdout: "    inet 10.0.0.7/24 scope global wlan0\n"},
			},
			want:     StatusConnected,
			wantSSID: "HomeNet",
			wantIP:   "10.0.0.7",
		},
		{
			name: "broadcasting",
			up:   true,
			responses: map[string]Result{
				"sudo /usr/sbin/ap --status": {Stdout: "ap is running\n"},
			},
			want:     StatusBroadcasting,
			wantSSID: "gcwzero-001122aabbcc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iface := newTestIface(t, tt.up)
			r := newScriptedRunner()
			for k, v := range tt.responses {
				r.responses[k] = v
			}
			b := NewShellBackend(testConfig(iface.dir), r, nil, nil)

			info, err := b.Info(context.Background())
			if err != nil {
				t.Fatalf("Info() error = %v", err)
			}
			if info.Status != tt.want {
				t.Errorf("Status = %v, want %v", info.Status, tt.want)
			}
			if info.SSID != tt.wantSSID {
				t.Errorf("SSID = %q, want %q", info.SSID, tt.wantSSID)
			}
			if info.IP != tt.wantIP {
				t.Errorf("IP = %q, want %q", info.IP, tt.wantIP)
			}
		})
	}
}

func TestShellScanSortsAndDropsHidden(t *testing.T) {
	iface := newTestIface(t, true)
	r := newScriptedRunner()
	r.responses["sudo /usr/sbin/wlan-scan wlan0"] = Result{Stdout: strings.Join([]string{
		`{"ssid": "weak", "quality": 20},`,
		`{"ssid": "", "quality": 99},`,
		`{"ssid": "strong", "quality": 88},`,
	}, "\n")}
	b := NewShellBackend(testConfig(iface.dir), r, nil, nil)

	aps, err := b.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(aps) != 2 || aps[0].SSID != "strong" || aps[1].SSID != "weak" {
		t.Errorf("Scan() = %+v", aps)
	}
	if r.called("sudo /sbin/ip link set wlan0 down") {
		t.Error("Scan should not disable an interface that was already up")
	}
}

func TestShellScanEnablesTemporarily(t *testing.T) {
	iface := newTestIface(t, false)
	r := newScriptedRunner()
	r.responses["sudo /usr/sbin/wlan-scan wlan0"] = Result{Stdout: `{"ssid": "net", "quality": 50}`}
	b := NewShellBackend(testConfig(iface.dir), r, nil, nil)

	if _, err := b.Scan(context.Background()); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	for _, cmd := range []string{
		"sudo /sbin/ip link set wlan0 up",
		"sudo /sbin/ifdown wlan0",
		"sudo /sbin/ip link set wlan0 down",
	} {
		if !r.called(cmd) {
			t.Errorf("expected %q in %v", cmd, r.calls)
		}
	}
}

func TestShellScanEmpty(t *testing.T) {
	iface := newTestIface(t, true)
	r := newScriptedRunner()
	b := NewShellBackend(testConfig(iface.dir), r, nil, nil)

	_, err := b.Scan(context.Background())
	if !errors.Is(err, ErrNoNetworks) {
		t.Errorf("Scan() error = %v, want ErrNoNetworks", err)
	}
}

func TestShellScanCommandFailure(t *testing.T) {
	iface := newTestIface(t, true)
	r := newScriptedRunner()
	r.failures["sudo /usr/sbin/wlan-scan wlan0"] = &CommandError{Command: "sudo", ExitCode: 1}
	b := NewShellBackend(testConfig(iface.dir), r, nil, nil)

	_, err := b.Scan(context.Background())
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Errorf("Scan() error = %v, want *CommandError", err)
	}
}

func TestShellScanIwlistMode(t *testing.T) {
	iface := newTestIface(t, true)
	r := newScriptedRunner()
	r.responses["sudo /sbin/iwlist wlan0 scan"] = Result{Stdout: "Cell 01 - Address: 00:00:00:00:00:01\nQuality=35/70\nESSID:\"iw\"\n"}
	cfg := testConfig(iface.dir)
	cfg.ScanMode = ScanIwlist
	b := NewShellBackend(cfg, r, nil, nil)

	aps, err := b.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(aps) != 1 || aps[0].SSID != "iw" || aps[0].Quality != 50 {
		t.Errorf("Scan() = %+v", aps)
	}
}

func TestShellConnectActivatesProfile(t *testing.T) {
	iface := newTestIface(t, true)
	system := t.TempDir()
	store := netconf.NewStore(t.TempDir(), nil)
	if err := store.Save(netconf.Record{SSID: "HomeNet", Passphrase: "pw12345678"}); err != nil {
		t.Fatal(err)
	}

	r := newScriptedRunner()
	r.onCall = func(cmd string) {
		if cmd == "sudo /sbin/ifup wlan0" {
			r.responses["/sbin/iw dev wlan0 link"] = Result{Stdout: "\tSSID: HomeNet\n"}
		}
	}
	cfg := testConfig(iface.dir)
	cfg.SystemDir = system
	b := NewShellBackend(cfg, r, store, nil)

	if err := b.Connect(context.Background(), "HomeNet"); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if _, err := os.Stat(netconf.ActivePath(system, "wlan0")); err != nil {
		t.Errorf("live config not installed: %v", err)
	}
	if !r.called("sudo /sbin/ifdown wlan0") {
		t.Error("Connect on an enabled interface should ifdown first")
	}
}

func TestShellConnectFailure(t *testing.T) {
	iface := newTestIface(t, true)
	r := newScriptedRunner()
	b := NewShellBackend(testConfig(iface.dir), r, nil, nil)

	err := b.Connect(context.Background(), "Nowhere")
	if !errors.Is(err, ErrNotAssociated) {
		t.Errorf("Connect() error = %v, want ErrNotAssociated", err)
	}
}

func TestShellHostedAP(t *testing.T) {
	iface := newTestIface(t, true)
	r := newScriptedRunner()
	r.onCall = func(cmd string) {
		switch cmd {
		case "sudo /usr/sbin/ap --start":
			r.responses["sudo /usr/sbin/ap --status"] = Result{Stdout: "ap is running\n"}
		case "sudo /usr/sbin/ap --stop":
			delete(r.responses, "sudo /usr/sbin/ap --status")
		}
	}
	b := NewShellBackend(testConfig(iface.dir), r, nil, nil)
	ctx := context.Background()

	if err := b.StartHostedAP(ctx); err != nil {
		t.Fatalf("StartHostedAP() error = %v", err)
	}
	if s, _ := b.Status(ctx); s != StatusBroadcasting {
		t.Errorf("Status() = %v, want broadcasting", s)
	}
	if err := b.StopHostedAP(ctx); err != nil {
		t.Fatalf("StopHostedAP() error = %v", err)
	}
	if s, _ := b.Status(ctx); s == StatusBroadcasting {
		t.Error("Status() still broadcasting after stop")
	}
}

func TestShellStartHostedAPNotRunning(t *testing.T) {
	iface := newTestIface(t, true)
	b := NewShellBackend(testConfig(iface.dir), newScriptedRunner(), nil, nil)

	if err := b.StartHostedAP(context.Background()); !errors.Is(err, ErrAPNotRunning) {
		t.Errorf("StartHostedAP() error = %v, want ErrAPNotRunning", err)
	}
}

func TestShellWithoutSudo(t *testing.T) {
	iface := newTestIface(t, false)
	r := newScriptedRunner()
	cfg := testConfig(iface.dir)
	cfg.Sudo = ""
	b := NewShellBackend(cfg, r, nil, nil)

	if err := b.Enable(context.Background()); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	if !r.called("/sbin/ip link set wlan0 up") {
		t.Errorf("calls = %v, want direct ip invocation", r.calls)
	}
}

func TestShellEnableGivesUp(t *testing.T) {
	iface := newTestIface(t, false)
	r := newScriptedRunner()
	r.failures["sudo /sbin/ip link set wlan0 up"] = &CommandError{Command: "sudo", ExitCode: 2}
	b := NewShellBackend(testConfig(iface.dir), r, nil, nil)

	if err := b.Enable(context.Background()); err == nil {
		t.Fatal("Enable() expected error")
	}
	n := 0
	for _, c := range r.calls {
		if c == "sudo /sbin/ip link set wlan0 up" {
			n++
		}
	}
	if n != 2 {
		t.Errorf("enable attempted %d times, want 2", n)
	}
}
