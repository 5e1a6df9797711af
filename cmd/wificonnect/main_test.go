package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/wificonnect/internal/config"
	"github.com/muurk/wificonnect/internal/input"
	"github.com/muurk/wificonnect/internal/netconf"
)

// writeConfig creates a config file whose networks directory is inside the
// test's temp dir.
func writeConfig(t *testing.T) (path string, networks string) {
	t.Helper()
	dir := t.TempDir()
	s := config.NewSettings(dir)
	path = filepath.Join(dir, "config.yaml")
	require.NoError(t, s.Save(path))
	return path, s.Paths.Networks
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		connectKey, connectWEP, savedReveal, forgetYes = "", false, false, false
		screenshotPress, demoMode, initForce = "", false, false
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseButtons(t *testing.T) {
	got, err := parseButtons("down, a,,Start")
	require.NoError(t, err)
	assert.Equal(t, []input.Button{input.Down, input.A, input.Start}, got)

	got, err = parseButtons("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseButtons("down,jump")
	assert.Error(t, err)
}

func TestConnectSavesKey(t *testing.T) {
	cfg, networks := writeConfig(t)

	out, err := execute(t, "--config", cfg, "--demo", "connect", "HomeNet", "--key", "hunter22")
	require.NoError(t, err)
	assert.Contains(t, out, "Connected")

	rec, err := netconf.NewStore(networks, nil).Load("HomeNet")
	require.NoError(t, err)
	assert.Equal(t, "hunter22", rec.Passphrase)
	assert.Equal(t, netconf.EncryptionWPA2, rec.Encryption)
}

func TestConnectUnknownNetwork(t *testing.T) {
	cfg, _ := writeConfig(t)

	_, err := execute(t, "--config", cfg, "--demo", "connect", "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no saved configuration")
}

func TestConnectHostedAP(t *testing.T) {
	cfg, networks := writeConfig(t)

	_, err := execute(t, "--config", cfg, "--demo", "connect", "gcwzero-00112233aabb")
	require.NoError(t, err)

	key, ok := netconf.NewStore(networks, nil).Passphrase("gcwzero-00112233aabb")
	assert.True(t, ok)
	assert.Equal(t, "00112233aabb", key)
}

func TestSavedAndForget(t *testing.T) {
	cfg, networks := writeConfig(t)
	store := netconf.NewStore(networks, nil)
	require.NoError(t, store.Save(netconf.Record{SSID: "Cafe"}))

	out, err := execute(t, "--config", cfg, "saved")
	require.NoError(t, err)
	assert.Contains(t, out, "Cafe")

	_, err = execute(t, "--config", cfg, "forget", "Cafe", "--yes")
	require.NoError(t, err)
	_, err = store.Load("Cafe")
	assert.ErrorIs(t, err, netconf.ErrNotFound)

	out, err = execute(t, "--config", cfg, "saved")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved networks")
}

func TestScreenshot(t *testing.T) {
	cfg, _ := writeConfig(t)
	png := filepath.Join(t.TempDir(), "scan.png")

	out, err := execute(t, "--config", cfg, "--demo", "screenshot", "-o", png, "--press", "down,a")
	require.NoError(t, err)
	assert.Contains(t, out, "network-list")

	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestScreenshotPressesThroughTimedMessage(t *testing.T) {
	cfg, _ := writeConfig(t)
	png := filepath.Join(t.TempDir(), "ap.png")

	// Create AP shows "AP created!" until it expires. Disconnect is then
	// prepended to the menu, so one up from the kept index is the scan.
	out, err := execute(t, "--config", cfg, "--demo", "screenshot", "-o", png,
		"--press", "down,down,down,a,up,a")
	require.NoError(t, err)
	assert.Contains(t, out, "network-list")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wificonnect", "config.yaml")

	_, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	_, err = config.Load(path)
	require.NoError(t, err)

	_, err = execute(t, "--config", path, "config", "init")
	assert.Error(t, err)
}
