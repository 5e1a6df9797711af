package netconf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	if err := s.Save(Record{SSID: "My Network", Passphrase: "secret123"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rec, err := s.Load("My Network")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if rec.Passphrase != "secret123" {
		t.Errorf("Passphrase = %q, want %q", rec.Passphrase, "secret123")
	}
	if rec.SSID != "My Network" {
		t.Errorf("SSID = %q, want %q", rec.SSID, "My Network")
	}
	if rec.Encryption != EncryptionWPA2 {
		t.Errorf("Encryption = %q, want %q", rec.Encryption, EncryptionWPA2)
	}
	if rec.DHCPRetries != DefaultDHCPRetries {
		t.Errorf("DHCPRetries = %d, want %d", rec.DHCPRetries, DefaultDHCPRetries)
	}
}

func TestSaveOpenNetwork(t *testing.T) {
	s := NewStore(t.TempDir(), nil)

	if err := s.Save(Record{SSID: "Open AP"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rec, err := s.Load("Open AP")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !rec.Open() {
		t.Errorf("Open() = false, passphrase %q", rec.Passphrase)
	}
	if _, ok := s.Passphrase("Open AP"); ok {
		t.Error("Passphrase() should report no key for an open network")
	}

	data, err := os.ReadFile(s.Path("Open AP"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.Contains(string(data), keyPassphrase) {
		t.Errorf("open record should not contain %s:\n%s", keyPassphrase, data)
	}
}

func TestFileNameEscaping(t *testing.T) {
	tests := []struct {
		ssid string
		want string
	}{
		{"My Network", "My+Network.conf"},
		{"a/b", "a%2Fb.conf"},
		{"plain", "plain.conf"},
		{"100%", "100%25.conf"},
	}

	for _, tt := range tests {
		t.Run(tt.ssid, func(t *testing.T) {
			got := FileName(tt.ssid)
			if got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.ssid, got, tt.want)
			}
			back, ok := SSIDFromFileName(got)
			if !ok || back != tt.ssid {
				t.Errorf("SSIDFromFileName(%q) = %q, %v", got, back, ok)
			}
		})
	}
}

func TestSpecialCharactersRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	rec := Record{SSID: `we"ird/$ssid`, Passphrase: "pa\\ss\"word$`x` = y"}

	if err := s.Save(rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := s.Load(rec.SSID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.SSID != rec.SSID || got.Passphrase != rec.Passphrase {
		t.Errorf("round trip = %+v, want %+v", got, rec)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	_, err := s.Load("nothing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestListSortedDescendingAndSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, nil)

	for _, ssid := range []string{"zeta", "Alpha", "mid"} {
		if err := s.Save(Record{SSID: ssid, Passphrase: "k-" + ssid}); err != nil {
			t.Fatalf("Save(%q) error = %v", ssid, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.conf"), []byte("WLAN_ESSID=\"broken\"\nnot a pair\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0600); err != nil {
		t.Fatal(err)
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var got []string
	for _, r := range records {
		got = append(got, r.SSID)
	}
	want := []string{"zeta", "mid", "Alpha"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if records[1].Passphrase != "k-mid" {
		t.Errorf("records[1].Passphrase = %q, want %q", records[1].Passphrase, "k-mid")
	}
}

func TestListMissingDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent"), nil)
	records, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("List() = %v, want none", records)
	}
}

func TestDelete(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	if err := s.Save(Record{SSID: "gone", Passphrase: "x"}); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete("gone"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Load("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() after Delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestActivate(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	system := filepath.Join(t.TempDir(), "network")
	if err := s.Save(Record{SSID: "home", Passphrase: "hunter22"}); err != nil {
		t.Fatal(err)
	}

	dst, err := s.Activate("home", system, "wlan0")
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if want := filepath.Join(system, "config-wlan0.conf"); dst != want {
		t.Errorf("Activate() path = %q, want %q", dst, want)
	}

	src, _ := os.ReadFile(s.Path("home"))
	copied, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(src) != string(copied) {
		t.Errorf("activated file differs:\n%s\nvs\n%s", copied, src)
	}

	if _, err := s.Activate("missing", system, "wlan0"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Activate(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMigrateLegacyNames(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, nil)

	legacy := filepath.Join(dir, `My\ Network.conf`)
	if err := os.WriteFile(legacy, []byte("WLAN_ESSID=\"My Network\"\nWLAN_PASSPHRASE=\"abc\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	n, err := s.MigrateLegacyNames()
	if err != nil {
		t.Fatalf("MigrateLegacyNames() error = %v", err)
	}
	if n != 1 {
		t.Errorf("MigrateLegacyNames() = %d, want 1", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "My+Network.conf")); err != nil {
		t.Errorf("migrated file missing: %v", err)
	}
	if key, ok := s.Passphrase("My Network"); !ok || key != "abc" {
		t.Errorf("Passphrase() = %q, %v, want abc", key, ok)
	}
}

func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"missing equals", "WLAN_ESSID=\"a\"\ngarbage\n", 2},
		{"unterminated quote", "WLAN_ESSID=\"abc\n", 1},
		{"bad retries", "WLAN_DHCP_RETRIES=many\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRecord("test.conf", strings.NewReader(tt.input))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("parseRecord() error = %v, want *ParseError", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Line = %d, want %d", perr.Line, tt.line)
			}
		})
	}
}

func TestParseRecordIgnoresCommentsAndUnknownKeys(t *testing.T) {
	input := "# saved by hand\n\nWLAN_ESSID=\"cafe\"\nWLAN_CHANNEL=6\nWLAN_PASSPHRASE=bare\n"
	rec, err := parseRecord("test.conf", strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseRecord() error = %v", err)
	}
	if rec.SSID != "cafe" || rec.Passphrase != "bare" {
		t.Errorf("parseRecord() = %+v", rec)
	}
}
