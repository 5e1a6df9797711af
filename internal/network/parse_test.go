package network

import (
	"testing"
)

func TestParseWlanScan(t *testing.T) {
	out := `[
{"ssid": "HomeNet", "quality": 72},
{"ssid": "", "quality": 90},
garbage line
{"ssid": "Cafe", "quality": 40, "bssid": "AA:BB:CC:00:11:22", "encryption": "WPA2"},
{"quality": 10}
]`
	aps, skipped := ParseWlanScan(out)

	if len(aps) != 3 {
		t.Fatalf("got %d access points, want 3: %+v", len(aps), aps)
	}
	if aps[0].SSID != "HomeNet" || aps[0].Quality != 72 {
		t.Errorf("aps[0] = %+v", aps[0])
	}
	if aps[2].MAC != "aa:bb:cc:00:11:22" || aps[2].Encryption != EncryptionWPA2 {
		t.Errorf("aps[2] = %+v", aps[2])
	}
	if len(skipped) != 2 {
		t.Errorf("skipped = %v, want 2 lines", skipped)
	}
}

func TestParseWlanScanQualityClamp(t *testing.T) {
	aps, _ := ParseWlanScan(`{"ssid": "loud", "quality": 140}` + "\n" + `{"ssid": "quiet"}`)
	if len(aps) != 2 {
		t.Fatalf("got %d access points, want 2", len(aps))
	}
	if aps[0].Quality != 100 {
		t.Errorf("Quality = %d, want 100", aps[0].Quality)
	}
	if aps[1].Quality != QualityUnknown {
		t.Errorf("Quality = %d, want unknown", aps[1].Quality)
	}
}

func TestParseIwlist(t *testing.T) {
	out := `wlan0     Scan completed :
          Cell 01 - Address: 00:11:22:33:44:55
                    Channel:6
                    Quality=70/70  Signal level=-40 dBm
                    Encryption key:on
                    ESSID:"Secure Net"
                    IE: IEEE 802.11i/WPA2 Version 1
                    IE: WPA Version 1
          Cell 02 - Address: 66:77:88:99:AA:BB
                    Quality=35/70  Signal level=-75 dBm
                    Encryption key:off
                    ESSID:"Open Cafe"
          Cell 03 - Address: 01:02:03:04:05:06
                    Quality=20/70  Signal level=-85 dBm
                    Encryption key:on
                    ESSID:"Old Router"
`
	aps := ParseIwlist(out)
	if len(aps) != 3 {
		t.Fatalf("got %d cells, want 3", len(aps))
	}

	tests := []struct {
		ssid    string
		mac     string
		quality int
		enc     Encryption
	}{
		{"Secure Net", "00:11:22:33:44:55", 100, EncryptionWPA2},
		{"Open Cafe", "66:77:88:99:aa:bb", 50, EncryptionNone},
		{"Old Router", "01:02:03:04:05:06", 28, EncryptionWEP},
	}
	for i, tt := range tests {
		got := aps[i]
		if got.SSID != tt.ssid || got.MAC != tt.mac || got.Quality != tt.quality || got.Encryption != tt.enc {
			t.Errorf("aps[%d] = %+v, want %+v", i, got, tt)
		}
	}
}

func TestNormalize(t *testing.T) {
	aps := Normalize([]AccessPoint{
		{SSID: "b", Quality: 30},
		{SSID: "", Quality: 99},
		{SSID: "a", Quality: 30},
		{SSID: "c", Quality: 80},
		{SSID: "b", Quality: 60},
		{SSID: "   ", Quality: 50},
	})

	want := []struct {
		ssid    string
		quality int
	}{{"c", 80}, {"b", 60}, {"a", 30}}
	if len(aps) != len(want) {
		t.Fatalf("Normalize() = %+v", aps)
	}
	for i, w := range want {
		if aps[i].SSID != w.ssid || aps[i].Quality != w.quality {
			t.Errorf("aps[%d] = %+v, want %s/%d", i, aps[i], w.ssid, w.quality)
		}
	}
}

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			"routable",
			"3: wlan0: <BROADCAST,MULTICAST,UP> mtu 1500\n    inet 192.168.1.23/24 brd 192.168.1.255 scope global wlan0\n",
			"192.168.1.23",
		},
		{
			"link local only",
			"3: wlan0: <UP>\n    inet 169.254.10.2/16 scope link wlan0\n",
			"",
		},
		{"down", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseIPv4(tt.out); got != tt.want {
				t.Errorf("ParseIPv4() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLinkSSID(t *testing.T) {
	out := "Connected to 00:11:22:33:44:55 (on wlan0)\n\tSSID: My Home Net\n\tfreq: 2437\n"
	if got := ParseLinkSSID(out); got != "My Home Net" {
		t.Errorf("ParseLinkSSID() = %q", got)
	}
	if got := ParseLinkSSID("Not connected.\n"); got != "" {
		t.Errorf("ParseLinkSSID(not connected) = %q", got)
	}
}

func TestAPRunning(t *testing.T) {
	if !APRunning("ap is running\n") {
		t.Error("APRunning should detect running AP")
	}
	if APRunning("ap is stopped\n") {
		t.Error("APRunning should not match other output")
	}
}

func TestHostedNames(t *testing.T) {
	ssid := HostedSSID("gcwzero-", "00:11:22:AA:BB:CC")
	if ssid != "gcwzero-001122aabbcc" {
		t.Errorf("HostedSSID() = %q", ssid)
	}
	key, ok := HostedKey("gcwzero-", ssid)
	if !ok || key != "001122aabbcc" {
		t.Errorf("HostedKey() = %q, %v", key, ok)
	}
	if _, ok := HostedKey("gcwzero-", "HomeNet"); ok {
		t.Error("HostedKey should reject non-hosted SSIDs")
	}
}
