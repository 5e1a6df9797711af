package network

import (
	"bufio"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseWlanScan parses wlan-scan output: one JSON object per line with at
// least "ssid" and "quality", optionally wrapped in a JSON array with
// trailing commas. Lines that are not objects are skipped and returned.
func ParseWlanScan(out string) (aps []AccessPoint, skipped []string) {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		line = strings.TrimSuffix(line, ",")
		if len(line) <= 2 {
			// "[", "]", "{}" and blank lines
			continue
		}
		if !gjson.Valid(line) {
			skipped = append(skipped, line)
			continue
		}
		obj := gjson.Parse(line)
		ssid := obj.Get("ssid")
		if !obj.IsObject() || !ssid.Exists() {
			skipped = append(skipped, line)
			continue
		}

		ap := AccessPoint{
			SSID:       ssid.String(),
			Quality:    QualityUnknown,
			MAC:        strings.ToLower(obj.Get("bssid").String()),
			Encryption: Encryption(strings.ToLower(obj.Get("encryption").String())),
		}
		if q := obj.Get("quality"); q.Exists() {
			ap.Quality = clampQuality(int(q.Int()))
		}
		aps = append(aps, ap)
	}
	return aps, skipped
}

// ParseIwlist parses "iwlist <iface> scan" output.
func ParseIwlist(out string) []AccessPoint {
	var (
		aps []AccessPoint
		cur *AccessPoint
	)
	flush := func() {
		if cur != nil {
			aps = append(aps, *cur)
		}
	}

	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "Cell "):
			flush()
			cur = &AccessPoint{Quality: QualityUnknown}
			if _, mac, ok := strings.Cut(line, "Address:"); ok {
				cur.MAC = strings.ToLower(strings.TrimSpace(mac))
			}
		case cur == nil:
			continue
		case strings.HasPrefix(line, "ESSID:"):
			cur.SSID = strings.Trim(strings.TrimPrefix(line, "ESSID:"), `"`)
		case strings.HasPrefix(line, "Quality="):
			cur.Quality = parseQualityRatio(strings.TrimPrefix(line, "Quality="))
		case strings.HasPrefix(line, "Encryption key:off"):
			cur.Encryption = EncryptionNone
		case strings.HasPrefix(line, "Encryption key:on"):
			cur.Encryption = EncryptionWEP
		case strings.HasPrefix(line, "IE: IEEE 802.11i/WPA2"):
			cur.Encryption = EncryptionWPA2
		case strings.HasPrefix(line, "IE: WPA"):
			if cur.Encryption != EncryptionWPA2 {
				cur.Encryption = EncryptionWPA
			}
		}
	}
	flush()
	return aps
}

// parseQualityRatio turns "54/70  Signal level=-56 dBm" into a percentage.
func parseQualityRatio(s string) int {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		s = s[:i]
	}
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return QualityUnknown
	}
	n, err1 := strconv.Atoi(num)
	d, err2 := strconv.Atoi(den)
	if err1 != nil || err2 != nil || d <= 0 {
		return QualityUnknown
	}
	return clampQuality(n * 100 / d)
}

func clampQuality(q int) int {
	switch {
	case q < 0:
		return 0
	case q > 100:
		return 100
	default:
		return q
	}
}

// Normalize drops hidden networks, keeps the strongest entry per SSID and
// sorts by quality, strongest first. Ties sort by SSID.
func Normalize(aps []AccessPoint) []AccessPoint {
	best := make(map[string]AccessPoint, len(aps))
	for _, ap := range aps {
		if strings.TrimSpace(ap.SSID) == "" {
			continue
		}
		if prev, ok := best[ap.SSID]; !ok || ap.Quality > prev.Quality {
			best[ap.SSID] = ap
		}
	}

	out := make([]AccessPoint, 0, len(best))
	for _, ap := range best {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quality != out[j].Quality {
			return out[i].Quality > out[j].Quality
		}
		return out[i].SSID < out[j].SSID
	})
	return out
}

// ParseIPv4 returns the first routable address in "ip -4 a show" output.
// Link-local 169.254.0.0/16 addresses are ignored.
func ParseIPv4(out string) string {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 || fields[0] != "inet" {
			continue
		}
		addr, _, _ := strings.Cut(fields[1], "/")
		if strings.HasPrefix(addr, "169.254.") {
			continue
		}
		return addr
	}
	return ""
}

// ParseLinkSSID returns the SSID from "iw dev <iface> link" output, or ""
// when not connected.
func ParseLinkSSID(out string) string {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if rest, ok := strings.CutPrefix(line, "SSID:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// APRunning reports whether "ap --status" output says the AP is up.
func APRunning(out string) bool {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "ap is running" {
			return true
		}
	}
	return false
}
