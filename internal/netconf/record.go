package netconf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encryption values written to WLAN_ENCRYPTION.
const (
	EncryptionWPA2 = "wpa2"
	EncryptionWEP  = "wep"
)

// DefaultDHCPRetries is written to every record.
const DefaultDHCPRetries = 20

const (
	keyESSID       = "WLAN_ESSID"
	keyPassphrase  = "WLAN_PASSPHRASE"
	keyEncryption  = "WLAN_ENCRYPTION"
	keyDHCPRetries = "WLAN_DHCP_RETRIES"
)

// Record is one saved network.
type Record struct {
	SSID string
	// Passphrase is empty for open networks.
	Passphrase string
	// Encryption is EncryptionWPA2 or EncryptionWEP, empty for open networks.
	Encryption  string
	DHCPRetries int
}

// Open reports whether the record has no passphrase.
func (r Record) Open() bool {
	return r.Passphrase == ""
}

// WriteTo writes r in record format.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s=%s\n", keyESSID, quote(r.SSID))
	if !r.Open() {
		enc := r.Encryption
		if enc == "" {
			enc = EncryptionWPA2
		}
		fmt.Fprintf(&b, "%s=%s\n", keyPassphrase, quote(r.Passphrase))
		fmt.Fprintf(&b, "%s=%s\n", keyEncryption, quote(enc))
	}
	retries := r.DHCPRetries
	if retries <= 0 {
		retries = DefaultDHCPRetries
	}
	fmt.Fprintf(&b, "%s=%d\n", keyDHCPRetries, retries)

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// parseRecord reads a record. Unknown keys are ignored; blank lines and
// lines starting with # are skipped. Any other line without '=' or with a
// badly quoted value is a ParseError.
func parseRecord(path string, rd io.Reader) (Record, error) {
	var rec Record
	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, raw, ok := strings.Cut(text, "=")
		if !ok {
			return Record{}, &ParseError{Path: path, Line: line, Text: text, Reason: "missing '='"}
		}
		value, err := unquote(strings.TrimSpace(raw))
		if err != nil {
			return Record{}, &ParseError{Path: path, Line: line, Text: text, Reason: err.Error()}
		}

		switch strings.TrimSpace(key) {
		case keyESSID:
			rec.SSID = value
		case keyPassphrase:
			rec.Passphrase = value
		case keyEncryption:
			rec.Encryption = value
		case keyDHCPRetries:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Record{}, &ParseError{Path: path, Line: line, Text: text, Reason: "invalid retry count"}
			}
			rec.DHCPRetries = n
		}
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rec, nil
}

// escaped lists the characters the shell would interpret inside double quotes.
const escaped = "\\\"$`"

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if strings.ContainsRune(escaped, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// unquote reverses quote. Bare values are returned as is.
func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	if len(s) < 2 || !strings.HasSuffix(s, `"`) {
		return "", fmt.Errorf("unterminated quoted value")
	}
	body := s[1 : len(s)-1]

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' {
			if i+1 == len(body) {
				return "", fmt.Errorf("dangling escape")
			}
			i++
			b.WriteByte(body[i])
			continue
		}
		if c == '"' {
			return "", fmt.Errorf("unescaped quote inside value")
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
