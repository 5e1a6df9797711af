package keyboard

import "unicode/utf8"

// DefaultShrinkThreshold is the buffer length above which the entry is drawn
// in the smaller font.
const DefaultShrinkThreshold = 20

// Kind is what a text entry session is collecting.
type Kind int

const (
	KindSSID Kind = iota
	KindKey
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindSSID {
		return "ssid"
	}
	return "key"
}

// DisplaySize is the font size class the buffer is rendered with.
type DisplaySize int

const (
	SizeNormal DisplaySize = iota
	SizeShrunk
)

// Entry accumulates characters chosen on the keyboard.
type Entry struct {
	kind      Kind
	ssid      string
	buf       []rune
	threshold int
}

// NewEntry starts a session. ssid names the network a key is being entered
// for and is empty for SSID sessions. A threshold <= 0 uses the default.
func NewEntry(kind Kind, ssid string, threshold int) *Entry {
	if threshold <= 0 {
		threshold = DefaultShrinkThreshold
	}
	return &Entry{kind: kind, ssid: ssid, threshold: threshold}
}

// Kind returns the session kind.
func (e *Entry) Kind() Kind { return e.kind }

// SSID returns the network the session is for.
func (e *Entry) SSID() string { return e.ssid }

// Text returns the buffer contents.
func (e *Entry) Text() string { return string(e.buf) }

// Len returns the buffer length in characters.
func (e *Entry) Len() int { return len(e.buf) }

// SetText replaces the buffer, used to prefill an existing key.
func (e *Entry) SetText(s string) {
	e.buf = []rune(s)
}

// Append adds label to the buffer. Empty labels are ignored.
func (e *Entry) Append(label string) bool {
	if label == "" {
		return false
	}
	for len(label) > 0 {
		r, n := utf8.DecodeRuneInString(label)
		e.buf = append(e.buf, r)
		label = label[n:]
	}
	return true
}

// Space appends a literal space.
func (e *Entry) Space() {
	e.buf = append(e.buf, ' ')
}

// Delete removes the last character. It reports whether anything was removed.
func (e *Entry) Delete() bool {
	if len(e.buf) == 0 {
		return false
	}
	e.buf = e.buf[:len(e.buf)-1]
	return true
}

// Clear empties the buffer.
func (e *Entry) Clear() {
	e.buf = nil
}

// DisplaySize is derived from the buffer length on every call.
func (e *Entry) DisplaySize() DisplaySize {
	if len(e.buf) > e.threshold {
		return SizeShrunk
	}
	return SizeNormal
}
