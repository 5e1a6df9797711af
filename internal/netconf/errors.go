package netconf

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record exists for an SSID.
var ErrNotFound = errors.New("network configuration not found")

// ParseError reports a malformed line in a record file.
type ParseError struct {
	// Path is the record file
	Path string
	// Line is the 1-based line number
	Line int
	// Text is the offending line
	Text string
	// Reason describes what is wrong with the line
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}
