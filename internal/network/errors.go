package network

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoNetworks is returned by Scan when nothing usable was found.
var ErrNoNetworks = errors.New("no networks found")

// ErrNotAssociated is returned by Connect when ifup finished but the
// interface did not join the network.
var ErrNotAssociated = errors.New("interface did not associate")

// ErrAPNotRunning is returned when the ap helper reports success but the
// hosted AP is not broadcasting (or still is, after a stop).
var ErrAPNotRunning = errors.New("hosted access point state did not change")

// CommandError represents a tool that exited non-zero or could not start.
type CommandError struct {
	// Command is the executable that was run
	Command string
	// Args are the arguments it was given
	Args []string
	// ExitCode is the process exit code, -1 if it never ran
	ExitCode int
	// Stderr is the captured error output
	Stderr string
	// Underlying error if any
	Err error
}

func (e *CommandError) Error() string {
	cmd := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	stderr := strings.TrimSpace(e.Stderr)
	switch {
	case e.Err != nil && stderr != "":
		return fmt.Sprintf("%s failed (exit code %d): %v: %s", cmd, e.ExitCode, e.Err, stderr)
	case e.Err != nil:
		return fmt.Sprintf("%s failed (exit code %d): %v", cmd, e.ExitCode, e.Err)
	case stderr != "":
		return fmt.Sprintf("%s failed (exit code %d): %s", cmd, e.ExitCode, stderr)
	default:
		return fmt.Sprintf("%s failed (exit code %d)", cmd, e.ExitCode)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// TimeoutError represents a tool that did not finish in time.
type TimeoutError struct {
	// Command is the executable that was run
	Command string
	// Timeout is the duration that was exceeded
	Timeout string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Command, e.Timeout)
}

// ParseError represents tool output that could not be understood.
type ParseError struct {
	// Tool is the command whose output failed to parse
	Tool string
	// Line is the offending output line
	Line string
	// Underlying error
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s output %q: %v", e.Tool, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is or wraps a TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
