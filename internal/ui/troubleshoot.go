package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/muurk/wificonnect/internal/network"
)

// Troubleshoot returns hints for a backend error, nil when there are none.
func Troubleshoot(err error) []string {
	var (
		cmdErr     *network.CommandError
		timeoutErr *network.TimeoutError
		parseErr   *network.ParseError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &timeoutErr):
		return []string{
			fmt.Sprintf("%s did not finish within %s", timeoutErr.Command, timeoutErr.Timeout),
			"Raise timeouts.command in the config file",
		}
	case errors.As(err, &cmdErr) && cmdErr.ExitCode == -1:
		return []string{
			fmt.Sprintf("Check that %s is installed and on PATH", cmdErr.Command),
			"Check the tool paths under commands: in the config file",
		}
	case errors.As(err, &cmdErr):
		tips := []string{fmt.Sprintf("%s exited with code %d", cmdErr.Command, cmdErr.ExitCode)}
		if os.Geteuid() != 0 {
			tips = append(tips, "Interface changes usually need root; check commands.sudo in the config file")
		}
		return append(tips, "Run with --log-level debug to see every command")
	case errors.As(err, &parseErr):
		return []string{
			fmt.Sprintf("Unexpected output from %s", parseErr.Tool),
			"Run with --log-level debug to see the raw output",
		}
	case errors.Is(err, network.ErrNoNetworks):
		return []string{"Move closer to an access point and scan again"}
	case errors.Is(err, network.ErrNotAssociated):
		return []string{
			"Check the saved passphrase with: wificonnect saved",
			"Make sure the access point is in range",
		}
	case errors.Is(err, network.ErrAPNotRunning):
		return []string{"Check that the ap helper script is installed"}
	}
	return nil
}
