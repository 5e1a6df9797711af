// Package ui provides terminal output components for the wificonnect CLI
// subcommands.
//
// The interactive device screen lives in package nav; this package only
// covers the one-shot commands (scan, status, saved, connect and friends).
// Components render with Lipgloss and follow a "run once and exit" pattern,
// except for the spinner, which runs a short Bubble Tea program while a
// blocking backend call is in flight.
//
// # Components
//
//   - Header: command banner showing operation name and parameters
//   - Result: success, failure and warning boxes with styled details
//   - Tables: access point, saved network and interface status tables
//   - Spinner: progress indicator around a blocking call
//   - Confirm: yes/no prompt for destructive operations
//
// A Printer bundles these for a single output stream:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.Header("Scan", "wificonnect scan", map[string]string{"Interface": "wlan0"})
//
//	var aps []network.AccessPoint
//	err := ui.RunWithSpinner(ctx, os.Stdout, "Scanning", func(ctx context.Context) error {
//	    var err error
//	    aps, err = backend.Scan(ctx)
//	    return err
//	})
//	if err != nil {
//	    p.Failure("Scan failed", err, ui.Troubleshoot(err))
//	    return err
//	}
//	p.AccessPoints(aps, saved)
//
// When the output is not a terminal the spinner is skipped and the call
// runs directly, so piped output contains only the final render.
//
// # Logging Integration
//
// Logging is controlled via the WIFICONNECT_LOG_LEVEL environment variable
// or the --log-level flag. When unset, zap logging is silent so the curated
// output is displayed cleanly.
package ui
