// Package logging provides structured logging for wificonnect.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is given with --log-level or the
// WIFICONNECT_LOG_LEVEL environment variable.
//
// # Output
//
// The interactive UI draws on the whole terminal, so log lines never go to
// stdout. They are appended to a file instead:
//
//	$XDG_STATE_HOME/wificonnect/wificonnect.log
//
// --log-file (or WIFICONNECT_LOG_FILE) picks another path, and "-" sends the
// output to stderr, which is handy for the non-interactive subcommands.
//
// # Log Levels
//
//   - Debug: every external command with its arguments and exit code
//   - Info: screen transitions, saved and deleted networks
//   - Warn: failed commands, skipped configuration files
//   - Error: failures that end the program
//
// # Component Loggers
//
// Components that run commands or touch disk take a *zap.Logger in their
// constructor. cmd/wificonnect hands them a child of the global logger:
//
//	store := netconf.NewStore(dir, logging.Named("netconf"))
//
// # Specialized Logging
//
//	logging.LogCommand(l, "ifup", []string{"wlan0"}, 0, 120*time.Millisecond, nil)
//	logging.LogTransition(l, "main", "network-list", "scan")
package logging
