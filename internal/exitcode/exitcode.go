// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including a normal exit from the menu.
	Success = 0

	// UserError indicates a usage error (bad flags, unknown command).
	UserError = 1

	// ConfigError indicates the configuration file could not be read or parsed.
	ConfigError = 2

	// IOError indicates the task file could not be loaded or saved, or input failed.
	IOError = 3

	// Interrupted indicates the session was stopped by SIGINT or SIGTERM.
	Interrupted = 130
)
