// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, invalid config).
	UserError = 1

	// ServerError indicates the server failed to start or stopped abnormally.
	ServerError = 2
)
