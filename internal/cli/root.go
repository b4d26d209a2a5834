// Package cli builds the todolists command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todolists/internal/exitcode"
	"todolists/internal/handlers"
	"todolists/internal/web"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// RunFunc starts srv and blocks until ctx is done.
type RunFunc func(ctx context.Context, srv *web.Server) error

// App holds what the commands need from the outside world.
type App struct {
	Registry *handlers.Registry

	// Run starts the server. Tests replace it to avoid binding a port.
	Run RunFunc
}

// NewApp returns an App serving the default routing table.
func NewApp() *App {
	return &App{
		Registry: handlers.DefaultRegistry,
		Run: func(ctx context.Context, srv *web.Server) error {
			return srv.Run(ctx)
		},
	}
}

// exitError carries the exit code for a failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func serverError(err error) error {
	return &exitError{code: exitcode.ServerError, err: err}
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	return NewApp().Execute(ctx, args, out, errOut)
}

// Execute runs args against a fresh command tree.
func (a *App) Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := a.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitcode.Success
	}
	fmt.Fprintf(errOut, "error: %s\n", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitcode.UserError
}

// NewRootCommand builds the command tree.
func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "todolists",
		Short: "Session-backed todo lists over HTTP",
		Long: `todolists serves a small web application for managing todo lists.
Lists live in the visitor's session; nothing is written to disk.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/todolists/config.yaml)")

	root.AddCommand(
		a.newServeCommand(),
		a.newRoutesCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "todolists %s\n", Version)
			return nil
		},
	}
}
