// Package cli provides the fieldctl command-line interface.
package cli

import (
	"context"
	"fmt"

	"fieldservice/internal/app"
	"fieldservice/internal/config"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// Opener builds the application for one command invocation.
type Opener func(ctx context.Context) (*app.App, error)

type rootOptions struct {
	offline bool
	open    Opener
}

// withApp opens the application for one command and closes it afterwards.
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(a *app.App) error) (err error) {
	a, err := o.open(cmd.Context())
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if o.offline {
		a.Monitor.Set(false)
	}
	return fn(a)
}

// NewRootCmd builds the command tree. open is called once per command that
// needs data.
func NewRootCmd(open Opener) *cobra.Command {
	opts := &rootOptions{open: open}
	cmd := &cobra.Command{
		Use:   "fieldctl",
		Short: "Inspect field service data and the local mirror",
		Long: `fieldctl reads customers, estimates, jobs and invoices through the same
cache and mirror as the API server.

Use --offline to work from the local mirror only.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.offline, "offline", false, "serve from the local mirror without contacting the backend")

	cmd.AddCommand(newStagesCmd(opts))
	cmd.AddCommand(newBoardCmd(opts))
	cmd.AddCommand(newRefreshCmd(opts))
	cmd.AddCommand(newQueueCmd(opts))
	return cmd
}

// Execute runs fieldctl against the environment configuration.
func Execute(ctx context.Context) error {
	return NewRootCmd(openFromEnv).ExecuteContext(ctx)
}

func openFromEnv(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, _ := config.SetupLogger("", cfg.LogLevel)
	return app.New(ctx, cfg, logger)
}
