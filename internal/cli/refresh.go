package cli

import (
	"fmt"
	"io"

	"fieldservice/internal/app"
	"fieldservice/internal/usecase"

	"github.com/spf13/cobra"
)

func newRefreshCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch every collection and update the local mirror",
		Long: `Fetch every collection that is stale and write it to the local mirror.
Collections that fail fall back to the mirror and report why.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				r := a.Registry
				refreshErr := r.RefreshAll(cmd.Context(), force)

				w := cmd.OutOrStdout()
				printState(w, "customers", r.Customers.Snapshot())
				printState(w, "estimates", r.Estimates.Snapshot())
				printState(w, "jobs", r.Jobs.Snapshot())
				printState(w, "invoices", r.Invoices.Snapshot())
				return refreshErr
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "ignore the freshness window")
	return cmd
}

func printState[T any](w io.Writer, name string, s usecase.StoreState[T]) {
	line := fmt.Sprintf("%-10s %4d records", name, len(s.Records))
	switch {
	case s.Error != nil:
		line += "  error: " + s.Error.Message
	case s.Notice != "":
		line += "  " + s.Notice
	}
	fmt.Fprintln(w, line)
}
