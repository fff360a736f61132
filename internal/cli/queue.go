package cli

import (
	"encoding/json"
	"fmt"

	"fieldservice/internal/app"

	"github.com/spf13/cobra"
)

func newQueueCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "List mutations queued while offline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				ops, err := a.Queue.Pending(cmd.Context())
				if err != nil {
					return fmt.Errorf("read sync queue: %w", err)
				}
				w := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(w)
					enc.SetIndent("", "  ")
					return enc.Encode(ops)
				}
				if len(ops) == 0 {
					fmt.Fprintln(w, "Sync queue is empty.")
					return nil
				}
				fmt.Fprintf(w, "Pending operations (%d):\n", len(ops))
				for _, op := range ops {
					fmt.Fprintf(w, "  #%d %s %-9s %s\n", op.ID, op.QueuedAt.Format("2006-01-02 15:04:05"), op.Operation, op.Type)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print operations as JSON")
	return cmd
}
