package cli

import (
	"fmt"
	"io"

	"fieldservice/internal/app"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/lifecycle"

	"github.com/spf13/cobra"
)

func newStagesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stages <customer-id>",
		Short: "Show the lifecycle stages of a customer",
		Example: `  fieldctl stages 7d1f0a52-5c1e-4d47-9c0b-1f3c2a9e4b10
  fieldctl stages --offline 7d1f0a52-5c1e-4d47-9c0b-1f3c2a9e4b10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				stages, err := a.Pipeline.StagesFor(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printStages(cmd.OutOrStdout(), stages)
				return nil
			})
		},
	}
}

func printStages(w io.Writer, stages []entities.Stage) {
	if len(stages) == 0 {
		fmt.Fprintln(w, "No stages.")
		return
	}
	for _, g := range lifecycle.GroupByCategory(stages) {
		if len(g.Stages) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", g.Category)
		for _, st := range g.Stages {
			fmt.Fprintf(w, "  - %s\n", st.Label)
		}
	}
}

func newBoardCmd(opts *rootOptions) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show every customer grouped by pipeline column",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				board, err := a.Pipeline.Board(cmd.Context())
				if err != nil {
					return err
				}
				printBoard(cmd.OutOrStdout(), board, category)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only show one column (estimate, job, invoice)")
	return cmd
}

func printBoard(w io.Writer, board lifecycle.Board, category string) {
	for _, col := range board.Columns {
		if category != "" && string(col.Category) != category {
			continue
		}
		fmt.Fprintf(w, "%s (%d):\n", col.Category, len(col.Cards))
		for _, card := range col.Cards {
			fmt.Fprintf(w, "  %-24s %s\n", card.CustomerName, card.Stage)
		}
	}
}
