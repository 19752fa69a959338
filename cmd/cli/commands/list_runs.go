package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListRunsCmd creates the listRuns command
func ListRunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRuns",
		Short: "List recorded optimization runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return fmt.Errorf("no postgresDSN configured")
			}

			runs, err := app.Store.GetRuns(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			if len(runs) == 0 {
				fmt.Println("No recorded runs.")
				return nil
			}

			fmt.Printf("\nFound %d runs:\n\n", len(runs))
			fmt.Printf("%-36s  %-20s  %-10s  %-10s  %s\n", "ID", "Created", "Engine", "Status", "Objective")
			for _, r := range runs {
				fmt.Printf("%-36s  %-20s  %-10s  %-10s  %.2f\n",
					r.ID,
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.Engine,
					r.Status,
					r.Objective)
			}
			fmt.Println()

			return nil
		},
	}
}
