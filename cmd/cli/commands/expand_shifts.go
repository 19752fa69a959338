package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nurseshiftly/nurseshiftly/pkg/rota"
	"github.com/nurseshiftly/nurseshiftly/pkg/tables"
)

// ExpandShiftsCmd creates the expandShifts command
func ExpandShiftsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expandShifts <week_start>",
		Short: "Expand the configured shift templates into a weekly shift table",
		Long:  "Instantiate every recurring shift template for the seven days starting at week_start (YYYY-MM-DD) and write the resulting shift table as CSV.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("week_start must be YYYY-MM-DD: %w", err)
			}
			outPath, _ := cmd.Flags().GetString("out")

			if len(app.Cfg.ShiftTemplates) == 0 {
				return fmt.Errorf("no shiftTemplates configured")
			}

			app.Logger.Debug("expandShifts command",
				zap.Time("week_start", weekStart),
				zap.Int("templates", len(app.Cfg.ShiftTemplates)))

			shifts, err := rota.ExpandWeek(app.Cfg.ShiftTemplates, weekStart)
			if err != nil {
				return fmt.Errorf("failed to expand shift templates: %w", err)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create shift file: %w", err)
			}
			defer f.Close()

			if err := tables.WriteShifts(f, shifts); err != nil {
				return err
			}

			fmt.Printf("\nExpanded %d templates into %d shifts for the week of %s:\n\n",
				len(app.Cfg.ShiftTemplates), len(shifts), weekStart.Format("2006-01-02"))
			for _, s := range shifts {
				fmt.Printf("  %-24s %5.1fh  demand %d  %s\n", s.ID, s.Hours, s.Demand, s.RequiredSkill)
			}
			fmt.Printf("\nShift table written to %s\n\n", outPath)

			return nil
		},
	}

	cmd.Flags().String("out", "shifts.csv", "Path to write the shift table")

	return cmd
}
