package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/milp"
	"github.com/nurseshiftly/nurseshiftly/pkg/core/model"
	"github.com/nurseshiftly/nurseshiftly/pkg/core/schedule"
	"github.com/nurseshiftly/nurseshiftly/pkg/solver"
	"github.com/nurseshiftly/nurseshiftly/pkg/tables"
)

// OptimizeCmd creates the optimize command
func OptimizeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Optimize a weekly nurse schedule from CSV tables",
		Long:  "Build and solve the weekly scheduling program from nurse, shift, availability and preference tables, then print the resulting assignments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			nursesPath, _ := cmd.Flags().GetString("nurses")
			shiftsPath, _ := cmd.Flags().GetString("shifts")
			availabilityPath, _ := cmd.Flags().GetString("availability")
			preferencesPath, _ := cmd.Flags().GetString("preferences")
			outPath, _ := cmd.Flags().GetString("out")
			save, _ := cmd.Flags().GetBool("save")

			cfg := solveConfig(cmd, app)
			engineName := app.Cfg.Engine
			if cmd.Flags().Changed("engine") {
				engineName, _ = cmd.Flags().GetString("engine")
			}

			app.Logger.Debug("optimize command",
				zap.String("engine", engineName),
				zap.String("nurses", nursesPath),
				zap.String("shifts", shiftsPath))

			nurses, err := loadNurses(nursesPath)
			if err != nil {
				return err
			}
			shifts, err := loadShifts(shiftsPath)
			if err != nil {
				return err
			}
			availability, err := loadAvailability(availabilityPath)
			if err != nil {
				return err
			}
			var preferences []model.Preference
			if preferencesPath != "" {
				preferences, err = loadPreferences(preferencesPath)
				if err != nil {
					return err
				}
			}

			engine, err := solver.ForName(engineName)
			if err != nil {
				return err
			}

			result, err := schedule.Optimize(app.Ctx, engine, app.Logger, nurses, shifts, availability, preferences, cfg)
			if err != nil {
				return fmt.Errorf("optimization failed: %w", err)
			}

			printResult(result, nurses, shifts)

			if outPath != "" {
				if err := writeAssignments(outPath, result.Assignments); err != nil {
					return err
				}
				fmt.Printf("Assignments written to %s\n\n", outPath)
			}

			if save {
				if app.Store == nil {
					return fmt.Errorf("cannot save run: no postgresDSN configured")
				}
				runID, err := app.Store.InsertRun(app.Ctx, engineName, cfg, result)
				if err != nil {
					return fmt.Errorf("failed to save run: %w", err)
				}
				app.Logger.Info("Run saved", zap.String("run_id", runID))
				fmt.Printf("Run saved with id %s\n\n", runID)
			}

			return nil
		},
	}

	cmd.Flags().String("nurses", "nurses.csv", "Path to the nurse table")
	cmd.Flags().String("shifts", "shifts.csv", "Path to the shift table")
	cmd.Flags().String("availability", "availability.csv", "Path to the availability table")
	cmd.Flags().String("preferences", "", "Path to the preference table (optional)")
	cmd.Flags().String("out", "", "Write assignments to this CSV file")
	cmd.Flags().String("engine", "", "Solver engine (glpk or enumerate, overrides config)")
	cmd.Flags().Bool("allow-overtime", true, "Allow paid overtime beyond contract hours")
	cmd.Flags().Float64("overtime-cost", 0, "Cost per overtime hour (overrides config)")
	cmd.Flags().Bool("allow-understaff", false, "Allow penalized unmet demand")
	cmd.Flags().Float64("understaff-penalty", 0, "Penalty per missing nurse (overrides config)")
	cmd.Flags().Float64("preference-weight", 0, "Weight of the preference reward (overrides config)")
	cmd.Flags().Bool("save", false, "Record the run in the configured run store")

	return cmd
}

// solveConfig overlays command line flags onto the configured weights.
// Only flags the user actually set override the config file.
func solveConfig(cmd *cobra.Command, app *AppContext) schedule.Config {
	cfg := schedule.Config{
		AllowOvertime:     app.Cfg.Solve.AllowOvertime,
		OvertimeCost:      app.Cfg.Solve.OvertimeCost,
		AllowUnderstaff:   app.Cfg.Solve.AllowUnderstaff,
		UnderstaffPenalty: app.Cfg.Solve.UnderstaffPenalty,
		PreferenceWeight:  app.Cfg.Solve.PreferenceWeight,
	}
	if cmd.Flags().Changed("allow-overtime") {
		cfg.AllowOvertime, _ = cmd.Flags().GetBool("allow-overtime")
	}
	if cmd.Flags().Changed("overtime-cost") {
		cfg.OvertimeCost, _ = cmd.Flags().GetFloat64("overtime-cost")
	}
	if cmd.Flags().Changed("allow-understaff") {
		cfg.AllowUnderstaff, _ = cmd.Flags().GetBool("allow-understaff")
	}
	if cmd.Flags().Changed("understaff-penalty") {
		cfg.UnderstaffPenalty, _ = cmd.Flags().GetFloat64("understaff-penalty")
	}
	if cmd.Flags().Changed("preference-weight") {
		cfg.PreferenceWeight, _ = cmd.Flags().GetFloat64("preference-weight")
	}
	return cfg
}

func loadNurses(path string) ([]model.Nurse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open nurse table: %w", err)
	}
	defer f.Close()
	return tables.LoadNurses(f)
}

func loadShifts(path string) ([]model.Shift, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shift table: %w", err)
	}
	defer f.Close()
	return tables.LoadShifts(f)
}

func loadAvailability(path string) ([]model.Availability, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open availability table: %w", err)
	}
	defer f.Close()
	return tables.LoadAvailability(f)
}

func loadPreferences(path string) ([]model.Preference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference table: %w", err)
	}
	defer f.Close()
	return tables.LoadPreferences(f)
}

func writeAssignments(path string, assignments []model.Assignment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create assignment file: %w", err)
	}
	defer f.Close()
	return tables.WriteAssignments(f, assignments)
}

// printResult renders the solved schedule as a shift-per-row table.
func printResult(result *schedule.Result, nurses []model.Nurse, shifts []model.Shift) {
	const (
		colorReset  = "\033[0m"
		colorGreen  = "\033[32m"
		colorYellow = "\033[33m"
		colorRed    = "\033[31m"
		colorBold   = "\033[1m"
	)

	fmt.Printf("\nSchedule Optimization Results\n\n")
	fmt.Printf("Status:    %s\n", statusColor(result.Status, colorGreen, colorRed, colorReset))
	fmt.Printf("Objective: %.2f\n\n", result.Objective)

	if result.Status != milp.StatusOptimal {
		fmt.Println("No usable schedule. Adjust demand, availability or the relaxation modes and retry.")
		fmt.Println()
		return
	}

	// Group assigned nurses per shift
	assignedByShift := make(map[string][]string)
	for _, a := range result.Assignments {
		if a.Assigned == 1 {
			assignedByShift[a.ShiftID] = append(assignedByShift[a.ShiftID], a.NurseID)
		}
	}

	shiftColWidth := 12
	nursesColWidth := 30
	for _, s := range shifts {
		if len(s.ID) > shiftColWidth {
			shiftColWidth = len(s.ID)
		}
		if l := len(strings.Join(assignedByShift[s.ID], ", ")); l > nursesColWidth {
			nursesColWidth = l
		}
	}
	shiftColWidth += 2
	nursesColWidth += 2

	fmt.Printf("%s%-*s  %-*s  %s%s\n", colorBold, shiftColWidth, "Shift", nursesColWidth, "Nurses", "Filled", colorReset)
	fmt.Printf("%s  %s  ------\n", strings.Repeat("-", shiftColWidth), strings.Repeat("-", nursesColWidth))

	for _, s := range shifts {
		names := assignedByShift[s.ID]
		namesStr := "-"
		if len(names) > 0 {
			namesStr = strings.Join(names, ", ")
		}

		filled := fmt.Sprintf("%d/%d", len(names), s.Demand)
		if unmet := result.UnmetByShift[s.ID]; unmet > 0 {
			filled = fmt.Sprintf("%s%s (short %.0f)%s", colorYellow, filled, unmet, colorReset)
		} else if len(names) >= s.Demand {
			filled = fmt.Sprintf("%s%s%s", colorGreen, filled, colorReset)
		}

		fmt.Printf("%-*s  %-*s  %s\n", shiftColWidth, s.ID, nursesColWidth, namesStr, filled)
	}
	fmt.Println()

	if result.TotalOvertime() > 0 {
		fmt.Printf("Overtime hours:\n")
		for _, n := range nurses {
			if hours := result.OvertimeByNurse[n.ID]; hours > 0 {
				fmt.Printf("  %s: %.1fh beyond %.1fh contract\n", n.ID, hours, n.MaxHoursPerWeek)
			}
		}
		fmt.Println()
	}
}

func statusColor(status milp.Status, good, bad, reset string) string {
	if status == milp.StatusOptimal {
		return good + status.String() + reset
	}
	return bad + status.String() + reset
}
