package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nurseshiftly/nurseshiftly/cmd/cli/commands"
	"github.com/nurseshiftly/nurseshiftly/internal/config"
	"github.com/nurseshiftly/nurseshiftly/pkg/postgres"
	"github.com/nurseshiftly/nurseshiftly/pkg/utils/logging"
)

var (
	configPath string
	verbose    bool
	app        = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nurseshiftly",
		Short: "Nurseshiftly CLI - Optimize weekly nurse shift schedules",
		Long:  `A CLI tool for assigning nurses to weekly shifts by solving a mixed-integer program over availability, skills, demand and hour limits.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				app.Store.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: nurseshiftly.yaml in cwd or home)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output on the console")

	rootCmd.AddCommand(commands.OptimizeCmd(app))
	rootCmd.AddCommand(commands.ExpandShiftsCmd(app))
	rootCmd.AddCommand(commands.ListRunsCmd(app))
	rootCmd.AddCommand(commands.SampleDataCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and the optional run store
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Load configuration
	app.Logger.Debug("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully", zap.String("engine", app.Cfg.Engine))

	// Connect to the run store when configured
	if app.Cfg.PostgresDSN != "" {
		app.Logger.Debug("Connecting to run store")
		app.Store, err = postgres.NewDB(app.Ctx, app.Cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("failed to connect to run store: %w", err)
		}
		if err := app.Store.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Logger.Debug("Run store initialized successfully")
	}

	return nil
}
