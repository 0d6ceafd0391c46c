package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/cmd/cli/commands"
	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/utils/logging"
)

var env string

func main() {
	app := &commands.AppContext{
		In:  bufio.NewReader(os.Stdin),
		Out: os.Stdout,
	}

	rootCmd := &cobra.Command{
		Use:          "cli",
		Short:        "Shift Rota CLI - Build weekly shift schedules",
		Long:         `A CLI tool for allocating employees to the week's Morning, Afternoon and Evening shifts from their ranked preferences.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment (selects config file and log prefix)")

	rootCmd.AddCommand(commands.ScheduleCmd(app))
	rootCmd.AddCommand(commands.CheckRosterCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads config and sets up the logger
func initApp(app *commands.AppContext) error {
	app.Ctx = context.Background()

	cfg, err := config.LoadWithEnv(env)
	usingDefaults := errors.Is(err, config.ErrConfigNotFound)
	switch {
	case usingDefaults:
		cfg = config.Default()
	case err != nil:
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg

	app.Logger, err = logging.InitLogger(env, cfg.LogsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))
	if usingDefaults {
		app.Logger.Info("No config file found, using defaults")
	} else {
		app.Logger.Debug("Configuration loaded successfully")
	}

	return nil
}
