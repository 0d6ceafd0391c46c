package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/core/services"
	"github.com/jakechorley/shift-rota/pkg/report"
	"github.com/jakechorley/shift-rota/pkg/roster"
)

// ScheduleCmd creates the schedule command
func ScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate the week's shift schedule from a roster file or terminal prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterPath, _ := cmd.Flags().GetString("roster")

			cfg, err := runConfig(app.Cfg, cmd)
			if err != nil {
				return err
			}

			registry, err := loadRegistry(app, rosterPath)
			if err != nil {
				return err
			}

			result, err := services.GenerateSchedule(app.Ctx, cfg, app.Logger, registry)
			if err != nil {
				return err
			}

			opts := result.ReportOptions()
			report.WriteSchedule(app.Out, result.Schedule, opts)
			report.WriteEmployeeSummary(app.Out, result.Registry)
			report.WriteShortages(app.Out, result.Shortages)
			report.WritePreferenceStats(app.Out, result.Placements)
			report.WriteValidationErrors(app.Out, result.ValidationErrors)

			fmt.Fprintf(app.Out, "\nRun ID: %s (seed %d)\n", result.RunID, result.Seed)
			if result.Success {
				fmt.Fprintln(app.Out, "✓ Every slot is staffed")
			} else {
				fmt.Fprintf(app.Out, "⚠️  %d slot(s) below minimum, %d validation error(s)\n",
					len(result.Shortages), len(result.ValidationErrors))
			}

			return nil
		},
	}

	cmd.Flags().String("roster", "", "Roster YAML file (prompts for employees when omitted)")
	cmd.Flags().Int64("seed", 0, "Seed for random decisions (defaults to the configured seed)")
	cmd.Flags().String("week-start", "", "Monday the schedule applies to (YYYY-MM-DD)")

	return cmd
}

// runConfig applies flag overrides to a copy of the loaded config
func runConfig(base *config.Config, cmd *cobra.Command) (*config.Config, error) {
	cfg := *base

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("week-start") {
		cfg.WeekStart, _ = cmd.Flags().GetString("week-start")
	}

	if err := config.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &cfg, nil
}

func loadRegistry(app *AppContext, rosterPath string) (*model.Registry, error) {
	if rosterPath != "" {
		app.Logger.Debug("Loading roster file", zap.String("path", rosterPath))
		registry, err := roster.LoadFromPath(rosterPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load roster: %w", err)
		}
		app.Logger.Info("Roster loaded", zap.String("path", rosterPath), zap.Int("employees", registry.Len()))
		return registry, nil
	}

	registry, err := roster.NewPrompter(app.In, app.Out).PromptRoster()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return registry, nil
}
