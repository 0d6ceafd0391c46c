package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/report"
)

// ScheduleResult contains the outcome of a single scheduling run
type ScheduleResult struct {
	RunID string
	Seed  int64

	Schedule         *allocator.Schedule
	Registry         *model.Registry
	Placements       []allocator.Placement
	Shortages        []allocator.SlotShortage
	ValidationErrors []allocator.SlotValidationError
	Success          bool

	// WeekDates holds the calendar date of each day when a week start is configured
	WeekDates []time.Time

	// ClosedDays marks the days hit by the configured closed date rules
	ClosedDays map[model.Day]bool
}

// ReportOptions returns the presenter options for this run
func (r *ScheduleResult) ReportOptions() report.Options {
	return report.Options{Dates: r.WeekDates, Closed: r.ClosedDays}
}

// GenerateSchedule allocates the registry's employees to the week's shifts.
// The registry is updated in place with every assignment.
func GenerateSchedule(ctx context.Context, cfg *config.Config, logger *zap.Logger, registry *model.Registry) (*ScheduleResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if registry == nil || registry.Len() == 0 {
		return nil, fmt.Errorf("no employees to schedule")
	}

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	logger.Info("Generating schedule",
		zap.Int("employees", registry.Len()),
		zap.Int64("seed", cfg.Seed),
		zap.Int("max_days_per_week", cfg.MaxDaysPerWeek),
		zap.Int("min_staff_per_shift", cfg.MinStaffPerShift))

	result := &ScheduleResult{
		RunID:      runID,
		Seed:       cfg.Seed,
		ClosedDays: map[model.Day]bool{},
	}

	if start, ok := cfg.WeekStartDate(); ok {
		dates, err := report.WeekDates(start)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate week dates: %w", err)
		}
		closed, err := report.ClosedDays(cfg.ClosedDates, start)
		if err != nil {
			return nil, fmt.Errorf("failed to expand closed dates: %w", err)
		}
		result.WeekDates = dates
		result.ClosedDays = closed
		logger.Debug("Resolved week dates",
			zap.Time("week_start", dates[0]),
			zap.Int("closed_days", len(closed)))
	}

	outcome, err := allocator.Allocate(cfg.AllocationConfig(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to allocate schedule: %w", err)
	}

	for _, p := range outcome.Placements {
		logger.Debug("Placed employee",
			zap.String("employee", p.Employee),
			zap.String("day", p.Day.String()),
			zap.String("shift", p.Shift.Name()),
			zap.String("pass", string(p.Pass)),
			zap.Int("rank", p.Rank))
	}

	for _, s := range outcome.Shortages {
		logger.Warn("Slot below minimum staffing",
			zap.String("day", s.Day.String()),
			zap.String("shift", s.Shift.Name()),
			zap.Int("staffed", s.Staffed),
			zap.Int("required", s.Required))
	}

	for _, v := range outcome.ValidationErrors {
		logger.Error("Schedule failed validation",
			zap.String("check", v.CheckName),
			zap.String("employee", v.Employee),
			zap.String("description", v.Description))
	}

	result.Schedule = outcome.Schedule
	result.Registry = outcome.Registry
	result.Placements = outcome.Placements
	result.Shortages = outcome.Shortages
	result.ValidationErrors = outcome.ValidationErrors
	result.Success = outcome.Success

	logger.Info("Schedule generated",
		zap.Int("placements", len(outcome.Placements)),
		zap.Int("shortages", len(outcome.Shortages)),
		zap.Int("validation_errors", len(outcome.ValidationErrors)),
		zap.Bool("success", outcome.Success))

	return result, nil
}
