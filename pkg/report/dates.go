package report

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// WeekDates returns the seven calendar dates of the week starting at start
func WeekDates(start time.Time) ([]time.Time, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   model.DaysInWeek,
		Dtstart: startOfDay(start),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build week rule: %w", err)
	}
	return rule.All(), nil
}

// ClosedDays expands each RRULE from start and returns the days of that week it hits
func ClosedDays(rules []string, start time.Time) (map[model.Day]bool, error) {
	start = startOfDay(start)
	end := start.AddDate(0, 0, model.DaysInWeek-1)

	closed := make(map[model.Day]bool)
	for i, raw := range rules {
		rule, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in closedDates[%d]: %w", i, err)
		}
		rule.DTStart(start)

		for _, date := range rule.Between(start, end, true) {
			offset := int(startOfDay(date).Sub(start).Hours() / 24)
			if offset >= 0 && offset < model.DaysInWeek {
				closed[model.Day(offset)] = true
			}
		}
	}
	return closed, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
