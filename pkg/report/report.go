package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/core/preferences"
)

const divider = "============================================================"

// Options controls how day headings are rendered
type Options struct {
	// Dates holds the calendar date of each day, Monday first. Optional.
	Dates []time.Time

	// Closed marks days shown as closed in the schedule
	Closed map[model.Day]bool
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, divider)
}

func dayLabel(day model.Day, opts Options) string {
	label := day.String()
	if int(day) < len(opts.Dates) {
		label = fmt.Sprintf("%s %s", label, opts.Dates[day].Format("2006-01-02"))
	}
	if opts.Closed[day] {
		label += " (closed)"
	}
	return label
}

// WriteSchedule prints every slot's roster in canonical day and shift order
func WriteSchedule(w io.Writer, schedule *allocator.Schedule, opts Options) {
	heading(w, "FINAL WEEK SCHEDULE")
	for _, day := range model.Days() {
		fmt.Fprintf(w, "\n%s:\n", dayLabel(day, opts))
		for _, shift := range model.Shifts() {
			names := schedule.Roster(day, shift)
			if len(names) == 0 {
				fmt.Fprintf(w, "  %s: (none)\n", shift.Name())
				continue
			}
			fmt.Fprintf(w, "  %s: %s\n", shift.Name(), strings.Join(names, ", "))
		}
	}
}

// WriteEmployeeSummary prints days worked and the assigned days for each employee
func WriteEmployeeSummary(w io.Writer, registry *model.Registry) {
	heading(w, "EMPLOYEE SUMMARY")
	for _, employee := range registry.Employees() {
		days := employee.AssignedDays()
		labels := make([]string, len(days))
		for i, day := range days {
			labels[i] = day.String()
		}
		fmt.Fprintf(w, "%s: %d day(s) -> %s\n", employee.Name, employee.DaysWorked, strings.Join(labels, ", "))
	}
}

// WriteShortages prints the slots left below the minimum staffing level
func WriteShortages(w io.Writer, shortages []allocator.SlotShortage) {
	heading(w, "SHORTAGES")
	if len(shortages) == 0 {
		fmt.Fprintln(w, "All slots meet the minimum staffing level.")
		return
	}
	for _, s := range shortages {
		fmt.Fprintf(w, "  %s %s: %d of %d (needs %d more)\n", s.Day, s.Shift.Name(), s.Staffed, s.Required, s.Missing())
	}
}

// PreferenceStats summarises how well placements matched rankings
type PreferenceStats struct {
	Placements  int
	FirstChoice int
	OtherRanked int
	Unranked    int
	MinimumFill int
}

// SummarisePreferences counts placements by rank and pass
func SummarisePreferences(placements []allocator.Placement) PreferenceStats {
	stats := PreferenceStats{Placements: len(placements)}
	for _, p := range placements {
		switch {
		case p.IsFirstChoice():
			stats.FirstChoice++
		case p.Rank > 0:
			stats.OtherRanked++
		default:
			stats.Unranked++
		}
		if p.Pass == allocator.PassMinimumFill {
			stats.MinimumFill++
		}
	}
	return stats
}

// WritePreferenceStats prints the preference satisfaction summary
func WritePreferenceStats(w io.Writer, placements []allocator.Placement) {
	stats := SummarisePreferences(placements)

	heading(w, "PREFERENCE SATISFACTION")
	fmt.Fprintf(w, "  Placements:          %d\n", stats.Placements)
	fmt.Fprintf(w, "  First choice:        %d (%s)\n", stats.FirstChoice, percent(stats.FirstChoice, stats.Placements))
	fmt.Fprintf(w, "  Lower ranked choice: %d\n", stats.OtherRanked)
	fmt.Fprintf(w, "  Not ranked:          %d\n", stats.Unranked)
	fmt.Fprintf(w, "  From minimum-fill:   %d\n", stats.MinimumFill)
}

func percent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", part*100/total)
}

// WriteValidationErrors prints broken invariants, if any
func WriteValidationErrors(w io.Writer, errs []allocator.SlotValidationError) {
	if len(errs) == 0 {
		return
	}
	heading(w, "VALIDATION ERRORS")
	for _, e := range errs {
		if e.HasSlot() {
			fmt.Fprintf(w, "  [%s] %s %s: %s\n", e.CheckName, e.Day, e.Shift.Name(), e.Description)
		} else {
			fmt.Fprintf(w, "  [%s] %s\n", e.CheckName, e.Description)
		}
	}
}

// WritePreferences prints each employee's normalized ranking per day
func WritePreferences(w io.Writer, registry *model.Registry) {
	heading(w, "NORMALIZED PREFERENCES")
	for _, employee := range registry.Employees() {
		fmt.Fprintf(w, "\n%s:\n", employee.Name)
		for _, day := range model.Days() {
			fmt.Fprintf(w, "  %s: %s\n", day, preferences.Describe(employee.RankedShifts(day)))
		}
	}
}
