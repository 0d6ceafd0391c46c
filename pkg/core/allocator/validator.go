package allocator

import (
	"fmt"
	"slices"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

const (
	checkRoster     = "Roster"
	checkWeeklyCap  = "WeeklyCap"
	checkDaysWorked = "DaysWorked"
)

// FindShortages returns every slot with fewer than minStaff names, in canonical order
func FindShortages(schedule *Schedule, minStaff int) []SlotShortage {
	shortages := []SlotShortage{}
	for _, slot := range schedule.Slots() {
		if len(slot.Names) < minStaff {
			shortages = append(shortages, SlotShortage{
				Day:      slot.Day,
				Shift:    slot.Shift,
				Staffed:  len(slot.Names),
				Required: minStaff,
			})
		}
	}
	return shortages
}

// ValidateSchedule checks that the schedule and the registry agree with each other.
// Returns an empty slice when the schedule is consistent.
//
// Checks:
//   - every rostered name belongs to a registered employee
//   - an employee appears on at most one slot per day
//   - every roster entry matches the employee's recorded assignment, and vice versa
//   - DaysWorked equals the number of assigned days and does not exceed maxDays
func ValidateSchedule(schedule *Schedule, registry *model.Registry, maxDays int) []SlotValidationError {
	errors := []SlotValidationError{}

	for _, day := range model.Days() {
		seenOnDay := make(map[string]model.Shift)

		for _, shift := range model.Shifts() {
			for _, name := range schedule.Roster(day, shift) {
				slotError := func(description string) {
					errors = append(errors, SlotValidationError{
						Day:         day,
						Shift:       shift,
						Employee:    name,
						CheckName:   checkRoster,
						Description: description,
					})
				}

				employee, ok := registry.Get(name)
				if !ok {
					slotError(fmt.Sprintf("%s is rostered but not registered", name))
					continue
				}

				if previous, dup := seenOnDay[name]; dup {
					slotError(fmt.Sprintf("%s is rostered on %s and %s on the same day", name, previous.Name(), shift.Name()))
					continue
				}
				seenOnDay[name] = shift

				assigned, ok := employee.Assignment(day)
				if !ok || assigned != shift {
					slotError(fmt.Sprintf("%s is rostered on %s but assignment records %q", name, shift.Name(), assigned))
				}
			}
		}
	}

	for _, employee := range registry.Employees() {
		for _, day := range employee.AssignedDays() {
			shift, _ := employee.Assignment(day)
			if !slices.Contains(schedule.Roster(day, shift), employee.Name) {
				errors = append(errors, SlotValidationError{
					Day:         day,
					Shift:       shift,
					Employee:    employee.Name,
					CheckName:   checkRoster,
					Description: fmt.Sprintf("%s is assigned to %s but missing from its roster", employee.Name, shift.Name()),
				})
			}
		}

		if employee.DaysWorked != len(employee.AssignedDays()) {
			errors = append(errors, SlotValidationError{
				Employee:    employee.Name,
				CheckName:   checkDaysWorked,
				Description: fmt.Sprintf("%s has %d days worked but %d assigned days", employee.Name, employee.DaysWorked, len(employee.AssignedDays())),
			})
		}

		if employee.DaysWorked > maxDays {
			errors = append(errors, SlotValidationError{
				Employee:    employee.Name,
				CheckName:   checkWeeklyCap,
				Description: fmt.Sprintf("%s works %d days but max is %d", employee.Name, employee.DaysWorked, maxDays),
			})
		}
	}

	return errors
}
