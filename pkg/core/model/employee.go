package model

import "slices"

// Employee is a person to be placed on the weekly grid.
//
// Preferences and Name are fixed at construction. Assignments and DaysWorked
// are written only by the allocator.
type Employee struct {
	Name string

	// Preferences holds the ranked shifts for each day, best first
	Preferences map[Day][]Shift

	// DaysWorked is the number of days with an assignment
	DaysWorked int

	// Assignments maps a day to the shift worked that day. Unassigned days are absent.
	Assignments map[Day]Shift
}

// NewEmployee creates an employee with no assignments.
// Days missing from prefs get the canonical shift order.
func NewEmployee(name string, prefs map[Day][]Shift) *Employee {
	ranked := make(map[Day][]Shift, DaysInWeek)
	for _, day := range Days() {
		if p := prefs[day]; len(p) > 0 {
			ranked[day] = slices.Clone(p)
		} else {
			ranked[day] = Shifts()
		}
	}
	return &Employee{
		Name:        name,
		Preferences: ranked,
		Assignments: make(map[Day]Shift),
	}
}

// RankedShifts returns the employee's ranking for the given day
func (e *Employee) RankedShifts(day Day) []Shift {
	return e.Preferences[day]
}

// IsAssigned returns true if the employee already works a shift on the given day
func (e *Employee) IsAssigned(day Day) bool {
	_, ok := e.Assignments[day]
	return ok
}

// Assignment returns the shift worked on the given day, if any
func (e *Employee) Assignment(day Day) (Shift, bool) {
	shift, ok := e.Assignments[day]
	return shift, ok
}

// CanWorkMore returns true while the employee is under the weekly cap
func (e *Employee) CanWorkMore(maxDays int) bool {
	return e.DaysWorked < maxDays
}

// Assign records the shift for a day and increments DaysWorked.
// Returns false without changing anything if the day is already assigned.
func (e *Employee) Assign(day Day, shift Shift) bool {
	if e.IsAssigned(day) {
		return false
	}
	if e.Assignments == nil {
		e.Assignments = make(map[Day]Shift)
	}
	e.Assignments[day] = shift
	e.DaysWorked++
	return true
}

// AssignedDays returns the days with an assignment in canonical order
func (e *Employee) AssignedDays() []Day {
	days := make([]Day, 0, len(e.Assignments))
	for _, day := range Days() {
		if e.IsAssigned(day) {
			days = append(days, day)
		}
	}
	return days
}

// PreferenceRank returns the position of shift in the day's ranking, or -1 if unranked
func (e *Employee) PreferenceRank(day Day, shift Shift) int {
	return slices.Index(e.Preferences[day], shift)
}
