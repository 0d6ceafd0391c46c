package allocator

import "github.com/jakechorley/shift-rota/pkg/core/model"

const (
	// DefaultSeed seeds the random generator when no seed is configured
	DefaultSeed int64 = 42

	// DefaultMaxDaysPerWeek is the weekly work-day cap per employee
	DefaultMaxDaysPerWeek = 5

	// DefaultMinStaffPerShift is the staffing level the minimum-fill pass tops slots up to
	DefaultMinStaffPerShift = 2

	// DefaultSoftFullThreshold is the roster size at which the preference pass treats a slot as full
	DefaultSoftFullThreshold = 2
)

// Pass identifies which allocation pass produced a placement
type Pass string

const (
	PassPreference  Pass = "preference"
	PassMinimumFill Pass = "minimum-fill"
)

// Placement records a single assignment made during allocation
type Placement struct {
	Employee string
	Day      model.Day
	Shift    model.Shift
	Pass     Pass

	// Rank is the position of Shift in the employee's ranking for Day (0 = first choice).
	// -1 when the shift was not in the ranking at all.
	Rank int
}

// IsFirstChoice returns true if the employee got their top ranked shift
func (p Placement) IsFirstChoice() bool {
	return p.Rank == 0
}

// SlotShortage is a slot that could not reach the minimum staffing level
type SlotShortage struct {
	Day      model.Day
	Shift    model.Shift
	Staffed  int
	Required int
}

// Missing returns how many more employees the slot needs
func (s SlotShortage) Missing() int {
	return max(s.Required-s.Staffed, 0)
}

// SlotValidationError describes a broken invariant in a finished schedule.
// Shift is empty when the error concerns an employee's weekly totals rather than a slot.
type SlotValidationError struct {
	Day         model.Day
	Shift       model.Shift
	Employee    string
	CheckName   string
	Description string
}

// HasSlot returns true if the error refers to a specific (day, shift) slot
func (e SlotValidationError) HasSlot() bool {
	return e.Shift != ""
}
