package allocator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// Allocator holds the state of a single scheduling run
type Allocator struct {
	registry *model.Registry
	schedule *Schedule
	rng      *rand.Rand

	maxDaysPerWeek    int
	minStaffPerShift  int
	softFullThreshold int

	placements []Placement
}

// AllocationConfig contains the configuration for a scheduling run
type AllocationConfig struct {
	// Registry holds the employees to place. It is mutated in place.
	Registry *model.Registry

	// Seed for the random generator. Equal input and seed give an identical schedule.
	Seed int64

	// MaxDaysPerWeek caps the number of days any employee works
	MaxDaysPerWeek int

	// MinStaffPerShift is the staffing level every slot is topped up to where possible
	MinStaffPerShift int

	// SoftFullThreshold is the roster size at which the preference pass
	// moves on to another shift or day
	SoftFullThreshold int
}

// DefaultConfig returns a config using the standard weekly limits
func DefaultConfig(registry *model.Registry) AllocationConfig {
	return AllocationConfig{
		Registry:          registry,
		Seed:              DefaultSeed,
		MaxDaysPerWeek:    DefaultMaxDaysPerWeek,
		MinStaffPerShift:  DefaultMinStaffPerShift,
		SoftFullThreshold: DefaultSoftFullThreshold,
	}
}

// Validate checks the config limits
func (c AllocationConfig) Validate() error {
	if c.Registry == nil {
		return errors.New("registry is required")
	}
	if c.MaxDaysPerWeek < 1 || c.MaxDaysPerWeek > model.DaysInWeek {
		return fmt.Errorf("max days per week must be between 1 and %d, got %d", model.DaysInWeek, c.MaxDaysPerWeek)
	}
	if c.MinStaffPerShift < 1 {
		return fmt.Errorf("min staff per shift must be positive, got %d", c.MinStaffPerShift)
	}
	if c.SoftFullThreshold < 1 {
		return fmt.Errorf("soft full threshold must be positive, got %d", c.SoftFullThreshold)
	}
	return nil
}

// AllocationOutcome represents the result of a scheduling run
type AllocationOutcome struct {
	Schedule *Schedule
	Registry *model.Registry

	// Placements lists every assignment in the order it was made
	Placements []Placement

	// Shortages lists slots left below the minimum staffing level
	Shortages []SlotShortage

	// ValidationErrors contains any broken invariants found in the final schedule
	ValidationErrors []SlotValidationError

	// Success indicates every slot reached the minimum and the schedule is consistent
	Success bool
}

// Allocate runs the preference pass followed by the minimum-fill pass
func Allocate(config AllocationConfig) (*AllocationOutcome, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid allocation config: %w", err)
	}

	allocator := newAllocator(config)
	allocator.run()

	return allocator.buildOutcome(), nil
}

// BuildSchedule places the registry's employees with the default limits and returns the schedule.
// The registry is updated in place with each employee's assignments.
func BuildSchedule(registry *model.Registry, seed int64) *Schedule {
	if registry == nil {
		registry = model.NewRegistry()
	}
	config := DefaultConfig(registry)
	config.Seed = seed

	allocator := newAllocator(config)
	allocator.run()
	return allocator.schedule
}

func newAllocator(config AllocationConfig) *Allocator {
	return &Allocator{
		registry:          config.Registry,
		schedule:          NewSchedule(),
		rng:               rand.New(rand.NewSource(config.Seed)),
		maxDaysPerWeek:    config.MaxDaysPerWeek,
		minStaffPerShift:  config.MinStaffPerShift,
		softFullThreshold: config.SoftFullThreshold,
	}
}

func (a *Allocator) run() {
	a.assignPreferences()
	a.fillMinimums()
}

// assign places the employee on a slot and records the placement
func (a *Allocator) assign(employee *model.Employee, day model.Day, shift model.Shift, pass Pass) {
	if !employee.Assign(day, shift) {
		return
	}
	a.schedule.add(day, shift, employee.Name)
	a.placements = append(a.placements, Placement{
		Employee: employee.Name,
		Day:      day,
		Shift:    shift,
		Pass:     pass,
		Rank:     employee.PreferenceRank(day, shift),
	})
}

// buildOutcome creates the final allocation outcome report
func (a *Allocator) buildOutcome() *AllocationOutcome {
	// Initialize with empty slices (not nil) for easier consumption
	outcome := &AllocationOutcome{
		Schedule:         a.schedule,
		Registry:         a.registry,
		Placements:       a.placements,
		Shortages:        FindShortages(a.schedule, a.minStaffPerShift),
		ValidationErrors: ValidateSchedule(a.schedule, a.registry, a.maxDaysPerWeek),
	}
	if outcome.Placements == nil {
		outcome.Placements = []Placement{}
	}

	outcome.Success = len(outcome.Shortages) == 0 && len(outcome.ValidationErrors) == 0
	return outcome
}
