package allocator

import (
	"slices"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// Schedule is the weekly grid of rosters, one per (day, shift) slot.
// Rosters are only appended to; insertion order is assignment order.
type Schedule struct {
	slots map[model.Day]map[model.Shift][]string
}

// Slot is a single (day, shift) pair and the names rostered on it
type Slot struct {
	Day   model.Day
	Shift model.Shift
	Names []string
}

// NewSchedule creates a schedule with every slot present and empty
func NewSchedule() *Schedule {
	slots := make(map[model.Day]map[model.Shift][]string, model.DaysInWeek)
	for _, day := range model.Days() {
		slots[day] = make(map[model.Shift][]string, len(model.Shifts()))
		for _, shift := range model.Shifts() {
			slots[day][shift] = []string{}
		}
	}
	return &Schedule{slots: slots}
}

// Roster returns a copy of the names on a slot in assignment order
func (s *Schedule) Roster(day model.Day, shift model.Shift) []string {
	return slices.Clone(s.slots[day][shift])
}

// Count returns the number of names on a slot
func (s *Schedule) Count(day model.Day, shift model.Shift) int {
	return len(s.slots[day][shift])
}

// Slots returns every slot in canonical day then shift order
func (s *Schedule) Slots() []Slot {
	result := make([]Slot, 0, model.DaysInWeek*len(model.Shifts()))
	for _, day := range model.Days() {
		for _, shift := range model.Shifts() {
			result = append(result, Slot{Day: day, Shift: shift, Names: s.Roster(day, shift)})
		}
	}
	return result
}

func (s *Schedule) add(day model.Day, shift model.Shift, name string) {
	s.slots[day][shift] = append(s.slots[day][shift], name)
}
