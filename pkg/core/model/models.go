package model

import (
	"fmt"
	"strings"
)

// Day is a day of the scheduling week. The zero value is Monday.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the number of days in the scheduling week
const DaysInWeek = 7

var dayLabels = [DaysInWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Days returns every day of the week in canonical order
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Day) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayLabels[d]
}

func (d Day) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// ParseDay converts a three letter label ("Mon", "tue", ...) into a Day
func ParseDay(label string) (Day, error) {
	label = strings.TrimSpace(label)
	for i, l := range dayLabels {
		if strings.EqualFold(l, label) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", label)
}

// Shift is one of the three fixed shift codes
type Shift string

const (
	Morning   Shift = "M"
	Afternoon Shift = "A"
	Evening   Shift = "E"
)

// Shifts returns every shift in canonical order
func Shifts() []Shift {
	return []Shift{Morning, Afternoon, Evening}
}

func (s Shift) IsValid() bool {
	return s == Morning || s == Afternoon || s == Evening
}

// Name returns the display name of the shift
func (s Shift) Name() string {
	switch s {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	}
	return string(s)
}
