package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		label    string
		expected Day
	}{
		{"Mon", Monday},
		{"tue", Tuesday},
		{" WED ", Wednesday},
		{"Sun", Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			day, err := ParseDay(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, day)
		})
	}
}

func TestParseDay_Unknown(t *testing.T) {
	_, err := ParseDay("Monday")
	assert.Error(t, err)
}

func TestDays_CanonicalOrder(t *testing.T) {
	labels := []string{}
	for _, d := range Days() {
		labels = append(labels, d.String())
	}
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, labels)
}

func TestShiftName(t *testing.T) {
	assert.Equal(t, "Morning", Morning.Name())
	assert.Equal(t, "Afternoon", Afternoon.Name())
	assert.Equal(t, "Evening", Evening.Name())
	assert.Equal(t, []Shift{Morning, Afternoon, Evening}, Shifts())
	assert.False(t, Shift("X").IsValid())
}

func TestNewEmployee_DefaultsMissingDays(t *testing.T) {
	e := NewEmployee("Alice", map[Day][]Shift{
		Monday: {Evening},
	})

	assert.Equal(t, []Shift{Evening}, e.RankedShifts(Monday))
	assert.Equal(t, Shifts(), e.RankedShifts(Tuesday))
	assert.Equal(t, 0, e.DaysWorked)
	assert.Empty(t, e.AssignedDays())
}

func TestEmployeeAssign_OncePerDay(t *testing.T) {
	e := NewEmployee("Alice", nil)

	assert.True(t, e.Assign(Wednesday, Morning))
	assert.False(t, e.Assign(Wednesday, Evening), "Assignment must not be overwritten")

	shift, ok := e.Assignment(Wednesday)
	require.True(t, ok)
	assert.Equal(t, Morning, shift)
	assert.Equal(t, 1, e.DaysWorked)
	assert.Equal(t, []Day{Wednesday}, e.AssignedDays())
}

func TestEmployeeCanWorkMore(t *testing.T) {
	e := NewEmployee("Alice", nil)
	for _, d := range []Day{Monday, Tuesday, Wednesday, Thursday} {
		e.Assign(d, Morning)
	}
	assert.True(t, e.CanWorkMore(5))

	e.Assign(Friday, Morning)
	assert.False(t, e.CanWorkMore(5))
}

func TestPreferenceRank(t *testing.T) {
	e := NewEmployee("Alice", map[Day][]Shift{Monday: {Afternoon, Morning}})

	assert.Equal(t, 0, e.PreferenceRank(Monday, Afternoon))
	assert.Equal(t, 1, e.PreferenceRank(Monday, Morning))
	assert.Equal(t, -1, e.PreferenceRank(Monday, Evening))
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()

	_, err := r.Add("  Alice ", nil)
	require.NoError(t, err)
	_, err = r.Add("Bob", nil)
	require.NoError(t, err)

	_, err = r.Add("Alice", nil)
	assert.ErrorIs(t, err, ErrDuplicateEmployee)

	_, err = r.Add("   ", nil)
	assert.ErrorIs(t, err, ErrEmptyName)

	require.Equal(t, 2, r.Len())
	assert.Equal(t, "Alice", r.Employees()[0].Name)
	assert.Equal(t, "Bob", r.Employees()[1].Name)

	bob, ok := r.Get("Bob")
	require.True(t, ok)
	assert.Equal(t, "Bob", bob.Name)
}

func TestRegistry_ZeroValueUsable(t *testing.T) {
	var r Registry
	_, err := r.Add("Alice", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}
