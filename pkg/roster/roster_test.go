package roster

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

func TestParse_ValidRoster(t *testing.T) {
	data := `employees:
  - name: Alice
    default: "E"
    preferences:
      Mon: "M,A"
      sat: "a"
  - name: Bob
`
	registry, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Equal(t, 2, registry.Len())

	alice, ok := registry.Get("Alice")
	require.True(t, ok)
	assert.Equal(t, []model.Shift{model.Morning, model.Afternoon}, alice.RankedShifts(model.Monday))
	assert.Equal(t, []model.Shift{model.Afternoon, model.Morning, model.Evening}, alice.RankedShifts(model.Saturday))
	assert.Equal(t, []model.Shift{model.Evening, model.Morning, model.Afternoon}, alice.RankedShifts(model.Tuesday))

	bob, ok := registry.Get("Bob")
	require.True(t, ok)
	for _, day := range model.Days() {
		assert.Equal(t, model.Shifts(), bob.RankedShifts(day))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		contains string
	}{
		{"no employees", "employees: []\n", "no employees"},
		{"missing name", "employees:\n  - default: M\n", "validation failed"},
		{"duplicate names", "employees:\n  - name: Al\n  - name: Al\n", "validation failed"},
		{"duplicate after trim", "employees:\n  - name: Al\n  - name: \" Al\"\n", "duplicate employee name"},
		{"unknown day", "employees:\n  - name: Al\n    preferences:\n      Funday: M\n", "unknown day"},
		{"bad yaml", "employees: [\n", "failed to parse roster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParse_NoEmployeesSentinel(t *testing.T) {
	_, err := Parse([]byte("{}"))
	assert.ErrorIs(t, err, ErrNoEmployees)
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("employees:\n  - name: Cat\n"), 0644))

	registry, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())

	_, err = LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read roster file")
}

func weekOfLines(line string) string {
	return strings.Repeat(line+"\n", model.DaysInWeek)
}

func TestPromptRoster(t *testing.T) {
	input := "2\n" +
		"Alice\n" + "M\n" + "M,E,A\n" + "\n" + "x,M,m\n" + "A,M,A\n" + "E\n" + "A\n" +
		"Bob\n" + weekOfLines("")

	var out bytes.Buffer
	registry, err := NewPrompter(strings.NewReader(input), &out).PromptRoster()
	require.NoError(t, err)
	require.Equal(t, 2, registry.Len())

	alice, _ := registry.Get("Alice")
	M, A, E := model.Morning, model.Afternoon, model.Evening
	assert.Equal(t, []model.Shift{M, A, E}, alice.RankedShifts(model.Monday))
	assert.Equal(t, []model.Shift{M, E, A}, alice.RankedShifts(model.Tuesday))
	assert.Equal(t, []model.Shift{M, A, E}, alice.RankedShifts(model.Wednesday))
	assert.Equal(t, []model.Shift{M, A, E}, alice.RankedShifts(model.Thursday))
	assert.Equal(t, []model.Shift{A, M}, alice.RankedShifts(model.Friday))
	assert.Equal(t, []model.Shift{E, M, A}, alice.RankedShifts(model.Saturday))
	assert.Equal(t, []model.Shift{A, M, E}, alice.RankedShifts(model.Sunday))

	assert.Contains(t, out.String(), "Number of employees: ")
	assert.Contains(t, out.String(), "Employee 2 name: ")
	assert.Contains(t, out.String(), "Example: M,E,A")
	assert.Contains(t, out.String(), "  Sun: ")
}

func TestPromptRoster_RepromptsInvalidInput(t *testing.T) {
	input := "two\n1\n\nAlice\n" + weekOfLines("E")

	var out bytes.Buffer
	registry, err := NewPrompter(strings.NewReader(input), &out).PromptRoster()
	require.NoError(t, err)

	assert.Equal(t, 1, registry.Len())
	assert.Contains(t, out.String(), `Please enter a whole number, got "two"`)
	assert.Contains(t, out.String(), "Name cannot be empty")
}

func TestPromptRoster_RejectsDuplicateName(t *testing.T) {
	input := "2\nAlice\n" + weekOfLines("M") + "Alice\nBob\n" + weekOfLines("A")

	var out bytes.Buffer
	registry, err := NewPrompter(strings.NewReader(input), &out).PromptRoster()
	require.NoError(t, err)

	assert.Equal(t, 2, registry.Len())
	assert.Contains(t, out.String(), "Alice is already on the roster")
}

func TestPromptRoster_ZeroEmployees(t *testing.T) {
	_, err := NewPrompter(strings.NewReader("0\n"), io.Discard).PromptRoster()
	assert.ErrorIs(t, err, ErrNoEmployees)
}

func TestPromptRoster_TruncatedInput(t *testing.T) {
	_, err := NewPrompter(strings.NewReader("1\nAlice\nM\n"), io.Discard).PromptRoster()
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestPromptRoster_LastLineWithoutNewline(t *testing.T) {
	input := "1\nAlice\n" + strings.Repeat("M\n", model.DaysInWeek-1) + "E"

	registry, err := NewPrompter(strings.NewReader(input), io.Discard).PromptRoster()
	require.NoError(t, err)

	alice, _ := registry.Get("Alice")
	assert.Equal(t, model.Evening, alice.RankedShifts(model.Sunday)[0])
}
