package commands

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
)

const fourMorningRoster = `employees:
  - name: Ann
    default: M
  - name: Ben
    default: M
  - name: Cal
    default: M
  - name: Dee
    default: M
`

func newTestApp(input string) (*AppContext, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &AppContext{
		Cfg:    config.Default(),
		Logger: zap.NewNop(),
		Ctx:    context.Background(),
		In:     bufio.NewReader(strings.NewReader(input)),
		Out:    out,
	}, out
}

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestScheduleCmd_FromRosterFile(t *testing.T) {
	app, out := newTestApp("")
	path := writeRoster(t, fourMorningRoster)

	require.NoError(t, execute(ScheduleCmd(app), "--roster", path))

	output := out.String()
	assert.Contains(t, output, "FINAL WEEK SCHEDULE")
	assert.Contains(t, output, "EMPLOYEE SUMMARY")
	assert.Contains(t, output, "SHORTAGES")
	assert.Contains(t, output, "PREFERENCE SATISFACTION")
	assert.NotContains(t, output, "VALIDATION ERRORS")
	assert.Contains(t, output, "(seed 42)")
	assert.Contains(t, output, "11 slot(s) below minimum")
	for _, name := range []string{"Ann", "Ben", "Cal", "Dee"} {
		assert.Contains(t, output, name+": 5 day(s)")
	}
}

func TestScheduleCmd_FlagOverrides(t *testing.T) {
	app, out := newTestApp("")
	path := writeRoster(t, fourMorningRoster)

	require.NoError(t, execute(ScheduleCmd(app), "--roster", path, "--seed", "9", "--week-start", "2026-10-19"))

	assert.Contains(t, out.String(), "(seed 9)")
	assert.Contains(t, out.String(), "Mon 2026-10-19:")
	assert.Equal(t, int64(42), app.Cfg.Seed, "loaded config should not change")
}

func TestScheduleCmd_FromPrompts(t *testing.T) {
	input := "1\nAlice\n" + strings.Repeat("E\n", 7)
	app, out := newTestApp(input)

	require.NoError(t, execute(ScheduleCmd(app)))

	assert.Contains(t, out.String(), "Number of employees: ")
	assert.Contains(t, out.String(), "Alice: 5 day(s) -> Mon, Tue, Wed, Thu, Fri")
	assert.Contains(t, out.String(), "  Evening: Alice\n")
}

func TestScheduleCmd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"week start not a monday", []string{"--week-start", "2026-10-20"}, "invalid options"},
		{"missing roster file", []string{"--roster", "does-not-exist.yaml"}, "failed to load roster"},
		{"unexpected argument", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp("")
			err := execute(ScheduleCmd(app), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestCheckRosterCmd(t *testing.T) {
	app, out := newTestApp("")
	path := writeRoster(t, "employees:\n  - name: Eve\n    preferences:\n      Mon: \"E,M\"\n  - name: Fay\n")

	require.NoError(t, execute(CheckRosterCmd(app), path))

	assert.Contains(t, out.String(), "Roster is valid: 2 employee(s)")
	assert.Contains(t, out.String(), "\nEve:\n  Mon: E > M\n  Tue: M > A > E\n")
}

func TestCheckRosterCmd_InvalidRoster(t *testing.T) {
	app, _ := newTestApp("")
	path := writeRoster(t, "employees: []\n")

	err := execute(CheckRosterCmd(app), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster has no employees")
}

func TestInteractiveCmd(t *testing.T) {
	path := writeRoster(t, fourMorningRoster)
	input := strings.Join([]string{
		"help",
		"frobnicate",
		fmt.Sprintf("checkRoster %q", path),
		fmt.Sprintf("schedule --roster %q --seed 3", path),
		fmt.Sprintf("schedule --roster %q", path),
		"checkRoster",
		"exit",
		"schedule",
	}, "\n") + "\n"
	app, out := newTestApp(input)

	root := &cobra.Command{Use: "cli"}
	root.AddCommand(ScheduleCmd(app), CheckRosterCmd(app), InteractiveCmd(app))

	require.NoError(t, execute(root, "interactive"))

	output := out.String()
	assert.Contains(t, output, "Available commands:")
	assert.Contains(t, output, "checkRoster <roster_file>")
	assert.Contains(t, output, "Unknown command: frobnicate")
	assert.Contains(t, output, "Roster is valid: 4 employee(s)")
	assert.Contains(t, output, "(seed 3)")
	assert.Contains(t, output, "(seed 42)", "seed flag should reset between commands")
	assert.Contains(t, output, "accepts 1 arg(s), received 0")
	assert.Contains(t, output, "Goodbye!")
	assert.NotContains(t, output, "Number of employees", "input after exit should not be read")
}

func TestInteractiveCmd_EndOfInput(t *testing.T) {
	app, out := newTestApp("help")

	root := &cobra.Command{Use: "cli"}
	root.AddCommand(CheckRosterCmd(app), InteractiveCmd(app))

	require.NoError(t, execute(root, "interactive"))
	assert.Contains(t, out.String(), "Available commands:")
}

func TestParseCommandLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
		wantErr  bool
	}{
		{"plain", "schedule --seed 4", []string{"schedule", "--seed", "4"}, false},
		{"double quotes", `checkRoster "my roster.yaml"`, []string{"checkRoster", "my roster.yaml"}, false},
		{"single quotes", `checkRoster 'a b'`, []string{"checkRoster", "a b"}, false},
		{"extra spaces", "  schedule   --seed  4 ", []string{"schedule", "--seed", "4"}, false},
		{"unclosed quote", `checkRoster "oops`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := parseCommandLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, args)
		})
	}
}
