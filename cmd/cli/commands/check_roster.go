package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-rota/pkg/report"
)

// CheckRosterCmd creates the checkRoster command
func CheckRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "checkRoster <roster_file>",
		Short: "Validate a roster file and show each employee's normalized preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(app, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "\n✓ Roster is valid: %d employee(s)\n", registry.Len())
			report.WritePreferences(app.Out, registry)

			return nil
		},
	}
}
