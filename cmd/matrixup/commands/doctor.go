package commands

import (
	"github.com/spf13/cobra"

	"github.com/matrixup/matrixup/cmd/matrixup/handlers"
)

// Doctor returns the command for checking host prerequisites.
//
// Doctor is read-only: it resolves the settings file, runs the same
// requirement checks the generator runs, and prints one row per check. It
// never prompts and never writes.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check host prerequisites without generating anything",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor()
		},
	}
}
