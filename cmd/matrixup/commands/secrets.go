package commands

import (
	"github.com/spf13/cobra"

	"github.com/matrixup/matrixup/cmd/matrixup/handlers"
)

// Secrets returns the command for displaying the generated credentials.
//
// The credentials live only inside the generated artifacts; this command
// reads them back out and prints them grouped by service.
//
// Optional flags:
//
//	--json: Output in JSON format
func Secrets() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Show the credentials embedded in the generated artifacts",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Secrets(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
