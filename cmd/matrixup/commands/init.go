package commands

import (
	"github.com/spf13/cobra"

	"github.com/matrixup/matrixup/cmd/matrixup/handlers"
)

// Init returns the command for interactively creating the settings file.
//
// This command guides the user through the installer settings (domain,
// federation whitelist, max upload size) and writes settings.env. It does
// not generate any deployment artifacts; run the root command afterwards.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create the settings file",
		Long: `Interactively create the settings file.

Asks for the public domain, the optional federation whitelist, and the max
upload size, then writes them to settings.env in the working directory.
Run matrixup afterwards to generate the deployment.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "settings.env", "Output file path")

	return cmd
}
