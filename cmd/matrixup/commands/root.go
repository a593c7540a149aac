// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/matrixup/matrixup/cmd/matrixup/handlers"
)

// Root returns the root command for the matrixup CLI.
//
// Running the root command with no arguments performs the full generation:
// requirement checks, confirmation if prior output exists, secret
// generation, and artifact rendering into the working directory.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrixup",
		Short: "Bootstrap a self-hosted chat/video-conferencing stack",
		Long: `Bootstrap a self-hosted chat/video-conferencing deployment.

Running matrixup with no arguments generates everything into the working
directory: the orchestration manifest, homeserver config, web client config,
SFU config, and reverse-proxy rules, all sharing one freshly generated set
of credentials.

Behavior is controlled by the optional settings.env file in the working
directory (DOMAIN_NAME, FEDERATION_DOMAIN_WHITELIST, MAX_UPLOAD_SIZE) and by
interactive confirmation prompts. Re-running replaces every secret.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Generate(cmd.Context())
		},
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Secrets())
	cmd.AddCommand(Version())

	return cmd
}
