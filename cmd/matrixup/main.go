// Package main is the entry point for the matrixup CLI.
//
// matrixup is a one-shot installer that bootstraps a self-hosted chat and
// video-conferencing deployment: it checks host prerequisites, resolves the
// settings file, generates fresh credentials, and writes the orchestration
// manifest together with the homeserver, web client, SFU, and reverse-proxy
// configuration.
//
// Commands: (root) generate, init, doctor, secrets, version.
//
// For detailed usage information, run:
//
//	matrixup --help
package main

import (
	"fmt"
	"os"

	"github.com/matrixup/matrixup/cmd/matrixup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
