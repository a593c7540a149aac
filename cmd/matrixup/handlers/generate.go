// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matrixup/matrixup/internal/artifacts"
	"github.com/matrixup/matrixup/internal/config"
	"github.com/matrixup/matrixup/internal/prereq"
	"github.com/matrixup/matrixup/internal/secrets"
	"github.com/matrixup/matrixup/internal/ui"
)

// ErrAborted is returned when the user declines a confirmation prompt.
// main maps any error to exit status 1.
var ErrAborted = errors.New("aborted")

// Factory function variables - can be replaced in tests for dependency injection.
var (
	confirm           = ui.Confirm
	checkRequirements = prereq.Check
	newSecrets        = secrets.NewBundle
	workingDir        = os.Getwd
)

// Generate runs the full generation pipeline in the working directory:
// requirement checks, safety confirmation if prior output exists, settings
// resolution, secret generation, artifact rendering, and best-effort
// permission finalization. Steps run sequentially with no retries; the first
// failure aborts the run.
func Generate(ctx context.Context) error {
	root, err := workingDir()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	settings, err := config.Load(filepath.Join(root, config.SettingsFile))
	if err != nil {
		return err
	}

	results := checkRequirements(root, settings)
	printRequirements(results)
	if results.HasMissing() {
		ok, err := confirm("Continue despite missing requirements?",
			"The generated deployment will not start until every requirement above is met.")
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	// The destructive-overwrite check runs before any write.
	if existing := artifacts.ExistingState(root); len(existing) > 0 {
		fmt.Println()
		fmt.Printf("Existing deployment state found: %s\n", strings.Join(existing, ", "))
		ok, err := confirm("Regenerate and replace all secrets?",
			"Regenerating invalidates every existing secret and may break a running deployment.")
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	bundle, err := newSecrets()
	if err != nil {
		return fmt.Errorf("failed to generate credentials: %w", err)
	}

	in := artifacts.Input{Settings: settings, Secrets: *bundle}
	if err := artifacts.WriteAll(root, in); err != nil {
		return err
	}

	artifacts.FixPermissions(root, warnf)

	printGenerateSummary(settings)
	return nil
}

func warnf(format string, args ...any) {
	fmt.Printf("[WARN] "+format+"\n", args...)
}

// printRequirements prints one row per check, same format as doctor output.
func printRequirements(results *prereq.Results) {
	fmt.Println()
	fmt.Println("  Requirements")
	fmt.Println("  " + strings.Repeat("─", 35))
	for _, res := range results.Results {
		printRow(res.Requirement.Name, res.Met, res.Detail)
	}
	fmt.Println()
}

func printRow(name string, ok bool, extra string) {
	indicator := "✅" // green check
	if !ok {
		indicator = "❌" // red X
	}

	if extra != "" {
		fmt.Printf("  %s  %-20s %s\n", indicator, name, extra)
	} else {
		fmt.Printf("  %s  %s\n", indicator, name)
	}
}

func printGenerateSummary(settings config.Settings) {
	fmt.Println()
	fmt.Println("Deployment generated!")
	fmt.Println()
	fmt.Printf("  Domain:          %s\n", settings.DomainName)
	if domains := settings.WhitelistDomains(); len(domains) > 0 {
		fmt.Printf("  Federation:      %s\n", strings.Join(domains, ", "))
	} else {
		fmt.Printf("  Federation:      unrestricted\n")
	}
	fmt.Printf("  Max upload size: %s\n", settings.MaxUploadSize)
	fmt.Println()
	fmt.Println("Generated files")
	fmt.Println("---------------")
	for _, file := range []string{
		artifacts.ComposeFile,
		artifacts.HomeserverFile,
		artifacts.LiveKitFile,
		artifacts.ElementFile,
		artifacts.NginxFile,
	} {
		fmt.Printf("  %s\n", file)
	}
	fmt.Println()
	fmt.Println("Next Steps")
	fmt.Println("----------")
	certFile, keyFile := artifacts.CertPaths(settings.DomainName)
	fmt.Printf("  1. Place your TLS certificate pair at %s and %s\n", certFile, keyFile)
	fmt.Println()
	fmt.Println("  2. Start the stack:")
	fmt.Println("     docker compose up -d")
	fmt.Println()
	fmt.Println("  3. Inspect the generated credentials at any time:")
	fmt.Println("     matrixup secrets")
	fmt.Println()
}
