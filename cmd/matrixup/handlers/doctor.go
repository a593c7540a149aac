package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matrixup/matrixup/internal/artifacts"
	"github.com/matrixup/matrixup/internal/config"
)

// Doctor resolves the settings and runs the requirement checks read-only.
// Unlike the generator it never prompts: the rows are the whole output, and
// the command succeeds even when requirements are missing.
func Doctor() error {
	root, err := workingDir()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	settings, err := config.Load(filepath.Join(root, config.SettingsFile))
	if err != nil {
		return err
	}

	fmt.Println()
	printDoctorHeader(settings.DomainName)

	results := checkRequirements(root, settings)
	for _, res := range results.Results {
		printRow(res.Requirement.Name, res.Met, res.Detail)
	}
	fmt.Println()

	fmt.Println("  Settings")
	fmt.Println("  " + strings.Repeat("─", 35))
	fmt.Printf("    Domain:          %s\n", settings.DomainName)
	if domains := settings.WhitelistDomains(); len(domains) > 0 {
		fmt.Printf("    Federation:      %s\n", strings.Join(domains, ", "))
	} else {
		fmt.Printf("    Federation:      unrestricted\n")
	}
	fmt.Printf("    Max upload size: %s\n", settings.MaxUploadSize)
	fmt.Println()

	if existing := artifacts.ExistingState(root); len(existing) > 0 {
		fmt.Printf("  Existing deployment state: %s\n", strings.Join(existing, ", "))
		fmt.Println("  Re-running matrixup will replace every secret.")
	} else {
		fmt.Println("  No existing deployment state. Run 'matrixup' to generate one.")
	}
	fmt.Println()

	return nil
}

func printDoctorHeader(domain string) {
	title := fmt.Sprintf("matrixup doctor: %s", domain)
	fmt.Printf("  %s\n", title)
	fmt.Println("  " + strings.Repeat("═", len(title)))
	fmt.Println()
}
