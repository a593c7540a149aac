package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/matrixup/matrixup/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive settings wizard.
	runWizard = wizard.Run

	// writeSettings writes the wizard result to a file.
	writeSettings = wizard.WriteSettings
)

// Init runs the settings wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		ok, err := confirm(fmt.Sprintf("Overwrite %s?", outputPath),
			"The existing settings file will be replaced.")
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	printInitWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeSettings(result, outputPath); err != nil {
		return err
	}

	printInitSuccess(outputPath, result)
	return nil
}

func printInitWelcome() {
	fmt.Println()
	fmt.Println("matrixup - self-hosted chat/video stack")
	fmt.Println("=======================================")
	fmt.Println()
	fmt.Println("This wizard creates the settings file the generator reads.")
	fmt.Println("Three questions, then run 'matrixup' to generate the deployment.")
	fmt.Println()
}

func printInitSuccess(outputPath string, result *wizard.Result) {
	settings := result.Settings()

	fmt.Println()
	fmt.Println("Settings saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Domain:          %s\n", settings.DomainName)
	if domains := settings.WhitelistDomains(); len(domains) > 0 {
		fmt.Printf("  Federation:      %d whitelisted domain(s)\n", len(domains))
	} else {
		fmt.Printf("  Federation:      unrestricted\n")
	}
	fmt.Printf("  Max upload size: %s\n", settings.MaxUploadSize)
	fmt.Println()
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Check the host:")
	fmt.Println("     matrixup doctor")
	fmt.Println()
	fmt.Println("  2. Generate the deployment:")
	fmt.Println("     matrixup")
	fmt.Println()
}
