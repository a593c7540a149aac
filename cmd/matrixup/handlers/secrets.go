package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/matrixup/matrixup/internal/artifacts"
)

// secretEntry represents a single credential for display.
type secretEntry struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

// Secrets reads the credentials back out of the generated artifacts and
// displays them. The artifacts are the only place the credentials live; this
// command never generates anything.
func Secrets(jsonOutput bool) error {
	root, err := workingDir()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	if _, err := os.Stat(filepath.Join(root, artifacts.HomeserverFile)); os.IsNotExist(err) {
		return fmt.Errorf("no generated deployment found. Run 'matrixup' first")
	}

	entries, err := collectSecrets(root)
	if err != nil {
		return err
	}

	if jsonOutput {
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
		return nil
	}

	if isInteractiveTTY() {
		printSecretsStyled(entries)
	} else {
		printSecretsPlain(entries)
	}
	return nil
}

// homeserverSecrets is the subset of the homeserver config this command
// reads back.
type homeserverSecrets struct {
	Database struct {
		Args struct {
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			Database string `yaml:"database"`
		} `yaml:"args"`
	} `yaml:"database"`
	Redis struct {
		Password string `yaml:"password"`
	} `yaml:"redis"`
	RegistrationSharedSecret string `yaml:"registration_shared_secret"`
}

type livekitSecrets struct {
	Keys map[string]string `yaml:"keys"`
}

func collectSecrets(root string) ([]secretEntry, error) {
	hsRaw, err := os.ReadFile(filepath.Join(root, artifacts.HomeserverFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read homeserver config: %w", err)
	}
	var hs homeserverSecrets
	if err := yaml.Unmarshal(hsRaw, &hs); err != nil {
		return nil, fmt.Errorf("failed to parse homeserver config: %w", err)
	}

	entries := []secretEntry{
		{Category: "Postgres", Name: "user", Value: hs.Database.Args.User},
		{Category: "Postgres", Name: "password", Value: hs.Database.Args.Password},
		{Category: "Postgres", Name: "database", Value: hs.Database.Args.Database},
		{Category: "Redis", Name: "password", Value: hs.Redis.Password},
	}

	lkRaw, err := os.ReadFile(filepath.Join(root, artifacts.LiveKitFile))
	if err == nil {
		var lk livekitSecrets
		if err := yaml.Unmarshal(lkRaw, &lk); err == nil {
			for key, secret := range lk.Keys {
				entries = append(entries,
					secretEntry{Category: "LiveKit", Name: "api key", Value: key},
					secretEntry{Category: "LiveKit", Name: "api secret", Value: secret},
				)
			}
		}
	}

	entries = append(entries, secretEntry{
		Category: "Synapse",
		Name:     "registration secret",
		Value:    hs.RegistrationSharedSecret,
	})

	return entries, nil
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func printSecretsStyled(entries []secretEntry) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	fmt.Println()
	fmt.Println(titleStyle.Render("  matrixup secrets"))
	fmt.Println(dimStyle.Render("  " + strings.Repeat("=", 30)))
	fmt.Println()

	currentCategory := ""
	for _, entry := range entries {
		if entry.Category != currentCategory {
			if currentCategory != "" {
				fmt.Println()
			}
			fmt.Println(sectionStyle.Render("  " + entry.Category))
			fmt.Println(dimStyle.Render("  " + strings.Repeat("-", 35)))
			currentCategory = entry.Category
		}
		fmt.Printf("  %s  %s\n",
			nameStyle.Render(fmt.Sprintf("%-20s", entry.Name)),
			valueStyle.Render(entry.Value))
	}
	fmt.Println()
}

func printSecretsPlain(entries []secretEntry) {
	for _, entry := range entries {
		fmt.Printf("%s/%s: %s\n", strings.ToLower(entry.Category), strings.ReplaceAll(entry.Name, " ", "_"), entry.Value)
	}
}
