// Package wizard implements the interactive settings wizard behind
// `matrixup init`. It asks for the handful of values the installer needs and
// writes them to the settings file the generator reads.
package wizard

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/matrixup/matrixup/internal/config"
)

var hostnameRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,62})(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,62}))*$`)

// Result holds the answers from the wizard.
type Result struct {
	DomainName          string
	FederationWhitelist string
	MaxUploadSize       string
}

// Settings converts the wizard answers into resolved settings.
func (r Result) Settings() config.Settings {
	s := config.Defaults()
	if r.DomainName != "" {
		s.DomainName = r.DomainName
	}
	s.FederationWhitelist = strings.TrimSpace(r.FederationWhitelist)
	if r.MaxUploadSize != "" {
		s.MaxUploadSize = r.MaxUploadSize
	}
	return s
}

// Run walks the user through the settings questions.
// The context is used for cancellation (Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{MaxUploadSize: config.DefaultMaxUploadSize}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Domain name").
				Description("Public domain the deployment is served under, e.g. chat.acme.org").
				Validate(validateDomain).
				Value(&result.DomainName),
			huh.NewInput().
				Title("Federation whitelist").
				Description("Comma-separated remote server domains; leave empty for unrestricted federation").
				Validate(validateWhitelist).
				Value(&result.FederationWhitelist),
			huh.NewSelect[string]().
				Title("Max upload size").
				Options(
					huh.NewOption("10M", "10M"),
					huh.NewOption("50M (default)", "50M"),
					huh.NewOption("100M", "100M"),
					huh.NewOption("512M", "512M"),
				).
				Value(&result.MaxUploadSize),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("settings wizard: %w", err)
	}
	return result, nil
}

func validateDomain(value string) error {
	if value == "" {
		return fmt.Errorf("domain is required")
	}
	if !hostnameRe.MatchString(value) {
		return fmt.Errorf("not a valid hostname")
	}
	return nil
}

func validateWhitelist(value string) error {
	for _, token := range strings.Split(value, ",") {
		domain := strings.TrimSpace(token)
		if domain == "" {
			continue
		}
		if !hostnameRe.MatchString(domain) {
			return fmt.Errorf("%q is not a valid hostname", domain)
		}
	}
	return nil
}
