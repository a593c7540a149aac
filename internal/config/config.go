// Package config resolves installer settings from the optional settings file
// in the working directory.
//
// Resolution order for every key is file value first, documented default
// second. The resolved Settings value is immutable: it is built once by Load
// and passed along to the requirement checks and the artifact renderer.
package config

import "strings"

const (
	// SettingsFile is the optional KEY=value settings file read from the
	// working directory.
	SettingsFile = "settings.env"

	// PlaceholderDomain is the shipped default domain. Leaving it in place is
	// treated as a misconfiguration by the requirement checks, not merely as
	// missing certificates.
	PlaceholderDomain = "example.com"

	// DefaultMaxUploadSize is the homeserver upload cap applied when the
	// settings file does not override it.
	DefaultMaxUploadSize = "50M"
)

// Settings holds the resolved installer settings.
type Settings struct {
	// DomainName is the public domain the whole deployment is served under.
	DomainName string `mapstructure:"DOMAIN_NAME"`

	// FederationWhitelist is the raw comma-separated list of remote server
	// domains this deployment may federate with. Empty means the homeserver
	// config carries no whitelist and federation stays unrestricted.
	FederationWhitelist string `mapstructure:"FEDERATION_DOMAIN_WHITELIST"`

	// MaxUploadSize is the homeserver media upload cap, e.g. "50M".
	MaxUploadSize string `mapstructure:"MAX_UPLOAD_SIZE"`
}

// Defaults returns the documented default settings.
func Defaults() Settings {
	return Settings{
		DomainName:    PlaceholderDomain,
		MaxUploadSize: DefaultMaxUploadSize,
	}
}

// WhitelistDomains splits the federation whitelist into an ordered list of
// non-empty trimmed domain tokens.
func (s Settings) WhitelistDomains() []string {
	if strings.TrimSpace(s.FederationWhitelist) == "" {
		return nil
	}
	var domains []string
	for _, token := range strings.Split(s.FederationWhitelist, ",") {
		if domain := strings.TrimSpace(token); domain != "" {
			domains = append(domains, domain)
		}
	}
	return domains
}

// DomainIsPlaceholder reports whether the domain was never configured.
func (s Settings) DomainIsPlaceholder() bool {
	return s.DomainName == PlaceholderDomain
}
