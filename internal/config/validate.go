package config

import (
	"fmt"
	"regexp"
)

// hostnameRe matches a DNS hostname: dot-separated labels of alphanumerics
// and hyphens. Deliberately strict so a settings value can never smuggle
// quoting or directive characters into the rendered proxy rules.
var hostnameRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,62})(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,62}))*$`)

// uploadSizeRe matches a byte size with an optional K/M/G suffix, the format
// both nginx and the homeserver accept.
var uploadSizeRe = regexp.MustCompile(`^[0-9]+[KMG]?$`)

// Validate checks the shape of the resolved settings. It does not judge
// whether the domain is the placeholder; that is a requirement-check concern.
func (s Settings) Validate() error {
	if !hostnameRe.MatchString(s.DomainName) {
		return fmt.Errorf("DOMAIN_NAME %q is not a valid hostname", s.DomainName)
	}
	for _, domain := range s.WhitelistDomains() {
		if !hostnameRe.MatchString(domain) {
			return fmt.Errorf("FEDERATION_DOMAIN_WHITELIST entry %q is not a valid hostname", domain)
		}
	}
	if !uploadSizeRe.MatchString(s.MaxUploadSize) {
		return fmt.Errorf("MAX_UPLOAD_SIZE %q is not a valid size (expected e.g. 50M)", s.MaxUploadSize)
	}
	return nil
}
