package wizard

import (
	"fmt"
	"os"
	"strings"
)

// WriteSettings writes the wizard answers as a KEY=value settings file.
// The whitelist value is quoted because it may contain commas and spaces.
func WriteSettings(result *Result, path string) error {
	var sb strings.Builder
	sb.WriteString("# matrixup deployment settings\n")
	sb.WriteString("# Edit and re-run `matrixup` to regenerate the deployment.\n\n")
	fmt.Fprintf(&sb, "DOMAIN_NAME=%s\n", result.DomainName)
	fmt.Fprintf(&sb, "FEDERATION_DOMAIN_WHITELIST=%q\n", strings.TrimSpace(result.FederationWhitelist))
	fmt.Fprintf(&sb, "MAX_UPLOAD_SIZE=%s\n", result.MaxUploadSize)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
