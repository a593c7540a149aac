package wizard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrixup/matrixup/internal/config"
)

func TestWriteSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.SettingsFile)
	result := &Result{
		DomainName:          "chat.acme.org",
		FederationWhitelist: "acme.org, partner.example",
		MaxUploadSize:       "100M",
	}
	require.NoError(t, WriteSettings(result, path))

	// The written file must round-trip through the settings loader.
	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "chat.acme.org", s.DomainName)
	assert.Equal(t, []string{"acme.org", "partner.example"}, s.WhitelistDomains())
	assert.Equal(t, "100M", s.MaxUploadSize)
}

func TestResultSettings(t *testing.T) {
	t.Run("empty answers fall back to defaults", func(t *testing.T) {
		s := (Result{}).Settings()
		assert.Equal(t, config.PlaceholderDomain, s.DomainName)
		assert.Equal(t, config.DefaultMaxUploadSize, s.MaxUploadSize)
	})

	t.Run("answers override defaults", func(t *testing.T) {
		s := (Result{DomainName: "chat.acme.org", MaxUploadSize: "10M"}).Settings()
		assert.Equal(t, "chat.acme.org", s.DomainName)
		assert.Equal(t, "10M", s.MaxUploadSize)
	})
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateDomain("chat.acme.org"))
	assert.Error(t, validateDomain(""))
	assert.Error(t, validateDomain("bad domain"))

	assert.NoError(t, validateWhitelist(""))
	assert.NoError(t, validateWhitelist("a.org, b.org"))
	assert.Error(t, validateWhitelist("a.org, not valid"))
}
