package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), SettingsFile))
		require.NoError(t, err)
		assert.Equal(t, PlaceholderDomain, s.DomainName)
		assert.Equal(t, DefaultMaxUploadSize, s.MaxUploadSize)
		assert.Empty(t, s.WhitelistDomains())
		assert.True(t, s.DomainIsPlaceholder())
	})

	t.Run("file values win over defaults", func(t *testing.T) {
		path := writeSettings(t, `
# deployment settings
DOMAIN_NAME=chat.acme.org
FEDERATION_DOMAIN_WHITELIST="acme.org,partner.example"
MAX_UPLOAD_SIZE=100M
`)
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "chat.acme.org", s.DomainName)
		assert.Equal(t, []string{"acme.org", "partner.example"}, s.WhitelistDomains())
		assert.Equal(t, "100M", s.MaxUploadSize)
		assert.False(t, s.DomainIsPlaceholder())
	})

	t.Run("empty values fall back to defaults", func(t *testing.T) {
		path := writeSettings(t, "DOMAIN_NAME=\nMAX_UPLOAD_SIZE=\n")
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, PlaceholderDomain, s.DomainName)
		assert.Equal(t, DefaultMaxUploadSize, s.MaxUploadSize)
	})

	t.Run("unknown keys and malformed lines are ignored", func(t *testing.T) {
		path := writeSettings(t, "DOMAIN_NAME=chat.acme.org\nSOME_OTHER_KEY=1\nnot a kv line\n")
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "chat.acme.org", s.DomainName)
	})

	t.Run("invalid domain is rejected", func(t *testing.T) {
		path := writeSettings(t, "DOMAIN_NAME=chat.acme.org; rm -rf /\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DOMAIN_NAME")
	})
}

func TestWhitelistDomains(t *testing.T) {
	t.Run("trims and drops empty tokens", func(t *testing.T) {
		s := Settings{FederationWhitelist: "a.org, b.org,  , c.org"}
		assert.Equal(t, []string{"a.org", "b.org", "c.org"}, s.WhitelistDomains())
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, Settings{}.WhitelistDomains())
		assert.Nil(t, Settings{FederationWhitelist: "  "}.WhitelistDomains())
	})

	t.Run("order is preserved", func(t *testing.T) {
		s := Settings{FederationWhitelist: "z.org,a.org,m.org"}
		assert.Equal(t, []string{"z.org", "a.org", "m.org"}, s.WhitelistDomains())
	})
}

func TestValidate(t *testing.T) {
	valid := Settings{DomainName: "chat.acme.org", MaxUploadSize: "50M"}
	require.NoError(t, valid.Validate())

	t.Run("placeholder domain is structurally valid", func(t *testing.T) {
		assert.NoError(t, Defaults().Validate())
	})

	t.Run("rejects hostile whitelist entry", func(t *testing.T) {
		s := valid
		s.FederationWhitelist = `a.org,evil" { }`
		assert.Error(t, s.Validate())
	})

	t.Run("rejects malformed upload size", func(t *testing.T) {
		s := valid
		s.MaxUploadSize = "lots"
		assert.Error(t, s.Validate())
	})
}
