package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrixup/matrixup/internal/artifacts"
	"github.com/matrixup/matrixup/internal/config"
	"github.com/matrixup/matrixup/internal/secrets"
)

func generateFixture(t *testing.T) (string, secrets.Bundle) {
	t.Helper()
	root := t.TempDir()
	bundle, err := secrets.NewBundle()
	require.NoError(t, err)

	in := artifacts.Input{
		Settings: config.Settings{DomainName: "chat.acme.org", MaxUploadSize: "50M"},
		Secrets:  *bundle,
	}
	require.NoError(t, artifacts.WriteAll(root, in))
	return root, *bundle
}

func TestCollectSecrets(t *testing.T) {
	root, bundle := generateFixture(t)

	entries, err := collectSecrets(root)
	require.NoError(t, err)

	values := map[string]string{}
	for _, entry := range entries {
		values[entry.Category+"/"+entry.Name] = entry.Value
	}

	assert.Equal(t, bundle.PostgresUser, values["Postgres/user"])
	assert.Equal(t, bundle.PostgresPassword, values["Postgres/password"])
	assert.Equal(t, bundle.PostgresDB, values["Postgres/database"])
	assert.Equal(t, bundle.RedisPassword, values["Redis/password"])
	assert.Equal(t, bundle.LiveKitKey, values["LiveKit/api key"])
	assert.Equal(t, bundle.LiveKitSecret, values["LiveKit/api secret"])
	assert.Equal(t, bundle.RegistrationSharedSecret, values["Synapse/registration secret"])
}

func TestSecrets(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		saveAndRestoreFactories(t)
		root, bundle := generateFixture(t)
		workingDir = func() (string, error) { return root, nil }

		output := captureOutput(func() {
			require.NoError(t, Secrets(true))
		})

		var entries []secretEntry
		require.NoError(t, json.Unmarshal([]byte(output), &entries))
		assert.Len(t, entries, 7)

		found := false
		for _, entry := range entries {
			if entry.Value == bundle.RegistrationSharedSecret {
				found = true
			}
		}
		assert.True(t, found, "registration secret missing from JSON output")
	})

	t.Run("no deployment yet", func(t *testing.T) {
		saveAndRestoreFactories(t)
		root := t.TempDir()
		workingDir = func() (string, error) { return root, nil }

		err := Secrets(false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Run 'matrixup' first")
	})

	t.Run("plain output lists every credential", func(t *testing.T) {
		saveAndRestoreFactories(t)
		root, bundle := generateFixture(t)
		workingDir = func() (string, error) { return root, nil }

		output := captureOutput(func() {
			require.NoError(t, Secrets(false))
		})
		assert.Contains(t, output, bundle.PostgresPassword)
		assert.Contains(t, output, bundle.LiveKitSecret)
	})
}
