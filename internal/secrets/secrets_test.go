package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	t.Run("exact length", func(t *testing.T) {
		for _, n := range []int{1, 16, 32, 64} {
			token, err := Token(n)
			require.NoError(t, err)
			assert.Len(t, token, n)
		}
	})

	t.Run("charset membership", func(t *testing.T) {
		token, err := Token(256)
		require.NoError(t, err)
		for _, r := range token {
			assert.True(t, strings.ContainsRune(Charset, r), "unexpected rune %q", r)
		}
		assert.NotContains(t, token, "e")
		assert.NotContains(t, token, "E")
	})

	t.Run("successive tokens differ", func(t *testing.T) {
		a, err := Token(32)
		require.NoError(t, err)
		b, err := Token(32)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("zero length", func(t *testing.T) {
		token, err := Token(0)
		require.NoError(t, err)
		assert.Empty(t, token)
	})
}

func TestNewBundle(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	short := []string{bundle.PostgresUser, bundle.PostgresDB, bundle.LiveKitKey}
	long := []string{
		bundle.PostgresPassword,
		bundle.RedisPassword,
		bundle.LiveKitSecret,
		bundle.RegistrationSharedSecret,
	}

	for _, token := range short {
		assert.Len(t, token, 16)
	}
	for _, token := range long {
		assert.Len(t, token, 32)
	}

	// All seven tokens are generated independently.
	seen := map[string]bool{}
	for _, token := range append(short, long...) {
		assert.False(t, seen[token], "duplicate token %q", token)
		seen[token] = true
	}
}
