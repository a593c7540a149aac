package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPlainStdin(t *testing.T, input string) {
	t.Helper()
	origInteractive, origStdin := isInteractive, stdin
	t.Cleanup(func() {
		isInteractive, stdin = origInteractive, origStdin
	})
	isInteractive = func() bool { return false }
	stdin = strings.NewReader(input)
}

func TestConfirmPlainFallback(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"anything else\n", false},
		{"", false}, // EOF defaults to no
	}

	for _, tc := range cases {
		t.Run("input "+strings.TrimSpace(tc.input), func(t *testing.T) {
			stubPlainStdin(t, tc.input)
			got, err := Confirm("Proceed?", "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
