package commands

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	Version().Run(nil, nil)

	_ = w.Close()
	os.Stdout = orig
	out, _ := io.ReadAll(r)

	assert.Contains(t, string(out), "matrixup 1.2.3")
	assert.Contains(t, string(out), "commit: abc1234")
}
