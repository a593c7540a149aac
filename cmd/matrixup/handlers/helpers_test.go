package handlers

import (
	"io"
	"os"
	"testing"

	"github.com/matrixup/matrixup/internal/config"
	"github.com/matrixup/matrixup/internal/prereq"
)

// captureOutput captures stdout produced by fn.
func captureOutput(fn func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = orig
	out, _ := io.ReadAll(r)
	return string(out)
}

// saveAndRestoreFactories saves and restores the handler factory functions.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origConfirm := confirm
	origCheck := checkRequirements
	origNewSecrets := newSecrets
	origWorkingDir := workingDir
	origFileExists := fileExists
	origRunWizard := runWizard
	origWriteSettings := writeSettings

	t.Cleanup(func() {
		confirm = origConfirm
		checkRequirements = origCheck
		newSecrets = origNewSecrets
		workingDir = origWorkingDir
		fileExists = origFileExists
		runWizard = origRunWizard
		writeSettings = origWriteSettings
	})
}

// allRequirementsMet replaces the requirement checks with a pass-everything stub.
func allRequirementsMet() {
	checkRequirements = func(string, config.Settings) *prereq.Results {
		return &prereq.Results{Results: []prereq.Result{
			{Requirement: prereq.Requirement{Name: "docker"}, Met: true},
		}}
	}
}
