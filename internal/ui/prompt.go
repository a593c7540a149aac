// Package ui implements the interactive confirmation prompts.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Indirected for tests and for piped stdin.
var (
	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	stdin io.Reader = os.Stdin
)

// Confirm asks a yes/no question and returns the answer. On an interactive
// terminal it shows a huh confirm; with piped stdin it falls back to a plain
// y/N line read. The default answer is no either way.
func Confirm(title, description string) (bool, error) {
	if isInteractive() {
		var ok bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(title).
					Description(description).
					Affirmative("Yes").
					Negative("No").
					Value(&ok),
			),
		)
		if err := form.Run(); err != nil {
			return false, fmt.Errorf("confirmation prompt: %w", err)
		}
		return ok, nil
	}

	if description != "" {
		fmt.Println(description)
	}
	fmt.Printf("%s [y/N]: ", title)
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
