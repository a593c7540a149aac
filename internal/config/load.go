package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Load reads the settings file at path and resolves it against the defaults.
// A missing file is not an error: every key falls back to its default.
func Load(path string) (Settings, error) {
	s := Defaults()

	raw, err := readEnvFile(path)
	if err != nil {
		return Settings{}, err
	}
	if err := mapstructure.Decode(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}

	// A key that is present but empty falls back to the default as well.
	if s.DomainName == "" {
		s.DomainName = PlaceholderDomain
	}
	if s.MaxUploadSize == "" {
		s.MaxUploadSize = DefaultMaxUploadSize
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// readEnvFile parses a KEY=value file. Blank lines and # comments are
// skipped, values may be wrapped in double quotes.
func readEnvFile(path string) (map[string]string, error) {
	file, err := os.Open(path) // #nosec G304
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	defer file.Close()

	vars := map[string]string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), "\"")
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return vars, nil
}
