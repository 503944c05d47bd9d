package config

import (
	"os"
	"path/filepath"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. BUMPCHANGES_COMMITS=3.
const EnvPrefix = "BUMPCHANGES_"

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/bumpchanges/config.yml
// - macOS: ~/Library/Application Support/bumpchanges/config.yml
// - Windows: %APPDATA%\bumpchanges\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "bumpchanges", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// always .bumpchanges.yml relative to the current directory.
func ProjectConfigPath() string {
	return ".bumpchanges.yml"
}
