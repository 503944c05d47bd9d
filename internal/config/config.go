// Package config provides hierarchical configuration management for
// bumpchanges using koanf. Values are loaded with priority: environment
// variables > project config (.bumpchanges.yml) > user config
// (~/.config/bumpchanges/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds every knob the update command honors.
type Configuration struct {
	// ChangesFile names the target file explicitly. Empty means search the
	// conventional names (Changes, ChangeLog, CHANGES, CHANGELOG).
	ChangesFile string `koanf:"changes_file"`

	// MetadataFile is the project metadata file whose version line drives
	// version derivation. Empty disables derivation.
	MetadataFile string `koanf:"metadata_file"`

	// Commits is the number of recent commit messages to collect.
	Commits int `koanf:"commits" validate:"gte=0"`

	// Skip drops the most recent commits before collecting.
	Skip int `koanf:"skip" validate:"gte=0"`

	// Author overrides author resolution when non-empty. The
	// BUMPCHANGES_AUTHOR env var is deliberately not mapped onto this key:
	// it is a last-resort fallback consulted during author resolution, after
	// project markers, not an override that outranks them.
	Author string `koanf:"author"`

	// WrapWidth is the bullet wrap width. 0 disables wrapping.
	WrapWidth int `koanf:"wrap_width" validate:"omitempty,gte=40,lte=200"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .bumpchanges.yml)
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	userPath, _ := UserConfigPath()
	if err := loadYAMLConfig(k, userPath, "user"); err != nil {
		return nil, err
	}

	// The default project config is optional; an explicitly requested one
	// must exist.
	projectPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectPath = opts.ProjectConfigPath
		if !fileExists(projectPath) {
			return nil, fmt.Errorf("config file %s does not exist", projectPath)
		}
	}
	if err := loadYAMLConfig(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := ValidateConfigValues(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadYAMLConfig validates and loads a YAML config file. A missing file is
// not an error; defaults apply.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if !fileExists(path) {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", configType, path, err)
	}
	return nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: BUMPCHANGES_WRAP_WIDTH -> wrap_width
//
// BUMPCHANGES_AUTHOR is skipped: it is consumed by author resolution as a
// fallback below project markers, and mapping it here would promote it to an
// override above them.
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key == "author" {
		return ""
	}
	return key
}
