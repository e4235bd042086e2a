// Package config loads artifactcheck settings from defaults, an optional JSON
// file and the environment, and validates them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPath is the project-local config file looked up by default.
const DefaultConfigPath = ".artifactcheck.json"

// EnvPrefix is the prefix of environment variables mapped onto config keys.
const EnvPrefix = "ARTIFACTCHECK_"

// StrictnessEnv is the bare environment variable that overrides strictness
// for every artifact in the run.
const StrictnessEnv = "STRICTNESS"

// Configuration represents the artifactcheck configuration
type Configuration struct {
	Root       string   `koanf:"root" validate:"required"`
	OutputDir  string   `koanf:"output_dir" validate:"required"`
	Strictness string   `koanf:"strictness"`
	Registry   string   `koanf:"registry"`
	Exclude    []string `koanf:"exclude" validate:"dive,required"`
	Debug      bool     `koanf:"debug"`
	NoProgress bool     `koanf:"no_progress"` // Disable the spinner even on a TTY
}

// Load loads configuration from defaults, the local config file and the environment.
// Priority: ARTIFACTCHECK_* env > STRICTNESS env > local config > defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(StrictnessEnv, ".", strictnessTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", StrictnessEnv, err)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Root = expandHomePath(cfg.Root)
	cfg.Registry = expandHomePath(cfg.Registry)

	return &cfg, nil
}

// Validate checks struct constraints. It is run after flag overrides too.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	clean := filepath.Clean(c.OutputDir)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config validation failed: output_dir must be relative to root, got %q", c.OutputDir)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: ARTIFACTCHECK_OUTPUT_DIR -> output_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// strictnessTransform maps exactly STRICTNESS and ignores longer names that
// merely share the prefix.
func strictnessTransform(s string) string {
	if s != StrictnessEnv {
		return ""
	}
	return "strictness"
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
