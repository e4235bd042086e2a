package cli

import (
	"os"

	"github.com/jonathan-vella/rebel-ops/internal/config"
	apperrors "github.com/jonathan-vella/rebel-ops/internal/errors"
	"github.com/jonathan-vella/rebel-ops/internal/logging"
	"github.com/jonathan-vella/rebel-ops/internal/schema"
	"github.com/jonathan-vella/rebel-ops/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadSettings loads the configuration and applies explicitly set flags on
// top of it. Flags win over the environment, which wins over the file.
func loadSettings(cmd *cobra.Command) (*config.Configuration, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, apperrors.InvalidConfig(err)
	}

	if flags.Changed("root") {
		cfg.Root, _ = flags.GetString("root")
	}
	if flags.Changed("strictness") {
		cfg.Strictness, _ = flags.GetString("strictness")
	}
	if flags.Changed("registry") {
		cfg.Registry, _ = flags.GetString("registry")
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("exclude") {
		cfg.Exclude, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("no-progress") {
		cfg.NoProgress, _ = flags.GetBool("no-progress")
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.InvalidConfig(err)
	}
	return cfg, nil
}

// loadRegistry returns the registry named by path, or the built-in one.
func loadRegistry(path string) (*schema.Registry, error) {
	if path == "" {
		return schema.Default(), nil
	}
	reg, err := schema.LoadFile(path)
	if err != nil {
		return nil, apperrors.InvalidRegistry(path, err)
	}
	return reg, nil
}

// newChecker builds a checker rooted at cfg.Root. The returned logger must
// be synced by the caller.
func newChecker(cmd *cobra.Command, cfg *config.Configuration) (*validation.Checker, *zap.Logger, error) {
	log := logging.New(cfg.Debug, cmd.ErrOrStderr())

	info, err := os.Stat(cfg.Root)
	if err != nil || !info.IsDir() {
		return nil, log, apperrors.MissingRoot(cfg.Root)
	}

	reg, err := loadRegistry(cfg.Registry)
	if err != nil {
		return nil, log, err
	}
	log.Debug("settings resolved",
		zap.String(logging.FieldPath, cfg.Root),
		zap.String(logging.FieldStrictness, cfg.Strictness),
		zap.Int(logging.FieldCount, reg.Len()))

	checker := validation.NewChecker(os.DirFS(cfg.Root), reg,
		validation.WithStrictness(schema.Strictness(cfg.Strictness)),
		validation.WithOutputDir(cfg.OutputDir),
		validation.WithExclude(cfg.Exclude...),
		validation.WithLogger(log),
	)
	return checker, log, nil
}
