package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonathan-vella/rebel-ops/internal/diag"
	apperrors "github.com/jonathan-vella/rebel-ops/internal/errors"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check individual artifact files against their schema",
		Long: `Check one or more artifact files without running the template, agent and
standards checks. Each file is matched to a schema by its filename suffix;
files that match no schema are skipped.`,
		Example: `  artifactcheck check agent-output/contoso/01-requirements.md
  artifactcheck check --strictness relaxed agent-output/*/07-*.md`,
		GroupID: GroupChecks,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return apperrors.NoFilesGiven()
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	checker, log, err := newChecker(cmd, cfg)
	defer func() { _ = log.Sync() }()
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		rel, err := rootRelative(cfg.Root, arg)
		if err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(cfg.Root, filepath.FromSlash(rel))); err != nil {
			return apperrors.NewArgumentError(
				fmt.Sprintf("file not found: %s", arg),
				"Paths are resolved relative to --root",
			)
		}
		paths = append(paths, rel)
	}

	res, err := checker.CheckFiles(paths)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := diag.NewEmitter(out).Emit(res.Diagnostics()...); err != nil {
		return err
	}
	return finish(out, res)
}

// rootRelative turns a command line path into a slash-separated path
// relative to root.
func rootRelative(root, arg string) (string, error) {
	rel := filepath.Clean(arg)
	if filepath.IsAbs(arg) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return "", apperrors.Wrapf(err, "resolving root %s", root)
		}
		if rel, err = filepath.Rel(absRoot, arg); err != nil {
			rel = arg
		}
	}

	rel = filepath.ToSlash(rel)
	if !fs.ValidPath(rel) {
		return "", apperrors.NewArgumentError(
			fmt.Sprintf("%s is outside the root %s", arg, root),
			"Pass files inside the repository or change --root",
		)
	}
	return rel, nil
}
