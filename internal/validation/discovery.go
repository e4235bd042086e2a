package validation

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	apperrors "github.com/jonathan-vella/rebel-ops/internal/errors"
	"github.com/jonathan-vella/rebel-ops/internal/logging"
	"go.uber.org/zap"
)

// DiscoverArtifacts walks the output directory and returns every regular
// file whose base name matches a registered schema, sorted. A missing
// output directory yields no paths and no error.
func (c *Checker) DiscoverArtifacts() ([]string, error) {
	info, err := fs.Stat(c.fsys, c.outputDir)
	if err != nil || !info.IsDir() {
		c.log.Debug("output directory not found", zap.String(logging.FieldPath, c.outputDir))
		return nil, nil
	}

	var found []string
	stack := []string{c.outputDir}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := fs.ReadDir(c.fsys, dir)
		if err != nil {
			return nil, apperrors.NewRuntimeError(
				fmt.Sprintf("failed to read directory %s", dir),
				apperrors.WithHint(apperrors.Wrapf(err, "reading directory %s", dir),
					"Check the permissions of the output directory"),
			)
		}
		for _, entry := range entries {
			full := path.Join(dir, entry.Name())
			if entry.IsDir() {
				stack = append(stack, full)
				continue
			}
			if !entry.Type().IsRegular() {
				continue
			}
			if _, ok := c.registry.Match(entry.Name()); !ok {
				continue
			}
			excluded, err := c.excluded(full)
			if err != nil {
				return nil, err
			}
			if excluded {
				c.log.Debug("excluding artifact", zap.String(logging.FieldFile, full))
				continue
			}
			found = append(found, full)
		}
	}

	sort.Strings(found)
	c.log.Debug("discovered artifacts",
		zap.String(logging.FieldPath, c.outputDir),
		zap.Int(logging.FieldCount, len(found)))
	return found, nil
}

func (c *Checker) excluded(relPath string) (bool, error) {
	for _, pattern := range c.exclude {
		ok, err := doublestar.Match(pattern, relPath)
		if err != nil || !doublestar.ValidatePattern(pattern) {
			return false, apperrors.NewConfigError(
				fmt.Sprintf("invalid exclude pattern %q", pattern),
				"Use doublestar glob syntax, e.g. \"agent-output/archive/**\"",
			)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
