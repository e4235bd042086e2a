// Package validation checks canonical templates, the agent definitions that
// reference them, standards documents, and generated artifact instances
// against the schemas of a registry. Every check returns a *diag.Result;
// nothing is accumulated in package state.
package validation

import (
	"io/fs"
	"path"
	"path/filepath"

	apperrors "github.com/jonathan-vella/rebel-ops/internal/errors"
	"github.com/jonathan-vella/rebel-ops/internal/schema"
	"go.uber.org/zap"
)

// DefaultOutputDir is where generated artifacts are discovered.
const DefaultOutputDir = "agent-output"

// Checker runs structural checks over a file tree. Paths handed to and
// reported by a Checker are slash-separated and relative to the tree root.
type Checker struct {
	fsys      fs.FS
	registry  *schema.Registry
	override  schema.Strictness
	outputDir string
	exclude   []string
	log       *zap.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithStrictness sets the global strictness override. Empty means each
// schema's own strictness applies.
func WithStrictness(s schema.Strictness) Option {
	return func(c *Checker) {
		c.override = s
	}
}

// WithOutputDir sets the directory searched for artifact instances.
func WithOutputDir(dir string) Option {
	return func(c *Checker) {
		if dir != "" {
			c.outputDir = path.Clean(filepath.ToSlash(dir))
		}
	}
}

// WithExclude skips discovered instances matching any doublestar pattern.
func WithExclude(patterns ...string) Option {
	return func(c *Checker) {
		c.exclude = append(c.exclude, patterns...)
	}
}

// WithLogger sets the debug logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}

// NewChecker creates a checker over fsys using the schemas in registry.
func NewChecker(fsys fs.FS, registry *schema.Registry, opts ...Option) *Checker {
	c := &Checker{
		fsys:      fsys,
		registry:  registry,
		outputDir: DefaultOutputDir,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry the checker validates against.
func (c *Checker) Registry() *schema.Registry {
	return c.registry
}

// OutputDir returns the instance discovery directory.
func (c *Checker) OutputDir() string {
	return c.outputDir
}

// Strictness returns the strictness that applies to s in this run.
func (c *Checker) Strictness(s schema.ArtifactSchema) schema.Strictness {
	return schema.ResolveStrictness(c.override, s)
}

// exists reports whether name can be stat'ed. Any stat failure counts as
// absent.
func (c *Checker) exists(name string) bool {
	_, err := fs.Stat(c.fsys, name)
	return err == nil
}

// readText reads a file already known to exist. A failure here is an
// environment fault and is returned to abort the run.
func (c *Checker) readText(name string) (string, error) {
	data, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		wrapped := apperrors.WithHint(
			apperrors.Wrapf(err, "reading %s", name),
			"check that the file is a readable regular file",
		)
		return "", apperrors.UnreadableFile(name, wrapped)
	}
	return string(data), nil
}

// relativePath expresses target relative to the directory fromDir, with
// forward slashes, the way a Markdown link inside fromDir would spell it.
func relativePath(fromDir, target string) string {
	rel, err := filepath.Rel(filepath.FromSlash(fromDir), filepath.FromSlash(target))
	if err != nil {
		return target
	}
	return filepath.ToSlash(rel)
}
