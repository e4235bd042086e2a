package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan-vella/rebel-ops/internal/diag"
	"github.com/jonathan-vella/rebel-ops/internal/logging"
	"github.com/jonathan-vella/rebel-ops/internal/markdown"
	"github.com/jonathan-vella/rebel-ops/internal/schema"
	"go.uber.org/zap"
)

// ValidateInstance checks a generated artifact. Files that match no schema,
// and files that do not exist, are skipped without a diagnostic.
func (c *Checker) ValidateInstance(relPath string) (*diag.Result, error) {
	res := &diag.Result{}

	s, ok := c.registry.Match(relPath)
	if !ok {
		c.log.Debug("skipping unregistered artifact", zap.String(logging.FieldFile, relPath))
		return res, nil
	}

	strictness := c.Strictness(s)

	if !c.exists(relPath) {
		c.log.Debug("skipping missing artifact", zap.String(logging.FieldFile, relPath))
		return res, nil
	}

	text, err := c.readText(relPath)
	if err != nil {
		return nil, err
	}
	c.log.Debug("validating artifact",
		zap.String(logging.FieldFile, relPath),
		zap.String(logging.FieldSchema, s.Name),
		zap.String(logging.FieldStrictness, string(strictness)))

	CheckInstance(markdown.Parse(text), s, strictness, relPath, res)
	return res, nil
}

// CheckInstance applies the instance rules of s to doc, reporting against
// relPath:
//
//   - missing required headings: error under standard strictness, warning
//     otherwise
//   - the first out-of-order pair of present required headings: always an
//     error
//   - optional headings placed before the anchor: warning
//   - unrecognized headings: warning, and only under standard strictness
func CheckInstance(doc *markdown.Document, s schema.ArtifactSchema, strictness schema.Strictness, relPath string, res *diag.Result) {
	loc := diag.Location{Title: s.Drift(), File: relPath, Line: 1}

	var missing, present []string
	for _, h := range s.RequiredHeadings {
		if doc.Has(h) {
			present = append(present, h)
		} else {
			missing = append(missing, h)
		}
	}

	if len(missing) > 0 {
		level := diag.LevelWarning
		if strictness.IsStandard() {
			level = diag.LevelError
		}
		res.Report(level, fmt.Sprintf("Artifact %s is missing required H2 headings: %s",
			relPath, strings.Join(missing, ", ")), loc)
	}

	for i := 0; i < len(present)-1; i++ {
		if doc.Index(present[i]) > doc.Index(present[i+1]) {
			res.Error(fmt.Sprintf("Artifact %s has required headings out of order: '%s' should come before '%s'.",
				relPath, present[i], present[i+1]), loc)
			break
		}
	}

	anchor := s.Anchor()
	if anchorPos := doc.Index(anchor); anchorPos != -1 {
		for _, opt := range s.OptionalHeadings {
			if pos := doc.Index(opt); pos != -1 && pos < anchorPos {
				res.Warn(fmt.Sprintf("Artifact %s has optional heading '%s' before anchor '%s' (consider moving it).",
					relPath, opt, anchor), loc)
			}
		}
	}

	// Relaxed runs do not report unrecognized headings at all.
	if !strictness.IsStandard() {
		return
	}
	var extras []string
	for _, h := range doc.Headings {
		if !s.IsAllowed(h) {
			extras = append(extras, h)
		}
	}
	if len(extras) > 0 {
		res.Warn(fmt.Sprintf("Artifact %s contains extra H2 headings: %s",
			relPath, strings.Join(extras, ", ")), loc)
	}
}
