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

// ValidateTemplate checks the canonical template of s: it must exist, carry
// every required heading exactly once and in order, and contain every
// required marker. Unrecognized headings are warnings.
func (c *Checker) ValidateTemplate(s schema.ArtifactSchema) (*diag.Result, error) {
	res := &diag.Result{}
	loc := diag.Location{Title: s.Drift(), File: s.TemplatePath, Line: 1}

	if !c.exists(s.TemplatePath) {
		res.Error(fmt.Sprintf("Missing template file: %s", s.TemplatePath), loc)
		return res, nil
	}

	text, err := c.readText(s.TemplatePath)
	if err != nil {
		return nil, err
	}
	c.log.Debug("validating template",
		zap.String(logging.FieldSchema, s.Name),
		zap.String(logging.FieldFile, s.TemplatePath))

	doc := markdown.Parse(text)
	if checkTemplateHeadings(doc, s, loc, res) {
		checkTemplateExtras(doc, s, loc, res)
	}
	checkTemplateMarkers(text, s, loc, res)

	return res, nil
}

// checkTemplateHeadings runs the completeness and order checks. It returns
// false when completeness failed, which also suppresses the extras check.
func checkTemplateHeadings(doc *markdown.Document, s schema.ArtifactSchema, loc diag.Location, res *diag.Result) bool {
	var coreFound []string
	for _, h := range doc.Headings {
		if s.IsRequired(h) {
			coreFound = append(coreFound, h)
		}
	}

	if len(coreFound) != len(s.RequiredHeadings) {
		var missing []string
		for _, r := range s.RequiredHeadings {
			if !doc.Has(r) {
				missing = append(missing, r)
			}
		}
		if len(missing) > 0 {
			res.Error(fmt.Sprintf("Template %s is missing required H2 headings: %s",
				loc.File, strings.Join(missing, ", ")), loc)
		} else {
			res.Error(fmt.Sprintf("Template %s repeats required H2 headings: %s",
				loc.File, strings.Join(duplicates(coreFound), ", ")), loc)
		}
		return false
	}

	for i, want := range s.RequiredHeadings {
		if coreFound[i] != want {
			res.Error(fmt.Sprintf("Template %s has headings out of order. Expected '%s' at position %d, found '%s'.",
				loc.File, want, i+1, coreFound[i]), loc)
			break
		}
	}
	return true
}

func checkTemplateExtras(doc *markdown.Document, s schema.ArtifactSchema, loc diag.Location, res *diag.Result) {
	var extras []string
	for _, h := range doc.Headings {
		if !s.IsAllowed(h) {
			extras = append(extras, h)
		}
	}
	if len(extras) > 0 {
		res.Warn(fmt.Sprintf("Template %s contains extra H2 headings: %s",
			loc.File, strings.Join(extras, ", ")), loc)
	}
}

func checkTemplateMarkers(text string, s schema.ArtifactSchema, loc diag.Location, res *diag.Result) {
	for _, m := range s.RequiredMarkers {
		if !strings.Contains(text, m.Literal) {
			res.Error(fmt.Sprintf("Template %s is missing %s.", loc.File, m.Description), loc)
		}
	}
}

// duplicates returns each value that occurs more than once, in order of its
// second occurrence.
func duplicates(values []string) []string {
	seen := make(map[string]int, len(values))
	var out []string
	for _, v := range values {
		seen[v]++
		if seen[v] == 2 {
			out = append(out, v)
		}
	}
	return out
}
