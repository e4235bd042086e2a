package validation

import (
	"fmt"
	"path"
	"strings"

	"github.com/jonathan-vella/rebel-ops/internal/diag"
	"github.com/jonathan-vella/rebel-ops/internal/logging"
	"github.com/jonathan-vella/rebel-ops/internal/markdown"
	"github.com/jonathan-vella/rebel-ops/internal/schema"
	"go.uber.org/zap"
)

// ValidateAgentLinks checks that every producing agent exists and links to
// its template by the path relative to the agent's own directory.
func (c *Checker) ValidateAgentLinks() (*diag.Result, error) {
	res := &diag.Result{}
	for _, s := range c.registry.Schemas() {
		if s.AgentPath == "" {
			continue
		}
		r, err := c.validateAgentLink(s)
		if err != nil {
			return nil, err
		}
		res.Merge(r)
	}
	return res, nil
}

func (c *Checker) validateAgentLink(s schema.ArtifactSchema) (*diag.Result, error) {
	res := &diag.Result{}
	if !c.exists(s.AgentPath) {
		res.Error(fmt.Sprintf("Missing agent file: %s", s.AgentPath),
			diag.Location{Title: s.Missing(), File: s.AgentPath, Line: 1})
		return res, nil
	}

	text, err := c.readText(s.AgentPath)
	if err != nil {
		return nil, err
	}

	rel := relativePath(path.Dir(s.AgentPath), s.TemplatePath)
	c.log.Debug("checking agent link",
		zap.String(logging.FieldFile, s.AgentPath),
		zap.String(logging.FieldPath, rel))

	if !strings.Contains(text, rel) {
		res.Error(fmt.Sprintf("Agent %s must reference template %s", s.AgentPath, rel),
			diag.Location{Title: s.Drift(), File: s.AgentPath, Line: 1})
	}
	return res, nil
}

// ValidateNoEmbeddedSkeletons flags agents that restate a template's heading
// skeleton inside a fenced code block, or that contain a phrase the schema
// forbids. Missing agents are reported by ValidateAgentLinks, not here.
func (c *Checker) ValidateNoEmbeddedSkeletons() (*diag.Result, error) {
	res := &diag.Result{}
	for _, s := range c.registry.Schemas() {
		if s.AgentPath == "" || !c.exists(s.AgentPath) {
			continue
		}
		text, err := c.readText(s.AgentPath)
		if err != nil {
			return nil, err
		}
		CheckEmbeddedSkeleton(text, s, res)
	}
	return res, nil
}

// CheckEmbeddedSkeleton applies the skeleton rules of s to the text of its
// agent. At most one skeleton error is reported per agent and schema.
func CheckEmbeddedSkeleton(text string, s schema.ArtifactSchema, res *diag.Result) {
	loc := diag.Location{Title: s.Drift(), File: s.AgentPath, Line: 1}

	for _, phrase := range s.ForbiddenPhrases {
		if strings.Contains(text, phrase) {
			res.Error(fmt.Sprintf("Agent %s contains '%s' (embedded skeleton drift risk).",
				s.AgentPath, phrase), loc)
		}
	}

	needles := s.Needles()
	threshold := s.Threshold()
	for _, block := range markdown.ExtractFencedBlocks(text) {
		hits := 0
		for _, n := range needles {
			if strings.Contains(block, n) {
				hits++
			}
		}
		if hits >= threshold {
			res.Error(fmt.Sprintf("Agent %s appears to embed a %s skeleton (found %d headings in a fenced block).",
				s.AgentPath, s.Name, hits), loc)
			return
		}
	}
}
