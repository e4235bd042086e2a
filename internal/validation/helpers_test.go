package validation

import (
	"testing"
	"testing/fstest"

	"github.com/jonathan-vella/rebel-ops/internal/diag"
	"github.com/jonathan-vella/rebel-ops/internal/schema"
)

const (
	alphaName     = "alpha.md"
	alphaTemplate = "templates/alpha.template.md"
	alphaAgent    = "agents/alpha.agent.md"
)

// alphaSchema is required [A, B, C] with optional [X], standard strictness.
func alphaSchema() schema.ArtifactSchema {
	return schema.ArtifactSchema{
		Name:             alphaName,
		RequiredHeadings: []string{"## A", "## B", "## C"},
		OptionalHeadings: []string{"## X"},
		Strictness:       schema.StrictnessStandard,
		TemplatePath:     alphaTemplate,
		AgentPath:        alphaAgent,
	}
}

func alphaRegistry(t *testing.T, mutate ...func(*schema.ArtifactSchema)) *schema.Registry {
	t.Helper()

	s := alphaSchema()
	for _, m := range mutate {
		m(&s)
	}
	reg, err := schema.New([]schema.ArtifactSchema{s}, nil)
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	return reg
}

func file(text string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(text)}
}

func messages(res *diag.Result) []string {
	var out []string
	for _, d := range res.Diagnostics() {
		out = append(out, d.Message)
	}
	return out
}

func levels(res *diag.Result) []diag.Level {
	var out []diag.Level
	for _, d := range res.Diagnostics() {
		out = append(out, d.Level)
	}
	return out
}
