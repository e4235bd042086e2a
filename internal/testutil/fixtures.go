// Package testutil provides fixture trees for artifactcheck tests.
package testutil

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jonathan-vella/rebel-ops/internal/schema"
)

// Doc renders a Markdown document with a title and one short paragraph under
// each heading.
func Doc(headings ...string) string {
	var b strings.Builder
	b.WriteString("# Fixture\n\nIntro paragraph.\n")
	for _, h := range headings {
		b.WriteString("\n")
		b.WriteString(h)
		b.WriteString("\n\nContent.\n")
	}
	return b.String()
}

// Instance renders a conforming instance of s: all required headings in
// order and no optional ones.
func Instance(s schema.ArtifactSchema) string {
	return Doc(s.RequiredHeadings...)
}

// Template renders a conforming template for s, including every required
// marker.
func Template(s schema.ArtifactSchema) string {
	var b strings.Builder
	b.WriteString(Doc(s.RequiredHeadings...))
	if len(s.RequiredMarkers) > 0 {
		b.WriteString("\n```mermaid\n")
		for _, m := range s.RequiredMarkers {
			b.WriteString(m.Literal)
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	}
	return b.String()
}

type treeConfig struct {
	instances  []string
	skipAgents bool
}

// TreeOption customizes ConformingTree.
type TreeOption func(*treeConfig)

// WithInstances adds a conforming instance for each named schema under
// agent-output/demo/.
func WithInstances(names ...string) TreeOption {
	return func(c *treeConfig) {
		c.instances = append(c.instances, names...)
	}
}

// WithoutAgents leaves agent files out of the tree.
func WithoutAgents() TreeOption {
	return func(c *treeConfig) {
		c.skipAgents = true
	}
}

// ConformingTree builds an in-memory repository in which every template,
// agent link, and standards document of reg passes validation.
func ConformingTree(reg *schema.Registry, opts ...TreeOption) fstest.MapFS {
	cfg := &treeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	fsys := fstest.MapFS{}
	agentRefs := map[string][]string{}

	for _, s := range reg.Schemas() {
		fsys[s.TemplatePath] = &fstest.MapFile{Data: []byte(Template(s))}
		if s.AgentPath != "" {
			rel, err := filepath.Rel(filepath.FromSlash(path.Dir(s.AgentPath)), filepath.FromSlash(s.TemplatePath))
			if err != nil {
				rel = s.TemplatePath
			}
			agentRefs[s.AgentPath] = append(agentRefs[s.AgentPath], filepath.ToSlash(rel))
		}
	}

	if !cfg.skipAgents {
		for agent, refs := range agentRefs {
			sort.Strings(refs)
			var b strings.Builder
			b.WriteString("# Agent\n\nUse these templates:\n\n")
			for _, ref := range refs {
				b.WriteString("- [template](" + ref + ")\n")
			}
			fsys[agent] = &fstest.MapFile{Data: []byte(b.String())}
		}
	}

	for _, doc := range reg.Standards() {
		var b strings.Builder
		b.WriteString("# Standards\n\nFollow the template-first approach (see the .template.md files).\n\n")
		for _, ref := range doc.RequiredRefs {
			b.WriteString("- " + ref + "\n")
		}
		fsys[doc.Path] = &fstest.MapFile{Data: []byte(b.String())}
	}

	for _, name := range cfg.instances {
		s, ok := reg.Get(name)
		if !ok {
			continue
		}
		fsys["agent-output/demo/"+name] = &fstest.MapFile{Data: []byte(Instance(s))}
	}

	return fsys
}

// WriteTree materializes fsys under dir. Cleanup is handled by t.TempDir.
func WriteTree(t *testing.T, dir string, fsys fstest.MapFS) {
	t.Helper()

	for name, file := range fsys {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(full, file.Data, 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}
