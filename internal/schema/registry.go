package schema

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Registry is the read-only table of artifact schemas and standards
// documents for a run. Order is significant: checks and matching walk the
// schemas in registration order.
type Registry struct {
	schemas   []ArtifactSchema
	standards []StandardsDoc
}

// New builds a registry after checking every schema's invariants.
func New(schemas []ArtifactSchema, standards []StandardsDoc) (*Registry, error) {
	if len(schemas) == 0 {
		return nil, fmt.Errorf("registry must define at least one artifact schema")
	}

	v := newValidator()
	seen := make(map[string]bool, len(schemas))
	for i, s := range schemas {
		if err := v.Struct(s); err != nil {
			return nil, fmt.Errorf("schema %d (%q): %w", i, s.Name, err)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate artifact schema %q", s.Name)
		}
		seen[s.Name] = true

		for _, opt := range s.OptionalHeadings {
			if s.IsRequired(opt) {
				return nil, fmt.Errorf("schema %q: optional heading %q is also required", s.Name, opt)
			}
		}
	}

	for i, d := range standards {
		if err := v.Struct(d); err != nil {
			return nil, fmt.Errorf("standards document %d (%q): %w", i, d.Path, err)
		}
	}

	return &Registry{
		schemas:   cloneSchemas(schemas),
		standards: cloneStandards(standards),
	}, nil
}

// MustNew is New for static tables known to be valid.
func MustNew(schemas []ArtifactSchema, standards []StandardsDoc) *Registry {
	r, err := New(schemas, standards)
	if err != nil {
		panic(err)
	}
	return r
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil function.
	_ = v.RegisterValidation("h2", func(fl validator.FieldLevel) bool {
		return isH2(fl.Field().String())
	})
	return v
}

// Schemas returns the schemas in registration order.
func (r *Registry) Schemas() []ArtifactSchema {
	return cloneSchemas(r.schemas)
}

// Standards returns the standards documents in registration order.
func (r *Registry) Standards() []StandardsDoc {
	return cloneStandards(r.standards)
}

// Len returns the number of artifact schemas.
func (r *Registry) Len() int {
	return len(r.schemas)
}

// Names returns the artifact type names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.schemas))
	for i, s := range r.schemas {
		names[i] = s.Name
	}
	return names
}

// Get returns the schema registered under exactly name.
func (r *Registry) Get(name string) (ArtifactSchema, bool) {
	for _, s := range r.schemas {
		if s.Name == name {
			return s, true
		}
	}
	return ArtifactSchema{}, false
}

// Match returns the first schema whose name is a suffix of the base name of
// filename. Matching by suffix is a naming convention: it lets instances
// carry a directory or project prefix ("contoso-01-requirements.md").
func (r *Registry) Match(filename string) (ArtifactSchema, bool) {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	for _, s := range r.schemas {
		if s.Matches(base) {
			return s, true
		}
	}
	return ArtifactSchema{}, false
}

func cloneSchemas(in []ArtifactSchema) []ArtifactSchema {
	out := make([]ArtifactSchema, len(in))
	for i, s := range in {
		s.RequiredHeadings = cloneStrings(s.RequiredHeadings)
		s.OptionalHeadings = cloneStrings(s.OptionalHeadings)
		s.SkeletonNeedles = cloneStrings(s.SkeletonNeedles)
		s.ForbiddenPhrases = cloneStrings(s.ForbiddenPhrases)
		if s.RequiredMarkers != nil {
			s.RequiredMarkers = append([]Marker(nil), s.RequiredMarkers...)
		}
		out[i] = s
	}
	return out
}

func cloneStandards(in []StandardsDoc) []StandardsDoc {
	out := make([]StandardsDoc, len(in))
	for i, d := range in {
		d.RequiredRefs = cloneStrings(d.RequiredRefs)
		d.AnyOf = cloneStrings(d.AnyOf)
		out[i] = d
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
