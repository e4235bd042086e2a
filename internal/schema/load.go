package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk YAML layout of a custom registry.
type registryFile struct {
	Schemas   []ArtifactSchema `yaml:"schemas"`
	Standards []StandardsDoc   `yaml:"standards,omitempty"`
}

// LoadFile reads a YAML registry from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry file: %w", err)
	}
	defer f.Close()

	r, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading registry %s: %w", path, err)
	}
	return r, nil
}

// Load decodes a YAML registry. Unknown keys are rejected so that typos in a
// hand-written registry do not silently disable a check.
func Load(r io.Reader) (*Registry, error) {
	var rf registryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("registry is empty")
		}
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	return New(rf.Schemas, rf.Standards)
}

// WriteYAML encodes the registry in the layout Load accepts.
func (r *Registry) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(registryFile{Schemas: r.schemas, Standards: r.standards}); err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	return enc.Close()
}
