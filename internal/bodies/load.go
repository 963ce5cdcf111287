package bodies

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where a registry override is looked for, relative to the working directory.
const DefaultPath = "config/bodies.yaml"

// Load reads a registry file. A missing file is not an error: the built-in registry is returned.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("bodies: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("bodies: %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a YAML registry document and validates it. Bodies that do not name a spin source
// use their registry angular speed; a fixed source with no rate gets DefaultFixedSpin.
func Parse(data []byte) (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	for _, b := range r.Bodies {
		if b == nil {
			continue
		}
		if b.SpinSource == "" {
			b.SpinSource = SpinRegistry
		}
		if b.SpinSource == SpinFixed && b.FixedSpin == 0 {
			b.FixedSpin = DefaultFixedSpin
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Marshal encodes the registry in the same format Parse reads.
func (r *Registry) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}
