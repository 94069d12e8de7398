package person

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// GenSpec is a declarative generator profile, typically loaded from a YAML
// fixture so scenario shapes live next to the tests that use them.
type GenSpec struct {
	Depth       int   `yaml:"depth"`
	MaxChildren int   `yaml:"max_children"`
	Seed        int64 `yaml:"seed"`
	Sequential  bool  `yaml:"sequential"`
}

// LoadGenSpec parses a YAML profile and rejects negative bounds.
func LoadGenSpec(b []byte) (GenSpec, error) {
	var s GenSpec
	if err := yaml.Unmarshal(b, &s); err != nil {
		return GenSpec{}, fmt.Errorf("person: parse gen spec: %w", err)
	}
	if s.Depth < 0 {
		return GenSpec{}, fmt.Errorf("person: gen spec: depth must be >= 0, got %d", s.Depth)
	}
	if s.MaxChildren < 0 {
		return GenSpec{}, fmt.Errorf("person: gen spec: max_children must be >= 0, got %d", s.MaxChildren)
	}
	return s, nil
}

// ReadGenSpec reads a YAML profile from r.
func ReadGenSpec(r io.Reader) (GenSpec, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return GenSpec{}, fmt.Errorf("person: read gen spec: %w", err)
	}
	return LoadGenSpec(b)
}

// Options projects the profile onto generator options.
func (s GenSpec) Options() []GenOption {
	opts := []GenOption{WithSeed(s.Seed)}
	if s.Sequential {
		opts = append(opts, WithSequential())
	}
	return opts
}

// Generate builds a tree from the profile.
func (s GenSpec) Generate() *Person {
	return Generate(s.Depth, s.MaxChildren, s.Options()...)
}
