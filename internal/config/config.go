// Package config parses the YAML batch manifest: a list of fixture
// instances to generate in one run.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/MasWag/hyppau-fixtures/pkg/generator"
)

// Manifest describes one batch generation run.
type Manifest struct {
	// OutDir is where instance files are written. Relative paths are
	// resolved against the working directory. May be overridden on the
	// command line.
	OutDir string `yaml:"out_dir"`

	Instances []Instance `yaml:"instances"`
}

// Instance is one fixture to generate. Params are kept generic here and
// decoded per kind.
type Instance struct {
	Name   string         `yaml:"name"`
	Kind   string         `yaml:"kind"`
	Params map[string]any `yaml:"params"`
}

// GeneratorParams decodes the instance's generic params into the
// generator parameter struct. Unknown keys are rejected.
func (in Instance) GeneratorParams() (generator.Params, error) {
	var p generator.Params
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &p,
		ErrorUnused: true,
	})
	if err != nil {
		return p, err
	}
	if err := dec.Decode(in.Params); err != nil {
		return p, fmt.Errorf("instance %q: %w", in.Name, err)
	}
	return p, nil
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads and validates a manifest from r. Nothing is generated
// unless the whole manifest is valid.
func Parse(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Instances) == 0 {
		return errors.New("manifest: no instances")
	}
	seen := make(map[string]bool, len(m.Instances))
	for i, in := range m.Instances {
		if in.Name == "" {
			return fmt.Errorf("manifest: instance %d has no name", i)
		}
		if seen[in.Name] {
			return fmt.Errorf("manifest: duplicate instance name %q", in.Name)
		}
		seen[in.Name] = true

		if _, err := generator.ParseKind(in.Kind); err != nil {
			return fmt.Errorf("instance %q: %w", in.Name, err)
		}
		if _, err := in.GeneratorParams(); err != nil {
			return err
		}
	}
	return nil
}
