package ixstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AutoStartConfig is the on-disk form of a store's auto-dimension starting
// values, for deployments that want the generator seeds in a config file
// rather than hardcoded WithAutoStart calls (spec.md §4.1's Generator is
// silent on where `current` comes from; this is SPEC_FULL.md's answer).
//
//	dimensions:
//	  id: 1
//	  revision: 1000
type AutoStartConfig struct {
	Dimensions map[string]int64 `yaml:"dimensions"`
}

// LoadAutoStartConfig reads an AutoStartConfig from a YAML file.
func LoadAutoStartConfig(path string) (*AutoStartConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ixstore: reading config %s: %w", path, err)
	}
	var cfg AutoStartConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ixstore: parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Options converts a loaded AutoStartConfig into SchemaOf options, one
// WithAutoStart per configured dimension.
func (c *AutoStartConfig) Options() []Option {
	opts := make([]Option, 0, len(c.Dimensions))
	for name, start := range c.Dimensions {
		opts = append(opts, WithAutoStart(name, start))
	}
	return opts
}

// DimensionSpec is the declarative, serializable description of one
// dimension, detached from any concrete key type K: its name, mode
// ("multi" or "auto") and normalized element class. It is the textual
// counterpart of a single `ixstore`-tagged struct field, mirroring
// nanostore's declarative.go/schema_builder.go split between a struct-tag
// config and a loaded one.
type DimensionSpec struct {
	Name string `yaml:"name"`
	Mode string `yaml:"mode"`
	Type string `yaml:"type"`
}

// KeySpec is an ordered list of DimensionSpecs: a key type's shape,
// expressed as data instead of as a Go struct.
type KeySpec struct {
	Dimensions []DimensionSpec `yaml:"dimensions"`
}

// DescribeSchema converts a resolved Schema[K] into its declarative
// KeySpec, in dimension position order, so a Go-defined key type can be
// published or diffed against an externally-maintained spec file.
func DescribeSchema[K any](s *Schema[K]) *KeySpec {
	spec := &KeySpec{Dimensions: make([]DimensionSpec, len(s.fields))}
	for i, fs := range s.fields {
		spec.Dimensions[i] = DimensionSpec{Name: fs.name, Mode: fs.mode.String(), Type: fs.class.String()}
	}
	return spec
}

// LoadKeySpecYAML reads a KeySpec from a YAML file of the form:
//
//	dimensions:
//	  - name: id
//	    mode: auto
//	    type: int
//	  - name: tags
//	    mode: multi
//	    type: string
func LoadKeySpecYAML(path string) (*KeySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ixstore: reading key spec %s: %w", path, err)
	}
	var spec KeySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("ixstore: parsing key spec %s: %w", path, err)
	}
	return &spec, nil
}

// MarshalYAML implements yaml.Marshaler, so yaml.Marshal(keySpec) and
// LoadKeySpecYAML round-trip the same document shape.
func (ks *KeySpec) MarshalYAML() (interface{}, error) {
	return struct {
		Dimensions []DimensionSpec `yaml:"dimensions"`
	}{Dimensions: ks.Dimensions}, nil
}

// KeySpecMatches reports whether schema's dimensions agree with spec in
// name, mode and element type, position by position — a way to validate a
// concrete Go key type against an externally-maintained declarative spec
// file before trusting it, e.g. in a config-driven deployment. It is a
// free function rather than a KeySpec method because it must introduce K,
// and a method cannot add type parameters beyond its receiver's.
func KeySpecMatches[K any](spec *KeySpec, schema *Schema[K]) bool {
	got := DescribeSchema(schema)
	if len(got.Dimensions) != len(spec.Dimensions) {
		return false
	}
	for i := range got.Dimensions {
		if got.Dimensions[i] != spec.Dimensions[i] {
			return false
		}
	}
	return true
}
