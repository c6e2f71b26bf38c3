/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the tokenbridge CLI.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/tokenbridge/tokenbridge/lint"
	"github.com/tokenbridge/tokenbridge/source"
)

// Config is the tokenbridge configuration document.
type Config struct {
	// Name overrides the theme name derived from the first source file.
	Name string `yaml:"name" json:"name"`

	// Format selects the output encoding: "json" or "yaml".
	Format string `yaml:"format" json:"format"`

	// Sources lists token sources to load (paths or specs with overrides).
	Sources []SourceSpec `yaml:"sources" json:"sources"`

	// Lint configures the lint run.
	Lint LintConfig `yaml:"lint" json:"lint"`
}

// SourceSpec is one token source. It can be written as a bare string path or
// as an object with per-source overrides.
type SourceSpec struct {
	// Path is the source file path; glob patterns are supported.
	Path string `yaml:"path" json:"path"`

	// Kind forces the source format instead of duck-typed detection.
	// Valid values: "figma", "compact", "css".
	Kind string `yaml:"kind" json:"kind"`

	// Collection overrides the collection name for sources that carry none.
	Collection string `yaml:"collection" json:"collection"`
}

// LintConfig enables, disables and re-ranks lint rules.
type LintConfig struct {
	// Disabled lists rule ids to skip.
	Disabled []string `yaml:"disabled" json:"disabled"`

	// Severities maps rule id to "error", "warning" or "info".
	Severities map[string]string `yaml:"severities" json:"severities"`
}

// UnmarshalYAML handles both string and object forms for SourceSpec.
func (s *SourceSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Path = node.Value
		return nil
	}

	type rawSourceSpec SourceSpec
	return node.Decode((*rawSourceSpec)(s))
}

// UnmarshalJSON handles both string and object forms for SourceSpec.
func (s *SourceSpec) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		s.Path = path
		return nil
	}

	type rawSourceSpec SourceSpec
	return json.Unmarshal(data, (*rawSourceSpec)(s))
}

// SourceKind returns the forced source kind for the spec, or Unknown when
// detection should decide.
func (s *SourceSpec) SourceKind() source.Kind {
	return source.FromString(s.Kind)
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{Format: "json"}
}

// LintOptions converts the lint section into the engine's configuration.
// Unknown severity names fall back to the rule's default.
func (c *Config) LintOptions() lint.Config {
	cfg := lint.Config{Disabled: c.Lint.Disabled}
	if len(c.Lint.Severities) > 0 {
		cfg.Severities = make(map[string]lint.Severity, len(c.Lint.Severities))
		for rule, name := range c.Lint.Severities {
			severity, err := lint.ParseSeverity(name)
			if err != nil {
				continue
			}
			cfg.Severities[rule] = severity
		}
	}
	return cfg
}
