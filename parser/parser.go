/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser defines the contract source parsers share. Each source
// format (Figma native, compact, CSS) lives in its own subpackage and emits
// the same canonical ThemeFile; nothing downstream can tell them apart.
package parser

import (
	"github.com/tokenbridge/tokenbridge/fs"
	"github.com/tokenbridge/tokenbridge/registry"
	"github.com/tokenbridge/tokenbridge/token"
)

// Options configures source parsing.
type Options struct {
	// Name is the theme name for the resulting ThemeFile.
	Name string

	// Collection overrides the collection name for single-collection
	// sources (CSS). Multi-collection sources ignore it.
	Collection string

	// Registry is the type registry used for detection and value parsing.
	// Nil means a fresh default registry.
	Registry *registry.Registry
}

// Reg returns the configured registry, or the default one.
func (o Options) Reg() *registry.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return registry.New()
}

// CollectionOr returns the configured collection name, or fallback.
func (o Options) CollectionOr(fallback string) string {
	if o.Collection != "" {
		return o.Collection
	}
	return fallback
}

// Parser parses one token source format into the canonical tree.
type Parser interface {
	// Validate rejects inputs the parser cannot work with at all (empty
	// source, missing required fields). Per-value problems never fail
	// Validate; they surface as skipped tokens or lint findings.
	Validate(data []byte) error

	// Parse converts source data into a ThemeFile. Unparseable individual
	// values are skipped, not fatal.
	Parse(data []byte, opts Options) (*token.ThemeFile, error)

	// ParseFile reads and parses a source file.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.ThemeFile, error)
}
