/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"slices"
	"strings"
)

// Collection is a named set of modes sharing token structure (e.g. Light and
// Dark). Every mode holds its own root group; ideally every token path
// present in one mode is present in all modes of the collection. That
// property is checked by the lint engine, not enforced here.
type Collection struct {
	// Name is the collection's identifier.
	Name string `json:"name"`

	// Modes lists the mode names, in source order.
	Modes []string `json:"modes"`

	// DefaultMode names the mode consumers read when none is requested.
	// Invariant: DefaultMode is a member of Modes.
	DefaultMode string `json:"defaultMode"`

	// Tokens maps mode name to that mode's root group.
	Tokens map[string]*Group `json:"tokens"`
}

// NewCollection creates a collection with a single mode that is also the
// default.
func NewCollection(name, mode string) *Collection {
	return &Collection{
		Name:        name,
		Modes:       []string{mode},
		DefaultMode: mode,
		Tokens:      map[string]*Group{mode: NewGroup(name)},
	}
}

// Mode returns the root group for the named mode, creating mode and group if
// absent.
func (c *Collection) Mode(name string) *Group {
	if g, ok := c.Tokens[name]; ok {
		return g
	}
	g := NewGroup(c.Name)
	c.Tokens[name] = g
	if !slices.Contains(c.Modes, name) {
		c.Modes = append(c.Modes, name)
	}
	return g
}

// Default returns the root group of the default mode, or nil if missing.
func (c *Collection) Default() *Group {
	return c.Tokens[c.DefaultMode]
}

// ThemeFile is the canonical document crossing the core's boundary. It is
// built once by a parser and treated as immutable by all consumers.
type ThemeFile struct {
	// Name identifies the theme.
	Name string `json:"name"`

	// Collections holds the token collections, in source order.
	Collections []*Collection `json:"collections"`

	// Meta carries optional document metadata.
	Meta map[string]any `json:"meta,omitempty"`
}

// Collection returns the named collection, if present.
func (f *ThemeFile) Collection(name string) (*Collection, bool) {
	for _, c := range f.Collections {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Lookup finds a token by exact dot-separated path. The default mode of each
// collection is searched first, then the remaining modes; a path qualified
// with a leading collection name segment is also accepted.
func (f *ThemeFile) Lookup(path string) (*Token, bool) {
	segments := strings.Split(path, ".")
	for _, c := range f.Collections {
		for _, mode := range c.modeSearchOrder() {
			root := c.Tokens[mode]
			if root == nil {
				continue
			}
			if t, ok := root.Get(segments); ok {
				return t, true
			}
			// Accept collection-qualified paths: "colors.brand.primary"
			// where "colors" is the collection name.
			if segments[0] == c.Name && len(segments) > 1 {
				if t, ok := root.Get(segments[1:]); ok {
					return t, true
				}
			}
		}
	}
	return nil, false
}

// LookupInMode finds a token by exact path within one collection and mode.
func (f *ThemeFile) LookupInMode(collection, mode, path string) (*Token, bool) {
	c, ok := f.Collection(collection)
	if !ok {
		return nil, false
	}
	root := c.Tokens[mode]
	if root == nil {
		return nil, false
	}
	return root.Get(strings.Split(path, "."))
}

// WalkTokens visits every token in every collection and mode, in
// deterministic order.
func (f *ThemeFile) WalkTokens(visit func(collection, mode, path string, t *Token)) {
	for _, c := range f.Collections {
		for _, mode := range c.Modes {
			root := c.Tokens[mode]
			if root == nil {
				continue
			}
			root.Walk(func(path string, t *Token) {
				visit(c.Name, mode, path, t)
			})
		}
	}
}

func (c *Collection) modeSearchOrder() []string {
	order := make([]string, 0, len(c.Modes))
	if c.DefaultMode != "" {
		order = append(order, c.DefaultMode)
	}
	for _, mode := range c.Modes {
		if mode != c.DefaultMode {
			order = append(order, mode)
		}
	}
	return order
}
