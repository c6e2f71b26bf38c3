/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the canonical design token tree: tokens, groups,
// collections and theme files. Every source parser emits this model and every
// downstream consumer (resolver, lint engine, generators) reads it; nothing
// downstream knows which source format a tree came from.
package token

import (
	"encoding/json"
	"fmt"
)

// Token is one design value with a declared type. Value holds either the
// canonical value matching Type's schema, or a Reference to another token.
// Tokens are created once by a parser and never mutated afterward; the whole
// tree is shared read-only between consumers.
type Token struct {
	// Type is the canonical type tag.
	Type Type `json:"type"`

	// Value is the canonical value or a Reference.
	Value Value `json:"value"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// Extensions carries custom source metadata (e.g. Figma variable ids).
	Extensions map[string]any `json:"extensions,omitempty"`
}

// New creates a token with the given type and value.
func New(t Type, v Value) *Token {
	return &Token{Type: t, Value: v}
}

// NewReference creates a token of type t whose value references another
// token's dot-separated path.
func NewReference(t Type, path string) *Token {
	return &Token{Type: t, Value: Reference{Ref: path}}
}

// IsReference reports whether the token's value is a reference rather than a
// concrete value.
func (t *Token) IsReference() bool {
	_, ok := t.Value.(Reference)
	return ok
}

// Reference returns the token's reference value, if any.
func (t *Token) Reference() (Reference, bool) {
	ref, ok := t.Value.(Reference)
	return ref, ok
}

// MarshalJSON emits the canonical wire shape for a token.
func (t *Token) MarshalJSON() ([]byte, error) {
	if t.Value == nil {
		return nil, fmt.Errorf("token of type %q has no value", t.Type)
	}
	type wire struct {
		Type        Type           `json:"type"`
		Value       Value          `json:"value"`
		Description string         `json:"description,omitempty"`
		Extensions  map[string]any `json:"extensions,omitempty"`
	}
	return json.Marshal(wire{
		Type:        t.Type,
		Value:       t.Value,
		Description: t.Description,
		Extensions:  t.Extensions,
	})
}
