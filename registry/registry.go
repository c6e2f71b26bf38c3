/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package registry dispatches per-type token behavior: detection, parsing,
// serialization and output namespaces. The registry is the single extension
// point for token types — a new type is one Handler definition plus one entry
// in builtins(), with no changes to parsers, generators or lint rules.
package registry

import (
	"fmt"
	"sort"

	"github.com/tokenbridge/tokenbridge/token"
)

// NativeContext is the metadata a Figma native variable offers for type
// detection.
type NativeContext struct {
	// Name is the slash-delimited variable name.
	Name string

	// ResolvedType is the Figma resolved type: COLOR, FLOAT, STRING, BOOLEAN.
	ResolvedType string

	// Scopes lists the Figma variable scopes (CORNER_RADIUS, FONT_WEIGHT, ...).
	Scopes []string
}

// ColorFormat selects the textual form Format emits for colors.
type ColorFormat string

// Supported color output formats.
const (
	ColorHex   ColorFormat = "hex"
	ColorRGB   ColorFormat = "rgb"
	ColorHSL   ColorFormat = "hsl"
	ColorOKLCH ColorFormat = "oklch"
)

// FormatOptions configures value serialization.
type FormatOptions struct {
	// ColorFormat selects the color text form. Zero value means hex.
	ColorFormat ColorFormat
}

// Handler binds one token type to its behavior. Optional functions may be
// nil: a nil detect never matches, a nil parse rejects, a nil NamespaceFor
// falls back to the static Namespace.
type Handler struct {
	// Type is the type tag this handler owns.
	Type token.Type

	// Priority breaks detection ties: handlers are tried in descending
	// priority and the first match wins.
	Priority int

	// Namespace is the default output namespace for this type.
	Namespace string

	// DetectNative reports whether a Figma native variable is of this type.
	DetectNative func(ctx NativeContext) bool

	// DetectString reports whether a bare string value, with an optional
	// path hint, is of this type.
	DetectString func(raw string, path []string) bool

	// ParseNative converts a Figma native value into the canonical value.
	ParseNative func(value any, scopes []string) (token.Value, error)

	// ParseString converts a raw string into the canonical value.
	ParseString func(raw string) (token.Value, error)

	// Format serializes a canonical value back to text.
	Format func(v token.Value, opts FormatOptions) (string, error)

	// NamespaceFor overrides Namespace based on the token's path.
	NamespaceFor func(path []string) string
}

// Registry is an immutable dispatch table over handlers. Build it once with
// New and share the handle; it requires no synchronization because nothing
// mutates it after construction.
type Registry struct {
	handlers []*Handler
	byType   map[token.Type]*Handler
}

// New builds the registry with all built-in handlers registered, sorted by
// descending priority.
func New() *Registry {
	handlers := builtins()
	sort.SliceStable(handlers, func(i, j int) bool {
		return handlers[i].Priority > handlers[j].Priority
	})
	byType := make(map[token.Type]*Handler, len(handlers))
	for _, h := range handlers {
		byType[h.Type] = h
	}
	return &Registry{handlers: handlers, byType: byType}
}

// Lookup returns the handler for a type tag.
func (r *Registry) Lookup(t token.Type) (*Handler, bool) {
	h, ok := r.byType[t]
	return h, ok
}

// Types returns all registered type tags in descending priority order.
func (r *Registry) Types() []token.Type {
	types := make([]token.Type, len(r.handlers))
	for i, h := range r.handlers {
		types[i] = h.Type
	}
	return types
}

// DetectNative classifies a Figma native variable. Detection never fails:
// values no handler claims fall through to the string handler.
func (r *Registry) DetectNative(ctx NativeContext) token.Type {
	for _, h := range r.handlers {
		if h.DetectNative != nil && h.DetectNative(ctx) {
			return h.Type
		}
	}
	return token.TypeString
}

// DetectString classifies a bare string value with an optional path hint.
// Handlers are tried in descending priority; the string handler matches
// everything, so detection never fails.
func (r *Registry) DetectString(raw string, path []string) token.Type {
	for _, h := range r.handlers {
		if h.DetectString != nil && h.DetectString(raw, path) {
			return h.Type
		}
	}
	return token.TypeString
}

// ParseString detects and parses a raw string in one step, producing a
// finished token. References short-circuit detection: the declared type of a
// reference token is only known once resolved, so the reference is stored
// with the string type tag's permissive schema.
func (r *Registry) ParseString(raw string, path []string) (*token.Token, error) {
	if ref, ok := token.ParseReference(raw); ok {
		return &token.Token{Type: token.TypeString, Value: ref}, nil
	}
	t := r.DetectString(raw, path)
	h, ok := r.byType[t]
	if !ok || h.ParseString == nil {
		return nil, fmt.Errorf("no string parser for type %q", t)
	}
	v, err := h.ParseString(raw)
	if err != nil {
		return nil, err
	}
	return &token.Token{Type: t, Value: v}, nil
}

// Format serializes a token's value to text using its type's handler.
// Reference values serialize to their curly-brace source form.
func (r *Registry) Format(t *token.Token, opts FormatOptions) (string, error) {
	if ref, ok := t.Reference(); ok {
		return ref.String(), nil
	}
	h, ok := r.byType[t.Type]
	if !ok || h.Format == nil {
		return "", fmt.Errorf("no formatter for type %q", t.Type)
	}
	return h.Format(t.Value, opts)
}

// Namespace returns the output namespace for a token type at a path.
func (r *Registry) Namespace(t token.Type, path []string) string {
	h, ok := r.byType[t]
	if !ok {
		return ""
	}
	if h.NamespaceFor != nil {
		if ns := h.NamespaceFor(path); ns != "" {
			return ns
		}
	}
	return h.Namespace
}

// builtins returns all built-in handlers. Priorities encode detection
// precedence for ambiguous strings: unambiguous constructor forms first,
// then color → dimension → duration → fontFamily → fontWeight → number, with
// string as the match-everything floor.
func builtins() []*Handler {
	return []*Handler{
		typographyHandler(),
		shadowHandler(),
		gradientHandler(),
		cubicBezierHandler(),
		transitionHandler(),
		borderHandler(),
		colorHandler(),
		dimensionHandler(),
		durationHandler(),
		fontFamilyHandler(),
		fontWeightHandler(),
		numberHandler(),
		stringHandler(),
	}
}
