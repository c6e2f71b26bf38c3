/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package figma parses Figma native variable exports: the variables API
// document with collections, modes, scoped variables and alias references.
package figma

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/tokenbridge/tokenbridge/builder"
	"github.com/tokenbridge/tokenbridge/fs"
	"github.com/tokenbridge/tokenbridge/internal/logger"
	"github.com/tokenbridge/tokenbridge/parser"
	"github.com/tokenbridge/tokenbridge/registry"
	"github.com/tokenbridge/tokenbridge/source"
	"github.com/tokenbridge/tokenbridge/token"
)

// Parser parses Figma native variable documents.
type Parser struct{}

// New creates a Figma native parser.
func New() *Parser {
	return &Parser{}
}

type document struct {
	Collections []collection `json:"collections"`
}

type collection struct {
	Name          string     `json:"name"`
	Modes         []mode     `json:"modes"`
	DefaultModeID string     `json:"defaultModeId"`
	Variables     []variable `json:"variables"`
}

type mode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

type variable struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	ResolvedType string                     `json:"resolvedType"`
	Scopes       []string                   `json:"scopes"`
	Description  string                     `json:"description"`
	ValuesByMode map[string]json.RawMessage `json:"valuesByMode"`
}

// alias is the shape Figma uses for variable references.
type alias struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Validate rejects documents missing the required structure: at least one
// collection, each with at least one mode and a default mode that exists.
func (p *Parser) Validate(data []byte) error {
	doc, err := decode(data)
	if err != nil {
		return err
	}
	if len(doc.Collections) == 0 {
		return fmt.Errorf("%w: no collections", source.ErrEmptySource)
	}
	for _, c := range doc.Collections {
		if c.Name == "" {
			return fmt.Errorf("collection missing name")
		}
		if len(c.Modes) == 0 {
			return fmt.Errorf("collection %q has no modes", c.Name)
		}
		if c.DefaultModeID != "" && c.modeName(c.DefaultModeID) == "" {
			return fmt.Errorf("collection %q: defaultModeId %q not in modes", c.Name, c.DefaultModeID)
		}
	}
	return nil
}

// Parse converts a native document into a ThemeFile. Each Figma collection
// becomes a TokenCollection with Figma's mode names; alias values become
// references; variables whose values fail to parse are skipped one at a
// time.
func (p *Parser) Parse(data []byte, opts parser.Options) (*token.ThemeFile, error) {
	if err := p.Validate(data); err != nil {
		return nil, err
	}
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}
	reg := opts.Reg()

	// First pass: alias targets resolve by variable id across every
	// collection.
	pathByID := make(map[string]string)
	for _, c := range doc.Collections {
		for _, v := range c.Variables {
			pathByID[v.ID] = dotPath(v.Name)
		}
	}

	var entries []builder.Entry
	for _, c := range doc.Collections {
		for _, v := range c.Variables {
			entries = append(entries, p.variableEntries(reg, c, v, pathByID)...)
		}
	}

	theme := builder.Build(opts.Name, entries)
	for _, c := range doc.Collections {
		built, ok := theme.Collection(c.Name)
		if !ok {
			continue
		}
		// Declared modes exist even when empty, so mode-consistency checks
		// see them.
		for _, m := range c.Modes {
			built.Mode(m.Name)
		}
		if name := c.modeName(c.DefaultModeID); name != "" {
			built.DefaultMode = name
		}
	}
	return theme, nil
}

// ParseFile reads and parses a native export file.
func (p *Parser) ParseFile(filesystem fs.FileSystem, path string, opts parser.Options) (*token.ThemeFile, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	theme, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return theme, nil
}

// variableEntries converts one variable into a builder entry per mode.
func (p *Parser) variableEntries(reg *registry.Registry, c collection, v variable, pathByID map[string]string) []builder.Entry {
	t := reg.DetectNative(registry.NativeContext{
		Name:         v.Name,
		ResolvedType: v.ResolvedType,
		Scopes:       v.Scopes,
	})
	handler, ok := reg.Lookup(t)
	if !ok || handler.ParseNative == nil {
		logger.Warn("skipping %s: no native parser for type %q", v.Name, t)
		return nil
	}
	path := strings.Split(strings.Trim(v.Name, "/"), "/")

	// Iterate declared modes rather than the value map so collection mode
	// order is stable.
	var entries []builder.Entry
	for _, m := range c.Modes {
		raw, ok := v.ValuesByMode[m.ModeID]
		if !ok {
			continue
		}
		modeName := m.Name

		tok, err := p.parseValue(handler, t, v, raw, pathByID)
		if err != nil {
			logger.Warn("skipping %s (%s): %v", v.Name, modeName, err)
			continue
		}
		tok.Description = v.Description
		tok.Extensions = map[string]any{"figma.id": v.ID}

		entries = append(entries, builder.Entry{
			Collection: c.Name,
			Mode:       modeName,
			Path:       path,
			Token:      tok,
		})
	}
	return entries
}

// parseValue converts one mode's raw value: an alias becomes a Reference,
// anything else goes through the handler's native parser.
func (p *Parser) parseValue(handler *registry.Handler, t token.Type, v variable, raw json.RawMessage, pathByID map[string]string) (*token.Token, error) {
	var a alias
	if err := json.Unmarshal(raw, &a); err == nil && a.Type == "VARIABLE_ALIAS" {
		target, ok := pathByID[a.ID]
		if !ok {
			return nil, fmt.Errorf("%w: alias target %q", source.ErrUnresolvedReference, a.ID)
		}
		return token.NewReference(t, target), nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("invalid value: %w", err)
	}
	parsed, err := handler.ParseNative(value, v.Scopes)
	if err != nil {
		return nil, err
	}
	return token.New(t, parsed), nil
}

func decode(data []byte) (*document, error) {
	var doc document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("invalid figma document: %w", err)
	}
	return &doc, nil
}

func (c collection) modeName(modeID string) string {
	for _, m := range c.Modes {
		if m.ModeID == modeID {
			return m.Name
		}
	}
	return ""
}

func dotPath(name string) string {
	return strings.ReplaceAll(strings.Trim(name, "/"), "/", ".")
}
