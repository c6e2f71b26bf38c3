/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compact parses Figma's compact string-map export: a flat JSON
// object from slash-delimited paths to string values, where composite values
// use the Font(...) and Effect(...) pseudo-constructor encodings.
package compact

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/tokenbridge/tokenbridge/builder"
	"github.com/tokenbridge/tokenbridge/fs"
	"github.com/tokenbridge/tokenbridge/internal/logger"
	"github.com/tokenbridge/tokenbridge/parser"
	"github.com/tokenbridge/tokenbridge/source"
	"github.com/tokenbridge/tokenbridge/token"
)

// Mode is the single mode every compact collection carries. The compact
// format has no mode metadata.
const Mode = "Default"

// Parser parses the compact path→string map.
type Parser struct{}

// New creates a compact-format parser.
func New() *Parser {
	return &Parser{}
}

// Validate rejects input that is not a non-empty JSON object of string
// values.
func (p *Parser) Validate(data []byte) error {
	entries, err := decode(data)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return source.ErrEmptySource
	}
	return nil
}

// Parse converts the flat map into a ThemeFile with one collection per
// top-level path segment, each holding the single mode "Default".
func (p *Parser) Parse(data []byte, opts parser.Options) (*token.ThemeFile, error) {
	flat, err := decode(data)
	if err != nil {
		return nil, err
	}
	if len(flat) == 0 {
		return nil, source.ErrEmptySource
	}
	reg := opts.Reg()

	// Iterate in source order so last-write-wins displacement is
	// deterministic.
	var entries []builder.Entry
	for _, kv := range flat {
		segments := strings.Split(strings.Trim(kv.path, "/"), "/")
		collection := segments[0]
		path := segments[1:]
		if len(path) == 0 {
			// A bare top-level path becomes a root token named after its
			// own collection.
			path = segments
		}

		raw := scalarValue(kv.value)
		t, err := reg.ParseString(raw, path)
		if err != nil {
			// One bad composite loses one token, never the parse.
			logger.Warn("skipping %s: %v", kv.path, err)
			continue
		}
		entries = append(entries, builder.Entry{
			Collection: collection,
			Mode:       Mode,
			Path:       path,
			Token:      t,
		})
	}

	return builder.Build(opts.Name, entries), nil
}

// ParseFile reads and parses a compact export file.
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

// scalarValue reduces a compact scalar to the value that is actually
// consumed. Comma-separated scalars are documented as light/dark pairs, but
// only the first (default-mode) value is consumed — multi-mode splitting of
// compact values is deliberately left to the native-format path.
// Pseudo-constructors keep their commas.
func scalarValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "Font(") || strings.HasPrefix(raw, "Effect(") {
		return raw
	}
	depth := 0
	for i, r := range raw {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(raw[:i])
			}
		}
	}
	return raw
}

// pair preserves the source order of the JSON object.
type pair struct {
	path  string
	value string
}

// decode unmarshals the flat map, keeping key order via a token-level scan.
func decode(data []byte) ([]pair, error) {
	clean := jsonc.ToJSON(data)

	dec := json.NewDecoder(strings.NewReader(string(clean)))
	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid compact document: %w", err)
	}
	if t != json.Delim('{') {
		return nil, fmt.Errorf("%w: compact document must be a JSON object", source.ErrUnknownSource)
	}

	var entries []pair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid compact document: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string key in compact document", source.ErrUnknownSource)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: value for %q is not a string", source.ErrUnknownSource, key)
		}
		entries = append(entries, pair{path: key, value: value})
	}
	return entries, nil
}
