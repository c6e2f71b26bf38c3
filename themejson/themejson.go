/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package themejson encodes and decodes the canonical theme document. The
// wire shape is the one the token package marshals to; decoding rebuilds the
// typed value for each token from its declared type tag, so a decoded theme
// is deep-equal to the one that was encoded.
package themejson

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tokenbridge/tokenbridge/token"
)

// Encode renders the theme as indented canonical JSON.
func Encode(theme *token.ThemeFile) ([]byte, error) {
	return json.MarshalIndent(theme, "", "  ")
}

// EncodeYAML renders the theme as YAML with the same structure as the JSON
// wire shape.
func EncodeYAML(theme *token.ThemeFile) ([]byte, error) {
	data, err := Encode(theme)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Decode parses canonical JSON back into a typed theme.
func Decode(data []byte) (*token.ThemeFile, error) {
	var wire struct {
		Name        string `json:"name"`
		Collections []struct {
			Name        string                     `json:"name"`
			Modes       []string                   `json:"modes"`
			DefaultMode string                     `json:"defaultMode"`
			Tokens      map[string]json.RawMessage `json:"tokens"`
		} `json:"collections"`
		Meta map[string]any `json:"meta"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding theme: %w", err)
	}
	theme := &token.ThemeFile{Name: wire.Name, Meta: wire.Meta}
	for _, wc := range wire.Collections {
		c := &token.Collection{
			Name:        wc.Name,
			Modes:       wc.Modes,
			DefaultMode: wc.DefaultMode,
			Tokens:      make(map[string]*token.Group, len(wc.Tokens)),
		}
		for mode, raw := range wc.Tokens {
			g, err := decodeGroup(wc.Name, raw)
			if err != nil {
				return nil, fmt.Errorf("collection %q mode %q: %w", wc.Name, mode, err)
			}
			c.Tokens[mode] = g
		}
		theme.Collections = append(theme.Collections, c)
	}
	return theme, nil
}

// DecodeYAML parses a YAML rendering of the wire shape.
func DecodeYAML(data []byte) (*token.ThemeFile, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding theme yaml: %w", err)
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return Decode(jsonData)
}

// decodeGroup rebuilds one group from the merged wire object. A member with
// both a string "type" and a "value" key is a token; anything else is a
// nested group.
func decodeGroup(name string, raw json.RawMessage) (*token.Group, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, err
	}
	g := token.NewGroup(name)
	for key, member := range members {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(member, &probe); err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		if isTokenWire(probe) {
			t, err := decodeToken(member)
			if err != nil {
				return nil, fmt.Errorf("token %q: %w", key, err)
			}
			g.Tokens[key] = t
			continue
		}
		nested, err := decodeGroup(key, member)
		if err != nil {
			return nil, err
		}
		g.Groups[key] = nested
	}
	return g, nil
}

func isTokenWire(probe map[string]json.RawMessage) bool {
	rawType, hasType := probe["type"]
	_, hasValue := probe["value"]
	if !hasType || !hasValue {
		return false
	}
	var tag string
	return json.Unmarshal(rawType, &tag) == nil
}

func decodeToken(raw json.RawMessage) (*token.Token, error) {
	var wire struct {
		Type        token.Type      `json:"type"`
		Value       json.RawMessage `json:"value"`
		Description string          `json:"description"`
		Extensions  map[string]any  `json:"extensions"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}
	value, err := decodeValue(wire.Type, wire.Value)
	if err != nil {
		return nil, err
	}
	return &token.Token{
		Type:        wire.Type,
		Value:       value,
		Description: wire.Description,
		Extensions:  wire.Extensions,
	}, nil
}

// decodeValue picks the value shape from the token's type tag. References
// serialize as {"ref": "path"} regardless of type and are checked first.
func decodeValue(t token.Type, raw json.RawMessage) (token.Value, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err == nil {
		if _, ok := probe["ref"]; ok {
			var ref token.Reference
			if err := json.Unmarshal(raw, &ref); err != nil {
				return nil, err
			}
			return ref, nil
		}
	}
	switch t {
	case token.TypeColor:
		return unmarshalValue[token.Color](raw)
	case token.TypeDimension:
		return unmarshalValue[token.Dimension](raw)
	case token.TypeDuration:
		return unmarshalValue[token.Duration](raw)
	case token.TypeFontFamily:
		return unmarshalValue[token.FontFamily](raw)
	case token.TypeFontWeight:
		return unmarshalValue[token.FontWeight](raw)
	case token.TypeNumber:
		return unmarshalValue[token.Number](raw)
	case token.TypeString:
		return unmarshalValue[token.String](raw)
	case token.TypeCubicBezier:
		return unmarshalValue[token.CubicBezier](raw)
	case token.TypeTypography:
		return unmarshalValue[token.Typography](raw)
	case token.TypeShadow:
		return unmarshalValue[token.Shadow](raw)
	case token.TypeBorder:
		return unmarshalValue[token.Border](raw)
	case token.TypeGradient:
		return unmarshalValue[token.Gradient](raw)
	case token.TypeTransition:
		return unmarshalValue[token.Transition](raw)
	default:
		return nil, fmt.Errorf("unknown token type %q", t)
	}
}

func unmarshalValue[V token.Value](raw json.RawMessage) (token.Value, error) {
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
