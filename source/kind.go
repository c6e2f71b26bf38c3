/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package source identifies which token source format a raw input uses.
package source

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
)

// Kind identifies a token source format.
type Kind int

const (
	// Unknown is an undetected source format.
	Unknown Kind = iota

	// FigmaNative is the Figma variables API JSON export.
	FigmaNative

	// Compact is the flat slash-path string map export.
	Compact

	// CSS is raw stylesheet text with custom property declarations.
	CSS
)

// String returns the string representation of the source kind.
func (k Kind) String() string {
	switch k {
	case FigmaNative:
		return "figma"
	case Compact:
		return "compact"
	case CSS:
		return "css"
	default:
		return "unknown"
	}
}

// FromString returns the kind named by s, or Unknown.
func FromString(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "figma", "figma-native", "native":
		return FigmaNative
	case "compact", "mcp":
		return Compact
	case "css":
		return CSS
	default:
		return Unknown
	}
}

// cssDeclPattern matches a custom property declaration anywhere in the text.
var cssDeclPattern = regexp.MustCompile(`--[a-zA-Z0-9_-]+\s*:`)

// DetectKind duck-types raw input content.
//
// Priority order:
//  1. JSON with a collections array of variable objects → FigmaNative
//  2. JSON object whose values are all strings → Compact
//  3. Text containing --name: declarations → CSS
//  4. Unknown
func DetectKind(content []byte) (Kind, error) {
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return Unknown, ErrEmptySource
	}

	if strings.HasPrefix(trimmed, "{") {
		var data map[string]any
		if err := json.Unmarshal(jsonc.ToJSON(content), &data); err == nil {
			if isNativeDoc(data) {
				return FigmaNative, nil
			}
			if isCompactDoc(data) {
				return Compact, nil
			}
		}
	}

	if cssDeclPattern.MatchString(trimmed) {
		return CSS, nil
	}

	return Unknown, ErrUnknownSource
}

// isNativeDoc checks for the Figma variables API shape: a collections array
// whose entries carry variables.
func isNativeDoc(data map[string]any) bool {
	collections, ok := data["collections"].([]any)
	if !ok {
		return false
	}
	for _, raw := range collections {
		c, ok := raw.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := c["variables"]; ok {
			return true
		}
	}
	return false
}

// isCompactDoc checks for the compact export shape: a flat object of string
// values, at least one keyed by a slash path.
func isCompactDoc(data map[string]any) bool {
	if len(data) == 0 {
		return false
	}
	sawSlash := false
	for key, value := range data {
		if _, ok := value.(string); !ok {
			return false
		}
		if strings.Contains(key, "/") {
			sawSlash = true
		}
	}
	return sawSlash
}
