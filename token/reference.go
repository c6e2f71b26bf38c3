/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// Reference is a token value that points at another token's dot-separated
// path instead of holding data directly. References may converge (two tokens
// referencing the same target) but must never form a cycle; the resolver
// detects cycles as a lint concern, not at construction.
type Reference struct {
	Ref string `json:"ref"`
}

func (Reference) isValue() {}

// String returns the curly-brace source form of the reference.
func (r Reference) String() string {
	return "{" + r.Ref + "}"
}

// Path returns the reference target split into segments.
func (r Reference) Path() []string {
	return strings.Split(r.Ref, ".")
}

// curlyRefPattern matches a whole-string curly brace reference: {a.b.c}
var curlyRefPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// cssVarPattern matches a whole-string CSS var() call: var(--a-b-c)
// An optional fallback after a comma is ignored.
var cssVarPattern = regexp.MustCompile(`^var\(\s*--([a-zA-Z0-9_-]+)\s*(?:,[^)]*)?\)$`)

// ParseReference recognizes the two source reference syntaxes: {a.b.c} and
// var(--a-b-c). Returns the Reference and true on a match.
func ParseReference(raw string) (Reference, bool) {
	raw = strings.TrimSpace(raw)
	if m := curlyRefPattern.FindStringSubmatch(raw); m != nil {
		return Reference{Ref: strings.TrimSpace(m[1])}, true
	}
	if m := cssVarPattern.FindStringSubmatch(raw); m != nil {
		return Reference{Ref: strings.ReplaceAll(m[1], "-", ".")}, true
	}
	return Reference{}, false
}

// IsReference reports whether raw is a reference in either source syntax.
func IsReference(raw string) bool {
	_, ok := ParseReference(raw)
	return ok
}
