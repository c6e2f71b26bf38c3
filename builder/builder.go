/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package builder assembles flat parser output into the canonical nested
// ThemeFile tree.
package builder

import (
	"github.com/tokenbridge/tokenbridge/token"
)

// Entry is one flat token emitted by a source parser.
type Entry struct {
	// Collection names the collection the token belongs to.
	Collection string

	// Mode names the value-set variant within the collection.
	Mode string

	// Path is the token's path segments below the collection root.
	Path []string

	// Token is the parsed token.
	Token *token.Token
}

// Build assembles entries into a ThemeFile. Collections and modes appear in
// first-seen order; the first mode seen for a collection becomes its default
// until a parser overrides it. Insertion is path-walk-or-create with
// last-write-wins displacement, mirroring the permissive write phase of the
// pipeline: structural complaints are the lint engine's job.
func Build(name string, entries []Entry) *token.ThemeFile {
	theme := &token.ThemeFile{Name: name}
	byName := make(map[string]*token.Collection)

	for _, entry := range entries {
		if entry.Token == nil || len(entry.Path) == 0 {
			continue
		}
		c, ok := byName[entry.Collection]
		if !ok {
			c = token.NewCollection(entry.Collection, entry.Mode)
			byName[entry.Collection] = c
			theme.Collections = append(theme.Collections, c)
		}
		c.Mode(entry.Mode).Set(entry.Path, entry.Token)
	}

	return theme
}
