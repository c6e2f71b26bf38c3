/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"sort"
	"strings"
)

// Group is a nested, string-keyed container of tokens and further groups.
// Tokens and Groups are kept in separate maps so that consumers never have to
// shape-check a member to know which kind it is; a key appears in at most one
// of the two maps.
type Group struct {
	// Name is the group's identifier.
	Name string `json:"-"`

	// Tokens contains the tokens directly in this group.
	Tokens map[string]*Token `json:"-"`

	// Groups contains nested groups.
	Groups map[string]*Group `json:"-"`
}

// NewGroup creates a new empty token group.
func NewGroup(name string) *Group {
	return &Group{
		Name:   name,
		Tokens: make(map[string]*Token),
		Groups: make(map[string]*Group),
	}
}

// Ensure walks path segments, creating intermediate groups as needed, and
// returns the group at the end of the path. A token already occupying a
// position a group needs is silently displaced: compact sources freely mix
// `color` and `color/primary` paths, and last write wins.
func (g *Group) Ensure(path []string) *Group {
	current := g
	for _, segment := range path {
		next, ok := current.Groups[segment]
		if !ok {
			next = NewGroup(segment)
			current.Groups[segment] = next
			delete(current.Tokens, segment)
		}
		current = next
	}
	return current
}

// Set inserts a token at the path below g, creating intermediate groups.
// The final segment displaces any group or token already there.
func (g *Group) Set(path []string, t *Token) {
	if len(path) == 0 {
		return
	}
	parent := g.Ensure(path[:len(path)-1])
	leaf := path[len(path)-1]
	delete(parent.Groups, leaf)
	parent.Tokens[leaf] = t
}

// Get returns the token at the path below g, if present.
func (g *Group) Get(path []string) (*Token, bool) {
	if len(path) == 0 {
		return nil, false
	}
	current := g
	for _, segment := range path[:len(path)-1] {
		next, ok := current.Groups[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	t, ok := current.Tokens[path[len(path)-1]]
	return t, ok
}

// Walk visits every token in this group and nested groups, passing the
// dot-joined path relative to g. Traversal order is sorted by key for
// determinism.
func (g *Group) Walk(visit func(path string, t *Token)) {
	g.walk(nil, visit)
}

func (g *Group) walk(prefix []string, visit func(path string, t *Token)) {
	for _, key := range sortedKeys(g.Tokens) {
		visit(strings.Join(append(prefix, key), "."), g.Tokens[key])
	}
	for _, key := range sortedKeys(g.Groups) {
		g.Groups[key].walk(append(prefix, key), visit)
	}
}

// AllPaths returns the dot-joined path of every token in the group, sorted.
func (g *Group) AllPaths() []string {
	var paths []string
	g.Walk(func(path string, _ *Token) {
		paths = append(paths, path)
	})
	return paths
}

// Depth returns the deepest nesting level of the group, counting g as 0.
func (g *Group) Depth() int {
	deepest := 0
	for _, nested := range g.Groups {
		if d := nested.Depth() + 1; d > deepest {
			deepest = d
		}
	}
	return deepest
}

// MarshalJSON emits the recursive wire shape: one object holding both tokens
// and nested groups under their keys.
func (g *Group) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(g.Tokens)+len(g.Groups))
	for key, t := range g.Tokens {
		merged[key] = t
	}
	for key, nested := range g.Groups {
		merged[key] = nested
	}
	return json.Marshal(merged)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
