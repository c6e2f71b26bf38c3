/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"

	"github.com/tokenbridge/tokenbridge/source"
	"github.com/tokenbridge/tokenbridge/token"
)

// maxDepth bounds reference chains so resolution terminates even on a
// cyclic tree that was never linted.
const maxDepth = 64

// Resolve looks up the token at path and follows reference chains until a
// concrete value is reached. Resolution is lazy, read-only and idempotent;
// it never mutates the tree and needs no cache.
func Resolve(theme *token.ThemeFile, path string) (*token.Token, error) {
	seen := 0
	current := path
	for {
		t, ok := theme.Lookup(current)
		if !ok {
			return nil, fmt.Errorf("%w: %s", source.ErrUnresolvedReference, current)
		}
		ref, isRef := t.Reference()
		if !isRef {
			return t, nil
		}
		seen++
		if seen > maxDepth {
			return nil, fmt.Errorf("%w: reference chain from %s exceeds %d hops", source.ErrCircularReference, path, maxDepth)
		}
		current = ref.Ref
	}
}

// ResolveToken follows a token's reference chain to its concrete target.
// Concrete tokens resolve to themselves.
func ResolveToken(theme *token.ThemeFile, t *token.Token) (*token.Token, error) {
	ref, ok := t.Reference()
	if !ok {
		return t, nil
	}
	return Resolve(theme, ref.Ref)
}

// BrokenRef describes a reference whose target does not exist.
type BrokenRef struct {
	// Collection and Path locate the referencing token.
	Collection string
	Path       string

	// Target is the missing reference target.
	Target string
}

// BrokenRefs collects every reference whose target path exists nowhere in
// the theme. This is a separate, simpler pass than cycle detection: gather
// all valid paths, then check each Reference against that set. Broken
// references are reported, never fatal.
func BrokenRefs(theme *token.ThemeFile) []BrokenRef {
	valid := make(map[string]bool)
	theme.WalkTokens(func(collection, _, path string, _ *token.Token) {
		valid[path] = true
		valid[collection+"."+path] = true
	})

	var broken []BrokenRef
	seen := make(map[string]bool)
	theme.WalkTokens(func(collection, _, path string, t *token.Token) {
		ref, ok := t.Reference()
		if !ok {
			return
		}
		if valid[ref.Ref] {
			return
		}
		key := collection + ":" + path + ":" + ref.Ref
		if seen[key] {
			return
		}
		seen[key] = true
		broken = append(broken, BrokenRef{Collection: collection, Path: path, Target: ref.Ref})
	})
	return broken
}
