/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"testing"

	"github.com/tokenbridge/tokenbridge/resolver"
	"github.com/tokenbridge/tokenbridge/source"
	"github.com/tokenbridge/tokenbridge/token"
)

func TestResolve_ConcreteToken(t *testing.T) {
	theme := themeOf(map[string]string{"base": "#fff"})

	tok, err := resolver.Resolve(theme, "base")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if tok.IsReference() {
		t.Error("resolved token is still a reference")
	}
}

func TestResolve_FollowsChain(t *testing.T) {
	theme := themeOf(map[string]string{
		"a": "{b}",
		"b": "{c}",
		"c": "#fff",
	})

	tok, err := resolver.Resolve(theme, "a")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	c, ok := tok.Value.(token.Color)
	if !ok {
		t.Fatalf("resolved value = %T, want Color", tok.Value)
	}
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("resolved color = %+v, want white", c)
	}
}

func TestResolve_MissingPath(t *testing.T) {
	theme := themeOf(map[string]string{"base": "#fff"})

	_, err := resolver.Resolve(theme, "nope")
	if !errors.Is(err, source.ErrUnresolvedReference) {
		t.Errorf("Resolve() error = %v, want ErrUnresolvedReference", err)
	}
}

func TestResolve_BrokenTarget(t *testing.T) {
	theme := themeOf(map[string]string{"a": "{missing}"})

	_, err := resolver.Resolve(theme, "a")
	if !errors.Is(err, source.ErrUnresolvedReference) {
		t.Errorf("Resolve() error = %v, want ErrUnresolvedReference", err)
	}
}

// An unlinted cyclic tree must still terminate.
func TestResolve_CycleTerminates(t *testing.T) {
	theme := themeOf(map[string]string{
		"a": "{b}",
		"b": "{a}",
	})

	_, err := resolver.Resolve(theme, "a")
	if !errors.Is(err, source.ErrCircularReference) {
		t.Errorf("Resolve() error = %v, want ErrCircularReference", err)
	}
}

func TestResolve_SelfReference(t *testing.T) {
	theme := themeOf(map[string]string{"a": "{a}"})

	_, err := resolver.Resolve(theme, "a")
	if !errors.Is(err, source.ErrCircularReference) {
		t.Errorf("Resolve() error = %v, want ErrCircularReference", err)
	}
}

func TestResolveToken(t *testing.T) {
	theme := themeOf(map[string]string{
		"a": "{b}",
		"b": "#fff",
	})

	aTok, _ := theme.Lookup("a")
	resolved, err := resolver.ResolveToken(theme, aTok)
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if resolved.IsReference() {
		t.Error("ResolveToken() left a reference unresolved")
	}

	bTok, _ := theme.Lookup("b")
	same, err := resolver.ResolveToken(theme, bTok)
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if same != bTok {
		t.Error("concrete token should resolve to itself")
	}
}

func TestBrokenRefs(t *testing.T) {
	theme := themeOf(map[string]string{
		"a": "{missing.target}",
		"b": "{a}",
		"c": "#fff",
	})

	broken := resolver.BrokenRefs(theme)
	if len(broken) != 1 {
		t.Fatalf("len(broken) = %d, want 1", len(broken))
	}
	if broken[0].Collection != "colors" || broken[0].Path != "a" || broken[0].Target != "missing.target" {
		t.Errorf("broken = %+v", broken[0])
	}
}

func TestBrokenRefs_CollectionQualifiedTargets(t *testing.T) {
	theme := themeOf(map[string]string{"a": "{colors.a2}", "a2": "#fff"})

	if broken := resolver.BrokenRefs(theme); len(broken) != 0 {
		t.Errorf("broken = %v, want none for a collection-qualified target", broken)
	}
}
