/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"reflect"
	"testing"

	"github.com/tokenbridge/tokenbridge/token"
)

func colorToken(hex token.Color) *token.Token {
	return token.New(token.TypeColor, hex)
}

func TestGroup_SetGet(t *testing.T) {
	g := token.NewGroup("root")
	want := colorToken(token.Color{R: 1, A: 1})
	g.Set([]string{"brand", "primary"}, want)

	got, ok := g.Get([]string{"brand", "primary"})
	if !ok {
		t.Fatal("Get(brand.primary) not found")
	}
	if got != want {
		t.Errorf("Get(brand.primary) = %v, want %v", got, want)
	}

	if _, ok := g.Get([]string{"brand", "missing"}); ok {
		t.Error("Get(brand.missing) found, want missing")
	}
	if _, ok := g.Get(nil); ok {
		t.Error("Get(nil) found, want missing")
	}
}

func TestGroup_ScalarDisplacedByGroup(t *testing.T) {
	g := token.NewGroup("root")
	g.Set([]string{"color"}, colorToken(token.Color{A: 1}))
	g.Set([]string{"color", "primary"}, colorToken(token.Color{R: 1, A: 1}))

	if _, ok := g.Get([]string{"color"}); ok {
		t.Error("scalar at color should have been displaced by the group")
	}
	if _, ok := g.Get([]string{"color", "primary"}); !ok {
		t.Error("Get(color.primary) not found after displacement")
	}
}

func TestGroup_LastWriteWins(t *testing.T) {
	g := token.NewGroup("root")
	first := colorToken(token.Color{R: 1, A: 1})
	second := colorToken(token.Color{B: 1, A: 1})
	g.Set([]string{"brand"}, first)
	g.Set([]string{"brand"}, second)

	got, ok := g.Get([]string{"brand"})
	if !ok {
		t.Fatal("Get(brand) not found")
	}
	if got != second {
		t.Error("Get(brand) returned the first write, want the second")
	}
}

func TestGroup_WalkSortedOrder(t *testing.T) {
	g := token.NewGroup("root")
	g.Set([]string{"spacing", "4"}, colorToken(token.Color{A: 1}))
	g.Set([]string{"color", "primary"}, colorToken(token.Color{A: 1}))
	g.Set([]string{"color", "accent"}, colorToken(token.Color{A: 1}))
	g.Set([]string{"base"}, colorToken(token.Color{A: 1}))

	var paths []string
	g.Walk(func(path string, _ *token.Token) {
		paths = append(paths, path)
	})

	want := []string{"base", "color.accent", "color.primary", "spacing.4"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("Walk order = %v, want %v", paths, want)
	}
}

func TestGroup_AllPaths(t *testing.T) {
	g := token.NewGroup("root")
	g.Set([]string{"a", "b"}, colorToken(token.Color{A: 1}))
	g.Set([]string{"c"}, colorToken(token.Color{A: 1}))

	want := []string{"a.b", "c"}
	if got := g.AllPaths(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllPaths() = %v, want %v", got, want)
	}
}

func TestGroup_Depth(t *testing.T) {
	g := token.NewGroup("root")
	if got := g.Depth(); got != 0 {
		t.Errorf("empty group Depth() = %d, want 0", got)
	}
	g.Set([]string{"a", "b", "c", "d"}, colorToken(token.Color{A: 1}))
	if got := g.Depth(); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
}
