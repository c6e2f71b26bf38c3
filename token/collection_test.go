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

func TestNewCollection(t *testing.T) {
	c := token.NewCollection("colors", "light")
	if c.DefaultMode != "light" {
		t.Errorf("DefaultMode = %q, want light", c.DefaultMode)
	}
	if !reflect.DeepEqual(c.Modes, []string{"light"}) {
		t.Errorf("Modes = %v, want [light]", c.Modes)
	}
	if c.Default() == nil {
		t.Error("Default() = nil, want root group")
	}
}

func TestCollection_ModeCreatesOnDemand(t *testing.T) {
	c := token.NewCollection("colors", "light")
	dark := c.Mode("dark")
	if dark == nil {
		t.Fatal("Mode(dark) = nil")
	}
	if !reflect.DeepEqual(c.Modes, []string{"light", "dark"}) {
		t.Errorf("Modes = %v, want [light dark]", c.Modes)
	}
	if c.Mode("dark") != dark {
		t.Error("Mode(dark) should return the existing group")
	}
}

func themeWithModes(t *testing.T) *token.ThemeFile {
	t.Helper()
	c := token.NewCollection("colors", "light")
	light := token.New(token.TypeColor, token.Color{R: 1, A: 1})
	dark := token.New(token.TypeColor, token.Color{B: 1, A: 1})
	c.Default().Set([]string{"brand", "primary"}, light)
	c.Mode("dark").Set([]string{"brand", "primary"}, dark)
	return &token.ThemeFile{Name: "test", Collections: []*token.Collection{c}}
}

func TestThemeFile_LookupPrefersDefaultMode(t *testing.T) {
	theme := themeWithModes(t)
	got, ok := theme.Lookup("brand.primary")
	if !ok {
		t.Fatal("Lookup(brand.primary) not found")
	}
	c := got.Value.(token.Color)
	if c.R != 1 {
		t.Errorf("Lookup returned %+v, want the default (light) mode value", c)
	}
}

func TestThemeFile_LookupCollectionQualified(t *testing.T) {
	theme := themeWithModes(t)
	if _, ok := theme.Lookup("colors.brand.primary"); !ok {
		t.Error("Lookup(colors.brand.primary) not found, want collection-qualified hit")
	}
	if _, ok := theme.Lookup("colors.brand.missing"); ok {
		t.Error("Lookup(colors.brand.missing) found, want miss")
	}
}

func TestThemeFile_LookupInMode(t *testing.T) {
	theme := themeWithModes(t)
	got, ok := theme.LookupInMode("colors", "dark", "brand.primary")
	if !ok {
		t.Fatal("LookupInMode(colors, dark, brand.primary) not found")
	}
	if c := got.Value.(token.Color); c.B != 1 {
		t.Errorf("LookupInMode returned %+v, want the dark value", c)
	}
	if _, ok := theme.LookupInMode("colors", "missing", "brand.primary"); ok {
		t.Error("LookupInMode with unknown mode found a token, want miss")
	}
}

func TestThemeFile_WalkTokens(t *testing.T) {
	theme := themeWithModes(t)
	type visit struct {
		collection, mode, path string
	}
	var visits []visit
	theme.WalkTokens(func(collection, mode, path string, _ *token.Token) {
		visits = append(visits, visit{collection, mode, path})
	})
	want := []visit{
		{"colors", "light", "brand.primary"},
		{"colors", "dark", "brand.primary"},
	}
	if !reflect.DeepEqual(visits, want) {
		t.Errorf("WalkTokens visits = %v, want %v", visits, want)
	}
}

func TestThemeFile_Collection(t *testing.T) {
	theme := themeWithModes(t)
	if _, ok := theme.Collection("colors"); !ok {
		t.Error("Collection(colors) not found")
	}
	if _, ok := theme.Collection("missing"); ok {
		t.Error("Collection(missing) found, want miss")
	}
}
