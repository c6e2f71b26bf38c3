/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package builder_test

import (
	"testing"

	"github.com/tokenbridge/tokenbridge/builder"
	"github.com/tokenbridge/tokenbridge/token"
)

func colorEntry(collection, mode string, path []string, r, g, b float64) builder.Entry {
	return builder.Entry{
		Collection: collection,
		Mode:       mode,
		Path:       path,
		Token:      token.New(token.TypeColor, token.Color{R: r, G: g, B: b, A: 1}),
	}
}

func TestBuild_CollectionsInFirstSeenOrder(t *testing.T) {
	theme := builder.Build("test", []builder.Entry{
		colorEntry("colors", "light", []string{"primary"}, 0, 0, 1),
		colorEntry("spacing", "default", []string{"sm"}, 0, 0, 0),
		colorEntry("colors", "light", []string{"secondary"}, 0, 1, 0),
	})

	if theme.Name != "test" {
		t.Errorf("Name = %q, want %q", theme.Name, "test")
	}
	if len(theme.Collections) != 2 {
		t.Fatalf("len(Collections) = %d, want 2", len(theme.Collections))
	}
	if got := theme.Collections[0].Name; got != "colors" {
		t.Errorf("Collections[0].Name = %q, want %q", got, "colors")
	}
	if got := theme.Collections[1].Name; got != "spacing" {
		t.Errorf("Collections[1].Name = %q, want %q", got, "spacing")
	}
}

func TestBuild_FirstModeBecomesDefault(t *testing.T) {
	theme := builder.Build("test", []builder.Entry{
		colorEntry("colors", "light", []string{"primary"}, 0, 0, 1),
		colorEntry("colors", "dark", []string{"primary"}, 0.2, 0.2, 1),
	})

	c := theme.Collections[0]
	if c.DefaultMode != "light" {
		t.Errorf("DefaultMode = %q, want %q", c.DefaultMode, "light")
	}
	if len(c.Modes) != 2 {
		t.Errorf("len(Modes) = %d, want 2", len(c.Modes))
	}
	if _, ok := c.Mode("dark").Get([]string{"primary"}); !ok {
		t.Error("dark mode primary missing")
	}
}

func TestBuild_LastWriteWins(t *testing.T) {
	theme := builder.Build("test", []builder.Entry{
		colorEntry("colors", "light", []string{"primary"}, 1, 0, 0),
		colorEntry("colors", "light", []string{"primary"}, 0, 0, 1),
	})

	tok, ok := theme.Collections[0].Mode("light").Get([]string{"primary"})
	if !ok {
		t.Fatal("primary missing")
	}
	c := tok.Value.(token.Color)
	if c.B != 1 || c.R != 0 {
		t.Errorf("primary = %+v, want the later blue value", c)
	}
}

func TestBuild_SkipsNilAndRootless(t *testing.T) {
	theme := builder.Build("test", []builder.Entry{
		{Collection: "colors", Mode: "light", Path: []string{"primary"}},
		{Collection: "colors", Mode: "light", Path: nil,
			Token: token.New(token.TypeNumber, token.Number(1))},
	})

	if len(theme.Collections) != 0 {
		t.Errorf("len(Collections) = %d, want 0", len(theme.Collections))
	}
}

func TestBuild_NestedPaths(t *testing.T) {
	theme := builder.Build("test", []builder.Entry{
		colorEntry("colors", "light", []string{"brand", "primary"}, 0, 0, 1),
		colorEntry("colors", "light", []string{"brand", "accent"}, 1, 0, 1),
	})

	root := theme.Collections[0].Mode("light")
	var paths []string
	root.Walk(func(path string, _ *token.Token) {
		paths = append(paths, path)
	})
	want := []string{"brand.accent", "brand.primary"}
	if len(paths) != len(want) {
		t.Fatalf("walked paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}
