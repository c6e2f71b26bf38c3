/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lint_test

import (
	"strings"
	"testing"

	"github.com/tokenbridge/tokenbridge/lint"
	"github.com/tokenbridge/tokenbridge/token"
)

// collectionOf builds a one-mode collection from path → token.
func collectionOf(name string, tokens map[string]*token.Token) *token.Collection {
	c := token.NewCollection(name, "default")
	root := c.Default()
	for path, tok := range tokens {
		root.Set(strings.Split(path, "."), tok)
	}
	return c
}

func themeWith(collections ...*token.Collection) *token.ThemeFile {
	return &token.ThemeFile{Name: "test", Collections: collections}
}

func white() *token.Token {
	return token.New(token.TypeColor, token.Color{R: 1, G: 1, B: 1, A: 1})
}

func TestNamingConvention(t *testing.T) {
	theme := themeWith(collectionOf("colors", map[string]*token.Token{
		"brand-primary":   white(),
		"brand-secondary": white(),
		"brand_accent":    white(),
	}))

	got := byRule(lint.Run(theme, lint.Config{}), "naming-convention")
	if len(got) != 1 {
		t.Fatalf("findings = %v, want exactly the minority style", got)
	}
	if got[0].Path != "brand_accent" {
		t.Errorf("Path = %q, want brand_accent", got[0].Path)
	}
	if !strings.Contains(got[0].Suggestion, "brand-accent") {
		t.Errorf("Suggestion = %q, want a kebab-case rename", got[0].Suggestion)
	}
}

func TestNamingConvention_SingleStyleClean(t *testing.T) {
	theme := themeWith(collectionOf("colors", map[string]*token.Token{
		"brand-primary": white(),
		"brand-accent":  white(),
	}))

	if got := byRule(lint.Run(theme, lint.Config{}), "naming-convention"); len(got) != 0 {
		t.Errorf("consistent collection reported: %v", got)
	}
}

func TestModeConsistency(t *testing.T) {
	c := collectionOf("colors", map[string]*token.Token{
		"brand.primary": white(),
		"brand.accent":  white(),
	})
	// Dark mode misses brand.accent.
	c.Mode("dark").Set([]string{"brand", "primary"}, white())
	theme := themeWith(c)

	got := byRule(lint.Run(theme, lint.Config{}), "mode-consistency")
	if len(got) != 1 {
		t.Fatalf("findings = %v, want exactly 1", got)
	}
	if got[0].Path != "brand.accent" {
		t.Errorf("Path = %q, want brand.accent", got[0].Path)
	}
	if !strings.Contains(got[0].Message, `"dark"`) {
		t.Errorf("Message = %q, want the missing mode named", got[0].Message)
	}
}

func TestModeConsistency_SingleModeSkipped(t *testing.T) {
	theme := themeWith(collectionOf("colors", map[string]*token.Token{
		"brand.primary": white(),
	}))

	if got := byRule(lint.Run(theme, lint.Config{}), "mode-consistency"); len(got) != 0 {
		t.Errorf("single-mode collection reported: %v", got)
	}
}

func TestDefaultMode(t *testing.T) {
	c := collectionOf("colors", map[string]*token.Token{"base": white()})
	c.DefaultMode = "missing"
	theme := themeWith(c)

	got := byRule(lint.Run(theme, lint.Config{}), "default-mode")
	if len(got) != 1 {
		t.Fatalf("findings = %v, want 1", got)
	}
	if got[0].Severity != lint.SeverityError {
		t.Errorf("Severity = %v, want error", got[0].Severity)
	}
}

func TestCircularReference(t *testing.T) {
	theme := themeWith(collectionOf("colors", map[string]*token.Token{
		"a": token.NewReference(token.TypeColor, "b"),
		"b": token.NewReference(token.TypeColor, "c"),
		"c": token.NewReference(token.TypeColor, "a"),
	}))

	messages := lint.Run(theme, lint.Config{})
	circular := byRule(messages, "circular-reference")
	if len(circular) != 1 {
		t.Fatalf("circular findings = %v, want exactly 1 per cycle", circular)
	}
	for _, member := range []string{"a", "b", "c"} {
		if !strings.Contains(circular[0].Message, member) {
			t.Errorf("Message = %q, missing cycle member %s", circular[0].Message, member)
		}
	}
	// Cycle members must not double-report as broken: their targets exist.
	if broken := byRule(messages, "broken-reference"); len(broken) != 0 {
		t.Errorf("cycle also reported as broken: %v", broken)
	}
}

func TestCircularReference_DiamondClean(t *testing.T) {
	theme := themeWith(collectionOf("colors", map[string]*token.Token{
		"a":    token.NewReference(token.TypeColor, "base"),
		"b":    token.NewReference(token.TypeColor, "base"),
		"base": white(),
	}))

	if got := byRule(lint.Run(theme, lint.Config{}), "circular-reference"); len(got) != 0 {
		t.Errorf("diamond reported as cycle: %v", got)
	}
}

func TestBrokenReference(t *testing.T) {
	theme := themeWith(collectionOf("colors", map[string]*token.Token{
		"a": token.NewReference(token.TypeColor, "gone"),
	}))

	got := byRule(lint.Run(theme, lint.Config{}), "broken-reference")
	if len(got) != 1 {
		t.Fatalf("findings = %v, want 1", got)
	}
	if !strings.Contains(got[0].Message, `"gone"`) {
		t.Errorf("Message = %q, want the missing target", got[0].Message)
	}
}

func TestValueRange(t *testing.T) {
	tests := []struct {
		name  string
		token *token.Token
		want  int
	}{
		{
			"channel above one",
			token.New(token.TypeColor, token.Color{R: 1.4, A: 1}),
			1,
		},
		{
			"negative alpha",
			token.New(token.TypeColor, token.Color{A: -0.1}),
			1,
		},
		{
			"valid color",
			white(),
			0,
		},
		{
			"bezier x out of range",
			token.New(token.TypeCubicBezier, token.CubicBezier{X1: -0.5, Y1: 0, X2: 0.5, Y2: 1}),
			1,
		},
		{
			"bezier y unbounded is fine",
			token.New(token.TypeCubicBezier, token.CubicBezier{X1: 0.3, Y1: -2, X2: 0.7, Y2: 3}),
			0,
		},
		{
			"gradient stop position",
			token.New(token.TypeGradient, token.Gradient{
				Kind: token.GradientLinear,
				Stops: []token.GradientStop{
					{Color: token.Color{A: 1}, Position: 0},
					{Color: token.Color{A: 1}, Position: 1.5},
				},
			}),
			1,
		},
		{
			"font weight out of range",
			token.New(token.TypeFontWeight, token.FontWeight{Value: 950}),
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := themeWith(collectionOf("c", map[string]*token.Token{"x": tt.token}))
			got := byRule(lint.Run(theme, lint.Config{}), "value-range")
			if len(got) != tt.want {
				t.Errorf("findings = %v, want %d", got, tt.want)
			}
		})
	}
}

func TestValueRange_ChecksDefaultModeOnly(t *testing.T) {
	c := collectionOf("colors", map[string]*token.Token{"x": white()})
	c.Mode("dark").Set([]string{"x"},
		token.New(token.TypeColor, token.Color{R: 2, A: 1}))
	theme := themeWith(c)

	if got := byRule(lint.Run(theme, lint.Config{}), "value-range"); len(got) != 0 {
		t.Errorf("non-default mode value reported: %v", got)
	}
}

func TestEnumValid(t *testing.T) {
	tests := []struct {
		name  string
		token *token.Token
		want  int
	}{
		{
			"bad dimension unit",
			token.New(token.TypeDimension, token.Dimension{Value: 1, Unit: "furlong"}),
			1,
		},
		{
			"good dimension unit",
			token.New(token.TypeDimension, token.Dimension{Value: 1, Unit: token.UnitRem}),
			0,
		},
		{
			"bad duration unit",
			token.New(token.TypeDuration, token.Duration{Value: 1, Unit: "min"}),
			1,
		},
		{
			"bad border style",
			token.New(token.TypeBorder, token.Border{
				Width: token.Dimension{Value: 1, Unit: token.UnitPx},
				Style: "wavy",
				Color: token.Color{A: 1},
			}),
			1,
		},
		{
			"bad gradient kind",
			token.New(token.TypeGradient, token.Gradient{
				Kind: "spiral",
				Stops: []token.GradientStop{
					{Color: token.Color{A: 1}, Position: 0},
					{Color: token.Color{A: 1}, Position: 1},
				},
			}),
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := themeWith(collectionOf("c", map[string]*token.Token{"x": tt.token}))
			got := byRule(lint.Run(theme, lint.Config{}), "enum-valid")
			if len(got) != tt.want {
				t.Errorf("findings = %v, want %d", got, tt.want)
			}
		})
	}
}

func TestCompositeComplete(t *testing.T) {
	tests := []struct {
		name  string
		token *token.Token
		want  string
	}{
		{
			"typography without family",
			token.New(token.TypeTypography, token.Typography{
				FontSize:   token.Dimension{Value: 16, Unit: token.UnitPx},
				LineHeight: 1.5,
			}),
			"font family",
		},
		{
			"single stop gradient",
			token.New(token.TypeGradient, token.Gradient{
				Kind:  token.GradientLinear,
				Stops: []token.GradientStop{{Color: token.Color{A: 1}, Position: 0}},
			}),
			"stops",
		},
		{
			"border without style",
			token.New(token.TypeBorder, token.Border{
				Width: token.Dimension{Value: 1, Unit: token.UnitPx},
				Color: token.Color{A: 1},
			}),
			"style",
		},
		{
			"empty font stack",
			token.New(token.TypeFontFamily, token.FontFamily{}),
			"empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := themeWith(collectionOf("c", map[string]*token.Token{"x": tt.token}))
			got := byRule(lint.Run(theme, lint.Config{}), "composite-complete")
			if len(got) == 0 {
				t.Fatal("no findings")
			}
			found := false
			for _, m := range got {
				if strings.Contains(m.Message, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("findings %v, want one mentioning %q", got, tt.want)
			}
		})
	}
}

func TestNestingDepth(t *testing.T) {
	theme := themeWith(collectionOf("deep", map[string]*token.Token{
		"a.b.c.d.e.f.g.h.i.j": white(),
	}))

	got := byRule(lint.Run(theme, lint.Config{}), "nesting-depth")
	if len(got) != 1 {
		t.Errorf("findings = %v, want 1", got)
	}
}

func TestEmptyCollection(t *testing.T) {
	theme := themeWith(token.NewCollection("hollow", "default"))

	got := byRule(lint.Run(theme, lint.Config{}), "empty-collection")
	if len(got) != 1 {
		t.Errorf("findings = %v, want 1", got)
	}
}

func TestCharset(t *testing.T) {
	theme := themeWith(collectionOf("colors", map[string]*token.Token{
		"brand.pri mary": white(),
	}))

	got := byRule(lint.Run(theme, lint.Config{}), "charset")
	if len(got) != 1 {
		t.Errorf("findings = %v, want 1", got)
	}
}
