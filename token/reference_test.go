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

func TestParseReference(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		matched bool
	}{
		{"curly", "{color.primary}", "color.primary", true},
		{"curly single segment", "{radius}", "radius", true},
		{"curly with spaces", "  {color.brand.base}  ", "color.brand.base", true},
		{"css var", "var(--color-primary)", "color.primary", true},
		{"css var with fallback", "var(--spacing-4, 16px)", "spacing.4", true},
		{"css var padded", "var( --font-sans )", "font.sans", true},
		{"plain value", "#3880f6", "", false},
		{"nested braces", "{a{b}}", "", false},
		{"two references", "{a}{b}", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := token.ParseReference(tt.input)
			if ok != tt.matched {
				t.Fatalf("ParseReference(%q) matched = %v, want %v", tt.input, ok, tt.matched)
			}
			if ok && ref.Ref != tt.want {
				t.Errorf("ParseReference(%q).Ref = %q, want %q", tt.input, ref.Ref, tt.want)
			}
		})
	}
}

func TestReference_String(t *testing.T) {
	ref := token.Reference{Ref: "color.primary"}
	if got := ref.String(); got != "{color.primary}" {
		t.Errorf("String() = %q, want {color.primary}", got)
	}
}

func TestReference_Path(t *testing.T) {
	ref := token.Reference{Ref: "color.brand.primary"}
	want := []string{"color", "brand", "primary"}
	if got := ref.Path(); !reflect.DeepEqual(got, want) {
		t.Errorf("Path() = %v, want %v", got, want)
	}
}

func TestIsReference(t *testing.T) {
	if !token.IsReference("{a.b}") {
		t.Error("IsReference({a.b}) = false, want true")
	}
	if token.IsReference("16px") {
		t.Error("IsReference(16px) = true, want false")
	}
}
