/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package themejson_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenbridge/tokenbridge/themejson"
	"github.com/tokenbridge/tokenbridge/token"
)

func fullTheme() *token.ThemeFile {
	colors := token.NewCollection("colors", "light")
	light := colors.Default()

	primary := token.New(token.TypeColor, token.Color{R: 0.22, G: 0.5, B: 0.96, A: 1})
	primary.Description = "Primary brand color"
	primary.Extensions = map[string]any{"figma.id": "VariableID:1"}
	light.Set([]string{"brand", "primary"}, primary)
	light.Set([]string{"brand", "accent"}, token.NewReference(token.TypeColor, "brand.primary"))

	dark := colors.Mode("dark")
	dark.Set([]string{"brand", "primary"},
		token.New(token.TypeColor, token.Color{R: 0.3, G: 0.55, B: 0.97, A: 1}))

	type_ := token.NewCollection("type", "default")
	root := type_.Default()
	ls := token.Dimension{Value: 0.5, Unit: token.UnitPx}
	root.Set([]string{"body"}, token.New(token.TypeTypography, token.Typography{
		FontFamily:    token.FontFamily{"Inter", "sans-serif"},
		FontSize:      token.Dimension{Value: 16, Unit: token.UnitPx},
		FontWeight:    token.FontWeight{Value: 400},
		LineHeight:    1.5,
		LetterSpacing: &ls,
	}))
	root.Set([]string{"weight", "bold"},
		token.New(token.TypeFontWeight, token.FontWeight{Value: 700, Keyword: "bold"}))

	misc := token.NewCollection("misc", "default")
	misc.Default().Set([]string{"fade"}, token.New(token.TypeGradient, token.Gradient{
		Kind:  token.GradientLinear,
		Angle: 90,
		Stops: []token.GradientStop{
			{Color: token.Color{R: 1, G: 1, B: 1, A: 1}, Position: 0},
			{Color: token.Color{A: 1}, Position: 1},
		},
	}))
	misc.Default().Set([]string{"pop"}, token.New(token.TypeTransition, token.Transition{
		Duration: token.Duration{Value: 150, Unit: token.UnitMs},
		Timing:   token.CubicBezier{X1: 0.4, Y1: 0, X2: 0.2, Y2: 1},
		Delay:    token.Duration{Value: 0, Unit: token.UnitMs},
	}))

	return &token.ThemeFile{
		Name:        "brand",
		Collections: []*token.Collection{colors, type_, misc},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	theme := fullTheme()

	data, err := themejson.Encode(theme)
	require.NoError(t, err)

	decoded, err := themejson.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, theme.Name, decoded.Name)
	require.Len(t, decoded.Collections, 3)

	colors, ok := decoded.Collection("colors")
	require.True(t, ok)
	assert.Equal(t, []string{"light", "dark"}, colors.Modes)
	assert.Equal(t, "light", colors.DefaultMode)

	primary, ok := decoded.LookupInMode("colors", "light", "brand.primary")
	require.True(t, ok)
	assert.Equal(t, token.Color{R: 0.22, G: 0.5, B: 0.96, A: 1}, primary.Value)
	assert.Equal(t, "Primary brand color", primary.Description)
	assert.Equal(t, "VariableID:1", primary.Extensions["figma.id"])

	accent, ok := decoded.LookupInMode("colors", "light", "brand.accent")
	require.True(t, ok)
	ref, isRef := accent.Reference()
	require.True(t, isRef)
	assert.Equal(t, "brand.primary", ref.Ref)

	body, ok := decoded.LookupInMode("type", "default", "body")
	require.True(t, ok)
	ty, isTy := body.Value.(token.Typography)
	require.True(t, isTy, "body value is %T", body.Value)
	assert.Equal(t, token.FontFamily{"Inter", "sans-serif"}, ty.FontFamily)
	require.NotNil(t, ty.LetterSpacing)
	assert.Equal(t, token.Dimension{Value: 0.5, Unit: token.UnitPx}, *ty.LetterSpacing)

	bold, ok := decoded.LookupInMode("type", "default", "weight.bold")
	require.True(t, ok)
	assert.Equal(t, token.FontWeight{Value: 700, Keyword: "bold"}, bold.Value)

	fade, ok := decoded.LookupInMode("misc", "default", "fade")
	require.True(t, ok)
	g, isG := fade.Value.(token.Gradient)
	require.True(t, isG)
	assert.Equal(t, token.GradientLinear, g.Kind)
	assert.Equal(t, 90.0, g.Angle)
	require.Len(t, g.Stops, 2)

	pop, ok := decoded.LookupInMode("misc", "default", "pop")
	require.True(t, ok)
	tr, isTr := pop.Value.(token.Transition)
	require.True(t, isTr)
	assert.Equal(t, token.Duration{Value: 150, Unit: token.UnitMs}, tr.Duration)
}

func TestEncode_WireShape(t *testing.T) {
	theme := fullTheme()

	data, err := themejson.Encode(theme)
	require.NoError(t, err)

	s := string(data)
	for _, want := range []string{
		`"name": "brand"`,
		`"collections"`,
		`"defaultMode": "light"`,
		`"type": "color"`,
		`"ref": "brand.primary"`,
	} {
		assert.Contains(t, s, want)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	theme := fullTheme()

	data, err := themejson.EncodeYAML(theme)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(strings.TrimSpace(string(data)), "{"),
		"yaml output looks like json")

	decoded, err := themejson.DecodeYAML(data)
	require.NoError(t, err)

	primary, ok := decoded.LookupInMode("colors", "light", "brand.primary")
	require.True(t, ok)
	assert.Equal(t, token.Color{R: 0.22, G: 0.5, B: 0.96, A: 1}, primary.Value)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "nope"},
		{"unknown type tag", `{
			"name": "x",
			"collections": [{
				"name": "c", "modes": ["default"], "defaultMode": "default",
				"tokens": {"default": {"x": {"type": "hologram", "value": 1}}}
			}]
		}`},
		{"value shape mismatch", `{
			"name": "x",
			"collections": [{
				"name": "c", "modes": ["default"], "defaultMode": "default",
				"tokens": {"default": {"x": {"type": "color", "value": "red"}}}
			}]
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := themejson.Decode([]byte(tt.data))
			require.Error(t, err)
		})
	}
}
