/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/tokenbridge/tokenbridge/color"
	"github.com/tokenbridge/tokenbridge/token"
)

// Detection priorities. Only relative order matters; the gaps leave room for
// externally registered handlers.
const (
	priTypography  = 180
	priShadow      = 170
	priGradient    = 160
	priCubicBezier = 150
	priTransition  = 140
	priBorder      = 130
	priColor       = 120
	priDimension   = 110
	priDuration    = 100
	priFontFamily  = 90
	priFontWeight  = 80
	priNumber      = 70
	priString      = 0
)

var (
	dimensionPattern = regexp.MustCompile(`^-?\d*\.?\d+(px|rem|em|%|vh|vw|pt)$`)
	durationPattern  = regexp.MustCompile(`^\d*\.?\d+(ms|s)$`)
)

// dimensionScopes are the Figma FLOAT scopes that carry pixel lengths.
var dimensionScopes = []string{
	"WIDTH_HEIGHT", "GAP", "CORNER_RADIUS", "STROKE_FLOAT",
	"PARAGRAPH_SPACING", "PARAGRAPH_INDENT", "FONT_SIZE",
	"LINE_HEIGHT", "LETTER_SPACING",
}

func colorHandler() *Handler {
	return &Handler{
		Type:      token.TypeColor,
		Priority:  priColor,
		Namespace: "color",
		DetectNative: func(ctx NativeContext) bool {
			return ctx.ResolvedType == "COLOR"
		},
		DetectString: func(raw string, _ []string) bool {
			return color.IsColor(raw)
		},
		ParseNative: func(value any, _ []string) (token.Value, error) {
			obj, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("expected color object, got %T", value)
			}
			c := token.Color{A: 1}
			c.R = floatField(obj, "r")
			c.G = floatField(obj, "g")
			c.B = floatField(obj, "b")
			if _, ok := obj["a"]; ok {
				c.A = floatField(obj, "a")
			}
			return c, nil
		},
		ParseString: func(raw string) (token.Value, error) {
			return color.Parse(raw)
		},
		Format: func(v token.Value, opts FormatOptions) (string, error) {
			c, ok := v.(token.Color)
			if !ok {
				return "", fmt.Errorf("expected Color, got %T", v)
			}
			switch opts.ColorFormat {
			case ColorRGB:
				return color.RGB(c), nil
			case ColorHSL:
				return color.HSL(c), nil
			case ColorOKLCH:
				return color.OKLCH(c), nil
			default:
				return color.Hex(c), nil
			}
		},
	}
}

func dimensionHandler() *Handler {
	return &Handler{
		Type:      token.TypeDimension,
		Priority:  priDimension,
		Namespace: "spacing",
		DetectNative: func(ctx NativeContext) bool {
			if ctx.ResolvedType != "FLOAT" {
				return false
			}
			for _, scope := range ctx.Scopes {
				if slices.Contains(dimensionScopes, scope) {
					return true
				}
			}
			return false
		},
		DetectString: func(raw string, _ []string) bool {
			return dimensionPattern.MatchString(raw)
		},
		ParseNative: func(value any, _ []string) (token.Value, error) {
			n, ok := value.(float64)
			if !ok {
				return nil, fmt.Errorf("expected number, got %T", value)
			}
			// Native float dimensions are Figma pixels.
			return token.Dimension{Value: n, Unit: token.UnitPx}, nil
		},
		ParseString: parseDimension,
		Format: func(v token.Value, _ FormatOptions) (string, error) {
			d, ok := v.(token.Dimension)
			if !ok {
				return "", fmt.Errorf("expected Dimension, got %T", v)
			}
			return formatFloat(d.Value) + string(d.Unit), nil
		},
		NamespaceFor: func(path []string) string {
			for _, segment := range path {
				s := strings.ToLower(segment)
				switch {
				case strings.Contains(s, "radius"):
					return "radius"
				case strings.Contains(s, "size") || strings.Contains(s, "width") || strings.Contains(s, "height"):
					return "sizing"
				}
			}
			return ""
		},
	}
}

func parseDimension(raw string) (token.Value, error) {
	m := dimensionPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, fmt.Errorf("invalid dimension %q", raw)
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), m[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid dimension %q: %w", raw, err)
	}
	return token.Dimension{Value: n, Unit: token.Unit(m[1])}, nil
}

func durationHandler() *Handler {
	return &Handler{
		Type:      token.TypeDuration,
		Priority:  priDuration,
		Namespace: "animation",
		DetectString: func(raw string, _ []string) bool {
			return durationPattern.MatchString(raw)
		},
		ParseString: parseDuration,
		Format: func(v token.Value, _ FormatOptions) (string, error) {
			d, ok := v.(token.Duration)
			if !ok {
				return "", fmt.Errorf("expected Duration, got %T", v)
			}
			return formatFloat(d.Value) + string(d.Unit), nil
		},
	}
}

func parseDuration(raw string) (token.Value, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, fmt.Errorf("invalid duration %q", raw)
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), m[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	return token.Duration{Value: n, Unit: token.DurationUnit(m[1])}, nil
}

// genericFamilies are CSS generic font family keywords.
var genericFamilies = []string{
	"sans-serif", "serif", "monospace", "cursive", "fantasy",
	"system-ui", "ui-sans-serif", "ui-serif", "ui-monospace",
}

func fontFamilyHandler() *Handler {
	return &Handler{
		Type:      token.TypeFontFamily,
		Priority:  priFontFamily,
		Namespace: "font",
		DetectNative: func(ctx NativeContext) bool {
			return ctx.ResolvedType == "STRING" && slices.Contains(ctx.Scopes, "FONT_FAMILY")
		},
		DetectString: func(raw string, path []string) bool {
			if slices.Contains(genericFamilies, strings.ToLower(strings.TrimSpace(raw))) {
				return true
			}
			if strings.Contains(raw, ",") {
				// A comma list of identifiers is a font stack; comma lists
				// of colors or numbers belong to other types.
				for _, part := range strings.Split(raw, ",") {
					part = strings.TrimSpace(part)
					if part == "" || color.IsColor(part) || isNumeric(part) {
						return false
					}
				}
				return true
			}
			return hasPathHint(path, "fontfamily", "family")
		},
		ParseNative: func(value any, _ []string) (token.Value, error) {
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", value)
			}
			return parseFontFamily(s)
		},
		ParseString: func(raw string) (token.Value, error) {
			return parseFontFamily(raw)
		},
		Format: func(v token.Value, _ FormatOptions) (string, error) {
			ff, ok := v.(token.FontFamily)
			if !ok {
				return "", fmt.Errorf("expected FontFamily, got %T", v)
			}
			quoted := make([]string, len(ff))
			for i, name := range ff {
				if strings.ContainsAny(name, " .") && !slices.Contains(genericFamilies, name) {
					quoted[i] = `"` + name + `"`
				} else {
					quoted[i] = name
				}
			}
			return strings.Join(quoted, ", "), nil
		},
	}
}

func parseFontFamily(raw string) (token.Value, error) {
	var stack token.FontFamily
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, `"'`)
		if part != "" {
			stack = append(stack, part)
		}
	}
	if len(stack) == 0 {
		return nil, fmt.Errorf("empty font family %q", raw)
	}
	return stack, nil
}

func fontWeightHandler() *Handler {
	return &Handler{
		Type:      token.TypeFontWeight,
		Priority:  priFontWeight,
		Namespace: "font",
		DetectNative: func(ctx NativeContext) bool {
			return ctx.ResolvedType == "FLOAT" && slices.Contains(ctx.Scopes, "FONT_WEIGHT")
		},
		DetectString: func(raw string, path []string) bool {
			raw = strings.ToLower(strings.TrimSpace(raw))
			if _, ok := token.FontWeightKeywords[raw]; ok {
				return true
			}
			// Bare hundreds like "700" are numbers unless the path says
			// otherwise.
			if n, err := strconv.Atoi(raw); err == nil && n >= 100 && n <= 900 && n%100 == 0 {
				return hasPathHint(path, "weight", "font", "typography")
			}
			return false
		},
		ParseNative: func(value any, _ []string) (token.Value, error) {
			n, ok := value.(float64)
			if !ok {
				return nil, fmt.Errorf("expected number, got %T", value)
			}
			return parseFontWeight(formatFloat(n))
		},
		ParseString: func(raw string) (token.Value, error) {
			return parseFontWeight(raw)
		},
		Format: func(v token.Value, _ FormatOptions) (string, error) {
			fw, ok := v.(token.FontWeight)
			if !ok {
				return "", fmt.Errorf("expected FontWeight, got %T", v)
			}
			if fw.Keyword != "" {
				return fw.Keyword, nil
			}
			return strconv.Itoa(fw.Value), nil
		},
	}
}

func parseFontWeight(raw string) (token.Value, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if n, ok := token.FontWeightKeywords[raw]; ok {
		return token.FontWeight{Value: n, Keyword: raw}, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid font weight %q", raw)
	}
	if n < 100 || n > 900 {
		return nil, fmt.Errorf("font weight %d out of range 100-900", n)
	}
	return token.FontWeight{Value: n}, nil
}

func numberHandler() *Handler {
	return &Handler{
		Type:      token.TypeNumber,
		Priority:  priNumber,
		Namespace: "number",
		DetectNative: func(ctx NativeContext) bool {
			return ctx.ResolvedType == "FLOAT"
		},
		DetectString: func(raw string, _ []string) bool {
			return isNumeric(raw)
		},
		ParseNative: func(value any, _ []string) (token.Value, error) {
			n, ok := value.(float64)
			if !ok {
				return nil, fmt.Errorf("expected number, got %T", value)
			}
			return token.Number(n), nil
		},
		ParseString: func(raw string) (token.Value, error) {
			n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q: %w", raw, err)
			}
			return token.Number(n), nil
		},
		Format: func(v token.Value, _ FormatOptions) (string, error) {
			n, ok := v.(token.Number)
			if !ok {
				return "", fmt.Errorf("expected Number, got %T", v)
			}
			return formatFloat(float64(n)), nil
		},
	}
}

func stringHandler() *Handler {
	return &Handler{
		Type:      token.TypeString,
		Priority:  priString,
		Namespace: "misc",
		DetectNative: func(ctx NativeContext) bool {
			return true
		},
		DetectString: func(_ string, _ []string) bool {
			return true
		},
		ParseNative: func(value any, _ []string) (token.Value, error) {
			switch v := value.(type) {
			case string:
				return token.String(v), nil
			case bool:
				return token.String(strconv.FormatBool(v)), nil
			default:
				return token.String(fmt.Sprintf("%v", v)), nil
			}
		},
		ParseString: func(raw string) (token.Value, error) {
			return token.String(raw), nil
		},
		Format: func(v token.Value, _ FormatOptions) (string, error) {
			s, ok := v.(token.String)
			if !ok {
				return "", fmt.Errorf("expected String, got %T", v)
			}
			return string(s), nil
		},
	}
}

// hasPathHint reports whether any path segment contains one of the hints,
// case-insensitively.
func hasPathHint(path []string, hints ...string) bool {
	for _, segment := range path {
		s := strings.ToLower(segment)
		for _, hint := range hints {
			if strings.Contains(s, hint) {
				return true
			}
		}
	}
	return false
}

func isNumeric(raw string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return err == nil
}

// formatFloat renders a float without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatField(obj map[string]any, key string) float64 {
	if n, ok := obj[key].(float64); ok {
		return n
	}
	return 0
}
