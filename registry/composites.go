/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tokenbridge/tokenbridge/color"
	"github.com/tokenbridge/tokenbridge/token"
)

// pairPattern tokenizes `key: value` pairs inside Font(...) and Effect(...)
// pseudo-constructors, handling quoted and bare values. This grammar is a
// fixed external wire format; changes to it belong in this file only.
var pairPattern = regexp.MustCompile(`(\w+)\s*:\s*(?:"([^"]*)"|'([^']*)'|([^,()]+))`)

// easingKeywords maps CSS easing keywords to their bezier control points.
var easingKeywords = map[string]token.CubicBezier{
	"linear":      {X1: 0, Y1: 0, X2: 1, Y2: 1},
	"ease":        {X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1},
	"ease-in":     {X1: 0.42, Y1: 0, X2: 1, Y2: 1},
	"ease-out":    {X1: 0, Y1: 0, X2: 0.58, Y2: 1},
	"ease-in-out": {X1: 0.42, Y1: 0, X2: 0.58, Y2: 1},
}

// parsePairs extracts the key/value pairs from a pseudo-constructor body.
// Unknown keys are kept; callers ignore what they do not understand.
func parsePairs(body string) map[string]string {
	pairs := make(map[string]string)
	for _, m := range pairPattern.FindAllStringSubmatch(body, -1) {
		value := m[2]
		if value == "" {
			value = m[3]
		}
		if value == "" {
			value = m[4]
		}
		pairs[m[1]] = strings.TrimSpace(value)
	}
	return pairs
}

// constructorBody returns the inner text of name(...) if raw has that shape.
func constructorBody(raw, name string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, name+"(") || !strings.HasSuffix(raw, ")") {
		return "", false
	}
	return raw[len(name)+1 : len(raw)-1], true
}

func typographyHandler() *Handler {
	return &Handler{
		Type:      token.TypeTypography,
		Priority:  priTypography,
		Namespace: "typography",
		DetectString: func(raw string, _ []string) bool {
			_, ok := constructorBody(raw, "Font")
			return ok
		},
		ParseString: parseTypography,
		Format: func(v token.Value, opts FormatOptions) (string, error) {
			ty, ok := v.(token.Typography)
			if !ok {
				return "", fmt.Errorf("expected Typography, got %T", v)
			}
			family, _ := fontFamilyHandler().Format(ty.FontFamily, opts)
			return fmt.Sprintf("%d %s%s/%s %s",
				ty.FontWeight.Value,
				formatFloat(ty.FontSize.Value), ty.FontSize.Unit,
				formatFloat(ty.LineHeight),
				family), nil
		},
	}
}

// parseTypography parses Font(family: "...", size: 16px, weight: 700,
// lineHeight: 1.5, letterSpacing: 0.5px). Missing keys get the documented
// defaults; unknown keys are ignored.
func parseTypography(raw string) (token.Value, error) {
	body, ok := constructorBody(raw, "Font")
	if !ok {
		return nil, fmt.Errorf("invalid typography value %q", raw)
	}
	pairs := parsePairs(body)

	ty := token.Typography{
		FontFamily: token.FontFamily{"sans-serif"},
		FontSize:   token.Dimension{Value: 16, Unit: token.UnitPx},
		FontWeight: token.FontWeight{Value: 400},
		LineHeight: 1.5,
	}

	if family, ok := pairs["family"]; ok {
		if v, err := parseFontFamily(family); err == nil {
			ty.FontFamily = v.(token.FontFamily)
		}
	}
	if size, ok := pairs["size"]; ok {
		if v, err := parseDimension(ensureUnit(size)); err == nil {
			ty.FontSize = v.(token.Dimension)
		}
	}
	if weight, ok := pairs["weight"]; ok {
		if v, err := parseFontWeight(weight); err == nil {
			ty.FontWeight = v.(token.FontWeight)
		}
	}
	if lh, ok := pairs["lineHeight"]; ok {
		if n, err := strconv.ParseFloat(lh, 64); err == nil {
			ty.LineHeight = n
		}
	}
	if ls, ok := pairs["letterSpacing"]; ok {
		if v, err := parseDimension(ensureUnit(ls)); err == nil {
			d := v.(token.Dimension)
			ty.LetterSpacing = &d
		}
	}
	return ty, nil
}

func shadowHandler() *Handler {
	return &Handler{
		Type:      token.TypeShadow,
		Priority:  priShadow,
		Namespace: "shadow",
		DetectString: func(raw string, _ []string) bool {
			if _, ok := constructorBody(raw, "Effect"); ok {
				return true
			}
			return looksLikeCSSShadow(raw)
		},
		ParseString: parseShadow,
		Format: func(v token.Value, opts FormatOptions) (string, error) {
			s, ok := v.(token.Shadow)
			if !ok {
				return "", fmt.Errorf("expected Shadow, got %T", v)
			}
			parts := []string{
				formatDim(s.OffsetX), formatDim(s.OffsetY),
				formatDim(s.Blur), formatDim(s.Spread),
				formatColor(s.Color, opts),
			}
			if s.Inset {
				parts = append(parts, "inset")
			}
			return strings.Join(parts, " "), nil
		},
	}
}

// parseShadow accepts both the Effect(x: 0, y: 2, blur: 4, spread: 0,
// color: #00000040) constructor and the CSS box-shadow shorthand.
func parseShadow(raw string) (token.Value, error) {
	if body, ok := constructorBody(raw, "Effect"); ok {
		pairs := parsePairs(body)
		s := token.Shadow{
			OffsetX: token.Dimension{Unit: token.UnitPx},
			OffsetY: token.Dimension{Unit: token.UnitPx},
			Blur:    token.Dimension{Unit: token.UnitPx},
			Spread:  token.Dimension{Unit: token.UnitPx},
			Color:   token.Color{A: 1},
		}
		for key, target := range map[string]*token.Dimension{
			"x": &s.OffsetX, "y": &s.OffsetY, "blur": &s.Blur, "spread": &s.Spread,
		} {
			if v, ok := pairs[key]; ok {
				if d, err := parseDimension(ensureUnit(v)); err == nil {
					*target = d.(token.Dimension)
				}
			}
		}
		if v, ok := pairs["color"]; ok {
			if c, err := color.Parse(v); err == nil {
				s.Color = c
			}
		}
		if v, ok := pairs["inset"]; ok {
			s.Inset = v == "true"
		}
		return s, nil
	}
	return parseCSSShadow(raw)
}

func looksLikeCSSShadow(raw string) bool {
	parts := splitTopLevel(raw, ' ')
	if len(parts) < 3 {
		return false
	}
	if parts[0] == "inset" {
		parts = parts[1:]
	}
	if len(parts) < 3 || !isShadowLength(parts[0]) || !isShadowLength(parts[1]) {
		return false
	}
	return color.IsColor(parts[len(parts)-1])
}

func parseCSSShadow(raw string) (token.Value, error) {
	parts := splitTopLevel(raw, ' ')
	s := token.Shadow{
		OffsetX: token.Dimension{Unit: token.UnitPx},
		OffsetY: token.Dimension{Unit: token.UnitPx},
		Blur:    token.Dimension{Unit: token.UnitPx},
		Spread:  token.Dimension{Unit: token.UnitPx},
		Color:   token.Color{A: 1},
	}
	dims := []*token.Dimension{&s.OffsetX, &s.OffsetY, &s.Blur, &s.Spread}
	dimIndex := 0
	sawColor := false
	for _, part := range parts {
		switch {
		case part == "inset":
			s.Inset = true
		case isShadowLength(part) && dimIndex < len(dims):
			d, err := parseDimension(zeroToPx(part))
			if err != nil {
				return nil, err
			}
			*dims[dimIndex] = d.(token.Dimension)
			dimIndex++
		case color.IsColor(part):
			c, err := color.Parse(part)
			if err != nil {
				return nil, err
			}
			s.Color = c
			sawColor = true
		default:
			return nil, fmt.Errorf("invalid shadow component %q in %q", part, raw)
		}
	}
	if dimIndex < 2 || !sawColor {
		return nil, fmt.Errorf("invalid shadow %q", raw)
	}
	return s, nil
}

func borderHandler() *Handler {
	return &Handler{
		Type:      token.TypeBorder,
		Priority:  priBorder,
		Namespace: "border",
		DetectString: func(raw string, _ []string) bool {
			parts := splitTopLevel(raw, ' ')
			return len(parts) == 3 &&
				dimensionPattern.MatchString(parts[0]) &&
				token.BorderStyle(parts[1]).Valid() &&
				color.IsColor(parts[2])
		},
		ParseString: parseBorder,
		Format: func(v token.Value, opts FormatOptions) (string, error) {
			b, ok := v.(token.Border)
			if !ok {
				return "", fmt.Errorf("expected Border, got %T", v)
			}
			return fmt.Sprintf("%s %s %s", formatDim(b.Width), b.Style, formatColor(b.Color, opts)), nil
		},
	}
}

func parseBorder(raw string) (token.Value, error) {
	parts := splitTopLevel(raw, ' ')
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid border %q", raw)
	}
	width, err := parseDimension(parts[0])
	if err != nil {
		return nil, err
	}
	style := token.BorderStyle(parts[1])
	if !style.Valid() {
		return nil, fmt.Errorf("invalid border style %q", parts[1])
	}
	c, err := color.Parse(parts[2])
	if err != nil {
		return nil, err
	}
	return token.Border{Width: width.(token.Dimension), Style: style, Color: c}, nil
}

// gradientPattern matches the head of a CSS gradient function.
var gradientPattern = regexp.MustCompile(`^(linear|radial|conic)-gradient\((.*)\)$`)

// gradientDirections maps `to <side>` shorthands onto angles.
var gradientDirections = map[string]float64{
	"to top": 0, "to right": 90, "to bottom": 180, "to left": 270,
}

func gradientHandler() *Handler {
	return &Handler{
		Type:      token.TypeGradient,
		Priority:  priGradient,
		Namespace: "gradient",
		DetectString: func(raw string, _ []string) bool {
			return gradientPattern.MatchString(strings.TrimSpace(raw))
		},
		ParseString: parseGradient,
		Format: func(v token.Value, opts FormatOptions) (string, error) {
			g, ok := v.(token.Gradient)
			if !ok {
				return "", fmt.Errorf("expected Gradient, got %T", v)
			}
			args := make([]string, 0, len(g.Stops)+1)
			if g.Kind != token.GradientRadial {
				args = append(args, formatFloat(g.Angle)+"deg")
			}
			for _, stop := range g.Stops {
				args = append(args, fmt.Sprintf("%s %s%%",
					formatColor(stop.Color, opts), formatFloat(stop.Position*100)))
			}
			return fmt.Sprintf("%s-gradient(%s)", g.Kind, strings.Join(args, ", ")), nil
		},
	}
}

func parseGradient(raw string) (token.Value, error) {
	m := gradientPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, fmt.Errorf("invalid gradient %q", raw)
	}
	g := token.Gradient{Kind: token.GradientKind(m[1])}
	if g.Kind == token.GradientLinear {
		g.Angle = 180 // CSS default: to bottom
	}

	args := splitTopLevel(m[2], ',')
	stops := args
	if len(args) > 0 {
		head := strings.TrimSpace(args[0])
		if angle, ok := gradientDirections[head]; ok {
			g.Angle = angle
			stops = args[1:]
		} else if strings.HasSuffix(head, "deg") {
			if n, err := strconv.ParseFloat(strings.TrimSuffix(head, "deg"), 64); err == nil {
				g.Angle = n
				stops = args[1:]
			}
		}
	}

	for _, arg := range stops {
		parts := splitTopLevel(strings.TrimSpace(arg), ' ')
		if len(parts) == 0 {
			continue
		}
		c, err := color.Parse(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid gradient stop %q: %w", arg, err)
		}
		stop := token.GradientStop{Color: c, Position: -1}
		if len(parts) > 1 && strings.HasSuffix(parts[1], "%") {
			if n, err := strconv.ParseFloat(strings.TrimSuffix(parts[1], "%"), 64); err == nil {
				stop.Position = n / 100
			}
		}
		g.Stops = append(g.Stops, stop)
	}
	if len(g.Stops) < 2 {
		return nil, fmt.Errorf("gradient %q needs at least two stops", raw)
	}

	// Stops without explicit positions distribute evenly.
	for i := range g.Stops {
		if g.Stops[i].Position < 0 {
			g.Stops[i].Position = float64(i) / float64(len(g.Stops)-1)
		}
	}
	return g, nil
}

func cubicBezierHandler() *Handler {
	return &Handler{
		Type:      token.TypeCubicBezier,
		Priority:  priCubicBezier,
		Namespace: "animation",
		DetectString: func(raw string, _ []string) bool {
			raw = strings.TrimSpace(raw)
			if _, ok := easingKeywords[strings.ToLower(raw)]; ok {
				return true
			}
			_, ok := constructorBody(raw, "cubic-bezier")
			return ok
		},
		ParseString: parseCubicBezier,
		Format: func(v token.Value, _ FormatOptions) (string, error) {
			cb, ok := v.(token.CubicBezier)
			if !ok {
				return "", fmt.Errorf("expected CubicBezier, got %T", v)
			}
			for keyword, points := range easingKeywords {
				if points == cb {
					return keyword, nil
				}
			}
			return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
				formatFloat(cb.X1), formatFloat(cb.Y1),
				formatFloat(cb.X2), formatFloat(cb.Y2)), nil
		},
	}
}

func parseCubicBezier(raw string) (token.Value, error) {
	raw = strings.TrimSpace(raw)
	if points, ok := easingKeywords[strings.ToLower(raw)]; ok {
		return points, nil
	}
	body, ok := constructorBody(raw, "cubic-bezier")
	if !ok {
		return nil, fmt.Errorf("invalid cubic bezier %q", raw)
	}
	fields := strings.Split(body, ",")
	if len(fields) != 4 {
		return nil, fmt.Errorf("cubic bezier %q needs four control values", raw)
	}
	values := make([]float64, 4)
	for i, field := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cubic bezier %q: %w", raw, err)
		}
		values[i] = n
	}
	return token.CubicBezier{X1: values[0], Y1: values[1], X2: values[2], Y2: values[3]}, nil
}

func transitionHandler() *Handler {
	return &Handler{
		Type:      token.TypeTransition,
		Priority:  priTransition,
		Namespace: "animation",
		DetectString: func(raw string, _ []string) bool {
			parts := splitTopLevel(raw, ' ')
			if len(parts) < 2 || !durationPattern.MatchString(parts[0]) {
				return false
			}
			second := strings.ToLower(parts[1])
			if _, ok := easingKeywords[second]; ok {
				return true
			}
			return strings.HasPrefix(second, "cubic-bezier(")
		},
		ParseString: parseTransition,
		Format: func(v token.Value, _ FormatOptions) (string, error) {
			tr, ok := v.(token.Transition)
			if !ok {
				return "", fmt.Errorf("expected Transition, got %T", v)
			}
			timing, err := cubicBezierHandler().Format(tr.Timing, FormatOptions{})
			if err != nil {
				return "", err
			}
			out := fmt.Sprintf("%s%s %s", formatFloat(tr.Duration.Value), tr.Duration.Unit, timing)
			if tr.Delay.Value != 0 {
				out += fmt.Sprintf(" %s%s", formatFloat(tr.Delay.Value), tr.Delay.Unit)
			}
			return out, nil
		},
	}
}

func parseTransition(raw string) (token.Value, error) {
	parts := splitTopLevel(raw, ' ')
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid transition %q", raw)
	}
	duration, err := parseDuration(parts[0])
	if err != nil {
		return nil, err
	}
	timing, err := parseCubicBezier(parts[1])
	if err != nil {
		return nil, err
	}
	tr := token.Transition{
		Duration: duration.(token.Duration),
		Delay:    token.Duration{Unit: token.UnitMs},
		Timing:   timing.(token.CubicBezier),
	}
	if len(parts) > 2 {
		delay, err := parseDuration(parts[2])
		if err != nil {
			return nil, err
		}
		tr.Delay = delay.(token.Duration)
	}
	return tr, nil
}

// isShadowLength accepts dimension literals plus the bare zero CSS allows in
// shadow shorthands.
func isShadowLength(part string) bool {
	return part == "0" || dimensionPattern.MatchString(part)
}

func zeroToPx(part string) string {
	if part == "0" {
		return "0px"
	}
	return part
}

// splitTopLevel splits on sep outside any parentheses, trimming whitespace
// and dropping empty fields.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			current.WriteRune(r)
		case r == sep && depth == 0:
			if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
				parts = append(parts, trimmed)
			}
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		parts = append(parts, trimmed)
	}
	return parts
}

// ensureUnit appends px to bare numbers so compact values like `size: 16`
// parse as dimensions.
func ensureUnit(raw string) string {
	raw = strings.TrimSpace(raw)
	if isNumeric(raw) {
		return raw + "px"
	}
	return raw
}

func formatDim(d token.Dimension) string {
	return formatFloat(d.Value) + string(d.Unit)
}

func formatColor(c token.Color, opts FormatOptions) string {
	out, _ := colorHandler().Format(c, opts)
	return out
}
