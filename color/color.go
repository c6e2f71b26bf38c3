/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package color converts between the canonical RGBA representation and the
// textual color forms appearing in token sources: hex, rgb(), hsl(), named
// colors and oklch().
package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/tokenbridge/tokenbridge/token"
)

// Parse converts a CSS color string into a canonical color. Hex, rgb(),
// hsl(), hwb() and named colors go through csscolorparser; oklch() goes
// through the approximate reverse reconstruction in this package (see
// ParseOKLCH for why).
func Parse(raw string) (token.Color, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(raw), "oklch(") {
		return ParseOKLCH(raw)
	}
	c, err := csscolorparser.Parse(raw)
	if err != nil {
		return token.Color{}, fmt.Errorf("invalid color %q: %w", raw, err)
	}
	return token.Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// IsColor reports whether raw parses as a color.
func IsColor(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Hex formats a color as #rrggbb, appending the alpha byte only when the
// color is not fully opaque.
func Hex(c token.Color) string {
	r := channelByte(c.R)
	g := channelByte(c.G)
	b := channelByte(c.B)
	if c.A < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, channelByte(c.A))
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGB formats a color as rgb(r, g, b), or rgba(r, g, b, a) when not fully
// opaque.
func RGB(c token.Color) string {
	r := channelByte(c.R)
	g := channelByte(c.G)
	b := channelByte(c.B)
	if c.A < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, trimFloat(c.A, 3))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// HSL formats a color as hsl(h, s%, l%), or hsla(...) when not fully opaque.
func HSL(c token.Color) string {
	h, s, l := toHSL(c)
	if c.A < 1 {
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
			trimFloat(h, 1), trimFloat(s*100, 1), trimFloat(l*100, 1), trimFloat(c.A, 3))
	}
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", trimFloat(h, 1), trimFloat(s*100, 1), trimFloat(l*100, 1))
}

// toHSL decomposes the color by max/min channel, selecting the hue branch by
// which channel dominates.
func toHSL(c token.Color) (h, s, l float64) {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	delta := max - min

	l = (max + min) / 2

	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}

	switch max {
	case c.R:
		h = (c.G - c.B) / delta
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/delta + 2
	default:
		h = (c.R-c.G)/delta + 4
	}
	h *= 60
	return h, s, l
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func channelByte(v float64) int {
	return int(Clamp01(v)*255 + 0.5)
}

// trimFloat formats v with up to prec decimals, dropping trailing zeros.
func trimFloat(v float64, prec int) string {
	s := fmt.Sprintf("%.*f", prec, v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
