/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lint

import (
	"fmt"

	"github.com/tokenbridge/tokenbridge/token"
)

// valueRangeRule errors on numeric values outside their type's range:
// color channels, gradient stop positions and bezier x-coordinates all
// live in [0, 1].
func valueRangeRule() Rule {
	return Rule{
		ID:              "value-range",
		DefaultSeverity: SeverityError,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			theme.WalkTokens(func(collection, mode, path string, t *token.Token) {
				if mode != defaultModeOf(theme, collection) {
					return
				}
				checkRanges(r, collection, path, t.Value)
			})
		},
	}
}

func checkRanges(r *Reporter, collection, path string, v token.Value) {
	switch value := v.(type) {
	case token.Color:
		checkColorRange(r, collection, path, value)
	case token.CubicBezier:
		checkBezierRange(r, collection, path, value)
	case token.Gradient:
		for i, stop := range value.Stops {
			if !in01(stop.Position) {
				r.Report(collection, path,
					fmt.Sprintf("gradient stop %d position %v outside [0, 1]", i, stop.Position),
					"positions are fractions, not percentages")
			}
			checkColorRange(r, collection, path, stop.Color)
		}
	case token.Shadow:
		checkColorRange(r, collection, path, value.Color)
	case token.Border:
		checkColorRange(r, collection, path, value.Color)
	case token.Transition:
		checkBezierRange(r, collection, path, value.Timing)
	case token.Typography:
		if value.FontWeight.Value != 0 && (value.FontWeight.Value < 100 || value.FontWeight.Value > 900) {
			r.Report(collection, path,
				fmt.Sprintf("font weight %d outside 100-900", value.FontWeight.Value), "")
		}
	case token.FontWeight:
		if value.Value < 100 || value.Value > 900 {
			r.Report(collection, path,
				fmt.Sprintf("font weight %d outside 100-900", value.Value), "")
		}
	}
}

func checkColorRange(r *Reporter, collection, path string, c token.Color) {
	for _, channel := range []struct {
		name  string
		value float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}, {"a", c.A}} {
		if !in01(channel.value) {
			r.Report(collection, path,
				fmt.Sprintf("color channel %s=%v outside [0, 1]", channel.name, channel.value),
				"channels are fractions, not bytes")
		}
	}
}

func checkBezierRange(r *Reporter, collection, path string, cb token.CubicBezier) {
	if !in01(cb.X1) || !in01(cb.X2) {
		r.Report(collection, path,
			fmt.Sprintf("cubic bezier x-coordinates (%v, %v) outside [0, 1]", cb.X1, cb.X2),
			"x1 and x2 must stay within the unit interval")
	}
}

func in01(v float64) bool {
	return v >= 0 && v <= 1
}

// enumValidRule errors on values using unrecognized enum members: dimension
// and duration units, border styles, gradient kinds.
func enumValidRule() Rule {
	return Rule{
		ID:              "enum-valid",
		DefaultSeverity: SeverityError,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			theme.WalkTokens(func(collection, mode, path string, t *token.Token) {
				if mode != defaultModeOf(theme, collection) {
					return
				}
				checkEnums(r, collection, path, t.Value)
			})
		},
	}
}

func checkEnums(r *Reporter, collection, path string, v token.Value) {
	switch value := v.(type) {
	case token.Dimension:
		checkUnit(r, collection, path, value)
	case token.Duration:
		if !value.Unit.Valid() {
			r.Report(collection, path,
				fmt.Sprintf("invalid duration unit %q", value.Unit), "use ms or s")
		}
	case token.Border:
		checkUnit(r, collection, path, value.Width)
		if !value.Style.Valid() {
			r.Report(collection, path,
				fmt.Sprintf("invalid border style %q", value.Style), "")
		}
	case token.Gradient:
		if !value.Kind.Valid() {
			r.Report(collection, path,
				fmt.Sprintf("invalid gradient kind %q", value.Kind),
				"use linear, radial or conic")
		}
	case token.Shadow:
		checkUnit(r, collection, path, value.OffsetX)
		checkUnit(r, collection, path, value.OffsetY)
		checkUnit(r, collection, path, value.Blur)
		checkUnit(r, collection, path, value.Spread)
	case token.Typography:
		checkUnit(r, collection, path, value.FontSize)
	}
}

func checkUnit(r *Reporter, collection, path string, d token.Dimension) {
	if !d.Unit.Valid() {
		r.Report(collection, path,
			fmt.Sprintf("invalid dimension unit %q", d.Unit), "")
	}
}

// compositeCompleteRule errors on composite values missing required parts.
func compositeCompleteRule() Rule {
	return Rule{
		ID:              "composite-complete",
		DefaultSeverity: SeverityError,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			theme.WalkTokens(func(collection, mode, path string, t *token.Token) {
				if mode != defaultModeOf(theme, collection) {
					return
				}
				switch value := t.Value.(type) {
				case token.Typography:
					if len(value.FontFamily) == 0 {
						r.Report(collection, path, "typography has no font family", "")
					}
					if value.FontSize.Value <= 0 {
						r.Report(collection, path, "typography has no font size", "")
					}
					if value.LineHeight <= 0 {
						r.Report(collection, path, "typography has no line height", "")
					}
				case token.Gradient:
					if len(value.Stops) < 2 {
						r.Report(collection, path,
							fmt.Sprintf("gradient has %d stops, needs at least 2", len(value.Stops)), "")
					}
				case token.Border:
					if value.Style == "" {
						r.Report(collection, path, "border has no style", "")
					}
				case token.Transition:
					if value.Duration.Unit == "" {
						r.Report(collection, path, "transition has no duration", "")
					}
				case token.FontFamily:
					if len(value) == 0 {
						r.Report(collection, path, "font family stack is empty", "")
					}
				}
			})
		},
	}
}
