/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Type is the canonical type tag of a token.
type Type string

const (
	TypeColor       Type = "color"
	TypeDimension   Type = "dimension"
	TypeDuration    Type = "duration"
	TypeFontFamily  Type = "fontFamily"
	TypeFontWeight  Type = "fontWeight"
	TypeNumber      Type = "number"
	TypeString      Type = "string"
	TypeCubicBezier Type = "cubicBezier"
	TypeTypography  Type = "typography"
	TypeShadow      Type = "shadow"
	TypeBorder      Type = "border"
	TypeGradient    Type = "gradient"
	TypeTransition  Type = "transition"
)

// Value is the closed set of canonical token values. Exactly the types in
// this package implement it; a token's value is always one of them or a
// Reference.
type Value interface {
	isValue()
}

// Color is the canonical color value: RGBA with all channels in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Unit is a dimension unit.
type Unit string

const (
	UnitPx  Unit = "px"
	UnitRem Unit = "rem"
	UnitEm  Unit = "em"
	UnitPct Unit = "%"
	UnitVh  Unit = "vh"
	UnitVw  Unit = "vw"
	UnitPt  Unit = "pt"
)

// Units is the closed set of recognized dimension units.
var Units = map[Unit]bool{
	UnitPx:  true,
	UnitRem: true,
	UnitEm:  true,
	UnitPct: true,
	UnitVh:  true,
	UnitVw:  true,
	UnitPt:  true,
}

// Valid reports whether u is a recognized dimension unit.
func (u Unit) Valid() bool { return Units[u] }

// Dimension is a length with a unit.
type Dimension struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// DurationUnit is a duration unit, milliseconds or seconds.
type DurationUnit string

const (
	UnitMs DurationUnit = "ms"
	UnitS  DurationUnit = "s"
)

// Valid reports whether u is a recognized duration unit.
func (u DurationUnit) Valid() bool { return u == UnitMs || u == UnitS }

// Duration is a time span with a unit.
type Duration struct {
	Value float64      `json:"value"`
	Unit  DurationUnit `json:"unit"`
}

// Milliseconds returns the duration normalized to milliseconds.
func (d Duration) Milliseconds() float64 {
	if d.Unit == UnitS {
		return d.Value * 1000
	}
	return d.Value
}

// FontWeightKeywords maps CSS font weight keywords to their numeric values.
var FontWeightKeywords = map[string]int{
	"thin":       100,
	"extralight": 200,
	"light":      300,
	"normal":     400,
	"regular":    400,
	"medium":     500,
	"semibold":   600,
	"bold":       700,
	"extrabold":  800,
	"black":      900,
	"heavy":      900,
}

// FontWeight is a numeric weight in 100-900. Keyword preserves the source
// spelling when the weight was given as a keyword.
type FontWeight struct {
	Value   int    `json:"value"`
	Keyword string `json:"keyword,omitempty"`
}

// FontFamily is an ordered font stack, most preferred first.
type FontFamily []string

// Number is a bare unitless number.
type Number float64

// String is a plain string value, the fallback for anything no other
// handler claims.
type String string

// CubicBezier is an easing curve. X1 and X2 must stay in [0, 1].
type CubicBezier struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Typography is a composite text style.
type Typography struct {
	FontFamily    FontFamily `json:"fontFamily"`
	FontSize      Dimension  `json:"fontSize"`
	FontWeight    FontWeight `json:"fontWeight"`
	LineHeight    float64    `json:"lineHeight"`
	LetterSpacing *Dimension `json:"letterSpacing,omitempty"`
}

// Shadow is a single drop or inner shadow.
type Shadow struct {
	OffsetX Dimension `json:"offsetX"`
	OffsetY Dimension `json:"offsetY"`
	Blur    Dimension `json:"blur"`
	Spread  Dimension `json:"spread"`
	Color   Color     `json:"color"`
	Inset   bool      `json:"inset,omitempty"`
}

// BorderStyle is a CSS border line style.
type BorderStyle string

// BorderStyles is the closed set of recognized border styles.
var BorderStyles = map[BorderStyle]bool{
	"solid":  true,
	"dashed": true,
	"dotted": true,
	"double": true,
	"groove": true,
	"ridge":  true,
	"inset":  true,
	"outset": true,
	"none":   true,
}

// Valid reports whether s is a recognized border style.
func (s BorderStyle) Valid() bool { return BorderStyles[s] }

// Border is a composite border value.
type Border struct {
	Width Dimension   `json:"width"`
	Style BorderStyle `json:"style"`
	Color Color       `json:"color"`
}

// GradientKind is the geometric family of a gradient.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
	GradientConic  GradientKind = "conic"
)

// Valid reports whether k is a recognized gradient kind.
func (k GradientKind) Valid() bool {
	return k == GradientLinear || k == GradientRadial || k == GradientConic
}

// GradientStop is one color stop. Position is a fraction in [0, 1].
type GradientStop struct {
	Color    Color   `json:"color"`
	Position float64 `json:"position"`
}

// Gradient is a composite gradient value. Angle is in degrees and only
// meaningful for linear and conic gradients.
type Gradient struct {
	Kind  GradientKind   `json:"kind"`
	Angle float64        `json:"angle,omitempty"`
	Stops []GradientStop `json:"stops"`
}

// Transition is a composite animation timing value.
type Transition struct {
	Duration Duration    `json:"duration"`
	Timing   CubicBezier `json:"timing"`
	Delay    Duration    `json:"delay,omitempty"`
}

func (Color) isValue()       {}
func (Dimension) isValue()   {}
func (Duration) isValue()    {}
func (FontWeight) isValue()  {}
func (FontFamily) isValue()  {}
func (Number) isValue()      {}
func (String) isValue()      {}
func (CubicBezier) isValue() {}
func (Typography) isValue()  {}
func (Shadow) isValue()      {}
func (Border) isValue()      {}
func (Gradient) isValue()    {}
func (Transition) isValue()  {}
