// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image/color"
)

// ItemID identifies an item on a surface.
// The zero value never names a live item.
type ItemID uint32

// Kind identifies the geometry of an item.
type Kind uint8

const (
	// KindLine is a straight segment between two points.
	KindLine Kind = iota + 1

	// KindRectangle is an axis-aligned box given by two opposite corners.
	KindRectangle

	// KindText is a string anchored at one point.
	KindText
)

var kindNames = [...]string{
	KindLine:      "Line",
	KindRectangle: "Rectangle",
	KindText:      "Text",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Arrow selects which ends of a line carry an arrowhead.
type Arrow uint8

const (
	// ArrowNone draws no arrowheads.
	ArrowNone Arrow = iota

	// ArrowFirst draws an arrowhead at the first point.
	ArrowFirst

	// ArrowLast draws an arrowhead at the last point.
	ArrowLast

	// ArrowBoth draws arrowheads at both ends.
	ArrowBoth
)

var arrowNames = [...]string{
	ArrowNone:  "none",
	ArrowFirst: "first",
	ArrowLast:  "last",
	ArrowBoth:  "both",
}

// String returns the option spelling of the arrow mode.
func (a Arrow) String() string {
	if int(a) < len(arrowNames) {
		return arrowNames[a]
	}
	return fmt.Sprintf("Arrow(%d)", a)
}

// Valid reports whether a is one of the defined arrow modes.
func (a Arrow) Valid() bool {
	return a <= ArrowBoth
}

// Justify controls horizontal alignment of text around its anchor.
type Justify uint8

const (
	// JustifyCenter centers text on the anchor.
	JustifyCenter Justify = iota

	// JustifyLeft starts text at the anchor.
	JustifyLeft

	// JustifyRight ends text at the anchor.
	JustifyRight
)

var justifyNames = [...]string{
	JustifyCenter: "center",
	JustifyLeft:   "left",
	JustifyRight:  "right",
}

// String returns the option spelling of the justification.
func (j Justify) String() string {
	if int(j) < len(justifyNames) {
		return justifyNames[j]
	}
	return fmt.Sprintf("Justify(%d)", j)
}

// FontStyle is the weight/slant of a font.
type FontStyle uint8

const (
	// StyleNormal is the upright regular weight.
	StyleNormal FontStyle = iota

	// StyleBold is the bold weight.
	StyleBold

	// StyleItalic is the italic slant.
	StyleItalic

	// StyleBoldItalic is bold and italic.
	StyleBoldItalic
)

var fontStyleNames = [...]string{
	StyleNormal:     "normal",
	StyleBold:       "bold",
	StyleItalic:     "italic",
	StyleBoldItalic: "bold italic",
}

// String returns the option spelling of the style.
func (s FontStyle) String() string {
	if int(s) < len(fontStyleNames) {
		return fontStyleNames[s]
	}
	return fmt.Sprintf("FontStyle(%d)", s)
}

// Valid reports whether s is one of the defined styles.
func (s FontStyle) Valid() bool {
	return s <= StyleBoldItalic
}

// Font is a (family, size, style) triple.
type Font struct {
	Family string
	Size   int
	Style  FontStyle
}

// DefaultFont is the font used by text items that do not set one.
var DefaultFont = Font{Family: "helvetica", Size: 12, Style: StyleNormal}

// String formats the font the way Tk spells a font triple.
func (f Font) String() string {
	return fmt.Sprintf("(%s, %d, %s)", f.Family, f.Size, f.Style)
}

// Style holds the visual attributes of an item.
// Fields irrelevant to an item's Kind are ignored by surfaces.
type Style struct {
	// Fill is the interior color; nil means no fill.
	// For lines and text it is the drawing color.
	Fill color.Color

	// Outline is the border color of rectangles; nil means no border.
	Outline color.Color

	// Width is the stroke width in pixels.
	Width float64

	// Arrow selects arrowheads on lines.
	Arrow Arrow

	// Text is the string drawn by text items.
	Text string

	// Justify aligns text around its anchor.
	Justify Justify

	// Font selects the text face.
	Font Font
}

// DefaultStyle returns the style an item gets when nothing is configured.
func DefaultStyle() Style {
	return Style{
		Outline: color.Black,
		Width:   1,
		Font:    DefaultFont,
	}
}

// Point is a position in surface (pixel) coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// BackgroundColor is the initial background color.
	// Default: white
	BackgroundColor color.Color
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:           width,
		Height:          height,
		BackgroundColor: color.White,
	}
}
