// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/graphpaper/surface"
)

// Style values shared with the surface layer.
type (
	Arrow     = surface.Arrow
	Justify   = surface.Justify
	FontStyle = surface.FontStyle
	Font      = surface.Font
)

// Arrow modes.
const (
	ArrowNone  = surface.ArrowNone
	ArrowFirst = surface.ArrowFirst
	ArrowLast  = surface.ArrowLast
	ArrowBoth  = surface.ArrowBoth
)

// Text justifications.
const (
	JustifyCenter = surface.JustifyCenter
	JustifyLeft   = surface.JustifyLeft
	JustifyRight  = surface.JustifyRight
)

// Font styles.
const (
	StyleNormal     = surface.StyleNormal
	StyleBold       = surface.StyleBold
	StyleItalic     = surface.StyleItalic
	StyleBoldItalic = surface.StyleBoldItalic
)

// Text size limits accepted by SetSize.
const (
	MinFontSize = 5
	MaxFontSize = 36
)

// Option names one configurable property of a shape.
type Option uint8

const (
	OptFill Option = iota + 1
	OptOutline
	OptWidth
	OptArrow
	OptText
	OptJustify
	OptFont
)

var optionNames = [...]string{
	OptFill:    "fill",
	OptOutline: "outline",
	OptWidth:   "width",
	OptArrow:   "arrow",
	OptText:    "text",
	OptJustify: "justify",
	OptFont:    "font",
}

func (o Option) String() string {
	if int(o) < len(optionNames) && optionNames[o] != "" {
		return optionNames[o]
	}
	return fmt.Sprintf("Option(%d)", o)
}

// ParseOption returns the option with the given name.
func ParseOption(name string) (Option, error) {
	for o, n := range optionNames {
		if n != "" && n == name {
			return Option(o), nil
		}
	}
	return 0, unsupported("ParseOption", 0, name)
}

// ParseArrow parses "none", "first", "last" or "both".
func ParseArrow(s string) (Arrow, error) {
	for _, a := range []Arrow{ArrowNone, ArrowFirst, ArrowLast, ArrowBoth} {
		if a.String() == s {
			return a, nil
		}
	}
	return ArrowNone, badOption("ParseArrow", OptArrow, s)
}

// ParseJustify parses "center", "left" or "right".
func ParseJustify(s string) (Justify, error) {
	for _, j := range []Justify{JustifyCenter, JustifyLeft, JustifyRight} {
		if j.String() == s {
			return j, nil
		}
	}
	return JustifyCenter, badOption("ParseJustify", OptJustify, s)
}

// ParseStyle parses "normal", "bold", "italic" or "bold italic".
func ParseStyle(s string) (FontStyle, error) {
	for _, st := range []FontStyle{StyleNormal, StyleBold, StyleItalic, StyleBoldItalic} {
		if st.String() == s {
			return st, nil
		}
	}
	return StyleNormal, badOption("ParseStyle", OptFont, s)
}

// Faces returns the font families accepted by SetFace.
func Faces() []string {
	return slices.Clone(surface.Families)
}

func validFace(face string) bool {
	return slices.Contains(surface.Families, face)
}

func validFont(f Font) bool {
	return validFace(f.Family) && f.Size >= MinFontSize && f.Size <= MaxFontSize && f.Style.Valid()
}

// Config is the configuration record of a shape. Only the options legal
// for the shape's variant are populated; the others keep zero values and
// Get reports them as unsupported.
type Config struct {
	legal uint8

	Fill    color.Color // nil means no fill
	Outline color.Color // nil means no outline
	Width   float64
	Arrow   Arrow
	Text    string
	Justify Justify
	Font    Font
}

func newConfig(opts ...Option) Config {
	c := Config{}
	for _, o := range opts {
		c.legal |= 1 << o
		switch o {
		case OptOutline:
			c.Outline = color.Black
		case OptWidth:
			c.Width = 1
		case OptFont:
			c.Font = surface.DefaultFont
		}
	}
	return c
}

// Has reports whether o is legal for the shape.
func (c Config) Has(o Option) bool {
	return o > 0 && int(o) < len(optionNames) && c.legal&(1<<o) != 0
}

// Options returns the legal options in declaration order.
func (c Config) Options() []Option {
	var out []Option
	for o := OptFill; o <= OptFont; o++ {
		if c.Has(o) {
			out = append(out, o)
		}
	}
	return out
}

// Get returns the value of o, or ErrUnsupportedOption when o is not legal
// for the shape.
func (c Config) Get(o Option) (any, error) {
	if !c.Has(o) {
		return nil, unsupported("Get", o, nil)
	}
	switch o {
	case OptFill:
		return c.Fill, nil
	case OptOutline:
		return c.Outline, nil
	case OptWidth:
		return c.Width, nil
	case OptArrow:
		return c.Arrow, nil
	case OptText:
		return c.Text, nil
	case OptJustify:
		return c.Justify, nil
	default:
		return c.Font, nil
	}
}

// set stores v under o, converting option spellings. It reports false
// when v is not a legal value for o.
func (c *Config) set(o Option, v any) bool {
	switch o {
	case OptFill, OptOutline:
		col, ok := toColor(v)
		if !ok {
			return false
		}
		if o == OptFill {
			c.Fill = col
		} else {
			c.Outline = col
		}
	case OptWidth:
		w, ok := toFloat(v)
		if !ok || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return false
		}
		c.Width = w
	case OptArrow:
		switch a := v.(type) {
		case Arrow:
			if !a.Valid() {
				return false
			}
			c.Arrow = a
		case string:
			pa, err := ParseArrow(a)
			if err != nil {
				return false
			}
			c.Arrow = pa
		default:
			return false
		}
	case OptText:
		s, ok := v.(string)
		if !ok {
			return false
		}
		c.Text = s
	case OptJustify:
		switch j := v.(type) {
		case Justify:
			if j > JustifyRight {
				return false
			}
			c.Justify = j
		case string:
			pj, err := ParseJustify(j)
			if err != nil {
				return false
			}
			c.Justify = pj
		default:
			return false
		}
	case OptFont:
		f, ok := v.(Font)
		if !ok || !validFont(f) {
			return false
		}
		c.Font = f
	default:
		return false
	}
	return true
}

// style converts the record into the surface representation.
func (c Config) style() surface.Style {
	return surface.Style{
		Fill:    c.Fill,
		Outline: c.Outline,
		Width:   c.Width,
		Arrow:   c.Arrow,
		Text:    c.Text,
		Justify: c.Justify,
		Font:    c.Font,
	}
}

func toColor(v any) (color.Color, bool) {
	switch c := v.(type) {
	case nil:
		return nil, true
	case color.Color:
		return c, true
	case string:
		col, err := ParseColor(c)
		return col, err == nil
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
