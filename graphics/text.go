// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphics

import (
	"fmt"
	"image/color"

	"github.com/gogpu/graphpaper/surface"
)

// Text is a string anchored at a point.
type Text struct {
	object
	anchor *Point
}

// NewText returns detached black text centered on p.
func NewText(p *Point, s string) *Text {
	t := &Text{anchor: p.clone()}
	t.init(t, OptJustify, OptFill, OptText, OptFont)
	t.cfg.Text = s
	t.cfg.Fill = color.Black
	return t
}

// SetTextColor sets the color of the text.
func (t *Text) SetTextColor(c color.Color) {
	t.update(func(cfg *Config) { cfg.Fill = c })
}

// SetText replaces the string.
func (t *Text) SetText(s string) {
	t.update(func(cfg *Config) { cfg.Text = s })
}

// Text returns the string.
func (t *Text) Text() string { return t.cfg.Text }

// Anchor returns a detached copy of the anchor point.
func (t *Text) Anchor() *Point { return t.anchor.clone() }

// Font returns the (family, size, style) triple.
func (t *Text) Font() Font { return t.cfg.Font }

// SetJustify aligns the text around its anchor.
func (t *Text) SetJustify(j Justify) error {
	return t.SetOption(OptJustify, j)
}

// SetFace selects one of the families listed by Faces.
func (t *Text) SetFace(face string) error {
	if !validFace(face) {
		return badOption("SetFace", OptFont, face)
	}
	t.update(func(cfg *Config) { cfg.Font.Family = face })
	return nil
}

// SetSize sets the point size, which must be in [MinFontSize, MaxFontSize].
func (t *Text) SetSize(size int) error {
	if size < MinFontSize || size > MaxFontSize {
		return badOption("SetSize", OptFont, size)
	}
	t.update(func(cfg *Config) { cfg.Font.Size = size })
	return nil
}

// SetStyle sets the weight and slant.
func (t *Text) SetStyle(style FontStyle) error {
	if !style.Valid() {
		return badOption("SetStyle", OptFont, style)
	}
	t.update(func(cfg *Config) { cfg.Font.Style = style })
	return nil
}

// Clone implements Shape.
func (t *Text) Clone() Shape {
	other := NewText(t.anchor, t.cfg.Text)
	other.cfg = t.cfg
	return other
}

func (t *Text) String() string {
	return fmt.Sprintf("Text(%s, '%s')", t.anchor, t.cfg.Text)
}

func (t *Text) render(w *Window, st surface.Style) surface.ItemID {
	x, y := w.ToScreen(t.anchor.x, t.anchor.y)
	return w.surf.CreateText(x, y, st)
}

func (t *Text) translate(dx, dy float64) {
	t.anchor.translate(dx, dy)
}
