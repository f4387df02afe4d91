// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphics

import (
	"fmt"
	"image/color"

	"github.com/gogpu/graphpaper/surface"
)

// Rectangle is an axis-aligned box given by two opposite corners.
type Rectangle struct {
	object
	bbox
}

// NewRectangle returns a detached rectangle with a black outline and no
// fill.
func NewRectangle(p1, p2 *Point) *Rectangle {
	r := &Rectangle{bbox: bbox{x1: p1.x, y1: p1.y, x2: p2.x, y2: p2.y}}
	r.init(r, OptOutline, OptWidth, OptFill)
	return r
}

// SetFill sets the interior color; nil removes the fill.
func (r *Rectangle) SetFill(c color.Color) {
	r.update(func(cfg *Config) { cfg.Fill = c })
}

// SetOutline sets the border color; nil removes the border.
func (r *Rectangle) SetOutline(c color.Color) {
	r.update(func(cfg *Config) { cfg.Outline = c })
}

// SetWidth sets the border width in pixels.
func (r *Rectangle) SetWidth(width float64) error {
	return r.SetOption(OptWidth, width)
}

// Clone implements Shape.
func (r *Rectangle) Clone() Shape {
	other := NewRectangle(r.P1(), r.P2())
	other.cfg = r.cfg
	return other
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%s, %s)", point(r.x1, r.y1), point(r.x2, r.y2))
}

func (r *Rectangle) render(w *Window, st surface.Style) surface.ItemID {
	x1, y1, x2, y2 := r.screen(w)
	return w.surf.CreateRectangle(x1, y1, x2, y2, st)
}
