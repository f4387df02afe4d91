// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphics

import (
	"image/color"

	"github.com/gogpu/graphpaper/surface"
)

// Point is a single world coordinate, drawn as one filled pixel.
type Point struct {
	object
	x, y float64
}

// NewPoint returns a detached point at (x, y).
func NewPoint(x, y float64) *Point {
	p := &Point{x: x, y: y}
	p.init(p, OptOutline, OptFill)
	return p
}

// X returns the x coordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the y coordinate.
func (p *Point) Y() float64 { return p.y }

// SetColor sets the color of the point. A point has one visual property,
// so fill and outline change together.
func (p *Point) SetColor(c color.Color) {
	p.update(func(cfg *Config) {
		cfg.Fill = c
		cfg.Outline = c
	})
}

// Clone implements Shape.
func (p *Point) Clone() Shape { return p.clone() }

func (p *Point) clone() *Point {
	other := NewPoint(p.x, p.y)
	other.cfg = p.cfg
	return other
}

func (p *Point) String() string { return point(p.x, p.y) }

func (p *Point) render(w *Window, st surface.Style) surface.ItemID {
	x, y := w.ToScreen(p.x, p.y)
	return w.surf.CreateRectangle(x, y, x+1, y+1, st)
}

func (p *Point) translate(dx, dy float64) {
	p.x += dx
	p.y += dy
}
