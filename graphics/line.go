// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphics

import (
	"fmt"
	"image/color"

	"github.com/gogpu/graphpaper/surface"
)

// bbox is the geometry of shapes given by two opposite corners.
// A line is the degenerate case.
type bbox struct {
	x1, y1 float64
	x2, y2 float64
}

// P1 returns a detached copy of the first point.
func (b *bbox) P1() *Point { return NewPoint(b.x1, b.y1) }

// P2 returns a detached copy of the second point.
func (b *bbox) P2() *Point { return NewPoint(b.x2, b.y2) }

// Center returns the midpoint of the two points.
func (b *bbox) Center() *Point {
	return NewPoint((b.x1+b.x2)/2, (b.y1+b.y2)/2)
}

func (b *bbox) translate(dx, dy float64) {
	b.x1 += dx
	b.y1 += dy
	b.x2 += dx
	b.y2 += dy
}

func (b *bbox) screen(w *Window) (x1, y1, x2, y2 float64) {
	x1, y1 = w.ToScreen(b.x1, b.y1)
	x2, y2 = w.ToScreen(b.x2, b.y2)
	return x1, y1, x2, y2
}

// Line is a segment between two points, optionally with arrowheads.
type Line struct {
	object
	bbox
}

// NewLine returns a detached black line from p1 to p2.
func NewLine(p1, p2 *Point) *Line {
	l := &Line{bbox: bbox{x1: p1.x, y1: p1.y, x2: p2.x, y2: p2.y}}
	l.init(l, OptArrow, OptFill, OptWidth)
	l.cfg.Fill = color.Black
	return l
}

// SetColor sets the color of the line.
func (l *Line) SetColor(c color.Color) {
	l.update(func(cfg *Config) { cfg.Fill = c })
}

// SetWidth sets the stroke width in pixels. Negative widths fail with
// ErrBadOption.
func (l *Line) SetWidth(width float64) error {
	return l.SetOption(OptWidth, width)
}

// SetArrow selects the arrowheads. Values other than the four Arrow
// constants fail with ErrBadOption.
func (l *Line) SetArrow(a Arrow) error {
	if !a.Valid() {
		return badOption("SetArrow", OptArrow, a)
	}
	l.update(func(cfg *Config) { cfg.Arrow = a })
	return nil
}

// Clone implements Shape.
func (l *Line) Clone() Shape {
	other := NewLine(l.P1(), l.P2())
	other.cfg = l.cfg
	return other
}

func (l *Line) String() string {
	return fmt.Sprintf("Line(%s, %s)", point(l.x1, l.y1), point(l.x2, l.y2))
}

func (l *Line) render(w *Window, st surface.Style) surface.ItemID {
	x1, y1, x2, y2 := l.screen(w)
	return w.surf.CreateLine(x1, y1, x2, y2, st)
}
