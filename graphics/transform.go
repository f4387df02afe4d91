// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphics

import "fmt"

// Transform maps world coordinates onto the pixels of a window.
//
// The world rectangle (xlow, ylow)-(xhigh, yhigh) covers the window with
// (xlow, ylow) at the lower-left pixel (0, h-1) and (xhigh, yhigh) at the
// upper-right pixel (w-1, 0). World y grows upward, screen y downward.
//
// A Transform is immutable.
type Transform struct {
	xbase, ybase   float64
	xscale, yscale float64
}

// NewTransform returns the transform for a w x h pixel window showing the
// given world rectangle. Both dimensions must exceed one pixel and both
// spans must be non-zero.
func NewTransform(w, h int, xlow, ylow, xhigh, yhigh float64) (*Transform, error) {
	if w <= 1 || h <= 1 {
		return nil, &OptionError{Op: "NewTransform", Value: fmt.Sprintf("%dx%d", w, h), Err: ErrBadOption}
	}
	xspan := xhigh - xlow
	yspan := yhigh - ylow
	if xspan == 0 || yspan == 0 {
		return nil, &OptionError{Op: "NewTransform", Value: fmt.Sprintf("span %gx%g", xspan, yspan), Err: ErrBadOption}
	}
	return &Transform{
		xbase:  xlow,
		ybase:  yhigh,
		xscale: xspan / float64(w-1),
		yscale: yspan / float64(h-1),
	}, nil
}

// Screen converts world (x, y) to the nearest pixel.
func (t *Transform) Screen(x, y float64) (int, int) {
	xs := (x - t.xbase) / t.xscale
	ys := (t.ybase - y) / t.yscale
	return int(xs + 0.5), int(ys + 0.5)
}

// World converts pixel (xs, ys) to world coordinates.
func (t *Transform) World(xs, ys float64) (float64, float64) {
	x := xs*t.xscale + t.xbase
	y := t.ybase - ys*t.yscale
	return x, y
}

// Scale returns the world units per pixel along each axis.
func (t *Transform) Scale() (xscale, yscale float64) {
	return t.xscale, t.yscale
}

// delta converts a world-space translation into pixels.
func (t *Transform) delta(dx, dy float64) (float64, float64) {
	return dx / t.xscale, -dy / t.yscale
}
