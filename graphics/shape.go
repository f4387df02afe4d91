// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphics

import (
	"fmt"

	"github.com/gogpu/graphpaper/internal/logging"
	"github.com/gogpu/graphpaper/surface"
)

// Shape is a drawable object: a Point, Line, Rectangle or Text.
//
// A shape starts detached. Draw attaches it to one window and renders it;
// Undraw removes it again. A shape may be redrawn after Undraw but is never
// shown in two windows at once.
type Shape interface {
	fmt.Stringer

	// Draw attaches the shape to w and renders it. It fails with
	// ErrAlreadyDrawn when the shape is attached to an open window and
	// with ErrClosedWindow when w is closed.
	Draw(w *Window) error

	// Undraw detaches the shape. It is a no-op on a detached shape and
	// on a shape whose window was closed.
	Undraw() error

	// Move translates the shape by (dx, dy) world units.
	Move(dx, dy float64) error

	// Clone returns a detached copy of the geometry and configuration.
	Clone() Shape

	// Config returns a copy of the configuration record.
	Config() Config

	// SetOption sets one option by name. Options that are not legal for
	// the variant fail with ErrUnsupportedOption.
	SetOption(o Option, v any) error

	// Window returns the window the shape is attached to, or nil.
	Window() *Window

	base() *object
}

// variant is implemented by every concrete shape.
type variant interface {
	Shape

	// render creates the surface item at the current geometry.
	render(w *Window, st surface.Style) surface.ItemID

	// translate moves the stored geometry.
	translate(dx, dy float64)
}

// object is the state shared by every shape.
type object struct {
	cfg  Config
	win  *Window
	id   surface.ItemID
	self variant
}

func (o *object) init(self variant, opts ...Option) {
	o.self = self
	o.cfg = newConfig(opts...)
}

func (o *object) base() *object { return o }

// Config implements Shape.
func (o *object) Config() Config { return o.cfg }

// Window implements Shape.
func (o *object) Window() *Window { return o.win }

// attached reports whether the shape is rendered in an open window.
func (o *object) attached() bool {
	return o.win != nil && !o.win.closed
}

// Draw implements Shape.
func (o *object) Draw(w *Window) error {
	if o.attached() {
		return ErrAlreadyDrawn
	}
	if w == nil || w.closed {
		return ErrClosedWindow
	}
	o.win = w
	o.id = o.self.render(w, o.cfg.style())
	w.items = append(w.items, o.self)
	logging.Logger().Debug("graphics: draw", "shape", o.self.String(), "item", o.id)
	w.autoflush()
	return nil
}

// Undraw implements Shape.
func (o *object) Undraw() error {
	if o.win == nil {
		return nil
	}
	w := o.win
	if !w.closed {
		w.surf.Delete(o.id)
		w.removeItem(o.self)
		w.autoflush()
	}
	o.win = nil
	o.id = 0
	return nil
}

// Move implements Shape.
func (o *object) Move(dx, dy float64) error {
	if o.win != nil && o.win.closed {
		return ErrClosedWindow
	}
	o.self.translate(dx, dy)
	if w := o.win; w != nil {
		sx, sy := dx, dy
		if w.trans != nil {
			sx, sy = w.trans.delta(dx, dy)
		}
		w.surf.Move(o.id, sx, sy)
		w.autoflush()
	}
	return nil
}

// SetOption implements Shape.
func (o *object) SetOption(opt Option, v any) error {
	if !o.cfg.Has(opt) {
		return unsupported("SetOption", opt, v)
	}
	next := o.cfg
	if !next.set(opt, v) {
		return badOption("SetOption", opt, v)
	}
	o.apply(next)
	return nil
}

// apply stores cfg and re-applies it to the rendered item.
func (o *object) apply(cfg Config) {
	o.cfg = cfg
	if o.attached() {
		o.win.surf.Reconfigure(o.id, cfg.style())
		o.win.autoflush()
	}
}

// update changes one legal option through a typed setter.
func (o *object) update(fn func(c *Config)) {
	next := o.cfg
	fn(&next)
	o.apply(next)
}

// point formats world coordinates the way every shape prints them.
func point(x, y float64) string {
	return fmt.Sprintf("Point(%g, %g)", x, y)
}
