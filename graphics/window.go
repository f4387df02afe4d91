// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphics

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"slices"
	"time"

	"github.com/gogpu/graphpaper/display"
	"github.com/gogpu/graphpaper/internal/logging"
	"github.com/gogpu/graphpaper/surface"
)

// DefaultPollInterval is the pause between input polls of GetMouse and
// GetKey.
const DefaultPollInterval = 100 * time.Millisecond

// WindowOption configures a Window during creation.
type WindowOption func(*windowOptions)

type windowOptions struct {
	autoflush    bool
	pollInterval time.Duration
	background   color.Color
}

func defaultWindowOptions() windowOptions {
	return windowOptions{
		autoflush:    true,
		pollInterval: DefaultPollInterval,
	}
}

// WithAutoflush controls whether every drawing operation updates the
// display immediately. It is on by default; with it off, call Flush.
func WithAutoflush(on bool) WindowOption {
	return func(o *windowOptions) {
		o.autoflush = on
	}
}

// WithPollInterval sets the pause between input polls while waiting for
// a click or key. Zero polls without pausing.
func WithPollInterval(d time.Duration) WindowOption {
	return func(o *windowOptions) {
		if d >= 0 {
			o.pollInterval = d
		}
	}
}

// WithBackground sets the initial background color.
func WithBackground(c color.Color) WindowOption {
	return func(o *windowOptions) {
		o.background = c
	}
}

// Window is a top-level window showing shapes.
//
// The window keeps its shapes in draw order, an optional world Transform,
// and the most recent click and key press. Closing is terminal.
//
// Window implements display.Handler; the display it was opened on
// delivers its input events.
type Window struct {
	d     *display.Display
	host  display.Host
	surf  surface.Surface
	title string

	width, height int

	items []Shape
	trans *Transform

	clickX, clickY int
	hasClick       bool
	lastKey        string
	onClick        func(p *Point)

	autoflushOn  bool
	pollInterval time.Duration
	closed       bool
}

// NewWindow opens a window of the given pixel size on d.
func NewWindow(d *display.Display, title string, width, height int, opts ...WindowOption) (*Window, error) {
	if d == nil {
		return nil, errors.New("graphics: nil display")
	}
	if width <= 0 || height <= 0 {
		return nil, &OptionError{Op: "NewWindow", Value: fmt.Sprintf("%dx%d", width, height), Err: ErrBadOption}
	}
	o := defaultWindowOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &Window{
		d:            d,
		title:        title,
		width:        width,
		height:       height,
		autoflushOn:  o.autoflush,
		pollInterval: o.pollInterval,
	}
	host, err := d.Open(title, width, height, w)
	if err != nil {
		return nil, err
	}
	w.host = host
	w.surf = host.Surface()
	if o.background != nil {
		w.surf.SetBackground(o.background)
	}
	w.autoflush()
	return w, nil
}

func (w *Window) String() string {
	if w.closed {
		return "<Closed Window>"
	}
	return fmt.Sprintf("Window('%s', %d, %d)", w.title, w.width, w.height)
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Width returns the width in pixels.
func (w *Window) Width() int { return w.width }

// Height returns the height in pixels.
func (w *Window) Height() int { return w.height }

// Surface returns the surface the window draws on.
func (w *Window) Surface() surface.Surface { return w.surf }

// Items returns the attached shapes in draw order.
func (w *Window) Items() []Shape { return slices.Clone(w.items) }

// IsClosed reports whether the window was closed.
func (w *Window) IsClosed() bool { return w.closed }

// IsOpen reports whether the window is still open.
func (w *Window) IsOpen() bool { return !w.closed }

// Close closes the window and releases its native resources. Shapes keep
// their reference to the window. Close is idempotent.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.hasClick = false
	w.lastKey = ""
	logging.Logger().Info("graphics: window closed", "title", w.title)
	return w.d.Release(w.host)
}

// SetBackground sets the background color.
func (w *Window) SetBackground(c color.Color) error {
	if w.closed {
		return ErrClosedWindow
	}
	w.surf.SetBackground(c)
	w.autoflush()
	return nil
}

// SetCoords installs a world coordinate system running from (x1, y1) at
// the lower-left corner to (x2, y2) at the upper-right corner, then
// redraws every shape under the new mapping.
func (w *Window) SetCoords(x1, y1, x2, y2 float64) error {
	if w.closed {
		return ErrClosedWindow
	}
	t, err := NewTransform(w.width, w.height, x1, y1, x2, y2)
	if err != nil {
		return err
	}
	w.trans = t
	return w.Redraw()
}

// Transform returns the world transform, or nil for pixel coordinates.
func (w *Window) Transform() *Transform { return w.trans }

// Redraw undraws and redraws every shape in draw order.
func (w *Window) Redraw() error {
	if w.closed {
		return ErrClosedWindow
	}
	var errs []error
	for _, s := range slices.Clone(w.items) {
		if err := s.Undraw(); err != nil {
			errs = append(errs, err)
		}
		if err := s.Draw(w); err != nil {
			errs = append(errs, err)
		}
	}
	logging.Logger().Debug("graphics: redraw", "title", w.title, "items", len(w.items))
	w.update()
	return errors.Join(errs...)
}

// Flush makes all drawing visible without processing input.
func (w *Window) Flush() error {
	if w.closed {
		return ErrClosedWindow
	}
	if err := w.surf.Flush(); err != nil {
		return err
	}
	return w.host.Present()
}

// Plot sets world point (x, y) to c. A nil color plots black.
func (w *Window) Plot(x, y float64, c color.Color) error {
	if w.closed {
		return ErrClosedWindow
	}
	xs, ys := w.ToScreen(x, y)
	w.plot(xs, ys, c)
	return nil
}

// PlotPixel sets pixel (x, y) to c regardless of the world coordinates.
func (w *Window) PlotPixel(x, y int, c color.Color) error {
	if w.closed {
		return ErrClosedWindow
	}
	w.plot(float64(x), float64(y), c)
	return nil
}

func (w *Window) plot(x, y float64, c color.Color) {
	if c == nil {
		c = color.Black
	}
	w.surf.CreateLine(x, y, x+1, y, surface.Style{Fill: c, Width: 1})
	w.autoflush()
}

// ToScreen converts world coordinates to pixels. Without a transform the
// coordinates pass through unchanged.
func (w *Window) ToScreen(x, y float64) (float64, float64) {
	if w.trans == nil {
		return x, y
	}
	xs, ys := w.trans.Screen(x, y)
	return float64(xs), float64(ys)
}

// ToWorld converts pixels to world coordinates.
func (w *Window) ToWorld(xs, ys float64) (float64, float64) {
	if w.trans == nil {
		return xs, ys
	}
	return w.trans.World(xs, ys)
}

// SetMouseHandler installs fn to be called for every click with the
// click position in pixels. A nil fn removes the handler.
func (w *Window) SetMouseHandler(fn func(p *Point)) {
	w.onClick = fn
}

// GetMouse waits for a click and returns it in world coordinates. Clicks
// made before the call are discarded. It fails with ErrClosedWindow if the
// window is or becomes closed, and with ctx.Err() if ctx ends first.
func (w *Window) GetMouse(ctx context.Context) (*Point, error) {
	if w.closed {
		return nil, ErrClosedWindow
	}
	w.update()
	w.hasClick = false
	for {
		w.update()
		if w.closed {
			return nil, ErrClosedWindow
		}
		if w.hasClick {
			return w.takeClick(), nil
		}
		if err := w.pause(ctx); err != nil {
			return nil, err
		}
	}
}

// CheckMouse returns the click made since the last check, or nil if
// there was none.
func (w *Window) CheckMouse() (*Point, error) {
	if w.closed {
		return nil, ErrClosedWindow
	}
	w.update()
	if !w.hasClick {
		return nil, nil
	}
	return w.takeClick(), nil
}

func (w *Window) takeClick() *Point {
	x, y := w.ToWorld(float64(w.clickX), float64(w.clickY))
	w.hasClick = false
	return NewPoint(x, y)
}

// GetKey waits for a key press and returns its keysym, such as "a",
// "Return" or "Up".
func (w *Window) GetKey(ctx context.Context) (string, error) {
	if w.closed {
		return "", ErrClosedWindow
	}
	w.lastKey = ""
	for {
		w.update()
		if w.closed {
			return "", ErrClosedWindow
		}
		if key := w.lastKey; key != "" {
			w.lastKey = ""
			return key, nil
		}
		if err := w.pause(ctx); err != nil {
			return "", err
		}
	}
}

// CheckKey returns the last key pressed since the previous check, or ""
// if there was none.
func (w *Window) CheckKey() (string, error) {
	if w.closed {
		return "", ErrClosedWindow
	}
	w.update()
	key := w.lastKey
	w.lastKey = ""
	return key, nil
}

// HandleEvent implements display.Handler.
func (w *Window) HandleEvent(ev display.Event) {
	if w.closed {
		return
	}
	switch ev.Kind {
	case display.EventClick:
		w.clickX, w.clickY = ev.X, ev.Y
		w.hasClick = true
		if w.onClick != nil {
			w.onClick(NewPoint(float64(ev.X), float64(ev.Y)))
		}
	case display.EventKey:
		w.lastKey = ev.Key
	case display.EventClose:
		if err := w.Close(); err != nil {
			logging.Logger().Warn("graphics: close on request", "title", w.title, "err", err)
		}
	}
}

func (w *Window) removeItem(s Shape) {
	if i := slices.Index(w.items, s); i >= 0 {
		w.items = slices.Delete(w.items, i, i+1)
	}
}

// update pumps the display once. A closed display closes the window.
func (w *Window) update() {
	if w.d.Closed() {
		if !w.closed {
			_ = w.Close()
		}
		return
	}
	if err := w.d.Update(); err != nil {
		logging.Logger().Debug("graphics: display update", "err", err)
	}
}

func (w *Window) autoflush() {
	if w.autoflushOn && !w.closed {
		w.update()
	}
}

func (w *Window) pause(ctx context.Context) error {
	if w.pollInterval <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(w.pollInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
