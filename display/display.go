// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gogpu/graphpaper/internal/logging"
	"github.com/gogpu/graphpaper/surface"
)

// Errors returned by Display and backends.
var (
	// ErrClosed is returned when a closed display or host is used.
	ErrClosed = errors.New("display: display is closed")

	// ErrSingleWindow is returned by backends that can show only one
	// window per process when a second one is requested.
	ErrSingleWindow = errors.New("display: backend supports a single window")
)

// EventKind identifies an input event.
type EventKind uint8

const (
	// EventClick is a primary mouse button press at (X, Y) pixels.
	EventClick EventKind = iota + 1

	// EventKey is a key press named by Key.
	EventKey

	// EventClose is a close request from the user.
	EventClose
)

var eventKindNames = [...]string{
	EventClick: "click",
	EventKey:   "key",
	EventClose: "close",
}

// String returns the string representation of an EventKind.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is one input event in window pixel coordinates.
type Event struct {
	Kind EventKind
	X, Y int
	Key  string
}

// Click returns a click event at (x, y).
func Click(x, y int) Event { return Event{Kind: EventClick, X: x, Y: y} }

// Key returns a key press event for the given key symbol.
func Key(sym string) Event { return Event{Kind: EventKey, Key: sym} }

// CloseRequest returns a close event.
func CloseRequest() Event { return Event{Kind: EventClose} }

// Handler receives the events of one window.
type Handler interface {
	HandleEvent(ev Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ev Event)

// HandleEvent calls f(ev).
func (f HandlerFunc) HandleEvent(ev Event) { f(ev) }

// HostConfig describes a native window to open.
type HostConfig struct {
	Title   string
	Width   int
	Height  int
	Surface surface.Surface
}

// Host is one native window.
type Host interface {
	// Surface returns the surface shown in the window.
	Surface() surface.Surface

	// Present makes the current surface contents visible.
	Present() error

	// Poll drains the input events received since the last call.
	Poll() []Event

	// Close removes the native window. Close is idempotent.
	Close() error
}

// Backend opens native windows.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string

	// Open creates a window showing cfg.Surface.
	Open(cfg HostConfig) (Host, error)

	// Close releases backend resources. Hosts are closed first by Display.
	Close() error
}

type window struct {
	host    Host
	handler Handler
}

// Display owns a backend and the windows opened on it. It replaces a
// process-wide root window: every Window holds the Display it was
// opened on, and Update pumps input for all of them.
//
// Display is not safe for concurrent use.
type Display struct {
	backend     Backend
	surfaceName string
	background  color.Color

	windows []*window

	lastUpdate time.Time
	now        func() time.Time
	sleep      func(time.Duration)

	closed bool
}

// New creates a display. Without WithBackend it uses a Headless backend.
func New(opts ...Option) (*Display, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		o.backend = NewHeadless()
	}

	d := &Display{
		backend:     o.backend,
		surfaceName: o.surfaceName,
		background:  o.background,
		now:         o.now,
		sleep:       o.sleep,
	}
	d.lastUpdate = d.now()
	logging.Logger().Debug("display: created", "backend", d.backend.Name(), "surface", d.surfaceName)
	return d, nil
}

// Backend returns the backend the display drives.
func (d *Display) Backend() Backend { return d.backend }

// Open creates a surface from the configured surface backend and opens a
// native window showing it. Events for the window go to h.
func (d *Display) Open(title string, width, height int, h Handler) (Host, error) {
	if d.closed {
		return nil, ErrClosed
	}
	opts := surface.DefaultOptions(width, height)
	if d.background != nil {
		opts.BackgroundColor = d.background
	}
	var (
		s   surface.Surface
		err error
	)
	if d.surfaceName == "" {
		s, err = surface.NewSurface(opts)
	} else {
		s, err = surface.NewSurfaceByName(d.surfaceName, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("display: create surface: %w", err)
	}

	host, err := d.backend.Open(HostConfig{Title: title, Width: width, Height: height, Surface: s})
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("display: open %q: %w", title, err)
	}
	if h == nil {
		h = HandlerFunc(func(Event) {})
	}
	d.windows = append(d.windows, &window{host: host, handler: h})

	logging.Logger().Info("display: window opened", "title", title, "width", width, "height", height)
	return host, nil
}

// Release closes a host and stops delivering its events. The host's
// surface is closed too.
func (d *Display) Release(host Host) error {
	for i, w := range d.windows {
		if w.host == host {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			break
		}
	}
	err := host.Close()
	if serr := host.Surface().Close(); err == nil {
		err = serr
	}
	return err
}

// Closed reports whether Close was called.
func (d *Display) Closed() bool { return d.closed }

// Windows returns the number of open windows.
func (d *Display) Windows() int { return len(d.windows) }

// Update presents every window and dispatches pending input events.
func (d *Display) Update() error {
	if d.closed {
		return ErrClosed
	}
	var errs []error

	// Handlers may release windows, so iterate over a copy.
	windows := append([]*window(nil), d.windows...)
	for _, w := range windows {
		if err := w.host.Present(); err != nil {
			logging.Logger().Warn("display: present failed", "err", err)
			errs = append(errs, err)
		}
		for _, ev := range w.host.Poll() {
			w.handler.HandleEvent(ev)
		}
	}
	d.lastUpdate = d.now()
	return errors.Join(errs...)
}

// UpdateRate is Update paced to at most rate calls per second: it sleeps
// for whatever is left of 1/rate since the previous paced update. A rate
// of zero or less behaves like Update.
func (d *Display) UpdateRate(rate float64) error {
	if rate > 0 {
		period := time.Duration(float64(time.Second) / rate)
		if pause := period - d.now().Sub(d.lastUpdate); pause > 0 {
			d.sleep(pause)
		}
	}
	return d.Update()
}

// Close sends a close event to every window, releases the windows and
// closes the backend. Close is idempotent.
func (d *Display) Close() error {
	if d.closed {
		return nil
	}
	var errs []error
	for len(d.windows) > 0 {
		w := d.windows[0]
		// Handlers see the close first; most release the host themselves.
		w.handler.HandleEvent(CloseRequest())
		if len(d.windows) > 0 && d.windows[0] == w {
			if err := d.Release(w.host); err != nil {
				errs = append(errs, err)
			}
		}
	}
	d.closed = true
	if err := d.backend.Close(); err != nil {
		errs = append(errs, err)
	}
	logging.Logger().Debug("display: closed", "backend", d.backend.Name())
	return errors.Join(errs...)
}
