// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitenview shows a display window on the desktop with ebiten.
//
// ebiten must own the main goroutine, so programs hand their drawing code
// to Run, which executes it on a second goroutine while the window loop
// runs on the caller's:
//
//	func main() {
//	    err := ebitenview.Run(func(d *display.Display) error {
//	        win, err := graphics.NewWindow(d, "demo", 320, 200)
//	        ...
//	    })
//	}
//
// Only one window can be open per process.
package ebitenview

import (
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/graphpaper/display"
	"github.com/gogpu/graphpaper/internal/keysym"
	"github.com/gogpu/graphpaper/internal/logging"
	"github.com/gogpu/graphpaper/surface"
)

const (
	// maxQueued bounds the events waiting for the next Display.Update.
	maxQueued = 64

	// presentInterval limits how often Present copies the surface.
	presentInterval = time.Second / 60
)

// Run opens a display on an ebiten backend and calls fn with it on a new
// goroutine. The first window fn opens is shown on the desktop; Run
// returns when fn returns or the window is closed, and yields fn's error.
//
// If fn returns without opening a window, no native window is created.
func Run(fn func(d *display.Display) error, opts ...display.Option) error {
	b := newBackend()
	d, err := display.New(append([]display.Option{display.WithBackend(b)}, opts...)...)
	if err != nil {
		return err
	}

	var fnErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		fnErr = fn(d)
		if err := d.Close(); err != nil {
			logging.Logger().Warn("ebitenview: close display", "err", err)
		}
	}()

	var h *host
	select {
	case h = <-b.opened:
	case <-done:
		return fnErr
	}

	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	g := &game{h: h, done: done}
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	<-done
	return fnErr
}

// Backend implements display.Backend with a single ebiten window.
type Backend struct {
	mu     sync.Mutex
	host   *host
	opened chan *host
	closed bool
}

func newBackend() *Backend {
	return &Backend{opened: make(chan *host, 1)}
}

// Name implements display.Backend.
func (b *Backend) Name() string { return "ebiten" }

// Open implements display.Backend.
func (b *Backend) Open(cfg display.HostConfig) (display.Host, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, display.ErrClosed
	}
	if b.host != nil {
		return nil, display.ErrSingleWindow
	}
	h := &host{
		title:  cfg.Title,
		width:  cfg.Width,
		height: cfg.Height,
		surf:   cfg.Surface,
	}
	b.host = h
	b.opened <- h
	return h, nil
}

// Close implements display.Backend.
func (b *Backend) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	return nil
}

// host is shared between the user goroutine (Present, Poll, Close) and
// the ebiten loop (push, frame).
type host struct {
	title         string
	width, height int
	surf          surface.Surface

	lastPresent time.Time

	mu     sync.Mutex
	events []display.Event
	frame  *image.RGBA
	closed bool
}

func (h *host) Surface() surface.Surface { return h.surf }

func (h *host) Present() error {
	if h.isClosed() {
		return display.ErrClosed
	}
	now := time.Now()
	if now.Sub(h.lastPresent) < presentInterval {
		return nil
	}
	h.lastPresent = now

	snap := h.surf.Snapshot()
	h.mu.Lock()
	h.frame = snap
	h.mu.Unlock()
	return nil
}

func (h *host) Poll() []display.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	ev := h.events
	h.events = nil
	return ev
}

func (h *host) Close() error {
	h.mu.Lock()
	h.closed = true
	h.events = nil
	h.mu.Unlock()
	return nil
}

func (h *host) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

func (h *host) push(ev display.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	if len(h.events) >= maxQueued {
		logging.Logger().Warn("ebitenview: event queue full, dropping", "kind", ev.Kind)
		return
	}
	h.events = append(h.events, ev)
}

func (h *host) currentFrame() *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frame
}

// game adapts a host to ebiten.Game.
type game struct {
	h    *host
	done <-chan struct{}

	img       *ebiten.Image
	shown     *image.RGBA
	keys      []ebiten.Key
	closeSent bool
}

func (g *game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}
	if g.h.isClosed() {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() && !g.closeSent {
		g.closeSent = true
		g.h.push(display.CloseRequest())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.h.push(display.Click(x, y))
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if sym := keysym.FromName(k.String()); sym != "" {
			g.h.push(display.Key(sym))
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.h.width, g.h.height)
	}
	if frame := g.h.currentFrame(); frame != nil && frame != g.shown {
		if len(frame.Pix) == 4*g.h.width*g.h.height {
			g.img.WritePixels(frame.Pix)
		}
		g.shown = frame
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.width, g.h.height
}
