// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"github.com/gogpu/graphpaper/surface"
)

// Headless is a Backend without native windows. Input is scripted with
// the HeadlessHost injection methods, which makes it the backend for
// tests and for batch rendering to PNG.
type Headless struct {
	hosts  []*HeadlessHost
	closed bool
}

// NewHeadless creates a headless backend.
func NewHeadless() *Headless {
	return &Headless{}
}

// Name implements Backend.
func (b *Headless) Name() string { return "headless" }

// Open implements Backend.
func (b *Headless) Open(cfg HostConfig) (Host, error) {
	if b.closed {
		return nil, ErrClosed
	}
	h := &HeadlessHost{title: cfg.Title, surf: cfg.Surface}
	b.hosts = append(b.hosts, h)
	return h, nil
}

// Close implements Backend.
func (b *Headless) Close() error {
	b.closed = true
	return nil
}

// Hosts returns every host opened on the backend, including closed ones.
func (b *Headless) Hosts() []*HeadlessHost {
	return append([]*HeadlessHost(nil), b.hosts...)
}

// Last returns the most recently opened host, or nil.
func (b *Headless) Last() *HeadlessHost {
	if len(b.hosts) == 0 {
		return nil
	}
	return b.hosts[len(b.hosts)-1]
}

type scheduled struct {
	ev    Event
	after int
}

// HeadlessHost is a window of the Headless backend.
type HeadlessHost struct {
	title   string
	surf    surface.Surface
	pending []scheduled
	frames  int
	polls   int
	closed  bool
}

// Surface implements Host.
func (h *HeadlessHost) Surface() surface.Surface { return h.surf }

// Title returns the window title.
func (h *HeadlessHost) Title() string { return h.title }

// Present implements Host. It only counts frames; callers read pixels
// through the surface.
func (h *HeadlessHost) Present() error {
	if h.closed {
		return ErrClosed
	}
	h.frames++
	return nil
}

// Frames returns how many times Present succeeded.
func (h *HeadlessHost) Frames() int { return h.frames }

// Polls returns how many times Poll was called.
func (h *HeadlessHost) Polls() int { return h.polls }

// Poll implements Host. An event scheduled with After n is returned by
// the (n+1)th Poll after it was scheduled.
func (h *HeadlessHost) Poll() []Event {
	h.polls++
	if len(h.pending) == 0 {
		return nil
	}
	var (
		out  []Event
		keep = h.pending[:0]
	)
	for _, s := range h.pending {
		if s.after > 0 {
			s.after--
			keep = append(keep, s)
			continue
		}
		out = append(out, s.ev)
	}
	h.pending = keep
	return out
}

// Inject queues ev for the next Poll.
func (h *HeadlessHost) Inject(ev Event) {
	h.After(0, ev)
}

// After queues ev to be delivered once n further polls have passed.
func (h *HeadlessHost) After(n int, ev Event) {
	h.pending = append(h.pending, scheduled{ev: ev, after: n})
}

// Close implements Host.
func (h *HeadlessHost) Close() error {
	h.closed = true
	h.pending = nil
	return nil
}

// Closed reports whether the host was closed.
func (h *HeadlessHost) Closed() bool { return h.closed }
