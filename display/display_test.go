// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/graphpaper/surface"
)

func newTestDisplay(t *testing.T, opts ...Option) (*Display, *Headless) {
	t.Helper()
	hb := NewHeadless()
	d, err := New(append([]Option{WithBackend(hb), WithSurfaceBackend("recorder")}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d, hb
}

func TestNewDefaultsToHeadless(t *testing.T) {
	d, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer d.Close()

	if got := d.Backend().Name(); got != "headless" {
		t.Errorf("Backend().Name() = %q, want %q", got, "headless")
	}
}

func TestOpenCreatesSurface(t *testing.T) {
	d, hb := newTestDisplay(t, WithBackground(color.RGBA{R: 10, G: 20, B: 30, A: 255}))

	host, err := d.Open("demo", 40, 30, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if d.Windows() != 1 {
		t.Errorf("Windows() = %d, want 1", d.Windows())
	}
	s := host.Surface()
	if s.Width() != 40 || s.Height() != 30 {
		t.Errorf("surface size = %dx%d, want 40x30", s.Width(), s.Height())
	}
	if _, ok := s.(*surface.Recorder); !ok {
		t.Errorf("surface type = %T, want *surface.Recorder", s)
	}
	if got := hb.Last().Title(); got != "demo" {
		t.Errorf("Title() = %q, want %q", got, "demo")
	}
	got := s.Snapshot().RGBAAt(0, 0)
	if want := (color.RGBA{R: 10, G: 20, B: 30, A: 255}); got != want {
		t.Errorf("background = %v, want %v", got, want)
	}
}

func TestOpenUnknownSurface(t *testing.T) {
	d, _ := newTestDisplay(t, WithSurfaceBackend("nope"))

	_, err := d.Open("demo", 10, 10, nil)
	var nf *surface.BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Open() error = %v, want BackendNotFoundError", err)
	}
	if nf.Name != "nope" {
		t.Errorf("Name = %q, want %q", nf.Name, "nope")
	}
}

func TestUpdateDispatchesEvents(t *testing.T) {
	d, hb := newTestDisplay(t)

	var got []Event
	if _, err := d.Open("a", 10, 10, HandlerFunc(func(ev Event) { got = append(got, ev) })); err != nil {
		t.Fatal(err)
	}
	h := hb.Last()
	h.Inject(Click(3, 4))
	h.Inject(Key("a"))

	if err := d.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	want := []Event{Click(3, 4), Key("a")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if h.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", h.Frames())
	}

	// Nothing pending: the handler is not called again.
	got = nil
	if err := d.Update(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("second Update delivered %v", got)
	}
}

func TestScheduledEvents(t *testing.T) {
	d, hb := newTestDisplay(t)

	var got []Event
	if _, err := d.Open("a", 10, 10, HandlerFunc(func(ev Event) { got = append(got, ev) })); err != nil {
		t.Fatal(err)
	}
	hb.Last().After(2, CloseRequest())

	for i := 0; i < 2; i++ {
		_ = d.Update()
		if len(got) != 0 {
			t.Fatalf("Update %d delivered %v early", i, got)
		}
	}
	_ = d.Update()
	if len(got) != 1 || got[0].Kind != EventClose {
		t.Errorf("events = %v, want one close", got)
	}
}

func TestHandlerMayRelease(t *testing.T) {
	d, hb := newTestDisplay(t)

	var host Host
	host, err := d.Open("a", 10, 10, HandlerFunc(func(ev Event) {
		if ev.Kind == EventClose {
			_ = d.Release(host)
		}
	}))
	if err != nil {
		t.Fatal(err)
	}
	hb.Last().Inject(CloseRequest())

	if err := d.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if d.Windows() != 0 {
		t.Errorf("Windows() = %d, want 0", d.Windows())
	}
	if !hb.Last().Closed() {
		t.Error("host not closed")
	}
	if !host.Surface().(*surface.Recorder).Closed() {
		t.Error("surface not closed")
	}
}

func TestUpdateRate(t *testing.T) {
	now := time.Unix(0, 0)
	var slept []time.Duration
	clock := func() time.Time { return now }
	sleep := func(dt time.Duration) {
		slept = append(slept, dt)
		now = now.Add(dt)
	}
	d, _ := newTestDisplay(t, WithClock(clock, sleep))

	now = now.Add(30 * time.Millisecond)
	if err := d.UpdateRate(10); err != nil {
		t.Fatal(err)
	}
	now = now.Add(150 * time.Millisecond)
	if err := d.UpdateRate(10); err != nil {
		t.Fatal(err)
	}
	if err := d.UpdateRate(0); err != nil {
		t.Fatal(err)
	}

	want := []time.Duration{70 * time.Millisecond}
	if diff := cmp.Diff(want, slept); diff != "" {
		t.Errorf("sleeps mismatch (-want +got):\n%s", diff)
	}
}

func TestClose(t *testing.T) {
	hb := NewHeadless()
	d, _ := New(WithBackend(hb), WithSurfaceBackend("recorder"))
	if _, err := d.Open("a", 10, 10, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Open("b", 10, 10, nil); err != nil {
		t.Fatal(err)
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := d.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	for _, h := range hb.Hosts() {
		if !h.Closed() {
			t.Errorf("host %q still open", h.Title())
		}
	}
	if _, err := d.Open("c", 10, 10, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Open() after Close error = %v, want ErrClosed", err)
	}
	if err := d.Update(); !errors.Is(err, ErrClosed) {
		t.Errorf("Update() after Close error = %v, want ErrClosed", err)
	}
	if _, err := hb.Open(HostConfig{}); !errors.Is(err, ErrClosed) {
		t.Errorf("backend Open() after Close error = %v, want ErrClosed", err)
	}
}

func TestCloseNotifiesHandlers(t *testing.T) {
	d, _ := New(WithSurfaceBackend("recorder"))

	var got []Event
	if _, err := d.Open("a", 10, 10, HandlerFunc(func(ev Event) { got = append(got, ev) })); err != nil {
		t.Fatal(err)
	}
	// A handler that releases its own host, as graphics.Window does.
	var self Host
	released := 0
	self, err := d.Open("b", 10, 10, HandlerFunc(func(ev Event) {
		if ev.Kind == EventClose {
			released++
			_ = d.Release(self)
		}
	}))
	if err != nil {
		t.Fatal(err)
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if diff := cmp.Diff([]Event{CloseRequest()}, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if released != 1 {
		t.Errorf("self-releasing handler called %d times, want 1", released)
	}
	if !d.Closed() || d.Windows() != 0 {
		t.Errorf("Closed() = %v, Windows() = %d", d.Closed(), d.Windows())
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		k    EventKind
		want string
	}{
		{EventClick, "click"},
		{EventKey, "key"},
		{EventClose, "close"},
		{EventKind(0), "EventKind(0)"},
		{EventKind(9), "EventKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
