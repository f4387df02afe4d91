// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"image/color"
	"time"
)

// Option configures a Display during creation.
//
// Example:
//
//	// Headless display rendering with gg
//	d, _ := display.New()
//
//	// Headless display that only records drawing calls
//	d, _ := display.New(display.WithSurfaceBackend("recorder"))
type Option func(*options)

type options struct {
	backend     Backend
	surfaceName string
	background  color.Color
	now         func() time.Time
	sleep       func(time.Duration)
}

func defaultOptions() options {
	return options{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// WithBackend sets the backend that opens native windows.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithSurfaceBackend selects the surface registry entry windows draw on.
// The default picks the highest-priority registered surface.
func WithSurfaceBackend(name string) Option {
	return func(o *options) {
		o.surfaceName = name
	}
}

// WithBackground sets the initial background color of new surfaces.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithClock replaces time.Now and time.Sleep, for paced updates in tests.
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
		if sleep != nil {
			o.sleep = sleep
		}
	}
}
