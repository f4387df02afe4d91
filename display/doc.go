// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display owns the connection between windows and a windowing
// backend.
//
// A Display is created explicitly and passed to every window opened on
// it; there is no hidden process-wide root. Display.Update presents every
// window's surface and delivers queued mouse, key and close events to the
// window's Handler. Blocking waits in package graphics are loops over
// Update.
//
// # Backends
//
//   - Headless: no native window; events are injected by the caller
//   - ebitenview: a desktop window driven by ebiten (sub-package)
//
// # Usage
//
//	d, err := display.New()
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//
//	host, err := d.Open("demo", 320, 200, handler)
package display
