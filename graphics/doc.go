// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package graphics is a retained-mode drawing layer: windows showing
// shapes in world coordinates, with polled mouse and keyboard input.
//
// # Overview
//
// A Window is opened on a display.Display and draws on a surface.Surface.
// Shapes (Point, Line, Rectangle, Text) keep their geometry and a Config
// record; once drawn they own one surface item and every change to the
// shape is re-applied to it.
//
//	d, _ := display.New()
//	win, _ := graphics.NewWindow(d, "demo", 200, 200)
//	_ = win.SetCoords(0, 0, 10, 10)
//
//	c := graphics.NewRectangle(graphics.NewPoint(2, 2), graphics.NewPoint(8, 8))
//	c.SetFill(graphics.ColorRGB(255, 0, 0))
//	_ = c.Draw(win)
//
//	p, err := win.GetMouse(ctx)
//
// # Coordinates
//
// Without SetCoords, world coordinates are pixels with the origin at the
// top-left and y growing downward. SetCoords installs a Transform; world y
// then grows upward and all shapes are redrawn under the new mapping.
//
// # Errors
//
// Operations on a closed window fail with ErrClosedWindow, drawing a shape
// that is already shown fails with ErrAlreadyDrawn, and configuration
// changes fail with ErrUnsupportedOption or ErrBadOption wrapped in an
// *OptionError.
package graphics
