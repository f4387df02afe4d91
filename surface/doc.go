// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the rendering surface a window draws on.
//
// A Surface is an item-based canvas: the caller creates lines, rectangles
// and text once, then moves, restyles or deletes them by ItemID. This keeps
// shapes and windows independent of any windowing toolkit; each toolkit or
// output format gets one Surface adapter.
//
// # Surface Types
//
//   - ImageSurface: rasterizes the display list with gg into an *image.RGBA
//   - Recorder: keeps the display list and a log of calls, renders nothing
//
// # Registry
//
// Backends register a Factory by name:
//
//	surface.Register("svg", 5, newSVGSurface)
//
//	// Later:
//	s, err := surface.NewSurfaceByName("svg", surface.DefaultOptions(800, 600))
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	id := s.CreateRectangle(10, 10, 110, 60, surface.Style{
//	    Fill:    color.RGBA{255, 0, 0, 255},
//	    Outline: color.Black,
//	    Width:   1,
//	})
//	s.Move(id, 20, 0)
//
//	img := s.Snapshot()
package surface
