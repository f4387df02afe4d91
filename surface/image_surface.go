// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/graphpaper/internal/logging"
)

// ImageSurface is a CPU-based surface that rasterizes its display list
// with a gg.Context.
//
// Mutations only mark the surface dirty; the list is rasterized again on
// the next Flush, Snapshot or PNG encode.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.CreateLine(0, 0, 799, 599, surface.Style{Fill: color.Black, Width: 1})
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int

	dc         *gg.Context
	fonts      *faceCache
	background color.Color
	list       displayList

	// dirty is set when the display list changed since the last render
	dirty bool

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:      width,
		height:     height,
		dc:         gg.NewContext(width, height),
		fonts:      newFaceCache(),
		background: color.White,
		list:       newDisplayList(),
		dirty:      true,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// CreateLine implements Surface.
func (s *ImageSurface) CreateLine(x1, y1, x2, y2 float64, style Style) ItemID {
	return s.add(KindLine, Pt(x1, y1), Pt(x2, y2), style)
}

// CreateRectangle implements Surface.
func (s *ImageSurface) CreateRectangle(x1, y1, x2, y2 float64, style Style) ItemID {
	return s.add(KindRectangle, Pt(x1, y1), Pt(x2, y2), style)
}

// CreateText implements Surface.
func (s *ImageSurface) CreateText(x, y float64, style Style) ItemID {
	return s.add(KindText, Pt(x, y), Point{}, style)
}

func (s *ImageSurface) add(kind Kind, p1, p2 Point, style Style) ItemID {
	if s.closed {
		return 0
	}
	s.dirty = true
	return s.list.add(kind, p1, p2, style)
}

// Delete implements Surface.
func (s *ImageSurface) Delete(id ItemID) {
	if s.closed {
		return
	}
	if s.list.remove(id) {
		s.dirty = true
	}
}

// Reconfigure implements Surface.
func (s *ImageSurface) Reconfigure(id ItemID, style Style) {
	if s.closed {
		return
	}
	if it, ok := s.list.get(id); ok {
		it.Style = style
		s.dirty = true
	}
}

// Move implements Surface.
func (s *ImageSurface) Move(id ItemID, dx, dy float64) {
	if s.closed {
		return
	}
	if it, ok := s.list.get(id); ok {
		it.P1 = it.P1.Add(dx, dy)
		it.P2 = it.P2.Add(dx, dy)
		s.dirty = true
	}
}

// SetBackground implements Surface.
func (s *ImageSurface) SetBackground(c color.Color) {
	if s.closed || c == nil {
		return
	}
	s.background = c
	s.dirty = true
}

// Items implements Inspector.
func (s *ImageSurface) Items() []Item {
	return s.list.snapshot()
}

// Item implements Inspector.
func (s *ImageSurface) Item(id ItemID) (Item, bool) {
	it, ok := s.list.get(id)
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Flush rasterizes the display list if it changed.
func (s *ImageSurface) Flush() error {
	if s.closed || !s.dirty {
		return nil
	}
	return s.render()
}

// Snapshot returns a copy of the rendered surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	if s.closed {
		return dst
	}
	if s.dirty {
		if err := s.render(); err != nil {
			logging.Logger().Warn("surface: render failed", "err", err)
		}
	}
	draw.Draw(dst, dst.Bounds(), s.dc.Image(), image.Point{}, draw.Src)
	return dst
}

// EncodePNG renders the surface and writes it to w as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.Flush(); err != nil {
		return err
	}
	return s.dc.EncodePNG(w)
}

// SavePNG renders the surface and saves it to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.Flush(); err != nil {
		return err
	}
	return s.dc.SavePNG(path)
}

// Close releases the drawing context.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.list.reset()
	return s.dc.Close()
}

func (s *ImageSurface) render() error {
	s.dc.ClearWithColor(gg.FromColor(s.background))

	var errs []error
	for _, id := range s.list.order {
		it := s.list.items[id]
		var err error
		switch it.Kind {
		case KindLine:
			err = s.renderLine(it)
		case KindRectangle:
			err = s.renderRectangle(it)
		case KindText:
			err = s.renderText(it)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("surface: item %d (%s): %w", it.ID, it.Kind, err))
		}
	}
	s.dirty = false

	logging.Logger().Debug("surface: rendered", "items", len(s.list.order), "errors", len(errs))
	return errors.Join(errs...)
}

func (s *ImageSurface) renderRectangle(it *Item) error {
	x := math.Min(it.P1.X, it.P2.X)
	y := math.Min(it.P1.Y, it.P2.Y)
	w := math.Abs(it.P2.X - it.P1.X)
	h := math.Abs(it.P2.Y - it.P1.Y)

	if it.Style.Fill != nil {
		s.dc.DrawRectangle(x, y, w, h)
		s.dc.SetColor(it.Style.Fill)
		if err := s.dc.Fill(); err != nil {
			return err
		}
	}
	if it.Style.Outline != nil && it.Style.Width > 0 {
		s.dc.DrawRectangle(x, y, w, h)
		s.dc.SetColor(it.Style.Outline)
		s.dc.SetLineWidth(it.Style.Width)
		if err := s.dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ImageSurface) renderLine(it *Item) error {
	if it.Style.Fill == nil {
		return nil
	}
	width := it.Style.Width
	if width <= 0 {
		width = 1
	}

	s.dc.SetColor(it.Style.Fill)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(it.P1.X, it.P1.Y, it.P2.X, it.P2.Y)
	if err := s.dc.Stroke(); err != nil {
		return err
	}

	switch it.Style.Arrow {
	case ArrowFirst:
		return s.arrowhead(it.P2, it.P1, width)
	case ArrowLast:
		return s.arrowhead(it.P1, it.P2, width)
	case ArrowBoth:
		if err := s.arrowhead(it.P2, it.P1, width); err != nil {
			return err
		}
		return s.arrowhead(it.P1, it.P2, width)
	}
	return nil
}

// arrowhead fills a triangle pointing from -> tip using Tk's default
// arrow shape (8, 10, 3) widened by the line width.
func (s *ImageSurface) arrowhead(from, tip Point, width float64) error {
	dx, dy := tip.X-from.X, tip.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	back := 10.0
	half := 3 + width/2

	bx, by := tip.X-ux*back, tip.Y-uy*back
	s.dc.MoveTo(tip.X, tip.Y)
	s.dc.LineTo(bx-uy*half, by+ux*half)
	s.dc.LineTo(bx+uy*half, by-ux*half)
	s.dc.ClosePath()
	return s.dc.Fill()
}

func (s *ImageSurface) renderText(it *Item) error {
	if it.Style.Fill == nil || it.Style.Text == "" {
		return nil
	}
	face, err := s.fonts.face(it.Style.Font)
	if err != nil {
		return err
	}

	var ax float64
	switch it.Style.Justify {
	case JustifyLeft:
		ax = 0
	case JustifyRight:
		ax = 1
	default:
		ax = 0.5
	}

	s.dc.SetFont(face)
	s.dc.SetColor(it.Style.Fill)
	s.dc.DrawStringAnchored(it.Style.Text, it.P1.X, it.P1.Y, ax, 0.5)
	return nil
}
