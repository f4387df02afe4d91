// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"image/draw"
)

// OpType identifies a recorded surface operation.
type OpType uint8

const (
	OpCreateLine      OpType = iota // CreateLine
	OpCreateRectangle                // CreateRectangle
	OpCreateText                     // CreateText
	OpDelete                         // Delete
	OpReconfigure                    // Reconfigure
	OpMove                           // Move
	OpSetBackground                  // SetBackground
	OpFlush                          // Flush
)

// opTypeNames maps OpType values to their string representation.
var opTypeNames = [...]string{
	OpCreateLine:      "CreateLine",
	OpCreateRectangle: "CreateRectangle",
	OpCreateText:      "CreateText",
	OpDelete:          "Delete",
	OpReconfigure:     "Reconfigure",
	OpMove:            "Move",
	OpSetBackground:   "SetBackground",
	OpFlush:           "Flush",
}

// String returns the string representation of an OpType.
func (o OpType) String() string {
	if int(o) < len(opTypeNames) {
		return opTypeNames[o]
	}
	return "Unknown"
}

// Op is one recorded call. Only the fields meaningful for Type are set.
type Op struct {
	Type   OpType
	ID     ItemID
	P1, P2 Point
	DX, DY float64
	Style  Style
	Color  color.Color
}

// Recorder is a Surface that keeps a display list and a log of every call
// made to it without rasterizing anything. Snapshot paints only the
// background.
//
// Recorder is intended for tests and for replaying a window into another
// surface.
type Recorder struct {
	width      int
	height     int
	background color.Color
	list       displayList
	ops        []Op
	closed     bool
}

// NewRecorder creates a recorder of the given pixel size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		background: color.White,
		list:       newDisplayList(),
	}
}

// Width implements Surface.
func (r *Recorder) Width() int { return r.width }

// Height implements Surface.
func (r *Recorder) Height() int { return r.height }

// CreateLine implements Surface.
func (r *Recorder) CreateLine(x1, y1, x2, y2 float64, style Style) ItemID {
	return r.create(OpCreateLine, KindLine, Pt(x1, y1), Pt(x2, y2), style)
}

// CreateRectangle implements Surface.
func (r *Recorder) CreateRectangle(x1, y1, x2, y2 float64, style Style) ItemID {
	return r.create(OpCreateRectangle, KindRectangle, Pt(x1, y1), Pt(x2, y2), style)
}

// CreateText implements Surface.
func (r *Recorder) CreateText(x, y float64, style Style) ItemID {
	return r.create(OpCreateText, KindText, Pt(x, y), Point{}, style)
}

func (r *Recorder) create(op OpType, kind Kind, p1, p2 Point, style Style) ItemID {
	if r.closed {
		return 0
	}
	id := r.list.add(kind, p1, p2, style)
	r.ops = append(r.ops, Op{Type: op, ID: id, P1: p1, P2: p2, Style: style})
	return id
}

// Delete implements Surface.
func (r *Recorder) Delete(id ItemID) {
	if r.closed {
		return
	}
	r.list.remove(id)
	r.ops = append(r.ops, Op{Type: OpDelete, ID: id})
}

// Reconfigure implements Surface.
func (r *Recorder) Reconfigure(id ItemID, style Style) {
	if r.closed {
		return
	}
	if it, ok := r.list.get(id); ok {
		it.Style = style
	}
	r.ops = append(r.ops, Op{Type: OpReconfigure, ID: id, Style: style})
}

// Move implements Surface.
func (r *Recorder) Move(id ItemID, dx, dy float64) {
	if r.closed {
		return
	}
	if it, ok := r.list.get(id); ok {
		it.P1 = it.P1.Add(dx, dy)
		it.P2 = it.P2.Add(dx, dy)
	}
	r.ops = append(r.ops, Op{Type: OpMove, ID: id, DX: dx, DY: dy})
}

// SetBackground implements Surface.
func (r *Recorder) SetBackground(c color.Color) {
	if r.closed {
		return
	}
	r.background = c
	r.ops = append(r.ops, Op{Type: OpSetBackground, Color: c})
}

// Flush implements Surface.
func (r *Recorder) Flush() error {
	if r.closed {
		return nil
	}
	r.ops = append(r.ops, Op{Type: OpFlush})
	return nil
}

// Snapshot returns an image filled with the background color.
func (r *Recorder) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if r.background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	}
	return img
}

// Close implements Surface.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool { return r.closed }

// Items implements Inspector.
func (r *Recorder) Items() []Item {
	return r.list.snapshot()
}

// Item implements Inspector.
func (r *Recorder) Item(id ItemID) (Item, bool) {
	it, ok := r.list.get(id)
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Ops returns a copy of the recorded operations.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Count returns how many recorded operations have type t.
func (r *Recorder) Count(t OpType) int {
	n := 0
	for _, op := range r.ops {
		if op.Type == t {
			n++
		}
	}
	return n
}

// Reset forgets the recorded operations but keeps the display list.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Replay recreates the live display list of r on dst in paint order and
// returns the new ids keyed by the recorder's ids.
func (r *Recorder) Replay(dst Surface) map[ItemID]ItemID {
	ids := make(map[ItemID]ItemID, len(r.list.order))
	if r.background != nil {
		dst.SetBackground(r.background)
	}
	for _, it := range r.list.snapshot() {
		switch it.Kind {
		case KindLine:
			ids[it.ID] = dst.CreateLine(it.P1.X, it.P1.Y, it.P2.X, it.P2.Y, it.Style)
		case KindRectangle:
			ids[it.ID] = dst.CreateRectangle(it.P1.X, it.P1.Y, it.P2.X, it.P2.Y, it.Style)
		case KindText:
			ids[it.ID] = dst.CreateText(it.P1.X, it.P1.Y, it.Style)
		}
	}
	return ids
}
