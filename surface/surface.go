// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is the rendering target of a window.
//
// A Surface keeps a display list: items are created once, then moved,
// restyled or deleted through the ItemID returned at creation. Items paint
// in creation order, later items on top. Coordinates are pixels with the
// origin at the top-left and y growing downward.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Operations on a closed surface, or with an unknown ItemID, are no-ops.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// CreateLine adds a segment from (x1, y1) to (x2, y2).
	CreateLine(x1, y1, x2, y2 float64, style Style) ItemID

	// CreateRectangle adds a box with opposite corners (x1, y1) and (x2, y2).
	CreateRectangle(x1, y1, x2, y2 float64, style Style) ItemID

	// CreateText adds style.Text anchored at (x, y).
	CreateText(x, y float64, style Style) ItemID

	// Delete removes an item.
	Delete(id ItemID)

	// Reconfigure replaces the style of an item.
	Reconfigure(id ItemID, style Style)

	// Move translates an item by (dx, dy) pixels.
	Move(id ItemID, dx, dy float64)

	// SetBackground sets the color painted under all items.
	SetBackground(c color.Color)

	// Flush ensures all pending drawing operations are complete.
	// Returns an error if rendering fails.
	Flush() error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect the surface.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// After Close, the surface must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Item is the state of one display list entry.
type Item struct {
	ID    ItemID
	Kind  Kind
	P1    Point
	P2    Point // unused by text items
	Style Style
}

// Inspector is an optional interface for surfaces that expose their
// display list.
type Inspector interface {
	Surface

	// Items returns the live items in paint order.
	Items() []Item

	// Item returns the item with the given id.
	Item(id ItemID) (Item, bool)
}

// displayList is the ordered item store shared by the built-in surfaces.
type displayList struct {
	next  ItemID
	order []ItemID
	items map[ItemID]*Item
}

func newDisplayList() displayList {
	return displayList{items: make(map[ItemID]*Item)}
}

func (l *displayList) add(kind Kind, p1, p2 Point, style Style) ItemID {
	l.next++
	id := l.next
	l.items[id] = &Item{ID: id, Kind: kind, P1: p1, P2: p2, Style: style}
	l.order = append(l.order, id)
	return id
}

func (l *displayList) get(id ItemID) (*Item, bool) {
	it, ok := l.items[id]
	return it, ok
}

func (l *displayList) remove(id ItemID) bool {
	if _, ok := l.items[id]; !ok {
		return false
	}
	delete(l.items, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

func (l *displayList) snapshot() []Item {
	out := make([]Item, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.items[id])
	}
	return out
}

func (l *displayList) reset() {
	l.order = nil
	l.items = make(map[ItemID]*Item)
}
