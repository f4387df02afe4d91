// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Families lists the font family names surfaces understand.
var Families = []string{"helvetica", "arial", "courier", "times roman"}

// fontData maps a family to its TTF per style.
// Helvetica and Arial share the Go sans faces, Courier uses Go Mono and
// Times Roman uses Go Medium.
var fontData = map[string][4][]byte{
	"sans": {
		StyleNormal:     goregular.TTF,
		StyleBold:       gobold.TTF,
		StyleItalic:     goitalic.TTF,
		StyleBoldItalic: gobolditalic.TTF,
	},
	"mono": {
		StyleNormal:     gomono.TTF,
		StyleBold:       gomonobold.TTF,
		StyleItalic:     gomonoitalic.TTF,
		StyleBoldItalic: gomonobolditalic.TTF,
	},
	"serif": {
		StyleNormal:     gomedium.TTF,
		StyleBold:       gobold.TTF,
		StyleItalic:     gomediumitalic.TTF,
		StyleBoldItalic: gobolditalic.TTF,
	},
}

func familyClass(family string) string {
	switch strings.ToLower(family) {
	case "courier":
		return "mono"
	case "times roman":
		return "serif"
	default:
		return "sans"
	}
}

type sourceKey struct {
	class string
	style FontStyle
}

// sources holds parsed fonts; FontSource is safe for concurrent use and
// shared by every surface in the process.
var sources struct {
	mu sync.Mutex
	m  map[sourceKey]*text.FontSource
}

func fontSource(family string, style FontStyle) (*text.FontSource, error) {
	if !style.Valid() {
		return nil, fmt.Errorf("surface: invalid font style %v", style)
	}
	key := sourceKey{class: familyClass(family), style: style}

	sources.mu.Lock()
	defer sources.mu.Unlock()

	if src, ok := sources.m[key]; ok {
		return src, nil
	}
	src, err := text.NewFontSource(fontData[key.class][style])
	if err != nil {
		return nil, fmt.Errorf("surface: load %s %s: %w", family, style, err)
	}
	if sources.m == nil {
		sources.m = make(map[sourceKey]*text.FontSource)
	}
	sources.m[key] = src
	return src, nil
}

// faceCache keeps one text.Face per Font for a surface.
type faceCache struct {
	faces map[Font]text.Face
}

func newFaceCache() *faceCache {
	return &faceCache{faces: make(map[Font]text.Face)}
}

func (c *faceCache) face(f Font) (text.Face, error) {
	if face, ok := c.faces[f]; ok {
		return face, nil
	}
	src, err := fontSource(f.Family, f.Style)
	if err != nil {
		return nil, err
	}
	size := f.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	face := src.Face(float64(size))
	c.faces[f] = face
	return face, nil
}
