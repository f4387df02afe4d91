// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ColorRGB returns the opaque color with the given red, green and blue
// intensities.
func ColorRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ParseColor converts a color specifier into a color.
//
// Accepted forms are "" (no color, returns nil), "#rgb", "#rrggbb" and the
// SVG/X11 color names ("red", "light blue", "DarkGreen"). Names ignore
// case and spaces.
func ParseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if (len(hex) != 3 && len(hex) != 6) || !isHex(hex) {
			return nil, badOption("ParseColor", OptFill, s)
		}
		return gg.Hex(hex).Color(), nil
	}
	name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, badOption("ParseColor", OptFill, s)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
