// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package keysym translates physical key names into X11 keysym names.
//
// Input backends report keys by position ("A", "Digit1", "ArrowUp").
// Windows report them the way the graphics package documents them:
// lowercase letters, bare digits and X11 names for everything else
// ("a", "1", "Up", "Return").
package keysym

import "strings"

var named = map[string]string{
	"Enter":        "Return",
	"NumpadEnter":  "KP_Enter",
	"Space":        "space",
	"ArrowUp":      "Up",
	"ArrowDown":    "Down",
	"ArrowLeft":    "Left",
	"ArrowRight":   "Right",
	"Backspace":    "BackSpace",
	"Escape":       "Escape",
	"Tab":          "Tab",
	"Delete":       "Delete",
	"Insert":       "Insert",
	"Home":         "Home",
	"End":          "End",
	"PageUp":       "Prior",
	"PageDown":     "Next",
	"ShiftLeft":    "Shift_L",
	"ShiftRight":   "Shift_R",
	"ControlLeft":  "Control_L",
	"ControlRight": "Control_R",
	"AltLeft":      "Alt_L",
	"AltRight":     "Alt_R",
	"MetaLeft":     "Super_L",
	"MetaRight":    "Super_R",
	"CapsLock":     "Caps_Lock",
	"Minus":        "minus",
	"Equal":        "equal",
	"Comma":        "comma",
	"Period":       "period",
	"Slash":        "slash",
	"Backslash":    "backslash",
	"Semicolon":    "semicolon",
	"Quote":        "apostrophe",
	"Backquote":    "grave",
	"BracketLeft":  "bracketleft",
	"BracketRight": "bracketright",
}

// FromName returns the keysym for a physical key name, or "" when the key
// has no keysym.
func FromName(name string) string {
	if sym, ok := named[name]; ok {
		return sym
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return strings.ToLower(name)
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return name
		}
		return ""
	}
	if d, ok := strings.CutPrefix(name, "Digit"); ok && isDigits(d) {
		return d
	}
	if d, ok := strings.CutPrefix(name, "Numpad"); ok && len(d) == 1 && isDigits(d) {
		return "KP_" + d
	}
	if d, ok := strings.CutPrefix(name, "F"); ok && isDigits(d) {
		return name
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
