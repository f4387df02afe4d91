package graphpaper

import "github.com/gogpu/graphpaper/graphics"

// Errors returned by GraphPaper. They are the graphics package errors, so
// errors.Is works with either name.
var (
	ErrClosedWindow      = graphics.ErrClosedWindow
	ErrAlreadyDrawn      = graphics.ErrAlreadyDrawn
	ErrUnsupportedOption = graphics.ErrUnsupportedOption
	ErrBadOption         = graphics.ErrBadOption
)
