package graphpaper

import (
	"image/color"

	"github.com/gogpu/graphpaper/graphics"
)

// Option configures a GraphPaper during creation.
//
// Example:
//
//	// Default paper: 10px units, black minor lines
//	gp, _ := graphpaper.New(d, 700, 1300, "figure 1")
//
//	// Coarser grid with grey minor lines
//	gp, _ := graphpaper.New(d, 700, 1300, "figure 1",
//	    graphpaper.WithPixelUnit(20, 20),
//	    graphpaper.WithSubLineColor(graphics.ColorRGB(200, 200, 200)))
type Option func(*options)

// options holds optional configuration for GraphPaper creation.
type options struct {
	unitX, unitY  int
	subLineColor  color.Color
	yMajorFromX   bool
	trailingJoin  bool
	windowOptions []graphics.WindowOption
}

// defaultOptions returns the default paper options.
func defaultOptions() options {
	return options{
		unitX:        10,
		unitY:        10,
		subLineColor: graphics.ColorRGB(0, 0, 0),
		trailingJoin: true,
	}
}

// WithPixelUnit sets the initial pixels per grid unit. Units are checked
// by New; non-positive values make New fail with ErrBadOption.
func WithPixelUnit(x, y int) Option {
	return func(o *options) {
		o.unitX = x
		o.unitY = y
	}
}

// WithSubLineColor sets the color of the minor grid lines.
// It is the creation-time form of SetColorOfLines.
func WithSubLineColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.subLineColor = c
		}
	}
}

// WithYMajorFromXUnit selects major horizontal lines where the pixel
// offset is a multiple of five X units instead of every fifth line.
// The two rules agree whenever both units are equal.
func WithYMajorFromXUnit() Option {
	return func(o *options) {
		o.yMajorFromX = true
	}
}

// WithoutTrailingSegment stops JoinDots from drawing the zero-length
// segment at the last plotted point.
func WithoutTrailingSegment() Option {
	return func(o *options) {
		o.trailingJoin = false
	}
}

// WithWindowOptions passes options through to the underlying window.
func WithWindowOptions(opts ...graphics.WindowOption) Option {
	return func(o *options) {
		o.windowOptions = append(o.windowOptions, opts...)
	}
}
