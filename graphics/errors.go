// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphics

import (
	"errors"
	"fmt"
)

// Errors returned by windows and shapes. Callers compare with errors.Is;
// the values may arrive wrapped in an *OptionError.
var (
	// ErrClosedWindow is returned when an operation needs an open window.
	ErrClosedWindow = errors.New("graphics: window is closed")

	// ErrAlreadyDrawn is returned by Draw when the shape is attached to
	// an open window.
	ErrAlreadyDrawn = errors.New("graphics: object currently drawn")

	// ErrUnsupportedOption is returned when an option is not legal for
	// the shape variant.
	ErrUnsupportedOption = errors.New("graphics: object doesn't support operation")

	// ErrBadOption is returned when an option value is outside its legal
	// set or range.
	ErrBadOption = errors.New("graphics: illegal option value")
)

// OptionError records a rejected configuration change.
type OptionError struct {
	Op     string // operation, e.g. "SetSize"
	Option Option // option being changed; zero when the target is not a shape option
	Value  any    // rejected value
	Err    error  // ErrUnsupportedOption or ErrBadOption
}

func (e *OptionError) Error() string {
	if e.Option == 0 {
		return fmt.Sprintf("%v: %s(%v)", e.Err, e.Op, e.Value)
	}
	return fmt.Sprintf("%v: %s %s=%v", e.Err, e.Op, e.Option, e.Value)
}

func (e *OptionError) Unwrap() error { return e.Err }

func badOption(op string, o Option, v any) error {
	return &OptionError{Op: op, Option: o, Value: v, Err: ErrBadOption}
}

func unsupported(op string, o Option, v any) error {
	return &OptionError{Op: op, Option: o, Value: v, Err: ErrUnsupportedOption}
}
