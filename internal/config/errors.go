// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"errors"
	"fmt"
)

// Error reports a configuration failure.
type Error struct {
	Op  string // "load", "validate"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsConfigError reports whether err originates from loading or validating configuration.
func IsConfigError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}
