// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import "github.com/tomtom215/cinematch/internal/validation"

// Validate checks the configuration against its struct tags.
// The returned error is a *Error wrapping a *validation.StructError.
func (c *Config) Validate() error {
	if se := validation.ValidateStruct(c); se != nil {
		return &Error{Op: "validate", Err: se}
	}
	return nil
}
