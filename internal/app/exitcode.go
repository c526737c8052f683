// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package app

import (
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/validation"
)

// Process exit codes outside the validation.ErrorKind range.
const (
	ExitOK       = 0
	ExitIO       = 10
	ExitConfig   = 11
	ExitInternal = 12
)

// ExitCode maps a pipeline error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if kind, ok := validation.KindOf(err); ok {
		return kind.Code()
	}
	if catalog.IsIOError(err) {
		return ExitIO
	}
	if config.IsConfigError(err) {
		return ExitConfig
	}
	return ExitInternal
}
