// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package main is the entry point for the cinematch command.
//
// Cinematch validates a movie catalog and a user catalog against a fixed set
// of naming and identifier rules and, when both are valid, writes genre-based
// movie recommendations for every user.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Command-line flags
//   - Environment variables (CINEMATCH_*)
//   - Config file (--config, CINEMATCH_CONFIG, cinematch.yaml or config.yaml)
//   - Built-in defaults
//
// # Example Usage
//
//	cinematch --movies movies.txt --users users.txt
//	cinematch --format json --workers 4 --output out/recommendations.json
//	cinematch validate --config cinematch.yaml
//
// # Exit Status
//
// The process exits with 0 on success, the rule code (1-8) when a catalog is
// invalid, 10 for unreadable or malformed files, 11 for bad configuration,
// and 12 for anything else.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the run context; in-flight recommendation
// workers stop and no output file is replaced.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinematch/internal/app"
	"github.com/tomtom215/cinematch/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil && app.ExitCode(err) == app.ExitInternal {
		logging.Err(err).Msg("cinematch failed")
	}
	os.Exit(app.ExitCode(err))
}
