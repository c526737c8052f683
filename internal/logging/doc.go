// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package logging provides centralized zerolog-based logging for cinematch.

A global logger is configured once from main with Init and read everywhere
else. Library packages (validation, recommend) do not log through the global
directly; they accept a zerolog.Logger option and default to zerolog.Nop(),
and the pipeline hands them a component logger from WithComponent, which
carries the run ID of the context it is built from.

# Quick Start

	logging.Init(logging.Config{
	    Level:  "info",
	    Format: "json",
	})

	ctx = logging.ContextWithNewRunID(ctx)
	logging.Ctx(ctx).Info().Int("movies", n).Msg("Catalogs loaded")

# Run IDs

Every pipeline run carries a short run ID (the first 8 characters of a UUID)
in its context. Ctx adds it to each entry as run_id so all lines of one run
can be grouped.

# Best Practices

Always terminate log chains with .Msg() or .Send():

	logging.Ctx(ctx).Info().Str("key", "value").Msg("message")  // Correct
	logging.Ctx(ctx).Info().Str("key", "value")                 // WRONG - log not emitted

Use structured fields instead of string formatting:

	logging.Ctx(ctx).Info().Str("user", u).Int("count", n).Msg("processed")  // Correct
	logging.Ctx(ctx).Info().Msgf("processed %d items for %s", n, u)          // Avoid
*/
package logging
