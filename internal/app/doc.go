// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package app wires the cinematch pipeline together.

A run performs the following steps:

 1. Load: read the movie and user catalogs
 2. Validate: check every catalog rule, stopping at the first violation
 3. Recommend: compute genre-based recommendations for every user
 4. Write: store the recommendations atomically in the configured format

When validation fails, "ERROR: <message>" is written to the errors file
instead and the recommendations file is left untouched. When a metrics
textfile path is configured, run metrics are exported on every exit path.

# Exit Codes

ExitCode maps the error returned by Run to the process exit status:

	0      success
	1-8    catalog rule violation (validation.ErrorKind code)
	10     catalog could not be read, parsed, or written
	11     invalid configuration
	12     any other failure (including cancellation)
*/
package app
