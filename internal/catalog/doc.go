// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package catalog reads movie and user catalogs from text files and writes
recommendation and error reports.

# File Format

Both catalogs store one record per pair of lines:

	The Shawshank Redemption, TSR001
	Drama
	The Godfather, TG002
	Crime, Drama

The first line holds the title (or user name) and the ID separated by a comma.
The second line is a comma-separated list of genres (or favourite movie IDs).
Fields are trimmed, empty list entries are dropped, and trailing blank lines
are ignored. Fields after the ID on the first line are ignored.

Malformed input is reported as a *ParseError carrying the file path and the
1-based line number.

# Output

WriteRecommendations renders results either as text:

	Ahmed Hassan, 12345678A
	The Godfather, The Dark Knight

or as indented JSON. WriteError renders a validation failure as a single
"ERROR: <message>" line.
*/
package catalog
