// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation enforces the format, uniqueness and referential rules of the movie and
// user catalogs, and provides struct validation using go-playground/validator v10.
//
// # Overview
//
// The package provides:
//   - CatalogValidator: fail-fast validation of whole catalogs in a fixed rule order
//   - Coded errors (*Error) with a stable ErrorKind for exit-status mapping
//   - Thread-safe singleton validator with the catalog format rules registered as tags
//   - StructError translation for configuration structs
//
// # Quick Start
//
//	cv := validation.New(movies, users)
//	if err := cv.ValidateAll(); err != nil {
//	    kind, _ := validation.KindOf(err)
//	    os.Exit(kind.Code())
//	}
//
// # Rule Order
//
// ValidateAll checks, in order: user ID uniqueness, every user (name, ID, favourite
// references), movie ID suffix uniqueness, every movie (ID letters, title, genres).
// The first violation is returned; there is no accumulating mode.
//
// # Error Kinds
//
//	KindMovieTitle      1  "Movie Title <title> is wrong"
//	KindMovieIDLetters  2  "Movie Id letters <id> are wrong"
//	KindMovieIDUnique   3  "Movie Id numbers <id> aren't unique"
//	KindUserName        4  "User Name <name> is wrong"
//	KindUserID          5  "User ID <id> is wrong" / "User ID <id> is not unique"
//	KindMovieGenre      6  "Movie genre is empty for <id>"
//	KindMovieNotFound   8  "Movie <id> not found for user <user id>"
//
// # Custom Validation Tags
//
//   - person_name: capitalized words of letters separated by single spaces
//   - user_id: exactly 9 characters, 9 digits or 8 digits followed by one letter (either case)
//   - title_case: every space-delimited word starts with an uppercase letter
//
// The tags can be used in struct tags as well as with GetValidator().Var.
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
// CatalogValidator does not mutate its catalogs; callers must not mutate them
// while a validation is running.
package validation
