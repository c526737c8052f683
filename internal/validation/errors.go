// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a catalog rule violation.
// The numeric value is a stable code that the command line maps to a process exit status.
type ErrorKind int

const (
	// KindMovieTitle indicates an empty or non-capitalized movie title.
	KindMovieTitle ErrorKind = 1
	// KindMovieIDLetters indicates a movie ID whose letters or length do not match its title.
	KindMovieIDLetters ErrorKind = 2
	// KindMovieIDUnique indicates two movie IDs sharing the same trailing digits.
	// Its message spells "aren't" with an ASCII apostrophe (U+0027), not U+2019.
	KindMovieIDUnique ErrorKind = 3
	// KindUserName indicates an empty or malformed user name.
	KindUserName ErrorKind = 4
	// KindUserID indicates a malformed, wrong-length or duplicated user ID.
	KindUserID ErrorKind = 5
	// KindMovieGenre indicates a movie without genres.
	KindMovieGenre ErrorKind = 6
	// KindMovieNotFound indicates a favourite movie ID missing from the movie catalog.
	KindMovieNotFound ErrorKind = 8
)

// Code returns the stable numeric code for the kind.
func (k ErrorKind) Code() int {
	return int(k)
}

// String returns a machine-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindMovieTitle:
		return "movie_title"
	case KindMovieIDLetters:
		return "movie_id_letters"
	case KindMovieIDUnique:
		return "movie_id_unique"
	case KindUserName:
		return "user_name"
	case KindUserID:
		return "user_id"
	case KindMovieGenre:
		return "movie_genre"
	case KindMovieNotFound:
		return "movie_not_found"
	default:
		return "unknown"
	}
}

// Error is a coded catalog rule violation.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error returns the human-readable message.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// Code returns the numeric code of the error kind.
func (e *Error) Code() int {
	return e.Kind.Code()
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is, or wraps, a catalog error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// KindOf extracts the kind from a catalog error anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// Code returns the numeric code of the catalog error in err's chain, or 0
// when err is nil or not a catalog error.
func Code(err error) int {
	if kind, ok := KindOf(err); ok {
		return kind.Code()
	}
	return 0
}
