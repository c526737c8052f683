// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

// IDSuffixLength is the number of trailing characters that form the numeric part of a movie ID.
const IDSuffixLength = 3

// Movie is a catalog entry. Values are treated as immutable once constructed.
type Movie struct {
	// Title is the display title, e.g. "The Shawshank Redemption".
	Title string `json:"title"`

	// ID is the title-derived identifier, e.g. "TSR001".
	ID string `json:"id"`

	// Genres lists the genres in declaration order. Duplicates are allowed.
	Genres []string `json:"genres"`
}

// NewMovie creates a Movie that owns a private copy of genres.
func NewMovie(title, id string, genres []string) Movie {
	return Movie{
		Title:  title,
		ID:     id,
		Genres: cloneStrings(genres),
	}
}

// Equal reports whether m and other have the same title, the same ID and the same genre set.
// Genre order and repetition are ignored.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (m Movie) Equal(other Movie) bool {
	return m.Title == other.Title &&
		m.ID == other.ID &&
		sameSet(m.Genres, other.Genres)
}

// HasGenre reports whether the movie is tagged with genre (exact, case-sensitive match).
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// IDSuffix returns the last IDSuffixLength characters of the ID, or the whole ID when it is shorter.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (m Movie) IDSuffix() string {
	r := []rune(m.ID)
	if len(r) <= IDSuffixLength {
		return m.ID
	}
	return string(r[len(r)-IDSuffixLength:])
}

// FindMovie returns the first movie in movies whose ID equals id.
func FindMovie(movies []Movie, id string) (Movie, bool) {
	for i := range movies {
		if movies[i].ID == id {
			return movies[i], true
		}
	}
	return Movie{}, false
}

// ContainsMovie reports whether movies holds a movie structurally equal to m.
//
//nolint:gocritic // hugeParam: m passed by value for immutability
func ContainsMovie(movies []Movie, m Movie) bool {
	for i := range movies {
		if movies[i].Equal(m) {
			return true
		}
	}
	return false
}
