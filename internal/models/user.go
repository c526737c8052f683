// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import (
	"sort"
	"strings"
)

// User is a catalog user with references to favourite movies.
type User struct {
	// Name is the display name, letters and single spaces only.
	Name string `json:"name"`

	// ID is the 9 character user identifier (9 digits, or 8 digits and a trailing letter).
	ID string `json:"id"`

	// FavouriteMovieIDs references Movie.ID values in the movie catalog.
	FavouriteMovieIDs []string `json:"favourite_movie_ids"`
}

// NewUser creates a User that owns a private copy of favouriteMovieIDs.
func NewUser(name, id string, favouriteMovieIDs []string) User {
	return User{
		Name:              name,
		ID:                id,
		FavouriteMovieIDs: cloneStrings(favouriteMovieIDs),
	}
}

// Equal reports whether u and other have the same name, ID and favourite set.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (u User) Equal(other User) bool {
	return u.Name == other.Name &&
		u.ID == other.ID &&
		sameSet(u.FavouriteMovieIDs, other.FavouriteMovieIDs)
}

// IsFavourite reports whether movieID is one of the user's favourites.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (u User) IsFavourite(movieID string) bool {
	for _, id := range u.FavouriteMovieIDs {
		if id == movieID {
			return true
		}
	}
	return false
}

// Key returns a canonical identity string for the user.
// Two users have the same key exactly when Equal reports true.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (u User) Key() string {
	favs := distinctSorted(u.FavouriteMovieIDs)

	var b strings.Builder
	b.WriteString(u.Name)
	b.WriteByte(0)
	b.WriteString(u.ID)
	for _, f := range favs {
		b.WriteByte(0)
		b.WriteString(f)
	}
	return b.String()
}

// sameSet compares two string slices as sets.
func sameSet(a, b []string) bool {
	setA := make(map[string]struct{}, len(a))
	for _, s := range a {
		setA[s] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, s := range b {
		if _, ok := setA[s]; !ok {
			return false
		}
		setB[s] = struct{}{}
	}
	return len(setA) == len(setB)
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
