// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "github.com/tomtom215/cinematch/internal/models"

// Entry pairs a user with their recommended movies.
type Entry struct {
	User   models.User    `json:"user"`
	Movies []models.Movie `json:"movies"`
}

// Recommendations maps users to their recommendation lists.
//
// Users are keyed by identity (models.User.Key), so two equal users share one
// entry and the later assignment wins. Entries are kept in the order their
// users were first added.
type Recommendations struct {
	entries []Entry
	index   map[string]int
}

// NewRecommendations creates an empty result set with room for n users.
func NewRecommendations(n int) *Recommendations {
	if n < 0 {
		n = 0
	}
	return &Recommendations{
		entries: make([]Entry, 0, n),
		index:   make(map[string]int, n),
	}
}

// Set assigns movies to user, replacing any list held by an equal user.
//
//nolint:gocritic // models.User is passed by value throughout the codebase
func (r *Recommendations) Set(user models.User, movies []models.Movie) {
	if movies == nil {
		movies = []models.Movie{}
	}
	key := user.Key()
	if i, ok := r.index[key]; ok {
		r.entries[i].Movies = movies
		return
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, Entry{User: user, Movies: movies})
}

// Get returns the recommendation list for user.
//
//nolint:gocritic // models.User is passed by value throughout the codebase
func (r *Recommendations) Get(user models.User) ([]models.Movie, bool) {
	i, ok := r.index[user.Key()]
	if !ok {
		return nil, false
	}
	return r.entries[i].Movies, true
}

// Len returns the number of distinct users.
func (r *Recommendations) Len() int {
	return len(r.entries)
}

// Entries returns the entries in first-seen user order. The returned slice is
// a copy; the movie lists are shared.
func (r *Recommendations) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Total returns the number of recommended movies across all users.
func (r *Recommendations) Total() int {
	n := 0
	for _, e := range r.entries {
		n += len(e.Movies)
	}
	return n
}
