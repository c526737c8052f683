// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "github.com/tomtom215/cinematch/internal/models"

// Strategy computes the recommendation list for a single user.
//
// Implementations must be deterministic, must not mutate their inputs, and
// must return a non-nil slice.
type Strategy interface {
	// Name returns a short identifier for logging and metrics.
	Name() string

	// Recommend returns the movies to recommend to user, drawn from movies.
	Recommend(user models.User, movies []models.Movie) []models.Movie
}
