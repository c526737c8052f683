// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "github.com/tomtom215/cinematch/internal/models"

// GenreBased recommends catalog movies that share a genre with one of the
// user's favourites.
type GenreBased struct{}

// NewGenreBased creates a genre-based strategy.
func NewGenreBased() *GenreBased {
	return &GenreBased{}
}

// Name implements Strategy.
func (g *GenreBased) Name() string {
	return "genre_based"
}

// Recommend implements Strategy.
//
// Favourite IDs that are not in the catalog are skipped. When several catalog
// movies share an ID, the first one supplies the genres.
func (g *GenreBased) Recommend(user models.User, movies []models.Movie) []models.Movie {
	result := make([]models.Movie, 0)
	if len(user.FavouriteMovieIDs) == 0 || len(movies) == 0 {
		return result
	}

	for _, favID := range user.FavouriteMovieIDs {
		fav, ok := models.FindMovie(movies, favID)
		if !ok {
			continue
		}
		for _, genre := range fav.Genres {
			for _, candidate := range movies {
				if !candidate.HasGenre(genre) {
					continue
				}
				if user.IsFavourite(candidate.ID) {
					continue
				}
				if models.ContainsMovie(result, candidate) {
					continue
				}
				result = append(result, models.NewMovie(candidate.Title, candidate.ID, candidate.Genres))
			}
		}
	}
	return result
}
