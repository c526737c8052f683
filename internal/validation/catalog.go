// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/models"
)

// CatalogValidator checks the movie and user catalogs of one run.
// It holds only its two input catalogs and never modifies them.
type CatalogValidator struct {
	movies []models.Movie
	users  []models.User
	logger zerolog.Logger
}

// Option configures a CatalogValidator.
type Option func(*CatalogValidator)

// WithLogger sets the logger used to report rule violations at debug level.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) Option {
	return func(cv *CatalogValidator) {
		cv.logger = logger.With().Str("component", "validation").Logger()
	}
}

// New creates a validator for the given catalogs.
func New(movies []models.Movie, users []models.User, opts ...Option) *CatalogValidator {
	cv := &CatalogValidator{
		movies: movies,
		users:  users,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cv)
	}
	return cv
}

// Validate is a shorthand for New(movies, users).ValidateAll().
func Validate(movies []models.Movie, users []models.User) error {
	return New(movies, users).ValidateAll()
}

// ValidateAll runs every catalog rule in a fixed order and returns the first violation:
//
//  1. user ID uniqueness across the user catalog
//  2. ValidateUser for each user, in catalog order
//  3. movie ID suffix uniqueness across the movie catalog
//  4. ValidateMovie for each movie, in catalog order
//
// It returns nil when both catalogs are valid. The returned error is always a *Error.
func (cv *CatalogValidator) ValidateAll() error {
	if err := cv.validateUserIDUniqueness(); err != nil {
		return cv.report(err)
	}
	for i := range cv.users {
		if err := cv.validateUser(cv.users[i]); err != nil {
			return cv.report(err)
		}
	}

	if err := cv.validateMovieIDUniqueness(); err != nil {
		return cv.report(err)
	}
	for i := range cv.movies {
		if err := validateMovie(cv.movies[i]); err != nil {
			return cv.report(err)
		}
	}

	cv.logger.Debug().
		Int("movies", len(cv.movies)).
		Int("users", len(cv.users)).
		Msg("catalogs valid")
	return nil
}

// ValidateUser checks the user's name, then ID, then each favourite reference in declaration order
// against the movie catalog supplied to New.
//
//nolint:gocritic // hugeParam: user passed by value for immutability
func (cv *CatalogValidator) ValidateUser(user models.User) error {
	if err := cv.validateUser(user); err != nil {
		return cv.report(err)
	}
	return nil
}

// ValidateMovie checks the ID against the title letters, then the title format, then the genres.
//
//nolint:gocritic // hugeParam: movie passed by value for immutability
func (cv *CatalogValidator) ValidateMovie(movie models.Movie) error {
	if err := validateMovie(movie); err != nil {
		return cv.report(err)
	}
	return nil
}

//nolint:gocritic // hugeParam: user passed by value for immutability
func (cv *CatalogValidator) validateUser(user models.User) *Error {
	v := GetValidator()

	if v.Var(user.Name, TagPersonName) != nil {
		return newError(KindUserName, "User Name %s is wrong", user.Name)
	}
	if v.Var(user.ID, TagUserID) != nil {
		return newError(KindUserID, "User ID %s is wrong", user.ID)
	}
	for _, movieID := range user.FavouriteMovieIDs {
		if _, ok := models.FindMovie(cv.movies, movieID); !ok {
			return newError(KindMovieNotFound, "Movie %s not found for user %s", movieID, user.ID)
		}
	}
	return nil
}

//nolint:gocritic // hugeParam: movie passed by value for immutability
func validateMovie(movie models.Movie) *Error {
	v := GetValidator()

	if !MatchesTitle(movie.ID, movie.Title) {
		return newError(KindMovieIDLetters, "Movie Id letters %s are wrong", movie.ID)
	}
	if v.Var(movie.Title, TagTitleCase) != nil {
		return newError(KindMovieTitle, "Movie Title %s is wrong", movie.Title)
	}
	if v.Var(movie.Genres, "required,min=1") != nil {
		return newError(KindMovieGenre, "Movie genre is empty for %s", movie.ID)
	}
	return nil
}

// validateUserIDUniqueness compares every pair of users; names are not considered.
func (cv *CatalogValidator) validateUserIDUniqueness() *Error {
	for i := 0; i < len(cv.users); i++ {
		for j := i + 1; j < len(cv.users); j++ {
			if cv.users[i].ID == cv.users[j].ID {
				return newError(KindUserID, "User ID %s is not unique", cv.users[i].ID)
			}
		}
	}
	return nil
}

// validateMovieIDUniqueness compares the trailing digits of every pair of movie IDs,
// regardless of their letter prefixes.
func (cv *CatalogValidator) validateMovieIDUniqueness() *Error {
	for i := 0; i < len(cv.movies); i++ {
		suffix := cv.movies[i].IDSuffix()
		for j := i + 1; j < len(cv.movies); j++ {
			if suffix == cv.movies[j].IDSuffix() {
				return newError(KindMovieIDUnique, "Movie Id numbers %s aren't unique", cv.movies[i].ID)
			}
		}
	}
	return nil
}

// report logs the violation and converts it to error without producing a typed nil.
func (cv *CatalogValidator) report(err *Error) error {
	cv.logger.Debug().
		Str("kind", err.Kind.String()).
		Int("code", err.Code()).
		Str("reason", err.Message).
		Msg("catalog rule violated")
	return err
}
