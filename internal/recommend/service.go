// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/models"
)

// Service applies a Strategy to every user of a catalog.
// It is safe for concurrent use.
type Service struct {
	config   Config
	strategy Strategy
	logger   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger.With().Str("component", "recommend").Logger()
	}
}

// WithStrategy replaces the default GenreBased strategy.
func WithStrategy(strategy Strategy) Option {
	return func(s *Service) {
		if strategy != nil {
			s.strategy = strategy
		}
	}
}

// NewService creates a recommendation service.
//
//nolint:gocritic // Config is small and passed by value throughout
func NewService(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Service{
		config:   cfg,
		strategy: NewGenreBased(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Strategy returns the strategy used by the service.
func (s *Service) Strategy() Strategy {
	return s.strategy
}

// Generate computes recommendations for every user, in catalog order.
// A nil user catalog yields an empty result; a nil movie catalog maps every
// user to an empty list.
func (s *Service) Generate(users []models.User, movies []models.Movie) *Recommendations {
	start := time.Now()
	recs := NewRecommendations(len(users))
	for i := range users {
		recs.Set(users[i], s.recommendUser(users[i], movies))
	}
	s.logRun(recs, len(movies), 0, start)
	return recs
}

// GenerateConcurrent computes the same mapping as Generate, processing up to
// Config.Workers users in parallel. With zero workers it runs sequentially.
// The only errors returned come from ctx.
func (s *Service) GenerateConcurrent(ctx context.Context, users []models.User, movies []models.Movie) (*Recommendations, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.config.Workers == 0 || len(users) < 2 {
		return s.Generate(users, movies), nil
	}

	start := time.Now()
	lists := make([][]models.Movie, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range users {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lists[i] = s.recommendUser(users[i], movies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Assemble in catalog order so duplicate users resolve the same way as Generate.
	recs := NewRecommendations(len(users))
	for i := range users {
		recs.Set(users[i], lists[i])
	}
	s.logRun(recs, len(movies), s.config.Workers, start)
	return recs, nil
}

//nolint:gocritic // models.User is passed by value throughout the codebase
func (s *Service) recommendUser(user models.User, movies []models.Movie) []models.Movie {
	list := s.strategy.Recommend(user, movies)
	metrics.RecordUserRecommendations(len(list))
	s.logger.Trace().
		Str("user_id", user.ID).
		Int("favourites", len(user.FavouriteMovieIDs)).
		Int("recommended", len(list)).
		Msg("user recommendations computed")
	return list
}

func (s *Service) logRun(recs *Recommendations, movies, workers int, start time.Time) {
	s.logger.Debug().
		Str("strategy", s.strategy.Name()).
		Int("users", recs.Len()).
		Int("movies", movies).
		Int("recommended", recs.Total()).
		Int("workers", workers).
		Dur("duration", time.Since(start)).
		Msg("recommendations generated")
}
