// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// Run executes the full pipeline described by cfg.
func Run(ctx context.Context, cfg *config.Config) (err error) {
	ctx = ensureRunID(ctx)
	log := logging.Ctx(ctx)
	start := time.Now()

	defer func() {
		exportMetrics(ctx, cfg)
		ev := log.Info()
		if err != nil {
			ev = log.Error().Err(err)
		}
		ev.Int("exit_code", ExitCode(err)).Dur("duration", time.Since(start)).Msg("Run finished")
	}()

	format, err := catalog.ParseFormat(cfg.Output.Format)
	if err != nil {
		return &config.Error{Op: "validate", Err: err}
	}

	movies, users, err := load(ctx, cfg)
	if err != nil {
		return err
	}

	if err := validate(ctx, movies, users); err != nil {
		if werr := catalog.WriteFile(cfg.Output.ErrorsPath, func(w io.Writer) error {
			return catalog.WriteError(w, err)
		}); werr != nil {
			log.Warn().Err(werr).Str("path", cfg.Output.ErrorsPath).Msg("Failed to write error report")
		}
		return err
	}

	svc, err := recommend.NewService(
		recommend.Config{Workers: cfg.Recommend.Workers},
		recommend.WithLogger(logging.WithComponent(ctx, "recommend")),
	)
	if err != nil {
		return &config.Error{Op: "validate", Err: err}
	}

	recs, err := svc.GenerateConcurrent(ctx, users, movies)
	if err != nil {
		return fmt.Errorf("generate recommendations: %w", err)
	}

	if err := catalog.WriteFile(cfg.Output.RecommendationsPath, func(w io.Writer) error {
		return catalog.WriteRecommendations(w, recs, format)
	}); err != nil {
		return err
	}

	log.Info().
		Int("users", recs.Len()).
		Int("recommended", recs.Total()).
		Str("path", cfg.Output.RecommendationsPath).
		Str("format", string(format)).
		Msg("Recommendations written")
	return nil
}

// Validate loads and validates the catalogs without writing any output.
func Validate(ctx context.Context, cfg *config.Config) (err error) {
	ctx = ensureRunID(ctx)
	defer exportMetrics(ctx, cfg)

	movies, users, err := load(ctx, cfg)
	if err != nil {
		return err
	}
	return validate(ctx, movies, users)
}

func ensureRunID(ctx context.Context) context.Context {
	if logging.RunIDFromContext(ctx) == "" {
		return logging.ContextWithNewRunID(ctx)
	}
	return ctx
}

func load(ctx context.Context, cfg *config.Config) ([]models.Movie, []models.User, error) {
	movies, err := catalog.LoadMovies(cfg.Input.MoviesPath)
	if err != nil {
		return nil, nil, err
	}
	metrics.SetCatalogSize(metrics.CatalogMovies, len(movies))

	users, err := catalog.LoadUsers(cfg.Input.UsersPath)
	if err != nil {
		return nil, nil, err
	}
	metrics.SetCatalogSize(metrics.CatalogUsers, len(users))

	logging.Ctx(ctx).Info().
		Int("movies", len(movies)).
		Int("users", len(users)).
		Msg("Catalogs loaded")
	return movies, users, nil
}

func validate(ctx context.Context, movies []models.Movie, users []models.User) error {
	start := time.Now()
	err := validation.New(movies, users, validation.WithLogger(logging.WithComponent(ctx, "validation"))).ValidateAll()

	kind, _ := validation.KindOf(err)
	metrics.RecordValidation(time.Since(start), kind.String(), err == nil)

	if err != nil {
		logging.Ctx(ctx).Warn().
			Str("kind", kind.String()).
			Int("code", kind.Code()).
			Str("reason", err.Error()).
			Msg("Catalog validation failed")
		return err
	}
	logging.Ctx(ctx).Debug().Dur("duration", time.Since(start)).Msg("Catalogs valid")
	return nil
}

func exportMetrics(ctx context.Context, cfg *config.Config) {
	log := logging.Ctx(ctx)

	if summary, err := metrics.Summary(prometheus.DefaultGatherer); err == nil {
		log.Debug().Interface("metrics", summary).Msg("Run metrics")
	}

	if cfg.Metrics.TextfilePath == "" {
		return
	}
	if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
		log.Warn().Err(err).Msg("Failed to export metrics")
	}
}
