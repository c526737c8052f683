// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for ValidationRuns.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Catalog label values for CatalogRecords.
const (
	CatalogMovies = "movies"
	CatalogUsers  = "users"
)

var (
	// Validation Metrics
	ValidationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_validation_runs_total",
			Help: "Total number of catalog validation runs",
		},
		[]string{"outcome"}, // "valid", "invalid"
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinematch_validation_failures_total",
			Help: "Total number of catalog rule violations by kind",
		},
		[]string{"kind"},
	)

	ValidationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_validation_duration_seconds",
			Help:    "Duration of catalog validation runs in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	// Recommendation Metrics
	RecommendationsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_recommendations_generated_total",
			Help: "Total number of movies recommended across all users",
		},
	)

	RecommendationsPerUser = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinematch_recommendations_per_user",
			Help:    "Number of movies recommended to a single user",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// Catalog Metrics
	CatalogRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinematch_catalog_records",
			Help: "Number of records in the most recently loaded catalog",
		},
		[]string{"catalog"}, // "movies", "users"
	)
)

// RecordValidation records the outcome of a validation run. kind is the
// snake-case rule name of the first violation and is ignored when valid.
func RecordValidation(duration time.Duration, kind string, valid bool) {
	ValidationDuration.Observe(duration.Seconds())
	if valid {
		ValidationRuns.WithLabelValues(OutcomeValid).Inc()
		return
	}
	ValidationRuns.WithLabelValues(OutcomeInvalid).Inc()
	ValidationFailures.WithLabelValues(kind).Inc()
}

// RecordUserRecommendations records the size of one user's recommendation list.
func RecordUserRecommendations(count int) {
	RecommendationsPerUser.Observe(float64(count))
	RecommendationsGenerated.Add(float64(count))
}

// SetCatalogSize records the number of records loaded for a catalog.
func SetCatalogSize(catalog string, n int) {
	CatalogRecords.WithLabelValues(catalog).Set(float64(n))
}
