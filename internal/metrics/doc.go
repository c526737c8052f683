// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus instrumentation for cinematch runs.

Metrics are registered on the default registry with promauto. Cinematch is a
batch tool with no network surface, so metrics are exported by writing a
textfile for the node_exporter textfile collector rather than over HTTP.

# Available Metrics

Validation Metrics:
  - cinematch_validation_runs_total: Validation runs (counter)
    Labels: outcome ("valid", "invalid")
  - cinematch_validation_failures_total: Rule violations (counter)
    Labels: kind (movie_title, movie_id_letters, movie_id_unique, user_name,
    user_id, movie_genre, movie_not_found)
  - cinematch_validation_duration_seconds: Validation latency (histogram)

Recommendation Metrics:
  - cinematch_recommendations_generated_total: Movies recommended (counter)
  - cinematch_recommendations_per_user: List size per user (histogram)

Catalog Metrics:
  - cinematch_catalog_records: Records loaded (gauge)
    Labels: catalog ("movies", "users")

# Usage

	metrics.RecordValidation(time.Since(start), kind.String(), err == nil)
	metrics.SetCatalogSize(metrics.CatalogMovies, len(movies))

	if err := metrics.WriteTextfile("/var/lib/node_exporter/cinematch.prom"); err != nil {
	    log.Warn().Err(err).Msg("metrics export failed")
	}

# Thread Safety

All metric types are safe for concurrent use.
*/
package metrics
