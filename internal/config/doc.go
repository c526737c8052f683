// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config loads and validates cinematch configuration.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Built-in defaults (Default)
 2. A YAML file: the --config flag, CINEMATCH_CONFIG, or the first of
    cinematch.yaml, cinematch.yml, config.yaml, config.yml found in the
    working directory
 3. CINEMATCH_* environment variables

Command-line flags are applied by the caller after Load and re-checked with
Config.Validate.

# Example File

	input:
	  movies_path: data/movies.txt
	  users_path: data/users.txt
	output:
	  recommendations_path: out/recommendations.txt
	  errors_path: out/errors.txt
	  format: json
	recommend:
	  workers: 4
	metrics:
	  textfile_path: /var/lib/node_exporter/cinematch.prom
	logging:
	  level: debug
	  format: json

# Environment Variables

	CINEMATCH_MOVIES_PATH           input.movies_path
	CINEMATCH_USERS_PATH            input.users_path
	CINEMATCH_RECOMMENDATIONS_PATH  output.recommendations_path
	CINEMATCH_ERRORS_PATH           output.errors_path
	CINEMATCH_OUTPUT_FORMAT         output.format
	CINEMATCH_WORKERS               recommend.workers
	CINEMATCH_METRICS_TEXTFILE      metrics.textfile_path
	CINEMATCH_LOG_LEVEL             logging.level
	CINEMATCH_LOG_FORMAT            logging.format
	CINEMATCH_LOG_CALLER            logging.caller

# Validation

Validate checks struct tags through the shared validator in the validation
package. All load and validation failures are returned as *Error.
*/
package config
