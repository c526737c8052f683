// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

// Config holds all application configuration.
type Config struct {
	Input     InputConfig     `koanf:"input"`
	Output    OutputConfig    `koanf:"output"`
	Recommend RecommendConfig `koanf:"recommend"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// InputConfig locates the catalogs to validate.
type InputConfig struct {
	// MoviesPath is the movie catalog file.
	// Default: movies.txt
	MoviesPath string `koanf:"movies_path" validate:"required"`

	// UsersPath is the user catalog file.
	// Default: users.txt
	UsersPath string `koanf:"users_path" validate:"required"`
}

// OutputConfig controls where results are written.
type OutputConfig struct {
	// RecommendationsPath receives the recommendations when validation passes.
	// Default: recommendations.txt
	RecommendationsPath string `koanf:"recommendations_path" validate:"required"`

	// ErrorsPath receives "ERROR: <message>" when validation fails.
	// Default: errors.txt
	ErrorsPath string `koanf:"errors_path" validate:"required"`

	// Format is the recommendations encoding: text or json.
	// Default: text
	Format string `koanf:"format" validate:"oneof=text json"`
}

// RecommendConfig tunes recommendation generation.
type RecommendConfig struct {
	// Workers is the number of users processed in parallel.
	// 0 processes users sequentially.
	// Default: 0
	Workers int `koanf:"workers" validate:"gte=0,lte=256"`
}

// MetricsConfig controls Prometheus textfile export.
type MetricsConfig struct {
	// TextfilePath receives the run metrics in Prometheus text format.
	// Empty disables export.
	TextfilePath string `koanf:"textfile_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Format is the output format: json or console.
	// Default: console
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			MoviesPath: "movies.txt",
			UsersPath:  "users.txt",
		},
		Output: OutputConfig{
			RecommendationsPath: "recommendations.txt",
			ErrorsPath:          "errors.txt",
			Format:              "text",
		},
		Recommend: RecommendConfig{
			Workers: 0,
		},
		Metrics: MetricsConfig{
			TextfilePath: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}
