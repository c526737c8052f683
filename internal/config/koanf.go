// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"cinematch.yaml",
	"cinematch.yml",
	"config.yaml",
	"config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CINEMATCH_CONFIG"

// EnvPrefix is the prefix shared by all configuration environment variables.
const EnvPrefix = "CINEMATCH_"

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: explicitPath if set, otherwise the first file found via
//     CINEMATCH_CONFIG or DefaultConfigPaths
//  3. Environment Variables: CINEMATCH_* overrides
//
// The result is validated before it is returned. An explicitly requested
// config file that does not exist is an error; discovered files are optional.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, &Error{Op: "load", Err: fmt.Errorf("defaults: %w", err)}
	}

	// Layer 2: Load config file
	configPath := explicitPath
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, &Error{Op: "load", Err: fmt.Errorf("config file %s: %w", configPath, err)}
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// CINEMATCH_MOVIES_PATH -> input.movies_path
	// CINEMATCH_WORKERS -> recommend.workers
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, &Error{Op: "load", Err: fmt.Errorf("environment: %w", err)}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, &Error{Op: "load", Err: fmt.Errorf("unmarshal: %w", err)}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lowercased variable names (without EnvPrefix) to koanf paths.
var envMappings = map[string]string{
	// Input
	"movies_path": "input.movies_path",
	"users_path":  "input.users_path",

	// Output
	"recommendations_path": "output.recommendations_path",
	"errors_path":          "output.errors_path",
	"output_format":        "output.format",

	// Recommendation
	"workers": "recommend.workers",

	// Metrics
	"metrics_textfile": "metrics.textfile_path",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables (including CINEMATCH_CONFIG) return "" and are skipped.
//
// Examples:
//   - CINEMATCH_MOVIES_PATH -> input.movies_path
//   - CINEMATCH_OUTPUT_FORMAT -> output.format
//   - CINEMATCH_LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envMappings[key]
}
