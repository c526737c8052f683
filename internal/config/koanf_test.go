// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir switches to a fresh directory for the duration of the test so
// DefaultConfigPaths discovery does not pick up stray files.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// TestLoad_Defaults verifies loading with no file and no env vars
func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input.MoviesPath != "movies.txt" || cfg.Output.Format != "text" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

// TestLoad_ExplicitFile verifies values from an explicit YAML file
func TestLoad_ExplicitFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")
	writeConfig(t, path, `
input:
  movies_path: data/movies.txt
output:
  format: json
recommend:
  workers: 4
logging:
  level: debug
  caller: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input.MoviesPath != "data/movies.txt" {
		t.Errorf("Input.MoviesPath = %q", cfg.Input.MoviesPath)
	}
	if cfg.Input.UsersPath != "users.txt" {
		t.Errorf("unset fields should keep defaults, got %q", cfg.Input.UsersPath)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Recommend.Workers != 4 {
		t.Errorf("Recommend.Workers = %d, want 4", cfg.Recommend.Workers)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Caller {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

// TestLoad_DiscoveredFile verifies DefaultConfigPaths search
func TestLoad_DiscoveredFile(t *testing.T) {
	dir := chdir(t)
	t.Setenv(ConfigPathEnvVar, "")
	writeConfig(t, filepath.Join(dir, "cinematch.yaml"), "output:\n  errors_path: out/errors.txt\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.ErrorsPath != "out/errors.txt" {
		t.Errorf("Output.ErrorsPath = %q", cfg.Output.ErrorsPath)
	}
}

// TestLoad_ConfigPathEnv verifies CINEMATCH_CONFIG
func TestLoad_ConfigPathEnv(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "elsewhere.yml")
	writeConfig(t, path, "input:\n  users_path: people.txt\n")
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input.UsersPath != "people.txt" {
		t.Errorf("Input.UsersPath = %q, want people.txt", cfg.Input.UsersPath)
	}
}

// TestLoad_EnvOverridesFile verifies precedence: ENV > File > Defaults
func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "cinematch.yaml")
	writeConfig(t, path, "recommend:\n  workers: 2\noutput:\n  format: json\n")

	t.Setenv("CINEMATCH_WORKERS", "8")
	t.Setenv("CINEMATCH_OUTPUT_FORMAT", "text")
	t.Setenv("CINEMATCH_LOG_CALLER", "true")
	t.Setenv("CINEMATCH_UNRELATED", "ignored")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Recommend.Workers != 8 {
		t.Errorf("Recommend.Workers = %d, want 8", cfg.Recommend.Workers)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if !cfg.Logging.Caller {
		t.Error("Logging.Caller should be true")
	}
}

// TestLoad_Errors verifies load and validation failures are config errors
func TestLoad_Errors(t *testing.T) {
	dir := chdir(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"missing explicit file", filepath.Join(dir, "absent.yaml"), ""},
		{"invalid yaml", filepath.Join(dir, "bad.yaml"), "input: [unclosed\n"},
		{"invalid value", filepath.Join(dir, "invalid.yaml"), "output:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.body != "" {
				writeConfig(t, tt.path, tt.body)
			}
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsConfigError(err) {
				t.Errorf("expected config error, got %T: %v", err, err)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"CINEMATCH_MOVIES_PATH":          "input.movies_path",
		"CINEMATCH_USERS_PATH":           "input.users_path",
		"CINEMATCH_RECOMMENDATIONS_PATH": "output.recommendations_path",
		"CINEMATCH_ERRORS_PATH":          "output.errors_path",
		"CINEMATCH_OUTPUT_FORMAT":        "output.format",
		"CINEMATCH_WORKERS":              "recommend.workers",
		"CINEMATCH_METRICS_TEXTFILE":     "metrics.textfile_path",
		"CINEMATCH_LOG_LEVEL":            "logging.level",
		"CINEMATCH_CONFIG":               "",
		"CINEMATCH_SOMETHING_ELSE":       "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}
