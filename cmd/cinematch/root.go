// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/app"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// flagValues holds command-line overrides. Only flags the user set are applied.
type flagValues struct {
	configPath string
	movies     string
	users      string
	output     string
	errors     string
	format     string
	workers    int
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:           "cinematch",
		Short:         "Validate movie and user catalogs and write genre-based recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, &fv)
			if err != nil {
				return err
			}
			return app.Run(runContext(cmd), cfg)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&fv.configPath, "config", "", "config file (default: cinematch.yaml or config.yaml if present)")
	f.StringVar(&fv.movies, "movies", "", "movie catalog file (default movies.txt)")
	f.StringVar(&fv.users, "users", "", "user catalog file (default users.txt)")
	f.StringVar(&fv.output, "output", "", "recommendations output file (default recommendations.txt)")
	f.StringVar(&fv.errors, "errors", "", "error report file (default errors.txt)")
	f.StringVar(&fv.format, "format", "", "recommendations format: text or json")
	f.IntVar(&fv.workers, "workers", 0, "users processed in parallel (0 = sequential)")
	f.StringVar(&fv.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	cmd.AddCommand(validateCmd(&fv), versionCmd())
	return cmd
}

// runContext attaches the configured logger, tagged with the build version, to the command context.
func runContext(cmd *cobra.Command) context.Context {
	logger := logging.Logger().With().Str("version", version).Logger()
	return logging.ContextWithLogger(cmd.Context(), logger)
}

func validateCmd(fv *flagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalogs without writing recommendations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, fv)
			if err != nil {
				return err
			}
			if err := app.Validate(runContext(cmd), cfg); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cinematch version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cinematch %s\n", version)
		},
	}
}

// loadConfig loads layered configuration, applies explicitly set flags,
// re-validates, and initializes logging.
func loadConfig(cmd *cobra.Command, fv *flagValues) (*config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("movies") {
		cfg.Input.MoviesPath = fv.movies
	}
	if flags.Changed("users") {
		cfg.Input.UsersPath = fv.users
	}
	if flags.Changed("output") {
		cfg.Output.RecommendationsPath = fv.output
	}
	if flags.Changed("errors") {
		cfg.Output.ErrorsPath = fv.errors
	}
	if flags.Changed("format") {
		cfg.Output.Format = fv.format
	}
	if flags.Changed("workers") {
		cfg.Recommend.Workers = fv.workers
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = fv.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})
	return cfg, nil
}
