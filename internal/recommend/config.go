// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "fmt"

// MaxWorkers bounds the size of the GenerateConcurrent worker pool.
const MaxWorkers = 256

// Config contains the configuration for a recommendation Service.
type Config struct {
	// Workers is the number of users processed in parallel by GenerateConcurrent.
	// Zero processes users sequentially on the calling goroutine.
	Workers int `json:"workers" koanf:"workers"`
}

// DefaultConfig returns a configuration that processes users sequentially.
func DefaultConfig() Config {
	return Config{Workers: 0}
}

// Validate checks the configuration for errors.
//
//nolint:gocritic // Config is small and passed by value throughout
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be at most %d, got %d", MaxWorkers, c.Workers)
	}
	return nil
}
