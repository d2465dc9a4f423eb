// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/byteland/experiment"
	"github.com/katalvlaran/byteland/treegen"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Input string // path of the protocol document, "" or "-" for stdin

	LogFormat string
	LogLevel  string
	Limit     int  // exclusive bound of the experiment count, 0 for the default
	Inspect   bool // log a structural report per experiment

	// Generator mode: when Gen is set, a document is written instead of read.
	Gen  string
	N    int
	Seed int64
}

// Generating reports whether the config selects generator mode.
func (c *Config) Generating() bool { return c.Gen != "" }

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := checkLogFormat(cfg.LogFormat); err != nil {
		return nil, err
	}
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.Limit < 0 {
		return nil, fmt.Errorf("invalid limit %d: cannot be negative", cfg.Limit)
	}

	if cfg.Generating() {
		if !slices.Contains(treegen.Shapes(), cfg.Gen) {
			return nil, fmt.Errorf("unknown shape %q: must be one of %v", cfg.Gen, treegen.Shapes())
		}
		if cfg.N < experiment.MinCities || cfg.N > experiment.MaxCities {
			return nil, fmt.Errorf("invalid city count %d: must be in [%d, %d]", cfg.N, experiment.MinCities, experiment.MaxCities)
		}
	}

	return &cfg, nil
}
