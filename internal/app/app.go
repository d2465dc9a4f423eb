// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/byteland/experiment"
	"github.com/katalvlaran/byteland/internal/ctxlog"
	"github.com/katalvlaran/byteland/treegen"
)

// App encapsulates the streams, logger and configuration of one invocation.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns an App reading from inR (unless Config.Input names a file),
// writing results to outW and logging to logW. It fails only when cfg carries
// a log level or format that NewConfig would have rejected.
func NewApp(inR io.Reader, outW, logW io.Writer, cfg *Config) (*App, error) {
	logger, err := newLogger(cfg, logW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.")

	return &App{
		inR:    inR,
		outW:   outW,
		logger: logger,
		config: cfg,
	}, nil
}

// Run executes the configured mode until completion or cancellation.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if a.config.Generating() {
		return a.generate(ctx)
	}

	return a.process(ctx)
}

// generate writes a single-experiment document for the configured shape.
func (a *App) generate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	parents, err := treegen.Build(a.config.Gen, a.config.N, treegen.WithSeed(a.config.Seed))
	if err != nil {
		return err
	}
	logger.Debug("Tree generated.", "shape", a.config.Gen, "cities", a.config.N, "seed", a.config.Seed)

	return treegen.WriteDocument(a.outW, parents)
}

// process runs the experiment protocol over the configured input.
func (a *App) process(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	in := a.inR
	if a.config.Input != "" && a.config.Input != "-" {
		f, err := os.Open(a.config.Input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
		logger.Debug("Input opened.", "path", a.config.Input)
	}

	opts := []experiment.ProcessOption{experiment.WithLimit(a.config.Limit)}
	if a.config.Inspect {
		opts = append(opts, experiment.WithInspect())
	}

	sum, err := experiment.Process(ctx, in, a.outW, opts...)
	if err != nil {
		logger.Error("Processing aborted.", "completed", sum.Completed, "failed", sum.Failed, "error", err)
		return err
	}

	return nil
}
