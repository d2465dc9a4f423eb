// SPDX-License-Identifier: MIT

package experiment

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/byteland/internal/ctxlog"
	"github.com/katalvlaran/byteland/unify"
)

// Summary is the outcome of Process.
type Summary struct {
	// Requested is the experiment count announced by the input.
	Requested int
	// Completed is the number of experiments whose result was written.
	Completed int
	// Failed is the number of experiments that were logged and skipped.
	Failed int
}

// ProcessOption configures Process.
type ProcessOption func(*processConfig)

type processConfig struct {
	limit   int
	inspect bool
	engine  []unify.Option
}

// WithLimit sets the exclusive upper bound of the experiment count
// (default MaxExperiments). Non-positive values keep the default.
func WithLimit(k int) ProcessOption {
	return func(c *processConfig) {
		if k > 0 {
			c.limit = k
		}
	}
}

// WithInspect logs a structural Report for every experiment.
func WithInspect() ProcessOption {
	return func(c *processConfig) { c.inspect = true }
}

// WithEngineOptions forwards options to every unify run. They are applied
// after the defaults of Process, so a caller-supplied WithOnRound replaces
// the debug round logger.
func WithEngineOptions(opts ...unify.Option) ProcessOption {
	return func(c *processConfig) { c.engine = append(c.engine, opts...) }
}

// Process reads the experiment protocol from r and writes one round count per
// completed experiment to w.
//
// Fatal errors (returned): unreadable or out-of-range experiment count, a
// non-integer city count, a truncated input (io.ErrUnexpectedEOF), a write
// failure or context cancellation. Every other error belongs to a single
// experiment: it is logged, Summary.Failed is incremented and the loop reads
// the next experiment without counting the failed one.
func Process(ctx context.Context, r io.Reader, w io.Writer, opts ...ProcessOption) (Summary, error) {
	cfg := processConfig{limit: MaxExperiments}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := ctxlog.FromContext(ctx)
	lines := newLineReader(r)

	var sum Summary
	countLine, err := lines.next()
	if err != nil {
		return sum, errors.Wrap(err, "read experiment count")
	}
	count, err := strconv.Atoi(countLine)
	if err != nil {
		return sum, errors.Wrapf(ErrBadToken, "experiment count %q", countLine)
	}
	if count < 0 || count >= cfg.limit {
		return sum, errors.Wrapf(ErrExperimentCount, "%d not in [0, %d)", count, cfg.limit)
	}
	sum.Requested = count
	logger.Debug("Experiment count read.", "count", count, "limit", cfg.limit)

	for sum.Completed < count {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return sum, ctxErr
		}
		index := sum.Completed + sum.Failed + 1

		cityLine, err := lines.next()
		if err != nil {
			return sum, errors.Wrapf(err, "experiment %d: read city count", index)
		}
		cities, err := strconv.Atoi(cityLine)
		if err != nil {
			return sum, errors.Wrapf(ErrBadToken, "experiment %d: city count %q", index, cityLine)
		}
		parentLine, err := lines.next()
		if err != nil {
			return sum, errors.Wrapf(err, "experiment %d: read relations", index)
		}

		steps, err := cfg.solve(ctx, index, cities, parentLine)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return sum, ctxErr
			}
			sum.Failed++
			logger.Warn("Experiment skipped.", "experiment", index, "cities", cities, "error", err)
			continue
		}
		if _, err = fmt.Fprintln(w, steps); err != nil {
			return sum, errors.Wrapf(err, "experiment %d: write result", index)
		}
		sum.Completed++
	}

	logger.Info("Experiments processed.", "requested", sum.Requested, "completed", sum.Completed, "failed", sum.Failed)
	return sum, nil
}

// solve runs a single experiment.
func (c processConfig) solve(ctx context.Context, index, cities int, parentLine string) (int, error) {
	logger := ctxlog.FromContext(ctx).With("experiment", index)

	e, err := New(cities)
	if err != nil {
		return 0, err
	}
	if err = e.SetParentsString(parentLine); err != nil {
		return 0, err
	}

	var rep Report
	if c.inspect {
		rep = Inspect(e.Adjacency())
		logger.Info("Experiment inspected.",
			"nodes", rep.Nodes, "edges", rep.Edges, "components", rep.Components, "tree", rep.IsTree())
	}

	engine := make([]unify.Option, 0, len(c.engine)+2)
	engine = append(engine,
		unify.WithContext(ctx),
		unify.WithOnRound(func(rs unify.RoundStats) error {
			logger.Debug("Round finished.", "round", rs.Round, "merges", rs.Merges, "nodes", rs.Nodes, "relations", rs.Relations)
			return nil
		}),
	)
	engine = append(engine, c.engine...)

	steps, err := e.MinUnionCount(engine...)
	if errors.Is(err, unify.ErrNotUnifiable) {
		if !c.inspect {
			rep = Inspect(e.Adjacency())
		}
		return 0, errors.Wrapf(err, "%d components", rep.Components)
	}

	return steps, err
}

// lineReader yields trimmed, non-blank lines.
type lineReader struct {
	sc *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

// next returns the next non-blank line, or io.ErrUnexpectedEOF once the
// input is exhausted.
func (l *lineReader) next() (string, error) {
	for l.sc.Scan() {
		line := strings.TrimSpace(l.sc.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := l.sc.Err(); err != nil {
		return "", err
	}

	return "", io.ErrUnexpectedEOF
}
