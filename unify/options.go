// SPDX-License-Identifier: MIT

package unify

import (
	"context"
	"fmt"
)

// Option configures Unify via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Unify is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one Unify run.
type Options struct {
	// Ctx is checked once per round; cancellation aborts with ctx.Err().
	Ctx context.Context

	// OnRound is called after every completed round. A non-nil error aborts
	// the run and is returned wrapped.
	OnRound func(RoundStats) error

	// MaxRounds, if > 0, caps the number of rounds. Zero means no cap.
	MaxRounds int

	err error
}

// DefaultOptions returns Options with a background context, a no-op OnRound
// hook and no round cap.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnRound:   func(RoundStats) error { return nil },
		MaxRounds: 0,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRound registers a callback invoked after each round.
func WithOnRound(fn func(RoundStats) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithMaxRounds caps the number of rounds.
//
//	k > 0:  at most k rounds, then ErrRoundLimit
//	k == 0: no cap
//	k < 0:  invalid option → ErrOptionViolation
func WithMaxRounds(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxRounds = k
	}
}
