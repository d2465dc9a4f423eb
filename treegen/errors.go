// SPDX-License-Identifier: MIT
//
// errors.go: sentinel errors for the treegen package.
// Callers branch with errors.Is; context is attached with %w.

package treegen

import "errors"

// ErrTooFewCities indicates that a size parameter is below the shape minimum.
var ErrTooFewCities = errors.New("treegen: too few cities")

// ErrBadParameter indicates a shape parameter outside its domain (e.g. negative legs).
var ErrBadParameter = errors.New("treegen: invalid parameter")

// ErrNeedRandSource indicates that a stochastic shape was requested without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("treegen: rng is required")

// ErrUnknownShape indicates an unsupported shape name passed to Build.
var ErrUnknownShape = errors.New("treegen: unknown shape")
