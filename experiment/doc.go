// SPDX-License-Identifier: MIT

// Package experiment is the input side of the Byteland union computation.
//
// It validates city counts and parent lists, turns them into the symmetric
// adjacency list consumed by package unify, and drives the line-oriented
// protocol used by the byteland binary:
//
//	T                      number of experiments, T < 1000
//	N                      number of cities, 2 ≤ N ≤ 600
//	p1 p2 … p(N-1)         parent of cities 1..N-1
//	…                      (N and parent line repeated)
//
// Every completed experiment prints its round count on its own line. An
// experiment that fails validation or unification is logged and skipped; it
// does not count towards T, so the next pair of lines is read in its place.
//
// Errors in the ErrValidation family (ErrCityCount, ErrRelationCount,
// ErrBadToken, ErrParentRange, ErrSelfParent, ErrAdjacencySize,
// ErrExperimentCount) all satisfy errors.Is(err, ErrValidation).
package experiment
