// SPDX-License-Identifier: MIT

// Package treegen generates Byteland city trees as parent lists.
//
// A parent list p describes a tree of n = len(p)+1 cities: city k (1 ≤ k < n)
// is connected to city p[k-1]. This is exactly the adjacency string the
// experiment protocol carries, so generated trees can be fed to
// experiment.SetParents or written out with Format and WriteDocument.
//
// Components:
//
//   - Constructor: a deterministic closure producing one parent list.
//   - Generate:    resolves options and runs a Constructor.
//   - Build:       the same, selected by shape name (used by the CLI).
//   - Options:     WithSeed / WithRand for the stochastic Random shape.
//
// Shapes:
//
//	path         0-1-2-…-(n-1)
//	star         every city attached to city 0
//	binary       complete binary heap layout, parent of k is (k-1)/2
//	caterpillar  a path spine with up to two leaves per spine city
//	random       random recursive tree, parent of k drawn from [0, k)
//
// Guarantees:
//
//   - Every parent list describes a connected tree.
//   - Same inputs, options and seed produce the same list.
//   - Constructors never panic; option constructors panic on nil arguments.
package treegen
