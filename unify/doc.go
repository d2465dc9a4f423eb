// SPDX-License-Identifier: MIT

// Package unify implements the Byteland union-round contraction engine.
//
// A Graph holds the cities (nodes) and roads (relations) of one experiment.
// Unify repeatedly runs synchronized rounds; in every round each still-distinct
// node may merge with one adjacent node that has not merged yet in that round.
// Merging contracts the relation: the absorbed node's other relations are
// re-attached to the surviving node and the absorbed node disappears.
// The number of rounds needed to reach a single node is the result.
//
// Partner rule
//
//	Among the unmerged neighbours of a node, the one with the fewest current
//	relations is chosen. Ties go to the lowest id.
//
// Determinism
//
//	Every round iterates a snapshot of node ids in ascending order, and
//	neighbours are scanned in ascending order as well. The same adjacency list
//	always yields the same pairings and the same step count.
//
// State machine
//
//	Running  more than one node and at least one relation
//	Done     exactly one node (or none): Unify returns the round count
//	Stuck    more than one node and no relations: Unify returns ErrNotUnifiable
//
// Usage
//
//	steps, err := unify.Run([][]int{{}, {0}, {1}, {2}})
//	// steps == 2
//
//	g, err := unify.NewGraph(adj)
//	steps, err = g.Unify(
//	    unify.WithContext(ctx),
//	    unify.WithOnRound(func(rs unify.RoundStats) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil        nil *Graph.
//   - ErrSelfLoop        relation whose endpoints are identical.
//   - ErrNodeNotFound    negative id or lookup of a removed node.
//   - ErrIdenticalNodes  contraction of a node into itself (invariant violation).
//   - ErrNotUnifiable    disconnected structure.
//   - ErrRoundLimit      WithMaxRounds cap exceeded.
//   - ErrOptionViolation invalid Option value.
//
// Complexity (V nodes, E relations, E = V-1 for trees)
//
//   - NewGraph: O((V+E)·log V).
//   - One round: O(Σ deg·log V) for partner scans plus contraction work.
//   - Rounds: O(log V) for paths, up to V-1 for stars.
//
// A Graph is not safe for concurrent use; build one per experiment.
package unify
