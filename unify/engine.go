// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Round driver, best-partner rule and edge contraction.

package unify

import "fmt"

// Run builds a Graph from adj and unifies it. It keeps no state between calls.
//
// Returns the number of rounds, or any error of NewGraph or Unify.
func Run(adj [][]int, opts ...Option) (int, error) {
	g, err := NewGraph(adj)
	if err != nil {
		return 0, err
	}

	return g.Unify(opts...)
}

// Unify runs rounds until a single node remains and returns the round count.
//
// Implementation:
//   - Stage 1: Resolve options; an invalid option aborts with ErrOptionViolation.
//   - Stage 2: Loop on State(): Done returns the count, Stuck fails with
//     ErrNotUnifiable, Running executes one more round.
//   - Stage 3: After each round reset merged flags, count it and call OnRound.
//
// Behavior highlights:
//   - Explicit loop with an accumulator; depth does not grow with the round count.
//   - Every Running round contracts at least one relation, so the node count
//     strictly decreases and the loop terminates.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ErrNotUnifiable, ErrRoundLimit.
//   - ErrIdenticalNodes / ErrNodeNotFound on invariant violations.
//   - ctx.Err() on cancellation, or the wrapped OnRound error.
//
// No partial count is returned together with an error.
func (g *Graph) Unify(opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	for {
		switch g.State() {
		case Done:
			return g.steps, nil
		case Stuck:
			return 0, fmt.Errorf("%w: %d nodes left without relations", ErrNotUnifiable, g.NodeCount())
		}

		select {
		case <-o.Ctx.Done():
			return 0, o.Ctx.Err()
		default:
		}
		if o.MaxRounds > 0 && g.steps >= o.MaxRounds {
			return 0, fmt.Errorf("%w: %d rounds, %d nodes left", ErrRoundLimit, g.steps, g.NodeCount())
		}

		merges, err := g.round()
		if err != nil {
			return 0, fmt.Errorf("unify: round %d: %w", g.steps+1, err)
		}
		g.steps++

		stats := RoundStats{
			Round:     g.steps,
			Merges:    merges,
			Nodes:     g.NodeCount(),
			Relations: g.RelationCount(),
		}
		if err = o.OnRound(stats); err != nil {
			return 0, fmt.Errorf("unify: OnRound error at round %d: %w", g.steps, err)
		}
	}
}

// round performs one synchronized wave of merges over a snapshot of the
// node ids taken at round start, then clears every merged flag.
func (g *Graph) round() (int, error) {
	merges := 0
	for _, id := range g.Nodes() {
		n := g.arena[id]
		if n == nil || n.merged {
			// absorbed earlier in this round, or already paired
			continue
		}
		partner, ok := g.bestPartner(id)
		if !ok {
			continue
		}
		n.merged = true
		g.arena[partner].merged = true
		if err := g.contract(id, partner); err != nil {
			return merges, err
		}
		merges++
	}
	g.clearMerged()

	return merges, nil
}

// bestPartner picks the unmerged neighbour of id with the lowest degree.
// Neighbours are scanned in ascending order and only a strictly lower degree
// replaces the pick, so ties go to the lowest id.
func (g *Graph) bestPartner(id int) (int, bool) {
	best, bestDegree := -1, 0
	for _, m := range g.neighborIDs(id) {
		if g.arena[m].merged {
			continue
		}
		d := g.links[m].Size()
		if best < 0 || d < bestDegree {
			best, bestDegree = m, d
		}
	}

	return best, best >= 0
}

// contract merges absorb into keep: absorb's other relations are re-attached
// to keep (duplicates collapse), then absorb and its relations are removed.
func (g *Graph) contract(keep, absorb int) error {
	if keep == absorb {
		return fmt.Errorf("%w: %d", ErrIdenticalNodes, keep)
	}
	if _, err := g.Lookup(keep); err != nil {
		return err
	}
	if _, err := g.Lookup(absorb); err != nil {
		return err
	}
	for _, x := range g.neighborIDs(absorb) {
		if x == keep {
			continue
		}
		if err := g.addRelation(keep, x); err != nil {
			return err
		}
	}

	return g.removeNode(absorb)
}

// clearMerged resets the round-local flag on every present node.
func (g *Graph) clearMerged() {
	for _, id := range g.Nodes() {
		g.arena[id].merged = false
	}
}
