// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Relation, Graph and State declarations plus sentinel errors.
// Policy:
//   - Node identity is the integer id; the Graph arena holds one *Node per id.
//   - Relations are stored normalized (A < B) so value equality is symmetric.

package unify

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Sentinel errors for graph construction and unification.
var (
	// ErrGraphNil is returned when a nil *Graph is used.
	ErrGraphNil = errors.New("unify: graph is nil")

	// ErrSelfLoop indicates a relation whose two endpoints are the same node.
	ErrSelfLoop = errors.New("unify: a node cannot be connected to itself")

	// ErrNodeNotFound indicates a lookup of an id that is not (or no longer) in the graph.
	ErrNodeNotFound = errors.New("unify: node not found")

	// ErrIdenticalNodes indicates an attempt to contract a node into itself.
	ErrIdenticalNodes = errors.New("unify: first and second node are the same")

	// ErrNotUnifiable indicates that nodes remain but no relation connects them.
	ErrNotUnifiable = errors.New("unify: structure is not unifiable")

	// ErrRoundLimit is returned when WithMaxRounds is exceeded.
	ErrRoundLimit = errors.New("unify: round limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("unify: invalid option supplied")
)

// KeyStride is the multiplier of the larger endpoint in Relation.Key.
// Keys are unique as long as every id is below KeyStride, which holds for
// every input accepted by the experiment layer (at most 600 cities).
const KeyStride = 3100

// Node is a city in the graph.
//
// ID is the identity; merged is round-local state owned by the Graph and
// reset at the end of every round.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID int

	merged bool
}

// Merged reports whether the node already took part in a merge this round.
func (n *Node) Merged() bool { return n.merged }

// Relation is an undirected road between two distinct nodes.
//
// Values produced by NewRelation are normalized so that A < B; therefore
// NewRelation(x, y) == NewRelation(y, x) and both hash to the same map key.
type Relation struct {
	A int
	B int
}

// State classifies the graph with respect to the round loop.
type State int

const (
	// Running means more than one node and at least one relation remain.
	Running State = iota
	// Done means at most one node remains.
	Done
	// Stuck means several nodes remain but nothing connects them.
	Stuck
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Stuck:
		return "stuck"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RoundStats describes the graph right after a completed round.
type RoundStats struct {
	// Round is the 1-based index of the round that just finished.
	Round int
	// Merges is the number of contractions performed during the round.
	Merges int
	// Nodes is the node count after the round.
	Nodes int
	// Relations is the relation count after the round.
	Relations int
}

// Graph is the mutable node/relation structure of one experiment.
//
// Storage:
//   - arena[id] is the canonical *Node for id; absorbed ids are deleted.
//     Keyed by id, so memory follows the number of distinct ids, not their size.
//   - live holds the ids of present nodes in ascending order.
//   - links[id] holds the neighbour ids of id in ascending order.
//   - relations is the set of current (normalized) relations.
//
// The engine mutates the Graph in place; it is not safe for concurrent use.
type Graph struct {
	arena     map[int]*Node
	live      *treeset.Set
	links     map[int]*treeset.Set
	relations map[Relation]struct{}
	steps     int
}
