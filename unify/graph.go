// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction, canonical node lookup and structural mutation.
//
// Determinism:
//   - Nodes(), Neighbors() and Relations() return ascending results.
//
// Ownership:
//   - Every structural operation resolves ids through the arena, so the merged
//     flag and the relation set always act on the single canonical *Node.

package unify

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
)

// NewGraph builds a Graph from an adjacency list.
//
// Implementation:
//   - Stage 1: Create a node for every index of adj, including rows without neighbours.
//   - Stage 2: For every pair (i, j) create j if it is only referenced as a neighbour,
//     skip i == j, and add Relation(i, j) unless it is already present.
//
// Inputs:
//   - adj: adj[i] lists the neighbour ids of node i. Both directions may be listed;
//     duplicates collapse into one relation.
//
// Returns:
//   - *Graph with every node unmerged and zero steps taken.
//
// Errors:
//   - ErrNodeNotFound: a neighbour id is negative.
//
// Complexity:
//   - Time O((V+E)·log V), Space O(V+E).
func NewGraph(adj [][]int) (*Graph, error) {
	g := &Graph{
		arena:     make(map[int]*Node, len(adj)),
		live:      treeset.NewWithIntComparator(),
		links:     make(map[int]*treeset.Set, len(adj)),
		relations: make(map[Relation]struct{}, len(adj)),
	}

	for i := range adj {
		if err := g.ensureNode(i); err != nil {
			return nil, err
		}
	}
	for i, row := range adj {
		for _, j := range row {
			if err := g.ensureNode(j); err != nil {
				return nil, fmt.Errorf("unify: neighbour of %d: %w", i, err)
			}
			if i == j {
				continue
			}
			if err := g.addRelation(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ensureNode registers id if it has no node yet. Only used while building.
func (g *Graph) ensureNode(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: negative id %d", ErrNodeNotFound, id)
	}
	if _, ok := g.arena[id]; ok {
		return nil
	}
	g.arena[id] = &Node{ID: id}
	g.links[id] = treeset.NewWithIntComparator()
	g.live.Add(id)

	return nil
}

// Lookup returns the canonical node for id.
//
// Errors:
//   - ErrNodeNotFound: id is out of range or the node was absorbed.
//
// Complexity: O(1) expected.
func (g *Graph) Lookup(id int) (*Node, error) {
	n, ok := g.arena[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// addRelation inserts Relation(a, b) between two present nodes; existing
// relations are left untouched.
func (g *Graph) addRelation(a, b int) error {
	r, err := NewRelation(a, b)
	if err != nil {
		return err
	}
	if _, err = g.Lookup(r.A); err != nil {
		return err
	}
	if _, err = g.Lookup(r.B); err != nil {
		return err
	}
	if _, exists := g.relations[r]; exists {
		return nil
	}
	g.relations[r] = struct{}{}
	g.links[r.A].Add(r.B)
	g.links[r.B].Add(r.A)

	return nil
}

// removeNode deletes every relation touching id, then the node itself.
func (g *Graph) removeNode(id int) error {
	if _, err := g.Lookup(id); err != nil {
		return err
	}
	for _, nb := range g.neighborIDs(id) {
		r, _ := NewRelation(id, nb)
		delete(g.relations, r)
		g.links[nb].Remove(id)
	}
	delete(g.links, id)
	delete(g.arena, id)
	g.live.Remove(id)

	return nil
}

// neighborIDs returns the ascending neighbour ids of a present node.
func (g *Graph) neighborIDs(id int) []int {
	return ints(g.links[id].Values())
}

// Neighbors returns the ids adjacent to id in ascending order.
//
// Errors:
//   - ErrNodeNotFound: id is not present.
//
// Complexity: O(d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if _, err := g.Lookup(id); err != nil {
		return nil, err
	}

	return g.neighborIDs(id), nil
}

// Degree returns the number of current relations touching id,
// regardless of the merged state of the neighbours.
func (g *Graph) Degree(id int) (int, error) {
	if _, err := g.Lookup(id); err != nil {
		return 0, err
	}

	return g.links[id].Size(), nil
}

// Nodes returns the ids of present nodes in ascending order.
func (g *Graph) Nodes() []int {
	return ints(g.live.Values())
}

// Relations returns the current relations ordered by (A, B).
func (g *Graph) Relations() []Relation {
	out := make([]Relation, 0, len(g.relations))
	for r := range g.relations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// HasRelation reports whether a relation between a and b is present.
func (g *Graph) HasRelation(a, b int) bool {
	r, err := NewRelation(a, b)
	if err != nil {
		return false
	}
	_, ok := g.relations[r]

	return ok
}

// NodeCount returns the number of present nodes.
func (g *Graph) NodeCount() int { return g.live.Size() }

// RelationCount returns the number of present relations.
func (g *Graph) RelationCount() int { return len(g.relations) }

// Steps returns the number of rounds completed so far.
func (g *Graph) Steps() int { return g.steps }

// State classifies the graph for the round loop.
func (g *Graph) State() State {
	switch {
	case g.NodeCount() <= 1:
		return Done
	case len(g.relations) == 0:
		return Stuck
	default:
		return Running
	}
}

// ints converts treeset values, which are always ints here.
func ints(values []interface{}) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = v.(int)
	}

	return out
}
