// SPDX-License-Identifier: MIT

package experiment

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Report summarizes the structure of an adjacency list.
type Report struct {
	// Nodes is the number of distinct city ids (rows plus ids only seen as neighbours).
	Nodes int
	// Edges is the number of distinct undirected roads.
	Edges int
	// Components is the number of connected components.
	Components int
	// SelfPairs counts entries listing a city as its own neighbour.
	SelfPairs int
	// Invalid counts negative neighbour ids, which are ignored.
	Invalid int
}

// IsTree reports whether the structure is a single connected tree.
func (r Report) IsTree() bool {
	return r.Components == 1 && r.Edges == r.Nodes-1
}

// Inspect builds an undirected view of adj and reports its shape.
// It never fails; malformed entries are counted instead.
func Inspect(adj [][]int) Report {
	var rep Report
	g := simple.NewUndirectedGraph()
	for i := range adj {
		g.AddNode(simple.Node(i))
	}
	for i, row := range adj {
		for _, j := range row {
			switch {
			case j < 0:
				rep.Invalid++
				continue
			case j == i:
				rep.SelfPairs++
				continue
			}
			if g.HasEdgeBetween(int64(i), int64(j)) {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
		}
	}
	rep.Nodes = g.Nodes().Len()
	rep.Edges = g.Edges().Len()
	rep.Components = len(topo.ConnectedComponents(g))

	return rep
}
