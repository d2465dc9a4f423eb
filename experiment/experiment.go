// SPDX-License-Identifier: MIT

package experiment

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/byteland/unify"
)

// Bounds of the input protocol.
const (
	MinCities      = 2
	MaxCities      = 600
	MaxExperiments = 1000
)

// Experiment is one Byteland instance: a city count and its road layout.
type Experiment struct {
	numCities int
	adjacency [][]int
}

// New creates an experiment for numCities cities.
// Returns ErrCityCount unless MinCities ≤ numCities ≤ MaxCities.
func New(numCities int) (*Experiment, error) {
	if numCities < MinCities || numCities > MaxCities {
		return nil, errors.Wrapf(ErrCityCount, "%d not in [%d, %d]", numCities, MinCities, MaxCities)
	}

	return &Experiment{numCities: numCities}, nil
}

// NumCities returns the city count.
func (e *Experiment) NumCities() int { return e.numCities }

// ParseParents splits a whitespace-separated line of integers.
func ParseParents(line string) ([]int, error) {
	fields := strings.Fields(line)
	parents := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrBadToken, "token %d (%q)", i+1, f)
		}
		parents[i] = v
	}

	return parents, nil
}

// SetParentsString parses line with ParseParents and applies it with SetParents.
func (e *Experiment) SetParentsString(line string) error {
	parents, err := ParseParents(line)
	if err != nil {
		return err
	}

	return e.SetParents(parents)
}

// SetParents installs the roads given as a parent list: city k (1-based
// position in parents) is connected to parents[k-1]. Both directions are
// recorded in the adjacency list.
func (e *Experiment) SetParents(parents []int) error {
	if len(parents) != e.numCities-1 {
		return errors.Wrapf(ErrRelationCount, "got %d, want %d", len(parents), e.numCities-1)
	}
	adj := make([][]int, e.numCities)
	for i, p := range parents {
		city := i + 1
		if p < 0 || p >= e.numCities {
			return errors.Wrapf(ErrParentRange, "city %d has parent %d", city, p)
		}
		if p == city {
			return errors.Wrapf(ErrSelfParent, "city %d", city)
		}
		adj[city] = append(adj[city], p)
		adj[p] = append(adj[p], city)
	}
	e.adjacency = adj

	return nil
}

// SetAdjacency installs an adjacency list directly; adj[i] lists the
// neighbours of city i. Its length must equal the city count.
func (e *Experiment) SetAdjacency(adj [][]int) error {
	if len(adj) != e.numCities {
		return errors.Wrapf(ErrAdjacencySize, "got %d rows, want %d", len(adj), e.numCities)
	}
	e.adjacency = adj

	return nil
}

// Adjacency returns the installed adjacency list (nil before any Set call).
func (e *Experiment) Adjacency() [][]int { return e.adjacency }

// MinUnionCount builds a fresh graph from the adjacency list and returns the
// number of union rounds needed to reach a single city.
func (e *Experiment) MinUnionCount(opts ...unify.Option) (int, error) {
	if e.adjacency == nil {
		return 0, errors.WithStack(ErrNoAdjacency)
	}
	g, err := unify.NewGraph(e.adjacency)
	if err != nil {
		return 0, errors.Wrap(err, "build graph")
	}

	return g.Unify(opts...)
}
