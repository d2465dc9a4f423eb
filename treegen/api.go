// SPDX-License-Identifier: MIT
//
// api.go: public entry points: Generate, Build and the shape registry.

package treegen

import (
	"fmt"
	"sort"
)

// Constructor produces one parent list from the resolved config.
// Implementations validate parameters first and never panic.
type Constructor func(cfg config) ([]int, error)

// Generate resolves opts and runs c.
//
// Errors are wrapped once with "Generate: %w"; branch with errors.Is against
// ErrTooFewCities, ErrBadParameter or ErrNeedRandSource.
func Generate(c Constructor, opts ...Option) ([]int, error) {
	if c == nil {
		return nil, fmt.Errorf("Generate: nil constructor: %w", ErrBadParameter)
	}
	parents, err := c(newConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	return parents, nil
}

// Shape names accepted by Build.
const (
	ShapePath        = "path"
	ShapeStar        = "star"
	ShapeBinary      = "binary"
	ShapeCaterpillar = "caterpillar"
	ShapeRandom      = "random"
)

// defaultLegs is the number of leaves per spine city used by Build for caterpillars.
const defaultLegs = 2

var shapes = map[string]func(n int) Constructor{
	ShapePath:        Path,
	ShapeStar:        Star,
	ShapeBinary:      BinaryTree,
	ShapeCaterpillar: func(n int) Constructor { return Caterpillar(n, defaultLegs) },
	ShapeRandom:      Random,
}

// Shapes returns the names accepted by Build, sorted.
func Shapes() []string {
	out := make([]string, 0, len(shapes))
	for name := range shapes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Build generates an n-city tree of the named shape.
func Build(shape string, n int, opts ...Option) ([]int, error) {
	ctor, ok := shapes[shape]
	if !ok {
		return nil, fmt.Errorf("Build: %q: %w", shape, ErrUnknownShape)
	}

	return Generate(ctor(n), opts...)
}
