// SPDX-License-Identifier: MIT
//
// shapes.go: tree constructors.
//
// Contract for every constructor:
//   - n ≥ minCities (else ErrTooFewCities).
//   - Returns exactly n-1 parents; parent of city k is always < k, so the
//     result is a connected tree rooted at city 0.

package treegen

import "fmt"

const (
	methodPath        = "Path"
	methodStar        = "Star"
	methodBinary      = "BinaryTree"
	methodCaterpillar = "Caterpillar"
	methodRandom      = "Random"

	minCities = 2
)

func checkSize(method string, n int) error {
	if n < minCities {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minCities, ErrTooFewCities)
	}
	return nil
}

// Path builds 0-1-2-…-(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(_ config) ([]int, error) {
		if err := checkSize(methodPath, n); err != nil {
			return nil, err
		}
		parents := make([]int, n-1)
		for k := 1; k < n; k++ {
			parents[k-1] = k - 1
		}
		return parents, nil
	}
}

// Star attaches every city to city 0.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(_ config) ([]int, error) {
		if err := checkSize(methodStar, n); err != nil {
			return nil, err
		}
		return make([]int, n-1), nil
	}
}

// BinaryTree builds a complete binary tree in heap layout: parent(k) = (k-1)/2.
// Complexity: O(n).
func BinaryTree(n int) Constructor {
	return func(_ config) ([]int, error) {
		if err := checkSize(methodBinary, n); err != nil {
			return nil, err
		}
		parents := make([]int, n-1)
		for k := 1; k < n; k++ {
			parents[k-1] = (k - 1) / 2
		}
		return parents, nil
	}
}

// Caterpillar builds a path spine of s = ceil(n/(legs+1)) cities and hangs the
// remaining cities off the spine, at most legs per spine city, in id order.
// legs == 0 degrades to Path.
// Complexity: O(n).
func Caterpillar(n, legs int) Constructor {
	return func(_ config) ([]int, error) {
		if err := checkSize(methodCaterpillar, n); err != nil {
			return nil, err
		}
		if legs < 0 {
			return nil, fmt.Errorf("%s: legs=%d < 0: %w", methodCaterpillar, legs, ErrBadParameter)
		}
		spine := (n + legs) / (legs + 1)
		parents := make([]int, n-1)
		for k := 1; k < n; k++ {
			if k < spine {
				parents[k-1] = k - 1
				continue
			}
			parents[k-1] = (k - spine) / legs
		}
		return parents, nil
	}
}

// Random builds a random recursive tree: parent(k) is uniform in [0, k).
// Requires WithSeed or WithRand.
// Complexity: O(n).
func Random(n int) Constructor {
	return func(cfg config) ([]int, error) {
		if err := checkSize(methodRandom, n); err != nil {
			return nil, err
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		parents := make([]int, n-1)
		for k := 1; k < n; k++ {
			parents[k-1] = cfg.rng.Intn(k)
		}
		return parents, nil
	}
}
