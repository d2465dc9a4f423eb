// SPDX-License-Identifier: MIT

package unify

import "fmt"

// NewRelation returns the normalized relation between a and b.
//
// Returns ErrSelfLoop when a == b. The result does not depend on argument
// order: NewRelation(x, y) == NewRelation(y, x).
//
// Complexity: O(1).
func NewRelation(a, b int) (Relation, error) {
	if a == b {
		return Relation{}, fmt.Errorf("%w: %d", ErrSelfLoop, a)
	}
	if a > b {
		a, b = b, a
	}

	return Relation{A: a, B: b}, nil
}

// Key returns min + KeyStride*max, an order-independent ordering key.
func (r Relation) Key() int {
	lo, hi := r.A, r.B
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo + KeyStride*hi
}

// Touches reports whether id is one of the endpoints.
func (r Relation) Touches(id int) bool {
	return r.A == id || r.B == id
}

// Other returns the endpoint opposite to id.
// The boolean is false when id is not an endpoint.
func (r Relation) Other(id int) (int, bool) {
	switch id {
	case r.A:
		return r.B, true
	case r.B:
		return r.A, true
	default:
		return 0, false
	}
}

// String renders the relation as "a-b".
func (r Relation) String() string {
	return fmt.Sprintf("%d-%d", r.A, r.B)
}
