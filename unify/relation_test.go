// SPDX-License-Identifier: MIT

package unify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/byteland/unify"
)

func TestNewRelation_SelfLoop(t *testing.T) {
	for a := 0; a < 50; a++ {
		_, err := unify.NewRelation(a, a)
		assert.ErrorIs(t, err, unify.ErrSelfLoop, "a=%d", a)
	}
}

func TestRelation_Symmetry(t *testing.T) {
	seen := make(map[unify.Relation]int)
	for a := 0; a < 30; a++ {
		for b := 0; b < 30; b++ {
			if a == b {
				continue
			}
			ab, err := unify.NewRelation(a, b)
			require.NoError(t, err)
			ba, err := unify.NewRelation(b, a)
			require.NoError(t, err)

			assert.Equal(t, ab, ba)
			assert.Equal(t, ab.Key(), ba.Key())
			seen[ab]++
		}
	}
	// every unordered pair collapsed into exactly one key, seen from both sides
	assert.Len(t, seen, 30*29/2)
	for r, n := range seen {
		assert.Equal(t, 2, n, "relation %s", r)
	}
}

func TestRelation_Key(t *testing.T) {
	r, err := unify.NewRelation(7, 3)
	require.NoError(t, err)
	assert.Equal(t, 3+unify.KeyStride*7, r.Key())
	assert.Equal(t, "3-7", r.String())
}

func TestRelation_OtherAndTouches(t *testing.T) {
	r, err := unify.NewRelation(4, 9)
	require.NoError(t, err)

	other, ok := r.Other(4)
	assert.True(t, ok)
	assert.Equal(t, 9, other)
	other, ok = r.Other(9)
	assert.True(t, ok)
	assert.Equal(t, 4, other)
	_, ok = r.Other(5)
	assert.False(t, ok)

	assert.True(t, r.Touches(4))
	assert.True(t, r.Touches(9))
	assert.False(t, r.Touches(0))
}
