// SPDX-License-Identifier: MIT

package treegen_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/byteland/treegen"
)

// requireTree checks that parents describes a tree rooted at city 0.
func requireTree(t *testing.T, parents []int, n int) {
	t.Helper()
	require.Len(t, parents, n-1)
	for i, p := range parents {
		k := i + 1
		require.GreaterOrEqual(t, p, 0, "parent of %d", k)
		require.Less(t, p, k, "parent of %d must precede it", k)
	}
}

func TestShapes_Functional(t *testing.T) {
	tests := []struct {
		name string
		ctor treegen.Constructor
		want []int
	}{
		{"Path(4)", treegen.Path(4), []int{0, 1, 2}},
		{"Star(4)", treegen.Star(4), []int{0, 0, 0}},
		{"BinaryTree(7)", treegen.BinaryTree(7), []int{0, 0, 1, 1, 2, 2}},
		{"Caterpillar(8,2)", treegen.Caterpillar(8, 2), []int{0, 1, 0, 0, 1, 1, 2}},
		{"Caterpillar(5,0)", treegen.Caterpillar(5, 0), []int{0, 1, 2, 3}},
		{"Path(2)", treegen.Path(2), []int{0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := treegen.Generate(tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			requireTree(t, got, len(tc.want)+1)
		})
	}
}

func TestShapes_TooFewCities(t *testing.T) {
	for _, ctor := range []treegen.Constructor{
		treegen.Path(1), treegen.Star(0), treegen.BinaryTree(-3),
		treegen.Caterpillar(1, 2), treegen.Random(1),
	} {
		_, err := treegen.Generate(ctor, treegen.WithSeed(1))
		assert.ErrorIs(t, err, treegen.ErrTooFewCities)
	}
}

func TestCaterpillar_NegativeLegs(t *testing.T) {
	_, err := treegen.Generate(treegen.Caterpillar(6, -1))
	assert.ErrorIs(t, err, treegen.ErrBadParameter)
}

func TestGenerate_NilConstructor(t *testing.T) {
	_, err := treegen.Generate(nil)
	assert.ErrorIs(t, err, treegen.ErrBadParameter)
}

func TestRandom_NeedsRand(t *testing.T) {
	_, err := treegen.Generate(treegen.Random(10))
	assert.ErrorIs(t, err, treegen.ErrNeedRandSource)
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := treegen.Generate(treegen.Random(200), treegen.WithSeed(42))
	require.NoError(t, err)
	b, err := treegen.Generate(treegen.Random(200), treegen.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	requireTree(t, a, 200)
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { treegen.WithRand(nil) })
}

func TestBuild_ByName(t *testing.T) {
	for _, shape := range treegen.Shapes() {
		parents, err := treegen.Build(shape, 30, treegen.WithSeed(7))
		require.NoError(t, err, shape)
		requireTree(t, parents, 30)
	}

	_, err := treegen.Build("moebius", 10)
	assert.ErrorIs(t, err, treegen.ErrUnknownShape)
}

func TestShapes_Sorted(t *testing.T) {
	assert.Equal(t,
		[]string{"binary", "caterpillar", "path", "random", "star"},
		treegen.Shapes())
}

func TestFormatAndWriteDocument(t *testing.T) {
	assert.Equal(t, "0 1 2", treegen.Format([]int{0, 1, 2}))
	assert.Equal(t, "", treegen.Format(nil))

	var buf bytes.Buffer
	require.NoError(t, treegen.WriteDocument(&buf, []int{0, 1, 2}, []int{0}))
	assert.Equal(t, "2\n4\n0 1 2\n2\n0\n", buf.String())
}
