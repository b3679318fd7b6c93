package advanced

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers shared across the package tests.

func zeroTranslation() Translation {
	t, err := NewTranslation(new(big.Rat), new(big.Rat))
	if err != nil {
		panic(err)
	}
	return t
}

func mustPythagorean(p, q int) *PythagoreanAngle {
	a, err := NewPythagoreanAngle(p, q)
	if err != nil {
		panic(err)
	}
	return a
}

func TestPythagoreanTripleGenerators(t *testing.T) {
	cases := []struct {
		p, q int
		ok   bool
	}{
		{3, 2, true},
		{4, 1, true},
		{2, 1, true},
		{1, 2, true},
		{1, 0, true},
		{4, 2, false}, // gcd 2
		{3, 1, false}, // both odd
		{6, 3, false}, // gcd 3
		{0, 0, false},
	}
	for _, c := range cases {
		_, err := NewPythagoreanAngle(c.p, c.q)
		if c.ok {
			assert.NoError(t, err, "(%d,%d)", c.p, c.q)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTripleGenerators, "(%d,%d)", c.p, c.q)
		}
	}
}

func TestPythagoreanCosSin(t *testing.T) {
	tr := zeroTranslation()
	a := mustPythagorean(4, 1)
	assert.Equal(t, 0, a.CosExpr(tr).A.Cmp(big.NewRat(8, 17)))
	assert.Equal(t, 0, a.SinExpr(tr).A.Cmp(big.NewRat(15, 17)))

	// Swapped generators give the same geometric angle.
	b := mustPythagorean(1, 4)
	assert.Equal(t, 0, CompareQuad(a.CosExpr(tr), b.CosExpr(tr)))
	assert.Equal(t, 0, CompareQuad(a.SinExpr(tr), b.SinExpr(tr)))
}

func TestNewTranslation(t *testing.T) {
	_, err := NewTranslation(nil, big.NewRat(1, 2))
	assert.ErrorIs(t, err, ErrInvalidTranslation)

	orig := big.NewRat(1, 3)
	tr, err := NewTranslation(orig, big.NewRat(0, 1))
	require.NoError(t, err)

	// Components are copied; the caller cannot reach in afterward.
	orig.SetInt64(7)
	assert.Equal(t, 0, tr.T1.Cmp(big.NewRat(1, 3)))
	assert.Equal(t, 0, tr.Component(0).Cmp(big.NewRat(1, 3)))
	assert.Equal(t, 0, tr.Component(1).Sign())
}

func TestPointSetSorted(t *testing.T) {
	set := NewPointSet([]Point{{2, 1}, {0, 3}, {2, 0}, {0, 0}})
	assert.Equal(t, []Point{{0, 0}, {0, 3}, {2, 0}, {2, 1}}, set.Sorted())
	assert.True(t, set.Contains(Point{2, 1}))
	assert.False(t, set.Contains(Point{1, 1}))
}
