package intset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liran-funaro/derivex/intset"
)

func mustPoints(t *testing.T, points ...rune) *intset.Set {
	t.Helper()
	s, err := intset.FromPoints(points...)
	require.NoError(t, err)
	return s
}

func TestCanonicalization(t *testing.T) {
	s := mustPoints(t, 5, 3, 4, 1, 1, 9)
	require.Equal(t, []intset.Range{{1, 1}, {3, 5}, {9, 9}}, s.Ranges())
	require.EqualValues(t, 5, s.Cardinality())

	for _, x := range []rune{1, 3, 4, 5, 9} {
		require.True(t, s.Contains(x), "expected %d to be contained", x)
	}
	for _, x := range []rune{0, 2, 6, 7, 8, 10} {
		require.False(t, s.Contains(x), "expected %d to be absent", x)
	}
}

func TestFromRangesMergesAdjacent(t *testing.T) {
	s, err := intset.FromRanges(intset.Range{Lo: 0, Hi: 5}, intset.Range{Lo: 6, Hi: 10})
	require.NoError(t, err)
	require.Equal(t, []intset.Range{{0, 10}}, s.Ranges())
}

func TestOutOfRange(t *testing.T) {
	_, err := intset.FromPoints(-1)
	require.ErrorIs(t, err, intset.ErrOutOfRange)

	_, err = intset.FromRanges(intset.Range{Lo: 0, Hi: intset.MaxCodePoint + 1})
	require.ErrorIs(t, err, intset.ErrOutOfRange)
}

func TestUnionCommutative(t *testing.T) {
	a := mustPoints(t, 1, 2, 3, 10)
	b := mustPoints(t, 3, 4, 5, 20)
	require.True(t, a.Union(b).Equal(b.Union(a)))

	want, err := intset.FromPoints(1, 2, 3, 4, 5, 10, 20)
	require.NoError(t, err)
	require.True(t, a.Union(b).Equal(want))
}

func TestIntersectionCommutative(t *testing.T) {
	a := mustPoints(t, 1, 2, 3, 10)
	b := mustPoints(t, 3, 4, 5, 10)
	require.True(t, a.Intersection(b).Equal(b.Intersection(a)))

	want, err := intset.FromPoints(3, 10)
	require.NoError(t, err)
	require.True(t, a.Intersection(b).Equal(want))
}

func TestDifference(t *testing.T) {
	a, err := intset.FromRanges(intset.Range{Lo: 0, Hi: 10})
	require.NoError(t, err)
	b, err := intset.FromRanges(intset.Range{Lo: 3, Hi: 5})
	require.NoError(t, err)

	want, err := intset.FromRanges(intset.Range{Lo: 0, Hi: 2}, intset.Range{Lo: 6, Hi: 10})
	require.NoError(t, err)
	require.True(t, a.Difference(b).Equal(want))
}

func TestIssuperset(t *testing.T) {
	a := mustPoints(t, 1, 2, 3)
	require.True(t, a.IsSuperset(a))
	require.True(t, a.IsSuperset(intset.Empty()))
	require.False(t, intset.Empty().IsSuperset(a))
}

func TestComplement(t *testing.T) {
	s := mustPoints(t, 0)
	c := s.Complement()
	require.False(t, c.Contains(0))
	require.True(t, c.Contains(1))
	require.True(t, c.Contains(intset.MaxCodePoint))
	require.True(t, c.Complement().Equal(s))
}

func TestUniverseAndEmptySentinels(t *testing.T) {
	require.True(t, intset.Universe().IsUniverse())
	require.True(t, intset.Empty().IsEmpty())
	require.False(t, intset.Universe().IsEmpty())
	require.False(t, intset.Empty().IsUniverse())
}
