package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liran-funaro/derivex/expr"
	"github.com/liran-funaro/derivex/intset"
)

func TestVectorNullableOrder(t *testing.T) {
	digits, err := intset.FromRanges(intset.Range{Lo: '0', Hi: '9'})
	require.NoError(t, err)

	v := expr.NewVector([]expr.Rule{
		{Name: "digits", Expr: expr.Star(expr.NewSymbolSet(digits))},
		{Name: "always", Expr: expr.Epsilon},
		{Name: "never", Expr: expr.NewSymbolSet(digits)},
	})
	require.Equal(t, []string{"digits", "always"}, v.Nullable())
}

func TestVectorDerivativePreservesNamesAndOrder(t *testing.T) {
	a, err := intset.FromPoints('a')
	require.NoError(t, err)
	b, err := intset.FromPoints('b')
	require.NoError(t, err)

	v := expr.NewVector([]expr.Rule{
		{Name: "a", Expr: expr.NewSymbolSet(a)},
		{Name: "b", Expr: expr.NewSymbolSet(b)},
	})
	d := v.Derivative('a')
	require.Equal(t, []string{"a", "b"}, d.Names())
	require.Equal(t, []string{"a"}, d.Nullable())
}

func TestVectorNullVectorKey(t *testing.T) {
	a, err := intset.FromPoints('a')
	require.NoError(t, err)
	v := expr.NewVector([]expr.Rule{{Name: "a", Expr: expr.NewSymbolSet(a)}})
	nv := v.Derivative('a').NullVector()
	alsoNull := expr.NewVector([]expr.Rule{{Name: "a", Expr: expr.Null}})
	require.True(t, nv.Equal(alsoNull))
}

func TestVectorDuplicateNamesPreserved(t *testing.T) {
	a, err := intset.FromPoints('a')
	require.NoError(t, err)
	sa := expr.NewSymbolSet(a)
	v := expr.NewVector([]expr.Rule{
		{Name: "dup", Expr: sa},
		{Name: "dup", Expr: expr.Concat(sa, sa)},
	})
	require.Equal(t, []string{"dup", "dup"}, v.Names())
}
