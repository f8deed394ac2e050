package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liran-funaro/derivex/automaton"
	"github.com/liran-funaro/derivex/expr"
	"github.com/liran-funaro/derivex/intset"
)

func digitsPlus(t *testing.T) *expr.Expr {
	t.Helper()
	digits, err := intset.FromRanges(intset.Range{Lo: '0', Hi: '9'})
	require.NoError(t, err)
	d := expr.NewSymbolSet(digits)
	return expr.Concat(d, expr.Star(d))
}

func TestEmptyVectorRejected(t *testing.T) {
	_, err := automaton.Construct(expr.NewVector(nil))
	require.ErrorIs(t, err, automaton.ErrEmptyVector)
}

func TestNullableRuleRejected(t *testing.T) {
	v := expr.NewVector([]expr.Rule{{Name: "opt", Expr: expr.Star(digitsPlus(t))}})
	_, err := automaton.Construct(v)
	require.ErrorIs(t, err, automaton.ErrNullableRule)
}

func TestErrorStateHasNoOutgoingTransitionsAndNoAccepts(t *testing.T) {
	v := expr.NewVector([]expr.Rule{{Name: "num", Expr: digitsPlus(t)}})
	a, err := automaton.Construct(v)
	require.NoError(t, err)
	require.Empty(t, a.Transitions[a.Error])
	require.Empty(t, a.Accepts[a.Error])
}

func TestTransitionsDisjointAndSorted(t *testing.T) {
	v := expr.NewVector([]expr.Rule{{Name: "num", Expr: digitsPlus(t)}})
	a, err := automaton.Construct(v)
	require.NoError(t, err)

	for s, ts := range a.Transitions {
		for i := 1; i < len(ts); i++ {
			require.Less(t, ts[i-1].Hi, ts[i].Lo, "state %d: ranges not sorted/disjoint", s)
		}
	}
}

func TestAcceptListsPreserveDeclarationOrder(t *testing.T) {
	ab, err := intset.FromPoints('a')
	require.NoError(t, err)
	a := expr.NewSymbolSet(ab)

	v := expr.NewVector([]expr.Rule{
		{Name: "first", Expr: a},
		{Name: "second", Expr: a},
	})
	aut, err := automaton.Construct(v)
	require.NoError(t, err)

	start := 0
	next := aut.Step(start, 'a')
	require.Equal(t, []string{"first", "second"}, aut.Accepts[next])
}

func TestConstructTerminatesOnPathologicalPattern(t *testing.T) {
	ab, err := intset.FromPoints('a')
	require.NoError(t, err)
	a := expr.NewSymbolSet(ab)
	optA := expr.Alternation(expr.Epsilon, a)

	e := a
	for i := 0; i < 40; i++ {
		e = expr.Concat(e, optA)
	}
	v := expr.NewVector([]expr.Rule{{Name: "r", Expr: e}})
	aut, err := automaton.Construct(v)
	require.NoError(t, err)
	require.NotZero(t, aut.NumStates())
}

func TestStepUsesErrorStateOnUnknownInput(t *testing.T) {
	onlyA, err := intset.FromPoints('a')
	require.NoError(t, err)
	v := expr.NewVector([]expr.Rule{{Name: "a", Expr: expr.NewSymbolSet(onlyA)}})
	aut, err := automaton.Construct(v)
	require.NoError(t, err)
	require.Equal(t, aut.Error, aut.Step(0, 'z'))
}
