package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liran-funaro/derivex/automaton"
	"github.com/liran-funaro/derivex/expr"
	"github.com/liran-funaro/derivex/intset"
	"github.com/liran-funaro/derivex/internal/dot"
)

func TestWriteProducesDigraphWithAcceptState(t *testing.T) {
	chars, err := intset.FromPoints('a')
	require.NoError(t, err)
	v := expr.NewVector([]expr.Rule{{Name: "a", Expr: expr.NewSymbolSet(chars)}})
	a, err := automaton.Construct(v)
	require.NoError(t, err)

	var buf strings.Builder
	dot.Write(&buf, a, "g")
	out := buf.String()

	require.Contains(t, out, "digraph g {")
	require.Contains(t, out, "style=filled,color=green")
	require.Contains(t, out, "}")
}
