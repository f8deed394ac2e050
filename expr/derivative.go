package expr

// Derivative computes the Brzozowski derivative ∂_c(e): the expression
// matching exactly those strings w for which c·w ∈ L(e). Correctness of
// the worklist construction in package automaton relies on the smart
// constructors keeping these outputs within a finite similarity class.
func Derivative(e *Expr, c rune) *Expr {
	switch e.kind {
	case KindEpsilon:
		return Null
	case KindSymbolSet:
		if e.chars.Contains(c) {
			return Epsilon
		}
		return Null
	case KindStar:
		return Concat(Derivative(e.sub, c), e)
	case KindComplement:
		return Complement(Derivative(e.sub, c))
	case KindConcat:
		return Alternation(
			Concat(Derivative(e.left, c), e.right),
			Concat(e.left.Nu(), Derivative(e.right, c)),
		)
	case KindAlt:
		return Alternation(Derivative(e.left, c), Derivative(e.right, c))
	case KindConj:
		return Conjunction(Derivative(e.left, c), Derivative(e.right, c))
	default:
		panic("expr: Derivative: unreachable kind " + e.kind.String())
	}
}
