package expr

// Nu returns the nullability witness of e: Epsilon if e accepts the empty
// string, Null otherwise. The result is memoized on first call — without
// this, computing Nu on the derivative outputs produced during DFA
// construction is super-linear in the pattern size (see the pathological
// a?^n case).
func (e *Expr) Nu() *Expr {
	if e.nu != nil {
		return e.nu
	}
	var result *Expr
	switch e.kind {
	case KindEpsilon:
		result = Epsilon
	case KindSymbolSet:
		result = Null
	case KindStar:
		result = Epsilon
	case KindComplement:
		if e.sub.Nu().Equal(Epsilon) {
			result = Null
		} else {
			result = Epsilon
		}
	case KindConcat:
		result = Conjunction(e.left.Nu(), e.right.Nu())
	case KindAlt:
		result = Alternation(e.left.Nu(), e.right.Nu())
	case KindConj:
		result = Conjunction(e.left.Nu(), e.right.Nu())
	default:
		panic("expr: Nu: unreachable kind " + e.kind.String())
	}
	e.nu = result
	return result
}

// Nullable reports whether e's language contains the empty string.
func (e *Expr) Nullable() bool { return e.Nu().Equal(Epsilon) }
