package expr

import "github.com/liran-funaro/derivex/intset"

// DerivativeClasses returns a set of non-empty IntegerSets partitioning Σ
// such that any two code points in the same class yield structurally
// identical Derivative(e, ·). This is what makes construction depend on
// expression structure rather than alphabet size (~1.1M code points).
//
// The result is memoized per the Python original's caching of
// _DerivativeClasses alongside Nu: it is otherwise recomputed once per
// outgoing transition AND once per validating caller, which is wasteful
// for deeply nested expressions.
func DerivativeClasses(e *Expr) []*intset.Set {
	if e.classesSet {
		return e.classes
	}
	var result []*intset.Set
	switch e.kind {
	case KindEpsilon:
		result = []*intset.Set{intset.Universe()}
	case KindSymbolSet:
		result = dedupeSets(e.chars, e.chars.Complement())
	case KindStar, KindComplement:
		result = DerivativeClasses(e.sub)
	case KindConcat:
		if e.left.Nullable() {
			result = pairwiseIntersections(DerivativeClasses(e.left), DerivativeClasses(e.right))
		} else {
			result = DerivativeClasses(e.left)
		}
	case KindAlt, KindConj:
		result = pairwiseIntersections(DerivativeClasses(e.left), DerivativeClasses(e.right))
	default:
		panic("expr: DerivativeClasses: unreachable kind " + e.kind.String())
	}
	e.classes = result
	e.classesSet = true
	return result
}

// pairwiseIntersections computes { a ∩ b : a ∈ A, b ∈ B, a ∩ b ≠ ∅ },
// deduplicated.
func pairwiseIntersections(a, b []*intset.Set) []*intset.Set {
	var out []*intset.Set
	for _, x := range a {
		for _, y := range b {
			i := x.Intersection(y)
			if !i.IsEmpty() {
				out = append(out, i)
			}
		}
	}
	return dedupeSets(out...)
}

func dedupeSets(sets ...*intset.Set) []*intset.Set {
	seen := make(map[string]bool, len(sets))
	var out []*intset.Set
	for _, s := range sets {
		if s.IsEmpty() {
			continue
		}
		k := s.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}
