// Package expr implements the canonicalizing regular-expression algebra:
// immutable, value-equal expression nodes built through smart constructors
// that apply Brzozowski/Owens similarity reductions on every construction.
package expr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/liran-funaro/derivex/intset"
)

// Kind tags the closed sum of expression variants. Dispatch in Nu,
// Derivative and DerivativeClasses switches on Kind; there is no open
// extension point.
type Kind int

const (
	KindEpsilon Kind = iota
	KindSymbolSet
	KindStar
	KindComplement
	KindConcat
	KindAlt
	KindConj
)

func (k Kind) String() string {
	switch k {
	case KindEpsilon:
		return "Epsilon"
	case KindSymbolSet:
		return "SymbolSet"
	case KindStar:
		return "Star"
	case KindComplement:
		return "Complement"
	case KindConcat:
		return "Concatenation"
	case KindAlt:
		return "Alternation"
	case KindConj:
		return "Conjunction"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Expr is an immutable expression value. Every Expr in existence was
// produced by a smart constructor in this file, so structural equality
// (Equal, or comparing Key()) is the only test ever needed to tell two
// expressions apart — exactly the property the derivative-based
// construction in package automaton relies on for state merging.
type Expr struct {
	kind  Kind
	chars *intset.Set // KindSymbolSet
	sub   *Expr       // KindStar, KindComplement
	left  *Expr       // KindConcat, KindAlt, KindConj
	right *Expr       // KindConcat, KindAlt, KindConj

	key string // canonical structural key, computed once at construction

	nu         *Expr // memoized nullability witness; nil until first Nu() call
	classes    []*intset.Set
	classesSet bool
}

// Distinguished constants. Epsilon matches the empty string; Null (∅)
// matches nothing. They are deliberately distinct values — smart
// constructors must never conflate them.
var (
	Epsilon = &Expr{kind: KindEpsilon, key: "E"}
	Null    = &Expr{kind: KindSymbolSet, chars: intset.Empty(), key: "S{}"}
	Sigma   = &Expr{kind: KindSymbolSet, chars: intset.Universe(), key: symbolSetKey(intset.Universe())}
)

func symbolSetKey(s *intset.Set) string {
	return "S{" + s.Key() + "}"
}

// Kind reports the variant tag of e.
func (e *Expr) Kind() Kind { return e.kind }

// Chars returns the code point set of a SymbolSet expression. It panics
// if e is not a SymbolSet — callers must switch on Kind first.
func (e *Expr) Chars() *intset.Set {
	if e.kind != KindSymbolSet {
		panic(fmt.Sprintf("expr: Chars() called on %s", e.kind))
	}
	return e.chars
}

// Sub returns the operand of a Star or Complement expression.
func (e *Expr) Sub() *Expr {
	if e.kind != KindStar && e.kind != KindComplement {
		panic(fmt.Sprintf("expr: Sub() called on %s", e.kind))
	}
	return e.sub
}

// Left and Right return the operands of a Concatenation, Alternation or
// Conjunction expression.
func (e *Expr) Left() *Expr {
	e.requireBinary("Left")
	return e.left
}

func (e *Expr) Right() *Expr {
	e.requireBinary("Right")
	return e.right
}

func (e *Expr) requireBinary(who string) {
	switch e.kind {
	case KindConcat, KindAlt, KindConj:
		return
	default:
		panic(fmt.Sprintf("expr: %s() called on %s", who, e.kind))
	}
}

// Key returns the canonical structural encoding of e: two expressions are
// Equal iff their Key()s match. It also defines the total order smart
// constructors use to deterministically re-pair Alternation/Conjunction
// terms (the Python original's `_orderby`).
func (e *Expr) Key() string { return e.key }

// Equal reports structural equality after normalization.
func (e *Expr) Equal(o *Expr) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil {
		return false
	}
	return e.key == o.key
}

// Less defines the deterministic total order over expressions used to
// re-pair flattened Alternation/Conjunction term lists.
func (e *Expr) Less(o *Expr) bool { return e.key < o.key }

func (e *Expr) String() string {
	switch e.kind {
	case KindEpsilon:
		return "ε"
	case KindSymbolSet:
		if e.chars.IsEmpty() {
			return "∅"
		}
		if e.chars.IsUniverse() {
			return "Σ"
		}
		return e.chars.String()
	case KindStar:
		return "(" + e.sub.String() + ")*"
	case KindComplement:
		return "!(" + e.sub.String() + ")"
	case KindConcat:
		return "(" + e.left.String() + " . " + e.right.String() + ")"
	case KindAlt:
		return "(" + e.left.String() + " | " + e.right.String() + ")"
	case KindConj:
		return "(" + e.left.String() + " & " + e.right.String() + ")"
	default:
		panic(fmt.Sprintf("expr: unreachable kind %s", e.kind))
	}
}

// NewSymbolSet builds a SymbolSet expression matching any single code
// point in chars. An empty chars denotes ∅; the universe denotes Σ.
func NewSymbolSet(chars *intset.Set) *Expr {
	if chars.IsEmpty() {
		return Null
	}
	if chars.IsUniverse() {
		return Sigma
	}
	return &Expr{kind: KindSymbolSet, chars: chars, key: symbolSetKey(chars)}
}

// Star builds a Kleene closure, applying Star(Star(e)) ⇒ Star(e),
// Star(ε) ⇒ ε and Star(∅) ⇒ ε.
func Star(e *Expr) *Expr {
	switch {
	case e.kind == KindStar:
		return e
	case e.Equal(Epsilon):
		return Epsilon
	case e.Equal(Null):
		return Epsilon
	default:
		return &Expr{kind: KindStar, sub: e, key: "*(" + e.key + ")"}
	}
}

// Complement builds a language complement over Σ*, applying
// Complement(Complement(e)) ⇒ e and Complement(SymbolSet(S)) ⇒
// SymbolSet(Σ \ S).
func Complement(e *Expr) *Expr {
	switch {
	case e.kind == KindComplement:
		return e.sub
	case e.kind == KindSymbolSet:
		return NewSymbolSet(e.chars.Complement())
	default:
		return &Expr{kind: KindComplement, sub: e, key: "!(" + e.key + ")"}
	}
}

// Concat builds a sequential composition, right-associating and applying
// the ∅/ε identities.
func Concat(l, r *Expr) *Expr {
	if l.Equal(Null) || r.Equal(Null) {
		return Null
	}
	if l.Equal(Epsilon) {
		return r
	}
	if r.Equal(Epsilon) {
		return l
	}
	if l.kind == KindConcat {
		// Cat(Cat(a, b), c) ⇒ Cat(a, Cat(b, c))
		return Concat(l.left, Concat(l.right, r))
	}
	return &Expr{kind: KindConcat, left: l, right: r, key: "." + pairKey(l, r)}
}

func pairKey(l, r *Expr) string { return "(" + l.key + "," + r.key + ")" }

// Alternation builds a logical-or of l and r: flattens nested
// alternations, drops ∅, absorbs with Σ, fuses SymbolSet operands via
// IntegerSet union, deduplicates and re-pairs deterministically.
func Alternation(l, r *Expr) *Expr {
	terms := flatten(KindAlt, l, r)
	terms = fuseSymbolSets(terms, func(a, b *intset.Set) *intset.Set { return a.Union(b) })

	var kept []*Expr
	for _, t := range terms {
		if t.Equal(Null) {
			continue
		}
		if t.Equal(Sigma) {
			return Sigma
		}
		kept = append(kept, t)
	}
	kept = dedupe(kept)
	if len(kept) == 0 {
		return Null
	}
	return foldSorted(KindAlt, kept)
}

// Conjunction builds a logical-and of l and r: flattens nested
// conjunctions, absorbs with ∅, drops Σ, fuses SymbolSet operands via
// IntegerSet intersection, deduplicates and re-pairs deterministically.
func Conjunction(l, r *Expr) *Expr {
	terms := flatten(KindConj, l, r)
	terms = fuseSymbolSets(terms, func(a, b *intset.Set) *intset.Set { return a.Intersection(b) })

	var kept []*Expr
	for _, t := range terms {
		if t.Equal(Sigma) {
			continue
		}
		if t.Equal(Null) {
			return Null
		}
		kept = append(kept, t)
	}
	kept = dedupe(kept)
	if len(kept) == 0 {
		return Sigma
	}
	return foldSorted(KindConj, kept)
}

// flatten unpacks nested nodes of the same kind into a flat term list.
func flatten(kind Kind, l, r *Expr) []*Expr {
	var out []*Expr
	var walk func(*Expr)
	walk = func(e *Expr) {
		if e.kind == kind {
			walk(e.left)
			walk(e.right)
			return
		}
		out = append(out, e)
	}
	walk(l)
	walk(r)
	return out
}

// fuseSymbolSets merges every SymbolSet term in terms into one, via the
// supplied combine operation (union for Alternation, intersection for
// Conjunction), preserving the relative position of the remaining terms.
func fuseSymbolSets(terms []*Expr, combine func(a, b *intset.Set) *intset.Set) []*Expr {
	var fused *intset.Set
	var rest []*Expr
	for _, t := range terms {
		if t.kind == KindSymbolSet {
			if fused == nil {
				fused = t.chars
			} else {
				fused = combine(fused, t.chars)
			}
			continue
		}
		rest = append(rest, t)
	}
	if fused == nil {
		return rest
	}
	return append([]*Expr{NewSymbolSet(fused)}, rest...)
}

// dedupe removes structurally-equal terms, preserving the first
// occurrence of each.
func dedupe(terms []*Expr) []*Expr {
	seen := make(map[string]bool, len(terms))
	out := terms[:0:0]
	for _, t := range terms {
		if seen[t.key] {
			continue
		}
		seen[t.key] = true
		out = append(out, t)
	}
	return out
}

// foldSorted orders terms by the canonical total order and right-folds
// them back into a binary chain of the given kind, so that the resulting
// tree shape depends only on the term set, not on construction order.
func foldSorted(kind Kind, terms []*Expr) *Expr {
	sort.Slice(terms, func(i, j int) bool { return terms[i].Less(terms[j]) })
	if len(terms) == 1 {
		return terms[0]
	}
	result := terms[len(terms)-1]
	keyOp := "|"
	if kind == KindConj {
		keyOp = "&"
	}
	for i := len(terms) - 2; i >= 0; i-- {
		result = &Expr{kind: kind, left: terms[i], right: result, key: keyOp + pairKey(terms[i], result)}
	}
	return result
}

// Dump renders e as an indented tree, for debugging and golden tests.
func (e *Expr) Dump() string {
	var b strings.Builder
	var walk func(*Expr, int)
	walk = func(n *Expr, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.kind.String())
		if n.kind == KindSymbolSet {
			b.WriteString(" ")
			b.WriteString(n.chars.String())
		}
		b.WriteString("\n")
		switch n.kind {
		case KindStar, KindComplement:
			walk(n.sub, depth+1)
		case KindConcat, KindAlt, KindConj:
			walk(n.left, depth+1)
			walk(n.right, depth+1)
		}
	}
	walk(e, 0)
	return b.String()
}
