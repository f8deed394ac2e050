package expr

import (
	"strings"

	"github.com/liran-funaro/derivex/intset"
)

// Rule pairs a declared lexer rule name with its expression.
type Rule struct {
	Name string
	Expr *Expr
}

// Vector is an ExpressionVector: an ordered list of (name, expression)
// pairs representing a parallel lexer rule set. A Vector is not interned;
// like a scalar Expr, it is identified only by the structural key package
// automaton uses to merge DFA states — it is a thin, explicit Go type rather than a literal member of
// the Expr sum, which keeps dispatch in Nu/Derivative/DerivativeClasses
// closed over genuinely scalar expressions.
type Vector struct {
	names []string
	exprs []*Expr
	key   string
}

// NewVector builds a Vector from an ordered rule list. Duplicate rule
// names are accepted as-is — ambiguity is resolved by declaration order
// in accept lists, never by silent deduplication.
func NewVector(rules []Rule) *Vector {
	names := make([]string, len(rules))
	exprs := make([]*Expr, len(rules))
	var key strings.Builder
	for i, r := range rules {
		names[i] = r.Name
		exprs[i] = r.Expr
		key.WriteString(r.Name)
		key.WriteByte(0)
		key.WriteString(r.Expr.Key())
		key.WriteByte(0)
	}
	return &Vector{names: names, exprs: exprs, key: key.String()}
}

// Len returns the number of rules.
func (v *Vector) Len() int { return len(v.names) }

// Names returns the rule names in declaration order.
func (v *Vector) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Rules returns the (name, expr) pairs in declaration order.
func (v *Vector) Rules() []Rule {
	out := make([]Rule, len(v.names))
	for i := range v.names {
		out[i] = Rule{Name: v.names[i], Expr: v.exprs[i]}
	}
	return out
}

// Key is a canonical structural encoding of v, used to key the state
// table during construction — two Vectors with the same Key are the same
// DFA state.
func (v *Vector) Key() string { return v.key }

// Equal reports whether v and o denote the same DFA state.
func (v *Vector) Equal(o *Vector) bool { return v.key == o.key }

// Nullable returns the rule names whose sub-expression is nullable, in
// declaration order.
func (v *Vector) Nullable() []string {
	var out []string
	for i, e := range v.exprs {
		if e.Nullable() {
			out = append(out, v.names[i])
		}
	}
	return out
}

// Derivative computes the pointwise derivative of every rule expression
// with respect to c, preserving names and order.
func (v *Vector) Derivative(c rune) *Vector {
	rules := make([]Rule, len(v.names))
	for i, e := range v.exprs {
		rules[i] = Rule{Name: v.names[i], Expr: Derivative(e, c)}
	}
	return NewVector(rules)
}

// DerivativeClasses returns the n-ary intersection of each rule's
// derivative classes: the Cartesian product of the per-rule class sets,
// intersected per tuple, with empty intersections discarded.
func (v *Vector) DerivativeClasses() []*intset.Set {
	if len(v.exprs) == 0 {
		return []*intset.Set{intset.Universe()}
	}
	acc := DerivativeClasses(v.exprs[0])
	for _, e := range v.exprs[1:] {
		acc = pairwiseIntersections(acc, DerivativeClasses(e))
	}
	return acc
}

// NullVector returns the ExpressionVector in which every rule's
// sub-expression is ∅ — the DFA's sink/error state.
func (v *Vector) NullVector() *Vector {
	rules := make([]Rule, len(v.names))
	for i, name := range v.names {
		rules[i] = Rule{Name: name, Expr: Null}
	}
	return NewVector(rules)
}
