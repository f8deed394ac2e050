// Package automaton discovers the minimal deterministic automaton for an
// expr.Vector by worklist exploration of its reachable derivatives,
// keyed on derivative classes rather than individual code points.
package automaton

import (
	"errors"
	"sort"

	"github.com/liran-funaro/derivex/expr"
)

// ErrEmptyVector is returned by Construct when given a rule set with no
// rules.
var ErrEmptyVector = errors.New("automaton: expression vector must be non-empty")

// ErrNullableRule is returned by Construct when a rule's expression
// accepts the empty string at the start state: a lexer whose longest
// match can be zero-length has no forward progress (see scan.Scanner.Next's
// reset invariant).
var ErrNullableRule = errors.New("automaton: rule accepts the empty string")

// Transition is one inclusive code point range routed to Next.
type Transition struct {
	Lo, Hi rune
	Next   int
}

// Automaton is the read-only artifact of Construct: a transition table
// plus, for each state, the rule names accepted there.
type Automaton struct {
	// Transitions[s] holds the out-edges of state s, sorted by Lo
	// ascending, pairwise disjoint.
	Transitions [][]Transition
	// Accepts[s] holds the rule names nullable in state s, in
	// declaration order; empty when s accepts nothing.
	Accepts [][]string
	// Error is the sink state: the null vector, with no transitions and
	// an empty accept list.
	Error int
}

// NumStates returns the number of states in a.
func (a *Automaton) NumStates() int { return len(a.Transitions) }

// Step follows the transition out of state s for code point c, returning
// a.Error if no transition matches. It binary-searches the range-sorted
// transition table for s.
func (a *Automaton) Step(s int, c rune) int {
	ts := a.Transitions[s]
	i := sort.Search(len(ts), func(i int) bool { return ts[i].Hi >= c })
	if i < len(ts) && ts[i].Lo <= c {
		return ts[i].Next
	}
	return a.Error
}

// Construct builds the Automaton for v via worklist exploration: state 0
// is v itself; each state's outgoing transitions are one per derivative
// class, to a state keyed by structural equality of the derivative
// expression vector. Construction is deterministic up to pop order
// (stack here), which affects only the numbering of non-start,
// non-error states, never the language or accept sets.
func Construct(v *expr.Vector) (*Automaton, error) {
	if v.Len() == 0 {
		return nil, ErrEmptyVector
	}
	for i, name := range v.Names() {
		if v.Rules()[i].Expr.Nullable() {
			return nil, errWithName(ErrNullableRule, name)
		}
	}

	states := map[string]int{v.Key(): 0}
	order := []*expr.Vector{v}
	transitions := [][]Transition{nil}
	worklist := []*expr.Vector{v}

	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		n := states[s.Key()]

		for _, cls := range s.DerivativeClasses() {
			rep := cls.Ranges()[0].Lo
			t := s.Derivative(rep)
			idx, ok := states[t.Key()]
			if !ok {
				idx = len(order)
				states[t.Key()] = idx
				order = append(order, t)
				transitions = append(transitions, nil)
				worklist = append(worklist, t)
			}
			for _, r := range cls.Ranges() {
				transitions[n] = append(transitions[n], Transition{Lo: r.Lo, Hi: r.Hi, Next: idx})
			}
		}
		sort.Slice(transitions[n], func(i, j int) bool { return transitions[n][i].Lo < transitions[n][j].Lo })
	}

	accepts := make([][]string, len(order))
	for i, st := range order {
		accepts[i] = st.Nullable()
	}

	nullVector := v.NullVector()
	errState, ok := states[nullVector.Key()]
	if !ok {
		// Defensive fallback: a rule set can avoid ever deriving to the
		// null vector through a transition (e.g. ".+", whose derivatives
		// stay Σ*). The sink state must still exist exactly once per spec.
		errState = len(order)
		order = append(order, nullVector)
		transitions = append(transitions, nil)
		accepts = append(accepts, nil)
	}
	// Exploration gives the null vector a self-loop over Σ; the sink has
	// no out-edges, and Step already falls back to Error on a miss.
	transitions[errState] = nil

	return &Automaton{Transitions: transitions, Accepts: accepts, Error: errState}, nil
}

func errWithName(base error, name string) error {
	return &ruleError{base: base, name: name}
}

type ruleError struct {
	base error
	name string
}

func (e *ruleError) Error() string { return e.name + ": " + e.base.Error() }
func (e *ruleError) Unwrap() error { return e.base }
