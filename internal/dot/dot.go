// Package dot renders an automaton.Automaton as a Graphviz DOT graph, for
// the -dot flag of cmd/derivex.
package dot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/liran-funaro/derivex/automaton"
)

// Write emits a as a DOT digraph named id to out. Accepting states are
// filled green; the error (sink) state is omitted from the output, the
// same way the teacher's DFA dumper treats its dead-end node.
//
//	$ dot -Tpng out.dot -o out.png
func Write(out io.Writer, a *automaton.Automaton, id string) {
	fmt.Fprintf(out, "digraph %s {\n  rankdir=LR;\n  0[shape=box];\n", id)
	for s, accepts := range a.Accepts {
		if s == a.Error {
			continue
		}
		if len(accepts) > 0 {
			fmt.Fprintf(out, "  %d[style=filled,color=green,label=%q];\n", s, nodeLabel(s, accepts))
		}
	}
	for s, ts := range a.Transitions {
		if s == a.Error {
			continue
		}
		for _, t := range ts {
			if t.Next == a.Error {
				continue
			}
			fmt.Fprintf(out, "  %d -> %d[label=%q];\n", s, t.Next, rangeLabel(t.Lo, t.Hi))
		}
	}
	fmt.Fprintln(out, "}")
}

func nodeLabel(s int, accepts []string) string {
	if len(accepts) == 1 {
		return fmt.Sprintf("%d\\n%s", s, accepts[0])
	}
	label := strconv.Itoa(s)
	for _, name := range accepts {
		label += "\\n" + name
	}
	return label
}

func rangeLabel(lo, hi rune) string {
	if lo == hi {
		return runeToDot(lo)
	}
	return runeToDot(lo) + "-" + runeToDot(hi)
}

func runeToDot(r rune) string {
	if strconv.IsPrint(r) && r != '"' && r != '\\' {
		return string(r)
	}
	return fmt.Sprintf("U+%X", int(r))
}
