package rsonpath

import (
	"fmt"
	"strings"
)

// WriteDot renders the automaton as a Graphviz DOT graph, for debugging
// compiled queries. Grounded on the teacher's own textual-dump debug idiom
// (simdjson_amd64.go's debug-gated structural dump); DOT is the natural
// analogue for a state machine rather than a flat byte/tape trace.
func (a *Automaton) WriteDot() string {
	var b strings.Builder
	b.WriteString("digraph automaton {\n")
	b.WriteString("  rankdir=LR;\n")

	for s := range a.states {
		state := State(s)
		shape := "circle"
		if a.IsAccepting(state) {
			shape = "doublecircle"
		}
		if a.IsRejecting(state) {
			shape = "point"
			fmt.Fprintf(&b, "  %d [shape=%s, label=\"\"];\n", state, shape)
			continue
		}
		fmt.Fprintf(&b, "  %d [shape=%s];\n", state, shape)
	}

	for s := range a.states {
		state := State(s)
		for _, mt := range a.MemberTransitions(state) {
			fmt.Fprintf(&b, "  %d -> %d [label=%q];\n", state, mt.Target, mt.Label.Quoted())
		}
		for _, at := range a.ArrayTransitions(state) {
			fmt.Fprintf(&b, "  %d -> %d [label=%q];\n", state, at.Target, at.Label.String())
		}
		if fb := a.Fallback(state); fb != state && !a.IsRejecting(fb) {
			fmt.Fprintf(&b, "  %d -> %d [style=dashed, label=\"*\"];\n", state, fb)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
