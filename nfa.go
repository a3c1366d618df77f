package rsonpath

// nfaStateKind classifies an nfaState, mirroring NfaState in
// automaton/nfa.rs: Direct (forward transitions, one per selector of the
// segment), Recursive (forward transitions plus a wildcard self-loop), or
// Accepting (terminal, unique,
// highest-numbered state).
type nfaStateKind uint8

const (
	nfaDirect nfaStateKind = iota
	nfaRecursive
	nfaAccepting
)

// nfaTransitionKind distinguishes what an nfaState's forward transition
// matches against.
type nfaTransitionKind uint8

const (
	nfaTransMember nfaTransitionKind = iota
	nfaTransArray
	nfaTransWildcard
)

type nfaTransition struct {
	kind   nfaTransitionKind
	member *JSONString
	array  LinearSet
}

type nfaState struct {
	kind        nfaStateKind
	transitions []nfaTransition // unused (empty) when kind == nfaAccepting
}

// nfa is a linear chain of states numbered 0..k, a direct path from an
// initial state to the unique accepting state, exactly as described in
// spec.md §3 and ported from automaton/nfa.rs's NondeterministicAutomaton.
type nfa struct {
	states []nfaState
}

// newNFA translates a Query's segments into the NFA, per
// NondeterministicAutomaton::new: each segment yields exactly one state
// (child -> Direct, descendant -> Recursive), terminated by a trailing
// Accepting state. A segment with multiple selectors (see SPEC_FULL.md §9's
// multi-selector supplemented feature) lowers to multiple parallel
// transitions out of that *same* state, all sharing the segment's successor
// -- not a chain of states -- so the selectors co-reside in one superstate
// during minimization and flow through arrayTransitionSet's overlap
// resolution together.
func newNFA(q *Query) (*nfa, error) {
	var states []nfaState
	for _, seg := range q.Segments() {
		if len(states) >= 255 {
			return nil, errQueryTooComplex("query has more than 255 segment states")
		}
		kind := nfaDirect
		if seg.Kind == Descendant {
			kind = nfaRecursive
		}
		transitions := make([]nfaTransition, 0, len(seg.Selectors))
		for _, sel := range seg.Selectors {
			trans, err := nfaTransitionFromSelector(sel)
			if err != nil {
				return nil, err
			}
			transitions = append(transitions, trans)
		}
		states = append(states, nfaState{kind: kind, transitions: transitions})
	}
	if len(states)+1 > 256 {
		return nil, errQueryTooComplex("accepting state would exceed the 8-bit state id budget")
	}
	states = append(states, nfaState{kind: nfaAccepting})
	return &nfa{states: states}, nil
}

func nfaTransitionFromSelector(sel Selector) (nfaTransition, error) {
	switch sel.Kind {
	case SelectorName:
		return nfaTransition{kind: nfaTransMember, member: sel.Name}, nil
	case SelectorWildcard:
		return nfaTransition{kind: nfaTransWildcard}, nil
	case SelectorIndex:
		return nfaTransition{kind: nfaTransArray, array: NewSingleton(sel.Index)}, nil
	case SelectorSlice:
		ls, err := linearSetFromSlice(sel.Slice)
		if err != nil {
			return nfaTransition{}, err
		}
		return nfaTransition{kind: nfaTransArray, array: ls}, nil
	default:
		return nfaTransition{}, errNotSupported("unknown selector kind")
	}
}

func (a *nfa) accepting() uint8 {
	return uint8(len(a.states) - 1)
}
