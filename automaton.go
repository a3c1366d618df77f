package rsonpath

// StateAttributes is the bit set of structural facts about a DFA state
// computed after construction, per spec.md §3.
type StateAttributes uint8

const (
	attrAccepting StateAttributes = 1 << iota
	attrRejecting
	attrUnitary
	attrHasTransitionToAccepting
	attrHasAnyArrayTransition
	attrHasArrayTransitionToAccepting
)

// MemberTransition is a single named-member transition out of a DFA state.
type MemberTransition struct {
	Label  *JSONString
	Target State
}

// ArrayTransitionOut is a single array-index/slice transition out of a DFA
// state, already merged for overlap and ordered by emission priority.
type ArrayTransitionOut struct {
	Label    LinearSet
	Priority int
	Target   State
}

// StateTable is one DFA state's full transition table, per spec.md §3.
type StateTable struct {
	attributes        StateAttributes
	memberTransitions []MemberTransition
	arrayTransitions  []ArrayTransitionOut
	fallback          State
}

// MemberTransitions returns the state's named-member transitions, in
// declaration order (the order the engine must try them in).
func (t StateTable) MemberTransitions() []MemberTransition { return t.memberTransitions }

// ArrayTransitions returns the state's array-index/slice transitions,
// already ordered by non-increasing priority.
func (t StateTable) ArrayTransitions() []ArrayTransitionOut { return t.arrayTransitions }

// Fallback is the state to move to (or stay rejecting at) when nothing in
// this table's transitions matches.
func (t StateTable) Fallback() State { return t.fallback }

// Automaton is the minimized DFA compiled from a Query, per spec.md §3/§4.B.
// It is immutable after construction and safe to share across concurrent
// runs (spec.md §5).
type Automaton struct {
	states []StateTable
}

// Compile parses and compiles a JSONPath query string into an Automaton.
func Compile(query string, opts ...CompileOption) (*Automaton, error) {
	cfg := defaultCompileConfig()
	for _, o := range opts {
		o(&cfg)
	}
	q, err := ParseQuery(query, opts...)
	if err != nil {
		return nil, err
	}
	return NewAutomaton(q, opts...)
}

// NewAutomaton compiles an already-parsed Query into an Automaton.
func NewAutomaton(q *Query, opts ...CompileOption) (*Automaton, error) {
	cfg := defaultCompileConfig()
	for _, o := range opts {
		o(&cfg)
	}
	n, err := newNFA(q)
	if err != nil {
		return nil, err
	}
	m := newMinimizer(n, cfg.maxDFAStates)
	return m.run()
}

// RejectingState is the DFA's unique non-accepting dead state.
func (a *Automaton) RejectingState() State { return 0 }

// InitialState is the DFA's unique entry state.
func (a *Automaton) InitialState() State { return 1 }

// IsEmptyQuery reports whether the compiled query is the root query $,
// i.e. the DFA has only the rejecting and initial(=accepting) states.
func (a *Automaton) IsEmptyQuery() bool { return len(a.states) == 2 }

func (a *Automaton) table(s State) StateTable { return a.states[s] }

// IsAccepting reports whether reaching s constitutes a match.
func (a *Automaton) IsAccepting(s State) bool { return a.states[s].attributes&attrAccepting != 0 }

// IsRejecting reports whether s can never lead to a match.
func (a *Automaton) IsRejecting(s State) bool { return a.states[s].attributes&attrRejecting != 0 }

// IsUnitary reports whether s has exactly one labeled transition and a
// rejecting fallback, enabling the engine's unitary-object optimization.
func (a *Automaton) IsUnitary(s State) bool { return a.states[s].attributes&attrUnitary != 0 }

// HasTransitionToAccepting reports whether some transition out of s (member,
// array, or the fallback) leads directly to an accepting state.
func (a *Automaton) HasTransitionToAccepting(s State) bool {
	return a.states[s].attributes&attrHasTransitionToAccepting != 0
}

// HasAnyArrayItemTransition reports whether s has at least one array-index
// or slice transition.
func (a *Automaton) HasAnyArrayItemTransition(s State) bool {
	return a.states[s].attributes&attrHasAnyArrayTransition != 0
}

// HasArrayIndexTransitionToAccepting reports whether some array transition
// out of s leads directly to an accepting state.
func (a *Automaton) HasArrayIndexTransitionToAccepting(s State) bool {
	return a.states[s].attributes&attrHasArrayTransitionToAccepting != 0
}

// MemberTransitions returns s's named-member transitions.
func (a *Automaton) MemberTransitions(s State) []MemberTransition {
	return a.states[s].memberTransitions
}

// ArrayTransitions returns s's array-index/slice transitions, ordered by
// non-increasing priority.
func (a *Automaton) ArrayTransitions(s State) []ArrayTransitionOut {
	return a.states[s].arrayTransitions
}

// Fallback returns the state to move to when nothing in s's transition
// table matches the current document position.
func (a *Automaton) Fallback(s State) State {
	return a.states[s].fallback
}

// StateCount returns the number of DFA states, for diagnostics/tests.
func (a *Automaton) StateCount() int { return len(a.states) }

func (a *Automaton) computeAttributes() {
	accepting := State(len(a.states) - 1)
	for i := range a.states {
		s := State(i)
		var attrs StateAttributes
		if s == accepting && !a.IsEmptyQuery() {
			attrs |= attrAccepting
		}
		if s == a.RejectingState() {
			attrs |= attrRejecting
		}
		tbl := a.states[i]
		if len(tbl.memberTransitions) == 1 && len(tbl.arrayTransitions) == 0 && tbl.fallback == a.RejectingState() {
			attrs |= attrUnitary
		}
		if len(tbl.memberTransitions) == 0 && len(tbl.arrayTransitions) == 1 && tbl.fallback == a.RejectingState() {
			attrs |= attrUnitary
		}
		for _, mt := range tbl.memberTransitions {
			if mt.Target == accepting {
				attrs |= attrHasTransitionToAccepting
			}
		}
		if len(tbl.arrayTransitions) > 0 {
			attrs |= attrHasAnyArrayTransition
		}
		for _, at := range tbl.arrayTransitions {
			if at.Target == accepting {
				attrs |= attrHasTransitionToAccepting
				attrs |= attrHasArrayTransitionToAccepting
			}
		}
		if tbl.fallback == accepting {
			attrs |= attrHasTransitionToAccepting
		}
		a.states[i].attributes = attrs
	}
	// The empty query ($) is itself accepting at the initial state: with
	// only states {rejecting, initial}, the initial state is also the
	// trailing accepting NFA state collapsed into it.
	if a.IsEmptyQuery() {
		a.states[a.InitialState()].attributes |= attrAccepting
	}
}
