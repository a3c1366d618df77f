package rsonpath

// State identifies a DFA state. State 0 is always the rejecting state,
// state 1 is always the initial state, per spec.md §3.
type State uint8

type arrayBuildEntry struct {
	label    LinearSet
	priority int
	target   State
}

// stateBuild accumulates the raw (pre-attribute) transition table for one
// DFA state while the minimizer discovers it.
type stateBuild struct {
	memberNames  []string
	memberLabels map[string]*JSONString
	memberTarget map[string]State
	arrayEntries []arrayBuildEntry
	fallback     State
}

func newStateBuild() *stateBuild {
	return &stateBuild{memberLabels: map[string]*JSONString{}, memberTarget: map[string]State{}}
}

// minimizer performs subset construction with checkpoint-based
// normalization, ported from query/automaton/minimizer.rs's Minimizer.
type minimizer struct {
	nfa          *nfa
	ids          map[superstate]State
	order        []superstate
	builds       []*stateBuild
	maxDFAStates int
}

func newMinimizer(n *nfa, maxDFAStates int) *minimizer {
	return &minimizer{nfa: n, ids: map[superstate]State{}, maxDFAStates: maxDFAStates}
}

// register returns the State for ss, allocating a new one (and its
// stateBuild) if ss has not been seen yet.
func (m *minimizer) register(ss superstate) (State, error) {
	if id, ok := m.ids[ss]; ok {
		return id, nil
	}
	if len(m.order) >= m.maxDFAStates {
		return 0, errQueryTooComplex("DFA would exceed the configured state budget")
	}
	id := State(len(m.order))
	m.ids[ss] = id
	m.order = append(m.order, ss)
	m.builds = append(m.builds, newStateBuild())
	return id, nil
}

// isCheckpoint reports whether NFA state id is a recursive state, i.e. a
// candidate checkpoint per determine_checkpoint in minimizer.rs.
func (m *minimizer) isCheckpoint(id uint8) bool {
	return int(id) < len(m.nfa.states) && m.nfa.states[id].kind == nfaRecursive
}

// normalize drops every element of ss strictly before the furthest
// checkpoint it contains, per minimizer.rs's normalize_superstate_transitions.
func (m *minimizer) normalize(ss superstate) superstate {
	furthest := -1
	for _, id := range ss.ids() {
		if m.isCheckpoint(id) && int(id) > furthest {
			furthest = int(id)
		}
	}
	if furthest < 0 {
		return ss
	}
	return ss.clearBelow(uint8(furthest))
}

// fallbackSuperstate computes the "nothing specific matched" superstate for
// ss: every recursive state persists via its self-loop, and every wildcard
// transition (over either object or array context) unconditionally steps
// forward, since a wildcard selector matches any member name or index.
func (m *minimizer) fallbackSuperstate(ss superstate) superstate {
	var out superstate
	for _, id := range ss.ids() {
		st := m.nfa.states[id]
		if st.kind == nfaAccepting {
			continue
		}
		if st.kind == nfaRecursive {
			out.set(id)
		}
		for _, t := range st.transitions {
			if t.kind == nfaTransWildcard {
				out.set(id + 1)
				break
			}
		}
	}
	return out
}

// run performs subset construction and returns the assembled Automaton.
func (m *minimizer) run() (*Automaton, error) {
	rejecting := superstate{}
	initial := singletonSuperstate(0)
	if _, err := m.register(rejecting); err != nil {
		return nil, err
	}
	if _, err := m.register(initial); err != nil {
		return nil, err
	}

	for i := 0; i < len(m.order); i++ {
		if err := m.processSuperstate(i); err != nil {
			return nil, err
		}
	}

	return m.assemble()
}

func (m *minimizer) processSuperstate(idx int) error {
	ss := m.order[idx]
	build := m.builds[idx]
	if ss.isEmpty() {
		build.fallback = State(idx) // rejecting state self-loops
		return nil
	}

	fallbackSS := m.fallbackSuperstate(ss)
	fallbackTarget, err := m.register(m.normalize(fallbackSS))
	if err != nil {
		return err
	}
	build.fallback = fallbackTarget

	// Member-name transitions: one entry per distinct concrete name used by
	// a Member-kind transition among ss's members. A single NFA state can
	// carry several Member transitions at once (a segment with multiple name
	// selectors, e.g. $["a","b"]), so both loops range over each state's
	// transitions rather than assuming one per state.
	seen := map[string]bool{}
	for _, id := range ss.ids() {
		st := m.nfa.states[id]
		for _, t := range st.transitions {
			if t.kind != nfaTransMember {
				continue
			}
			name := t.member.Unquoted()
			if seen[name] {
				continue
			}
			seen[name] = true

			var target superstate
			for _, id2 := range ss.ids() {
				st2 := m.nfa.states[id2]
				for _, t2 := range st2.transitions {
					if t2.kind == nfaTransMember && t2.member.Unquoted() == name {
						target.set(id2 + 1)
					}
				}
			}
			full := fallbackSS.union(target)
			targetState, err := m.register(m.normalize(full))
			if err != nil {
				return err
			}
			build.memberNames = append(build.memberNames, name)
			build.memberLabels[name] = t.member
			build.memberTarget[name] = targetState
		}
	}

	// Array-index/slice transitions: merge overlapping linear sets via
	// arrayTransitionSet, each entry's target is the id+1 set contributing
	// to that (possibly intersected) label. Multiple array selectors in one
	// segment (e.g. $[1,2:5]) contribute multiple transitions from the same
	// id here, which is exactly what lets arrayTransitionSet.add see and
	// merge their overlap.
	var rawSet arrayTransitionSet
	for _, id := range ss.ids() {
		st := m.nfa.states[id]
		for _, t := range st.transitions {
			if t.kind != nfaTransArray {
				continue
			}
			rawSet.add(t.array, singletonSuperstate(id+1))
		}
	}
	for _, entry := range rawSet.ordered() {
		full := fallbackSS.union(entry.target)
		targetState, err := m.register(m.normalize(full))
		if err != nil {
			return err
		}
		build.arrayEntries = append(build.arrayEntries, arrayBuildEntry{
			label:    entry.label,
			priority: entry.priority,
			target:   targetState,
		})
	}

	return nil
}

func (m *minimizer) assemble() (*Automaton, error) {
	states := make([]StateTable, len(m.order))
	for i, build := range m.builds {
		st := StateTable{fallback: build.fallback}
		for _, name := range build.memberNames {
			st.memberTransitions = append(st.memberTransitions, MemberTransition{
				Label:  build.memberLabels[name],
				Target: build.memberTarget[name],
			})
		}
		for _, e := range build.arrayEntries {
			st.arrayTransitions = append(st.arrayTransitions, ArrayTransitionOut{
				Label:    e.label,
				Priority: e.priority,
				Target:   e.target,
			})
		}
		states[i] = st
	}

	auto := &Automaton{states: states}
	auto.computeAttributes()
	return auto, nil
}
