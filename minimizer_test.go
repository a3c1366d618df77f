package rsonpath

import "testing"

// This file ports minimizer.rs's small table of hand-checkable minimization
// scenarios (empty query through a child+descendant+wildcard combination),
// checking state counts and transition shapes rather than full dot dumps.

func mustAutomaton(t *testing.T, q *Query) *Automaton {
	t.Helper()
	a, err := NewAutomaton(q)
	if err != nil {
		t.Fatalf("NewAutomaton: %v", err)
	}
	return a
}

func TestMinimizeEmptyQuery(t *testing.T) {
	a := mustAutomaton(t, NewQueryBuilder().ToQuery())
	if !a.IsEmptyQuery() {
		t.Fatalf("expected IsEmptyQuery() for $")
	}
	if !a.IsAccepting(a.InitialState()) {
		t.Errorf("the root query's initial state must itself be accepting")
	}
}

func TestMinimizeSingleChildName(t *testing.T) {
	q := NewQueryBuilder().ChildName(NewJSONString("a")).ToQuery()
	a := mustAutomaton(t, q)

	init := a.InitialState()
	mts := a.MemberTransitions(init)
	if len(mts) != 1 {
		t.Fatalf("expected exactly one member transition out of the initial state, got %d", len(mts))
	}
	if !a.IsAccepting(mts[0].Target) {
		t.Errorf("$.a's single transition should lead directly to an accepting state")
	}
	if a.Fallback(init) != a.RejectingState() {
		t.Errorf("a plain child-name query's initial state should fall back to rejecting")
	}
}

func TestMinimizeSingleChildWildcard(t *testing.T) {
	q := NewQueryBuilder().ChildWildcard().ToQuery()
	a := mustAutomaton(t, q)

	init := a.InitialState()
	if len(a.MemberTransitions(init)) != 0 {
		t.Fatalf("a pure wildcard segment should not register any named-member transition")
	}
	if a.Fallback(init) == a.RejectingState() {
		t.Errorf("$.* should fall back to an accepting state (wildcard matches everything), not reject")
	}
	if !a.IsAccepting(a.Fallback(init)) {
		t.Errorf("$.*'s fallback target should be the accepting state")
	}
}

func TestMinimizeSingleDescendantName(t *testing.T) {
	q := NewQueryBuilder().DescendantName(NewJSONString("a")).ToQuery()
	a := mustAutomaton(t, q)

	init := a.InitialState()
	mts := a.MemberTransitions(init)
	if len(mts) != 1 {
		t.Fatalf("expected exactly one member transition out of the initial state, got %d", len(mts))
	}
	if !a.IsAccepting(mts[0].Target) {
		t.Errorf("$..a's transition should lead directly to an accepting state")
	}
	// A descendant segment's initial state must persist itself on anything
	// that doesn't match, so the search can keep looking deeper.
	if a.Fallback(init) != init {
		t.Errorf("$..a's initial state should self-loop on its fallback, got state %d (want %d)", a.Fallback(init), init)
	}
}

func TestMinimizeSingleDescendantWildcard(t *testing.T) {
	q := NewQueryBuilder().DescendantWildcard().ToQuery()
	a := mustAutomaton(t, q)

	init := a.InitialState()
	if !a.IsAccepting(a.Fallback(init)) {
		t.Errorf("$..* should accept on every node, including via its fallback")
	}
}

func TestMinimizeChildThenDescendant(t *testing.T) {
	q := NewQueryBuilder().
		ChildName(NewJSONString("a")).
		DescendantName(NewJSONString("b")).
		ToQuery()
	a := mustAutomaton(t, q)

	init := a.InitialState()
	mts := a.MemberTransitions(init)
	if len(mts) != 1 || mts[0].Label.Unquoted() != "a" {
		t.Fatalf("expected a single 'a' transition out of the initial state, got %+v", mts)
	}
	mid := mts[0].Target
	if a.IsAccepting(mid) {
		t.Errorf("$.a..b should not accept at the 'a' member itself")
	}
	midMts := a.MemberTransitions(mid)
	if len(midMts) != 1 || midMts[0].Label.Unquoted() != "b" {
		t.Fatalf("expected a single 'b' transition out of the descendant state, got %+v", midMts)
	}
	if !a.IsAccepting(midMts[0].Target) {
		t.Errorf("$.a..b's 'b' transition should lead to an accepting state")
	}
	if a.Fallback(mid) != mid {
		t.Errorf("the descendant segment's state should self-loop on its fallback")
	}
}

// TestMinimizeMultiSelectorArrayOverlap exercises $[2,1:5]: the two array
// selectors of one segment must lower into the same NFA state as parallel
// transitions (not a nested $[2][1:5] chain), so arrayTransitionSet.add sees
// both labels from a single superstate and merges their overlap at index 2
// via LinearSet.Overlap, rather than leaving them unreachable.
func TestMinimizeMultiSelectorArrayOverlap(t *testing.T) {
	q := NewQueryBuilder().
		ChildMulti(IndexSelector(2), SliceSelector(1, 5, true, 1)).
		ToQuery()
	a := mustAutomaton(t, q)

	init := a.InitialState()
	ats := a.ArrayTransitions(init)
	if len(ats) == 0 {
		t.Fatalf("expected at least one array transition out of the initial state for $[2,1:5], got none")
	}

	var matchesIndex1, matchesIndex2 bool
	for _, at := range ats {
		if at.Label.Contains(1) {
			matchesIndex1 = true
			if !a.IsAccepting(at.Target) {
				t.Errorf("the array transition covering index 1 should lead to an accepting state")
			}
		}
		if at.Label.Contains(2) {
			matchesIndex2 = true
			if !a.IsAccepting(at.Target) {
				t.Errorf("the array transition covering index 2 should lead to an accepting state")
			}
		}
	}
	if !matchesIndex1 {
		t.Errorf("$[2,1:5] should still match index 1, got transitions %+v", ats)
	}
	if !matchesIndex2 {
		t.Errorf("$[2,1:5] should match index 2, the overlap between the index and slice selectors, got transitions %+v", ats)
	}
	if a.Fallback(init) != a.RejectingState() {
		t.Errorf("$[2,1:5] has no wildcard selector, so unmatched indices should reject")
	}
}

// TestMinimizeMultiSelectorMemberNames exercises $["a","b"]: both name
// selectors of one segment must land in the same NFA state as parallel
// Member transitions, each reachable from the initial state directly.
func TestMinimizeMultiSelectorMemberNames(t *testing.T) {
	q := NewQueryBuilder().
		ChildMulti(NameSelector(NewJSONString("a")), NameSelector(NewJSONString("b"))).
		ToQuery()
	a := mustAutomaton(t, q)

	init := a.InitialState()
	mts := a.MemberTransitions(init)
	if len(mts) != 2 {
		t.Fatalf("expected two member transitions out of the initial state for $[\"a\",\"b\"], got %d: %+v", len(mts), mts)
	}
	seen := map[string]bool{}
	for _, mt := range mts {
		seen[mt.Label.Unquoted()] = true
		if !a.IsAccepting(mt.Target) {
			t.Errorf("%s's transition should lead directly to an accepting state", mt.Label.Unquoted())
		}
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("expected transitions for both 'a' and 'b', got %+v", mts)
	}
}

func TestMinimizeChildDescendantAndChildWildcard(t *testing.T) {
	q := NewQueryBuilder().
		ChildName(NewJSONString("a")).
		DescendantName(NewJSONString("b")).
		ChildWildcard().
		ToQuery()
	a := mustAutomaton(t, q)

	init := a.InitialState()
	mts := a.MemberTransitions(init)
	if len(mts) != 1 || mts[0].Label.Unquoted() != "a" {
		t.Fatalf("expected a single 'a' transition out of the initial state, got %+v", mts)
	}
	mid := mts[0].Target
	midMts := a.MemberTransitions(mid)
	if len(midMts) != 1 || midMts[0].Label.Unquoted() != "b" {
		t.Fatalf("expected a single 'b' transition out of the descendant state, got %+v", midMts)
	}
	// $.a..b.* should accept on any child of a matched 'b' member, not at 'b'
	// itself.
	bTarget := midMts[0].Target
	if a.IsAccepting(bTarget) {
		t.Errorf("$.a..b.* should not accept at 'b' itself, only at its children")
	}
	if !a.IsAccepting(a.Fallback(bTarget)) {
		t.Errorf("$.a..b.*'s wildcard fallback should accept")
	}
}
