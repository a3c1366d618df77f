package rsonpath

import "sort"

// arrayTransitionEntry is one (linear set, target superstate) pair with its
// emission priority, ported from array_transition_set.rs's
// LinearSetTransition.
type arrayTransitionEntry struct {
	label    LinearSet
	target   superstate
	priority int
}

// arrayTransitionSet merges overlapping array-index/slice transitions out of
// a single DFA (or, during minimization, super-) state by intersecting their
// linear sets, per spec.md §4.B's array-index overlap resolution. Ported
// from array_transition_set.rs's ArrayTransitionSet::add_transition.
type arrayTransitionSet struct {
	entries []arrayTransitionEntry
}

// add merges a new (label, target) pair into the set. Any existing entry
// whose label overlaps the new one spawns an additional entry for the
// intersection, targeting the union of both original targets, at a priority
// one higher than the max of its parents' priorities -- so the engine,
// which processes transitions in non-increasing priority order, always
// considers the most specific (most-intersected) label first.
func (s *arrayTransitionSet) add(label LinearSet, target superstate) {
	if label.IsEmpty() {
		return
	}
	fresh := []arrayTransitionEntry{{label: label, target: target, priority: 0}}
	existing := s.entries
	s.entries = nil
	for _, e := range existing {
		s.entries = append(s.entries, e)
		var spawned []arrayTransitionEntry
		for _, f := range fresh {
			overlap, ok := e.label.Overlap(f.label)
			if !ok {
				continue
			}
			prio := e.priority
			if f.priority > prio {
				prio = f.priority
			}
			spawned = append(spawned, arrayTransitionEntry{
				label:    overlap,
				target:   e.target.union(f.target),
				priority: prio + 1,
			})
		}
		fresh = append(fresh, spawned...)
	}
	s.entries = append(s.entries, fresh...)
}

// ordered returns the merged entries sorted by non-increasing priority,
// ties broken by insertion order, per ArrayTransitionSetIterator.
func (s *arrayTransitionSet) ordered() []arrayTransitionEntry {
	out := make([]arrayTransitionEntry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].priority > out[j].priority
	})
	return out
}
