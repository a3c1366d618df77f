package rsonpath

import "math/big"

// LinearSetKind identifies which canonical form a LinearSet is stored as,
// per spec.md §3's "Linear set of indices" data model.
type LinearSetKind uint8

const (
	// LinearEmpty represents the empty set; per the invariant in spec.md,
	// empty sets never materialize as a transition label, but arithmetic
	// can still produce one as an intermediate result (e.g. a disjoint
	// overlap), hence this explicit zero case.
	LinearEmpty LinearSetKind = iota
	// LinearSingleton is {a}.
	LinearSingleton
	// LinearBounded is the arithmetic progression a, a+k, a+2k, ... < b.
	LinearBounded
	// LinearOpenEnded is the unbounded arithmetic progression a, a+k, a+2k, ...
	LinearOpenEnded
)

// LinearSet is an arithmetic progression of non-negative integers, used to
// represent the union of array-index and slice selectors, ported from
// automaton/array_transition_set.rs's LinearSet.
type LinearSet struct {
	Kind  LinearSetKind
	Start uint64
	End   uint64 // exclusive upper bound; valid only when Kind == LinearBounded
	Step  uint64 // valid when Kind is LinearBounded or LinearOpenEnded
}

// NewSingleton builds the one-element set {a}.
func NewSingleton(a uint64) LinearSet {
	return LinearSet{Kind: LinearSingleton, Start: a}
}

// NewBoundedSlice builds the canonical form of {start, start+step, ...} < end,
// collapsing to LinearSingleton or LinearEmpty per the canonicalization
// invariant (empty sets never materialize as a one-element-or-more form;
// one-element sets are always Singleton).
func NewBoundedSlice(start, end, step uint64) LinearSet {
	if step == 0 || start >= end {
		return LinearSet{Kind: LinearEmpty}
	}
	if start+step >= end {
		return LinearSet{Kind: LinearSingleton, Start: start}
	}
	return LinearSet{Kind: LinearBounded, Start: start, End: end, Step: step}
}

// NewOpenEndedSlice builds {start, start+step, ...} with no upper bound.
func NewOpenEndedSlice(start, step uint64) LinearSet {
	if step == 0 {
		return LinearSet{Kind: LinearEmpty}
	}
	return LinearSet{Kind: LinearOpenEnded, Start: start, Step: step}
}

func linearSetFromSlice(s Slice) (LinearSet, error) {
	if s.Step == 0 {
		return LinearSet{}, errNotSupported("slice step of 0")
	}
	if s.HasEnd {
		return NewBoundedSlice(s.Start, s.End, s.Step), nil
	}
	return NewOpenEndedSlice(s.Start, s.Step), nil
}

// IsEmpty reports whether the set has no elements.
func (l LinearSet) IsEmpty() bool { return l.Kind == LinearEmpty }

// Contains reports whether x is a member of the set.
func (l LinearSet) Contains(x uint64) bool {
	switch l.Kind {
	case LinearSingleton:
		return x == l.Start
	case LinearBounded:
		return x >= l.Start && x < l.End && (x-l.Start)%l.Step == 0
	case LinearOpenEnded:
		return x >= l.Start && (x-l.Start)%l.Step == 0
	default:
		return false
	}
}

// String renders the set in a:b:k / a::k / a (singleton) style, for
// diagnostics and dot-rendering.
func (l LinearSet) String() string {
	switch l.Kind {
	case LinearSingleton:
		return uintToString(l.Start)
	case LinearBounded:
		return uintToString(l.Start) + ":" + uintToString(l.End) + ":" + uintToString(l.Step)
	case LinearOpenEnded:
		return uintToString(l.Start) + "::" + uintToString(l.Step)
	default:
		return "{}"
	}
}

func uintToString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// Equal reports whether two LinearSets denote the same set of integers.
func (l LinearSet) Equal(o LinearSet) bool {
	if l.Kind != o.Kind {
		return (l.Kind == LinearEmpty && o.Kind == LinearEmpty)
	}
	switch l.Kind {
	case LinearEmpty:
		return true
	case LinearSingleton:
		return l.Start == o.Start
	case LinearBounded:
		return l.Start == o.Start && l.End == o.End && l.Step == o.Step
	case LinearOpenEnded:
		return l.Start == o.Start && l.Step == o.Step
	}
	return false
}

// Overlap computes the intersection of two linear sets, per spec.md §4.B:
// "solving the linear congruence l*x = c (mod k) via extended Euclid; if a
// common element exists it is the smallest first element and the common
// step is lcm(k, l)". Ported from array_transition_set.rs's overlap_with.
func (l LinearSet) Overlap(o LinearSet) (LinearSet, bool) {
	if l.IsEmpty() || o.IsEmpty() {
		return LinearSet{Kind: LinearEmpty}, false
	}
	if l.Kind == LinearSingleton && o.Kind == LinearSingleton {
		if l.Start == o.Start {
			return l, true
		}
		return LinearSet{Kind: LinearEmpty}, false
	}
	if l.Kind == LinearSingleton {
		if o.Contains(l.Start) {
			return l, true
		}
		return LinearSet{Kind: LinearEmpty}, false
	}
	if o.Kind == LinearSingleton {
		return o.Overlap(l)
	}

	// Both are (bounded or open) slices: solve the congruence x = Start (mod
	// Step) for each, find the smallest common solution >= max(Start).
	x0, modulus, ok := solveCongruence(l.Start, l.Step, o.Start, o.Step)
	if !ok {
		return LinearSet{Kind: LinearEmpty}, false
	}
	minStart := l.Start
	if o.Start > minStart {
		minStart = o.Start
	}
	if x0 < minStart {
		x0 += modulus * ceilDiv(minStart-x0, modulus)
	}

	bounded, hasBound := boundOf(l)
	oBounded, oHasBound := boundOf(o)
	switch {
	case hasBound && oHasBound:
		end := bounded
		if oBounded < end {
			end = oBounded
		}
		return NewBoundedSlice(x0, end, modulus), true
	case hasBound:
		return NewBoundedSlice(x0, bounded, modulus), true
	case oHasBound:
		return NewBoundedSlice(x0, oBounded, modulus), true
	default:
		return NewOpenEndedSlice(x0, modulus), true
	}
}

func boundOf(l LinearSet) (uint64, bool) {
	if l.Kind == LinearBounded {
		return l.End, true
	}
	return 0, false
}

func ceilDiv(a, b uint64) uint64 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// extendedEuclid returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
func extendedEuclid(a, b *big.Int) (g, x, y *big.Int) {
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0)
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	g1, x1, y1 := extendedEuclid(b, r)
	// g = g1; x = y1; y = x1 - q*y1
	x = new(big.Int).Set(y1)
	y = new(big.Int).Sub(x1, new(big.Int).Mul(q, y1))
	return g1, x, y
}

// solveCongruence solves the simultaneous congruences x = a1 (mod m1),
// x = a2 (mod m2), returning the smallest non-negative solution x0 and the
// combined modulus lcm(m1, m2), via the extended-Euclid-based CRT, mirroring
// array_transition_set.rs's solve_linear_congruence.
func solveCongruence(a1, m1, a2, m2 uint64) (x0, modulus uint64, ok bool) {
	bm1 := new(big.Int).SetUint64(m1)
	bm2 := new(big.Int).SetUint64(m2)
	ba1 := new(big.Int).SetUint64(a1)
	ba2 := new(big.Int).SetUint64(a2)

	g, p, _ := extendedEuclid(bm1, bm2)
	diff := new(big.Int).Sub(ba2, ba1)
	rem := new(big.Int)
	rem.Mod(diff, g)
	if rem.Sign() != 0 {
		return 0, 0, false
	}

	m2g := new(big.Int).Div(bm2, g)
	t := new(big.Int).Div(diff, g)
	k := new(big.Int).Mul(t, p)
	k.Mod(k, m2g)

	lcm := new(big.Int).Div(new(big.Int).Mul(bm1, bm2), g)
	x := new(big.Int).Add(ba1, new(big.Int).Mul(bm1, k))
	x.Mod(x, lcm)

	return x.Uint64(), lcm.Uint64(), true
}
