package rsonpath

import (
	"reflect"
	"testing"
)

func TestSuperstateSetHasIds(t *testing.T) {
	var s superstate
	s.set(0)
	s.set(63)
	s.set(64)
	s.set(200)

	for _, id := range []uint8{0, 63, 64, 200} {
		if !s.has(id) {
			t.Errorf("has(%d) = false, want true", id)
		}
	}
	for _, id := range []uint8{1, 65, 199, 255} {
		if s.has(id) {
			t.Errorf("has(%d) = true, want false", id)
		}
	}

	got := s.ids()
	want := []uint8{0, 63, 64, 200}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ids() = %v, want %v (ascending order)", got, want)
	}
}

func TestSuperstateIsEmpty(t *testing.T) {
	var s superstate
	if !s.isEmpty() {
		t.Errorf("zero-value superstate should be empty")
	}
	s.set(5)
	if s.isEmpty() {
		t.Errorf("superstate with a set bit should not be empty")
	}
}

func TestSuperstateIsSingleton(t *testing.T) {
	var s superstate
	if _, ok := s.isSingleton(); ok {
		t.Errorf("empty superstate should not be a singleton")
	}
	s.set(42)
	id, ok := s.isSingleton()
	if !ok || id != 42 {
		t.Errorf("isSingleton() = (%d, %v), want (42, true)", id, ok)
	}
	s.set(43)
	if _, ok := s.isSingleton(); ok {
		t.Errorf("two-bit superstate should not be a singleton")
	}
}

func TestSuperstateUnion(t *testing.T) {
	a := singletonSuperstate(3)
	b := singletonSuperstate(130)
	u := a.union(b)
	if !u.has(3) || !u.has(130) {
		t.Errorf("union should contain both operands' bits")
	}
	if u.has(4) {
		t.Errorf("union should not contain unrelated bits")
	}
}

func TestSuperstateClearBelow(t *testing.T) {
	var s superstate
	s.set(1)
	s.set(5)
	s.set(10)
	s.set(200)

	cleared := s.clearBelow(5)
	if cleared.has(1) {
		t.Errorf("clearBelow(5) should drop bit 1")
	}
	for _, id := range []uint8{5, 10, 200} {
		if !cleared.has(id) {
			t.Errorf("clearBelow(5) should keep bit %d", id)
		}
	}
}

func TestSingletonSuperstate(t *testing.T) {
	s := singletonSuperstate(77)
	id, ok := s.isSingleton()
	if !ok || id != 77 {
		t.Errorf("singletonSuperstate(77).isSingleton() = (%d, %v), want (77, true)", id, ok)
	}
}
