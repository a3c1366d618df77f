package rsonpath

import "testing"

// This file ports input_implementation_tests.rs's hand-checkable scan-table
// scenarios -- forward/backward byte seek, forward/backward whitespace
// skip, and string-span equivalence -- against the borrowed and owned
// in-memory Input implementations.

func allInMemoryInputs(t *testing.T, data []byte) map[string]Input {
	t.Helper()
	return map[string]Input{
		"borrowed": NewBorrowedInput(data),
		"owned":    NewOwnedInput(data),
	}
}

func TestInputSeekForward(t *testing.T) {
	data := []byte(`  {"a":1}  `)
	for name, in := range allInMemoryInputs(t, data) {
		if at, ok := in.SeekForward(0, '{'); !ok || at != 2 {
			t.Errorf("%s: SeekForward(0, '{') = (%d, %v), want (2, true)", name, at, ok)
		}
		if at, ok := in.SeekForward(0, ':'); !ok || at != 6 {
			t.Errorf("%s: SeekForward(0, ':') = (%d, %v), want (6, true)", name, at, ok)
		}
		if _, ok := in.SeekForward(0, '$'); ok {
			t.Errorf("%s: SeekForward for an absent byte should report ok=false", name)
		}
	}
}

func TestInputSeekBackward(t *testing.T) {
	data := []byte(`{"a":1,"a":2}`)
	for name, in := range allInMemoryInputs(t, data) {
		if at, ok := in.SeekBackward(len(data)-1, '"'); !ok || at != 9 {
			t.Errorf("%s: SeekBackward(end, '\"') = (%d, %v), want (9, true)", name, at, ok)
		}
		if _, ok := in.SeekBackward(len(data)-1, '$'); ok {
			t.Errorf("%s: SeekBackward for an absent byte should report ok=false", name)
		}
	}
}

func TestInputSeekNonWhitespaceForward(t *testing.T) {
	data := []byte("   \t\n x  ")
	for name, in := range allInMemoryInputs(t, data) {
		at, b, ok := in.SeekNonWhitespaceForward(0)
		if !ok || at != 6 || b != 'x' {
			t.Errorf("%s: SeekNonWhitespaceForward(0) = (%d, %q, %v), want (6, 'x', true)", name, at, b, ok)
		}
		if _, _, ok := in.SeekNonWhitespaceForward(7); ok {
			t.Errorf("%s: SeekNonWhitespaceForward past the last non-whitespace byte should report ok=false", name)
		}
	}
}

func TestInputSeekNonWhitespaceBackward(t *testing.T) {
	data := []byte("  x   ")
	for name, in := range allInMemoryInputs(t, data) {
		at, b, ok := in.SeekNonWhitespaceBackward(len(data) - 1)
		if !ok || at != 2 || b != 'x' {
			t.Errorf("%s: SeekNonWhitespaceBackward(end) = (%d, %q, %v), want (2, 'x', true)", name, at, b, ok)
		}
		if _, _, ok := in.SeekNonWhitespaceBackward(1); ok {
			t.Errorf("%s: SeekNonWhitespaceBackward before the first non-whitespace byte should report ok=false", name)
		}
	}
}

func TestInputIsStringMatch(t *testing.T) {
	data := []byte(`"abc"`)
	pattern := NewStringPattern(NewJSONString("abc"))
	for name, in := range allInMemoryInputs(t, data) {
		if !in.IsStringMatch(0, len(data), pattern) {
			t.Errorf("%s: IsStringMatch should match an exact encoding of the pattern", name)
		}
		if in.IsStringMatch(0, len(data)-1, pattern) {
			t.Errorf("%s: IsStringMatch should reject a truncated span", name)
		}
	}

	other := []byte(`"abd"`)
	for name, in := range allInMemoryInputs(t, other) {
		if in.IsStringMatch(0, len(other), pattern) {
			t.Errorf("%s: IsStringMatch should reject a span spelling a different name", name)
		}
	}
}

func TestInputSlice(t *testing.T) {
	data := []byte("0123456789")
	for name, in := range allInMemoryInputs(t, data) {
		if got := string(in.Slice(2, 5)); got != "234" {
			t.Errorf("%s: Slice(2, 5) = %q, want %q", name, got, "234")
		}
	}
}
