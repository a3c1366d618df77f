package rsonpath

import (
	"strings"
	"testing"
)

// blockFromString pads s on the right with ASCII spaces to exactly
// blockSize bytes, matching the Input contract's tail-padding rule
// (spec.md §4.A).
func blockFromString(t *testing.T, s string) [blockSize]byte {
	t.Helper()
	if len(s) > blockSize {
		t.Fatalf("test input %q longer than one block", s)
	}
	var b [blockSize]byte
	for i := range b {
		b[i] = ' '
	}
	copy(b[:], s)
	return b
}

// TestQuoteClassifierBlocks ports the single_block test vectors from the
// teacher's classification/quotes/avx2.rs verbatim (minus the empty-input
// case, which that iterator models as a "no blocks at all" None that this
// block-oriented API has no equivalent for).
func TestQuoteClassifierBlocks(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want uint64
	}{
		{"plain", "abcd", 0},
		{"single_quoted_word", `"abcd"`, 0b01_1111},
		{"mixed_members", `"number": 42, "string": "something" `, 0b0011_1111_1111_0001_1111_1100_0000_0111_1111},
		{"escaped_quotes_single_slash", `abc\"abc\"`, 0b00_0000_0000},
		{"escaped_quotes_double_slash", `abc\\"abc\\"`, 0b0111_1110_0000},
		{"nested_object", `{"aaa":[{},{"b":{"c":[1,2,3]}}],"e":{"a":[[],[1,2,3],`, 0b0_0000_0000_0000_0110_0011_0000_0000_0000_0110_0011_0000_0001_1110},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			block := blockFromString(t, tc.in)
			c := NewQuoteClassifier()
			got := c.ClassifyBlock(block)
			if got != tc.want {
				t.Fatalf("ClassifyBlock(%q) = %064b, want %064b", tc.in, got, tc.want)
			}
		})
	}
}

// TestQuoteClassifierCarriesAcrossBlocks checks a string literal split
// across a block boundary is classified correctly: a long quoted value
// spanning more than one 64-byte block must stay "within quotes" across the
// boundary and close correctly in the following block (spec.md §8's
// "string literal crossing a block boundary" boundary behavior).
func TestQuoteClassifierCarriesAcrossBlocks(t *testing.T) {
	first := `"` + strings.Repeat("a", blockSize-1) // exactly one full block: opening quote + 63 letters
	second := strings.Repeat("a", 15) + `"`          // closing quote at index 15 of the next block

	c := NewQuoteClassifier()
	var b1 [blockSize]byte
	copy(b1[:], first)
	m1 := c.ClassifyBlock(b1)
	if m1>>63 == 0 {
		t.Fatalf("expected block to end inside the quoted span, mask=%064b", m1)
	}

	var b2 [blockSize]byte
	copy(b2[:], second)
	m2 := c.ClassifyBlock(b2)
	// The closing quote is the 16th byte (index 15) of the second block; all
	// bytes before it remain marked, while the prefix XOR toggles the closing
	// quote itself and everything after it to outside quotes.
	if m2&(1<<14) == 0 {
		t.Fatalf("expected the last byte before the closing quote to still read inside quotes, mask=%064b", m2)
	}
	if m2&(1<<20) != 0 {
		t.Fatalf("expected bytes past the closing quote to read outside quotes, mask=%064b", m2)
	}
}
