package rsonpath

import "testing"

// These four tests port structural.rs's resumption_* unit tests verbatim,
// against the same document:
//
//	{"a": [42, 36, { "b": { "c": 1, "d": 2 } }]}
const structuralTestJSON = `{"a": [42, 36, { "b": { "c": 1, "d": 2 } }]}`

func expectNext(t *testing.T, c *StructuralClassifier, wantKind StructuralKind, wantAt int) {
	t.Helper()
	s, ok := c.Next()
	if !ok {
		t.Fatalf("Next(): expected (kind=%d,at=%d), got none", wantKind, wantAt)
	}
	if s.Kind != wantKind || s.At != wantAt {
		t.Fatalf("Next(): got {Kind:%d At:%d}, want {Kind:%d At:%d}", s.Kind, s.At, wantKind, wantAt)
	}
}

func TestStructuralResumptionWithoutCommasOrColons(t *testing.T) {
	c := NewStructuralClassifier([]byte(structuralTestJSON))

	expectNext(t, c, Opening, 0)
	expectNext(t, c, Opening, 6)

	resumed := ResumeStructuralClassification(c.Stop())

	expectNext(t, resumed, Opening, 15)
	expectNext(t, resumed, Opening, 22)
}

func TestStructuralResumptionWithCommasButNoColons(t *testing.T) {
	c := NewStructuralClassifier([]byte(structuralTestJSON))
	c.TurnCommasOn(0)

	expectNext(t, c, Opening, 0)
	expectNext(t, c, Opening, 6)
	expectNext(t, c, Comma, 9)
	expectNext(t, c, Comma, 13)

	resumed := ResumeStructuralClassification(c.Stop())

	expectNext(t, resumed, Opening, 15)
	expectNext(t, resumed, Opening, 22)
	expectNext(t, resumed, Comma, 30)
}

func TestStructuralResumptionWithColonsButNoCommas(t *testing.T) {
	c := NewStructuralClassifier([]byte(structuralTestJSON))
	c.TurnColonsOn(0)

	expectNext(t, c, Opening, 0)
	expectNext(t, c, Colon, 4)
	expectNext(t, c, Opening, 6)

	resumed := ResumeStructuralClassification(c.Stop())

	expectNext(t, resumed, Opening, 15)
	expectNext(t, resumed, Colon, 20)
	expectNext(t, resumed, Opening, 22)
	expectNext(t, resumed, Colon, 27)
}

func TestStructuralResumptionWithCommasAndColons(t *testing.T) {
	c := NewStructuralClassifier([]byte(structuralTestJSON))
	c.TurnCommasOn(0)
	c.TurnColonsOn(0)

	expectNext(t, c, Opening, 0)
	expectNext(t, c, Colon, 4)
	expectNext(t, c, Opening, 6)
	expectNext(t, c, Comma, 9)
	expectNext(t, c, Comma, 13)

	resumed := ResumeStructuralClassification(c.Stop())

	expectNext(t, resumed, Opening, 15)
	expectNext(t, resumed, Colon, 20)
	expectNext(t, resumed, Opening, 22)
	expectNext(t, resumed, Colon, 27)
	expectNext(t, resumed, Comma, 30)
}

// TestStructuralSkipsQuotedStructuralLookalikes ports structural.rs's
// second doc-test: structural characters inside a quoted string must not be
// classified, even when the string itself contains escaped brackets/quotes.
func TestStructuralSkipsQuotedStructuralLookalikes(t *testing.T) {
	json := `{"x": "[\"\"]"}`
	c := NewStructuralClassifier([]byte(json))

	expectNext(t, c, Opening, 0)
	expectNext(t, c, Closing, len(json)-1)

	if _, ok := c.Next(); ok {
		t.Fatalf("expected no further structural bytes")
	}
}

// TestStructuralNestedObjectsAndArrays ports structural.rs's first doc-test.
func TestStructuralNestedObjectsAndArrays(t *testing.T) {
	json := `{"x": [{"y": 42}, {}]}`
	c := NewStructuralClassifier([]byte(json))

	want := []Structural{
		{Kind: Opening, At: 0},
		{Kind: Opening, At: 6},
		{Kind: Opening, At: 7},
		{Kind: Closing, At: 15},
		{Kind: Opening, At: 18},
		{Kind: Closing, At: 19},
		{Kind: Closing, At: 20},
		{Kind: Closing, At: 21},
	}
	for _, w := range want {
		expectNext(t, c, w.Kind, w.At)
	}
	if _, ok := c.Next(); ok {
		t.Fatalf("expected no further structural bytes")
	}
}
