package rsonpath

import "testing"

func TestParseQueryRootForms(t *testing.T) {
	for _, src := range []string{"", "$"} {
		q, err := ParseQuery(src)
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", src, err)
		}
		if !q.IsEmpty() {
			t.Errorf("ParseQuery(%q) should be the empty query", src)
		}
	}
}

func TestParseQueryShorthandChildAndDescendant(t *testing.T) {
	q, err := ParseQuery("$.a..b.*")
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	segs := q.Segments()
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	if segs[0].Kind != Child || segs[0].Selectors[0].Kind != SelectorName || segs[0].Selectors[0].Name.Unquoted() != "a" {
		t.Errorf("segment 0 = %+v, want child name 'a'", segs[0])
	}
	if segs[1].Kind != Descendant || segs[1].Selectors[0].Name.Unquoted() != "b" {
		t.Errorf("segment 1 = %+v, want descendant name 'b'", segs[1])
	}
	if segs[2].Kind != Child || segs[2].Selectors[0].Kind != SelectorWildcard {
		t.Errorf("segment 2 = %+v, want child wildcard", segs[2])
	}
}

func TestParseQueryBracketedSelectors(t *testing.T) {
	q, err := ParseQuery(`$["a","b"]`)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	segs := q.Segments()
	if len(segs) != 1 || len(segs[0].Selectors) != 2 {
		t.Fatalf("got %+v, want one segment with two selectors", segs)
	}
	if segs[0].Selectors[0].Name.Unquoted() != "a" || segs[0].Selectors[1].Name.Unquoted() != "b" {
		t.Errorf("got %+v", segs[0].Selectors)
	}
}

func TestParseQueryIndexAndSlice(t *testing.T) {
	q, err := ParseQuery(`$[3]`)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	sel := q.Segments()[0].Selectors[0]
	if sel.Kind != SelectorIndex || sel.Index != 3 {
		t.Errorf("got %+v, want index 3", sel)
	}

	q, err = ParseQuery(`$[1:4:2]`)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	sel = q.Segments()[0].Selectors[0]
	if sel.Kind != SelectorSlice || sel.Slice.Start != 1 || sel.Slice.End != 4 || !sel.Slice.HasEnd || sel.Slice.Step != 2 {
		t.Errorf("got %+v, want slice 1:4:2", sel)
	}

	q, err = ParseQuery(`$[2::3]`)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	sel = q.Segments()[0].Selectors[0]
	if sel.Kind != SelectorSlice || sel.Slice.Start != 2 || sel.Slice.HasEnd || sel.Slice.Step != 3 {
		t.Errorf("got %+v, want open-ended slice 2::3", sel)
	}
}

func TestParseQueryRejectsNegativeIndex(t *testing.T) {
	if _, err := ParseQuery(`$[-1]`); err == nil {
		t.Fatal("expected negative index to be rejected")
	}
}

func TestParseQueryRejectsBackwardSliceStep(t *testing.T) {
	if _, err := ParseQuery(`$[::-1]`); err == nil {
		t.Fatal("expected a backward slice step to be rejected")
	}
}

func TestParseQueryRejectsFilterSelector(t *testing.T) {
	if _, err := ParseQuery(`$[?@.a]`); err == nil {
		t.Fatal("expected a filter selector to be rejected as unsupported")
	}
}

func TestStringifyQueryRoundTrip(t *testing.T) {
	cases := []string{
		"$",
		"$.a",
		"$..a",
		"$.*",
		"$.a.b.c",
		`$["a","b"]`,
	}
	for _, src := range cases {
		q, err := ParseQuery(src)
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", src, err)
		}
		got := StringifyQuery(q)
		if got != src {
			t.Errorf("StringifyQuery(ParseQuery(%q)) = %q, want %q", src, got, src)
		}
	}
}
