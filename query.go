package rsonpath

// SegmentKind distinguishes a child segment (single-step traversal) from a
// descendant segment (transitive traversal over every descendant).
type SegmentKind uint8

const (
	// Child applies its selectors to the immediate children of the current node.
	Child SegmentKind = iota
	// Descendant applies its selectors to the current node and every descendant.
	Descendant
)

func (k SegmentKind) String() string {
	if k == Descendant {
		return "descendant"
	}
	return "child"
}

// SelectorKind identifies which of the selector forms a Selector holds.
type SelectorKind uint8

const (
	// SelectorName matches an object member by exact name.
	SelectorName SelectorKind = iota
	// SelectorWildcard matches any object member or array element.
	SelectorWildcard
	// SelectorIndex matches a single array element by its zero-based index.
	SelectorIndex
	// SelectorSlice matches a range of array elements.
	SelectorSlice
)

// Slice is a JSONPath array slice selector start:end:step. End is optional
// (open-ended); Step is always a positive forward step (backward steps are
// rejected by the parser, per the Non-goals).
type Slice struct {
	Start    uint64
	End      uint64
	HasEnd   bool
	Step     uint64
}

// Selector is one member of a segment's selector list.
type Selector struct {
	Kind  SelectorKind
	Name  *JSONString // valid when Kind == SelectorName
	Index uint64      // valid when Kind == SelectorIndex
	Slice Slice       // valid when Kind == SelectorSlice
}

// NameSelector builds a SelectorName selector.
func NameSelector(name *JSONString) Selector {
	return Selector{Kind: SelectorName, Name: name}
}

// WildcardSelector builds a SelectorWildcard selector.
func WildcardSelector() Selector {
	return Selector{Kind: SelectorWildcard}
}

// IndexSelector builds a SelectorIndex selector.
func IndexSelector(i uint64) Selector {
	return Selector{Kind: SelectorIndex, Index: i}
}

// SliceSelector builds a SelectorSlice selector.
func SliceSelector(start uint64, end uint64, hasEnd bool, step uint64) Selector {
	return Selector{Kind: SelectorSlice, Slice: Slice{Start: start, End: end, HasEnd: hasEnd, Step: step}}
}

// Segment is a single step of a query: a modality (child or descendant) plus
// a non-empty ordered list of selectors applied disjunctively.
type Segment struct {
	Kind      SegmentKind
	Selectors []Selector
}

// IsChild reports whether the segment applies to immediate children only.
func (s Segment) IsChild() bool { return s.Kind == Child }

// Query is a compiled-from-text JSONPath AST: an ordered list of segments
// applied left to right, starting from the document root ($).
type Query struct {
	segments []Segment
}

// Segments returns the ordered segment list. The root query ($) has none.
func (q *Query) Segments() []Segment {
	if q == nil {
		return nil
	}
	return q.segments
}

// IsEmpty reports whether the query is the root query $ with no segments.
func (q *Query) IsEmpty() bool {
	return q == nil || len(q.segments) == 0
}

// QueryBuilder constructs a Query programmatically, mirroring the fluent
// builder used by the original test suite (JsonPathQueryBuilder).
type QueryBuilder struct {
	segments []Segment
}

// NewQueryBuilder starts a new, empty query builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (b *QueryBuilder) push(kind SegmentKind, sel Selector) *QueryBuilder {
	b.segments = append(b.segments, Segment{Kind: kind, Selectors: []Selector{sel}})
	return b
}

// ChildName appends a child name segment.
func (b *QueryBuilder) ChildName(name *JSONString) *QueryBuilder {
	return b.push(Child, NameSelector(name))
}

// DescendantName appends a descendant name segment.
func (b *QueryBuilder) DescendantName(name *JSONString) *QueryBuilder {
	return b.push(Descendant, NameSelector(name))
}

// ChildWildcard appends a child wildcard segment.
func (b *QueryBuilder) ChildWildcard() *QueryBuilder {
	return b.push(Child, WildcardSelector())
}

// DescendantWildcard appends a descendant wildcard segment.
func (b *QueryBuilder) DescendantWildcard() *QueryBuilder {
	return b.push(Descendant, WildcardSelector())
}

// ChildIndex appends a child array-index segment.
func (b *QueryBuilder) ChildIndex(i uint64) *QueryBuilder {
	return b.push(Child, IndexSelector(i))
}

// DescendantIndex appends a descendant array-index segment.
func (b *QueryBuilder) DescendantIndex(i uint64) *QueryBuilder {
	return b.push(Descendant, IndexSelector(i))
}

// ChildSlice appends a child array-slice segment.
func (b *QueryBuilder) ChildSlice(start, end uint64, hasEnd bool, step uint64) *QueryBuilder {
	return b.push(Child, SliceSelector(start, end, hasEnd, step))
}

// ChildMulti appends a child segment with multiple selectors.
func (b *QueryBuilder) ChildMulti(sels ...Selector) *QueryBuilder {
	b.segments = append(b.segments, Segment{Kind: Child, Selectors: sels})
	return b
}

// ToQuery finalizes the builder into an immutable Query.
func (b *QueryBuilder) ToQuery() *Query {
	segs := make([]Segment, len(b.segments))
	copy(segs, b.segments)
	return &Query{segments: segs}
}
