package rsonpath

// Sink receives the byte offsets of match locations as the engine finds
// them, per spec.md §6. Implementations must not retain the byte slices
// passed to ReportSpan (the engine may reuse or discard its backing buffer after
// the call returns).
type Sink interface {
	// Report is called with the byte offset of the first character of a
	// matched value (the engine never decodes the value itself).
	Report(offset int)
}

// SpanSink additionally receives the matched value's full byte span, for
// callers who opted into full-span matching (WithFullSpanMatches).
type SpanSink interface {
	Sink
	ReportSpan(offset int, value []byte)
}

// CountSink is a Sink that only counts matches, per spec.md §6's minimal
// result consumer.
type CountSink struct {
	count int
}

// NewCountSink returns a fresh, zeroed CountSink.
func NewCountSink() *CountSink { return &CountSink{} }

// Report implements Sink.
func (s *CountSink) Report(offset int) { s.count++ }

// Count returns the number of matches reported so far.
func (s *CountSink) Count() int { return s.count }

// IndexSink is a Sink that collects every match offset in the order
// reported, per spec.md §6.
type IndexSink struct {
	Offsets []int
}

// NewIndexSink returns an empty IndexSink.
func NewIndexSink() *IndexSink { return &IndexSink{} }

// Report implements Sink.
func (s *IndexSink) Report(offset int) { s.Offsets = append(s.Offsets, offset) }

// Span is one matched value's offset and raw byte span.
type Span struct {
	Offset int
	Value  []byte
}

// SpanCollectorSink is a SpanSink that collects every matched value's byte
// span, per spec.md §6's full-span-match mode. Value slices are copied so
// callers may retain them past the run.
type SpanCollectorSink struct {
	Spans []Span
}

// NewSpanCollectorSink returns an empty SpanCollectorSink.
func NewSpanCollectorSink() *SpanCollectorSink { return &SpanCollectorSink{} }

// Report implements Sink by recording the offset with a nil span, for
// callers that mix both Sink and SpanSink use within one run.
func (s *SpanCollectorSink) Report(offset int) {
	s.Spans = append(s.Spans, Span{Offset: offset})
}

// ReportSpan implements SpanSink.
func (s *SpanCollectorSink) ReportSpan(offset int, value []byte) {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.Spans = append(s.Spans, Span{Offset: offset, Value: cp})
}
