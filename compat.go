package rsonpath

// compat.go is this module's "domain decode" surface: the core engine never
// parses or interprets matched values (spec.md: it only ever delimits byte
// spans), but callers frequently want actual Go values back. FindAll wires
// WithFullSpanMatches plus a pluggable decoder (decode_amd64.go's sonic path
// or decode_other.go's json-iterator fallback) to provide that convenience
// without pulling decoding into the matching hot path itself.

// Match pairs a located value's byte offset with its decoded Go
// representation.
type Match struct {
	Offset int
	Value  any
}

// FindAll compiles query, runs it against data, and decodes every matched
// value into a Go value using the configured decoder (sonic on amd64,
// json-iterator otherwise, overridable with WithDecoder).
func FindAll(query string, data []byte, opts ...RunOption) ([]Match, error) {
	automaton, err := Compile(query)
	if err != nil {
		return nil, err
	}
	return FindAllCompiled(automaton, data, opts...)
}

// FindAllCompiled is FindAll for an already-compiled Automaton, letting
// callers amortize compilation across many documents (spec.md §5).
func FindAllCompiled(automaton *Automaton, data []byte, opts ...RunOption) ([]Match, error) {
	cfg := defaultRunConfig()
	for _, o := range opts {
		o(&cfg)
	}
	opts = append(opts, WithFullSpanMatches(true))

	sink := NewSpanCollectorSink()
	if err := NewRunner(automaton).Run(NewBorrowedInput(data), sink, opts...); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(sink.Spans))
	for _, s := range sink.Spans {
		var v any
		if len(s.Value) > 0 {
			if err := cfg.decoder(s.Value, &v); err != nil {
				return nil, &EngineError{Offset: s.Offset, Err: err}
			}
		}
		matches = append(matches, Match{Offset: s.Offset, Value: v})
	}
	return matches, nil
}
