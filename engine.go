package rsonpath

import "bytes"

// Runner executes one compiled Automaton against any number of documents,
// per spec.md §5: a Runner holds no per-run mutable state, so the same
// instance may be reused, including concurrently from separate goroutines.
//
// The control flow below is a merge of two teacher-adjacent designs found in
// original_source: the colon-driven member matching, head-skip memmem
// heuristic and is_match backward-quote-scan idiom are ported from
// stackless.rs's Executor; the recursive run_on_subtree structure and the
// comma-driven array-index counting (array_count, has_array_index_
// transition_to_accepting) are ported from engine/recursive.rs, whose
// snapshot already drives both branches from one combined loop that
// stackless.rs (an older engine variant in the same crate) predates. Using
// Go's call stack for recursion in place of recursive.rs's own call stack
// lets this port skip hand-rolling a SmallStack/StackFrame type for
// (depth, state) pairs -- the call stack already holds that pair as two
// ordinary locals per invocation.
//
// Every single-byte scan below (whitespace skipping, quote/colon finding,
// value-span measurement) goes through the Input interface's seek family
// rather than indexing a byte slice directly, per spec.md §4.A/§6. The
// structural/quote classifiers and the head-skip memmem search are the
// exception: both are genuinely bulk, whole-buffer operations, so they keep
// operating on the contiguous buffer Input.Bytes() hands back once per run.
type Runner struct {
	automaton *Automaton
}

// NewRunner wraps an already-compiled Automaton for repeated Run calls.
func NewRunner(a *Automaton) *Runner { return &Runner{automaton: a} }

// Run executes the query against input, reporting every match to sink.
func (r *Runner) Run(input Input, sink Sink, opts ...RunOption) error {
	cfg := defaultRunConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if r.automaton.IsEmptyQuery() {
		return runEmptyQuery(input, sink, cfg)
	}

	data := input.Bytes()
	e := &executor{
		automaton: r.automaton,
		input:     input,
		data:      data,
		sink:      sink,
		cfg:       cfg,
		mask:      computeWithinQuotesMask(data),
	}
	return e.run()
}

// runEmptyQuery implements the root query $: it matches exactly the
// document's single top-level value, per spec.md's data model, grounded on
// stackless.rs's empty_query.
func runEmptyQuery(input Input, sink Sink, cfg runConfig) error {
	classifier := NewStructuralClassifier(input.Bytes())
	if s, ok := classifier.Next(); ok && s.Kind == Opening {
		report(sink, input, s.At, cfg.fullSpanMatch)
		return nil
	}
	if at, _, ok := input.SeekNonWhitespaceForward(0); ok {
		report(sink, input, at, cfg.fullSpanMatch)
	}
	return nil
}

type executor struct {
	automaton *Automaton
	input     Input
	// data and mask back the structural/quote classifiers, which scan the
	// whole buffer up front rather than byte-at-a-time; every other access
	// below goes through input.
	data         []byte
	sink         Sink
	cfg          runConfig
	mask         []bool
	patternCache map[*JSONString]*StringPattern
}

// patternFor lazily compiles (and memoizes) the StringPattern for a member
// name label, so that a query transition's label is compiled to its
// alternative-encoding table at most once per run regardless of how many
// times isMatch is called against it.
func (e *executor) patternFor(label *JSONString) *StringPattern {
	if e.patternCache == nil {
		e.patternCache = make(map[*JSONString]*StringPattern)
	}
	if p, ok := e.patternCache[label]; ok {
		return p
	}
	p := NewStringPattern(label)
	e.patternCache[label] = p
	return p
}

func (e *executor) newClassifier(pos int) *StructuralClassifier {
	return &StructuralClassifier{data: e.data, withinQuotes: e.mask, pos: pos}
}

// firstNonWS returns the index of the first non-whitespace byte at or after
// from, or e.input.Len() if the document ends first.
func (e *executor) firstNonWS(from int) int {
	at, _, ok := e.input.SeekNonWhitespaceForward(from)
	if !ok {
		return e.input.Len()
	}
	return at
}

func (e *executor) run() error {
	initial := e.automaton.InitialState()

	// Root-level descendant search (e.g. "$..foo"): the initial state's
	// fallback loops back to itself and the only way out is a single member
	// name, so every occurrence of that name anywhere in the document is a
	// candidate regardless of nesting. Find candidates via a substring
	// search instead of walking every structural byte, per spec.md §4.E.
	if e.automaton.Fallback(initial) == initial {
		mts := e.automaton.MemberTransitions(initial)
		if len(mts) == 1 && len(e.automaton.ArrayTransitions(initial)) == 0 {
			return e.runWithHeadSkip(mts[0])
		}
	}

	classifier := e.newClassifier(0)
	s, ok := classifier.Next()
	if !ok || s.Kind != Opening {
		return nil
	}
	_, err := e.runOnSubtree(classifier, initial, s.At)
	return err
}

// runWithHeadSkip implements the memmem-based root descendant search,
// ported from stackless.rs's run. needle is the member name's canonical
// quoted encoding; every occurrence not preceded by a backslash and
// followed (modulo whitespace) by a colon is a genuine member, whose value
// is then descended into with the ordinary recursive walk.
func (e *executor) runWithHeadSkip(mt MemberTransition) error {
	needle := mt.Label.BytesWithQuotes()
	idx := 0
	for idx < len(e.data) {
		rel := bytes.Index(e.data[idx:], needle)
		if rel < 0 {
			return nil
		}
		idx += rel

		if idx != 0 && e.input.Slice(idx-1, idx)[0] == '\\' {
			idx++
			continue
		}

		colonIdx, b, ok := e.input.SeekNonWhitespaceForward(idx + len(needle))
		if !ok || b != ':' {
			idx++
			continue
		}

		valueIdx := e.firstNonWS(colonIdx + 1)
		if valueIdx >= e.input.Len() {
			return nil
		}

		if e.automaton.IsAccepting(mt.Target) {
			report(e.sink, e.input, valueIdx, e.cfg.fullSpanMatch)
		}

		switch e.input.Slice(valueIdx, valueIdx+1)[0] {
		case '{', '[':
			classifier := e.newClassifier(valueIdx + 1)
			end, err := e.runOnSubtree(classifier, mt.Target, valueIdx)
			if err != nil {
				return err
			}
			idx = end + 1
		default:
			idx = valueSpanEnd(e.input, valueIdx)
		}
	}
	return nil
}

// runOnSubtree walks one JSON container (object or array) whose opening
// bracket is at openIdx, consuming events from classifier (already
// positioned just past that opening bracket), reporting every match
// beneath state, and returns the index of the container's closing bracket.
func (e *executor) runOnSubtree(classifier *StructuralClassifier, state State, openIdx int) (int, error) {
	isList := e.input.Slice(openIdx, openIdx+1)[0] == '['

	fallbackState := e.automaton.Fallback(state)
	isFallbackAccepting := e.automaton.IsAccepting(fallbackState)
	searchingList := e.automaton.HasAnyArrayItemTransition(state)
	isAcceptingListItem := isList && e.automaton.HasArrayIndexTransitionToAccepting(state)

	needsCommas := isList && (isFallbackAccepting || searchingList) && e.cfg.emitCommas
	needsColons := !isList && e.automaton.HasTransitionToAccepting(state) && e.cfg.emitColons

	configure := func(idx int) {
		if needsCommas {
			classifier.TurnCommasOn(idx)
		} else {
			classifier.TurnCommasOff()
		}
		if needsColons {
			classifier.TurnColonsOn(idx)
		} else {
			classifier.TurnColonsOff()
		}
	}
	configure(openIdx)

	var arrayCount uint64

	wantsFirstItem := isFallbackAccepting
	if !wantsFirstItem {
		for _, at := range e.automaton.ArrayTransitions(state) {
			if at.Label.Contains(0) && e.automaton.IsAccepting(at.Target) {
				wantsFirstItem = true
				break
			}
		}
	}

	var nextEvent *Structural
	if isList && wantsFirstItem {
		if s, ok := classifier.Next(); ok {
			switch s.Kind {
			case Closing:
				if vi := e.firstNonWS(openIdx + 1); vi < s.At {
					report(e.sink, e.input, vi, e.cfg.fullSpanMatch)
				}
				return s.At, nil
			case Comma:
				report(e.sink, e.input, e.firstNonWS(openIdx+1), e.cfg.fullSpanMatch)
				nextEvent = &s
			default:
				nextEvent = &s
			}
		}
	}

	for {
		var event Structural
		var ok bool
		if nextEvent != nil {
			event, ok = *nextEvent, true
			nextEvent = nil
		} else {
			event, ok = classifier.Next()
		}
		if !ok {
			return e.input.Len(), nil
		}

		switch event.Kind {
		case Comma:
			nxt, hasNext := classifier.Next()
			isNextOpening := hasNext && nxt.Kind == Opening
			valueAt := e.firstNonWS(event.At + 1)

			if !isNextOpening && isList && isFallbackAccepting {
				report(e.sink, e.input, valueAt, e.cfg.fullSpanMatch)
			}

			if arrayCount < maxSafeInteger {
				arrayCount++
			}
			matchIndex := false
			for _, at := range e.automaton.ArrayTransitions(state) {
				if at.Label.Contains(arrayCount) && e.automaton.IsAccepting(at.Target) {
					matchIndex = true
					break
				}
			}
			if isAcceptingListItem && !isNextOpening && matchIndex {
				report(e.sink, e.input, valueAt, e.cfg.fullSpanMatch)
			}
			if hasNext {
				nextEvent = &nxt
			}

		case Colon:
			nxt, hasNext := classifier.Next()
			isNextOpening := hasNext && nxt.Kind == Opening
			if !isNextOpening {
				valueAt := e.firstNonWS(event.At + 1)
				anyMatched := false
				for _, mt := range e.automaton.MemberTransitions(state) {
					if !e.automaton.IsAccepting(mt.Target) {
						continue
					}
					matched, err := e.isMatch(event.At, mt.Label)
					if err != nil {
						return 0, err
					}
					if matched {
						report(e.sink, e.input, valueAt, e.cfg.fullSpanMatch)
						anyMatched = true
						break
					}
				}
				if !anyMatched && isFallbackAccepting {
					report(e.sink, e.input, valueAt, e.cfg.fullSpanMatch)
				}
			}
			if hasNext {
				nextEvent = &nxt
			}

		case Opening:
			var matched *State
			colonIdx := -1
			if j, b, ok := e.input.SeekNonWhitespaceBackward(event.At - 1); ok && b == ':' {
				colonIdx = j
			}

			for _, mt := range e.automaton.MemberTransitions(state) {
				if colonIdx < 0 {
					break
				}
				ok, err := e.isMatch(colonIdx, mt.Label)
				if err != nil {
					return 0, err
				}
				if ok {
					t := mt.Target
					matched = &t
					if e.automaton.IsAccepting(t) {
						report(e.sink, e.input, event.At, e.cfg.fullSpanMatch)
					}
					break
				}
			}
			if matched == nil {
				for _, at := range e.automaton.ArrayTransitions(state) {
					if isList && at.Label.Contains(arrayCount) {
						t := at.Target
						matched = &t
						if e.automaton.IsAccepting(t) {
							report(e.sink, e.input, event.At, e.cfg.fullSpanMatch)
						}
						break
					}
				}
			}

			var endIdx int
			var err error
			if matched != nil {
				endIdx, err = e.runOnSubtree(classifier, *matched, event.At)
				if err != nil {
					return 0, err
				}
				if e.automaton.IsUnitary(state) {
					return e.skipRemainder(classifier)
				}
			} else {
				if isFallbackAccepting {
					report(e.sink, e.input, event.At, e.cfg.fullSpanMatch)
				}
				if e.automaton.IsRejecting(fallbackState) {
					endIdx, err = e.skipSubtree(classifier)
				} else {
					endIdx, err = e.runOnSubtree(classifier, fallbackState, event.At)
				}
				if err != nil {
					return 0, err
				}
			}
			configure(endIdx)

		case Closing:
			return event.At, nil
		}
	}
}

// isMatch reports whether the member name label precedes colonIdx. It
// scans backward from the colon to find the label's closing quote (as
// stackless.rs's Executor::is_match does), then delegates the actual
// comparison to the label's StringPattern (stringpattern.go) via
// StringPattern.MatchBackward, so that a document spelling the name with a
// different but equivalent escape encoding than this query's canonical one
// (e.g. "\/" vs "/", or a \uXXXX escape of an ASCII character) still
// matches, per spec.md §4.F.
func (e *executor) isMatch(colonIdx int, label *JSONString) (bool, error) {
	wsIdx, _, ok := e.input.SeekNonWhitespaceBackward(colonIdx - 1)
	if !ok {
		return false, &EngineError{Offset: colonIdx, Err: ErrMalformedStringQuotes}
	}
	closingQuoteIdx, ok := e.input.SeekBackward(wsIdx, '"')
	if !ok {
		return false, &EngineError{Offset: colonIdx, Err: ErrMalformedStringQuotes}
	}

	_, ok = e.patternFor(label).MatchBackward(e.input.Slice(0, closingQuoteIdx+1))
	return ok, nil
}

// skipSubtree consumes events until the closing bracket matching the
// opening bracket classifier is positioned just after, per spec.md §4.E's
// bracket-balanced tail-skip. Used when a state's fallback is rejecting, so
// nothing inside the container can ever match.
func (e *executor) skipSubtree(classifier *StructuralClassifier) (int, error) {
	classifier.TurnCommasOff()
	classifier.TurnColonsOff()
	depth := 1
	for {
		ev, ok := classifier.Next()
		if !ok {
			return e.input.Len(), nil
		}
		switch ev.Kind {
		case Opening:
			depth++
		case Closing:
			depth--
			if depth == 0 {
				return ev.At, nil
			}
		}
	}
}

// skipRemainder consumes events until the closing bracket of the container
// the classifier is currently inside (depth 0 relative to the call site),
// used by the unitary-state optimization below: once a state with exactly
// one outbound transition and a rejecting fallback has matched, no sibling
// in the same container can ever also match, so the remainder of the
// container is skipped outright instead of continuing to classify commas
// and colons inside it. Grounded on recursive.rs's "unique-members"
// unitary-state skip.
func (e *executor) skipRemainder(classifier *StructuralClassifier) (int, error) {
	classifier.TurnCommasOff()
	classifier.TurnColonsOff()
	depth := 0
	for {
		ev, ok := classifier.Next()
		if !ok {
			return e.input.Len(), nil
		}
		switch ev.Kind {
		case Opening:
			depth++
		case Closing:
			if depth == 0 {
				return ev.At, nil
			}
			depth--
		}
	}
}

func isJSONWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// report delivers one match to sink, expanding to the full value span (via
// SpanSink) when the caller opted in with WithFullSpanMatches and the sink
// supports it, per spec.md §6's supplemented full-span-match mode.
func report(sink Sink, input Input, offset int, fullSpan bool) {
	if fullSpan {
		if ss, ok := sink.(SpanSink); ok {
			end := valueSpanEnd(input, offset)
			ss.ReportSpan(offset, input.Slice(offset, end))
			return
		}
	}
	sink.Report(offset)
}

// valueSpanEnd returns the index one past the end of the JSON value
// starting at start (which must be the value's first non-whitespace byte).
func valueSpanEnd(input Input, start int) int {
	if start >= input.Len() {
		return start
	}
	switch input.Slice(start, start+1)[0] {
	case '{', '[':
		return balancedEnd(input, start)
	case '"':
		return stringEnd(input, start)
	default:
		if end, ok := input.SeekForward(start, ',', '}', ']', ' ', '\t', '\n', '\r'); ok {
			return end
		}
		return input.Len()
	}
}

func balancedEnd(input Input, start int) int {
	open := input.Slice(start, start+1)[0]
	var closeByte byte
	if open == '{' {
		closeByte = '}'
	} else {
		closeByte = ']'
	}
	depth := 0
	i := start
	n := input.Len()
	for i < n {
		b := input.Slice(i, i+1)[0]
		if b == '"' {
			i = stringEnd(input, i)
			continue
		}
		switch b {
		case open:
			depth++
		case closeByte:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return i
}

func stringEnd(input Input, start int) int {
	i := start + 1
	n := input.Len()
	for i < n {
		b := input.Slice(i, i+1)[0]
		if b == '\\' {
			i += 2
			continue
		}
		if b == '"' {
			return i + 1
		}
		i++
	}
	return i
}
