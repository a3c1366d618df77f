package rsonpath

// This file generalizes the teacher's functional-options pattern
// (simdjson-go's options.go: `ParserOption func(*internalParsedJson) error`)
// into the two option families this module's two entry points need:
// CompileOption configures query compilation, RunOption configures a single
// engine run.

type compileConfig struct {
	whitespace   WhitespacePolicy
	maxDFAStates int
}

func defaultCompileConfig() compileConfig {
	return compileConfig{whitespace: StrictWhitespace, maxDFAStates: 256}
}

// CompileOption configures Compile/ParseQuery.
type CompileOption func(*compileConfig)

// WithWhitespacePolicy selects strict (default) or relaxed surrounding
// whitespace handling in the query grammar, per spec.md §4.B.
func WithWhitespacePolicy(p WhitespacePolicy) CompileOption {
	return func(c *compileConfig) { c.whitespace = p }
}

// WithMaxDFAStates overrides the default 256-state DFA budget (mostly useful
// for tests that want to probe the QueryTooComplex boundary with a smaller
// budget than the full 8-bit state space).
func WithMaxDFAStates(n int) CompileOption {
	return func(c *compileConfig) { c.maxDFAStates = n }
}

type runConfig struct {
	emitColons    bool
	emitCommas    bool
	bufferSize    int
	fullSpanMatch bool
	decoder       func([]byte, any) error
}

func defaultRunConfig() runConfig {
	return runConfig{
		emitColons: true, emitCommas: true, bufferSize: 64 * 1024,
		decoder: defaultDecode,
	}
}

// RunOption configures a single Run call.
type RunOption func(*runConfig)

// WithBufferSize records a read buffer size in the run configuration. No
// Input implementation reads it (NewBufferedInput reads its whole stream
// with io.ReadAll), so it has no effect on a run.
func WithBufferSize(n int) RunOption {
	return func(c *runConfig) { c.bufferSize = n }
}

// WithFullSpanMatches causes Run to report full matched-value spans via
// SpanSink.ReportSpan instead of bare offsets via Sink.Report, for sinks
// that implement SpanSink.
func WithFullSpanMatches(b bool) RunOption {
	return func(c *runConfig) { c.fullSpanMatch = b }
}

// WithDecoder overrides the JSON decoder FindAll uses to turn a matched
// value's raw bytes into a Go value (compat.go). The default is
// platform-dependent: sonic on amd64, json-iterator elsewhere (decode_amd64.go
// / decode_other.go).
func WithDecoder(decode func(data []byte, v any) error) RunOption {
	return func(c *runConfig) { c.decoder = decode }
}
