package rsonpath

import "strings"

// WhitespacePolicy controls whether whitespace surrounding tokens is
// accepted, per spec.md §4.B's "surround-whitespace policy".
type WhitespacePolicy uint8

const (
	// StrictWhitespace rejects any whitespace the core grammar doesn't
	// explicitly require. This is the default.
	StrictWhitespace WhitespacePolicy = iota
	// RelaxedWhitespace permits whitespace around segments and inside
	// bracketed selector lists.
	RelaxedWhitespace
)

type parseConfig struct {
	whitespace WhitespacePolicy
}

func defaultParseConfig() parseConfig {
	return parseConfig{whitespace: StrictWhitespace}
}

type queryParser struct {
	src string
	pos int
	cfg parseConfig
}

// ParseQuery parses a JSONPath query string into an AST, per spec.md §4.B.
// Accepts a bare "$" or the empty string as the root query.
func ParseQuery(query string, opts ...CompileOption) (*Query, error) {
	cfg := defaultCompileConfig()
	for _, o := range opts {
		o(&cfg)
	}
	p := &queryParser{src: query, cfg: parseConfig{whitespace: cfg.whitespace}}
	return p.parse()
}

func (p *queryParser) skipWhitespace() {
	if p.cfg.whitespace != RelaxedWhitespace {
		return
	}
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *queryParser) eof() bool { return p.pos >= len(p.src) }

func (p *queryParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *queryParser) parse() (*Query, error) {
	p.skipWhitespace()
	if p.eof() {
		return &Query{}, nil
	}
	if p.peek() == '$' {
		p.pos++
	}
	var segments []Segment
	for {
		p.skipWhitespace()
		if p.eof() {
			break
		}
		seg, err := p.parseSegment()
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return &Query{segments: segments}, nil
}

func (p *queryParser) parseSegment() (Segment, error) {
	start := p.pos
	if p.peek() == '[' {
		sels, err := p.parseBracketedSelectors()
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: Child, Selectors: sels}, nil
	}
	if p.peek() != '.' {
		return Segment{}, parseErrAt(p.src, p.pos, 1, "expected '.', '..', or '[' to start a segment")
	}
	p.pos++
	descendant := false
	if !p.eof() && p.peek() == '.' {
		descendant = true
		p.pos++
	}
	kind := Child
	if descendant {
		kind = Descendant
	}

	if p.eof() {
		return Segment{}, parseErrAt(p.src, start, p.pos-start, "segment has no selector")
	}

	switch p.peek() {
	case '*':
		p.pos++
		return Segment{Kind: kind, Selectors: []Selector{WildcardSelector()}}, nil
	case '[':
		sels, err := p.parseBracketedSelectors()
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: kind, Selectors: sels}, nil
	default:
		name, err := p.parseShorthandName()
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: kind, Selectors: []Selector{NameSelector(name)}}, nil
	}
}

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isNameCont(b byte) bool {
	return isNameStart(b) || isDigit(b)
}

// parseShorthandName parses a bare identifier after '.' or '..', e.g. `.foo`.
func (p *queryParser) parseShorthandName() (*JSONString, error) {
	start := p.pos
	if p.eof() || !isNameStart(p.peek()) {
		return nil, parseErrAt(p.src, p.pos, 1, "expected a member name, '*', or '[' after '.'")
	}
	p.pos++
	for !p.eof() && isNameCont(p.peek()) {
		p.pos++
	}
	return NewJSONString(p.src[start:p.pos]), nil
}

// parseBracketedSelectors parses `[` selector (',' selector)* `]`.
func (p *queryParser) parseBracketedSelectors() ([]Selector, error) {
	open := p.pos
	p.pos++ // consume '['
	var sels []Selector
	for {
		p.skipWhitespace()
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		p.skipWhitespace()
		if p.eof() {
			return nil, parseErrAt(p.src, open, p.pos-open, "unterminated '['")
		}
		if p.peek() == ',' {
			p.pos++
			continue
		}
		if p.peek() == ']' {
			p.pos++
			return sels, nil
		}
		return nil, parseErrAt(p.src, p.pos, 1, "expected ',' or ']'")
	}
}

func (p *queryParser) parseSelector() (Selector, error) {
	if p.eof() {
		return Selector{}, parseErrAt(p.src, p.pos, 1, "expected a selector")
	}
	switch c := p.peek(); {
	case c == '*':
		p.pos++
		return WildcardSelector(), nil
	case c == '"' || c == '\'':
		return p.parseQuotedSelector(c)
	case c == '?':
		return Selector{}, errNotSupported("filter selectors")
	case isDigit(c):
		return p.parseIndexOrSlice()
	case c == ':':
		return p.parseIndexOrSlice()
	case c == '-':
		return Selector{}, errNotSupported("negative indices")
	default:
		return Selector{}, parseErrAt(p.src, p.pos, 1, "unrecognized selector")
	}
}

func (p *queryParser) parseQuotedSelector(quote byte) (Selector, error) {
	open := p.pos
	p.pos++ // consume opening quote
	style := doubleQuoted
	if quote == '\'' {
		style = singleQuoted
	}
	name, consumed, err := parseJSONStringLiteral(p.src[p.pos:], style)
	if err != nil {
		return Selector{}, err
	}
	p.pos += consumed
	if p.eof() || p.peek() != quote {
		return Selector{}, parseErrAt(p.src, open, p.pos-open, "unterminated quoted name selector")
	}
	p.pos++ // consume closing quote
	return NameSelector(name), nil
}

// parseIndexOrSlice parses an index (`3`) or slice (`1:4:2`, `::2`, `1:`).
func (p *queryParser) parseIndexOrSlice() (Selector, error) {
	start := p.pos
	var startVal uint64
	haveStart := false
	if isDigit(p.peek()) {
		v, n, err := parseUnsignedInteger(p.src[p.pos:])
		if err != nil {
			return Selector{}, err
		}
		p.pos += n
		startVal = v
		haveStart = true
	} else if p.peek() == '-' {
		return Selector{}, errNotSupported("negative indices")
	}

	if p.eof() || p.peek() != ':' {
		if !haveStart {
			return Selector{}, parseErrAt(p.src, start, 1, "expected an index or slice")
		}
		return IndexSelector(startVal), nil
	}
	p.pos++ // consume ':'

	var endVal uint64
	haveEnd := false
	if !p.eof() && isDigit(p.peek()) {
		v, n, err := parseUnsignedInteger(p.src[p.pos:])
		if err != nil {
			return Selector{}, err
		}
		p.pos += n
		endVal = v
		haveEnd = true
	} else if !p.eof() && p.peek() == '-' {
		return Selector{}, errNotSupported("negative-bound slices")
	}

	step := uint64(1)
	if !p.eof() && p.peek() == ':' {
		p.pos++
		if !p.eof() && p.peek() == '-' {
			return Selector{}, errNotSupported("backward slice steps")
		}
		if !p.eof() && isDigit(p.peek()) {
			v, n, err := parseUnsignedInteger(p.src[p.pos:])
			if err != nil {
				return Selector{}, err
			}
			p.pos += n
			step = v
		}
	}
	if !haveStart {
		startVal = 0
	}
	return SliceSelector(startVal, endVal, haveEnd, step), nil
}

// StringifyQuery renders a Query back to its canonical textual form, used by
// the parse/stringify round-trip property in spec.md §8.
func StringifyQuery(q *Query) string {
	var b strings.Builder
	b.WriteByte('$')
	for _, seg := range q.Segments() {
		writeSegment(&b, seg)
	}
	return b.String()
}

func writeSegment(b *strings.Builder, seg Segment) {
	dot := "."
	if seg.Kind == Descendant {
		dot = ".."
	}
	if len(seg.Selectors) == 1 {
		sel := seg.Selectors[0]
		switch sel.Kind {
		case SelectorWildcard:
			b.WriteString(dot)
			b.WriteByte('*')
			return
		case SelectorName:
			if isPlainIdentifier(sel.Name.Unquoted()) {
				b.WriteString(dot)
				b.WriteString(sel.Name.Unquoted())
				return
			}
		}
	}
	if seg.Kind == Descendant {
		b.WriteString(dot)
	}
	b.WriteByte('[')
	for i, sel := range seg.Selectors {
		if i > 0 {
			b.WriteByte(',')
		}
		writeSelector(b, sel)
	}
	b.WriteByte(']')
}

func writeSelector(b *strings.Builder, sel Selector) {
	switch sel.Kind {
	case SelectorWildcard:
		b.WriteByte('*')
	case SelectorName:
		b.WriteString(sel.Name.Quoted())
	case SelectorIndex:
		fmtUint(b, sel.Index)
	case SelectorSlice:
		fmtUint(b, sel.Slice.Start)
		b.WriteByte(':')
		if sel.Slice.HasEnd {
			fmtUint(b, sel.Slice.End)
		}
		b.WriteByte(':')
		fmtUint(b, sel.Slice.Step)
	}
}

func fmtUint(b *strings.Builder, v uint64) {
	if v == 0 {
		b.WriteByte('0')
		return
	}
	var digits [20]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	b.Write(digits[i:])
}

func isPlainIdentifier(s string) bool {
	if s == "" || !isNameStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameCont(s[i]) {
			return false
		}
	}
	return true
}
