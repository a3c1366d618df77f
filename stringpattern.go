package rsonpath

import "unicode/utf16"

// alternativeKind distinguishes the shapes AlternativeRepresentation can
// take in string_pattern.rs, ported verbatim as a Go enum.
type alternativeKind uint8

const (
	altNone alternativeKind = iota
	// altSlashUSingle: the canonical byte is part of a short escape
	// (\b \t \n \f \r \\ \") or a BMP character; accepts \uXXXX instead.
	altSlashUSingle
	// altSlashUPair: a non-BMP character's canonical UTF-8 bytes; accepts a
	// \uXXXX\uYYYY surrogate pair instead.
	altSlashUPair
	// altUSingle: the second byte of a short escape (the code letter),
	// sharing the already-matched leading backslash; accepts uXXXX.
	altUSingle
	// altSlashByteOrUSingle: '/' or '\'', whose canonical byte is itself but
	// which also accepts \/ (or \') or a \uXXXX escape.
	altSlashByteOrUSingle
)

// alternative is one position's escape fallback, ported from
// string_pattern.rs's AlternativeRepresentation.
type alternative struct {
	kind        alternativeKind
	hex1        [4]byte // lowercase hex digits, compared case-insensitively
	hex2        [4]byte
	patOffset   uint8
	specialByte byte
}

// StringPattern is a precompiled representation of a JSON member name
// allowing alternative encodings at each byte position, per spec.md §3 and
// §4.F, ported from string_pattern.rs's StringPattern/StringPatternBuilder.
type StringPattern struct {
	bytes        []byte
	alternatives []alternative
}

// NewStringPattern compiles name into a StringPattern.
func NewStringPattern(name *JSONString) *StringPattern {
	b := &patternBuilder{}
	b.push('"', alternative{})
	for _, r := range name.decodedRunes() {
		switch r {
		case '\b':
			b.shortEscape('b', r)
		case '\f':
			b.shortEscape('f', r)
		case '\n':
			b.shortEscape('n', r)
		case '\r':
			b.shortEscape('r', r)
		case '\t':
			b.shortEscape('t', r)
		case '"':
			b.shortEscape('"', r)
		case '\\':
			b.shortEscape('\\', r)
		case '/', '\'':
			b.specialEscape(r)
		default:
			if r < 0x20 {
				b.longEscape(r)
			} else {
				b.regularEscape(r)
			}
		}
	}
	b.push('"', alternative{})
	return &StringPattern{bytes: b.bytes, alternatives: b.alternatives}
}

// Quoted returns the canonical quoted byte sequence this pattern matches.
func (p *StringPattern) Quoted() []byte { return p.bytes }

type patternBuilder struct {
	bytes        []byte
	alternatives []alternative
}

func (b *patternBuilder) push(c byte, alt alternative) {
	b.bytes = append(b.bytes, c)
	b.alternatives = append(b.alternatives, alt)
}

func hexNibbles(v uint16) [4]byte {
	var out [4]byte
	nibble := func(n byte) byte {
		if n < 10 {
			return '0' + n
		}
		return 'a' + n - 10
	}
	out[0] = nibble(byte(v >> 12 & 0xF))
	out[1] = nibble(byte(v >> 8 & 0xF))
	out[2] = nibble(byte(v >> 4 & 0xF))
	out[3] = nibble(byte(v & 0xF))
	return out
}

// shortEscape handles \b \t \n \f \r \\ \", which are two canonical bytes:
// a backslash (no alternative) and a code letter (alternative: \uXXXX).
func (b *patternBuilder) shortEscape(codeLetter byte, r rune) {
	b.bytes = append(b.bytes, '\\', codeLetter)
	var buf [2]uint16
	n := utf16.Encode([]rune{r})
	copy(buf[:], n)
	b.alternatives = append(b.alternatives, alternative{kind: altNone})
	b.alternatives = append(b.alternatives, alternative{kind: altUSingle, hex1: hexNibbles(buf[0])})
}

// longEscape handles control characters with no short form: only \u00XX is
// valid, with no alternative encoding.
func (b *patternBuilder) longEscape(r rune) {
	hex := hexNibbles(uint16(r))
	b.bytes = append(b.bytes, '\\', 'u', '0', '0', hex[2], hex[3])
	for i := 0; i < 6; i++ {
		b.alternatives = append(b.alternatives, alternative{kind: altNone})
	}
}

// specialEscape handles '/' and '\'': canonical byte is the literal
// character, alternative accepts \/ (or \') or a \uXXXX escape.
func (b *patternBuilder) specialEscape(r rune) {
	b.bytes = append(b.bytes, byte(r))
	n := utf16.Encode([]rune{r})
	b.alternatives = append(b.alternatives, alternative{
		kind:        altSlashByteOrUSingle,
		specialByte: byte(r),
		hex1:        hexNibbles(n[0]),
	})
}

// regularEscape handles any other character: canonical bytes are its UTF-8
// encoding, alternative is a \uXXXX escape (or a surrogate pair for
// non-BMP characters), anchored at the position of the last UTF-8 byte.
func (b *patternBuilder) regularEscape(r rune) {
	utf8Bytes := []byte(string(r))
	units := utf16.Encode([]rune{r})
	b.bytes = append(b.bytes, utf8Bytes...)

	var alt alternative
	if len(units) == 1 {
		alt = alternative{kind: altSlashUSingle, hex1: hexNibbles(units[0]), patOffset: uint8(len(utf8Bytes))}
	} else {
		alt = alternative{
			kind:      altSlashUPair,
			hex1:      hexNibbles(units[0]),
			hex2:      hexNibbles(units[1]),
			patOffset: uint8(len(utf8Bytes)),
		}
	}
	// Every byte of a multi-byte UTF-8 sequence carries the same
	// alternative: a mismatch at any position within the sequence means the
	// whole character was instead written as a \uXXXX (or surrogate pair)
	// escape, so all positions must be able to trigger that same check and
	// skip the same patOffset forward, per string_pattern.rs's
	// regular_escape (which, despite appearance, ends up assigning the
	// identical repr to every byte of the sequence).
	for i := 0; i < len(utf8Bytes); i++ {
		b.alternatives = append(b.alternatives, alt)
	}
}

func hexEqualCI(input []byte, hex [4]byte) bool {
	if len(input) < 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if input[i]|0x20 != hex[i] {
			return false
		}
	}
	return true
}

// MatchForward reports whether the start of input is equivalent to the
// pattern, matching left-to-right, per spec.md §4.F. On success it returns
// the number of input bytes consumed.
func (p *StringPattern) MatchForward(input []byte) (consumed int, ok bool) {
	patIdx, inIdx := 0, 0
	for patIdx < len(p.bytes) {
		if len(p.bytes)-patIdx > len(input)-inIdx {
			return 0, false
		}
		if p.bytes[patIdx] == input[inIdx] {
			patIdx++
			inIdx++
			continue
		}
		alt := p.alternatives[patIdx]
		switch alt.kind {
		case altNone:
			return 0, false
		case altSlashUSingle:
			if len(input)-inIdx >= 6 && input[inIdx] == '\\' && input[inIdx+1] == 'u' && hexEqualCI(input[inIdx+2:], alt.hex1) {
				inIdx += 6
				patIdx += int(alt.patOffset)
				continue
			}
			return 0, false
		case altSlashUPair:
			if len(input)-inIdx >= 12 &&
				input[inIdx] == '\\' && input[inIdx+1] == 'u' && hexEqualCI(input[inIdx+2:], alt.hex1) &&
				input[inIdx+6] == '\\' && input[inIdx+7] == 'u' && hexEqualCI(input[inIdx+8:], alt.hex2) {
				inIdx += 12
				patIdx += int(alt.patOffset)
				continue
			}
			return 0, false
		case altUSingle:
			if len(input)-inIdx >= 5 && input[inIdx] == 'u' && hexEqualCI(input[inIdx+1:], alt.hex1) {
				inIdx += 5
				patIdx++
				continue
			}
			return 0, false
		case altSlashByteOrUSingle:
			if len(input)-inIdx >= 2 && input[inIdx] == '\\' && input[inIdx+1] == alt.specialByte {
				inIdx += 2
				patIdx++
				continue
			}
			if len(input)-inIdx >= 6 && input[inIdx] == '\\' && input[inIdx+1] == 'u' && hexEqualCI(input[inIdx+2:], alt.hex1) {
				inIdx += 6
				patIdx++
				continue
			}
			return 0, false
		}
	}
	return inIdx, true
}

// MatchBackward reports whether the end of input is equivalent to the
// pattern, matching right-to-left, per spec.md §4.F. On success it returns
// the offset within input at which the match begins.
func (p *StringPattern) MatchBackward(input []byte) (start int, ok bool) {
	patLen, inLen := len(p.bytes), len(input)
	for patLen > 0 {
		if patLen > inLen {
			return 0, false
		}
		if p.bytes[patLen-1] == input[inLen-1] {
			patLen--
			inLen--
			continue
		}
		// A backslash immediately preceding a SlashByteOrUSingle position
		// that already matched bytewise on the previous step must still be
		// accepted going backward, per spec.md §4.F: "\'" and "\/" expand
		// backward by one extra byte.
		if patLen < len(p.alternatives) && input[inLen-1] == '\\' {
			if p.alternatives[patLen].kind == altSlashByteOrUSingle {
				inLen--
				continue
			}
		}
		alt := p.alternatives[patLen-1]
		switch alt.kind {
		case altNone:
			return 0, false
		case altSlashUSingle:
			if inLen >= 6 && input[inLen-6] == '\\' && input[inLen-5] == 'u' && hexEqualCI(input[inLen-4:], alt.hex1) {
				inLen -= 6
				patLen -= int(alt.patOffset)
				continue
			}
			return 0, false
		case altSlashUPair:
			if inLen >= 12 &&
				input[inLen-12] == '\\' && input[inLen-11] == 'u' && hexEqualCI(input[inLen-10:], alt.hex1) &&
				input[inLen-6] == '\\' && input[inLen-5] == 'u' && hexEqualCI(input[inLen-4:], alt.hex2) {
				inLen -= 12
				patLen -= int(alt.patOffset)
				continue
			}
			return 0, false
		case altUSingle:
			if inLen >= 5 && input[inLen-5] == 'u' && hexEqualCI(input[inLen-4:], alt.hex1) {
				inLen -= 5
				patLen--
				continue
			}
			return 0, false
		case altSlashByteOrUSingle:
			if inLen >= 2 && input[inLen-2] == '\\' && input[inLen-1] == alt.specialByte {
				inLen -= 2
				patLen--
				continue
			}
			if inLen >= 6 && input[inLen-6] == '\\' && input[inLen-5] == 'u' && hexEqualCI(input[inLen-4:], alt.hex1) {
				inLen -= 6
				patLen--
				continue
			}
			return 0, false
		}
	}
	return inLen, true
}
