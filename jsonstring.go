package rsonpath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// JSONString is a decoded query name selector, stored in its canonical
// (shortest valid) double-quoted on-wire encoding. Two JSONStrings are equal
// iff their decoded Unicode sequences are equal, per spec.md's data model.
type JSONString struct {
	quoted string // includes the surrounding double quotes
}

// NewJSONString wraps an already-unescaped Go string as a JSONString,
// encoding it canonically.
func NewJSONString(s string) *JSONString {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return &JSONString{quoted: b.String()}
}

// Unquoted returns the canonical encoding without surrounding quotes.
func (s *JSONString) Unquoted() string {
	if s == nil {
		return ""
	}
	return s.quoted[1 : len(s.quoted)-1]
}

// Quoted returns the canonical encoding with surrounding double quotes.
func (s *JSONString) Quoted() string {
	if s == nil {
		return `""`
	}
	return s.quoted
}

// BytesWithQuotes returns the canonical quoted encoding as bytes, matching
// the label bytes the engine compares against document text.
func (s *JSONString) BytesWithQuotes() []byte {
	return []byte(s.Quoted())
}

// Len reports the byte length of the unquoted canonical encoding.
func (s *JSONString) Len() int {
	return len(s.Unquoted())
}

func (s *JSONString) String() string {
	return fmt.Sprintf("JSONString(%s)", s.quoted)
}

// Equal reports semantic equality: equal decoded Unicode sequences.
func (s *JSONString) Equal(other *JSONString) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Unquoted() == other.Unquoted()
}

// decodedRunes walks the canonical quoted encoding and recovers the
// original decoded Unicode sequence, reversing NewJSONString's escaping.
// Used by stringpattern.go to rebuild the per-character alternative-escape
// table a StringPattern needs, since only the canonical encoding (not the
// decoded runes) is retained on JSONString itself.
func (s *JSONString) decodedRunes() []rune {
	raw := s.Unquoted()
	var out []rune
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(raw[i:])
			out = append(out, r)
			i += size
			continue
		}
		switch raw[i+1] {
		case 'b':
			out = append(out, '\b')
			i += 2
		case 't':
			out = append(out, '\t')
			i += 2
		case 'n':
			out = append(out, '\n')
			i += 2
		case 'f':
			out = append(out, '\f')
			i += 2
		case 'r':
			out = append(out, '\r')
			i += 2
		case '\\':
			out = append(out, '\\')
			i += 2
		case '"':
			out = append(out, '"')
			i += 2
		case 'u':
			hi, _ := strconv.ParseUint(raw[i+2:i+6], 16, 32)
			r1 := rune(hi)
			if utf16.IsSurrogate(r1) && i+12 <= len(raw) && raw[i+6] == '\\' && raw[i+7] == 'u' {
				lo, _ := strconv.ParseUint(raw[i+8:i+12], 16, 32)
				out = append(out, utf16.DecodeRune(r1, rune(lo)))
				i += 12
			} else {
				out = append(out, r1)
				i += 6
			}
		}
	}
	return out
}

type quoteStyle uint8

const (
	doubleQuoted quoteStyle = iota
	singleQuoted
	unquotedLiteral
)

// parseJSONStringLiteral parses the body of a name selector starting right
// after the opening quote (or, for unquotedLiteral, at the first content
// byte), per the JSONPath escape grammar (rsonpath-syntax/src/str.rs):
// \b \t \n \f \r \\ \/ \" \' (the last two context-sensitive) and \uXXXX
// with UTF-16 surrogate pair support. Returns the decoded name as a
// *JSONString, the number of input bytes consumed (not including the
// closing quote, which the caller is expected to have located already for
// quoted literals, or the whole remainder for unquotedLiteral), and an error.
func parseJSONStringLiteral(src string, style quoteStyle) (*JSONString, int, error) {
	var out strings.Builder
	i := 0
	n := len(src)
	stopByte := byte(0)
	switch style {
	case doubleQuoted:
		stopByte = '"'
	case singleQuoted:
		stopByte = '\''
	}

	for i < n {
		c := src[i]
		if style != unquotedLiteral && c == stopByte {
			return NewJSONString(out.String()), i, nil
		}
		if c == '\\' {
			r, consumed, err := readEscapeSequence(src[i:], style)
			if err != nil {
				return nil, i, err
			}
			out.WriteRune(r)
			i += consumed
			continue
		}
		if c < 0x20 {
			return nil, i, &ParseError{
				Offset:  i,
				Message: "unescaped control character in string literal",
			}
		}
		r, size := utf8.DecodeRuneInString(src[i:])
		out.WriteRune(r)
		i += size
	}
	if style == unquotedLiteral {
		return NewJSONString(out.String()), i, nil
	}
	return nil, i, &ParseError{Offset: i, Message: "unterminated string literal"}
}

// readEscapeSequence decodes one escape sequence at the start of s (s[0] ==
// '\\'), returning the decoded rune and number of bytes consumed.
func readEscapeSequence(s string, style quoteStyle) (rune, int, error) {
	if len(s) < 2 {
		return 0, 0, &ParseError{Message: "truncated escape sequence"}
	}
	switch s[1] {
	case 'b':
		return '\b', 2, nil
	case 't':
		return '\t', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'r':
		return '\r', 2, nil
	case '\\':
		return '\\', 2, nil
	case '/':
		return '/', 2, nil
	case '"':
		if style == singleQuoted {
			return 0, 0, &ParseError{Message: `\" is only legal inside double-quoted literals`}
		}
		return '"', 2, nil
	case '\'':
		if style != singleQuoted {
			return 0, 0, &ParseError{Message: `\' is only legal inside single-quoted literals`}
		}
		return '\'', 2, nil
	case 'u':
		return readUnicodeEscape(s)
	default:
		return 0, 0, &ParseError{Message: fmt.Sprintf("invalid escape sequence \\%c", s[1])}
	}
}

// readUnicodeEscape decodes \uXXXX, combining a following \uYYYY into a
// surrogate pair when the first code unit is a high surrogate.
func readUnicodeEscape(s string) (rune, int, error) {
	if len(s) < 6 {
		return 0, 0, &ParseError{Message: "truncated \\u escape"}
	}
	hi, err := strconv.ParseUint(s[2:6], 16, 32)
	if err != nil {
		return 0, 0, &ParseError{Message: "invalid hex digits in \\u escape"}
	}
	r1 := rune(hi)
	if utf16.IsSurrogate(r1) {
		if len(s) >= 12 && s[6] == '\\' && s[7] == 'u' {
			lo, err := strconv.ParseUint(s[8:12], 16, 32)
			if err == nil {
				r2 := rune(lo)
				combined := utf16.DecodeRune(r1, r2)
				if combined != utf8.RuneError {
					return combined, 12, nil
				}
			}
		}
		return 0, 0, &ParseError{Message: "unpaired UTF-16 surrogate in \\u escape"}
	}
	return r1, 6, nil
}
