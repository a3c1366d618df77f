package rsonpath

// maxSafeInteger is 2^53-1, the I-JSON safe integer bound that spec.md's
// data model restricts index/slice operands to.
const maxSafeInteger uint64 = 1<<53 - 1

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseUnsignedInteger parses a run of ASCII digits starting at s[0],
// rejecting a leading '+', leading zeros (other than the literal "0"), and
// missing digits, and rejecting values above maxSafeInteger. Returns the
// value and the number of bytes consumed.
func parseUnsignedInteger(s string) (uint64, int, error) {
	if len(s) == 0 || !isDigit(s[0]) {
		return 0, 0, parseErrAt(s, 0, 1, "expected a digit")
	}
	if s[0] == '0' && len(s) > 1 && isDigit(s[1]) {
		return 0, 0, parseErrSuggest(s, 0, 2, "leading zeros are not allowed in integers", "remove the leading zero")
	}
	i := 0
	var v uint64
	for i < len(s) && isDigit(s[i]) {
		v = v*10 + uint64(s[i]-'0')
		if v > maxSafeInteger {
			return 0, 0, parseErrAt(s, 0, i+1, "integer exceeds the maximum safe integer 2^53-1")
		}
		i++
	}
	return v, i, nil
}
