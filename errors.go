package rsonpath

import "errors"

// IsQueryTooComplex reports whether err (or any error it wraps) is
// ErrQueryTooComplex, for callers that want to react to that specific
// compiler failure (e.g. retry with WithMaxDFAStates) without string
// matching.
func IsQueryTooComplex(err error) bool {
	return errors.Is(err, ErrQueryTooComplex)
}

// IsNotSupported reports whether err (or any error it wraps) is
// ErrNotSupported.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
