package rsonpath

import (
	"errors"
	"fmt"
)

// Sentinel compiler error kinds, per spec.md §6/§7's error taxonomy.
var (
	// ErrQueryTooComplex is raised when the NFA or DFA would exceed the
	// 8-bit state identifier budget (256 states).
	ErrQueryTooComplex = errors.New("rsonpath: query too complex")
	// ErrNotSupported is raised for constructs explicitly excluded by the
	// Non-goals: negative indices, backward slice steps, filter selectors,
	// or a slice step of 0.
	ErrNotSupported = errors.New("rsonpath: construct not supported")
)

// CompilerError wraps ErrQueryTooComplex or ErrNotSupported with detail,
// per spec.md's "taxonomy, not type names" error surface.
type CompilerError struct {
	kind   error
	detail string
}

func (e *CompilerError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.detail)
}

func (e *CompilerError) Unwrap() error { return e.kind }

func errQueryTooComplex(detail string) error {
	return &CompilerError{kind: ErrQueryTooComplex, detail: detail}
}

func errNotSupported(feature string) error {
	return &CompilerError{kind: ErrNotSupported, detail: feature}
}
