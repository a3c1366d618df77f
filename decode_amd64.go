//go:build amd64 && !appengine && !noasm
// +build amd64,!appengine,!noasm

package rsonpath

import "github.com/bytedance/sonic"

// defaultDecode unmarshals one matched value's raw bytes into v, using
// sonic's amd64 assembly-accelerated decoder. Mirrors the teacher's own
// amd64/"other" build-tag split (stage1_find_marks_amd64.go vs the portable
// fallback), applied here to decode.go's sole non-core concern: turning an
// already-located match span into a Go value for FindAll/compat.go callers.
func defaultDecode(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}
