package rsonpath

import "github.com/klauspost/cpuid/v2"

// Simd names a classification backend the pipeline can dispatch to, mirroring
// the teacher's own CPU-feature dispatch (simdjson_amd64.go's SupportedCPU
// gating the AVX2/AVX512 stage1 paths).
type Simd uint8

const (
	// SimdScalar is the portable word-at-a-time backend implemented in
	// quotes.go/structural.go. It is always available.
	SimdScalar Simd = iota
)

// DetectSimd reports which Simd backend this process should use. Only
// SimdScalar is registered today: the teacher's own AVX2/AVX512/CLMUL
// classification inner loops are `.s` assembly not present in the retrieval
// pack (see DESIGN.md's "Dropped / not directly wired" for why those were
// not fabricated), so there is nothing to select between. DetectSimd checks
// the cpuid AVX2 and CLMUL feature bits the way the teacher's
// simdjson_amd64.go does, but no code in this package calls it: every Run
// uses the scalar classifiers directly.
func DetectSimd() Simd {
	if cpuid.CPU.Supports(cpuid.AVX2, cpuid.CLMUL) {
		// No AVX2 classifier is implemented in this module; fall through to
		// the scalar backend. The check is kept so future SIMD backends have
		// a real feature gate to register against, matching
		// simdjson_amd64.go's SupportedCPU.
		return SimdScalar
	}
	return SimdScalar
}
