package dispatch

import (
	"os"
	"strings"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// SIMDEnvVar caps the SIMD level dispatch may select, e.g.
// ALGOTENSOR_SIMD=sse2 keeps AVX2 kernels from being chosen on a CPU that
// supports them. The cap can only lower the selected level; it never enables
// instructions the CPU lacks. Unrecognized values are ignored.
const SIMDEnvVar = "ALGOTENSOR_SIMD"

var (
	overrideOnce  sync.Once
	overrideLevel cpu.SIMDLevel
	hasOverride   bool
)

// detectFeatures is the default detector for stubs: the cached hardware
// probe, masked down to the level named by ALGOTENSOR_SIMD when set.
func detectFeatures() cpu.Features {
	overrideOnce.Do(func() {
		if v := os.Getenv(SIMDEnvVar); v != "" {
			overrideLevel, hasOverride = ParseSIMDLevel(v)
		}
	})

	features := cpu.DetectFeatures()
	if !hasOverride {
		return features
	}
	return capFeatures(features, overrideLevel)
}

// ParseSIMDLevel parses a SIMD level name ("generic", "sse2", "avx2", "neon").
func ParseSIMDLevel(s string) (cpu.SIMDLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return cpu.SIMDNone, true
	case "sse2":
		return cpu.SIMDSSE2, true
	case "avx2":
		return cpu.SIMDAVX2, true
	case "neon":
		return cpu.SIMDNEON, true
	default:
		return cpu.SIMDNone, false
	}
}

// capFeatures clears every feature flag above level, so lookup cannot select
// a variant beyond it. Flags the CPU does not actually have stay cleared.
func capFeatures(f cpu.Features, level cpu.SIMDLevel) cpu.Features {
	switch level {
	case cpu.SIMDNone:
		f.ForceGeneric = true
	case cpu.SIMDSSE2:
		f.HasAVX2 = false
		f.HasNEON = false
	case cpu.SIMDNEON:
		f.HasSSE2 = false
		f.HasAVX2 = false
	case cpu.SIMDAVX2:
		f.HasNEON = false
	}
	return f
}
