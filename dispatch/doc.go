// Package dispatch implements runtime kernel dispatch over CPU SIMD
// capabilities.
//
// Each logical operation owns one [Stub]. Architecture-specific packages
// register their kernel variants with the stub via init() functions, tagged
// with the SIMD level they require. On first use the stub detects the CPU
// once, picks the highest-priority variant the CPU supports, and caches that
// choice for the remainder of the process; every later call pays only one
// atomic load plus the kernel call itself.
//
// All registrations must complete during package initialization, strictly
// before the first call. A generic (SIMDNone) variant is mandatory: it is the
// fallback when detection reports nothing usable, and its absence is a build
// misconfiguration that surfaces as a panic on first use rather than a silent
// wrong result.
package dispatch
