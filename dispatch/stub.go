package dispatch

import (
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Stub is the dispatch point for one logical operation.
//
// It owns the operation's variant registry and a single-assignment cache of
// the resolved variant. The first call to Kernel() detects the CPU, looks up
// the best supported variant, and installs it; all subsequent calls return
// the cached kernel with one atomic load.
//
// Concurrent first calls may race: each racing goroutine computes the same
// variant (detection and lookup are deterministic), and the slot is installed
// with a compare-and-swap, so whichever goroutine wins, every caller observes
// the same kernel. No lock is taken on any path.
type Stub[F any] struct {
	name     string
	registry Registry[F]
	resolved atomic.Pointer[Variant[F]]

	// detect reports the CPU features used for resolution. Overridable for
	// tests via SetDetectFeatures; defaults to the cached hardware probe,
	// capped by the ALGOTENSOR_SIMD environment variable.
	detect func() cpu.Features
}

// NewStub returns an unresolved stub for the named operation.
// The name appears in panic messages and is reported by ResolvedName.
func NewStub[F any](name string) *Stub[F] {
	return &Stub[F]{name: name, detect: detectFeatures}
}

// Name returns the operation name the stub was created with.
func (s *Stub[F]) Name() string {
	return s.name
}

// Register adds a kernel variant to the stub's registry.
//
// Must be called during package initialization, before the operation's first
// invocation; registrations after resolution have no effect on dispatch.
// Panics on duplicate SIMD levels.
func (s *Stub[F]) Register(v Variant[F]) {
	s.registry.Register(v)
}

// Kernel returns the kernel to invoke for this operation, resolving and
// caching the best supported variant on first use.
//
// Panics if no supported variant is registered (a missing generic fallback is
// a build misconfiguration, not a recoverable condition).
func (s *Stub[F]) Kernel() F {
	if v := s.resolved.Load(); v != nil {
		return v.Kernel
	}
	return s.resolve()
}

func (s *Stub[F]) resolve() F {
	v := s.registry.Lookup(s.detect())
	if v == nil {
		panic("dispatch: no kernel registered for " + s.name + " (missing generic fallback?)")
	}

	// Install-once: if another goroutine got here first, its value is
	// identical and we simply use it.
	s.resolved.CompareAndSwap(nil, v)

	return s.resolved.Load().Kernel
}

// ResolvedName reports the name of the cached variant, or false while the
// stub is unresolved. Intended for tests and debugging.
func (s *Stub[F]) ResolvedName() (string, bool) {
	v := s.resolved.Load()
	if v == nil {
		return "", false
	}
	return v.Name, true
}

// Variants returns a copy of the registered variants, sorted by priority.
// Intended for tests and debugging.
func (s *Stub[F]) Variants() []Variant[F] {
	return s.registry.Variants()
}

// Reset clears the cached resolution so the next call re-resolves.
// Intended for tests.
func (s *Stub[F]) Reset() {
	s.resolved.Store(nil)
}

// SetDetectFeatures overrides CPU detection for this stub. Intended for
// tests; must be called before the goroutines that invoke Kernel are started.
// Passing nil restores the default detector.
func (s *Stub[F]) SetDetectFeatures(fn func() cpu.Features) {
	if fn == nil {
		fn = detectFeatures
	}
	s.detect = fn
}
