package dispatch

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Variant is one registered kernel implementation for a logical operation.
// F is the operation's kernel function signature.
type Variant[F any] struct {
	// Name is a human-readable identifier for this implementation
	// (e.g., "generic", "sse2", "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required to run Kernel.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple supported variants
	// exist. Higher priority variants are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	Priority int

	// Kernel is the implementation itself.
	Kernel F
}

// Registry stores the variants of one logical operation.
//
// Variants register themselves via init() functions in architecture-specific
// packages. At runtime, Lookup() selects the highest-priority variant
// supported by the current CPU.
type Registry[F any] struct {
	mu      sync.RWMutex
	entries []Variant[F]
	sorted  bool // true if entries are sorted by priority (descending)
}

// Register adds a variant to the registry.
//
// It is called from init() functions in architecture-specific packages and
// must not be called after the operation's first invocation. Registering two
// variants at the same SIMD level is a build misconfiguration and panics.
func (r *Registry[F]) Register(v Variant[F]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].SIMDLevel == v.SIMDLevel {
			panic(fmt.Sprintf("dispatch: duplicate registration for SIMD level %v (%q vs %q)",
				v.SIMDLevel, r.entries[i].Name, v.Name))
		}
	}

	r.entries = append(r.entries, v)
	r.sorted = false
}

// Lookup returns the highest-priority variant supported by features.
//
// Returns nil only when no supported variant is registered, which cannot
// happen once a generic fallback is present.
func (r *Registry[F]) Lookup(features cpu.Features) *Variant[F] {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		v := &r.entries[i]
		if cpu.Supports(features, v.SIMDLevel) {
			return v
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *Registry[F]) sortByPriority() {
	// Simple insertion sort (a registry holds ~2-4 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// Variants returns a copy of all registered variants, sorted by priority.
// Intended for tests and debugging.
func (r *Registry[F]) Variants() []Variant[F] {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Variant[F], len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered variants. Intended for tests.
func (r *Registry[F]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
