//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-tensor/cat/internal/arch/registry"
	"github.com/cwbudde/algo-tensor/dispatch"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the AVX2 concatenation kernel.
//
// Available on Intel Haswell (2013+) and AMD Excavator (2015+).
//
// Priority: 20 (preferred over SSE2 and generic when available)
func init() {
	registry.Serial.Register(dispatch.Variant[registry.SerialFn]{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Kernel:    CatSerial,
	})
}
