//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-tensor/cat/internal/arch/registry"
	"github.com/cwbudde/algo-tensor/dispatch"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the NEON concatenation kernel.
//
// NEON (Advanced SIMD) is mandatory on ARMv8, so this variant is available
// on effectively every arm64 CPU.
//
// Priority: 15
func init() {
	registry.Serial.Register(dispatch.Variant[registry.SerialFn]{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Kernel:    CatSerial,
	})
}
