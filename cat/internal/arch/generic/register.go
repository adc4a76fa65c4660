package generic

import (
	"github.com/cwbudde/algo-tensor/cat/internal/arch/registry"
	"github.com/cwbudde/algo-tensor/dispatch"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the generic (pure Go) concatenation kernel.
//
// The generic kernel is the mandatory baseline: it is selected when no SIMD
// variant is available or when ForceGeneric is set.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Serial.Register(dispatch.Variant[registry.SerialFn]{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Kernel:    CatSerial,
	})
}
