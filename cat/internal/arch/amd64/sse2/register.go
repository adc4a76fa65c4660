//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-tensor/cat/internal/arch/registry"
	"github.com/cwbudde/algo-tensor/dispatch"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the SSE2 concatenation kernel.
//
// SSE2 is part of the x86-64 baseline, so this variant is available on every
// amd64 CPU; it loses only to AVX2 when that is present.
//
// Priority: 10
func init() {
	registry.Serial.Register(dispatch.Variant[registry.SerialFn]{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Kernel:    CatSerial,
	})
}
