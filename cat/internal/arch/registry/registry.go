// Package registry holds the dispatch stub for the concatenation kernels.
//
// It exists as its own package so that architecture-specific kernel packages
// can register variants without importing the cat package itself.
package registry

import (
	"github.com/cwbudde/algo-tensor/dispatch"
	"github.com/cwbudde/algo-tensor/tensor"
)

// SerialFn writes the concatenation of srcs along axis into dst without
// internal parallelism. The axis is already normalized and the shapes already
// validated by the caller; kernels may assume both.
type SerialFn func(dst *tensor.Dense, srcs []*tensor.Dense, axis int)

// Serial is the dispatch stub for the serial concatenation kernel.
// A parallel concatenation, if added, gets its own stub; the two must never
// share a cache slot.
var Serial = dispatch.NewStub[SerialFn]("cat.Serial")
