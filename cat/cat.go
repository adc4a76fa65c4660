package cat

import (
	"fmt"

	"github.com/cwbudde/algo-tensor/cat/internal/arch/registry"
	"github.com/cwbudde/algo-tensor/tensor"
)

// Serial writes the concatenation of srcs along axis into dst,
// single-threaded. Negative axes count from the last dimension.
//
// All sources and the destination must agree on every dimension except axis,
// and dst's extent along axis must equal the sum of the sources' extents.
// Panics on violation. Writes only into dst; retains no references to the
// inputs.
func Serial(dst *tensor.Dense, srcs []*tensor.Dense, axis int) {
	axis = tensor.NormalizeAxis(axis, dst.Rank())
	checkShapes(dst, srcs, axis)

	registry.Serial.Kernel()(dst, srcs, axis)
}

func checkShapes(dst *tensor.Dense, srcs []*tensor.Dense, axis int) {
	axisSum := 0
	for n, src := range srcs {
		if src.Rank() != dst.Rank() {
			panic(fmt.Sprintf("cat: source %d has rank %d, destination has rank %d", n, src.Rank(), dst.Rank()))
		}
		for d := 0; d < dst.Rank(); d++ {
			if d == axis {
				continue
			}
			if src.Size(d) != dst.Size(d) {
				panic(fmt.Sprintf("cat: source %d dimension %d extent %d does not match destination extent %d",
					n, d, src.Size(d), dst.Size(d)))
			}
		}
		axisSum += src.Size(axis)
	}

	if axisSum != dst.Size(axis) {
		panic(fmt.Sprintf("cat: destination extent %d along axis %d does not match source total %d",
			dst.Size(axis), axis, axisSum))
	}
}
