package generic

import "github.com/cwbudde/algo-tensor/tensor"

// CatSerial writes the concatenation of srcs along axis into dst.
// This is the pure Go baseline implementation.
//
// The caller guarantees: axis is normalized, every source matches dst on all
// dimensions except axis, and dst's extent along axis equals the sum of the
// sources' extents.
func CatSerial(dst *tensor.Dense, srcs []*tensor.Dense, axis int) {
	outer := 1
	for d := 0; d < axis; d++ {
		outer *= dst.Size(d)
	}
	inner := 1
	for d := axis + 1; d < dst.Rank(); d++ {
		inner *= dst.Size(d)
	}

	dstData := dst.Data()
	dstStride := dst.Size(axis) * inner

	offset := 0
	for _, src := range srcs {
		block := src.Size(axis) * inner
		srcData := src.Data()
		for o := 0; o < outer; o++ {
			d := o*dstStride + offset
			s := o * block
			for i := 0; i < block; i++ {
				dstData[d+i] = srcData[s+i]
			}
		}
		offset += block
	}
}
