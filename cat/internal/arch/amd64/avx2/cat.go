//go:build amd64 && !purego

package avx2

import "github.com/cwbudde/algo-tensor/tensor"

// CatSerial writes the concatenation of srcs along axis into dst.
// 4x-unrolled block copies sized for 256-bit AVX2 moves.
// TODO: replace with explicit AVX2 asm kernel.
//
// Caller preconditions match the generic kernel: normalized axis, validated
// shapes.
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
			d := dstData[o*dstStride+offset : o*dstStride+offset+block]
			s := srcData[o*block : o*block+block]

			i := 0
			for ; i+3 < block; i += 4 {
				d[i] = s[i]
				d[i+1] = s[i+1]
				d[i+2] = s[i+2]
				d[i+3] = s[i+3]
			}
			for ; i < block; i++ {
				d[i] = s[i]
			}
		}
		offset += block
	}
}
