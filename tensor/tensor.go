// Package tensor provides a minimal dense tensor handle for kernel
// arguments.
//
// A [Dense] is a row-major contiguous float64 buffer plus a shape. It is
// deliberately small: kernels need element access and per-dimension extents,
// nothing more. Richer tensor semantics (views, strides, broadcasting) belong
// to the calling layer.
package tensor

import "fmt"

// Dense is a dense row-major float64 tensor.
type Dense struct {
	shape []int
	data  []float64
}

// New returns a zero-filled tensor with the given shape.
// Panics on negative dimensions.
func New(shape ...int) *Dense {
	n := checkShape(shape)
	return &Dense{
		shape: append([]int(nil), shape...),
		data:  make([]float64, n),
	}
}

// FromSlice wraps data in a tensor with the given shape. The tensor aliases
// data; it does not copy. Panics if len(data) does not match the shape.
func FromSlice(data []float64, shape ...int) *Dense {
	n := checkShape(shape)
	if len(data) != n {
		panic(fmt.Sprintf("tensor: data length %d does not match shape %v (%d elements)", len(data), shape, n))
	}
	return &Dense{
		shape: append([]int(nil), shape...),
		data:  data,
	}
}

func checkShape(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 0 {
			panic(fmt.Sprintf("tensor: negative dimension in shape %v", shape))
		}
		n *= d
	}
	return n
}

// Rank returns the number of dimensions.
func (t *Dense) Rank() int {
	return len(t.shape)
}

// Size returns the extent of dimension d.
func (t *Dense) Size(d int) int {
	return t.shape[d]
}

// Shape returns a copy of the tensor's shape.
func (t *Dense) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Len returns the total number of elements.
func (t *Dense) Len() int {
	return len(t.data)
}

// Data returns the underlying row-major buffer. Kernels write through it.
func (t *Dense) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
func (t *Dense) At(idx ...int) float64 {
	return t.data[t.offset(idx)]
}

// Set stores v at the given indices.
func (t *Dense) Set(v float64, idx ...int) {
	t.data[t.offset(idx)] = v
}

func (t *Dense) offset(idx []int) int {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("tensor: %d indices for rank-%d tensor", len(idx), len(t.shape)))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= t.shape[d] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d (extent %d)", i, d, t.shape[d]))
		}
		off = off*t.shape[d] + i
	}
	return off
}

// NormalizeAxis resolves an axis index for a tensor of the given rank.
// Negative values count from the last dimension (-1 is the last axis).
// Panics when the axis is out of range.
func NormalizeAxis(axis, rank int) int {
	if axis < -rank || axis >= rank {
		panic(fmt.Sprintf("tensor: axis %d out of range for rank %d", axis, rank))
	}
	if axis < 0 {
		axis += rank
	}
	return axis
}
