// Package cat provides tensor concatenation kernels with runtime SIMD
// dispatch.
//
// [Serial] concatenates source tensors along an axis into a preallocated
// destination, single-threaded. The best kernel variant for the executing CPU
// is selected on first call and cached for the remainder of the process.
//
// "Serial" distinguishes this operation from a parallel counterpart that may
// be added later; such a counterpart would be a separate operation with its
// own dispatch stub and cache slot.
package cat
