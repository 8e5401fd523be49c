// Package kernel provides float64 slice kernels for the batched blend path.
//
// Each kernel has a generic and a four-way unrolled implementation. The
// unrolled one is selected at init on CPUs detected as wide-issue through
// golang.org/x/sys/cpu; the VALGEBRA_KERNEL environment variable
// (generic|unrolled) overrides the detection.
//
// Kernels assume len(dst) == len(a) == len(b) and do not check it.
package kernel
