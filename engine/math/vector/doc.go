// Package vector provides the four-lane float32 primitive the rest of the
// math packages are built on.
//
// A Vector holds four float32 lanes. Comparisons return a Mask, a separate
// type with one boolean per lane, which Select consumes to pick lanes from
// two vectors without branching. Dot products are replicated into every lane
// so chained expressions never leave vector form.
//
// Backends:
//
// Every exported operation is written once on top of the small primitive
// set described by Kernel. Two kernels exist:
//
//   - generic: plain lane loops, always compiled.
//   - simd: simd/archsimd Float32x4, compiled on amd64 when building with
//     GOEXPERIMENT=simd. It is picked at init when the CPU reports AVX.
//
// Both kernels round every lane operation individually, so results are
// identical bit for bit. Build with the `purego` tag or set MARS_NO_SIMD=1
// to force the generic kernel.
package vector
