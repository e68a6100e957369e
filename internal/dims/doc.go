// Package dims describes the extent of one hierarchy level of a parallel
// launch along three axes.
//
// Every description is stored as a canonical Extents value: an ordered
// (X, Y, Z) tuple in which each axis is either static (fixed when the
// description is written) or dynamic (known only at run time). Axes a
// caller leaves out are always the static unit 1.
//
// Dims pairs an Extents with a level from package level. The level is a
// type parameter, so a Dims[level.Grid] can never be passed where a
// Dims[level.Block] is expected.
//
// Two families of constructors exist for grid, cluster and block:
//
//	dims.StaticGrid2D(2, 3)        // fully static, z = 1
//	dims.Block(dims.Count(256))    // runtime, through the normalizer
//	dims.Cluster(dims.Dim3{X: 4, Y: 5, Z: 6})
//
// The runtime family accepts any Source. A type that does not implement
// Source is rejected by the compiler, and new source forms are added by
// implementing Source on them.
//
// All values are immutable and safe to share between goroutines.
package dims
