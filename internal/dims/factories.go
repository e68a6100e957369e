package dims

import "github.com/roach88/launchdims/internal/level"

// The static family fixes every axis when the code is written. Arity
// picks the rank: omitted trailing axes are the static unit.

// StaticGrid returns static grid dimensions (x, 1, 1).
func StaticGrid(x uint32) Dims[level.Grid] {
	return New[level.Grid](Static(x))
}

// StaticGrid2D returns static grid dimensions (x, y, 1).
func StaticGrid2D(x, y uint32) Dims[level.Grid] {
	return New[level.Grid](Static2D(x, y))
}

// StaticGrid3D returns static grid dimensions (x, y, z).
func StaticGrid3D(x, y, z uint32) Dims[level.Grid] {
	return New[level.Grid](Static3D(x, y, z))
}

// Grid returns grid dimensions translated from s.
func Grid[S Source](s S) Dims[level.Grid] {
	return From[level.Grid](s)
}

// StaticCluster returns static cluster dimensions (x, 1, 1).
func StaticCluster(x uint32) Dims[level.Cluster] {
	return New[level.Cluster](Static(x))
}

// StaticCluster2D returns static cluster dimensions (x, y, 1).
func StaticCluster2D(x, y uint32) Dims[level.Cluster] {
	return New[level.Cluster](Static2D(x, y))
}

// StaticCluster3D returns static cluster dimensions (x, y, z).
func StaticCluster3D(x, y, z uint32) Dims[level.Cluster] {
	return New[level.Cluster](Static3D(x, y, z))
}

// Cluster returns cluster dimensions translated from s.
func Cluster[S Source](s S) Dims[level.Cluster] {
	return From[level.Cluster](s)
}

// StaticBlock returns static block dimensions (x, 1, 1).
func StaticBlock(x uint32) Dims[level.Block] {
	return New[level.Block](Static(x))
}

// StaticBlock2D returns static block dimensions (x, y, 1).
func StaticBlock2D(x, y uint32) Dims[level.Block] {
	return New[level.Block](Static2D(x, y))
}

// StaticBlock3D returns static block dimensions (x, y, z).
func StaticBlock3D(x, y, z uint32) Dims[level.Block] {
	return New[level.Block](Static3D(x, y, z))
}

// Block returns block dimensions translated from s.
func Block[S Source](s S) Dims[level.Block] {
	return From[level.Block](s)
}
