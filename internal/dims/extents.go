package dims

import "strings"

// Extents is the canonical (X, Y, Z) description of one level.
// The zero Extents is static (1, 1, 1).
type Extents struct {
	axes [3]Axis
}

// NewExtents assembles extents from three axes.
func NewExtents(x, y, z Axis) Extents {
	return Extents{axes: [3]Axis{x, y, z}}
}

// Static returns fully static extents (x, 1, 1).
func Static(x uint32) Extents {
	return Extents{axes: [3]Axis{StaticAxis(x), {}, {}}}
}

// Static2D returns fully static extents (x, y, 1).
func Static2D(x, y uint32) Extents {
	return Extents{axes: [3]Axis{StaticAxis(x), StaticAxis(y), {}}}
}

// Static3D returns fully static extents (x, y, z).
func Static3D(x, y, z uint32) Extents {
	return Extents{axes: [3]Axis{StaticAxis(x), StaticAxis(y), StaticAxis(z)}}
}

// X returns the X axis.
func (e Extents) X() Axis { return e.axes[X] }

// Y returns the Y axis.
func (e Extents) Y() Axis { return e.axes[Y] }

// Z returns the Z axis.
func (e Extents) Z() Axis { return e.axes[Z] }

// Axis returns the axis identified by id. It panics on an unknown id.
func (e Extents) Axis(id AxisID) Axis {
	return e.axes[id]
}

// Extent returns the size along id regardless of classification.
func (e Extents) Extent(id AxisID) uint32 {
	return e.axes[id].Value()
}

// StaticExtent returns the size along id and true if that axis is static.
func (e Extents) StaticExtent(id AxisID) (uint32, bool) {
	a := e.axes[id]
	if !a.IsStatic() {
		return 0, false
	}
	return a.Value(), true
}

// Rank is always 3.
func (e Extents) Rank() int { return len(e.axes) }

// RankDynamic counts the dynamic axes.
func (e Extents) RankDynamic() int {
	n := 0
	for _, a := range e.axes {
		if !a.IsStatic() {
			n++
		}
	}
	return n
}

// IsStatic reports whether every axis is static.
func (e Extents) IsStatic() bool {
	return e.RankDynamic() == 0
}

// Volume is the product of the three axes.
func (e Extents) Volume() uint64 {
	return uint64(e.X().Value()) * uint64(e.Y().Value()) * uint64(e.Z().Value())
}

// Dim3 drops the classification and returns the plain sizes.
func (e Extents) Dim3() Dim3 {
	return Dim3{X: e.X().Value(), Y: e.Y().Value(), Z: e.Z().Value()}
}

// String renders the extents as (x, y, z).
func (e Extents) String() string {
	parts := make([]string, len(e.axes))
	for i, a := range e.axes {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
