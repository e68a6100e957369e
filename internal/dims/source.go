package dims

import "golang.org/x/exp/constraints"

// Source is implemented by every value the runtime factories accept.
// Normalize must be a pure translation with no side effects.
type Source interface {
	Normalize() Extents
}

// Count is a plain integral size. It translates to (dyn(n), 1, 1).
type Count uint32

// Normalize implements Source.
func (c Count) Normalize() Extents {
	return Extents{axes: [3]Axis{DynamicAxis(uint32(c)), {}, {}}}
}

// Int converts any Go integer into a Count. Values are narrowed to
// uint32 with the usual Go conversion rules.
func Int[T constraints.Integer](n T) Count {
	return Count(uint32(n))
}

// Dim3 is a vector-like size with all three axes known at run time.
// It translates to (dyn(x), dyn(y), dyn(z)).
type Dim3 struct {
	X, Y, Z uint32
}

// Normalize implements Source.
func (d Dim3) Normalize() Extents {
	return NewExtents(DynamicAxis(d.X), DynamicAxis(d.Y), DynamicAxis(d.Z))
}

// Size returns X*Y*Z.
func (d Dim3) Size() uint64 {
	return uint64(d.X) * uint64(d.Y) * uint64(d.Z)
}

// Const wraps a size fixed when the code is written. It translates to
// (v, 1, 1), identical to Static(v).
type Const uint32

// Normalize implements Source.
func (c Const) Normalize() Extents {
	return Static(uint32(c))
}

// Normalize returns e unchanged, which lets canonical values pass
// through the runtime factories.
func (e Extents) Normalize() Extents {
	return e
}

var (
	_ Source = Count(0)
	_ Source = Dim3{}
	_ Source = Const(0)
	_ Source = Extents{}
)

// Translate normalizes s into canonical extents.
func Translate[S Source](s S) Extents {
	return s.Normalize()
}

// Supports reports whether v has a translation rule. It is the dynamic
// form of the Source constraint, for values already held in an interface.
func Supports(v any) bool {
	_, ok := v.(Source)
	return ok
}
