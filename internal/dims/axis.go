package dims

import "strconv"

// AxisID names one of the three axes.
type AxisID int

const (
	X AxisID = iota
	Y
	Z
)

// String implements fmt.Stringer.
func (a AxisID) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return "axis(" + strconv.Itoa(int(a)) + ")"
	}
}

type axisKind uint8

const (
	axisUnit axisKind = iota // static 1, the zero value
	axisStatic
	axisDynamic
)

// Axis is the extent along one axis: static(n) or dynamic(n).
//
// The zero Axis is static 1. StaticAxis(1) returns the zero Axis, so
// axes compare equal with == whenever value and classification agree.
type Axis struct {
	n    uint32
	kind axisKind
}

// StaticAxis returns an axis fixed at n.
func StaticAxis(n uint32) Axis {
	if n == 1 {
		return Axis{}
	}
	return Axis{n: n, kind: axisStatic}
}

// DynamicAxis returns a runtime-resident axis holding n.
func DynamicAxis(n uint32) Axis {
	return Axis{n: n, kind: axisDynamic}
}

// Value returns the size of the axis.
func (a Axis) Value() uint32 {
	if a.kind == axisUnit {
		return 1
	}
	return a.n
}

// IsStatic reports whether the axis was fixed at construction.
func (a Axis) IsStatic() bool {
	return a.kind != axisDynamic
}

// String renders static axes as their value and dynamic axes as dyn(n).
func (a Axis) String() string {
	v := strconv.FormatUint(uint64(a.Value()), 10)
	if a.IsStatic() {
		return v
	}
	return "dyn(" + v + ")"
}
