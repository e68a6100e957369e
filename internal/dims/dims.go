package dims

import "github.com/roach88/launchdims/internal/level"

// Dims binds one level to its extents. The unit of the extents is not
// recorded: it is the next inner level of whatever launch the Dims ends
// up in, with thread as the innermost unit.
//
// The zero Dims is (1, 1, 1) static.
type Dims[L level.Dimensioned] struct {
	ext Extents
}

// New wraps already canonical extents.
func New[L level.Dimensioned](e Extents) Dims[L] {
	return Dims[L]{ext: e}
}

// From normalizes s and wraps the result.
func From[L level.Dimensioned, S Source](s S) Dims[L] {
	return Dims[L]{ext: Translate(s)}
}

// Extents returns the canonical extents.
func (d Dims[L]) Extents() Extents {
	return d.ext
}

// Level returns the level tag.
func (d Dims[L]) Level() L {
	var l L
	return l
}

// Kind returns the runtime name of the level.
func (d Dims[L]) Kind() level.Kind {
	return level.KindOf[L]()
}

// String renders d as level(x, y, z).
func (d Dims[L]) String() string {
	return d.Kind().String() + d.ext.String()
}
