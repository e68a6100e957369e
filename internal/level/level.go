// Package level defines the hierarchy level tags of a parallel launch.
//
// Levels nest strictly, outermost first: grid, cluster, block, thread.
// Each level is a distinct zero-size marker type so that code can be
// parameterized by level and mixing levels is a compile error.
//
// Only grid, cluster and block satisfy Dimensioned. The thread level is
// always sized implicitly by its enclosing block and never carries a
// standalone dimension spec.
package level

import "fmt"

// Level is a sealed interface implemented by the four marker types.
type Level interface {
	hierarchyLevel()

	// Name is the lowercase level name ("grid", "cluster", ...).
	Name() string

	// Depth is the nesting depth, 0 for grid up to 3 for thread.
	Depth() int
}

// Dimensioned is the set of levels that accept a dimension spec.
// Thread does not implement it.
type Dimensioned interface {
	Level
	dimensioned()
}

// Grid is the outermost level.
type Grid struct{}

// Cluster groups blocks inside a grid.
type Cluster struct{}

// Block groups threads.
type Block struct{}

// Thread is the innermost execution unit.
type Thread struct{}

func (Grid) hierarchyLevel()    {}
func (Cluster) hierarchyLevel() {}
func (Block) hierarchyLevel()   {}
func (Thread) hierarchyLevel()  {}

func (Grid) dimensioned()    {}
func (Cluster) dimensioned() {}
func (Block) dimensioned()   {}

func (Grid) Name() string    { return string(KindGrid) }
func (Cluster) Name() string { return string(KindCluster) }
func (Block) Name() string   { return string(KindBlock) }
func (Thread) Name() string  { return string(KindThread) }

func (Grid) Depth() int    { return 0 }
func (Cluster) Depth() int { return 1 }
func (Block) Depth() int   { return 2 }
func (Thread) Depth() int  { return 3 }

// Kind is the runtime name of a level. It exists for display and
// persistence; code that needs level identity should use the marker types.
type Kind string

const (
	KindGrid    Kind = "grid"
	KindCluster Kind = "cluster"
	KindBlock   Kind = "block"
	KindThread  Kind = "thread"
)

var kinds = []Kind{KindGrid, KindCluster, KindBlock, KindThread}

// Kinds returns every level kind in nesting order, outermost first.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// KindOf returns the kind of the level type L.
func KindOf[L Level]() Kind {
	var l L
	return Kind(l.Name())
}

// ParseKind converts a level name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown hierarchy level %q", s)
}

// Depth returns the nesting depth of k, or -1 if k is not a known kind.
func (k Kind) Depth() int {
	for i, kk := range kinds {
		if kk == k {
			return i
		}
	}
	return -1
}

// Inner returns the next inner level. Thread has none.
func (k Kind) Inner() (Kind, bool) {
	d := k.Depth()
	if d < 0 || d == len(kinds)-1 {
		return "", false
	}
	return kinds[d+1], true
}

// Outer returns the next outer level. Grid has none.
func (k Kind) Outer() (Kind, bool) {
	d := k.Depth()
	if d <= 0 {
		return "", false
	}
	return kinds[d-1], true
}

// Dimensioned reports whether k accepts a standalone dimension spec.
func (k Kind) Dimensioned() bool {
	return k == KindGrid || k == KindCluster || k == KindBlock
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
