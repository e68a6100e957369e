package ir

import (
	"fmt"

	"github.com/roach88/launchdims/internal/dims"
	"github.com/roach88/launchdims/internal/level"
)

// Launch is a compiled manifest: a name and up to one dimension spec per
// level. Nothing here checks that the levels fit together.
type Launch struct {
	// ID is the catalog id, empty until the launch is stored.
	ID string

	Name   string
	Kernel string

	// Hash is the content identity, see LaunchHash.
	Hash string

	Grid    *dims.Dims[level.Grid]
	Cluster *dims.Dims[level.Cluster]
	Block   *dims.Dims[level.Block]
}

// LevelExtents is the runtime view of one level of a Launch.
type LevelExtents struct {
	Level   level.Kind
	Extents dims.Extents

	// Unit is what the extents count: the next inner level present in
	// the launch, or thread for the innermost one.
	Unit level.Kind
}

// Levels returns the levels present in l, outermost first.
func (l *Launch) Levels() []LevelExtents {
	var out []LevelExtents
	if l.Grid != nil {
		out = append(out, LevelExtents{Level: level.KindGrid, Extents: l.Grid.Extents()})
	}
	if l.Cluster != nil {
		out = append(out, LevelExtents{Level: level.KindCluster, Extents: l.Cluster.Extents()})
	}
	if l.Block != nil {
		out = append(out, LevelExtents{Level: level.KindBlock, Extents: l.Block.Extents()})
	}

	for i := range out {
		if i+1 < len(out) {
			out[i].Unit = out[i+1].Level
		} else {
			out[i].Unit = level.KindThread
		}
	}
	return out
}

// SetLevel fills the slot for kind with e. Thread and unknown kinds are
// rejected since they have no slot.
func (l *Launch) SetLevel(kind level.Kind, e dims.Extents) error {
	switch kind {
	case level.KindGrid:
		d := dims.New[level.Grid](e)
		l.Grid = &d
	case level.KindCluster:
		d := dims.New[level.Cluster](e)
		l.Cluster = &d
	case level.KindBlock:
		d := dims.New[level.Block](e)
		l.Block = &d
	default:
		return fmt.Errorf("level %q has no dimension slot", kind)
	}
	return nil
}

// Empty reports whether no level is set.
func (l *Launch) Empty() bool {
	return l.Grid == nil && l.Cluster == nil && l.Block == nil
}
