package ir

import (
	"github.com/roach88/launchdims/internal/dims"
	"github.com/roach88/launchdims/internal/level"
)

// LaunchSpec is a decoded manifest document.
type LaunchSpec struct {
	// Name identifies the launch in the catalog.
	Name string `json:"name" yaml:"name"`

	// Kernel optionally names the kernel the launch is meant for.
	Kernel string `json:"kernel,omitempty" yaml:"kernel,omitempty"`

	Grid    *LevelSpec `json:"grid,omitempty" yaml:"grid,omitempty"`
	Cluster *LevelSpec `json:"cluster,omitempty" yaml:"cluster,omitempty"`
	Block   *LevelSpec `json:"block,omitempty" yaml:"block,omitempty"`
}

// LevelSpec is the manifest form of one level.
//
// It is a dims.Source and picks its source form from the fields present:
//   - static: true     -> every axis static, missing axes 1
//   - only x           -> plain integral form, (dyn(x), 1, 1)
//   - x with y and/or z -> vector form, every axis dynamic, missing axes 1
type LevelSpec struct {
	X      *uint32 `json:"x" yaml:"x"`
	Y      *uint32 `json:"y,omitempty" yaml:"y,omitempty"`
	Z      *uint32 `json:"z,omitempty" yaml:"z,omitempty"`
	Static bool    `json:"static,omitempty" yaml:"static,omitempty"`
}

var _ dims.Source = LevelSpec{}

// Normalize implements dims.Source. A missing x reads as 1; the compiler
// rejects such specs before they get here.
func (s LevelSpec) Normalize() dims.Extents {
	x, y, z := orOne(s.X), orOne(s.Y), orOne(s.Z)
	switch {
	case s.Static:
		return dims.Static3D(x, y, z)
	case s.Y == nil && s.Z == nil:
		return dims.Count(x).Normalize()
	default:
		return dims.Dim3{X: x, Y: y, Z: z}.Normalize()
	}
}

// Levels returns the level specs present in s, outermost first.
func (s LaunchSpec) Levels() []NamedLevelSpec {
	var out []NamedLevelSpec
	for _, e := range []struct {
		kind level.Kind
		spec *LevelSpec
	}{
		{level.KindGrid, s.Grid},
		{level.KindCluster, s.Cluster},
		{level.KindBlock, s.Block},
	} {
		if e.spec != nil {
			out = append(out, NamedLevelSpec{Level: e.kind, Spec: *e.spec})
		}
	}
	return out
}

// NamedLevelSpec pairs a LevelSpec with its manifest key.
type NamedLevelSpec struct {
	Level level.Kind
	Spec  LevelSpec
}

// U32 returns a pointer to n, for building specs in code.
func U32(n uint32) *uint32 {
	return &n
}

func orOne(p *uint32) uint32 {
	if p == nil {
		return 1
	}
	return *p
}
