package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/launchdims/internal/dims"
	"github.com/roach88/launchdims/internal/level"
)

func ptr[T any](v T) *T { return &v }

func TestLaunchLevelsUnits(t *testing.T) {
	l := &Launch{
		Name:    "sgemm",
		Grid:    ptr(dims.StaticGrid2D(64, 64)),
		Cluster: ptr(dims.Cluster(dims.Count(2))),
		Block:   ptr(dims.Block(dims.Dim3{X: 16, Y: 16, Z: 1})),
	}

	got := l.Levels()
	require.Len(t, got, 3)

	assert.Equal(t, level.KindGrid, got[0].Level)
	assert.Equal(t, level.KindCluster, got[0].Unit)
	assert.Equal(t, level.KindCluster, got[1].Level)
	assert.Equal(t, level.KindBlock, got[1].Unit)
	assert.Equal(t, level.KindBlock, got[2].Level)
	assert.Equal(t, level.KindThread, got[2].Unit)

	assert.Equal(t, dims.Static2D(64, 64), got[0].Extents)
}

func TestLaunchUnitSkipsMissingLevels(t *testing.T) {
	l := &Launch{
		Grid:  ptr(dims.Grid(dims.Count(1024))),
		Block: ptr(dims.StaticBlock(256)),
	}

	got := l.Levels()
	require.Len(t, got, 2)
	assert.Equal(t, level.KindBlock, got[0].Unit)
	assert.Equal(t, level.KindThread, got[1].Unit)

	grid := &Launch{Grid: ptr(dims.StaticGrid(8))}
	assert.Equal(t, level.KindThread, grid.Levels()[0].Unit)
}

func TestLaunchSetLevel(t *testing.T) {
	var l Launch
	assert.True(t, l.Empty())

	e := dims.NewExtents(dims.StaticAxis(3), dims.DynamicAxis(9), dims.Axis{})
	require.NoError(t, l.SetLevel(level.KindCluster, e))
	require.NotNil(t, l.Cluster)
	assert.Equal(t, e, l.Cluster.Extents())
	assert.False(t, l.Empty())

	require.NoError(t, l.SetLevel(level.KindGrid, dims.Static(2)))
	require.NoError(t, l.SetLevel(level.KindBlock, dims.Static(32)))
	assert.Equal(t, dims.StaticGrid(2), *l.Grid)
	assert.Equal(t, dims.StaticBlock(32), *l.Block)

	err := l.SetLevel(level.KindThread, dims.Static(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thread")
}
