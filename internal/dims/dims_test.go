package dims

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/roach88/launchdims/internal/level"
)

var extentsCmp = cmp.AllowUnexported(Extents{}, Axis{})

// axisWant is the expected (value, static) pair of one axis.
type axisWant struct {
	value  uint32
	static bool
}

func assertAxes(t *testing.T, e Extents, want [3]axisWant) {
	t.Helper()
	for i, id := range []AxisID{X, Y, Z} {
		a := e.Axis(id)
		assert.Equal(t, want[i].value, a.Value(), "axis %s value", id)
		assert.Equal(t, want[i].static, a.IsStatic(), "axis %s static", id)
	}
}

// extentsOf erases the level so every level can share one table.
type extentsOf interface{ Extents() Extents }

func TestStaticFactoriesDefaultTrailingAxes(t *testing.T) {
	tests := map[string]extentsOf{
		"grid":    StaticGrid(8),
		"cluster": StaticCluster(8),
		"block":   StaticBlock(8),
	}

	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			e := d.Extents()
			assertAxes(t, e, [3]axisWant{{8, true}, {1, true}, {1, true}})
			assert.True(t, e.IsStatic())
			assert.Equal(t, 0, e.RankDynamic())
		})
	}
}

func TestRuntimeFactoriesPlainIntegral(t *testing.T) {
	tests := map[string]extentsOf{
		"grid":    Grid(Count(7)),
		"cluster": Cluster(Int(int64(7))),
		"block":   Block(Int(uint8(7))),
	}

	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			e := d.Extents()
			assertAxes(t, e, [3]axisWant{{7, false}, {1, true}, {1, true}})
			assert.Equal(t, 1, e.RankDynamic())
		})
	}
}

func TestRuntimeFactoriesVectorLike(t *testing.T) {
	v := Dim3{X: 4, Y: 5, Z: 6}
	tests := map[string]extentsOf{
		"grid":    Grid(v),
		"cluster": Cluster(v),
		"block":   Block(v),
	}

	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			e := d.Extents()
			assertAxes(t, e, [3]axisWant{{4, false}, {5, false}, {6, false}})
			assert.Equal(t, 3, e.RankDynamic())
		})
	}
}

func TestRuntimeFactoriesConstMatchesStatic(t *testing.T) {
	if diff := cmp.Diff(StaticGrid(32).Extents(), Grid(Const(32)).Extents(), extentsCmp); diff != "" {
		t.Errorf("grid mismatch (-static +const):\n%s", diff)
	}
	if diff := cmp.Diff(StaticCluster(2).Extents(), Cluster(Const(2)).Extents(), extentsCmp); diff != "" {
		t.Errorf("cluster mismatch (-static +const):\n%s", diff)
	}
	if diff := cmp.Diff(StaticBlock(1).Extents(), Block(Const(1)).Extents(), extentsCmp); diff != "" {
		t.Errorf("block mismatch (-static +const):\n%s", diff)
	}

	assert.Equal(t, StaticBlock(128), Block(Const(128)))
}

func TestScenario(t *testing.T) {
	b := Block(Count(7))
	assert.Equal(t, "block(dyn(7), 1, 1)", b.String())

	g := StaticGrid2D(2, 3)
	assertAxes(t, g.Extents(), [3]axisWant{{2, true}, {3, true}, {1, true}})
	assert.Equal(t, "grid(2, 3, 1)", g.String())

	c := Cluster(Dim3{X: 4, Y: 5, Z: 6})
	assertAxes(t, c.Extents(), [3]axisWant{{4, false}, {5, false}, {6, false}})
	assert.Equal(t, "cluster(dyn(4), dyn(5), dyn(6))", c.String())
}

func TestRoundTripPreservesClassification(t *testing.T) {
	in := NewExtents(StaticAxis(16), DynamicAxis(3), StaticAxis(1))
	d := New[level.Block](in)

	out := d.Extents()
	if diff := cmp.Diff(in, out, extentsCmp); diff != "" {
		t.Fatalf("extents changed (-in +out):\n%s", diff)
	}
	assertAxes(t, out, [3]axisWant{{16, true}, {3, false}, {1, true}})

	// A canonical value passes through the runtime family untouched.
	assert.Equal(t, d, Block(in))
}

func TestLevelsAreDistinctTypes(t *testing.T) {
	g := StaticGrid(4)
	b := StaticBlock(4)

	assert.Equal(t, g.Extents(), b.Extents())
	assert.Equal(t, level.KindGrid, g.Kind())
	assert.Equal(t, level.KindBlock, b.Kind())
	assert.Equal(t, level.Grid{}, g.Level())
	assert.Equal(t, level.Block{}, b.Level())

	// Boxed, the two specs still carry different dynamic types.
	var gi, bi any = g, b
	_, ok := gi.(Dims[level.Block])
	assert.False(t, ok)
	_, ok = bi.(Dims[level.Block])
	assert.True(t, ok)
}

func TestZeroDimsIsUnit(t *testing.T) {
	var d Dims[level.Cluster]
	assertAxes(t, d.Extents(), [3]axisWant{{1, true}, {1, true}, {1, true}})
	assert.Equal(t, StaticCluster(1), d)
}

func TestConcurrentConstruction(t *testing.T) {
	shared := Grid(Dim3{X: 64, Y: 2, Z: 1})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n uint32) {
			defer wg.Done()
			b := Block(Count(n))
			assert.Equal(t, n, b.Extents().X().Value())
			assert.Equal(t, uint64(128), shared.Extents().Volume())
		}(uint32(i + 1))
	}
	wg.Wait()
}

func TestStaticFamilyArity(t *testing.T) {
	tests := []struct {
		name string
		got  Extents
		want Dim3
	}{
		{"grid", StaticGrid(5).Extents(), Dim3{5, 1, 1}},
		{"grid 2d", StaticGrid2D(5, 6).Extents(), Dim3{5, 6, 1}},
		{"grid 3d", StaticGrid3D(5, 6, 7).Extents(), Dim3{5, 6, 7}},
		{"cluster 2d", StaticCluster2D(2, 2).Extents(), Dim3{2, 2, 1}},
		{"cluster 3d", StaticCluster3D(2, 2, 2).Extents(), Dim3{2, 2, 2}},
		{"block 2d", StaticBlock2D(32, 8).Extents(), Dim3{32, 8, 1}},
		{"block 3d", StaticBlock3D(8, 8, 4).Extents(), Dim3{8, 8, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Dim3())
			assert.True(t, tt.got.IsStatic())
		})
	}

	// A unit axis given explicitly equals one left out.
	assert.Equal(t, StaticBlock(32), StaticBlock3D(32, 1, 1))
}
