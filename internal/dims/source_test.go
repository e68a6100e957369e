package dims

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tile is a caller-defined source form: a square 2D tile.
type tile struct{ side uint32 }

func (t tile) Normalize() Extents {
	return NewExtents(DynamicAxis(t.side), DynamicAxis(t.side), Axis{})
}

func TestTranslateBuiltinForms(t *testing.T) {
	assert.Equal(t, NewExtents(DynamicAxis(7), Axis{}, Axis{}), Translate(Count(7)))
	assert.Equal(t, NewExtents(DynamicAxis(1), DynamicAxis(2), DynamicAxis(3)), Translate(Dim3{1, 2, 3}))
	assert.Equal(t, Static(7), Translate(Const(7)))
}

func TestIntNarrowsLikeConversion(t *testing.T) {
	assert.Equal(t, Count(300), Int(300))
	assert.Equal(t, Count(5), Int(int16(5)))
	assert.Equal(t, Count(1), Int(uint64(1)<<32+1))
}

func TestCustomSourceForm(t *testing.T) {
	b := Block(tile{side: 16})
	assert.Equal(t, Dim3{16, 16, 1}, b.Extents().Dim3())
	assert.Equal(t, 2, b.Extents().RankDynamic())
	assert.True(t, Supports(tile{}))
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"count", Count(1), true},
		{"dim3", Dim3{}, true},
		{"const", Const(1), true},
		{"extents", Extents{}, true},
		{"bare int", 7, false},
		{"string", "7", false},
		{"dims", StaticGrid(1), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Supports(tt.v))
		})
	}
}

func TestDim3Size(t *testing.T) {
	assert.Equal(t, uint64(60), Dim3{3, 4, 5}.Size())
	assert.Equal(t, uint64(0), Dim3{}.Size())
}
