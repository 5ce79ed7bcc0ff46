package simreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnergyChannelTable_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edges []float64
	}{
		{"empty", nil},
		{"single edge", []float64{4.5}},
		{"duplicate edge", []float64{4.5, 10, 10, 2000}},
		{"decreasing", []float64{4.5, 100, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEnergyChannelTable(tt.edges)
			var bad *ErrBadEdges
			require.ErrorAs(t, err, &bad)
		})
	}
}

func TestNewEnergyChannelTable_CopiesEdges(t *testing.T) {
	edges := []float64{4.5, 10, 100, 2000}
	table, err := NewEnergyChannelTable(edges)
	require.NoError(t, err)

	edges[0] = 999
	assert.Equal(t, 4.5, table.LowEdges()[0])
}

func TestChannelOf(t *testing.T) {
	table, err := NewEnergyChannelTable([]float64{4.5, 10, 100, 2000})
	require.NoError(t, err)
	require.Equal(t, 3, table.NumChannels())

	tests := []struct {
		energy float64
		want   int
	}{
		{3.0, 0}, // underflow clamps to the first channel
		{4.5, 0}, // low edge is inclusive
		{9.999, 0},
		{10.0, 1}, // bin boundary belongs to the upper channel
		{99.9, 1},
		{100.0, 2},
		{1999.9, 2},
		{2000.0, 2}, // top edge clamps into the last channel
		{5000.0, 2}, // overflow clamps to the last channel
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.ChannelOf(tt.energy), "energy %g", tt.energy)
	}
}

func TestChannelOf_TotalAndClamped(t *testing.T) {
	edges := []float64{1, 2, 4, 8, 16, 32}
	table, err := NewEnergyChannelTable(edges)
	require.NoError(t, err)

	for energy := -10.0; energy < 100.0; energy += 0.37 {
		channel := table.ChannelOf(energy)
		assert.GreaterOrEqual(t, channel, 0)
		assert.Less(t, channel, table.NumChannels())
	}
	assert.Equal(t, 0, table.ChannelOf(edges[0]-1))
	assert.Equal(t, table.NumChannels()-1, table.ChannelOf(edges[len(edges)-1]+1))
}

func TestGeometricEdges(t *testing.T) {
	edges, err := GeometricEdges(1, 1000, 3)
	require.NoError(t, err)
	require.Len(t, edges, 4)

	assert.InDelta(t, 1.0, edges[0], 1e-12)
	assert.InDelta(t, 10.0, edges[1], 1e-9)
	assert.InDelta(t, 100.0, edges[2], 1e-9)
	assert.Equal(t, 1000.0, edges[3])

	// The generated table always passes validation.
	_, err = NewEnergyChannelTable(edges)
	assert.NoError(t, err)
}

func TestGeometricEdges_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		emin, emax float64
		n          int
	}{
		{"zero channels", 1, 1000, 0},
		{"non-positive emin", 0, 1000, 4},
		{"emax below emin", 100, 10, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeometricEdges(tt.emin, tt.emax, tt.n)
			var bad *ErrBadEdges
			require.ErrorAs(t, err, &bad)
		})
	}
}

func TestEdgeAccessors(t *testing.T) {
	table, err := NewEnergyChannelTable([]float64{4.5, 10, 100, 2000})
	require.NoError(t, err)

	assert.Equal(t, []float64{4.5, 10, 100}, table.LowEdges())
	assert.Equal(t, []float64{10, 100, 2000}, table.HighEdges())
}
