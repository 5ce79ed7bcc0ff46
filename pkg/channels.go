package simreader

import (
	"math"
	"sort"
)

// EnergyChannelTable defines N instrument energy channels through N+1
// strictly increasing edge values in keV. Channel i covers
// [edges[i], edges[i+1]). The table is immutable once built.
type EnergyChannelTable struct {
	edges []float64
}

// NewEnergyChannelTable validates and wraps an edge sequence. At least two
// edges are required and they must be strictly increasing.
func NewEnergyChannelTable(edges []float64) (*EnergyChannelTable, error) {
	if len(edges) < 2 {
		return nil, &ErrBadEdges{Reason: "need at least two edges"}
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, &ErrBadEdges{Reason: "edges must be strictly increasing"}
		}
	}
	table := &EnergyChannelTable{edges: make([]float64, len(edges))}
	copy(table.edges, edges)
	return table, nil
}

// GeometricEdges builds n+1 geometrically spaced edges over [emin, emax],
// the usual channel layout over an instrument's dynamic range.
func GeometricEdges(emin, emax float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, &ErrBadEdges{Reason: "need at least one channel"}
	}
	if emin <= 0 || emax <= emin {
		return nil, &ErrBadEdges{Reason: "need 0 < emin < emax for geometric spacing"}
	}
	ratio := math.Pow(emax/emin, 1/float64(n))
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = emin * math.Pow(ratio, float64(i))
	}
	edges[n] = emax
	return edges, nil
}

// NumChannels returns the number of channels N.
func (t *EnergyChannelTable) NumChannels() int {
	return len(t.edges) - 1
}

// LowEdges returns the low edge of every channel.
func (t *EnergyChannelTable) LowEdges() []float64 {
	return t.edges[:len(t.edges)-1]
}

// HighEdges returns the high edge of every channel.
func (t *EnergyChannelTable) HighEdges() []float64 {
	return t.edges[1:]
}

// ChannelOf returns the channel index containing the given energy: the
// rightmost edge not exceeding the value, minus one. Energies below the
// first edge clamp to channel 0 and energies at or above the last edge
// clamp to the top channel, so every hit lands in exactly one channel and
// none is ever dropped.
func (t *EnergyChannelTable) ChannelOf(energy float64) int {
	channel := sort.Search(len(t.edges), func(i int) bool {
		return t.edges[i] > energy
	}) - 1
	if channel < 0 {
		return 0
	}
	if channel >= t.NumChannels() {
		return t.NumChannels() - 1
	}
	return channel
}
