package simreader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEventStream(t *testing.T) {
	table, err := NewEnergyChannelTable([]float64{4.5, 10, 100, 2000})
	require.NoError(t, err)

	run := &SimulationRun{
		TStart: -5, TStop: 10, NThrown: 200,
		Hits: []Hit{
			{Detector: "q0", Time: -3.5, Energy: 3.0},
			{Detector: "q1", Time: 1.5, Energy: 50.0},
			{Detector: "q2", Time: 2.0, Energy: 5000.0},
		},
	}

	stream := BuildEventStream(run, table)

	// One event per hit, in hit order, times unchanged.
	require.Equal(t, len(run.Hits), stream.NumEvents())
	assert.Equal(t, []float64{-3.5, 1.5, 2.0}, stream.Time)
	assert.Equal(t, []int32{0, 1, 2}, stream.Channel)

	assert.Equal(t, 3, stream.NumChannels())
	assert.Equal(t, []float64{4.5, 10, 100}, stream.ELow)
	assert.Equal(t, []float64{10, 100, 2000}, stream.EHigh)
}

func TestOpenMergeBuild_EndToEnd(t *testing.T) {
	table, err := NewEnergyChannelTable([]float64{4.5, 10, 100, 2000})
	require.NoError(t, err)

	signal, err := OpenRun(strings.NewReader(singleHitLog), testDetectors, 0)
	require.NoError(t, err)
	background, err := OpenRun(strings.NewReader(singleHitLog), testDetectors, 0)
	require.NoError(t, err)

	signal.Merge(background, -5)
	stream := BuildEventStream(signal, table)

	require.Equal(t, len(signal.Hits), stream.NumEvents())
	assert.Equal(t, []float64{-3.5, 1.5}, stream.Time)
	assert.Equal(t, []int32{1, 1}, stream.Channel)
}

func TestBuildEventStream_EmptyRun(t *testing.T) {
	table, err := NewEnergyChannelTable([]float64{4.5, 2000})
	require.NoError(t, err)

	stream := BuildEventStream(&SimulationRun{TStart: 0, TStop: 10, NThrown: 100}, table)

	assert.Equal(t, 0, stream.NumEvents())
	assert.Equal(t, 1, stream.NumChannels())
}
