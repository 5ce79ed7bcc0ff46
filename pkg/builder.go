package simreader

// BuildEventStream channelizes a merged, time-ordered run into the final
// event stream. One output event is emitted per hit, in hit order; times
// pass through unchanged and energies are discretized through the channel
// table.
func BuildEventStream(run *SimulationRun, table *EnergyChannelTable) *EventStream {
	stream := &EventStream{
		Time:    make([]float64, len(run.Hits)),
		Channel: make([]int32, len(run.Hits)),
		ELow:    table.LowEdges(),
		EHigh:   table.HighEdges(),
	}
	for i, hit := range run.Hits {
		stream.Time[i] = hit.Time
		stream.Channel[i] = int32(table.ChannelOf(hit.Energy))
	}
	return stream
}
