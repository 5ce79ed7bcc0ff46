package simreader

// Hit is a single detector interaction extracted from a simulation log.
type Hit struct {
	Detector string
	Time     float64 // seconds
	Energy   float64 // keV
}

// EventStream is the final output consumed by timing/spectral analysis:
// one (time, channel) pair per hit, plus the channel edge table.
type EventStream struct {
	Time    []float64 // seconds, in merged-run order
	Channel []int32   // channel index in [0, NumChannels)
	ELow    []float64 // low edge per channel, keV
	EHigh   []float64 // high edge per channel, keV
}

// NumEvents returns the number of events in the stream.
func (s *EventStream) NumEvents() int {
	return len(s.Time)
}

// NumChannels returns the number of energy channels in the stream's table.
func (s *EventStream) NumChannels() int {
	return len(s.ELow)
}
