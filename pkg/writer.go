package simreader

import (
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"
)

// Writer persists a merged run and its channelized event stream to an HDF5
// file: /Run/runInfo (bounds and thrown count), /Run/events (time and
// channel per event) and /Energies/channels (the edge table).
type Writer struct {
	File          *hdf5.File
	Filename      string
	RunGroup      *hdf5.Group
	EnergiesGroup *hdf5.Group
	RunInfoTable  *hdf5.Dataset
	EventTable    *hdf5.Dataset
	ChannelTable  *hdf5.Dataset
}

func NewWriter(filename string) (*Writer, error) {
	writer := &Writer{Filename: filename}

	var err error
	if writer.File, err = openFile(filename); err != nil {
		return nil, err
	}
	if writer.RunGroup, err = createGroup(writer.File, "Run"); err != nil {
		return nil, err
	}
	if writer.EnergiesGroup, err = createGroup(writer.File, "Energies"); err != nil {
		return nil, err
	}
	if writer.RunInfoTable, err = createTable(writer.RunGroup, "runInfo", RunInfoHDF5{}); err != nil {
		return nil, err
	}
	if writer.EventTable, err = createTable(writer.RunGroup, "events", EventDataHDF5{}); err != nil {
		return nil, err
	}
	if writer.ChannelTable, err = createTable(writer.EnergiesGroup, "channels", ChannelDataHDF5{}); err != nil {
		return nil, err
	}

	if configuration.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Created output file %s", filename), "writer")
	}
	return writer, nil
}

// WriteRun persists the run bounds and thrown count, the channel edge table
// and every event of the stream.
func (w *Writer) WriteRun(run *SimulationRun, stream *EventStream) error {
	info := RunInfoHDF5{
		tstart:  run.TStart,
		tstop:   run.TStop,
		nthrown: run.NThrown,
	}
	if err := writeEntryToTable(w.RunInfoTable, info); err != nil {
		return err
	}

	channels := make([]ChannelDataHDF5, stream.NumChannels())
	for i := range channels {
		channels[i] = ChannelDataHDF5{
			channel: int32(i),
			elow:    stream.ELow[i],
			ehigh:   stream.EHigh[i],
		}
	}
	if err := writeArrayToTable(w.ChannelTable, &channels); err != nil {
		return err
	}

	events := make([]EventDataHDF5, stream.NumEvents())
	for i := range events {
		events[i] = EventDataHDF5{
			time:    stream.Time[i],
			channel: stream.Channel[i],
		}
	}
	if err := writeArrayToTable(w.EventTable, &events); err != nil {
		return err
	}

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Wrote %d events in %d channels to %s",
			stream.NumEvents(), stream.NumChannels(), w.Filename)
		logger.Info(message, "writer")
	}
	return nil
}

func (w *Writer) Close() {
	w.RunInfoTable.Close()
	w.EventTable.Close()
	w.ChannelTable.Close()
	w.RunGroup.Close()
	w.EnergiesGroup.Close()
	w.File.Close()
}
