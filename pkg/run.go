package simreader

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// SimulationRun holds the parsed content of one simulation log, or the
// result of merging two runs. A run owns its hits exclusively; Merge never
// aliases hits from its operand.
type SimulationRun struct {
	TStart  float64 // seconds
	TStop   float64 // seconds
	NThrown int64   // particles thrown by the simulator
	Hits    []Hit
}

// Parse states for the event-block machine.
type parseState int

const (
	stateOutside parseState = iota
	stateInsideEvent
)

// OpenRun parses one simulation log into a run. The shift is added to every
// timestamp, including the run bounds. Every coordinate pair in the log must
// resolve through the detector map.
//
// The log's required global records are TB (start time), TE (stop time) and
// TS (thrown count); a scan that ends without all three fails. NF and IN
// records abort the parse immediately. An event block left open at end of
// input is accepted, keeping the hits collected so far.
func OpenRun(r io.Reader, detectors DetectorMap, shift float64) (*SimulationRun, error) {
	run := &SimulationRun{}

	var seenStart, seenStop, seenThrown bool
	state := stateOutside
	currentTime := shift

	scanner := NewRecordScanner(r)
	for scanner.Scan() {
		rec := scanner.Record()
		switch rec.Key {
		case KeyRunStart:
			v, err := parseFloatField(rec)
			if err != nil {
				return nil, err
			}
			run.TStart = v + shift
			seenStart = true
		case KeyRunStop:
			v, err := parseFloatField(rec)
			if err != nil {
				return nil, err
			}
			run.TStop = v + shift
			seenStop = true
		case KeyThrown:
			v, err := parseIntField(rec)
			if err != nil {
				return nil, err
			}
			run.NThrown = v
			seenThrown = true
		case KeyNewFile, KeyIncludeFile:
			return nil, &ErrUnsupportedConstruct{Key: rec.Key, Line: rec.Line}
		case KeyStartEvent:
			state = stateInsideEvent
		case KeyEndEvent:
			state = stateOutside
		case KeyTime:
			if state != stateInsideEvent {
				continue
			}
			v, err := parseFloatField(rec)
			if err != nil {
				return nil, err
			}
			currentTime = v + shift
		case KeyHit:
			if state != stateInsideEvent {
				continue
			}
			hit, err := extractHit(rec, detectors, currentTime)
			if err != nil {
				return nil, err
			}
			run.Hits = append(run.Hits, hit)
		}
		// Anything else, including blank lines, is ignored.
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	switch {
	case !seenStart:
		return nil, &ErrMissingRequiredField{Key: KeyRunStart}
	case !seenStop:
		return nil, &ErrMissingRequiredField{Key: KeyRunStop}
	case !seenThrown:
		return nil, &ErrMissingRequiredField{Key: KeyThrown}
	}

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Parsed run: tstart=%g s, tstop=%g s, thrown=%d, hits=%d",
			run.TStart, run.TStop, run.NThrown, len(run.Hits))
		logger.Info(message, "run")
	}
	return run, nil
}

// OpenRunFile is OpenRun over a log file on disk.
func OpenRunFile(filename string, detectors DetectorMap, shift float64) (*SimulationRun, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	defer file.Close()
	return OpenRun(file, detectors, shift)
}

// extractHit reads an HT record. The record is semicolon-delimited; the 2nd,
// 3rd and 5th fields after the key are the x coordinate, y coordinate and
// deposited energy in keV.
func extractHit(rec Record, detectors DetectorMap, currentTime float64) (Hit, error) {
	parts := strings.Split(rec.Fields, ";")
	if len(parts) < 5 {
		err := fmt.Errorf("got %d fields, want at least 5", len(parts))
		return Hit{}, &ErrMalformedRecord{Key: rec.Key, Line: rec.Line, Err: err}
	}
	coordinate := coordinateKey(parts[1], parts[2])
	detector, ok := detectors[coordinate]
	if !ok {
		return Hit{}, &ErrUnknownDetector{Coordinate: coordinate, Line: rec.Line}
	}
	energy, err := strconv.ParseFloat(strings.TrimSpace(parts[4]), 64)
	if err != nil {
		return Hit{}, &ErrMalformedRecord{Key: rec.Key, Line: rec.Line, Err: err}
	}
	return Hit{Detector: detector, Time: currentTime, Energy: energy}, nil
}

// Merge combines other into the receiver, adding shift to every quantity
// drawn from other. Bounds extend to cover both runs, thrown counts sum, and
// the combined hits are sorted by ascending time. The sort is stable, so
// hits with equal timestamps keep their relative order. New hit values are
// constructed for other's hits; other is left untouched.
//
// This is the only place global time ordering across runs is established.
func (run *SimulationRun) Merge(other *SimulationRun, shift float64) {
	run.TStart = min(run.TStart, other.TStart+shift)
	run.TStop = max(run.TStop, other.TStop+shift)
	run.NThrown += other.NThrown

	for _, hit := range other.Hits {
		run.Hits = append(run.Hits, Hit{
			Detector: hit.Detector,
			Time:     hit.Time + shift,
			Energy:   hit.Energy,
		})
	}
	sort.SliceStable(run.Hits, func(i, j int) bool {
		return run.Hits[i].Time < run.Hits[j].Time
	})

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Merged run: tstart=%g s, tstop=%g s, thrown=%d, hits=%d",
			run.TStart, run.TStop, run.NThrown, len(run.Hits))
		logger.Info(message, "run")
	}
}

func parseFloatField(rec Record) (float64, error) {
	fields := strings.Fields(rec.Fields)
	if len(fields) == 0 {
		err := fmt.Errorf("missing value")
		return 0, &ErrMalformedRecord{Key: rec.Key, Line: rec.Line, Err: err}
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, &ErrMalformedRecord{Key: rec.Key, Line: rec.Line, Err: err}
	}
	return v, nil
}

func parseIntField(rec Record) (int64, error) {
	fields := strings.Fields(rec.Fields)
	if len(fields) == 0 {
		err := fmt.Errorf("missing value")
		return 0, &ErrMalformedRecord{Key: rec.Key, Line: rec.Line, Err: err}
	}
	v, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, &ErrMalformedRecord{Key: rec.Key, Line: rec.Line, Err: err}
	}
	return v, nil
}
