package simreader

import "fmt"

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

// ErrUnsupportedConstruct is returned when the log uses multi-file or
// included-file records (NF/IN), which this reader does not implement.
type ErrUnsupportedConstruct struct {
	Key  string
	Line int
}

func (e *ErrUnsupportedConstruct) Error() string {
	return fmt.Sprintf("unsupported construct %q at line %d", e.Key, e.Line)
}

// ErrMissingRequiredField is returned when a full scan of the log never
// produced one of the required global records (TB, TE or TS).
type ErrMissingRequiredField struct {
	Key string
}

func (e *ErrMissingRequiredField) Error() string {
	return fmt.Sprintf("missing required field %q in simulation log", e.Key)
}

// ErrUnknownDetector is returned when a hit's coordinate pair is not present
// in the detector map.
type ErrUnknownDetector struct {
	Coordinate string
	Line       int
}

func (e *ErrUnknownDetector) Error() string {
	return fmt.Sprintf("unknown detector coordinate %q at line %d", e.Coordinate, e.Line)
}

// ErrMalformedRecord is returned when a recognized record has fewer fields
// than required or a field that does not parse.
type ErrMalformedRecord struct {
	Key  string
	Line int
	Err  error
}

func (e *ErrMalformedRecord) Error() string {
	return fmt.Sprintf("malformed %q record at line %d: %v", e.Key, e.Line, e.Err)
}

// ErrBadEdges is returned when an energy channel edge table is not strictly
// increasing or has fewer than two edges.
type ErrBadEdges struct {
	Reason string
}

func (e *ErrBadEdges) Error() string {
	return fmt.Sprintf("invalid energy channel edges: %s", e.Reason)
}

// ErrCreateGroup represents an error when creating a group.
type ErrCreateGroup struct {
	GroupName string
	Err       error
}

func (e *ErrCreateGroup) Error() string {
	return fmt.Sprintf("error creating group %q: %v", e.GroupName, e.Err)
}

// ErrCreateTable represents an error when creating a table.
type ErrCreateTable struct {
	TableName string
	Err       error
}

func (e *ErrCreateTable) Error() string {
	return fmt.Sprintf("error creating table %q: %v", e.TableName, e.Err)
}
