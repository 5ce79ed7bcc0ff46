package simreader

import (
	"bufio"
	"io"
)

// Record keys used by the simulation log dialect.
const (
	KeyRunStart    = "TB"
	KeyRunStop     = "TE"
	KeyThrown      = "TS"
	KeyStartEvent  = "SE"
	KeyEndEvent    = "EN"
	KeyTime        = "TI"
	KeyHit         = "HT"
	KeyNewFile     = "NF"
	KeyIncludeFile = "IN"
	// KeyEmpty classifies lines shorter than two characters, e.g. the blank
	// separators between event blocks.
	KeyEmpty = ""
)

// Record is one line of the simulation log: the two-character key and the
// remainder of the line, left unsplit for the caller.
type Record struct {
	Key    string
	Fields string
	Line   int
}

// RecordScanner streams records out of a line-oriented simulation log.
// It is single-pass and keeps no line buffered beyond the current one.
type RecordScanner struct {
	scanner *bufio.Scanner
	record  Record
	line    int
}

func NewRecordScanner(r io.Reader) *RecordScanner {
	return &RecordScanner{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next record. It returns false at end of input.
func (s *RecordScanner) Scan() bool {
	if !s.scanner.Scan() {
		return false
	}
	s.line++
	text := s.scanner.Text()
	if len(text) < 2 {
		s.record = Record{Key: KeyEmpty, Line: s.line}
		return true
	}
	s.record = Record{Key: text[:2], Fields: text[2:], Line: s.line}
	return true
}

// Record returns the record produced by the last call to Scan.
func (s *RecordScanner) Record() Record {
	return s.record
}

// Err returns the first error encountered by the underlying reader.
func (s *RecordScanner) Err() error {
	return s.scanner.Err()
}
