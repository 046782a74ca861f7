package extract

import (
	"errors"

	"github.com/d21d3q/hexbuffer/internal/record"
)

// StartAddress is the address of the first data record copied into the
// buffer. Records seen before it are dropped.
const StartAddress uint16 = 0x1000

// State is the accumulator carried across records by Fold.
type State struct {
	Recording bool
	Out       []byte
}

// Step advances the state by one record. Once recording starts it never stops.
func Step(s State, r record.Record) State {
	if !s.Recording && r.IsData() && r.Address == StartAddress {
		s.Recording = true
	}
	if s.Recording && r.IsData() {
		s.Out = append(s.Out, r.Data...)
	}
	return s
}

// Fold runs Step over records in order and returns the collected bytes.
func Fold(records []record.Record) []byte {
	s := State{Out: []byte{}}
	for _, r := range records {
		s = Step(s, r)
	}
	return s.Out
}

// DecodeAll decodes every line and stops at the first malformed one. The
// returned FormatError carries the 1-based line number.
func DecodeAll(lines []string) ([]record.Record, error) {
	records := make([]record.Record, 0, len(lines))
	for i, line := range lines {
		r, err := record.Decode(line)
		if err != nil {
			var ferr *record.FormatError
			if errors.As(err, &ferr) {
				ferr.Line = i + 1
			}
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Extract decodes lines and returns the data bytes from the record at
// StartAddress onward.
func Extract(lines []string) ([]byte, error) {
	records, err := DecodeAll(lines)
	if err != nil {
		return nil, err
	}
	return Fold(records), nil
}
