package record

import (
	"fmt"
	"strconv"
)

// Type is the Intel HEX record type tag.
type Type uint8

const (
	TypeData                   Type = 0x00
	TypeEOF                    Type = 0x01
	TypeExtendedSegmentAddress Type = 0x02
	TypeStartSegmentAddress    Type = 0x03
	TypeExtendedLinearAddress  Type = 0x04
	TypeStartLinearAddress     Type = 0x05
)

const (
	marker       = ':'
	offsetCount  = 1
	offsetAddr   = 3
	offsetType   = 7
	offsetData   = 9
	checksumSize = 2
)

// Record is a single decoded Intel HEX line.
type Record struct {
	Raw       string
	ByteCount byte
	Address   uint16
	Type      Type
	Data      []byte
	// Checksum is the text following the data region. It is never validated
	// and may be shorter than two characters on a truncated line.
	Checksum string
}

// FormatError reports a line that cannot be decoded into a Record.
type FormatError struct {
	Line  int // 1-based input line, 0 when unknown
	Field string
	Msg   string
}

func (e *FormatError) Error() string {
	prefix := "invalid hex format"
	if e.Line > 0 {
		prefix = fmt.Sprintf("%s at line %d", prefix, e.Line)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", prefix, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Msg)
}

// Decode parses one Intel HEX line. The checksum is extracted but not checked.
func Decode(line string) (Record, error) {
	if len(line) == 0 || line[0] != marker {
		return Record{}, &FormatError{Msg: "missing record marker"}
	}
	count, err := hexField(line, offsetCount, 2, "byte count")
	if err != nil {
		return Record{}, err
	}
	addr, err := hexField(line, offsetAddr, 4, "address")
	if err != nil {
		return Record{}, err
	}
	typ, err := hexField(line, offsetType, 2, "record type")
	if err != nil {
		return Record{}, err
	}

	data := make([]byte, count)
	for i := range data {
		b, err := hexField(line, offsetData+2*i, 2, "data byte")
		if err != nil {
			ferr := err.(*FormatError)
			ferr.Field = fmt.Sprintf("data byte %d", i)
			return Record{}, ferr
		}
		data[i] = byte(b)
	}

	end := offsetData + 2*int(count)
	sum := ""
	if end < len(line) {
		sum = line[end:min(end+checksumSize, len(line))]
	}

	return Record{
		Raw:       line,
		ByteCount: byte(count),
		Address:   uint16(addr),
		Type:      Type(typ),
		Data:      data,
		Checksum:  sum,
	}, nil
}

// IsData reports whether r carries payload bytes.
func (r Record) IsData() bool { return r.Type == TypeData }

// ComputeChecksum returns the two's-complement checksum of the record fields.
func (r Record) ComputeChecksum() byte {
	sum := r.ByteCount + byte(r.Address>>8) + byte(r.Address) + byte(r.Type)
	for _, b := range r.Data {
		sum += b
	}
	return -sum
}

func hexField(line string, offset, width int, field string) (uint64, error) {
	if offset+width > len(line) {
		return 0, &FormatError{Field: field, Msg: fmt.Sprintf("line too short (need %d chars, have %d)", offset+width, len(line))}
	}
	v, err := strconv.ParseUint(line[offset:offset+width], 16, width*4)
	if err != nil {
		return 0, &FormatError{Field: field, Msg: fmt.Sprintf("%q is not hex", line[offset:offset+width])}
	}
	return v, nil
}
