package hexbuffer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/marcinbor85/gohex"

	"github.com/d21d3q/hexbuffer/internal/extract"
	"github.com/d21d3q/hexbuffer/internal/source"
)

// VerifyReport describes a strict parse of an Intel HEX image.
type VerifyReport struct {
	Segments []gohex.DataSegment
	// Segment is the contiguous data from StartAddress to the end of the
	// segment holding it.
	Segment []byte
	Found   bool
	// Matches is true when Segment equals the buffer Extract produces.
	Matches bool
}

// Verify parses the image with checksum, record and EOF validation and
// compares it against the lenient extraction.
func Verify(r io.Reader) (VerifyReport, error) {
	lines, err := source.ReadLines(r)
	if err != nil {
		return VerifyReport{}, err
	}
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(strings.NewReader(strings.Join(lines, "\n") + "\n")); err != nil {
		return VerifyReport{}, fmt.Errorf("strict parse: %w", err)
	}
	report := VerifyReport{Segments: mem.GetDataSegments()}
	for _, seg := range report.Segments {
		start := uint32(StartAddress)
		if start >= seg.Address && start < seg.Address+uint32(len(seg.Data)) {
			report.Segment = seg.Data[start-seg.Address:]
			report.Found = true
			break
		}
	}

	buf, err := extract.Extract(lines)
	if err != nil {
		return report, err
	}
	report.Matches = report.Found && bytes.Equal(report.Segment, buf)
	return report, nil
}
