package hexbuffer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/d21d3q/hexbuffer/internal/extract"
	"github.com/d21d3q/hexbuffer/internal/module"
	"github.com/d21d3q/hexbuffer/internal/source"
)

// StartAddress is the memory offset the extracted buffer begins at.
const StartAddress = extract.StartAddress

// Result captures the outcome of Extract.
type Result struct {
	Lines int
	Bytes []byte
}

// String renders a human-readable summary of the result.
func (r Result) String() string {
	summary := map[string]any{
		"lines":         r.Lines,
		"byte_count":    len(r.Bytes),
		"start_address": fmt.Sprintf("0x%04X", StartAddress),
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("lines:%d bytes:%d (marshal error: %v)", r.Lines, len(r.Bytes), err)
	}
	return string(data)
}

// Extract reads Intel HEX text from r and returns the buffer that starts at
// StartAddress.
func Extract(ctx context.Context, r io.Reader) (Result, error) {
	lines, err := source.ReadLines(r)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	buf, err := extract.Extract(lines)
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: len(lines), Bytes: buf}, nil
}

// Convert extracts the buffer from r and writes it to w as a Node.js module.
func Convert(ctx context.Context, r io.Reader, w io.Writer) (Result, error) {
	result, err := Extract(ctx, r)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := WriteModule(w, result.Bytes); err != nil {
		return result, err
	}
	return result, nil
}

// WriteModule writes buf as "module.exports=[...];".
func WriteModule(w io.Writer, buf []byte) error {
	if err := module.Write(w, buf); err != nil {
		return fmt.Errorf("write module: %w", err)
	}
	return nil
}
