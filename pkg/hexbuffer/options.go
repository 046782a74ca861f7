package hexbuffer

import (
	internalopts "github.com/d21d3q/hexbuffer/internal/options"
)

// ConvertOptions configures the CLI-facing conversion.
type ConvertOptions struct {
	Input  string
	Output string
}

// Resolve returns opts with defaults applied and paths validated.
func (opts ConvertOptions) Resolve() (ConvertOptions, error) {
	in, err := internalopts.ParseInput(opts.Input)
	if err != nil {
		return opts, err
	}
	out, err := internalopts.ParseOutput(opts.Output)
	if err != nil {
		return opts, err
	}
	return ConvertOptions{Input: in, Output: out}, nil
}

// IsStdio reports whether path refers to standard input or output.
func IsStdio(path string) bool {
	return path == internalopts.Stdio
}
