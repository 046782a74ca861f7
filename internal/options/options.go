package options

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultOutput is the module file written when no output is given.
const DefaultOutput = "ble-firmware.js"

// Stdio is the path meaning standard input or output.
const Stdio = "-"

// ParseOutput validates the output path, applying DefaultOutput when empty.
func ParseOutput(input string) (string, error) {
	clean := strings.TrimSpace(input)
	if clean == "" {
		return DefaultOutput, nil
	}
	if clean == Stdio {
		return clean, nil
	}
	if strings.HasSuffix(clean, string(filepath.Separator)) {
		return "", fmt.Errorf("output %q is a directory", input)
	}
	return filepath.Clean(clean), nil
}

// ParseInput validates the input path. An empty path reads standard input.
func ParseInput(input string) (string, error) {
	clean := strings.TrimSpace(input)
	if clean == "" {
		return Stdio, nil
	}
	if strings.HasSuffix(clean, string(filepath.Separator)) {
		return "", fmt.Errorf("input %q is a directory", input)
	}
	return clean, nil
}
