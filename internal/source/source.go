package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadLines reads the whole input and returns one entry per non-empty line.
// Only the text before the first space is kept, so trailing comments or
// padding after a record are ignored.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		field, _, _ := strings.Cut(line, " ")
		if field == "" {
			continue
		}
		lines = append(lines, field)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
