package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LoadText returns a testdata file as a string.
func LoadText(t *testing.T, rel string) string {
	t.Helper()
	return string(readTestdata(t, rel))
}

// LoadLines returns the non-empty, trimmed lines of a testdata file.
func LoadLines(t *testing.T, rel string) []string {
	t.Helper()
	var lines []string
	for _, line := range strings.Split(LoadText(t, rel), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Open opens a testdata file and closes it when the test ends.
func Open(t *testing.T, rel string) *os.File {
	t.Helper()
	f, err := os.Open(locate(t, rel))
	if err != nil {
		t.Fatalf("open %s: %v", rel, err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	data, err := os.ReadFile(locate(t, rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return data
}

func locate(t *testing.T, rel string) string {
	t.Helper()
	candidates := []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return ""
}
