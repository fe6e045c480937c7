package testhelper

import (
	"strings"
	"testing"
)

// TrimIndent turns an indented raw string into source text.
// The first line break, the trailing blank line and the indent shared by
// every non-blank line are removed. Tabs inside the text are kept, since
// they move tokens one column like any other blank.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) > 1 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if n := len(lines); n > 1 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	indent := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first || len(lead) < len(indent) {
			indent = lead
			first = false
		}
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}

	return strings.Join(lines, "\n") + "\n"
}
