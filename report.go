// Package calf holds the configuration and diagnostics shared by the calf
// command line tools. The language front end lives in the tokenizer, parser
// and ast packages.
package calf

import (
	"bytes"
	"errors"
	"strings"

	"github.com/asllop/calf/tokenizer"
)

// Positioned is implemented by errors that know where in the source they were found.
type Positioned interface {
	error
	Position() tokenizer.Position
}

// ErrorPosition returns the position carried by err or any error it wraps.
func ErrorPosition(err error) (tokenizer.Position, bool) {
	var positioned Positioned
	if !errors.As(err, &positioned) {
		return tokenizer.Position{}, false
	}
	return positioned.Position(), true
}

// FormatError renders err followed by the offending line of src and a caret under the column.
// Errors without a position, or pointing outside src, are rendered alone.
//
//	Error: not expecting a comma at 1:8
//
//	> b = f{1,,2}
//	>         ^
func FormatError(src string, err error) string {
	var buf bytes.Buffer

	buf.WriteString("Error: ")
	buf.WriteString(err.Error())

	pos, ok := ErrorPosition(err)
	if !ok {
		return buf.String()
	}

	lines := strings.Split(src, "\n")
	if pos.Row < 0 || pos.Row >= len(lines) {
		return buf.String()
	}

	line := strings.TrimSuffix(lines[pos.Row], "\r")

	buf.WriteString("\n\n> ")
	buf.WriteString(line)
	buf.WriteString("\n> ")
	buf.WriteString(caretPadding(line, pos.Col))
	buf.WriteString("^\n")

	return buf.String()
}

// caretPadding keeps tabs so the caret lines up with the snippet
func caretPadding(line string, col int) string {
	var pad strings.Builder
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
		i++
	}
	for ; i < col; i++ {
		pad.WriteRune(' ')
	}
	return pad.String()
}
