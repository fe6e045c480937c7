package tokenizer

import (
	"fmt"
	"unicode/utf8"
)

// Position represents a position in the source code.
// Row and Col are 0-based; Col counts runes, not bytes.
type Position struct {
	Row int
	Col int
}

// String returns the position as "row:col"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Advance returns the position that follows fragment when it starts at pos.
// A line terminator moves to the first column of the next row.
func Advance(pos Position, fragment string) Position {
	if isNewline(fragment) {
		return Position{Row: pos.Row + 1, Col: 0}
	}

	return Position{Row: pos.Row, Col: pos.Col + utf8.RuneCountInString(fragment)}
}

func isNewline(fragment string) bool {
	return fragment == "\n" || fragment == "\r\n"
}
