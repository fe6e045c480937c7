package calf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/asllop/calf/parser"
	"github.com/asllop/calf/tokenizer"
)

func TestFormatError(t *testing.T) {
	t.Run("parse error", func(t *testing.T) {
		src := "a = 1\nb = f{1,,2}\n"
		_, err := parser.Build(src, tokenizer.ParseInt64)
		assert.Error(t, err)

		expected := "Error: not expecting a comma at 1:8\n\n> b = f{1,,2}\n>         ^\n"
		assert.Equal(t, expected, FormatError(src, err))
	})

	t.Run("lex error behind tabs", func(t *testing.T) {
		src := "\tx = @\r\n"
		_, err := parser.Build(src, tokenizer.ParseInt64)
		assert.Error(t, err)

		expected := "Error: unrecognized lexeme '@' at 0:5\n\n> \tx = @\n> \t    ^\n"
		assert.Equal(t, expected, FormatError(src, err))
	})

	t.Run("wrapped errors keep their position", func(t *testing.T) {
		_, err := parser.Build("(1", tokenizer.ParseInt64)
		wrapped := fmt.Errorf("build failed: %w", err)

		pos, ok := ErrorPosition(wrapped)
		assert.True(t, ok)
		assert.Equal(t, tokenizer.Position{Row: 0, Col: 2}, pos)
		assert.Contains(t, FormatError("(1", wrapped), ">   ^")
	})

	t.Run("caret at end of line", func(t *testing.T) {
		_, err := parser.Build("1 +", tokenizer.ParseInt64)
		assert.Equal(t, "Error: couldn't parse a valid expression at 0:3\n\n> 1 +\n>    ^\n", FormatError("1 +", err))
	})

	t.Run("no position", func(t *testing.T) {
		assert.Equal(t, "Error: boom", FormatError("x", errors.New("boom")))
	})

	t.Run("row outside the source", func(t *testing.T) {
		err := &parser.ParseError{Message: "far away", Pos: tokenizer.Position{Row: 9, Col: 0}}
		assert.Equal(t, "Error: far away at 9:0", FormatError("x", err))
	})
}
