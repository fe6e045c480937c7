package parser

import (
	"errors"
	"fmt"

	"github.com/asllop/calf/tokenizer"
)

// Sentinel errors
var (
	ErrInvalidAssignTarget    = errors.New("invalid identifier for assignment")
	ErrNoProgress             = errors.New("statement consumed no tokens")
	ErrExpectedColon          = errors.New("expected a colon operator")
	ErrUnexpectedComma        = errors.New("not expecting a comma")
	ErrExpectedComma          = errors.New("expecting a comma")
	ErrUnexpectedEOF          = errors.New("unexpected end of input")
	ErrExpectedParameter      = errors.New("expecting a parameter")
	ErrExpectedClosingParen   = errors.New("expected a closing parenthesis after expression")
	ErrExpectedClosingBracket = errors.New("expected a closing bracket")
	ErrInvalidExpression      = errors.New("couldn't parse a valid expression")
)

// ParseError is a grammar violation found at Pos.
type ParseError struct {
	Message string
	Pos     tokenizer.Position
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Position returns where the error was found.
func (e *ParseError) Position() tokenizer.Position {
	return e.Pos
}

func newParseError(pos tokenizer.Position, err error) *ParseError {
	return &ParseError{Message: err.Error(), Pos: pos, Err: err}
}
