package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnrecognizedLexeme = errors.New("unrecognized lexeme")
	ErrInvalidNumber      = errors.New("invalid number literal")
)

// Kind represents the kind of a token.
// Particle kinds double as operator tags in the AST.
type Kind int

const (
	ILLEGAL Kind = iota

	// Classification kinds for lookahead queries
	INT   // integer literal
	FLOAT // float literal
	IDENT // identifier

	// Punctuation
	OPENED_PARENS  // (
	CLOSED_PARENS  // )
	OPENED_BRACKET // [
	CLOSED_BRACKET // ]
	OPENED_BRACE   // {
	CLOSED_BRACE   // }
	COMMA          // ,
	QUESTION       // ?
	COLON          // :
	SEMICOLON      // ;

	// Arithmetic operators
	PLUS     // +
	MINUS    // -
	MULTIPLY // *
	DIVIDE   // /
	PERCENT  // %

	// Comparison operators
	LESS_THAN     // <
	GREATER_THAN  // >
	LESS_EQUAL    // <=
	GREATER_EQUAL // >=
	EQUAL         // ==
	NOT_EQUAL     // !=

	// Bitwise and logical operators
	AMPERSAND // &
	AND       // &&
	PIPE      // |
	OR        // ||
	NOT       // !

	// Others
	ASSIGN     // =
	DOT        // .
	DOUBLE_DOT // ..
	SHARP      // #
)

var kindTable = [...]struct {
	name   string
	symbol string
}{
	ILLEGAL:        {"ILLEGAL", ""},
	INT:            {"INT", ""},
	FLOAT:          {"FLOAT", ""},
	IDENT:          {"IDENT", ""},
	OPENED_PARENS:  {"OPENED_PARENS", "("},
	CLOSED_PARENS:  {"CLOSED_PARENS", ")"},
	OPENED_BRACKET: {"OPENED_BRACKET", "["},
	CLOSED_BRACKET: {"CLOSED_BRACKET", "]"},
	OPENED_BRACE:   {"OPENED_BRACE", "{"},
	CLOSED_BRACE:   {"CLOSED_BRACE", "}"},
	COMMA:          {"COMMA", ","},
	QUESTION:       {"QUESTION", "?"},
	COLON:          {"COLON", ":"},
	SEMICOLON:      {"SEMICOLON", ";"},
	PLUS:           {"PLUS", "+"},
	MINUS:          {"MINUS", "-"},
	MULTIPLY:       {"MULTIPLY", "*"},
	DIVIDE:         {"DIVIDE", "/"},
	PERCENT:        {"PERCENT", "%"},
	LESS_THAN:      {"LESS_THAN", "<"},
	GREATER_THAN:   {"GREATER_THAN", ">"},
	LESS_EQUAL:     {"LESS_EQUAL", "<="},
	GREATER_EQUAL:  {"GREATER_EQUAL", ">="},
	EQUAL:          {"EQUAL", "=="},
	NOT_EQUAL:      {"NOT_EQUAL", "!="},
	AMPERSAND:      {"AMPERSAND", "&"},
	AND:            {"AND", "&&"},
	PIPE:           {"PIPE", "|"},
	OR:             {"OR", "||"},
	NOT:            {"NOT", "!"},
	ASSIGN:         {"ASSIGN", "="},
	DOT:            {"DOT", "."},
	DOUBLE_DOT:     {"DOUBLE_DOT", ".."},
	SHARP:          {"SHARP", "#"},
}

// String returns the string representation of Kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindTable) {
		return "UNKNOWN"
	}
	return kindTable[k].name
}

// Symbol returns how the kind is spelled in source code.
// Classification kinds have no fixed spelling and return their name.
func (k Kind) Symbol() string {
	if k < 0 || int(k) >= len(kindTable) {
		return "?"
	}
	if kindTable[k].symbol == "" {
		return kindTable[k].name
	}
	return kindTable[k].symbol
}

// LexemeType tells which field of a Lexeme is meaningful.
type LexemeType int

const (
	NumberLexeme LexemeType = iota
	IdentLexeme
	ParticleLexeme
	SkipLexeme // comment or line break
	EOFLexeme
)

func (t LexemeType) String() string {
	switch t {
	case NumberLexeme:
		return "NUMBER"
	case IdentLexeme:
		return "IDENT"
	case ParticleLexeme:
		return "PARTICLE"
	case SkipLexeme:
		return "SKIP"
	case EOFLexeme:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Lexeme is the classified payload of a token.
type Lexeme[T any] struct {
	Type   LexemeType
	Number T      // NumberLexeme
	Ident  string // IdentLexeme
	Kind   Kind   // ParticleLexeme
}

// Token represents a token
type Token[T any] struct {
	Lexeme Lexeme[T]
	Pos    Position
	// Text is the source fragment the token was scanned from
	Text string
}

// Is reports whether the token answers a lookahead query for kind.
// Numbers match both INT and FLOAT.
func (t Token[T]) Is(kind Kind) bool {
	switch t.Lexeme.Type {
	case NumberLexeme:
		return kind == INT || kind == FLOAT
	case IdentLexeme:
		return kind == IDENT
	case ParticleLexeme:
		return kind == t.Lexeme.Kind
	default:
		return false
	}
}

// String returns the string representation of Token
func (t Token[T]) String() string {
	name := t.Lexeme.Type.String()
	if t.Lexeme.Type == ParticleLexeme {
		name = t.Lexeme.Kind.String()
	}
	return fmt.Sprintf("%s: %q (%s)", name, t.Text, t.Pos)
}

// LexError is returned when the leading fragment matches no lexical rule.
type LexError struct {
	Message string
	Pos     Position
	Err     error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// Position returns where the error was found.
func (e *LexError) Position() Position {
	return e.Pos
}
