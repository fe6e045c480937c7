package tokenizer

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var doubleParticles = map[string]Kind{
	"<=": LESS_EQUAL,
	">=": GREATER_EQUAL,
	"==": EQUAL,
	"!=": NOT_EQUAL,
	"&&": AND,
	"||": OR,
	"..": DOUBLE_DOT,
}

var singleParticles = map[byte]Kind{
	'(': OPENED_PARENS,
	')': CLOSED_PARENS,
	'[': OPENED_BRACKET,
	']': CLOSED_BRACKET,
	'{': OPENED_BRACE,
	'}': CLOSED_BRACE,
	',': COMMA,
	'?': QUESTION,
	':': COLON,
	';': SEMICOLON,
	'+': PLUS,
	'-': MINUS,
	'*': MULTIPLY,
	'/': DIVIDE,
	'%': PERCENT,
	'<': LESS_THAN,
	'>': GREATER_THAN,
	'&': AMPERSAND,
	'|': PIPE,
	'!': NOT,
	'=': ASSIGN,
	'.': DOT,
	'#': SHARP,
}

// Scan reads one token from the head of code, which starts at pos.
// It returns the token, the text left after it and the position where that text starts.
// When code holds nothing but blanks, the token is an EOF lexeme and no error is returned.
func Scan[T any](code string, pos Position, parse NumberParser[T]) (Token[T], string, Position, error) {
	blanks := 0
	for blanks < len(code) && (code[blanks] == ' ' || code[blanks] == '\t') {
		blanks++
	}

	pos = Advance(pos, code[:blanks])
	code = code[blanks:]

	if code == "" {
		return Token[T]{Lexeme: Lexeme[T]{Type: EOFLexeme}, Pos: pos}, "", pos, nil
	}

	switch {
	case strings.HasPrefix(code, "\r\n"):
		return emit(Lexeme[T]{Type: SkipLexeme}, code, 2, pos)
	case code[0] == '\n':
		return emit(Lexeme[T]{Type: SkipLexeme}, code, 1, pos)
	case strings.HasPrefix(code, "//"):
		return emit(Lexeme[T]{Type: SkipLexeme}, code, commentLength(code), pos)
	case isDigit(code[0]) || (code[0] == '-' && len(code) > 1 && isDigit(code[1])):
		return scanNumber(code, pos, parse)
	}

	r, size := utf8.DecodeRuneInString(code)
	if isIdentStart(r) {
		return scanIdent[T](code, pos)
	}

	if len(code) >= 2 {
		if kind, ok := doubleParticles[code[:2]]; ok {
			return emit(Lexeme[T]{Type: ParticleLexeme, Kind: kind}, code, 2, pos)
		}
	}

	if kind, ok := singleParticles[code[0]]; ok {
		return emit(Lexeme[T]{Type: ParticleLexeme, Kind: kind}, code, 1, pos)
	}

	return Token[T]{}, code, pos, &LexError{
		Message: fmt.Sprintf("%s '%s'", ErrUnrecognizedLexeme, code[:size]),
		Pos:     pos,
		Err:     ErrUnrecognizedLexeme,
	}
}

func emit[T any](lexeme Lexeme[T], code string, length int, pos Position) (Token[T], string, Position, error) {
	fragment := code[:length]
	return Token[T]{Lexeme: lexeme, Pos: pos, Text: fragment}, code[length:], Advance(pos, fragment), nil
}

// commentLength returns the length of a line comment, excluding the line break.
func commentLength(code string) int {
	end := strings.IndexByte(code, '\n')
	if end < 0 {
		return len(code)
	}
	if code[end-1] == '\r' {
		end--
	}
	return end
}

// scanNumber reads -?[0-9]+ with an optional fraction .[0-9]+
func scanNumber[T any](code string, pos Position, parse NumberParser[T]) (Token[T], string, Position, error) {
	i := 0
	if code[i] == '-' {
		i++
	}
	for i < len(code) && isDigit(code[i]) {
		i++
	}

	// "1." and "1..2" keep the dot out of the literal
	if i+1 < len(code) && code[i] == '.' && isDigit(code[i+1]) {
		i++
		for i < len(code) && isDigit(code[i]) {
			i++
		}
	}

	text := code[:i]
	n, err := parse(text)
	if err != nil {
		return Token[T]{}, code, pos, &LexError{
			Message: fmt.Sprintf("%s '%s'", ErrInvalidNumber, text),
			Pos:     pos,
			Err:     fmt.Errorf("%w: %w", ErrInvalidNumber, err),
		}
	}

	return emit(Lexeme[T]{Type: NumberLexeme, Number: n}, code, i, pos)
}

func scanIdent[T any](code string, pos Position) (Token[T], string, Position, error) {
	_, size := utf8.DecodeRuneInString(code)
	end := size
	for end < len(code) {
		r, size := utf8.DecodeRuneInString(code[end:])
		if !isIdentPart(r) {
			break
		}
		end += size
	}

	return emit(Lexeme[T]{Type: IdentLexeme, Ident: norm.NFC.String(code[:end])}, code, end, pos)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isAlphabetic follows the Unicode Alphabetic property: L + Nl + Other_Alphabetic
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.Letter, unicode.Nl, unicode.Other_Alphabetic)
}

func isIdentStart(r rune) bool {
	return r == '_' || isAlphabetic(r)
}

// isIdentPart also takes combining marks so decomposed text survives until NFC
func isIdentPart(r rune) bool {
	return isIdentStart(r) || ('0' <= r && r <= '9') || unicode.In(r, unicode.Mn, unicode.Mc)
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	// Start is the position of the first character of the input
	Start Position
	// SkipTrivia drops comments and line breaks from Tokens and AllTokens
	SkipTrivia bool
}

// Tokenizer is a cursor over a source text that scans one token at a time.
type Tokenizer[T any] struct {
	rest    string
	pos     Position
	parse   NumberParser[T]
	options TokenizerOptions
}

// NewTokenizer creates a new Tokenizer
func NewTokenizer[T any](input string, parse NumberParser[T], options ...TokenizerOptions) *Tokenizer[T] {
	var opts TokenizerOptions
	if len(options) > 0 {
		opts = options[0]
	}

	return &Tokenizer[T]{
		rest:    input,
		pos:     opts.Start,
		parse:   parse,
		options: opts,
	}
}

// Next scans the next token and advances the cursor.
// On error the cursor stays where it was. Once the input is exhausted
// every call returns an EOF token.
func (t *Tokenizer[T]) Next() (Token[T], error) {
	token, rest, pos, err := Scan(t.rest, t.pos, t.parse)
	if err != nil {
		return Token[T]{}, err
	}

	t.rest = rest
	t.pos = pos

	return token, nil
}

// Position returns the position of the cursor.
func (t *Tokenizer[T]) Position() Position {
	return t.pos
}

// Tokens returns an iterator over the tokens from the current cursor.
// The final element is either the EOF token or an error.
func (t *Tokenizer[T]) Tokens() iter.Seq2[Token[T], error] {
	return func(yield func(Token[T], error) bool) {
		for {
			token, err := t.Next()
			if err != nil {
				yield(Token[T]{}, err)
				return
			}

			if token.Lexeme.Type == EOFLexeme {
				yield(token, nil)
				return
			}

			if t.options.SkipTrivia && token.Lexeme.Type == SkipLexeme {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, EOF included.
// Tokens scanned before an error are returned along with it.
func (t *Tokenizer[T]) AllTokens() ([]Token[T], error) {
	tokens := make([]Token[T], 0, 64)

	for token, err := range t.Tokens() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}
