package parser

import (
	"log/slog"

	"github.com/asllop/calf/tokenizer"
)

// Lookahead is a FIFO of tokens fetched ahead of the parser.
// Comments and line breaks never enter the buffer, and nothing is
// fetched after the end of input.
type Lookahead[T any] struct {
	source   *tokenizer.Tokenizer[T]
	buffer   []tokenizer.Token[T]
	eof      bool
	consumed int
	logger   *slog.Logger
}

func NewLookahead[T any](source *tokenizer.Tokenizer[T], logger *slog.Logger) *Lookahead[T] {
	if logger == nil {
		logger = discardLogger
	}

	return &Lookahead[T]{
		source: source,
		buffer: make([]tokenizer.Token[T], 0, 4),
		logger: logger.With("phase", "lexing"),
	}
}

// fill fetches tokens until n are buffered or the input is exhausted.
func (l *Lookahead[T]) fill(n int) error {
	for len(l.buffer) < n && !l.eof {
		token, err := l.source.Next()
		if err != nil {
			return err
		}

		switch token.Lexeme.Type {
		case tokenizer.SkipLexeme:
			continue
		case tokenizer.EOFLexeme:
			l.eof = true
			l.logger.Debug("end of input", "pos", token.Pos.String())
		default:
			l.logger.Debug("fetched", "token", token.String())
			l.buffer = append(l.buffer, token)
		}
	}

	return nil
}

// HasKind reports whether the token at offset answers to kind.
// Offsets past the end of input answer false.
func (l *Lookahead[T]) HasKind(kind tokenizer.Kind, offset int) (bool, error) {
	token, ok, err := l.Peek(offset)
	if err != nil || !ok {
		return false, err
	}
	return token.Is(kind), nil
}

// HasIdent reports whether the token at offset is the identifier name.
func (l *Lookahead[T]) HasIdent(name string, offset int) (bool, error) {
	token, ok, err := l.Peek(offset)
	if err != nil || !ok {
		return false, err
	}
	return token.Lexeme.Type == tokenizer.IdentLexeme && token.Lexeme.Ident == name, nil
}

// Peek returns the token at offset without consuming it.
// The boolean is false when the input ends before offset or offset is negative.
func (l *Lookahead[T]) Peek(offset int) (tokenizer.Token[T], bool, error) {
	if offset < 0 {
		return tokenizer.Token[T]{}, false, nil
	}
	if err := l.fill(offset + 1); err != nil {
		return tokenizer.Token[T]{}, false, err
	}
	if offset >= len(l.buffer) {
		return tokenizer.Token[T]{}, false, nil
	}
	return l.buffer[offset], true, nil
}

// Next removes and returns the oldest buffered token.
// It never fetches; the boolean is false when the buffer is empty.
func (l *Lookahead[T]) Next() (tokenizer.Token[T], bool) {
	if len(l.buffer) == 0 {
		return tokenizer.Token[T]{}, false
	}

	token := l.buffer[0]
	l.buffer = l.buffer[1:]
	l.consumed++

	return token, true
}

// Len returns the number of buffered tokens.
func (l *Lookahead[T]) Len() int {
	return len(l.buffer)
}

// Consumed returns the number of tokens taken with Next.
func (l *Lookahead[T]) Consumed() int {
	return l.consumed
}

// Exhausted reports whether no token is left before the end of input.
func (l *Lookahead[T]) Exhausted() (bool, error) {
	if err := l.fill(1); err != nil {
		return false, err
	}
	return len(l.buffer) == 0, nil
}
