// Package parser builds calf syntax trees from source text.
//
// The grammar is parsed by recursive descent, one function per precedence
// level, over a Lookahead buffer fed by the tokenizer.
package parser

import (
	"log/slog"

	"github.com/asllop/calf/ast"
	"github.com/asllop/calf/tokenizer"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Options controls how a buffer is parsed.
type Options struct {
	// Start is the position of the first character of the buffer
	// within a larger document.
	Start tokenizer.Position
	// Logger receives debug traces. Nil discards them.
	Logger *slog.Logger
}

type Option func(*Options)

// WithStart offsets every position by the place the buffer starts at.
func WithStart(pos tokenizer.Position) Option {
	return func(o *Options) {
		o.Start = pos
	}
}

// WithLogger traces fetched tokens and parsed statements at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Parser reads statements one at a time from a source buffer.
type Parser[T any] struct {
	source    *tokenizer.Tokenizer[T]
	lookahead *Lookahead[T]
	logger    *slog.Logger
}

func New[T any](src string, parse tokenizer.NumberParser[T], opts ...Option) *Parser[T] {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	logger := options.Logger
	if logger == nil {
		logger = discardLogger
	}

	source := tokenizer.NewTokenizer(src, parse, tokenizer.TokenizerOptions{Start: options.Start})

	return &Parser[T]{
		source:    source,
		lookahead: NewLookahead(source, logger),
		logger:    logger.With("phase", "parsing"),
	}
}

// Build parses the whole buffer. The first error aborts the build and no tree is returned.
func Build[T any](src string, parse tokenizer.NumberParser[T], opts ...Option) (*ast.AST[T], error) {
	p := New(src, parse, opts...)
	tree := &ast.AST[T]{}

	for {
		done, err := p.Done()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		before := p.lookahead.Consumed()

		stmt, err := p.Statement()
		if err != nil {
			return nil, err
		}

		if p.lookahead.Consumed() == before {
			return nil, newParseError(p.source.Position(), ErrNoProgress)
		}

		tree.Statements = append(tree.Statements, stmt)
	}

	p.logger.Debug("build finished", "statements", len(tree.Statements))

	return tree, nil
}

// Done reports whether the input holds no more statements.
func (p *Parser[T]) Done() (bool, error) {
	return p.lookahead.Exhausted()
}

// Statement parses one assignment or expression statement.
func (p *Parser[T]) Statement() (ast.Stmt[T], error) {
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("statement", "pos", stmt.Pos().String(), "tree", stmt.String())

	return stmt, nil
}

func (p *Parser[T]) statement() (ast.Stmt[T], error) {
	assign, err := p.lookingAt(tokenizer.IDENT, tokenizer.ASSIGN)
	if err != nil {
		return nil, err
	}

	if !assign {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt[T]{Expr: expr}, nil
	}

	target, _, err := p.lookahead.Peek(0)
	if err != nil {
		return nil, err
	}
	if !target.Is(tokenizer.IDENT) {
		return nil, newParseError(target.Pos, ErrInvalidAssignTarget)
	}

	p.lookahead.Next()
	p.lookahead.Next()

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	return &ast.Assign[T]{StartPos: target.Pos, Name: target.Lexeme.Ident, Value: value}, nil
}
