package parser

import (
	"github.com/asllop/calf/ast"
	"github.com/asllop/calf/tokenizer"
)

// Binding levels, loosest first
var (
	equalityOps   = []tokenizer.Kind{tokenizer.EQUAL, tokenizer.NOT_EQUAL}
	comparisonOps = []tokenizer.Kind{tokenizer.GREATER_THAN, tokenizer.LESS_THAN, tokenizer.GREATER_EQUAL, tokenizer.LESS_EQUAL, tokenizer.AND, tokenizer.OR}
	logicOps      = []tokenizer.Kind{tokenizer.AMPERSAND, tokenizer.PIPE}
	termOps       = []tokenizer.Kind{tokenizer.PLUS, tokenizer.MINUS}
	factorOps     = []tokenizer.Kind{tokenizer.MULTIPLY, tokenizer.DIVIDE, tokenizer.PERCENT}
	unaryOps      = []tokenizer.Kind{tokenizer.NOT, tokenizer.MINUS}
)

const lambdaKeyword = "fn"

func (p *Parser[T]) expression() (ast.Expr[T], error) {
	return p.ternary()
}

// cond ? then : else, with both branches parsed as ternaries so chains nest to the right
func (p *Parser[T]) ternary() (ast.Expr[T], error) {
	cond, err := p.equality()
	if err != nil {
		return nil, err
	}

	if _, ok, err := p.accept(tokenizer.QUESTION); err != nil || !ok {
		return cond, err
	}

	then, err := p.ternary()
	if err != nil {
		return nil, err
	}

	if _, ok, err := p.accept(tokenizer.COLON); err != nil {
		return nil, err
	} else if !ok {
		return nil, newParseError(then.Pos(), ErrExpectedColon)
	}

	els, err := p.ternary()
	if err != nil {
		return nil, err
	}

	return &ast.TernaryOp[T]{StartPos: cond.Pos(), Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser[T]) equality() (ast.Expr[T], error) {
	return p.binary(p.comparison, equalityOps)
}

func (p *Parser[T]) comparison() (ast.Expr[T], error) {
	return p.binary(p.logic, comparisonOps)
}

func (p *Parser[T]) logic() (ast.Expr[T], error) {
	return p.binary(p.term, logicOps)
}

func (p *Parser[T]) term() (ast.Expr[T], error) {
	return p.binary(p.factor, termOps)
}

func (p *Parser[T]) factor() (ast.Expr[T], error) {
	return p.binary(p.unary, factorOps)
}

// binary parses a left-associative chain of operands joined by ops.
func (p *Parser[T]) binary(operand func() (ast.Expr[T], error), ops []tokenizer.Kind) (ast.Expr[T], error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		op, ok, err := p.acceptAny(ops)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp[T]{StartPos: left.Pos(), Op: op, Left: left, Right: right}
	}
}

func (p *Parser[T]) unary() (ast.Expr[T], error) {
	op, ok, err := p.acceptAny(unaryOps)
	if err != nil {
		return nil, err
	}
	if !ok {
		return p.call()
	}

	operand, err := p.unary()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryOp[T]{StartPos: operand.Pos(), Op: op, Operand: operand}, nil
}

// f{arg, ...}
func (p *Parser[T]) call() (ast.Expr[T], error) {
	ok, err := p.lookingAt(tokenizer.IDENT, tokenizer.OPENED_BRACE)
	if err != nil {
		return nil, err
	}
	if !ok {
		return p.lambda()
	}

	name, _ := p.lookahead.Next()
	p.lookahead.Next()

	var args []ast.Expr[T]
	err = p.sequence(tokenizer.CLOSED_BRACE, false, func() error {
		arg, err := p.expression()
		if err != nil {
			return err
		}
		args = append(args, arg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ast.Call[T]{StartPos: name.Pos, Func: name.Lexeme.Ident, Args: args}, nil
}

// fn(param, ...) body
func (p *Parser[T]) lambda() (ast.Expr[T], error) {
	keyword, err := p.lookahead.HasIdent(lambdaKeyword, 0)
	if err != nil {
		return nil, err
	}
	parens, err := p.lookahead.HasKind(tokenizer.OPENED_PARENS, 1)
	if err != nil {
		return nil, err
	}
	if !keyword || !parens {
		return p.primary()
	}

	fn, _ := p.lookahead.Next()
	p.lookahead.Next()

	params := []string{}
	err = p.sequence(tokenizer.CLOSED_PARENS, false, func() error {
		param, ok, err := p.accept(tokenizer.IDENT)
		if err != nil {
			return err
		}
		if !ok {
			return newParseError(p.here(), ErrExpectedParameter)
		}
		params = append(params, param.Lexeme.Ident)
		return nil
	})
	if err != nil {
		return nil, err
	}

	body, err := p.expression()
	if err != nil {
		return nil, err
	}

	return &ast.Lambda[T]{StartPos: fn.Pos, Params: params, Body: body}, nil
}

func (p *Parser[T]) primary() (ast.Expr[T], error) {
	token, ok, err := p.lookahead.Peek(0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newParseError(p.source.Position(), ErrInvalidExpression)
	}

	switch {
	case token.Lexeme.Type == tokenizer.NumberLexeme:
		p.lookahead.Next()
		return &ast.Number[T]{StartPos: token.Pos, Value: token.Lexeme.Number}, nil

	case token.Lexeme.Type == tokenizer.IdentLexeme:
		p.lookahead.Next()
		return &ast.Identifier[T]{StartPos: token.Pos, Name: token.Lexeme.Ident}, nil

	case token.Is(tokenizer.OPENED_PARENS):
		p.lookahead.Next()
		return p.group(token)

	case token.Is(tokenizer.OPENED_BRACKET):
		p.lookahead.Next()
		return p.bracket(token)
	}

	return nil, newParseError(p.source.Position(), ErrInvalidExpression)
}

// (expr)
func (p *Parser[T]) group(open tokenizer.Token[T]) (ast.Expr[T], error) {
	inner, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, ok, err := p.accept(tokenizer.CLOSED_PARENS); err != nil {
		return nil, err
	} else if !ok {
		return nil, newParseError(p.here(), ErrExpectedClosingParen)
	}

	return &ast.Group[T]{StartPos: open.Pos, Inner: inner}, nil
}

// [a, b, ...] or [start; length] or [start; length; step]
func (p *Parser[T]) bracket(open tokenizer.Token[T]) (ast.Expr[T], error) {
	if _, ok, err := p.accept(tokenizer.CLOSED_BRACKET); err != nil {
		return nil, err
	} else if ok {
		return &ast.List[T]{StartPos: open.Pos, Values: []ast.Expr[T]{}}, nil
	}

	first, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, ok, err := p.accept(tokenizer.SEMICOLON); err != nil {
		return nil, err
	} else if ok {
		return p.rangeTail(open, first)
	}

	values := []ast.Expr[T]{first}
	err = p.sequence(tokenizer.CLOSED_BRACKET, true, func() error {
		value, err := p.expression()
		if err != nil {
			return err
		}
		values = append(values, value)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ast.List[T]{StartPos: open.Pos, Values: values}, nil
}

func (p *Parser[T]) rangeTail(open tokenizer.Token[T], start ast.Expr[T]) (ast.Expr[T], error) {
	length, err := p.expression()
	if err != nil {
		return nil, err
	}

	var step ast.Expr[T]
	if _, ok, err := p.accept(tokenizer.SEMICOLON); err != nil {
		return nil, err
	} else if ok {
		if step, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, ok, err := p.accept(tokenizer.CLOSED_BRACKET); err != nil {
		return nil, err
	} else if !ok {
		return nil, newParseError(p.here(), ErrExpectedClosingBracket)
	}

	return &ast.Range[T]{StartPos: open.Pos, Start: start, Length: length, Step: step}, nil
}

// sequence parses comma separated items up to and including closing.
// Items and commas must alternate strictly. started tells that one item
// has already been read.
func (p *Parser[T]) sequence(closing tokenizer.Kind, started bool, item func() error) error {
	expectItem := !started
	var lastComma *tokenizer.Position

	for {
		token, ok, err := p.lookahead.Peek(0)
		if err != nil {
			return err
		}
		if !ok {
			if closing == tokenizer.CLOSED_BRACKET {
				return newParseError(p.source.Position(), ErrExpectedClosingBracket)
			}
			return newParseError(p.source.Position(), ErrUnexpectedEOF)
		}

		switch {
		case token.Is(closing):
			if lastComma != nil && expectItem {
				return newParseError(*lastComma, ErrUnexpectedComma)
			}
			p.lookahead.Next()
			return nil

		case token.Is(tokenizer.COMMA):
			if expectItem {
				return newParseError(token.Pos, ErrUnexpectedComma)
			}
			p.lookahead.Next()
			lastComma = &token.Pos
			expectItem = true

		case expectItem:
			if err := item(); err != nil {
				return err
			}
			expectItem = false

		default:
			return newParseError(token.Pos, ErrExpectedComma)
		}
	}
}

// accept consumes the next token when it answers to kind.
func (p *Parser[T]) accept(kind tokenizer.Kind) (tokenizer.Token[T], bool, error) {
	ok, err := p.lookahead.HasKind(kind, 0)
	if err != nil || !ok {
		return tokenizer.Token[T]{}, false, err
	}

	token, _ := p.lookahead.Next()
	return token, true, nil
}

// acceptAny consumes the next token when it is one of the particles in kinds.
func (p *Parser[T]) acceptAny(kinds []tokenizer.Kind) (tokenizer.Kind, bool, error) {
	for _, kind := range kinds {
		if _, ok, err := p.accept(kind); err != nil {
			return tokenizer.ILLEGAL, false, err
		} else if ok {
			return kind, true, nil
		}
	}
	return tokenizer.ILLEGAL, false, nil
}

// lookingAt reports whether the upcoming tokens answer to kinds, in order.
func (p *Parser[T]) lookingAt(kinds ...tokenizer.Kind) (bool, error) {
	for offset, kind := range kinds {
		ok, err := p.lookahead.HasKind(kind, offset)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// here is the position of the next token, or the tokenizer position at the end of input.
func (p *Parser[T]) here() tokenizer.Position {
	token, ok, err := p.lookahead.Peek(0)
	if err != nil || !ok {
		return p.source.Position()
	}
	return token.Pos
}
