// Package ast provides the syntax tree produced by the calf parser.
//
// Every node type is parameterized by T, the type numeric literals are parsed into.
package ast

import (
	"fmt"
	"strings"

	"github.com/asllop/calf/tokenizer"
)

type (
	/*
	 * General
	 */
	Node[T any] interface {
		Pos() tokenizer.Position
		String() string
	}

	// Expr is implemented by expression nodes only.
	Expr[T any] interface {
		Node[T]
		exprNode(T)
	}

	// Stmt is implemented by statement nodes only.
	Stmt[T any] interface {
		Node[T]
		stmtNode(T)
	}

	// AST is the root of a parsed buffer.
	AST[T any] struct {
		Statements []Stmt[T]
	}

	/*
	 * Statements
	 */

	// x = expr
	Assign[T any] struct {
		StartPos tokenizer.Position
		Name     string
		Value    Expr[T]
	}

	// expr
	ExprStmt[T any] struct {
		Expr Expr[T]
	}

	/*
	 * Expressions
	 */

	// 42, 3.14
	Number[T any] struct {
		StartPos tokenizer.Position
		Value    T
	}

	// foo
	Identifier[T any] struct {
		StartPos tokenizer.Position
		Name     string
	}

	// (expr)
	Group[T any] struct {
		StartPos tokenizer.Position
		Inner    Expr[T]
	}

	// !expr, -expr
	// StartPos is the operand's position.
	UnaryOp[T any] struct {
		StartPos tokenizer.Position
		Op       tokenizer.Kind
		Operand  Expr[T]
	}

	// lhs op rhs
	BinaryOp[T any] struct {
		StartPos tokenizer.Position
		Op       tokenizer.Kind
		Left     Expr[T]
		Right    Expr[T]
	}

	// cond ? then : else
	TernaryOp[T any] struct {
		StartPos tokenizer.Position
		Cond     Expr[T]
		Then     Expr[T]
		Else     Expr[T]
	}

	// f{a, b}
	Call[T any] struct {
		StartPos tokenizer.Position
		Func     string
		Args     []Expr[T]
	}

	// fn(a, b) body
	Lambda[T any] struct {
		StartPos tokenizer.Position
		Params   []string
		Body     Expr[T]
	}

	// [a, b, c]
	List[T any] struct {
		StartPos tokenizer.Position
		Values   []Expr[T]
	}

	// [start; length] or [start; length; step]
	// Step is nil when omitted.
	Range[T any] struct {
		StartPos tokenizer.Position
		Start    Expr[T]
		Length   Expr[T]
		Step     Expr[T]
	}
)

func (a *AST[T]) Pos() tokenizer.Position {
	if len(a.Statements) == 0 {
		return tokenizer.Position{}
	}
	return a.Statements[0].Pos()
}

func (a *AST[T]) String() string {
	lines := make([]string, 0, len(a.Statements))
	for _, s := range a.Statements {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}

func (s *Assign[T]) Pos() tokenizer.Position   { return s.StartPos }
func (s *ExprStmt[T]) Pos() tokenizer.Position { return s.Expr.Pos() }

func (s *Assign[T]) String() string   { return fmt.Sprintf("(= %s %s)", s.Name, s.Value) }
func (s *ExprStmt[T]) String() string { return s.Expr.String() }

func (*Assign[T]) stmtNode(T)   {}
func (*ExprStmt[T]) stmtNode(T) {}

func (e *Number[T]) Pos() tokenizer.Position     { return e.StartPos }
func (e *Identifier[T]) Pos() tokenizer.Position { return e.StartPos }
func (e *Group[T]) Pos() tokenizer.Position      { return e.StartPos }
func (e *UnaryOp[T]) Pos() tokenizer.Position    { return e.StartPos }
func (e *BinaryOp[T]) Pos() tokenizer.Position   { return e.StartPos }
func (e *TernaryOp[T]) Pos() tokenizer.Position  { return e.StartPos }
func (e *Call[T]) Pos() tokenizer.Position       { return e.StartPos }
func (e *Lambda[T]) Pos() tokenizer.Position     { return e.StartPos }
func (e *List[T]) Pos() tokenizer.Position       { return e.StartPos }
func (e *Range[T]) Pos() tokenizer.Position      { return e.StartPos }

func (e *Number[T]) String() string     { return fmt.Sprint(e.Value) }
func (e *Identifier[T]) String() string { return e.Name }
func (e *Group[T]) String() string      { return fmt.Sprintf("(group %s)", e.Inner) }
func (e *UnaryOp[T]) String() string    { return fmt.Sprintf("(%s %s)", e.Op.Symbol(), e.Operand) }

func (e *BinaryOp[T]) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op.Symbol(), e.Left, e.Right)
}

func (e *TernaryOp[T]) String() string {
	return fmt.Sprintf("(? %s %s %s)", e.Cond, e.Then, e.Else)
}

func (e *Call[T]) String() string {
	parts := []string{"call", e.Func}
	for _, a := range e.Args {
		parts = append(parts, a.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (e *Lambda[T]) String() string {
	return fmt.Sprintf("(fn (%s) %s)", strings.Join(e.Params, " "), e.Body)
}

func (e *List[T]) String() string {
	parts := []string{"list"}
	for _, v := range e.Values {
		parts = append(parts, v.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (e *Range[T]) String() string {
	if e.Step == nil {
		return fmt.Sprintf("(range %s %s)", e.Start, e.Length)
	}
	return fmt.Sprintf("(range %s %s %s)", e.Start, e.Length, e.Step)
}

func (*Number[T]) exprNode(T)     {}
func (*Identifier[T]) exprNode(T) {}
func (*Group[T]) exprNode(T)      {}
func (*UnaryOp[T]) exprNode(T)    {}
func (*BinaryOp[T]) exprNode(T)   {}
func (*TernaryOp[T]) exprNode(T)  {}
func (*Call[T]) exprNode(T)       {}
func (*Lambda[T]) exprNode(T)     {}
func (*List[T]) exprNode(T)       {}
func (*Range[T]) exprNode(T)      {}
