package ast

import (
	"fmt"
	"io"
	"strings"
)

type Printer[T any] struct {
	indent int
	out    io.Writer
}

func (p Printer[T]) Visit(n Node[T]) Visitor[T] {
	fmt.Fprintf(p.out, "\n%s%s (%s)", strings.Repeat("-   ", p.indent), Label[T](n), n.Pos())
	return Printer[T]{p.indent + 1, p.out}
}

// Fprint writes the tree rooted at n, one node per line, indented by depth.
func Fprint[T any](out io.Writer, n Node[T]) {
	p := Printer[T]{0, out}
	Walk[T](p, n)
}

func Fprintln[T any](out io.Writer, n Node[T]) {
	Fprint[T](out, n)
	fmt.Fprintln(out)
}

// Label describes a single node without its children.
func Label[T any](n Node[T]) string {
	switch n := n.(type) {
	case *AST[T]:
		return fmt.Sprintf("AST (%d statements)", len(n.Statements))
	case *Assign[T]:
		return "Assign " + n.Name
	case *ExprStmt[T]:
		return "ExprStmt"
	case *Number[T]:
		return fmt.Sprintf("Number %v", n.Value)
	case *Identifier[T]:
		return "Identifier " + n.Name
	case *Group[T]:
		return "Group"
	case *UnaryOp[T]:
		return "UnaryOp " + n.Op.Symbol()
	case *BinaryOp[T]:
		return "BinaryOp " + n.Op.Symbol()
	case *TernaryOp[T]:
		return "TernaryOp"
	case *Call[T]:
		return fmt.Sprintf("Call %s (%d args)", n.Func, len(n.Args))
	case *Lambda[T]:
		return fmt.Sprintf("Lambda (%s)", strings.Join(n.Params, ", "))
	case *List[T]:
		return fmt.Sprintf("List (%d values)", len(n.Values))
	case *Range[T]:
		if n.Step == nil {
			return "Range"
		}
		return "Range with step"
	default:
		return n.String()
	}
}
