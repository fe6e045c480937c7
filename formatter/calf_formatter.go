// Package formatter rewrites calf source in its canonical layout.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asllop/calf/ast"
	"github.com/asllop/calf/parser"
	"github.com/asllop/calf/tokenizer"
)

// CalfFormatter formats calf source with go fmt style: one statement per line,
// single spaces around binary operators and after commas.
// Comments are not kept.
type CalfFormatter[T any] struct {
	parse tokenizer.NumberParser[T]
}

// NewCalfFormatter creates a new calf formatter
func NewCalfFormatter[T any](parse tokenizer.NumberParser[T]) *CalfFormatter[T] {
	return &CalfFormatter[T]{parse: parse}
}

// Format parses src and prints it back. The result ends with a newline unless src holds no statements.
func (f *CalfFormatter[T]) Format(src string) (string, error) {
	tree, err := parser.Build(src, f.parse)
	if err != nil {
		return "", err
	}

	return Source[T](tree), nil
}

// Source prints n as calf code. Parsing the result yields the same tree.
func Source[T any](n ast.Node[T]) string {
	var sb strings.Builder
	writeNode[T](&sb, n)
	return sb.String()
}

func writeNode[T any](sb *strings.Builder, n ast.Node[T]) {
	switch n := n.(type) {
	case *ast.AST[T]:
		for _, s := range n.Statements {
			writeNode[T](sb, s)
			sb.WriteString("\n")
		}
	case *ast.Assign[T]:
		sb.WriteString(n.Name)
		sb.WriteString(" = ")
		writeNode[T](sb, n.Value)
	case *ast.ExprStmt[T]:
		writeNode[T](sb, n.Expr)
	case *ast.Number[T]:
		sb.WriteString(formatNumber(n.Value))
	case *ast.Identifier[T]:
		sb.WriteString(n.Name)
	case *ast.Group[T]:
		sb.WriteString("(")
		writeNode[T](sb, n.Inner)
		sb.WriteString(")")
	case *ast.UnaryOp[T]:
		operand := Source[T](n.Operand)
		sb.WriteString(n.Op.Symbol())
		// "- 1" stays a negation, "-1" would scan as a literal
		if n.Op == tokenizer.MINUS && operand != "" && operand[0] >= '0' && operand[0] <= '9' {
			sb.WriteString(" ")
		}
		sb.WriteString(operand)
	case *ast.BinaryOp[T]:
		writeNode[T](sb, n.Left)
		sb.WriteString(" ")
		sb.WriteString(n.Op.Symbol())
		sb.WriteString(" ")
		writeNode[T](sb, n.Right)
	case *ast.TernaryOp[T]:
		writeNode[T](sb, n.Cond)
		sb.WriteString(" ? ")
		writeNode[T](sb, n.Then)
		sb.WriteString(" : ")
		writeNode[T](sb, n.Else)
	case *ast.Call[T]:
		sb.WriteString(n.Func)
		sb.WriteString("{")
		writeList[T](sb, n.Args, ", ")
		sb.WriteString("}")
	case *ast.Lambda[T]:
		sb.WriteString("fn(")
		sb.WriteString(strings.Join(n.Params, ", "))
		sb.WriteString(") ")
		writeNode[T](sb, n.Body)
	case *ast.List[T]:
		sb.WriteString("[")
		writeList[T](sb, n.Values, ", ")
		sb.WriteString("]")
	case *ast.Range[T]:
		parts := []ast.Expr[T]{n.Start, n.Length}
		if n.Step != nil {
			parts = append(parts, n.Step)
		}
		sb.WriteString("[")
		writeList[T](sb, parts, "; ")
		sb.WriteString("]")
	default:
		panic(fmt.Sprintf("formatter: unexpected node %T", n))
	}
}

func writeList[T any](sb *strings.Builder, items []ast.Expr[T], sep string) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		writeNode[T](sb, item)
	}
}

// formatNumber never uses exponents, which the tokenizer does not read
func formatNumber[T any](v T) string {
	switch n := any(v).(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
