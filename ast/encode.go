package ast

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// MarshalYAML encodes the tree as a list of statements, each node an ordered map.
// The same value is used for JSON output through yaml.JSON().
func (a *AST[T]) MarshalYAML() (any, error) {
	statements := make([]yaml.MapSlice, 0, len(a.Statements))
	for _, s := range a.Statements {
		statements = append(statements, encodeNode[T](s))
	}
	return statements, nil
}

func encodeNode[T any](n Node[T]) yaml.MapSlice {
	m := yaml.MapSlice{
		{Key: "node", Value: nodeName[T](n)},
		{Key: "pos", Value: n.Pos().String()},
	}

	switch n := n.(type) {
	case *Assign[T]:
		m = append(m,
			yaml.MapItem{Key: "name", Value: n.Name},
			yaml.MapItem{Key: "value", Value: encodeNode[T](n.Value)},
		)
	case *ExprStmt[T]:
		m = append(m, yaml.MapItem{Key: "expr", Value: encodeNode[T](n.Expr)})
	case *Number[T]:
		m = append(m, yaml.MapItem{Key: "value", Value: encodeValue(n.Value)})
	case *Identifier[T]:
		m = append(m, yaml.MapItem{Key: "name", Value: n.Name})
	case *Group[T]:
		m = append(m, yaml.MapItem{Key: "inner", Value: encodeNode[T](n.Inner)})
	case *UnaryOp[T]:
		m = append(m,
			yaml.MapItem{Key: "op", Value: n.Op.Symbol()},
			yaml.MapItem{Key: "operand", Value: encodeNode[T](n.Operand)},
		)
	case *BinaryOp[T]:
		m = append(m,
			yaml.MapItem{Key: "op", Value: n.Op.Symbol()},
			yaml.MapItem{Key: "left", Value: encodeNode[T](n.Left)},
			yaml.MapItem{Key: "right", Value: encodeNode[T](n.Right)},
		)
	case *TernaryOp[T]:
		m = append(m,
			yaml.MapItem{Key: "cond", Value: encodeNode[T](n.Cond)},
			yaml.MapItem{Key: "then", Value: encodeNode[T](n.Then)},
			yaml.MapItem{Key: "else", Value: encodeNode[T](n.Else)},
		)
	case *Call[T]:
		m = append(m,
			yaml.MapItem{Key: "func", Value: n.Func},
			yaml.MapItem{Key: "args", Value: encodeList(n.Args)},
		)
	case *Lambda[T]:
		params := n.Params
		if params == nil {
			params = []string{}
		}
		m = append(m,
			yaml.MapItem{Key: "params", Value: params},
			yaml.MapItem{Key: "body", Value: encodeNode[T](n.Body)},
		)
	case *List[T]:
		m = append(m, yaml.MapItem{Key: "values", Value: encodeList(n.Values)})
	case *Range[T]:
		m = append(m,
			yaml.MapItem{Key: "start", Value: encodeNode[T](n.Start)},
			yaml.MapItem{Key: "length", Value: encodeNode[T](n.Length)},
		)
		if n.Step != nil {
			m = append(m, yaml.MapItem{Key: "step", Value: encodeNode[T](n.Step)})
		}
	}

	return m
}

func encodeList[T any](exprs []Expr[T]) []yaml.MapSlice {
	list := make([]yaml.MapSlice, 0, len(exprs))
	for _, e := range exprs {
		list = append(list, encodeNode[T](e))
	}
	return list
}

// encodeValue keeps native numbers as numbers and renders anything else through its String method.
func encodeValue(v any) any {
	switch v := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func nodeName[T any](n Node[T]) string {
	switch n.(type) {
	case *AST[T]:
		return "AST"
	case *Assign[T]:
		return "Assign"
	case *ExprStmt[T]:
		return "ExprStmt"
	case *Number[T]:
		return "Number"
	case *Identifier[T]:
		return "Identifier"
	case *Group[T]:
		return "Group"
	case *UnaryOp[T]:
		return "UnaryOp"
	case *BinaryOp[T]:
		return "BinaryOp"
	case *TernaryOp[T]:
		return "TernaryOp"
	case *Call[T]:
		return "Call"
	case *Lambda[T]:
		return "Lambda"
	case *List[T]:
		return "List"
	case *Range[T]:
		return "Range"
	default:
		return "Unknown"
	}
}
