package ast

// Visitor is called for every node reached by Walk.
type Visitor[T any] interface {
	// Visit returns the visitor used for the children of n.
	// Returning nil stops the descent below n.
	Visit(n Node[T]) Visitor[T]
}

// Walk traverses the tree depth-first, parents before children, children in source order.
func Walk[T any](v Visitor[T], n Node[T]) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *AST[T]:
		for _, s := range n.Statements {
			Walk[T](v, s)
		}

	// Statements
	case *Assign[T]:
		Walk[T](v, n.Value)
	case *ExprStmt[T]:
		Walk[T](v, n.Expr)

	// Expressions
	case *Group[T]:
		Walk[T](v, n.Inner)
	case *UnaryOp[T]:
		Walk[T](v, n.Operand)
	case *BinaryOp[T]:
		Walk[T](v, n.Left)
		Walk[T](v, n.Right)
	case *TernaryOp[T]:
		Walk[T](v, n.Cond)
		Walk[T](v, n.Then)
		Walk[T](v, n.Else)
	case *Call[T]:
		for _, a := range n.Args {
			Walk[T](v, a)
		}
	case *Lambda[T]:
		Walk[T](v, n.Body)
	case *List[T]:
		for _, e := range n.Values {
			Walk[T](v, e)
		}
	case *Range[T]:
		Walk[T](v, n.Start)
		Walk[T](v, n.Length)
		if n.Step != nil {
			Walk[T](v, n.Step)
		}
	}
}

type inspector[T any] func(Node[T]) bool

func (f inspector[T]) Visit(n Node[T]) Visitor[T] {
	if f(n) {
		return f
	}
	return nil
}

// Inspect walks the tree calling f for every node. Descent stops below a node when f returns false.
func Inspect[T any](n Node[T], f func(Node[T]) bool) {
	Walk[T](inspector[T](f), n)
}
