package ast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asllop/calf/tokenizer"
)

func pos(row, col int) tokenizer.Position {
	return tokenizer.Position{Row: row, Col: col}
}

// x = (a + 1) * -b
func sampleTree() *AST[int64] {
	return &AST[int64]{
		Statements: []Stmt[int64]{
			&Assign[int64]{
				StartPos: pos(0, 0),
				Name:     "x",
				Value: &BinaryOp[int64]{
					StartPos: pos(0, 4),
					Op:       tokenizer.MULTIPLY,
					Left: &Group[int64]{
						StartPos: pos(0, 4),
						Inner: &BinaryOp[int64]{
							StartPos: pos(0, 5),
							Op:       tokenizer.PLUS,
							Left:     &Identifier[int64]{StartPos: pos(0, 5), Name: "a"},
							Right:    &Number[int64]{StartPos: pos(0, 9), Value: 1},
						},
					},
					Right: &UnaryOp[int64]{
						StartPos: pos(0, 15),
						Op:       tokenizer.MINUS,
						Operand:  &Identifier[int64]{StartPos: pos(0, 15), Name: "b"},
					},
				},
			},
			&ExprStmt[int64]{
				Expr: &Call[int64]{
					StartPos: pos(1, 0),
					Func:     "f",
					Args: []Expr[int64]{
						&Identifier[int64]{StartPos: pos(1, 2), Name: "x"},
						&Range[int64]{
							StartPos: pos(1, 5),
							Start:    &Number[int64]{StartPos: pos(1, 6), Value: 0},
							Length:   &Number[int64]{StartPos: pos(1, 9), Value: 3},
						},
					},
				},
			},
		},
	}
}

func TestString(t *testing.T) {
	tree := sampleTree()
	assert.Equal(t, "(= x (* (group (+ a 1)) (- b)))\n(call f x (range 0 3))", tree.String())

	tests := []struct {
		name     string
		node     Node[float64]
		expected string
	}{
		{
			name: "ternary",
			node: &TernaryOp[float64]{
				Cond: &Identifier[float64]{Name: "c"},
				Then: &Number[float64]{Value: 1.5},
				Else: &Number[float64]{Value: 2},
			},
			expected: "(? c 1.5 2)",
		},
		{
			name: "lambda",
			node: &Lambda[float64]{
				Params: []string{"a", "b"},
				Body: &BinaryOp[float64]{
					Op:    tokenizer.LESS_EQUAL,
					Left:  &Identifier[float64]{Name: "a"},
					Right: &Identifier[float64]{Name: "b"},
				},
			},
			expected: "(fn (a b) (<= a b))",
		},
		{
			name:     "empty list",
			node:     &List[float64]{},
			expected: "(list)",
		},
		{
			name: "range with step",
			node: &Range[float64]{
				Start:  &Number[float64]{Value: 0},
				Length: &Number[float64]{Value: 10},
				Step:   &Number[float64]{Value: 2},
			},
			expected: "(range 0 10 2)",
		},
		{
			name:     "call without arguments",
			node:     &Call[float64]{Func: "now"},
			expected: "(call now)",
		},
		{
			name:     "not",
			node:     &UnaryOp[float64]{Op: tokenizer.NOT, Operand: &Identifier[float64]{Name: "ok"}},
			expected: "(! ok)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.String())
		})
	}
}

func TestPos(t *testing.T) {
	tree := sampleTree()
	assert.Equal(t, pos(0, 0), tree.Pos())
	assert.Equal(t, pos(1, 0), tree.Statements[1].Pos())
	assert.Equal(t, tokenizer.Position{}, (&AST[int64]{}).Pos())
}

type identCollector struct {
	names []string
}

func (c *identCollector) Visit(n Node[int64]) Visitor[int64] {
	if id, ok := n.(*Identifier[int64]); ok {
		c.names = append(c.names, id.Name)
	}
	return c
}

type firstBinary struct {
	found *BinaryOp[int64]
}

func (v *firstBinary) Visit(n Node[int64]) Visitor[int64] {
	if bin, ok := n.(*BinaryOp[int64]); ok {
		v.found = bin
		return nil
	}
	return v
}

func TestWalk(t *testing.T) {
	t.Run("visits in source order", func(t *testing.T) {
		c := &identCollector{}
		Walk[int64](c, sampleTree())
		assert.Equal(t, []string{"a", "b", "x"}, c.names)
	})

	t.Run("nil visitor stops descent", func(t *testing.T) {
		v := &firstBinary{}
		Walk[int64](v, sampleTree())
		require.NotNil(t, v.found)
		assert.Equal(t, tokenizer.MULTIPLY, v.found.Op)
	})

	t.Run("inspect counts numbers", func(t *testing.T) {
		count := 0
		Inspect[int64](sampleTree(), func(n Node[int64]) bool {
			if _, ok := n.(*Number[int64]); ok {
				count++
			}
			return true
		})
		assert.Equal(t, 3, count)
	})

	t.Run("omitted step is skipped", func(t *testing.T) {
		visited := 0
		Inspect[int64](&Range[int64]{
			Start:  &Number[int64]{Value: 1},
			Length: &Number[int64]{Value: 2},
		}, func(Node[int64]) bool {
			visited++
			return true
		})
		assert.Equal(t, 3, visited)
	})
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint[int64](&buf, sampleTree().Statements[0])

	expected := strings.Join([]string{
		"",
		"Assign x (0:0)",
		"-   BinaryOp * (0:4)",
		"-   -   Group (0:4)",
		"-   -   -   BinaryOp + (0:5)",
		"-   -   -   -   Identifier a (0:5)",
		"-   -   -   -   Number 1 (0:9)",
		"-   -   UnaryOp - (0:15)",
		"-   -   -   Identifier b (0:15)",
	}, "\n")
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	Fprintln[int64](&buf, sampleTree().Statements[0])
	assert.Equal(t, expected+"\n", buf.String())
}

func TestMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(sampleTree())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "node: Assign")
	assert.Contains(t, text, "name: x")
	assert.Contains(t, text, "node: Range")
	assert.NotContains(t, text, "step")

	// keys keep their declaration order
	assert.Less(t, strings.Index(text, "left:"), strings.Index(text, "right:"))
}

func TestMarshalJSON(t *testing.T) {
	out, err := yaml.MarshalWithOptions(sampleTree(), yaml.JSON())
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(text), "["))
	assert.Contains(t, text, `"Call"`)
	assert.Contains(t, text, `"func"`)
}

func TestEncodeValue(t *testing.T) {
	assert.Equal(t, int64(3), encodeValue(int64(3)))
	assert.Equal(t, 2.5, encodeValue(2.5))
	assert.Equal(t, "0:4", encodeValue(pos(0, 4)))
}
