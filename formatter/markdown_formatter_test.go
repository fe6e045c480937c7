package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/asllop/calf/parser"
	"github.com/asllop/calf/tokenizer"
)

const fence = "```"

func TestMarkdownFormatter_Format(t *testing.T) {
	formatter := NewMarkdownFormatter(tokenizer.ParseFloat64, []string{"calf"})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "Basic calf code block",
			input: `# Squares

Here's a function:

` + fence + `calf
sq=fn(x)x*x
sq{ 4 }
` + fence + `

That's it!`,
			expected: `# Squares

Here's a function:

` + fence + `calf
sq = fn(x) x * x
sq{4}
` + fence + `

That's it!`,
		},
		{
			name: "Indented calf code block",
			input: `# Nested Example

1. First item:

   ` + fence + `calf
   [1;3]
   ` + fence + `

2. Second item
`,
			expected: `# Nested Example

1. First item:

   ` + fence + `calf
   [1; 3]
   ` + fence + `

2. Second item
`,
		},
		{
			name: "Other code blocks should be unchanged",
			input: `# Code Examples

` + fence + `javascript
console.log("Hello World");
` + fence + `

` + fence + `CALF
a+b
` + fence,
			expected: `# Code Examples

` + fence + `javascript
console.log("Hello World");
` + fence + `

` + fence + `CALF
a + b
` + fence,
		},
		{
			name:     "Tilde and long fences with attributes",
			input:    "~~~calf\nx=1\n~~~\n\n````calf {.numbered}\ny=[ ]\n````\n",
			expected: "~~~calf\nx = 1\n~~~\n\n````calf {.numbered}\ny = []\n````\n",
		},
		{
			name:     "Block in a quote",
			input:    "> " + fence + "calf\n> f{1 ,2}\n> g{ }\n> " + fence + "\n",
			expected: "> " + fence + "calf\n> f{1, 2}\n> g{}\n> " + fence + "\n",
		},
		{
			name:     "Comment only block is untouched",
			input:    fence + "calf\n// nothing yet\n" + fence + "\n",
			expected: fence + "calf\n// nothing yet\n" + fence + "\n",
		},
		{
			name: "Empty calf block",
			input: `# Empty

` + fence + `calf
` + fence,
			expected: `# Empty

` + fence + `calf
` + fence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := formatter.Format(tt.input)
			assert.NoError(t, err)

			if result != tt.expected {
				t.Errorf("Format() mismatch:\nExpected:\n%s\n\nActual:\n%s", tt.expected, result)
			}
		})
	}
}

func TestMarkdownFormatter_ErrorPosition(t *testing.T) {
	formatter := NewMarkdownFormatter(tokenizer.ParseFloat64, []string{"calf"})

	input := "# Broken\n\n" + fence + "calf\nok = 1\nf{1,,2}\n" + fence + "\n"

	_, err := formatter.Format(input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrUnexpectedComma))

	var parseErr *parser.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, tokenizer.Position{Row: 4, Col: 4}, parseErr.Pos)
}

func TestMarkdownFormatter_FormatFromReader(t *testing.T) {
	formatter := NewMarkdownFormatter(tokenizer.ParseInt64, []string{"calf"})

	var out bytes.Buffer
	err := formatter.FormatFromReader(strings.NewReader("intro\n\n"+fence+"calf\nx=1\n"+fence+"\n"), &out)
	assert.NoError(t, err)
	assert.Equal(t, "intro\n\n"+fence+"calf\nx = 1\n"+fence+"\n", out.String())
}

func TestIsMarkdownFile(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"README.md", true},
		{"notes.markdown", true},
		{"prog.calf", false},
		{"config.yaml", false},
		{"test.MD", true}, // Case insensitive
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			result := IsMarkdownFile(tt.filename)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func BenchmarkMarkdownFormatter_Format(t *testing.B) {
	formatter := NewMarkdownFormatter(tokenizer.ParseFloat64, []string{"calf"})

	complexMarkdown := `# Complex Documentation

## Factorial
` + fence + `calf
fact=fn(n)n>1?n*fact{n-1}:1
` + fence + `

## Ranges
` + fence + `calf
evens=[0;100;2]
odds=[1;100;2]
` + fence

	t.ResetTimer()
	for i := 0; i < t.N; i++ {
		_, err := formatter.Format(complexMarkdown)
		if err != nil {
			t.Fatal(err)
		}
	}
}
