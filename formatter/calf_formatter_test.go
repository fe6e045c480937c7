package formatter

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/asllop/calf/parser"
	"github.com/asllop/calf/tokenizer"
)

func TestCalfFormatter_Format(t *testing.T) {
	formatter := NewCalfFormatter(tokenizer.ParseFloat64)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"assignment", "x=1+2*3", "x = 1 + 2 * 3\n"},
		{"groups are kept", "x = ((a))", "x = ((a))\n"},
		{"call", "f{ a ,b }", "f{a, b}\n"},
		{"call without arguments", "f{ }", "f{}\n"},
		{"lambda", "fn( a,b )a+b", "fn(a, b) a + b\n"},
		{"ternary", "c?1:2", "c ? 1 : 2\n"},
		{"nested ternary", "a ? b : c ? d : e", "a ? b : c ? d : e\n"},
		{"list", "[ 1,2 ,3 ]", "[1, 2, 3]\n"},
		{"empty list", "[ ]", "[]\n"},
		{"range", "[1;10;2]", "[1; 10; 2]\n"},
		{"range without step", "[0 ;n]", "[0; n]\n"},
		{"negation of a literal", "- 1", "- 1\n"},
		{"negative literal", "-1", "-1\n"},
		{"negation of a group", "-(1)", "-(1)\n"},
		{"double not", "!!a", "!!a\n"},
		{"float", "1.50", "1.5\n"},
		{"comments dropped", "a // first\n\n\nb", "a\nb\n"},
		{"logic", "a&b|c&&d||e", "a & b | c && d || e\n"},
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

func TestCalfFormatter_RoundTrip(t *testing.T) {
	sources := []string{
		"x = (a + 1) * -b",
		"fact = fn(n) n > 1 ? n * fact{n - 1} : 1\nfact{6}",
		"num / 4 + 10 * (--!!var - 2) % 3 == -num + 9 != 8 * num > !19",
		"m = [[1, 2], [3; 4], [0; n; -1]]",
		"- - 1",
		"a - -1",
		"x = 0.000001 + 123456789.5",
	}

	formatter := NewCalfFormatter(tokenizer.ParseFloat64)

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			original, err := parser.Build(src, tokenizer.ParseFloat64)
			assert.NoError(t, err)

			formatted, err := formatter.Format(src)
			assert.NoError(t, err)

			reparsed, err := parser.Build(formatted, tokenizer.ParseFloat64)
			assert.NoError(t, err)
			assert.Equal(t, original.String(), reparsed.String())

			again, err := formatter.Format(formatted)
			assert.NoError(t, err)
			assert.Equal(t, formatted, again)
		})
	}
}

func TestCalfFormatter_Decimal(t *testing.T) {
	result, err := NewCalfFormatter(tokenizer.ParseDecimal).Format("0.10+1")
	assert.NoError(t, err)
	assert.Equal(t, "0.1 + 1\n", result)
}

func TestCalfFormatter_Error(t *testing.T) {
	_, err := NewCalfFormatter(tokenizer.ParseInt64).Format("f{1,,2}")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrUnexpectedComma))
}
