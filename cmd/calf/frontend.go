package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"

	"github.com/asllop/calf"
	"github.com/asllop/calf/ast"
	"github.com/asllop/calf/formatter"
	"github.com/asllop/calf/parser"
	"github.com/asllop/calf/tokenizer"
)

// frontend runs the tokenizer and parser with one literal type
type frontend interface {
	Tokens(w io.Writer, src *source) error
	Build(src *source, logger *slog.Logger) (tree, error)
	Format(src *source, languages []string) (string, error)
}

// tree is a syntax tree whose literal type has been erased
type tree interface {
	String() string
	MarshalYAML() (any, error)
	Fprint(w io.Writer)
	Len() int
}

type typedFrontend[T any] struct {
	parse tokenizer.NumberParser[T]
}

type typedTree[T any] struct {
	*ast.AST[T]
}

func (t typedTree[T]) Fprint(w io.Writer) {
	ast.Fprintln[T](w, t.AST)
}

func (t typedTree[T]) Len() int {
	return len(t.Statements)
}

func frontendFor(literal calf.LiteralType) frontend {
	switch literal {
	case calf.LiteralInt:
		return typedFrontend[int64]{tokenizer.ParseInt64}
	case calf.LiteralDecimal:
		return typedFrontend[decimal.Decimal]{tokenizer.ParseDecimal}
	default:
		return typedFrontend[float64]{tokenizer.ParseFloat64}
	}
}

func (f typedFrontend[T]) Tokens(w io.Writer, src *source) error {
	for _, c := range src.Chunks {
		tok := tokenizer.NewTokenizer(c.Code, f.parse, tokenizer.TokenizerOptions{Start: c.Start})
		for token, err := range tok.Tokens() {
			if err != nil {
				return &SourceError{Name: src.Name, Text: src.Text, Err: err}
			}
			fmt.Fprintln(w, token)
		}
	}

	return nil
}

// Build parses every chunk and joins their statements into one tree.
// Positions stay relative to the whole document.
func (f typedFrontend[T]) Build(src *source, logger *slog.Logger) (tree, error) {
	joined := &ast.AST[T]{}

	for _, c := range src.Chunks {
		part, err := parser.Build(c.Code, f.parse, parser.WithStart(c.Start), parser.WithLogger(logger))
		if err != nil {
			return nil, &SourceError{Name: src.Name, Text: src.Text, Err: err}
		}
		joined.Statements = append(joined.Statements, part.Statements...)
	}

	return typedTree[T]{joined}, nil
}

// Format prints src in canonical layout. Markdown keeps everything but its calf blocks.
func (f typedFrontend[T]) Format(src *source, languages []string) (string, error) {
	var (
		out string
		err error
	)
	if src.Markdown {
		out, err = formatter.NewMarkdownFormatter(f.parse, languages).Format(src.Text)
	} else {
		out, err = formatter.NewCalfFormatter(f.parse).Format(src.Text)
	}
	if err != nil {
		return "", &SourceError{Name: src.Name, Text: src.Text, Err: err}
	}

	return out, nil
}

// render writes t in one of the configured formats
func render(w io.Writer, t tree, format string) error {
	switch format {
	case calf.FormatText:
		if t.Len() > 0 {
			fmt.Fprintln(w, t.String())
		}
	case calf.FormatTree:
		t.Fprint(w)
	case calf.FormatYAML:
		out, err := yaml.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		w.Write(out)
	case calf.FormatJSON:
		out, err := yaml.MarshalWithOptions(t, yaml.JSON())
		if err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		w.Write(out)
	default:
		return fmt.Errorf("%w '%s'", ErrUnknownFormat, format)
	}

	return nil
}
