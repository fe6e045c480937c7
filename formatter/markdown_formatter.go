package formatter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/asllop/calf/markdownparser"
	"github.com/asllop/calf/parser"
	"github.com/asllop/calf/tokenizer"
)

// MarkdownFormatter formats calf code blocks within Markdown files
type MarkdownFormatter[T any] struct {
	calfFormatter *CalfFormatter[T]
	languages     []string
}

// NewMarkdownFormatter creates a new Markdown formatter for the blocks tagged with one of languages
func NewMarkdownFormatter[T any](parse tokenizer.NumberParser[T], languages []string) *MarkdownFormatter[T] {
	return &MarkdownFormatter[T]{
		calfFormatter: NewCalfFormatter(parse),
		languages:     languages,
	}
}

// Format formats calf code blocks within a Markdown document.
// Blocks are found by markdownparser, so fences follow CommonMark.
// Errors carry positions relative to the whole document.
func (f *MarkdownFormatter[T]) Format(markdown string) (string, error) {
	doc, err := markdownparser.Parse(strings.NewReader(markdown), f.languages)
	if err != nil {
		return "", fmt.Errorf("error reading markdown: %w", err)
	}

	lines := strings.Split(markdown, "\n")

	// later blocks first so earlier rows stay valid
	for i := len(doc.Blocks) - 1; i >= 0; i-- {
		block := doc.Blocks[i]

		formatted, err := f.formatBlock(block)
		if err != nil {
			return "", err
		}
		if formatted == nil {
			continue
		}

		end := block.StartLine + block.Lines
		rest := append(formatted, lines[end:]...)
		lines = append(lines[:block.StartLine], rest...)
	}

	return strings.Join(lines, "\n"), nil
}

// FormatFromReader formats calf code blocks from a reader and writes to a writer
func (f *MarkdownFormatter[T]) FormatFromReader(reader io.Reader, writer io.Writer) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	formatted, err := f.Format(string(input))
	if err != nil {
		return err
	}

	_, err = io.WriteString(writer, formatted)
	return err
}

// formatBlock returns the new lines of block, or nil when it is left untouched
func (f *MarkdownFormatter[T]) formatBlock(block markdownparser.CodeBlock) ([]string, error) {
	if strings.TrimSpace(block.Code) == "" {
		return nil, nil
	}

	tree, err := parser.Build(block.Code, f.calfFormatter.parse, parser.WithStart(tokenizer.Position{Row: block.StartLine}))
	if err != nil {
		return nil, err
	}
	if len(tree.Statements) == 0 {
		return nil, nil
	}

	eol := ""
	if strings.Contains(block.Code, "\r\n") {
		eol = "\r"
	}

	var result []string
	for _, line := range strings.Split(strings.TrimRight(Source[T](tree), "\n"), "\n") {
		result = append(result, block.Indent+line+eol)
	}

	return result, nil
}

// IsMarkdownFile checks if a file is a Markdown file
func IsMarkdownFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}
