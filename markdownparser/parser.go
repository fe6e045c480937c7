// Package markdownparser reads calf sources embedded in Markdown documents.
package markdownparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Sentinel errors
var (
	ErrInvalidFrontMatter = fmt.Errorf("invalid front matter")
)

// Document represents a parsed Markdown document holding calf code
type Document struct {
	Metadata map[string]any // YAML front matter
	Title    string         // first H1 heading
	Blocks   []CodeBlock
}

// CodeBlock is one fenced code block whose info string matched a wanted language
type CodeBlock struct {
	Language  string
	Code      string
	StartLine int    // 0-based row of the first code line in the whole document
	Lines     int    // number of code lines
	Indent    string // container prefix of the first code line, blanked in Code
	Section   string // closest heading above the block
}

// Parse parses a Markdown document and collects the fenced blocks written in one of languages.
// Languages are compared case-insensitively.
func Parse(reader io.Reader, languages []string) (*Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	frontMatter, body, offset, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)

	source := []byte(body)
	doc := md.Parser().Parse(text.NewReader(source))

	wanted := make(map[string]bool, len(languages))
	for _, lang := range languages {
		wanted[strings.ToLower(strings.TrimSpace(lang))] = true
	}

	title, blocks := collectCodeBlocks(doc, source, wanted)
	for i := range blocks {
		blocks[i].StartLine += offset
	}

	document := &Document{
		Metadata: frontMatter,
		Title:    title,
		Blocks:   blocks,
	}

	return document, nil
}

// ExtractCodeBlocks returns only the matching code blocks of a Markdown document.
func ExtractCodeBlocks(reader io.Reader, languages []string) ([]CodeBlock, error) {
	doc, err := Parse(reader, languages)
	if err != nil {
		return nil, err
	}

	return doc.Blocks, nil
}

// StringMeta returns a front matter value when it is a non-empty string.
func (d *Document) StringMeta(key string) (string, bool) {
	value, ok := d.Metadata[key].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}

	return strings.TrimSpace(value), true
}
