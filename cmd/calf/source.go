package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/asllop/calf"
	"github.com/asllop/calf/formatter"
	"github.com/asllop/calf/markdownparser"
	"github.com/asllop/calf/tokenizer"
)

// SourceFlags selects where the code comes from
type SourceFlags struct {
	Source string `arg:"" optional:"" help:"Source code"`
	File   string `short:"f" help:"Read the source from a file, - for stdin. Markdown files are scanned for fenced code blocks"`
}

// chunk is a piece of code and the place it starts at in its document
type chunk struct {
	Code    string
	Start   tokenizer.Position
	Section string
}

// source is a document split into the chunks that hold calf code
type source struct {
	Name     string
	Text     string
	Chunks   []chunk
	Markdown bool
	Literal  calf.LiteralType // set by markdown front matter
}

func (f SourceFlags) load(ctx *Context, config *calf.Config) (*source, error) {
	switch {
	case f.Source != "" && f.File != "":
		return nil, ErrSourceConflict
	case f.Source != "":
		return &source{Name: "<arg>", Text: f.Source, Chunks: []chunk{{Code: f.Source}}}, nil
	case f.File == "":
		return nil, ErrNoSource
	}

	name := f.File

	var (
		data []byte
		err  error
	)
	if f.File == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(ctx.In)
	} else {
		data, err = os.ReadFile(f.File)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	if !formatter.IsMarkdownFile(f.File) {
		return &source{Name: name, Text: string(data), Chunks: []chunk{{Code: string(data)}}}, nil
	}

	doc, err := markdownparser.Parse(bytes.NewReader(data), config.Markdown.Languages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(doc.Blocks) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoCodeBlocks)
	}

	src := &source{Name: name, Text: string(data), Markdown: true}
	for _, block := range doc.Blocks {
		src.Chunks = append(src.Chunks, chunk{
			Code:    block.Code,
			Start:   tokenizer.Position{Row: block.StartLine},
			Section: block.Section,
		})
	}

	if value, ok := doc.StringMeta("literal"); ok {
		literal, err := calf.ParseLiteralType(value)
		if err != nil {
			return nil, fmt.Errorf("%s: front matter: %w", name, err)
		}
		src.Literal = literal
	}

	return src, nil
}

// literalFor picks the literal type: the --literal flag, then front matter, then the configuration
func literalFor(ctx *Context, config *calf.Config, src *source) calf.LiteralType {
	if ctx.Literal == "" && src.Literal != "" {
		return src.Literal
	}
	return config.Literal
}
