package markdownparser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// collectCodeBlocks walks the document and returns its title and the fenced blocks in wanted languages
func collectCodeBlocks(doc ast.Node, content []byte, wanted map[string]bool) (string, []CodeBlock) {
	var (
		title   string
		section string
		blocks  []CodeBlock
	)

	lines := newIndexToLine(content)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			headingText := extractTextFromHeadingNode(node, content)
			if node.Level == 1 && title == "" {
				title = headingText
			}
			section = headingText

			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			lang := strings.ToLower(strings.TrimSpace(string(node.Language(content))))
			if !wanted[lang] {
				return ast.WalkSkipChildren, nil
			}

			code, indent := codeOf(node, content, lines)
			blocks = append(blocks, CodeBlock{
				Language:  lang,
				Code:      code,
				StartLine: startLineOf(node, lines),
				Lines:     node.Lines().Len(),
				Indent:    indent,
				Section:   section,
			})

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", nil
	}

	return title, blocks
}

// codeOf returns the block text with the container prefix of every line
// (list indentation, blockquote markers) turned into blanks, and the raw
// prefix of the first line
func codeOf(block *ast.FencedCodeBlock, content []byte, lines *indexToLine) (string, string) {
	var (
		code   strings.Builder
		indent string
	)

	segments := block.Lines()
	for i := range segments.Len() {
		segment := segments.At(i)
		prefix := string(content[lines.lineStart(segment.Start):segment.Start])
		if i == 0 {
			indent = prefix
		}
		code.WriteString(blank(prefix))
		code.Write(content[segment.Start:segment.Stop])
	}

	return code.String(), indent
}

// blank keeps tabs and replaces every other rune with a space
func blank(prefix string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		return ' '
	}, prefix)
}

// startLineOf returns the row of the first code line, or the row after the
// opening fence when the block is empty
func startLineOf(block *ast.FencedCodeBlock, lines *indexToLine) int {
	if block.Lines().Len() > 0 {
		return lines.lineFor(block.Lines().At(0).Start)
	}

	return lines.lineFor(block.Info.Segment.Start) + 1
}

// extractTextFromHeadingNode extracts text content from a heading node
func extractTextFromHeadingNode(n ast.Node, content []byte) string {
	var text strings.Builder

	err := ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindText {
			if textNode, ok := n.(*ast.Text); ok {
				text.Write(textNode.Value(content))
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return ""
	}

	return strings.TrimSpace(text.String())
}
