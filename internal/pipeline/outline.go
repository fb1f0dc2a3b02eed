package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one ATX or setext heading of a Markdown document.
type Heading struct {
	Level int
	Text  string
}

// Outline lists a document's headings in source order.
type Outline []Heading

// Count returns the number of headings at the given level.
func (o Outline) Count(level int) int {
	n := 0
	for _, h := range o {
		if h.Level == level {
			n++
		}
	}
	return n
}

// Titles returns the text of the headings at the given level.
func (o Outline) Titles(level int) []string {
	var titles []string
	for _, h := range o {
		if h.Level == level {
			titles = append(titles, h.Text)
		}
	}
	return titles
}

// outlineParser is shared: goldmark parsers are safe for concurrent use.
var outlineParser = goldmark.New().Parser()

// ExtractOutline parses content and returns its headings.
// Code spans contribute their literal text.
func ExtractOutline(content string) Outline {
	source := []byte(content)
	doc := outlineParser.Parse(text.NewReader(source))

	var outline Outline
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		outline = append(outline, Heading{
			Level: heading.Level,
			Text:  strings.TrimSpace(plainText(heading, source)),
		})
		return ast.WalkSkipChildren, nil
	})

	return outline
}

// plainText concatenates the text segments below n.
func plainText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
