package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	stdhtml "html"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Defaults for the HTML preview.
const (
	DefaultCodeStyle = "github"
	DefaultHTMLTitle = "Code Review"
)

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s</style>
</head>
<body>
%s
</body>
</html>`

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md    goldmark.Markdown
	title string
	css   string
}

// HasCodeStyle reports whether name is a registered chroma style.
func HasCodeStyle(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// CodeStyles returns the registered chroma style names, sorted.
func CodeStyles() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// syntax highlighting. pageCSS is emitted before the code style rules.
// An unknown codeStyle falls back to DefaultCodeStyle, an empty title to
// DefaultHTMLTitle.
func NewGoldmarkConverter(title, codeStyle, pageCSS string) *GoldmarkConverter {
	if title == "" {
		title = DefaultHTMLTitle
	}
	if !HasCodeStyle(codeStyle) {
		codeStyle = DefaultCodeStyle
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(codeStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // classes resolved by the embedded stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchors for findings
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe() intentionally NOT used: reports are untrusted text.
		),
	)

	return &GoldmarkConverter{
		md:    md,
		title: stdhtml.EscapeString(title),
		css:   joinCSS(pageCSS, codeStyleCSS(codeStyle)),
	}
}

// codeStyleCSS renders the chroma stylesheet for a style.
// A write failure yields an empty stylesheet; highlighting still works
// without colors.
func codeStyleCSS(name string) string {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(name)); err != nil {
		return ""
	}
	return buf.String()
}

func joinCSS(page, code string) string {
	if page == "" {
		return code
	}
	return strings.TrimRight(page, "\n") + "\n" + code
}

// ToHTML converts Markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, c.title, c.css, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
