package reviewmd

import "github.com/alnah/go-reviewmd/internal/pipeline"

// Input contains a report to format.
type Input struct {
	Markdown string // plaintext report (or an already rewritten one)
	HTML     bool   // also render a standalone HTML preview
}

// Heading is one heading of a formatted report.
type Heading = pipeline.Heading

// Outline lists a formatted report's headings in order.
type Outline = pipeline.Outline

// Result holds the outcome of formatting one report.
type Result struct {
	Markdown           string  // rewritten report
	HTML               []byte  // preview, nil unless Input.HTML
	Outline            Outline // headings of Markdown
	Changed            bool    // Markdown differs from Input.Markdown
	AlreadyTransformed bool    // Input.Markdown already started with TransformedMarker
}

// Findings returns the number of finding headings in the result.
func (r *Result) Findings() int {
	return r.Outline.Count(3)
}

// Option configures a Formatter.
type Option func(*Formatter)

// formatterConfig holds the HTML preview settings.
type formatterConfig struct {
	htmlTitle string
	codeStyle string
	pageCSS   *string // nil = embedded review style
}

// WithHTMLTitle sets the <title> of HTML previews.
func WithHTMLTitle(title string) Option {
	return func(f *Formatter) {
		f.cfg.htmlTitle = title
	}
}

// WithCodeStyle sets the chroma style for code blocks in HTML previews.
// Unknown names fall back to the default style.
func WithCodeStyle(name string) Option {
	return func(f *Formatter) {
		f.cfg.codeStyle = name
	}
}

// WithPreviewCSS sets the page stylesheet of HTML previews. An empty string
// leaves only the code style rules.
func WithPreviewCSS(css string) Option {
	return func(f *Formatter) {
		f.cfg.pageCSS = &css
	}
}

// WithHTMLConverter replaces the HTML preview renderer.
func WithHTMLConverter(c pipeline.HTMLConverter) Option {
	return func(f *Formatter) {
		f.htmlConverter = c
	}
}
