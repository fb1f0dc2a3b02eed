package reviewmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-reviewmd/internal/assets"
	"github.com/alnah/go-reviewmd/internal/pipeline"
	"github.com/alnah/go-reviewmd/internal/rewrite"
)

// Compile-time interface implementation check.
var _ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// Formatter rewrites reports and renders their previews.
// Create with NewFormatter; the zero value is not usable.
type Formatter struct {
	cfg           formatterConfig
	htmlConverter pipeline.HTMLConverter
}

// NewFormatter creates a Formatter. Options override the HTML preview
// defaults: title "Code Review", code style "github" and the embedded
// review stylesheet.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	if f.htmlConverter == nil {
		pageCSS := assets.DefaultCSS()
		if f.cfg.pageCSS != nil {
			pageCSS = *f.cfg.pageCSS
		}
		f.htmlConverter = pipeline.NewGoldmarkConverter(f.cfg.htmlTitle, f.cfg.codeStyle, pageCSS)
	}
	return f
}

// Format rewrites input.Markdown and, if requested, renders the HTML preview.
// The only errors are context errors and ErrHTMLConversion.
func (f *Formatter) Format(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	markdown := rewrite.Document(input.Markdown)
	result := &Result{
		Markdown:           markdown,
		Outline:            pipeline.ExtractOutline(markdown),
		Changed:            markdown != input.Markdown,
		AlreadyTransformed: rewrite.IsTransformed(strings.NewReader(input.Markdown)),
	}

	if input.HTML {
		html, err := f.htmlConverter.ToHTML(ctx, markdown)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, ErrHTMLConversion) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		result.HTML = []byte(html)
	}

	return result, nil
}
