package reviewmd

import "github.com/alnah/go-reviewmd/internal/pipeline"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)
