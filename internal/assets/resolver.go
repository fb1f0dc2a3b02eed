package assets

import "errors"

// Resolver tries a custom directory first and falls back to the embedded
// styles when the custom directory lacks the requested name.
type Resolver struct {
	custom   StyleLoader // nil without a custom path
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver. An empty customBasePath uses embedded
// styles only; an invalid one returns ErrInvalidBasePath.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadStyle loads a style. Only "not found" from the custom directory falls
// back; validation and read errors are returned as is.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom != nil {
		css, err := r.custom.LoadStyle(name)
		if err == nil || !errors.Is(err, ErrStyleNotFound) {
			return css, err
		}
	}
	return r.embedded.LoadStyle(name)
}

// Names returns the embedded style names.
func (r *Resolver) Names() []string {
	return r.embedded.Names()
}

// Compile-time interface check.
var _ StyleLoader = (*Resolver)(nil)
