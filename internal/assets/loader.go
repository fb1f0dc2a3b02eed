package assets

// StyleLoader loads preview stylesheets by name (without .css extension).
// Implementations return ErrStyleNotFound for unknown names and
// ErrInvalidAssetName for names that are not plain file stems.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}
