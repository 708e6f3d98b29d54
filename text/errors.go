package text

import "errors"

// ErrUnsupportedFont is returned when font data cannot be parsed by either
// the shaper or the outline reader.
var ErrUnsupportedFont = errors.New("text: unsupported font data")

// FontError represents a font-related error.
type FontError struct {
	Name string
	Err  error
}

func (e *FontError) Error() string {
	if e.Name == "" {
		return "text: " + e.Err.Error()
	}
	return "text: " + e.Name + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FontError) Unwrap() error { return e.Err }
