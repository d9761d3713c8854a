package pathconv

import "errors"

// Conversion failures are per-component. Callers match with [errors.Is];
// wrapped messages carry the offending component or path.
var (
	// ErrNotUTF8 marks a path component that is not valid UTF-8 text.
	ErrNotUTF8 = errors.New("path component is not valid utf-8")

	// ErrEmptyComponent marks a component with neither stem nor extension.
	ErrEmptyComponent = errors.New("path component has neither stem nor extension")
)
