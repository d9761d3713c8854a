// Package pathconv converts filesystem paths between naming conventions:
// single components (stem/extension aware), basenames, and full paths with
// optional prefix exclusion.
package pathconv

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/backmassage/ccpath/internal/convention"
)

// Request is the immutable pair governing one conversion. An empty From
// means word boundaries are inferred heuristically instead of decoded from
// a known convention.
type Request struct {
	From convention.Convention
	To   convention.Convention
}

// SplitStemExt splits a component around its last dot. A name whose only
// dot is leading (".gitignore") has no usable stem and is reported as
// extension-only.
func SplitStemExt(name string) (stem, ext string) {
	idx := strings.LastIndex(name, ".")
	switch {
	case idx < 0:
		return name, ""
	case idx == 0:
		return "", name[1:]
	default:
		return name[:idx], name[idx+1:]
	}
}

// ConvertComponent rewrites a single path component into the target
// convention. The extension, when present, is carried over unconverted.
// Extension-only components are returned verbatim: there is nothing to
// rename without a stem.
func ConvertComponent(name string, req Request) (string, error) {
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%w: %q", ErrNotUTF8, name)
	}

	stem, ext := SplitStemExt(name)
	if stem == "" && ext == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyComponent, name)
	}
	if stem == "" {
		return name, nil
	}

	converted := convention.Convert(stem, req.From, req.To)
	if ext != "" {
		return converted + "." + ext, nil
	}
	return converted, nil
}
