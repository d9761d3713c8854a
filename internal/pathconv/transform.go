package pathconv

import (
	"path/filepath"
	"strings"
)

var sep = string(filepath.Separator)

// ConvertBasename converts only the final segment of path, leaving every
// parent segment untouched. Paths without a convertible filename (the root,
// "." or "..") are returned unchanged.
func ConvertBasename(path string, req Request) (string, error) {
	trimmed := trimTrailingSep(path)
	if trimmed == "" {
		return path, nil
	}
	base := filepath.Base(trimmed)
	if base == sep || base == "." || base == ".." {
		return path, nil
	}

	converted, err := ConvertComponent(base, req)
	if err != nil {
		return "", err
	}

	idx := strings.LastIndex(trimmed, sep)
	if idx < 0 {
		return converted, nil
	}
	return trimmed[:idx+1] + converted, nil
}

// ConvertFull converts every normal segment of path independently.
// Structural segments (root marker, ".", "..", volume prefix) pass through.
// The first failing segment aborts the whole conversion.
func ConvertFull(path string, req Request) (string, error) {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]

	segments := strings.Split(rest, sep)
	for i, seg := range segments {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		converted, err := ConvertComponent(seg, req)
		if err != nil {
			return "", err
		}
		segments[i] = converted
	}
	return vol + strings.Join(segments, sep), nil
}

// ConvertFullExceptPrefix behaves like [ConvertFull] but leaves a leading
// prefix untouched when path begins with it component-wise. A prefix that
// does not match is inert.
func ConvertFullExceptPrefix(path, prefix string, req Request) (string, error) {
	if prefix == "" {
		return ConvertFull(path, req)
	}

	cleaned := filepath.Clean(path)
	cleanedPrefix := filepath.Clean(prefix)
	if !strings.HasPrefix(withTrailingSep(cleaned), withTrailingSep(cleanedPrefix)) {
		return ConvertFull(path, req)
	}

	rel := strings.TrimPrefix(cleaned, cleanedPrefix)
	rel = strings.TrimPrefix(rel, sep)
	if rel == "" {
		return cleaned, nil
	}

	converted, err := ConvertFull(rel, req)
	if err != nil {
		return "", err
	}
	return filepath.Join(cleanedPrefix, converted), nil
}

func trimTrailingSep(path string) string {
	if path == sep {
		return path
	}
	return strings.TrimRight(path, sep)
}

func withTrailingSep(path string) string {
	if strings.HasSuffix(path, sep) {
		return path
	}
	return path + sep
}
