package convention

// Word splitting and joining. The heuristic split is delegated to the
// strcase library; joining is a deterministic function of the target
// convention. Conversion without a known source convention is lossy: word
// boundaries are inferred and round-tripping is not guaranteed.

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// SplitWords breaks a stem into lowercase words using heuristic boundary
// detection: existing separators, lower-to-upper transitions, and
// digit/letter boundaries.
func SplitWords(stem string) []string {
	return strings.Fields(strcase.ToDelimited(stem, ' '))
}

// SplitWordsAs breaks a stem into lowercase words using only the boundaries
// the source convention encodes. Flat conventions carry no boundary
// information, so the whole stem is a single word.
func SplitWordsAs(stem string, from Convention) []string {
	switch from {
	case Snake, UpperSnake:
		return lowerWords(strings.Split(stem, "_"))
	case Kebab:
		return lowerWords(strings.Split(stem, "-"))
	case Title:
		return lowerWords(strings.Fields(stem))
	case Camel, UpperCamel:
		return splitCamel(stem)
	default:
		if stem == "" {
			return nil
		}
		return []string{strings.ToLower(stem)}
	}
}

// Join renders a word sequence in the target convention. Words are expected
// lowercase, as produced by [SplitWords] and [SplitWordsAs].
func Join(words []string, to Convention) string {
	switch to {
	case Title:
		return strings.Join(mapWords(words, titleCaser.String), " ")
	case Flat:
		return strings.Join(words, "")
	case UpperFlat:
		return strings.ToUpper(strings.Join(words, ""))
	case Camel:
		if len(words) == 0 {
			return ""
		}
		return words[0] + strings.Join(mapWords(words[1:], titleCaser.String), "")
	case UpperCamel:
		return strings.Join(mapWords(words, titleCaser.String), "")
	case Snake:
		return strings.Join(words, "_")
	case UpperSnake:
		return strings.ToUpper(strings.Join(words, "_"))
	case Kebab:
		return strings.Join(words, "-")
	}
	return strings.Join(words, "")
}

// Convert rewrites stem into the target convention. An empty from means the
// word boundaries are inferred heuristically.
func Convert(stem string, from, to Convention) string {
	var words []string
	if from == "" {
		words = SplitWords(stem)
	} else {
		words = SplitWordsAs(stem, from)
	}
	return Join(words, to)
}

func splitCamel(stem string) []string {
	var words []string
	start := 0
	for i, r := range stem {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, stem[start:i])
			start = i
		}
	}
	words = append(words, stem[start:])
	return lowerWords(words)
}

// lowerWords lowercases every word and drops empties (consecutive or
// leading/trailing separators in the source produce empty fields).
func lowerWords(in []string) []string {
	out := in[:0]
	for _, w := range in {
		if w == "" {
			continue
		}
		out = append(out, strings.ToLower(w))
	}
	return out
}

func mapWords(in []string, f func(string) string) []string {
	out := make([]string, len(in))
	for i, w := range in {
		out[i] = f(w)
	}
	return out
}
