// Package convention defines the closed set of supported naming conventions
// and the word-level case conversion built on top of them.
package convention

import "fmt"

// Convention is a naming style defined by capitalization rules and word
// separator choice. The value of each constant is its canonical CLI token;
// tokens are case-sensitive because casing distinguishes variants
// (e.g. "flat" vs "FLAT").
type Convention string

const (
	Title      Convention = "title" // Title Case
	Flat       Convention = "flat"  // flatcase
	UpperFlat  Convention = "FLAT"  // UPPERFLATCASE
	Camel      Convention = "camel" // camelCase
	UpperCamel Convention = "CAMEL" // CamelCase
	Snake      Convention = "snake" // snake_case
	UpperSnake Convention = "SNAKE" // SNAKE_CASE
	Kebab      Convention = "kebab" // kebab-case
)

// All lists every supported convention in help-text order.
var All = []Convention{Title, Flat, UpperFlat, Camel, UpperCamel, Snake, UpperSnake, Kebab}

// Example returns a sample rendering of the convention, used in help text.
func (c Convention) Example() string {
	switch c {
	case Title:
		return "Title Case"
	case Flat:
		return "flatcase"
	case UpperFlat:
		return "UPPERFLATCASE"
	case Camel:
		return "camelCase"
	case UpperCamel:
		return "CamelCase"
	case Snake:
		return "snake_case"
	case UpperSnake:
		return "SNAKE_CASE"
	case Kebab:
		return "kebab-case"
	}
	return string(c)
}

// UnsupportedError reports a convention token outside the supported set.
type UnsupportedError struct {
	Token string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported naming convention %q", e.Token)
}

// Parse maps a canonical token to its Convention. Matching is exact and
// case-sensitive; any other input yields an [UnsupportedError].
func Parse(token string) (Convention, error) {
	for _, c := range All {
		if token == string(c) {
			return c, nil
		}
	}
	return "", &UnsupportedError{Token: token}
}
