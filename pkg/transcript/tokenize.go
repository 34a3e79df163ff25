package transcript

import (
	"strings"
	"unicode"
)

// Tokenize normalizes raw utterance text into the token sequence used for
// scoring: case-folded, split on anything that is not a letter or digit, with
// empty tokens dropped. Queries and stored lines must go through the same
// normalization or synonym sets on the two sides would never intersect.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	if len(fields) == 0 {
		return nil
	}
	return fields
}
