package evaluate

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes text for word comparison: lowercase, strip
// punctuation, collapse whitespace runs to single spaces, trim. Apostrophes
// are kept so contractions and elisions ("don't", "d'água") survive as one
// token. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			return r
		case r == '_' || r == '\'':
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
