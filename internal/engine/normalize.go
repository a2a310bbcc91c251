package engine

import (
	"strings"
	"unicode"
)

// NormalizeText lowercases, strips control characters, and collapses
// whitespace. Empty input yields an empty string.
func NormalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsControl(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text into lowercase tokens. A token is a maximal
// run of letters and digits; embedded '-', '+', '#', and '.' are kept so tech
// terms like "c++", "c#", and "node.js" survive intact, while '/' splits
// ("ci/cd" yields two tokens). Tokens shorter than two runes are dropped.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.Trim(word.String(), ".-")
		word.Reset()
		if len([]rune(w)) >= 2 {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// isNumeric reports whether a token consists solely of digits and digit
// punctuation. Pure-numeric tokens carry no keyword signal.
func isNumeric(token string) bool {
	sawDigit := false
	for _, r := range token {
		switch {
		case unicode.IsDigit(r):
			sawDigit = true
		case r == '.' || r == ',' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return sawDigit
}
