// Package textproc turns raw headline text into normalized word tokens.
package textproc

import (
	"strings"
	"unicode"
)

// asciiPunctuation matches Python's string.punctuation
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize lowercases text, strips punctuation and every rune outside a-z and
// whitespace, splits on whitespace and drops stopwords. It never fails; text
// with nothing left yields an empty, non-nil slice.
func Normalize(text string) []string {
	text = strings.ToLower(text)
	text = stripPunctuation(text)
	text = keepLetters(text)

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsStopword(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// NormalizeString is Normalize joined back with single spaces
func NormalizeString(text string) string {
	return strings.Join(Normalize(text), " ")
}

func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)
}

func keepLetters(text string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}
