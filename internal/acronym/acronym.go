// Package acronym builds acronyms from sentences: the first character of
// every whitespace-separated word, concatenated in order.
package acronym

import (
	"strings"
	"unicode/utf8"
)

// IsSpace reports whether r separates words: space, \t, \n, \v, \f or \r.
// Unicode spaces such as U+00A0 belong to the word they appear in.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Words splits sentence on runs of IsSpace characters. Leading and trailing
// whitespace never produce empty words.
func Words(sentence string) []string {
	return strings.FieldsFunc(sentence, IsSpace)
}

// Extract returns the first character of each word of sentence, in order,
// with the original casing. A sentence without words yields "".
func Extract(sentence string) string {
	words := Words(sentence)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(words))
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(r)
	}
	return b.String()
}
