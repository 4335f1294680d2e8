package textindex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenRunes drops single-character tokens.
const minTokenRunes = 2

// Tokenize lower-cases text, splits it on every rune that is not a letter or
// digit and drops short tokens and stop words. Token order follows the text.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenRunes {
			continue
		}
		tok := strings.ToLower(f)
		if IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
