package lsystem

import (
	"strings"
	"unicode"
)

// ParseAxiom turns every non-whitespace character of state into a Token.
func ParseAxiom(state string) []Token {
	tokens := make([]Token, 0, len(state))
	for _, r := range state {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, Token(r))
	}
	return tokens
}

func TokensString(tokens []Token) string {
	var sb strings.Builder
	sb.Grow(len(tokens))
	for _, t := range tokens {
		sb.WriteRune(rune(t))
	}
	return sb.String()
}
