// Package combinator implements small composable parsers over strings.
//
// A Parser consumes a prefix of its input and returns the parsed value together
// with the unconsumed remainder. Parsers never copy or modify the input, they
// only re-slice it, so a failed alternative can always be retried from the
// original string.
package combinator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Parser[T any] func(input string) (T, string, error)

// Parse runs p against input.
func Parse[T any](p Parser[T], input string) (T, string, error) {
	return p(input)
}

// Char matches exactly the rune c.
func Char(c rune) Parser[rune] {
	return func(input string) (rune, string, error) {
		r, size := utf8.DecodeRuneInString(input)
		if size == 0 || r != c {
			return 0, input, expectingCharacter(c, input)
		}
		return r, input[size:], nil
	}
}

// Any matches a single rune for which pred returns true.
func Any(pred func(rune) bool) Parser[rune] {
	return func(input string) (rune, string, error) {
		if input == "" {
			return 0, input, failure(EndOfInput, input)
		}
		r, size := utf8.DecodeRuneInString(input)
		if !pred(r) {
			return 0, input, failure(ExpectingPredicate, input)
		}
		return r, input[size:], nil
	}
}

// Literal matches the exact string s and returns the matched slice of input.
func Literal(s string) Parser[string] {
	return func(input string) (string, string, error) {
		if !strings.HasPrefix(input, s) {
			return "", input, expectingString(s, input)
		}
		return input[:len(s)], input[len(s):], nil
	}
}

// EOF succeeds only on empty input.
func EOF() Parser[struct{}] {
	return func(input string) (struct{}, string, error) {
		if input != "" {
			return struct{}{}, input, failure(ExpectingEOF, input)
		}
		return struct{}{}, input, nil
	}
}

// SkipSpaces consumes spaces and tabs. It never fails.
func SkipSpaces() Parser[struct{}] {
	return func(input string) (struct{}, string, error) {
		return struct{}{}, skipSpaces(input), nil
	}
}

// SkipWhitespace consumes any whitespace, line breaks included. It never fails.
func SkipWhitespace() Parser[struct{}] {
	return func(input string) (struct{}, string, error) {
		return struct{}{}, strings.TrimLeftFunc(input, unicode.IsSpace), nil
	}
}

func skipSpaces(input string) string {
	return strings.TrimLeft(input, " \t")
}
