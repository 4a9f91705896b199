package combinator

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type ErrorKind uint8

const (
	IO ErrorKind = iota
	ExpectingCharacter
	ExpectingEOF
	ExpectingString
	ExpectingPredicate
	EndOfInput
	ExpectingOneOfToParse
	GenericError
	Custom
)

func (k ErrorKind) String() string {
	switch k {
	case IO:
		return "IO"
	case ExpectingCharacter:
		return "ExpectingCharacter"
	case ExpectingEOF:
		return "ExpectingEOF"
	case ExpectingString:
		return "ExpectingString"
	case ExpectingPredicate:
		return "ExpectingPredicate"
	case EndOfInput:
		return "EndOfInput"
	case ExpectingOneOfToParse:
		return "ExpectingOneOfToParse"
	case GenericError:
		return "GenericError"
	case Custom:
		return "Custom"
	default:
		return "Unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is the failure value of every parser in this package. Only the
// field matching Kind is meaningful: Char for ExpectingCharacter, Expected for
// ExpectingString, Message for Custom and Err for IO.
type ParseError struct {
	Kind     ErrorKind
	Char     rune
	Expected string
	Message  string

	// Rest is the input that remained when the failure happened.
	Rest string
	Err  error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	switch e.Kind {
	case IO:
		sb.WriteString("i/o failure")
		if e.Err != nil {
			sb.WriteString(": ")
			sb.WriteString(e.Err.Error())
		}
	case ExpectingCharacter:
		sb.WriteString("expecting character ")
		sb.WriteString(strconv.QuoteRune(e.Char))
	case ExpectingEOF:
		sb.WriteString("expecting end of input")
	case ExpectingString:
		sb.WriteString("expecting ")
		sb.WriteString(strconv.Quote(e.Expected))
	case ExpectingPredicate:
		sb.WriteString("unexpected character")
	case EndOfInput:
		sb.WriteString("unexpected end of input")
	case ExpectingOneOfToParse:
		sb.WriteString("no alternative matched")
	case GenericError:
		sb.WriteString("parse error")
	case Custom:
		sb.WriteString(e.Message)
	default:
		sb.WriteString(e.Kind.String())
	}
	if e.Kind != IO && e.Kind != EndOfInput && e.Rest != "" {
		sb.WriteString(" before ")
		sb.WriteString(strconv.Quote(excerpt(e.Rest)))
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches on kind, so errors.Is(err, &ParseError{Kind: ExpectingEOF})
// works regardless of position or payload.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func excerpt(rest string) string {
	if i := strings.IndexAny(rest, "\r\n"); i >= 0 {
		rest = rest[:i]
	}
	const maxLen = 24
	if len(rest) <= maxLen {
		return rest
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(rest[cut]) {
		cut--
	}
	return rest[:cut] + "..."
}

func NewIOError(err error) *ParseError {
	return &ParseError{Kind: IO, Err: err}
}

func NewCustomError(message, rest string) *ParseError {
	return &ParseError{Kind: Custom, Message: message, Rest: rest}
}

func expectingCharacter(c rune, rest string) *ParseError {
	return &ParseError{Kind: ExpectingCharacter, Char: c, Rest: rest}
}

func expectingString(s, rest string) *ParseError {
	return &ParseError{Kind: ExpectingString, Expected: s, Rest: rest}
}

func failure(kind ErrorKind, rest string) *ParseError {
	return &ParseError{Kind: kind, Rest: rest}
}
