package combinator

import (
	"errors"
	"strconv"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertKind(t *testing.T, err error, kind ErrorKind) *ParseError {
	t.Helper()
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %v", err)
	assert.Equal(t, kind, pe.Kind)
	return pe
}

func TestChar(t *testing.T) {
	v, rest, err := Char('A')("ABCD")
	require.NoError(t, err)
	assert.Equal(t, 'A', v)
	assert.Equal(t, "BCD", rest)

	_, rest, err = Char('A')("BCD")
	pe := assertKind(t, err, ExpectingCharacter)
	assert.Equal(t, 'A', pe.Char)
	assert.Equal(t, "BCD", rest)

	_, _, err = Char('A')("")
	assertKind(t, err, ExpectingCharacter)
}

func TestCharMultiByte(t *testing.T) {
	v, rest, err := Char('λ')("λx")
	require.NoError(t, err)
	assert.Equal(t, 'λ', v)
	assert.Equal(t, "x", rest)
}

func TestAny(t *testing.T) {
	v, rest, err := Any(unicode.IsLetter)("AAABCD")
	require.NoError(t, err)
	assert.Equal(t, 'A', v)
	assert.Equal(t, "AABCD", rest)

	_, _, err = Any(unicode.IsLetter)("1A")
	assertKind(t, err, ExpectingPredicate)

	_, _, err = Any(unicode.IsLetter)("")
	assertKind(t, err, EndOfInput)
}

func TestLiteral(t *testing.T) {
	v, rest, err := Literal("foo")("foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", v)
	assert.Empty(t, rest)

	_, rest, err = Literal("foo")("fob")
	pe := assertKind(t, err, ExpectingString)
	assert.Equal(t, "foo", pe.Expected)
	assert.Equal(t, "fob", rest)
}

func TestEOF(t *testing.T) {
	_, _, err := EOF()("")
	assert.NoError(t, err)

	_, _, err = EOF()("x")
	assertKind(t, err, ExpectingEOF)
}

func TestOptional(t *testing.T) {
	v, rest, err := Optional(Char('A'))("AB")
	require.NoError(t, err)
	assert.True(t, v.Present)
	assert.Equal(t, 'A', v.Value)
	assert.Equal(t, "B", rest)

	v, rest, err = Optional(Char('A'))("BA")
	require.NoError(t, err)
	assert.False(t, v.Present)
	assert.Equal(t, "BA", rest)
}

func TestMany(t *testing.T) {
	v, rest, err := Many(Char('A'))("AAABCD")
	require.NoError(t, err)
	assert.Equal(t, []rune{'A', 'A', 'A'}, v)
	assert.Equal(t, "BCD", rest)

	v, rest, err = Many(Char('A'))("BCD")
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, "BCD", rest)
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		input   string
		want    []rune
		rest    string
		wantErr bool
	}{
		{"more than required", 2, "AAABCD", []rune{'A', 'A', 'A'}, "BCD", false},
		{"exactly required", 3, "AAAB", []rune{'A', 'A', 'A'}, "B", false},
		{"too few", 4, "AAAB", nil, "AAAB", true},
		{"none", 1, "BCD", nil, "BCD", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rest, err := AtLeast(tt.n, Char('A'))(tt.input)
			assert.Equal(t, tt.rest, rest)
			if tt.wantErr {
				assertKind(t, err, ExpectingCharacter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestAtLeastStopsOnNonConsumingParser(t *testing.T) {
	v, rest, err := Many(Optional(Char('A')))("AAB")
	require.NoError(t, err)
	assert.Len(t, v, 2)
	assert.Equal(t, "B", rest)

	v, rest, err = AtLeast(2, Optional(Char('A')))("B")
	require.NoError(t, err)
	assert.Len(t, v, 2, "only the mandatory results are kept")
	assert.False(t, v[0].Present)
	assert.Equal(t, "B", rest)
}

func TestErrorExcerptKeepsRunesWhole(t *testing.T) {
	// 23 ASCII bytes followed by a 3-byte rune straddling the cut.
	rest := "abcdefghijklmnopqrstuvw€€€"
	err := &ParseError{Kind: ExpectingEOF, Rest: rest}
	assert.Equal(t, `expecting end of input before "abcdefghijklmnopqrstuvw..."`, err.Error())

	err = &ParseError{Kind: ExpectingEOF, Rest: "λλλλλλλλλλλλλλλλ"}
	assert.Equal(t, `expecting end of input before "λλλλλλλλλλλλ..."`, err.Error())
}

func TestMap(t *testing.T) {
	length := Map(Many(Char('A')), func(cs []rune) int { return len(cs) })
	v, rest, err := length("AAABCD")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, "BCD", rest)

	_, _, err = Map(Char('B'), func(r rune) int { return 1 })("A")
	assertKind(t, err, ExpectingCharacter)
}

func TestFlatMap(t *testing.T) {
	digits := Recognize(AtLeast(1, Any(unicode.IsDigit)))
	number := FlatMap(digits, strconv.Atoi)

	v, rest, err := number("123abc")
	require.NoError(t, err)
	assert.Equal(t, 123, v)
	assert.Equal(t, "abc", rest)

	overflow := FlatMap(digits, func(s string) (int8, error) {
		n, err := strconv.ParseInt(s, 10, 8)
		return int8(n), err
	})
	_, rest, err = overflow("999")
	pe := assertKind(t, err, Custom)
	assert.Contains(t, pe.Message, "out of range")
	assert.Equal(t, "999", rest)

	passthrough := FlatMap(digits, func(string) (int, error) {
		return 0, &ParseError{Kind: GenericError}
	})
	_, _, err = passthrough("1")
	assertKind(t, err, GenericError)
}

func TestRecognize(t *testing.T) {
	decimal := Recognize(Sequence(func(s *Seq) struct{} {
		Step(s, AtLeast(1, Any(unicode.IsDigit)))
		Step(s, Char('.'))
		Step(s, AtLeast(1, Any(unicode.IsDigit)))
		return struct{}{}
	}))

	v, rest, err := decimal("40.25\n")
	require.NoError(t, err)
	assert.Equal(t, "40.25", v)
	assert.Equal(t, "\n", rest)

	_, rest, err = decimal("40\n")
	assertKind(t, err, ExpectingCharacter)
	assert.Equal(t, "40\n", rest)
}

func TestOneOf(t *testing.T) {
	p := OneOf(Char('B'), Char('A'))
	v, rest, err := p("AAABCD")
	require.NoError(t, err)
	assert.Equal(t, 'A', v)
	assert.Equal(t, "AABCD", rest)

	_, rest, err = p("CD")
	assertKind(t, err, ExpectingOneOfToParse)
	assert.Equal(t, "CD", rest)
}

func TestOneOfRetriesFromOriginalInput(t *testing.T) {
	ab := Recognize(Sequence(func(s *Seq) struct{} {
		Step(s, Char('A'))
		Step(s, Char('B'))
		return struct{}{}
	}))
	p := OneOf(ab, Literal("AC"))
	v, rest, err := p("ACD")
	require.NoError(t, err)
	assert.Equal(t, "AC", v)
	assert.Equal(t, "D", rest)
}

func TestComplete(t *testing.T) {
	_, _, err := Complete(Literal("foo"))("foo")
	assert.NoError(t, err)

	_, rest, err := Complete(Literal("foo"))("foobar")
	assertKind(t, err, ExpectingEOF)
	assert.Equal(t, "foobar", rest)
}

func TestSequence(t *testing.T) {
	p := Sequence(func(s *Seq) [2]rune {
		a := Step(s, Char('A'))
		b := Step(s, Char('b'))
		return [2]rune{a, b}
	})
	v, rest, err := p("Ab")
	require.NoError(t, err)
	assert.Equal(t, [2]rune{'A', 'b'}, v)
	assert.Empty(t, rest)

	_, rest, err = p("A b")
	pe := assertKind(t, err, ExpectingCharacter)
	assert.Equal(t, 'b', pe.Char)
	assert.Equal(t, "A b", rest)
}

func TestSequenceStopsAtFirstFailure(t *testing.T) {
	calls := 0
	counting := func(input string) (struct{}, string, error) {
		calls++
		return struct{}{}, input, nil
	}
	p := Sequence(func(s *Seq) bool {
		Step(s, Char('X'))
		Step(s, Parser[struct{}](counting))
		return s.Failed()
	})
	_, _, err := p("Y")
	assertKind(t, err, ExpectingCharacter)
	assert.Zero(t, calls)
}

func TestSpacedSequence(t *testing.T) {
	p := SpacedSequence(func(s *Seq) [2]rune {
		a := Step(s, Char('A'))
		Step(s, Literal("foo"))
		c := Step(s, Char('C'))
		return [2]rune{a, c}
	})
	v, rest, err := p(" \t A foo\t C  \t ")
	require.NoError(t, err)
	assert.Equal(t, [2]rune{'A', 'C'}, v)
	assert.Empty(t, rest)

	_, rest, err = p("A foo C\nnext")
	require.NoError(t, err)
	assert.Equal(t, "\nnext", rest)
}

func TestSkipWhitespace(t *testing.T) {
	_, rest, err := SkipWhitespace()(" \n\t\r\nx ")
	require.NoError(t, err)
	assert.Equal(t, "x ", rest)

	_, rest, err = SkipSpaces()(" \t\nx")
	require.NoError(t, err)
	assert.Equal(t, "\nx", rest)
}

func TestParseErrorMessages(t *testing.T) {
	_, _, err := Literal("rules")("rulez:\nA => B")
	assert.Equal(t, `expecting "rules" before "rulez:"`, err.Error())

	ioErr := NewIOError(errors.New("no such file"))
	assert.Equal(t, "i/o failure: no such file", ioErr.Error())
	assert.True(t, errors.Is(ioErr, &ParseError{Kind: IO}))
	assert.False(t, errors.Is(ioErr, &ParseError{Kind: Custom}))
}

func TestUntil(t *testing.T) {
	digits := Until(Any(unicode.IsDigit), Char(';'))

	v, rest, err := digits("123;4")
	require.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)
	assert.Equal(t, ";4", rest)

	v, rest, err = digits(";")
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, ";", rest)

	_, rest, err = digits("12x;")
	pe := assertKind(t, err, ExpectingPredicate)
	assert.Equal(t, "x;", pe.Rest)
	assert.Equal(t, "12x;", rest)

	_, _, err = Until(SkipSpaces(), Char(';'))("x")
	assertKind(t, err, GenericError)
}
