package combinator

// Seq threads one cursor through a fixed chain of sub-parses. It is only valid
// inside the build function handed to Sequence or SpacedSequence.
//
// Once a step fails the Seq is poisoned: later steps return zero values without
// running, and the enclosing parser reports the first failure.
type Seq struct {
	rest   string
	err    error
	spaced bool
}

// Step runs p at the current cursor position and advances past what it
// consumed.
func Step[T any](s *Seq, p Parser[T]) T {
	var zero T
	if s.err != nil {
		return zero
	}
	if s.spaced {
		s.rest = skipSpaces(s.rest)
	}
	v, rest, err := p(s.rest)
	if err != nil {
		s.err = err
		return zero
	}
	s.rest = rest
	return v
}

// Failed reports whether a previous step has failed.
func (s *Seq) Failed() bool {
	return s.err != nil
}

// Sequence builds a parser from build, which calls Step for each element in
// order and assembles the result from the returned values.
func Sequence[T any](build func(s *Seq) T) Parser[T] {
	return sequence(build, false)
}

// SpacedSequence is Sequence with spaces and tabs skipped before every step and
// once more after the last one.
func SpacedSequence[T any](build func(s *Seq) T) Parser[T] {
	return sequence(build, true)
}

func sequence[T any](build func(s *Seq) T, spaced bool) Parser[T] {
	return func(input string) (T, string, error) {
		s := &Seq{rest: input, spaced: spaced}
		v := build(s)
		if s.err != nil {
			var zero T
			return zero, input, s.err
		}
		if spaced {
			s.rest = skipSpaces(s.rest)
		}
		return v, s.rest, nil
	}
}
