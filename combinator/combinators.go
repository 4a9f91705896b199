package combinator

import "errors"

// Option is the result of Optional.
type Option[T any] struct {
	Value   T
	Present bool
}

// Optional always succeeds. When p fails its error is dropped and the input is
// left untouched.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	return func(input string) (Option[T], string, error) {
		v, rest, err := p(input)
		if err != nil {
			return Option[T]{}, input, nil
		}
		return Option[T]{Value: v, Present: true}, rest, nil
	}
}

// AtLeast applies p n times, failing with the first error, and then keeps
// applying it until it fails or stops consuming input. That last attempt is
// discarded.
func AtLeast[T any](n int, p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		results := make([]T, 0, n)
		rest := input
		for i := 0; i < n; i++ {
			v, next, err := p(rest)
			if err != nil {
				return nil, input, err
			}
			results = append(results, v)
			rest = next
		}
		for {
			v, next, err := p(rest)
			if err != nil {
				return results, rest, nil
			}
			// A parser that succeeds without consuming would repeat forever.
			if len(next) == len(rest) {
				return results, rest, nil
			}
			results = append(results, v)
			rest = next
		}
	}
}

func Many[T any](p Parser[T]) Parser[[]T] {
	return AtLeast(0, p)
}

func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string) (U, string, error) {
		v, rest, err := p(input)
		if err != nil {
			var zero U
			return zero, input, err
		}
		return f(v), rest, nil
	}
}

// FlatMap runs p and then the fallible conversion f. Errors from f that are not
// already a *ParseError become Custom errors positioned where p started.
func FlatMap[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(input string) (U, string, error) {
		var zero U
		v, rest, err := p(input)
		if err != nil {
			return zero, input, err
		}
		u, err := f(v)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				pe = NewCustomError(err.Error(), input)
			}
			return zero, input, pe
		}
		return u, rest, nil
	}
}

// Recognize discards the value of p and returns the slice of input p consumed.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(input string) (string, string, error) {
		_, rest, err := p(input)
		if err != nil {
			return "", input, err
		}
		return input[:len(input)-len(rest)], rest, nil
	}
}

// OneOf tries each option against the same input and returns the first
// success.
func OneOf[T any](options ...Parser[T]) Parser[T] {
	return func(input string) (T, string, error) {
		for _, p := range options {
			if v, rest, err := p(input); err == nil {
				return v, rest, nil
			}
		}
		var zero T
		return zero, input, failure(ExpectingOneOfToParse, input)
	}
}

// Complete requires p to consume the whole input.
func Complete[T any](p Parser[T]) Parser[T] {
	eof := EOF()
	return func(input string) (T, string, error) {
		v, rest, err := p(input)
		if err != nil {
			return v, input, err
		}
		if _, _, err := eof(rest); err != nil {
			var zero T
			return zero, input, err
		}
		return v, rest, nil
	}
}

// Discard turns any parser into one that yields struct{}, handy for OneOf over
// parsers of different types.
func Discard[T any](p Parser[T]) Parser[struct{}] {
	return Map(p, func(T) struct{} { return struct{}{} })
}

// Until applies p repeatedly until end matches. end is probed before every
// application and is never consumed. Unlike Many, a failure of p is returned.
func Until[T, E any](p Parser[T], end Parser[E]) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		var results []T
		rest := input
		for {
			if _, _, err := end(rest); err == nil {
				return results, rest, nil
			}
			v, next, err := p(rest)
			if err != nil {
				return nil, input, err
			}
			if len(next) == len(rest) {
				return nil, input, failure(GenericError, rest)
			}
			results = append(results, v)
			rest = next
		}
	}
}
