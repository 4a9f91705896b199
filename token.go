package lsystem

import "strconv"

// Token is the symbol type of the text grammar: one printable character.
type Token rune

func (t Token) String() string {
	return string(t)
}

// GoString keeps tokens readable in test failure output.
func (t Token) GoString() string {
	return strconv.QuoteRune(rune(t))
}

type TokenSet[S comparable] map[S]struct{}

func (ts TokenSet[S]) Contains(t S) bool {
	_, exists := ts[t]
	return exists
}

func (ts TokenSet[S]) Add(t S) {
	ts[t] = struct{}{}
}

func (ts TokenSet[S]) AsSlice() []S {
	slice := make([]S, 0, len(ts))
	for t := range ts {
		slice = append(slice, t)
	}
	return slice
}
