package lsystem

import "iter"

// Expander rewrites a whole sequence in rounds: every symbol is replaced by its
// production, in order, once per round. Unlike a Walker it materializes each
// round, so it is only practical for a small number of iterations.
type Expander[S comparable] struct {
	rules     *RuleSet[S]
	pool      *BufferPool[S]
	iteration int
	streamed  bool
}

func NewExpander[S comparable](rules *RuleSet[S], axiom []S) *Expander[S] {
	pool := NewBufferPool[S](len(axiom) * 2)
	pool.AppendSlice(axiom)
	pool.Swap()
	return &Expander[S]{
		rules: rules,
		pool:  pool,
	}
}

// IterateOnce applies one round of rewriting and returns the new sequence. The
// returned slice is only valid until the next call.
func (e *Expander[S]) IterateOnce() []S {
	if e.streamed {
		panic("lsystem: Expander iterated after Stream")
	}
	for _, s := range e.pool.ReadAll() {
		e.pool.AppendSlice(e.rules.production(s))
	}
	e.pool.Swap()
	e.iteration++
	return e.pool.ReadAll()
}

// IterateUntil runs rounds until n have been applied in total.
func (e *Expander[S]) IterateUntil(n int) []S {
	for e.iteration < n {
		e.IterateOnce()
	}
	return e.pool.ReadAll()
}

func (e *Expander[S]) Iteration() int {
	return e.iteration
}

// Len is the length of the current sequence.
func (e *Expander[S]) Len() int {
	return len(e.pool.ReadAll())
}

// Stream hands out the current sequence one symbol at a time. The Expander must
// not be iterated afterwards.
func (e *Expander[S]) Stream() *SymbolStream[S] {
	e.streamed = true
	return &SymbolStream[S]{symbols: e.pool.ReadAll()}
}

// Expand is NewExpander, IterateUntil and Stream in one call.
func Expand[S comparable](rules *RuleSet[S], axiom []S, iterations int) *SymbolStream[S] {
	e := NewExpander(rules, axiom)
	e.IterateUntil(iterations)
	return e.Stream()
}

// SymbolStream is a single pass over a flat symbol sequence.
type SymbolStream[S comparable] struct {
	symbols []S
	pos     int
}

func (s *SymbolStream[S]) Next() (S, bool) {
	if s.pos >= len(s.symbols) {
		var zero S
		return zero, false
	}
	sym := s.symbols[s.pos]
	s.pos++
	return sym, true
}

func (s *SymbolStream[S]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			sym, ok := s.Next()
			if !ok || !yield(sym) {
				return
			}
		}
	}
}

// Remaining is the number of symbols not yet pulled.
func (s *SymbolStream[S]) Remaining() int {
	return len(s.symbols) - s.pos
}
