package lsystem

import (
	"fmt"
	"iter"
)

type EventKind uint8

const (
	EventPush EventKind = iota
	EventPop
	EventRender
)

func (k EventKind) String() string {
	switch k {
	case EventPush:
		return "Push"
	case EventPop:
		return "Pop"
	case EventRender:
		return "Render"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one item of a Walker's output. Symbol is only set for EventRender.
type Event[S comparable] struct {
	Kind   EventKind
	Symbol S
}

func Push[S comparable]() Event[S] {
	return Event[S]{Kind: EventPush}
}

func Pop[S comparable]() Event[S] {
	return Event[S]{Kind: EventPop}
}

func Render[S comparable](s S) Event[S] {
	return Event[S]{Kind: EventRender, Symbol: s}
}

func (e Event[S]) String() string {
	if e.Kind == EventRender {
		if r, ok := any(e.Symbol).(rune); ok {
			return fmt.Sprintf("Render(%c)", r)
		}
		return fmt.Sprintf("Render(%v)", e.Symbol)
	}
	return e.Kind.String()
}

type frame[S comparable] struct {
	production []S
	cursor     int
}

func (f *frame[S]) next() (S, bool) {
	if f.cursor >= len(f.production) {
		var zero S
		return zero, false
	}
	s := f.production[f.cursor]
	f.cursor++
	return s, true
}

// Walker expands the lead symbol of an axiom lazily, one Event per call to
// Next. Symbols are expanded until the frame stack reaches maxDepth; deeper
// symbols are emitted as Render events. Every Push is eventually matched by a
// Pop.
//
// A Walker holds at most maxDepth frames, each a cursor over a production
// owned by the RuleSet, so memory does not depend on the size of the fully
// expanded output. It is single use.
type Walker[S comparable] struct {
	rules    *RuleSet[S]
	root     []S
	maxDepth int

	started      bool
	stack        []frame[S]
	maxDepthSeen int
}

// NewWalker returns a Walker rooted at axiom[0]; the remaining axiom symbols
// are not walked. An empty axiom yields no events. maxDepth values below 1 are
// treated as 1, where the lead symbol itself is rendered.
func NewWalker[S comparable](rules *RuleSet[S], axiom []S, maxDepth int) *Walker[S] {
	if maxDepth < 1 {
		maxDepth = 1
	}
	var root []S
	if len(axiom) > 0 {
		root = []S{axiom[0]}
	}
	return &Walker[S]{
		rules:    rules,
		root:     root,
		maxDepth: maxDepth,
		stack:    make([]frame[S], 0, maxDepth),
	}
}

// Next returns the next event, or false once the walk is exhausted.
func (w *Walker[S]) Next() (Event[S], bool) {
	if !w.started {
		w.started = true
		if len(w.root) == 0 {
			return Event[S]{}, false
		}
		w.push(w.root)
		return Push[S](), true
	}

	if len(w.stack) == 0 {
		return Event[S]{}, false
	}

	top := &w.stack[len(w.stack)-1]
	symbol, ok := top.next()
	if !ok {
		w.stack[len(w.stack)-1] = frame[S]{}
		w.stack = w.stack[:len(w.stack)-1]
		return Pop[S](), true
	}
	if len(w.stack) < w.maxDepth {
		w.push(w.rules.production(symbol))
		return Push[S](), true
	}
	return Render(symbol), true
}

func (w *Walker[S]) push(production []S) {
	w.stack = append(w.stack, frame[S]{production: production})
	if len(w.stack) > w.maxDepthSeen {
		w.maxDepthSeen = len(w.stack)
	}
}

// All adapts the Walker to a range-over-func sequence. Breaking out of the loop
// leaves the Walker where it stopped.
func (w *Walker[S]) All() iter.Seq[Event[S]] {
	return func(yield func(Event[S]) bool) {
		for {
			e, ok := w.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// Depth is the current height of the frame stack.
func (w *Walker[S]) Depth() int {
	return len(w.stack)
}

func (w *Walker[S]) MaxDepth() int {
	return w.maxDepth
}

// MaxDepthSeen is the highest the frame stack has been so far.
func (w *Walker[S]) MaxDepthSeen() int {
	return w.maxDepthSeen
}
