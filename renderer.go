package lsystem

import "iter"

// Renderer consumes drawing instructions in order. Push and Pop save and
// restore the drawing state; Flush is called once the stream ends.
type Renderer interface {
	Push()
	Pop()
	Render(Instruction)
	Flush() error
}

// DriveEvents feeds a Walker's events to r. Structural events map directly to
// Push and Pop, rendered symbols go through m. With limit > 0 at most limit
// events are pulled. It returns the number of events pulled.
func DriveEvents(events iter.Seq[Event[Token]], m InstructionMap, r Renderer, limit int) (int, error) {
	n := 0
	for e := range events {
		switch e.Kind {
		case EventPush:
			r.Push()
		case EventPop:
			r.Pop()
		case EventRender:
			dispatch(r, m.Lookup(e.Symbol))
		}
		n++
		if limit > 0 && n >= limit {
			break
		}
	}
	return n, r.Flush()
}

// DriveSymbols feeds a flat symbol sequence to r through m.
func DriveSymbols(symbols iter.Seq[Token], m InstructionMap, r Renderer, limit int) (int, error) {
	n := 0
	for s := range symbols {
		dispatch(r, m.Lookup(s))
		n++
		if limit > 0 && n >= limit {
			break
		}
	}
	return n, r.Flush()
}

func dispatch(r Renderer, i Instruction) {
	switch i {
	case NoOp:
	case PushState:
		r.Push()
	case PopState:
		r.Pop()
	default:
		r.Render(i)
	}
}
