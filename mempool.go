package lsystem

type Buffer[S any] struct {
	Symbols []S
	Len     int
}

// BufferPool is a pair of buffers used to rewrite a sequence round by round:
// the current sequence is read from one buffer while the next one is written
// into the other, then the two are swapped.
type BufferPool[S any] struct {
	active   *Buffer[S]
	inactive *Buffer[S]

	swap bool
}

func NewBufferPool[S any](capacity int) *BufferPool[S] {
	if capacity < 1 {
		capacity = 1
	}
	return &BufferPool[S]{
		active: &Buffer[S]{
			Symbols: make([]S, capacity),
		},
		inactive: &Buffer[S]{
			Symbols: make([]S, capacity),
		},
	}
}

func (m *BufferPool[S]) Reset() {
	m.active.Len = 0
	m.inactive.Len = 0
	m.swap = false
}

// GetActive returns the buffer being written.
func (m *BufferPool[S]) GetActive() *Buffer[S] {
	if m.swap {
		return m.inactive
	}
	return m.active
}

// GetSwap returns the buffer holding the previous round.
func (m *BufferPool[S]) GetSwap() *Buffer[S] {
	if m.swap {
		return m.active
	}
	return m.inactive
}

func (m *BufferPool[S]) Append(s S) {
	active := m.GetActive()
	m.ensure(active, 1)
	active.Symbols[active.Len] = s
	active.Len++
}

func (m *BufferPool[S]) AppendSlice(symbols []S) {
	active := m.GetActive()
	m.ensure(active, len(symbols))
	copy(active.Symbols[active.Len:], symbols)
	active.Len += len(symbols)
}

// ensure grows b, doubling its capacity, until n more symbols fit.
func (m *BufferPool[S]) ensure(b *Buffer[S], n int) {
	if b.Len+n <= len(b.Symbols) {
		return
	}
	newCap := len(b.Symbols) * 2
	for b.Len+n > newCap {
		newCap *= 2
	}
	grown := make([]S, newCap)
	copy(grown, b.Symbols[:b.Len])
	b.Symbols = grown
}

func (m *BufferPool[S]) GetLen() int {
	return m.GetActive().Len
}

func (m *BufferPool[S]) GetCap() int {
	return len(m.GetActive().Symbols)
}

// Swap makes the active buffer the read side and clears the other one for
// writing.
func (m *BufferPool[S]) Swap() {
	m.swap = !m.swap
	m.ResetWritingHead()
}

func (m *BufferPool[S]) ResetWritingHead() {
	m.GetActive().Len = 0
}

// ReadAll returns the symbols of the last completed round.
func (m *BufferPool[S]) ReadAll() []S {
	read := m.GetSwap()
	return read.Symbols[:read.Len]
}
