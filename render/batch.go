package render

import (
	"github.com/pkg/errors"

	lsystem "github.com/viktordanov/lsys"
)

// Batch forwards every call to each of its renderers in order.
type Batch []lsystem.Renderer

func NewBatch(renderers ...lsystem.Renderer) Batch {
	return Batch(renderers)
}

func (b Batch) Push() {
	for _, r := range b {
		r.Push()
	}
}

func (b Batch) Pop() {
	for _, r := range b {
		r.Pop()
	}
}

func (b Batch) Render(i lsystem.Instruction) {
	for _, r := range b {
		r.Render(i)
	}
}

// Flush flushes all renderers, even after a failure, and reports the first
// error.
func (b Batch) Flush() error {
	var first error
	for idx, r := range b {
		if err := r.Flush(); err != nil && first == nil {
			first = errors.Wrapf(err, "flushing renderer %d", idx)
		}
	}
	return first
}
