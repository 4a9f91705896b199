package render

import (
	"fmt"
	"strings"

	lsystem "github.com/viktordanov/lsys"
)

// Counter tallies instructions without drawing anything.
type Counter struct {
	Pushes       int
	Pops         int
	Instructions map[lsystem.Instruction]int
	// MaxNesting is the deepest Push nesting observed.
	MaxNesting int

	nesting int
}

func NewCounter() *Counter {
	return &Counter{Instructions: make(map[lsystem.Instruction]int)}
}

func (c *Counter) Push() {
	c.Pushes++
	c.nesting++
	if c.nesting > c.MaxNesting {
		c.MaxNesting = c.nesting
	}
}

func (c *Counter) Pop() {
	c.Pops++
	if c.nesting > 0 {
		c.nesting--
	}
}

func (c *Counter) Render(i lsystem.Instruction) {
	c.Instructions[i]++
}

func (c *Counter) Flush() error { return nil }

// Total is the number of calls received, Flush excluded.
func (c *Counter) Total() int {
	total := c.Pushes + c.Pops
	for _, n := range c.Instructions {
		total += n
	}
	return total
}

func (c *Counter) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "push=%d pop=%d", c.Pushes, c.Pops)
	for i := lsystem.Forward; i <= lsystem.DecreaseStep; i++ {
		if n := c.Instructions[i]; n > 0 {
			fmt.Fprintf(&sb, " %s=%d", i, n)
		}
	}
	return sb.String()
}
