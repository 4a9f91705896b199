package render

import (
	"strings"

	lsystem "github.com/viktordanov/lsys"
)

var glyphs = map[lsystem.Instruction]byte{
	lsystem.Forward:      'F',
	lsystem.RotateLeft:   '-',
	lsystem.RotateRight:  '+',
	lsystem.IncreaseStep: '>',
	lsystem.DecreaseStep: '<',
}

// Collector writes every instruction it receives as a single glyph, with
// '[' and ']' for Push and Pop.
type Collector struct {
	sb strings.Builder
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Push() { c.sb.WriteByte('[') }

func (c *Collector) Pop() { c.sb.WriteByte(']') }

func (c *Collector) Render(i lsystem.Instruction) {
	if g, ok := glyphs[i]; ok {
		c.sb.WriteByte(g)
	}
}

func (c *Collector) Flush() error { return nil }

func (c *Collector) String() string {
	return c.sb.String()
}

// Len is the number of glyphs collected so far.
func (c *Collector) Len() int {
	return c.sb.Len()
}
