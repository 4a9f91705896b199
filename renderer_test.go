package lsystem

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	ops      []string
	flushed  bool
	flushErr error
}

func (r *recordingRenderer) Push() { r.ops = append(r.ops, "push") }
func (r *recordingRenderer) Pop()  { r.ops = append(r.ops, "pop") }
func (r *recordingRenderer) Render(i Instruction) {
	r.ops = append(r.ops, i.String())
}
func (r *recordingRenderer) Flush() error {
	r.flushed = true
	return r.flushErr
}

func plantRules() *RuleSet[Token] {
	return NewRuleSet[Token]().
		Add(NewRule[Token]('X', 'F', '[', '-', 'X', ']', '+', 'X')).
		Add(NewRule[Token]('F', 'F', 'F'))
}

func TestInstructionLookup(t *testing.T) {
	m := DefaultInstructions()
	assert.Equal(t, Forward, m.Lookup('F'))
	assert.Equal(t, RotateLeft, m.Lookup('-'))
	assert.Equal(t, RotateRight, m.Lookup('+'))
	assert.Equal(t, PushState, m.Lookup('['))
	assert.Equal(t, PopState, m.Lookup(']'))
	assert.Equal(t, NoOp, m.Lookup('X'))
	assert.Equal(t, NoOp, m.Lookup('€'))
}

func TestInstructionMapWith(t *testing.T) {
	base := DefaultInstructions()
	m := base.With(InstructionMap{'X': Forward, 'F': NoOp})
	assert.Equal(t, Forward, m.Lookup('X'))
	assert.Equal(t, NoOp, m.Lookup('F'))
	assert.Equal(t, Forward, base.Lookup('F'), "base map is left untouched")
}

func TestParseInstruction(t *testing.T) {
	for i := NoOp; i <= DecreaseStep; i++ {
		parsed, err := ParseInstruction(strings.ToUpper(i.String()))
		require.NoError(t, err)
		assert.Equal(t, i, parsed)
	}
	parsed, err := ParseInstruction(" rotate-left ")
	require.NoError(t, err)
	assert.Equal(t, RotateLeft, parsed)

	_, err = ParseInstruction("jump")
	assert.EqualError(t, err, `unknown instruction "jump"`)
}

func TestDriveEvents(t *testing.T) {
	l := NewLSystem(DefaultRendererConfig(), plantRules())
	r := &recordingRenderer{}

	n, err := DriveEvents(l.Walk([]Token{'X'}, 2).All(), DefaultInstructions(), r, 0)
	require.NoError(t, err)
	assert.True(t, r.flushed)
	// two pushes, seven renders, two pops
	assert.Equal(t, 11, n)
	assert.Equal(t, []string{
		"push", "push",
		"forward", "push", "rotate_left", "pop", "rotate_right",
		"pop", "pop",
	}, r.ops)
}

func TestDriveEventsLimit(t *testing.T) {
	l := NewLSystem(DefaultRendererConfig(), plantRules())
	r := &recordingRenderer{}
	n, err := DriveEvents(l.Walk([]Token{'X'}, 6).All(), DefaultInstructions(), r, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.True(t, r.flushed)
}

func TestDriveSymbols(t *testing.T) {
	l := NewLSystem(DefaultRendererConfig(), plantRules())
	r := &recordingRenderer{flushErr: errors.New("disk full")}

	n, err := DriveSymbols(l.Expand([]Token{'X'}, 1).All(), DefaultInstructions(), r, 0)
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 7, n)
	assert.Equal(t, []string{"forward", "push", "rotate_left", "pop", "rotate_right"}, r.ops)
}

func TestAnalyseGrowth(t *testing.T) {
	l := NewLSystem(DefaultRendererConfig(), NewRuleSet[Token]().
		Add(NewRule[Token]('A', 'A', 'B')).
		Add(NewRule[Token]('B', 'A')))

	g := l.AnalyseGrowth([]Token{'A'}, 5, 0)
	require.Len(t, g.Samples, 6)
	for i, s := range g.Samples {
		assert.Equal(t, i, s.Round)
		assert.Equal(t, s.FlatLength, s.Renders, "round %d", i)
		assert.Equal(t, s.Pushes, s.Pops)
		assert.False(t, s.Truncated)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 8, 13}, []int{
		g.Samples[0].FlatLength, g.Samples[1].FlatLength, g.Samples[2].FlatLength,
		g.Samples[3].FlatLength, g.Samples[4].FlatLength, g.Samples[5].FlatLength,
	})
	assert.InDelta(t, 1.678, g.AverageGrowth(), 0.001)

	truncated := l.AnalyseGrowth([]Token{'A'}, 5, 10)
	assert.True(t, truncated.Samples[5].Truncated)

	var buf bytes.Buffer
	require.NoError(t, g.RenderChart(&buf))
	assert.Contains(t, buf.String(), "Growth Analysis")
}
