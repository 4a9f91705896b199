package lsystem

import (
	"fmt"
	"strings"
)

// Instruction is a drawing action understood by a Renderer.
type Instruction uint8

const (
	NoOp Instruction = iota
	Forward
	RotateLeft
	RotateRight
	PushState
	PopState
	IncreaseStep
	DecreaseStep
)

var instructionNames = [...]string{
	NoOp:         "noop",
	Forward:      "forward",
	RotateLeft:   "rotate_left",
	RotateRight:  "rotate_right",
	PushState:    "push",
	PopState:     "pop",
	IncreaseStep: "increase_step",
	DecreaseStep: "decrease_step",
}

func (i Instruction) String() string {
	if int(i) < len(instructionNames) {
		return instructionNames[i]
	}
	return fmt.Sprintf("Instruction(%d)", uint8(i))
}

// ParseInstruction accepts the names returned by Instruction.String, in any
// case, with '-' allowed in place of '_'.
func ParseInstruction(name string) (Instruction, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range instructionNames {
		if n == normalized {
			return Instruction(i), nil
		}
	}
	return NoOp, fmt.Errorf("unknown instruction %q", name)
}

// InstructionMap gives drawing meaning to symbols. Symbols without an entry
// map to NoOp.
type InstructionMap map[Token]Instruction

func DefaultInstructions() InstructionMap {
	return InstructionMap{
		'F': Forward,
		'G': Forward,
		'-': RotateLeft,
		'+': RotateRight,
		'[': PushState,
		']': PopState,
		'>': IncreaseStep,
		'<': DecreaseStep,
	}
}

func (m InstructionMap) Lookup(t Token) Instruction {
	if i, ok := m[t]; ok {
		return i
	}
	return NoOp
}

// With returns a copy of m with overrides applied on top.
func (m InstructionMap) With(overrides InstructionMap) InstructionMap {
	out := make(InstructionMap, len(m)+len(overrides))
	for t, i := range m {
		out[t] = i
	}
	for t, i := range overrides {
		out[t] = i
	}
	return out
}
