package lsystem

import (
	"fmt"
	"strings"
)

// Rule rewrites a single Predecessor into its Successor sequence.
type Rule[S comparable] struct {
	Predecessor S
	Successor   []S
}

func NewRule[S comparable](predecessor S, successor ...S) Rule[S] {
	return Rule[S]{
		Predecessor: predecessor,
		Successor:   successor,
	}
}

func (r Rule[S]) String() string {
	var sb strings.Builder
	fmt.Fprint(&sb, r.Predecessor)
	sb.WriteString(" =>")
	for _, s := range r.Successor {
		sb.WriteRune(' ')
		fmt.Fprint(&sb, s)
	}
	return sb.String()
}
