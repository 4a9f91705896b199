package lsystem

import "strings"

// RuleSet maps each symbol to the production it rewrites to. It is total:
// symbols without a rule rewrite to themselves.
//
// A RuleSet is built with Add or Insert and must not be modified once a Walker
// or Expander is reading from it.
type RuleSet[S comparable] struct {
	productions map[S][]S
	order       []S
}

func NewRuleSet[S comparable]() *RuleSet[S] {
	return &RuleSet[S]{
		productions: make(map[S][]S, 4),
	}
}

// FromRules folds rules into a new RuleSet in order, so later rules for the
// same predecessor replace earlier ones.
func FromRules[S comparable](rules []Rule[S]) *RuleSet[S] {
	rs := NewRuleSet[S]()
	for _, r := range rules {
		rs.Add(r)
	}
	return rs
}

func (rs *RuleSet[S]) Add(r Rule[S]) *RuleSet[S] {
	return rs.Insert(r.Predecessor, r.Successor)
}

// Insert sets the production for predecessor, replacing any previous one. The
// successor slice is copied.
func (rs *RuleSet[S]) Insert(predecessor S, successor []S) *RuleSet[S] {
	if _, exists := rs.productions[predecessor]; !exists {
		rs.order = append(rs.order, predecessor)
	}
	production := make([]S, len(successor))
	copy(production, successor)
	rs.productions[predecessor] = production
	return rs
}

// Apply returns a copy of the production for s, or []S{s} if there is none.
func (rs *RuleSet[S]) Apply(s S) []S {
	production := rs.production(s)
	out := make([]S, len(production))
	copy(out, production)
	return out
}

// production is Apply without the copy. Callers must not modify the result.
func (rs *RuleSet[S]) production(s S) []S {
	if production, exists := rs.productions[s]; exists {
		return production
	}
	return []S{s}
}

func (rs *RuleSet[S]) Lookup(s S) ([]S, bool) {
	production, exists := rs.productions[s]
	if !exists {
		return nil, false
	}
	out := make([]S, len(production))
	copy(out, production)
	return out, true
}

func (rs *RuleSet[S]) Len() int {
	return len(rs.productions)
}

// Rules lists the rules ordered by when their predecessor was first inserted.
func (rs *RuleSet[S]) Rules() []Rule[S] {
	rules := make([]Rule[S], 0, len(rs.order))
	for _, s := range rs.order {
		successor, _ := rs.Lookup(s)
		rules = append(rules, Rule[S]{Predecessor: s, Successor: successor})
	}
	return rules
}

// Variables are the symbols that have a rule.
func (rs *RuleSet[S]) Variables() TokenSet[S] {
	vars := make(TokenSet[S], len(rs.productions))
	for s := range rs.productions {
		vars.Add(s)
	}
	return vars
}

// Constants are the symbols that occur in a production but have no rule of
// their own.
func (rs *RuleSet[S]) Constants() TokenSet[S] {
	consts := make(TokenSet[S])
	for _, production := range rs.productions {
		for _, s := range production {
			if _, exists := rs.productions[s]; !exists {
				consts.Add(s)
			}
		}
	}
	return consts
}

func (rs *RuleSet[S]) String() string {
	var sb strings.Builder
	for i, r := range rs.Rules() {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}
