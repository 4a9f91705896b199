package lsystem

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// LSystem is a loaded grammar: rendering parameters plus rewrite rules. Both
// are fixed once loaded; every Walk or Expand call starts an independent run.
type LSystem struct {
	Config RendererConfig
	Rules  *RuleSet[Token]
}

func NewLSystem(config RendererConfig, rules *RuleSet[Token]) *LSystem {
	if rules == nil {
		rules = NewRuleSet[Token]()
	}
	return &LSystem{
		Config: config,
		Rules:  rules,
	}
}

// Walk starts a depth-bounded structural expansion of the axiom's lead
// symbol.
func (l *LSystem) Walk(axiom []Token, maxDepth int) *Walker[Token] {
	return NewWalker(l.Rules, axiom, maxDepth)
}

// Expand rewrites axiom the given number of rounds and streams the result.
func (l *LSystem) Expand(axiom []Token, iterations int) *SymbolStream[Token] {
	return Expand(l.Rules, axiom, iterations)
}

type yamlLSystem struct {
	Render RendererConfig `yaml:"render"`
	Rules  *yaml.Node     `yaml:"rules"`
}

// MarshalYAML writes the system with rules as an ordered mapping from
// predecessor to successor string.
func (l *LSystem) MarshalYAML() (interface{}, error) {
	rules := yaml.Node{Kind: yaml.MappingNode}
	for _, r := range l.Rules.Rules() {
		rules.Content = append(rules.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: r.Predecessor.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: TokensString(r.Successor)},
		)
	}
	return yamlLSystem{Render: l.Config, Rules: &rules}, nil
}

func (l *LSystem) String() string {
	var sb strings.Builder
	sb.WriteString("LSystem{")
	sb.WriteString(strings.ReplaceAll(l.Rules.String(), "\n", "; "))
	sb.WriteString("}")
	return sb.String()
}
