// Package grammar reads L-system definitions:
//
//	render:
//	starting_step = 40.5
//	pen_color = black
//
//	rules:
//	A => A B
//	B => A
//
// The render section assigns drawing parameters, one `key = value` per line.
// Unknown keys are ignored and omitted keys keep their defaults. Each rule maps
// one symbol to the sequence of symbols that replaces it; any printable,
// non-space character is a symbol.
package grammar

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	lsystem "github.com/viktordanov/lsys"
	"github.com/viktordanov/lsys/combinator"
)

// Error locates a syntax failure in the parsed text. Line and Col are 1-based;
// Col counts runes.
type Error struct {
	Line int
	Col  int
	Err  *combinator.ParseError
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse reads a complete definition. Nothing is returned unless the whole text
// is well formed.
func Parse(text string) (*lsystem.LSystem, error) {
	l, _, err := combinator.Parse(document, text)
	if err != nil {
		return nil, locate(text, err)
	}
	return l, nil
}

// ParseRules reads a bare rules body, without the render and rules headers.
func ParseRules(text string) (*lsystem.RuleSet[lsystem.Token], error) {
	rs, _, err := combinator.Parse(rulesOnly, text)
	if err != nil {
		return nil, locate(text, err)
	}
	return rs, nil
}

// Load reads and parses the definition stored at path.
func Load(path string) (*lsystem.LSystem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(combinator.NewIOError(err), "loading grammar %s", path)
	}
	l, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "loading grammar %s", path)
	}
	return l, nil
}

func locate(input string, err error) error {
	var pe *combinator.ParseError
	if !errors.As(err, &pe) || len(pe.Rest) > len(input) || !strings.HasSuffix(input, pe.Rest) {
		return err
	}
	consumed := input[:len(input)-len(pe.Rest)]
	line := strings.Count(consumed, "\n") + 1
	if i := strings.LastIndexByte(consumed, '\n'); i >= 0 {
		consumed = consumed[i+1:]
	}
	return &Error{Line: line, Col: utf8.RuneCountInString(consumed) + 1, Err: pe}
}

type configItem func(*lsystem.RendererConfig)

var numericKeys = map[string]func(*lsystem.RendererConfig) *float64{
	"starting_step":         func(c *lsystem.RendererConfig) *float64 { return &c.StartingStep },
	"step_multiplier":       func(c *lsystem.RendererConfig) *float64 { return &c.StepMultiplier },
	"starting_angle":        func(c *lsystem.RendererConfig) *float64 { return &c.StartingAngle },
	"angle_multiplier":      func(c *lsystem.RendererConfig) *float64 { return &c.AngleMultiplier },
	"starting_line_width":   func(c *lsystem.RendererConfig) *float64 { return &c.StartingLineWidth },
	"line_width_multiplier": func(c *lsystem.RendererConfig) *float64 { return &c.LineWidthMultiplier },
}

var stringKeys = map[string]func(*lsystem.RendererConfig) *string{
	"background_color": func(c *lsystem.RendererConfig) *string { return &c.BackgroundColor },
	"pen_color":        func(c *lsystem.RendererConfig) *string { return &c.PenColor },
}

var (
	lineBreak = combinator.OneOf(combinator.Literal("\r\n"), combinator.Literal("\n"), combinator.Literal("\r"))

	digit = combinator.Any(func(r rune) bool { return r >= '0' && r <= '9' })

	// decimal is \d+\.\d+, nothing looser.
	decimal = combinator.FlatMap(
		combinator.Recognize(combinator.Sequence(func(s *combinator.Seq) struct{} {
			combinator.Step(s, combinator.AtLeast(1, digit))
			combinator.Step(s, combinator.Char('.'))
			combinator.Step(s, combinator.AtLeast(1, digit))
			return struct{}{}
		})),
		parseFloat,
	)

	identifier = combinator.Recognize(combinator.AtLeast(1, combinator.Any(func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	})))

	restOfLine = combinator.Recognize(combinator.Many(combinator.Any(func(r rune) bool {
		return r != '\n' && r != '\r'
	})))

	symbol = combinator.Map(combinator.Any(func(r rune) bool {
		return unicode.IsPrint(r) && !unicode.IsSpace(r)
	}), func(r rune) lsystem.Token { return lsystem.Token(r) })

	configItems = combinator.Until(configLine(), header("rules"))

	rulesBody = combinator.FlatMap(
		combinator.Until(rule(), combinator.Sequence(func(s *combinator.Seq) struct{} {
			combinator.Step(s, combinator.SkipWhitespace())
			return combinator.Step(s, combinator.EOF())
		})),
		func(rules []lsystem.Rule[lsystem.Token]) (*lsystem.RuleSet[lsystem.Token], error) {
			if len(rules) == 0 {
				return nil, errors.New("expecting at least one rule")
			}
			return lsystem.FromRules(rules), nil
		},
	)

	rulesOnly = combinator.Complete(combinator.Sequence(func(s *combinator.Seq) *lsystem.RuleSet[lsystem.Token] {
		rules := combinator.Step(s, rulesBody)
		combinator.Step(s, combinator.SkipWhitespace())
		return rules
	}))

	document = combinator.Complete(combinator.Sequence(func(s *combinator.Seq) *lsystem.LSystem {
		combinator.Step(s, header("render"))
		items := combinator.Step(s, configItems)
		combinator.Step(s, header("rules"))
		rules := combinator.Step(s, rulesBody)
		combinator.Step(s, combinator.SkipWhitespace())
		if s.Failed() {
			return nil
		}
		config := lsystem.DefaultRendererConfig()
		for _, set := range items {
			set(&config)
		}
		return lsystem.NewLSystem(config, rules)
	}))
)

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	return f, nil
}

func newline() combinator.Parser[string] {
	return func(input string) (string, string, error) {
		v, rest, err := lineBreak(input)
		if err != nil {
			return "", input, combinator.NewCustomError("expecting end of line", input)
		}
		return v, rest, nil
	}
}

// header matches a section header such as "rules:" on a line of its own,
// skipping any blank lines before it.
func header(name string) combinator.Parser[struct{}] {
	return combinator.SpacedSequence(func(s *combinator.Seq) struct{} {
		combinator.Step(s, combinator.SkipWhitespace())
		combinator.Step(s, combinator.Literal(name))
		combinator.Step(s, combinator.Char(':'))
		combinator.Step(s, newline())
		return struct{}{}
	})
}

type entry struct {
	key   string
	value string
}

func configLine() combinator.Parser[configItem] {
	line := combinator.SpacedSequence(func(s *combinator.Seq) entry {
		key := combinator.Step(s, identifier)
		combinator.Step(s, combinator.Char('='))
		value := combinator.Step(s, restOfLine)
		combinator.Step(s, newline())
		return entry{key: key, value: strings.TrimSpace(value)}
	})
	item := combinator.FlatMap(line, toConfigItem)

	return combinator.Sequence(func(s *combinator.Seq) configItem {
		combinator.Step(s, combinator.SkipWhitespace())
		return combinator.Step(s, item)
	})
}

func toConfigItem(e entry) (configItem, error) {
	if field, ok := numericKeys[e.key]; ok {
		v, _, err := combinator.Parse(combinator.Complete(decimal), e.value)
		if err != nil {
			return nil, errors.Errorf("%s expects a decimal such as 1.0, got %q", e.key, e.value)
		}
		return func(c *lsystem.RendererConfig) { *field(c) = v }, nil
	}
	if field, ok := stringKeys[e.key]; ok {
		if e.value == "" {
			return nil, errors.New("missing config item value")
		}
		return func(c *lsystem.RendererConfig) { *field(c) = e.value }, nil
	}
	return func(*lsystem.RendererConfig) {}, nil
}

func rule() combinator.Parser[lsystem.Rule[lsystem.Token]] {
	symbols := combinator.AtLeast(1, combinator.Sequence(func(s *combinator.Seq) lsystem.Token {
		combinator.Step(s, combinator.SkipSpaces())
		return combinator.Step(s, symbol)
	}))
	line := combinator.SpacedSequence(func(s *combinator.Seq) lsystem.Rule[lsystem.Token] {
		predecessor := combinator.Step(s, symbol)
		combinator.Step(s, combinator.Literal("=>"))
		successor := combinator.Step(s, symbols)
		combinator.Step(s, newline())
		return lsystem.NewRule(predecessor, successor...)
	})

	return combinator.Sequence(func(s *combinator.Seq) lsystem.Rule[lsystem.Token] {
		combinator.Step(s, combinator.SkipWhitespace())
		return combinator.Step(s, line)
	})
}
