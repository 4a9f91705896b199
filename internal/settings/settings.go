// Package settings holds the run settings of the lsys command: which axiom to
// expand, how to bound the expansion and how symbols are drawn. Settings are
// read from TOML or YAML, picked by file extension.
package settings

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	lsystem "github.com/viktordanov/lsys"
)

// Mode selects how an expansion is bounded.
type Mode string

const (
	// ModeDepth bounds the nesting of productions along each path.
	ModeDepth Mode = "depth"
	// ModeIterations applies whole rewriting rounds.
	ModeIterations Mode = "iterations"
)

// Format selects what the render command writes.
type Format string

const (
	FormatSVG   Format = "svg"
	FormatText  Format = "text"
	FormatCount Format = "count"
)

type Settings struct {
	// Grammar is the definition file. A relative path is resolved against the
	// directory of the settings file it was loaded from.
	Grammar string `toml:"grammar" yaml:"grammar"`
	Axiom   string `toml:"axiom" yaml:"axiom"`
	Mode    Mode   `toml:"mode" yaml:"mode"`
	Bound   int    `toml:"bound" yaml:"bound"`
	// Limit caps the number of events or symbols consumed; 0 means no cap.
	Limit  int    `toml:"limit" yaml:"limit"`
	Format Format `toml:"format" yaml:"format"`
	// Instructions overrides the default symbol mapping, e.g. "X" = "forward".
	Instructions map[string]string `toml:"instructions" yaml:"instructions"`
}

func Default() *Settings {
	return &Settings{
		Mode:   ModeDepth,
		Bound:  4,
		Limit:  1 << 20,
		Format: FormatSVG,
	}
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatTOML
	}
}

// Load reads settings from path on top of Default and validates them.
// Environment variables in path are expanded.
func Load(path string) (*Settings, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "settings file %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading settings %s", path)
	}

	s := Default()
	switch detectFormat(path) {
	case formatYAML:
		err = yaml.Unmarshal(content, s)
	default:
		err = toml.Unmarshal(content, s)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parsing settings %s", path)
	}

	if s.Grammar != "" && !filepath.IsAbs(s.Grammar) {
		s.Grammar = filepath.Join(filepath.Dir(path), s.Grammar)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid settings %s", path)
	}
	return s, nil
}

func (s *Settings) Validate() error {
	switch s.Mode {
	case ModeDepth:
		if s.Bound < 1 {
			return errors.Errorf("depth bound must be at least 1, got %d", s.Bound)
		}
	case ModeIterations:
		if s.Bound < 0 {
			return errors.Errorf("iteration bound must not be negative, got %d", s.Bound)
		}
	default:
		return errors.Errorf("unknown mode %q", s.Mode)
	}
	if s.Limit < 0 {
		return errors.Errorf("limit must not be negative, got %d", s.Limit)
	}
	switch s.Format {
	case FormatSVG, FormatText, FormatCount:
	default:
		return errors.Errorf("unknown format %q", s.Format)
	}
	_, err := s.Instructions()
	return err
}

// Instructions is the default mapping with the configured overrides applied.
func (s *Settings) Instructions() (lsystem.InstructionMap, error) {
	overrides := make(lsystem.InstructionMap, len(s.Instructions))
	for symbol, name := range s.Instructions {
		if utf8.RuneCountInString(symbol) != 1 {
			return nil, errors.Errorf("instruction key %q is not a single symbol", symbol)
		}
		i, err := lsystem.ParseInstruction(name)
		if err != nil {
			return nil, errors.Wrapf(err, "symbol %s", symbol)
		}
		r, _ := utf8.DecodeRuneInString(symbol)
		overrides[lsystem.Token(r)] = i
	}
	return lsystem.DefaultInstructions().With(overrides), nil
}

// AxiomTokens is the axiom as a token sequence, whitespace dropped.
func (s *Settings) AxiomTokens() []lsystem.Token {
	return lsystem.ParseAxiom(s.Axiom)
}
