package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	lsystem "github.com/viktordanov/lsys"
	"github.com/viktordanov/lsys/grammar"
	"github.com/viktordanov/lsys/internal/settings"
)

var (
	settingsFile string
	verbose      bool
	axiomFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "lsys",
	Short: "Expand and draw L-systems",
	Long: `lsys reads an L-system grammar and expands it, either by whole rewriting
rounds or lazily down to a fixed nesting depth.

Grammar files look like:

  render:
  starting_angle = 25.0

  rules:
  X => F [ - X ] + X
  F => F F

Run settings (axiom, bounds, symbol mapping) can be kept in a TOML or YAML
file and passed with --settings; flags override the file.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "run settings file (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every drawing instruction")
	rootCmd.PersistentFlags().StringVarP(&axiomFlag, "axiom", "a", "", "axiom to expand (default: first rule's symbol)")
}

func setupLogging() {
	runID := uuid.New().String()
	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[lsys " + runID[:8] + "] ")
}

// loadSettings reads the settings file, if any, and applies the flags that
// were set explicitly on cmd.
func loadSettings(cmd *cobra.Command) (*settings.Settings, error) {
	s := settings.Default()
	if settingsFile != "" {
		loaded, err := settings.Load(settingsFile)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("axiom") {
		s.Axiom = axiomFlag
	}
	if flags.Changed("mode") {
		s.Mode = settings.Mode(renderMode)
	}
	if flags.Changed("bound") {
		s.Bound = renderBound
	}
	if flags.Changed("limit") {
		s.Limit = renderLimit
	}
	if flags.Changed("format") {
		s.Format = settings.Format(renderFormat)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadSystem resolves settings, the grammar and the axiom for a command. The
// grammar path comes from the first argument, or from the settings file.
func loadSystem(cmd *cobra.Command, args []string) (*settings.Settings, *lsystem.LSystem, []lsystem.Token, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	path := s.Grammar
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, nil, nil, errors.New("no grammar file given")
	}

	l, err := grammar.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Printf("Loaded %s: %d rules", path, l.Rules.Len())

	axiom := s.AxiomTokens()
	if len(axiom) == 0 {
		axiom = []lsystem.Token{l.Rules.Rules()[0].Predecessor}
	}
	return s, l, axiom, nil
}
