package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	lsystem "github.com/viktordanov/lsys"
	"github.com/viktordanov/lsys/internal/settings"
	"github.com/viktordanov/lsys/render"
)

var (
	renderMode   string
	renderBound  int
	renderLimit  int
	renderFormat string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render [grammar]",
	Short: "Expand a grammar and draw it",
	Long: `Expands the axiom and feeds the result to a renderer.

Modes:
  depth       - lazy walk, productions nested at most --bound deep
  iterations  - --bound whole rewriting rounds, then a flat pass

Formats:
  svg    - turtle drawing as an SVG document
  text   - one glyph per instruction (F - + [ ] > <)
  count  - instruction totals

Examples:
  lsys render plant.lsys > plant.svg
  lsys render --mode iterations --bound 3 --format text koch.lsys
  lsys render -s run.toml -o out.svg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	def := settings.Default()
	renderCmd.Flags().StringVarP(&renderMode, "mode", "m", string(def.Mode), "bounding mode (depth, iterations)")
	renderCmd.Flags().IntVarP(&renderBound, "bound", "b", def.Bound, "maximum depth or number of rounds")
	renderCmd.Flags().IntVarP(&renderLimit, "limit", "l", def.Limit, "stop after this many events or symbols, 0 for no limit")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", string(def.Format), "output format (svg, text, count)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default: stdout)")
}

func runRender(cmd *cobra.Command, args []string) error {
	s, l, axiom, err := loadSystem(cmd, args)
	if err != nil {
		return err
	}
	m, err := s.Instructions()
	if err != nil {
		return err
	}
	if s.Mode == settings.ModeDepth && len(axiom) > 1 {
		log.Printf("Depth mode walks the lead symbol only, ignoring %q", lsystem.TokensString(axiom[1:]))
	}

	return withOutput(renderOutput, cmd.OutOrStdout(), func(out io.Writer) error {
		return renderTo(out, s, l, axiom, m)
	})
}

func renderTo(out io.Writer, s *settings.Settings, l *lsystem.LSystem, axiom []lsystem.Token, m lsystem.InstructionMap) error {
	var (
		r      lsystem.Renderer
		report func() error
	)
	switch s.Format {
	case settings.FormatText:
		c := render.NewCollector()
		r = c
		report = func() error {
			_, err := fmt.Fprintln(out, c.String())
			return err
		}
	case settings.FormatCount:
		c := render.NewCounter()
		r = c
		report = func() error {
			_, err := fmt.Fprintln(out, c.String())
			return err
		}
	default:
		r = render.NewSVG(out, l.Config)
		report = func() error { return nil }
	}

	tally := render.NewCounter()
	batch := render.NewBatch(r, tally)
	if verbose {
		batch = append(batch, render.NewReporter(nil))
	}

	n, err := drive(s, l, axiom, m, batch)
	if err != nil {
		return err
	}
	log.Printf("Axiom %s, %s bound %d: pulled %d, %s",
		lsystem.TokensString(axiom), s.Mode, s.Bound, n, tally)
	if s.Limit > 0 && n >= s.Limit {
		log.Printf("Stopped at limit %d, output is truncated", s.Limit)
	}
	return report()
}

func drive(s *settings.Settings, l *lsystem.LSystem, axiom []lsystem.Token, m lsystem.InstructionMap, r lsystem.Renderer) (int, error) {
	if s.Mode == settings.ModeIterations {
		return lsystem.DriveSymbols(l.Expand(axiom, s.Bound).All(), m, r, s.Limit)
	}
	return lsystem.DriveEvents(l.Walk(axiom, s.Bound).All(), m, r, s.Limit)
}
