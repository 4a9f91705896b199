package cmd

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	lsystem "github.com/viktordanov/lsys"
)

var inspectYAML bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [grammar]",
	Short: "Show the rules and render settings of a grammar",
	Long: `Parses a grammar and prints what was loaded: the render section with
defaults filled in, the rules in file order, and which symbols are variables
(have a rule) or constants.

Examples:
  lsys inspect plant.lsys
  lsys inspect --yaml plant.lsys`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectYAML, "yaml", false, "print the grammar as YAML")
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, l, axiom, err := loadSystem(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if inspectYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()
	}

	c := l.Config
	fmt.Fprintln(out, headerStyle.Render("Render"))
	fmt.Fprintln(out, field("starting_step", c.StartingStep))
	fmt.Fprintln(out, field("step_multiplier", c.StepMultiplier))
	fmt.Fprintln(out, field("starting_angle", c.StartingAngle))
	fmt.Fprintln(out, field("angle_multiplier", c.AngleMultiplier))
	fmt.Fprintln(out, field("starting_line_width", c.StartingLineWidth))
	fmt.Fprintln(out, field("line_width_multiplier", c.LineWidthMultiplier))
	fmt.Fprintln(out, field("background_color", c.BackgroundColor))
	fmt.Fprintln(out, field("pen_color", c.PenColor))
	fmt.Fprintln(out)

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Rules (%d)", l.Rules.Len())))
	for _, r := range l.Rules.Rules() {
		fmt.Fprintln(out, "  "+r.String())
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, field("variables", sortedTokens(l.Rules.Variables())))
	fmt.Fprintln(out, field("constants", sortedTokens(l.Rules.Constants())))
	fmt.Fprintln(out, field("axiom", lsystem.TokensString(axiom)))
	return nil
}

func sortedTokens(ts lsystem.TokenSet[lsystem.Token]) string {
	tokens := ts.AsSlice()
	slices.Sort(tokens)
	return lsystem.TokensString(tokens)
}
