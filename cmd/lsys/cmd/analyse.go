package cmd

import (
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	lsystem "github.com/viktordanov/lsys"
)

var (
	analyseRounds     int
	analyseEventLimit int
	analyseChart      string
)

var analyseCmd = &cobra.Command{
	Use:   "analyse [grammar]",
	Short: "Measure how fast a grammar grows",
	Long: `For every round up to --rounds, records the flat sequence length after
that many rewriting rounds and the events of a walk nested one level deeper.

Examples:
  lsys analyse --rounds 8 algae.lsys
  lsys analyse --chart growth.html plant.lsys`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyse,
}

func init() {
	rootCmd.AddCommand(analyseCmd)
	analyseCmd.Flags().IntVarP(&analyseRounds, "rounds", "r", 6, "number of rounds to sample")
	analyseCmd.Flags().IntVar(&analyseEventLimit, "event-limit", lsystem.DefaultAnalysisEventLimit, "maximum events per walk")
	analyseCmd.Flags().StringVarP(&analyseChart, "chart", "c", "", "write an HTML chart to this file")
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	_, l, axiom, err := loadSystem(cmd, args)
	if err != nil {
		return err
	}
	if analyseRounds < 0 {
		return errors.Errorf("rounds must not be negative, got %d", analyseRounds)
	}

	growth := l.AnalyseGrowth(axiom, analyseRounds, analyseEventLimit)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headerStyle.Render("Growth of "+lsystem.TokensString(axiom)))
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "round\tflat length\tpushes\tpops\trenders\t")
	for _, s := range growth.Samples {
		truncated := ""
		if s.Truncated {
			truncated = " (truncated)"
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d%s\t\n", s.Round, s.FlatLength, s.Pushes, s.Pops, s.Renders, truncated)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out, field("average growth", fmt.Sprintf("%.4f", growth.AverageGrowth())))

	if analyseChart == "" {
		return nil
	}
	err = withOutput(analyseChart, out, func(w io.Writer) error {
		return errors.Wrap(growth.RenderChart(w), "rendering chart")
	})
	if err != nil {
		return err
	}
	log.Println("Wrote chart to", analyseChart)
	return nil
}
