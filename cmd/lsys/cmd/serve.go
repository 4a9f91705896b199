package cmd

import (
	"github.com/spf13/cobra"
)

var (
	serveAddr   string
	serveRounds int
)

var serveCmd = &cobra.Command{
	Use:   "serve [grammar]",
	Short: "Serve the growth chart of a grammar over HTTP",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, l, axiom, err := loadSystem(cmd, args)
		if err != nil {
			return err
		}
		return l.Serve(serveAddr, axiom, serveRounds)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8089", "listen address")
	serveCmd.Flags().IntVarP(&serveRounds, "rounds", "r", 6, "number of rounds to sample")
}
