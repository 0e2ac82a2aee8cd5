package cmd

import (
	"fmt"

	"github.com/KaramelBytes/tabstat/internal/analysis"
	"github.com/spf13/cobra"
)

var engineNotes = map[string]string{
	"native": "compensated summation, two-pass population std",
	"stats":  "github.com/montanaflynn/stats",
	"gonum":  "gonum.org/v1/gonum/stat",
}

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List available summarizer engines",
	RunE: func(cmd *cobra.Command, args []string) error {
		current := effectiveConfig().Engine
		for _, name := range analysis.EngineNames() {
			mark := " "
			if name == current {
				mark = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-7s %s\n", mark, name, engineNotes[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}
