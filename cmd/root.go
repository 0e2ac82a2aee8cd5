package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/tabstat/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	quiet   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "tabstat",
	Short: "tabstat: descriptive statistics for tabular datasets",
	Long: `tabstat computes count, mean, std, min, median and max for every numeric column,
the most frequent values of every categorical column, and the same numeric
statistics grouped by two configurable sets of key columns. Results are written
as CSV tables under <output-dir>/<dataset>/<engine>.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadConfig()
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tabstat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print classification and timing details")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress progress and non-essential output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = defaultConfig()
	}
	cfg = c
}

func defaultConfig() *cfgpkg.Global {
	return &cfgpkg.Global{
		OutputDir:            "outputs",
		Engine:               "native",
		TopK:                 5,
		NumericThreshold:     0.95,
		CardinalityThreshold: 0.95,
	}
}

// effectiveConfig never returns nil.
func effectiveConfig() *cfgpkg.Global {
	if cfg == nil {
		return defaultConfig()
	}
	return cfg
}
