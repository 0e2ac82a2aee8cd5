package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/KaramelBytes/tabstat/internal/analysis"
	"github.com/KaramelBytes/tabstat/internal/output"
	"github.com/KaramelBytes/tabstat/internal/table"
	"github.com/spf13/cobra"
)

// describeFlags are shared by describe and describe-batch.
type describeFlags struct {
	level1       []string
	level2       []string
	preset       string
	engine       string
	outputDir    string
	delimiter    string
	sheetName    string
	sheetIndex   int
	topK         int
	printSummary bool
}

func (f *describeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.level1, "g1", nil, "level-1 grouping column(s), comma-separated or repeated")
	cmd.Flags().StringSliceVar(&f.level2, "g2", nil, "level-2 grouping column(s), comma-separated or repeated")
	cmd.Flags().StringVar(&f.preset, "preset", "", "grouping preset from config (g1/g2 flags override it)")
	cmd.Flags().StringVarP(&f.engine, "engine", "e", "", "summarizer engine: "+strings.Join(analysis.EngineNames(), " | "))
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "root directory for results (default from config: outputs)")
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (default by extension)")
	cmd.Flags().StringVar(&f.sheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	cmd.Flags().IntVar(&f.sheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	cmd.Flags().IntVar(&f.topK, "top-k", 0, "top values per categorical column (default from config: 5)")
	cmd.Flags().BoolVar(&f.printSummary, "print-summary", false, "print the Markdown summary after writing results")
}

// run is the resolved configuration for one or more describe invocations.
type run struct {
	opt       analysis.Options
	load      table.LoadOptions
	outputDir string
}

// resolve merges config defaults, the optional preset, and explicit flags, in that order.
func (f *describeFlags) resolve() (*run, error) {
	c := effectiveConfig()
	r := &run{
		opt: analysis.Options{
			Engine:               c.Engine,
			NumericThreshold:     c.NumericThreshold,
			CardinalityThreshold: c.CardinalityThreshold,
			TopK:                 c.TopK,
		},
		load:      table.LoadOptions{SheetName: f.sheetName, SheetIndex: f.sheetIndex},
		outputDir: c.OutputDir,
	}
	if f.preset != "" {
		p, ok := c.Preset(f.preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s", f.preset)
		}
		r.opt.Level1 = p.Level1
		r.opt.Level2 = p.Level2
	}
	if len(f.level1) > 0 {
		r.opt.Level1 = trimAll(f.level1)
	}
	if len(f.level2) > 0 {
		r.opt.Level2 = trimAll(f.level2)
	}
	if len(r.opt.Level1) == 0 || len(r.opt.Level2) == 0 {
		return nil, fmt.Errorf("--g1 and --g2 are required (or use --preset)")
	}
	if f.engine != "" {
		r.opt.Engine = f.engine
	}
	if _, err := analysis.EngineByName(r.opt.Engine); err != nil {
		return nil, err
	}
	if f.outputDir != "" {
		r.outputDir = f.outputDir
	}
	if r.outputDir == "" {
		r.outputDir = "outputs"
	}
	if f.topK > 0 {
		r.opt.TopK = f.topK
	}
	delim := f.delimiter
	if delim == "" {
		delim = c.Delimiter
	}
	d, err := parseDelimiter(delim)
	if err != nil {
		return nil, err
	}
	r.load.Delimiter = d
	return r, nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

func trimAll(cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// describeFile loads, describes and writes one dataset, then prints the timing line.
func (r *run) describeFile(w, errw io.Writer, path string, printSummary bool) (*output.Manifest, error) {
	started := time.Now()
	tbl, err := table.LoadFile(path, r.load)
	if err != nil {
		return nil, err
	}
	rep, err := analysis.Describe(tbl, r.opt)
	if err != nil {
		return nil, err
	}
	if debug {
		fmt.Fprintf(w, "  rows: %d, loaded in %s\n", rep.Rows, time.Since(started).Round(time.Millisecond))
		fmt.Fprintf(w, "  numeric: %s\n", strings.Join(rep.Numeric, ", "))
		fmt.Fprintf(w, "  categorical: %s\n", strings.Join(rep.Categorical, ", "))
	}
	dir := output.Dir(r.outputDir, path, rep.Engine)
	m, err := output.Write(dir, path, rep, started)
	if err != nil {
		return nil, err
	}
	if debug {
		fmt.Fprintf(w, "  run id: %s\n", m.ID)
	}
	if !quiet {
		for _, warn := range rep.Warnings {
			fmt.Fprintf(errw, "⚠ %s: %s\n", filepath.Base(path), warn)
		}
		fmt.Fprintf(w, "✓ [%s] %15s → %s   %6.2fs\n", rep.Engine, filepath.Base(path), dir, time.Since(started).Seconds())
	}
	if printSummary {
		fmt.Fprintln(w, rep.Markdown())
	}
	return m, nil
}

var describeOpts describeFlags

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Compute overall, top-value and grouped statistics for a CSV/TSV/XLSX file",
	Example: `  tabstat describe data/fb_ads.csv   --g1 page_id    --g2 page_id,ad_id
  tabstat describe data/tw_posts.csv --g1 month_year --g2 month_year,source --engine gonum`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := describeOpts.resolve()
		if err != nil {
			return err
		}
		_, err = r.describeFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], describeOpts.printSummary)
		return err
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeOpts.bind(describeCmd)
}
