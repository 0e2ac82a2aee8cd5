package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

var batchOpts describeFlags

var describeBatchCmd = &cobra.Command{
	Use:   "describe-batch <files...>",
	Short: "Describe multiple CSV/TSV/XLSX files with the same grouping levels",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expandInputs(args)
		if err != nil {
			return err
		}
		r, err := batchOpts.resolve()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		total := len(files)
		for i, path := range files {
			if !quiet {
				fmt.Fprintf(w, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			if _, err := r.describeFile(w, cmd.ErrOrStderr(), path, batchOpts.printSummary); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	},
}

// expandInputs resolves globs, keeps literal paths that exist, and drops duplicates.
func expandInputs(args []string) ([]string, error) {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			// treat as literal path if exists
			if _, err := os.Stat(arg); err == nil {
				matches = []string{arg}
			}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files matched")
	}
	sort.Strings(files)
	return files, nil
}

func init() {
	rootCmd.AddCommand(describeBatchCmd)
	batchOpts.bind(describeBatchCmd)
}
