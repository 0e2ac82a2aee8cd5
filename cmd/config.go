package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KaramelBytes/tabstat/internal/analysis"
	cfgpkg "github.com/KaramelBytes/tabstat/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set tabstat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "output_dir: %s\n", c.OutputDir)
		fmt.Fprintf(w, "engine: %s\n", c.Engine)
		if c.Delimiter != "" {
			fmt.Fprintf(w, "delimiter: %q\n", c.Delimiter)
		}
		fmt.Fprintf(w, "top_k: %d\n", c.TopK)
		fmt.Fprintf(w, "numeric_threshold: %.3f\n", c.NumericThreshold)
		fmt.Fprintf(w, "cardinality_threshold: %.3f\n", c.CardinalityThreshold)
		if len(c.Presets) > 0 {
			names := make([]string, 0, len(c.Presets))
			for name := range c.Presets {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintln(w, "presets:")
			for _, name := range names {
				p := c.Presets[name]
				fmt.Fprintf(w, "  %s: g1=%s g2=%s\n", name, strings.Join(p.Level1, ","), strings.Join(p.Level2, ","))
			}
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Long: `Set a config value and save to disk.

Keys: output_dir, engine, delimiter, top_k, numeric_threshold,
cardinality_threshold, preset.<name>.g1, preset.<name>.g2
(preset values are comma-separated column lists).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "output_dir":
			cfg.OutputDir = val
		case "engine":
			if _, err := analysis.EngineByName(val); err != nil {
				return fmt.Errorf("invalid engine: %s (use %s)", val, strings.Join(analysis.EngineNames(), ", "))
			}
			cfg.Engine = val
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "top_k":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for top_k: %v", val)
			}
			cfg.TopK = i
		case "numeric_threshold", "cardinality_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 || f > 1 {
				return fmt.Errorf("invalid float for %s: %v (use a value in (0, 1])", key, val)
			}
			if key == "numeric_threshold" {
				cfg.NumericThreshold = f
			} else {
				cfg.CardinalityThreshold = f
			}
		default:
			if err := setPreset(cfg, key, val); err != nil {
				return err
			}
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		}
		return nil
	},
}

// setPreset handles keys of the form preset.<name>.g1 and preset.<name>.g2.
func setPreset(c *cfgpkg.Global, key, val string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 3 || parts[0] != "preset" || parts[1] == "" {
		return fmt.Errorf("unknown key: %s", key)
	}
	name := strings.ToLower(parts[1])
	cols := trimAll(strings.Split(val, ","))
	if len(cols) == 0 {
		return fmt.Errorf("preset %s: at least one column is required", name)
	}
	if c.Presets == nil {
		c.Presets = map[string]cfgpkg.Preset{}
	}
	p := c.Presets[name]
	switch parts[2] {
	case "g1":
		p.Level1 = cols
	case "g2":
		p.Level2 = cols
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	c.Presets[name] = p
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
