package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Preset names a dataset's two grouping levels.
type Preset struct {
	Level1 []string `mapstructure:"g1" yaml:"g1"`
	Level2 []string `mapstructure:"g2" yaml:"g2"`
}

// Global configuration structure.
type Global struct {
	OutputDir            string            `mapstructure:"output_dir" yaml:"output_dir"`
	Engine               string            `mapstructure:"engine" yaml:"engine"`
	Delimiter            string            `mapstructure:"delimiter" yaml:"delimiter"`
	TopK                 int               `mapstructure:"top_k" yaml:"top_k"`
	NumericThreshold     float64           `mapstructure:"numeric_threshold" yaml:"numeric_threshold"`
	CardinalityThreshold float64           `mapstructure:"cardinality_threshold" yaml:"cardinality_threshold"`
	Presets              map[string]Preset `mapstructure:"presets" yaml:"presets,omitempty"`
}

// Preset returns the named grouping preset. Names are case-insensitive since
// viper lowercases map keys.
func (g *Global) Preset(name string) (Preset, bool) {
	if g == nil || g.Presets == nil {
		return Preset{}, false
	}
	p, ok := g.Presets[strings.ToLower(name)]
	return p, ok
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".tabstat", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.tabstat/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. A .env file in the working
// directory is loaded into the environment first when present.
func Load(cfgFile string) (*Global, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TABSTAT")
	v.AutomaticEnv()

	v.SetDefault("output_dir", "outputs")
	v.SetDefault("engine", "native")
	v.SetDefault("delimiter", "")
	v.SetDefault("top_k", 5)
	v.SetDefault("numeric_threshold", 0.95)
	v.SetDefault("cardinality_threshold", 0.95)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		p, err := defaultPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(p))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// the file is optional; a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
