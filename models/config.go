// Package models defines data structures shared by the reader, comparator,
// report writers and history store.
package models

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir = "testdata"
	DefaultLeft    = "A_f.csv"
	DefaultRight   = "B_f.csv"
	DefaultDBName  = "dscmp.db"
)

// Config holds runtime configuration for compare operations.
// Values come from an optional YAML file, then CLI flags override them.
type Config struct {
	DataDir string       `yaml:"data_dir"`
	Left    []string     `yaml:"left"`
	Right   []string     `yaml:"right"`
	Format  OutputFormat `yaml:"format"`
	Top     int          `yaml:"top"`
	Diff    bool         `yaml:"diff"`
	Save    bool         `yaml:"save"`
	DBPath  string       `yaml:"db_path"`
	Output  string       `yaml:"output"` // Report file; empty means stdout
	Force   bool         `yaml:"force"`  // Overwrite an existing Output
}

// DefaultConfig compares the two bundled resources and prints text.
func DefaultConfig() Config {
	return Config{
		DataDir: DefaultDataDir,
		Left:    []string{DefaultLeft},
		Right:   []string{DefaultRight},
		Format:  FormatText,
	}
}

// LoadConfig reads a YAML config file from fsys over the defaults.
// Fields missing from the file keep their default values.
func LoadConfig(fsys afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values and normalizes the output format.
func (c *Config) Validate() error {
	format, err := ParseOutputFormat(string(c.Format))
	if err != nil {
		return err
	}
	c.Format = format

	if c.Top < 0 {
		return fmt.Errorf("top must be >= 0, got %d", c.Top)
	}
	if len(c.Left) == 0 || len(c.Right) == 0 {
		return errors.New("both left and right need at least one source")
	}
	return nil
}
