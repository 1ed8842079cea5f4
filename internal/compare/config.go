package compare

import (
	"fmt"

	"github.com/hamzabinkhalid/dataset-comparator/internal/common"
	"github.com/hamzabinkhalid/dataset-comparator/models"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

// resolveConfig layers defaults, the optional --config file, positional
// arguments and explicitly set flags, in that order.
func resolveConfig(c *cli.Context, fsys afero.Fs) (models.Config, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(fsys, path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	switch c.NArg() {
	case 0:
	case 2:
		cfg.Left = []string{c.Args().Get(0)}
		cfg.Right = []string{c.Args().Get(1)}
	default:
		return cfg, fmt.Errorf("expected 0 or 2 file arguments, got %d", c.NArg())
	}

	// --left/--right replace a side, unless positional files were given,
	// in which case they add more files to merge into that side.
	if c.IsSet("left") {
		cfg.Left = mergeSide(cfg.Left, c.StringSlice("left"), c.NArg() > 0)
	}
	if c.IsSet("right") {
		cfg.Right = mergeSide(cfg.Right, c.StringSlice("right"), c.NArg() > 0)
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.IsSet("format") {
		cfg.Format = models.OutputFormat(c.String("format"))
	}
	if c.IsSet("top") {
		cfg.Top = c.Int("top")
	}
	if c.IsSet("diff") {
		cfg.Diff = c.Bool("diff")
	}
	if c.IsSet("save") {
		cfg.Save = c.Bool("save")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("force") {
		cfg.Force = c.Bool("force")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mergeSide(current, flagValues []string, extend bool) []string {
	sources := common.SplitSources(flagValues)
	if !extend {
		return sources
	}
	return append(current, sources...)
}
