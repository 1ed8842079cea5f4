package keys

import (
	"fmt"
	"io"

	"github.com/hamzabinkhalid/dataset-comparator/internal/common"
	"github.com/hamzabinkhalid/dataset-comparator/models"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/keyreader"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/mapreduce"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/report"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/storage"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// KeysAction prints the frequency mapping of a single file.
func KeysAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}

	logger, err := common.LoggerFromContext(c)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	format, err := models.ParseOutputFormat(c.String("format"))
	if err != nil {
		return err
	}
	if c.Int("top") < 0 {
		return fmt.Errorf("top must be >= 0, got %d", c.Int("top"))
	}

	fsys := afero.NewOsFs()
	listing, err := BuildListing(fsys, c.String("data-dir"), c.Args().First(), c.Int("top"))
	if err != nil {
		logger.Error("Failed to read source", zap.String("source", c.Args().First()), zap.Error(err))
		return err
	}
	logger.Debug("Read source", zap.String("source", listing.Source), zap.Int("distinct", listing.Distinct))

	if out := c.String("output"); out != "" {
		return common.SaveReport(storage.New(fsys), out, c.Bool("force"), logger, func(w io.Writer) error {
			return report.RenderKeys(w, listing, format)
		})
	}
	return report.RenderKeys(c.App.Writer, listing, format)
}

// BuildListing reads name and ranks its keys. top <= 0 lists every key.
func BuildListing(fsys afero.Fs, dataDir, name string, top int) (report.KeyListing, error) {
	freq, err := keyreader.NewResolver(fsys, dataDir).Read(name)
	if err != nil {
		return report.KeyListing{}, err
	}

	return report.KeyListing{
		Source:   name,
		Count:    freq.Total(),
		Distinct: len(freq),
		Keys:     mapreduce.TopKeys(freq, top),
	}, nil
}
