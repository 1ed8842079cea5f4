package compare

import (
	"fmt"
	"io"
	"time"

	"github.com/hamzabinkhalid/dataset-comparator/internal/common"
	"github.com/hamzabinkhalid/dataset-comparator/models"
	dbpkg "github.com/hamzabinkhalid/dataset-comparator/pkg/db"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/keyreader"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/mapreduce"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/report"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/storage"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// RunRecorder persists a finished comparison.
type RunRecorder interface {
	InsertRun(run models.Run) (models.Run, error)
}

// CompareAction handles the compare command.
func CompareAction(c *cli.Context) error {
	logger, err := common.LoggerFromContext(c)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	fsys := afero.NewOsFs()
	cfg, err := resolveConfig(c, fsys)
	if err != nil {
		return err
	}

	var recorder RunRecorder
	if cfg.Save {
		database, err := dbpkg.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()
		logger.Debug("History database opened", zap.String("path", database.Path()))
		recorder = database
	}

	rep, err := Run(fsys, cfg, recorder, logger)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return report.Render(c.App.Writer, rep, cfg.Format)
	}
	return common.SaveReport(storage.New(fsys), cfg.Output, cfg.Force, logger, func(w io.Writer) error {
		return report.Render(w, rep, cfg.Format)
	})
}

// Run reads both sides described by cfg, compares them and, when recorder is
// non-nil, records the run. Any unreadable source aborts the run.
func Run(fsys afero.Fs, cfg models.Config, recorder RunRecorder, logger *zap.Logger) (report.Report, error) {
	resolver := keyreader.NewResolver(fsys, cfg.DataDir)
	start := time.Now()
	logger.Debug("Resolving sources",
		zap.String("data_dir", resolver.Dir()),
		zap.Strings("left", cfg.Left),
		zap.Strings("right", cfg.Right),
	)

	left, err := readSide(resolver, cfg.Left, logger)
	if err != nil {
		return report.Report{}, err
	}
	right, err := readSide(resolver, cfg.Right, logger)
	if err != nil {
		return report.Report{}, err
	}

	rep := report.Report{
		LeftSources:  cfg.Left,
		RightSources: cfg.Right,
		Result:       mapreduce.Compare(left, right),
	}
	if cfg.Top > 0 {
		rep.TopOverlap = mapreduce.TopKeys(mapreduce.OverlapKeys(left, right), cfg.Top)
		logger.Debug("Top overlapping keys", zap.Stringers("keys", rep.TopOverlap))
	}
	if cfg.Diff {
		diff := mapreduce.Diff(left, right)
		rep.Diff = &diff
	}

	logger.Info("Comparison complete",
		zap.Int("count1", rep.Result.Count1),
		zap.Int("count2", rep.Result.Count2),
		zap.Int("distinct_overlap", rep.Result.DistinctOverlap),
		zap.Duration("elapsed", time.Since(start)),
	)

	if recorder != nil {
		run, err := recorder.InsertRun(models.Run{
			LeftSources:  cfg.Left,
			RightSources: cfg.Right,
			Result:       rep.Result,
		})
		if err != nil {
			return rep, fmt.Errorf("failed to save run: %w", err)
		}
		rep.RunID = run.RunID
		logger.Info("Run saved", zap.String("run_id", run.RunID))
	}

	return rep, nil
}

// readSide loads every source of one side and merges them.
func readSide(resolver *keyreader.Resolver, sources []string, logger *zap.Logger) (keyreader.FrequencyMap, error) {
	maps := make([]keyreader.FrequencyMap, 0, len(sources))
	for _, name := range sources {
		freq, err := resolver.Read(name)
		if err != nil {
			logger.Error("Failed to read source", zap.String("path", resolver.Path(name)), zap.Error(err))
			return nil, err
		}
		logger.Debug("Read source",
			zap.String("path", resolver.Path(name)),
			zap.Int("count", freq.Total()),
			zap.Int("distinct", len(freq)),
		)
		maps = append(maps, freq)
	}

	if len(maps) == 1 {
		return maps[0], nil
	}
	return mapreduce.Reduce(maps), nil
}
