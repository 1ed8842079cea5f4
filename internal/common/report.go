package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hamzabinkhalid/dataset-comparator/pkg/storage"
	"go.uber.org/zap"
)

// ErrOutputExists is returned when a report file already exists and
// overwriting was not requested.
var ErrOutputExists = errors.New("output file already exists (use --force to overwrite)")

// SaveReport renders into memory and writes the result to path.
// Nothing is written when render fails or when path exists and force is false.
func SaveReport(s *storage.Storage, path string, force bool, logger *zap.Logger, render func(w io.Writer) error) error {
	if !force && s.HasFile(path) {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if err := s.SaveFile(path, buf.Bytes()); err != nil {
		return err
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		return err
	}
	logger.Info("Report written",
		zap.String("path", path),
		zap.Int64("bytes", stats.SizeBytes),
		zap.Time("mod_time", stats.ModTime),
	)
	return nil
}
