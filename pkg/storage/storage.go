package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// Storage writes report files to a filesystem.
type Storage struct {
	Fs afero.Fs
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// New returns a Storage backed by fsys.
func New(fsys afero.Fs) *Storage {
	return &Storage{Fs: fsys}
}

// SaveFile writes content to filePath, creating parent directories.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := s.Fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	if err := afero.WriteFile(s.Fs, filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}

	return nil
}

// HasFile reports whether fn exists. Stat errors other than not-exist count as present.
func (s *Storage) HasFile(fn string) bool {
	_, err := s.Fs.Stat(fn)
	return err == nil || !os.IsNotExist(err)
}

// GetFileStats returns metadata about a file using Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := s.Fs.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
