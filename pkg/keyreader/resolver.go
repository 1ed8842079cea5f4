package keyreader

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Resolver looks up named resources inside a data directory.
// Absolute paths and paths starting with "./" or "../" bypass the data directory.
type Resolver struct {
	root afero.Fs
	data afero.Fs
	dir  string
}

// NewResolver returns a Resolver over fsys rooted at dataDir.
func NewResolver(fsys afero.Fs, dataDir string) *Resolver {
	if dataDir == "" {
		dataDir = "."
	}

	// BasePathFs rejects every name under ".", since cleaned paths lose the prefix
	data := fsys
	if filepath.Clean(dataDir) != "." {
		data = afero.NewBasePathFs(fsys, dataDir)
	}
	return &Resolver{
		root: fsys,
		data: data,
		dir:  dataDir,
	}
}

// Dir returns the data directory.
func (r *Resolver) Dir() string {
	return r.dir
}

// Path reports where name will be read from, for diagnostics.
func (r *Resolver) Path(name string) string {
	if isExplicitPath(name) {
		return name
	}
	return filepath.Join(r.dir, name)
}

// Read loads the frequency map for one resource.
func (r *Resolver) Read(name string) (FrequencyMap, error) {
	if isExplicitPath(name) {
		return ReadCSV(r.root, name)
	}
	return ReadCSV(r.data, name)
}

func isExplicitPath(name string) bool {
	return filepath.IsAbs(name) ||
		strings.HasPrefix(name, "./") ||
		strings.HasPrefix(name, "../")
}
