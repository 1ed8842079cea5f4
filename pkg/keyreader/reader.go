// Package keyreader loads single-column CSV files into key frequency maps.
package keyreader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrResourceNotFound is returned when an input file cannot be located or opened.
var ErrResourceNotFound = errors.New("resource not found")

// FrequencyMap maps a key to the number of rows it appeared on.
// Iteration order is unspecified; use Keys for a stable order.
type FrequencyMap map[string]int

// Total returns the sum of all frequencies.
func (m FrequencyMap) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Keys returns the keys sorted lexically.
func (m FrequencyMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CleanKey removes every double quote from line, then trims surrounding whitespace.
func CleanKey(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, `"`, ""))
}

// ReadCSV opens name on fsys and counts its keys. See ReadKeys.
func ReadCSV(fsys afero.Fs, name string) (FrequencyMap, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceNotFound, name, err)
	}
	defer f.Close()

	freq, err := ReadKeys(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return freq, nil
}

// ReadKeys counts keys from r. The first line is a header and is skipped;
// an empty stream yields an empty map. Every other line is one key after
// CleanKey, and blank keys are ignored. Lines have no length limit.
func ReadKeys(r io.Reader) (FrequencyMap, error) {
	freq := make(FrequencyMap)
	br := bufio.NewReader(r)

	header := true
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		// At EOF, line holds a final unterminated line or nothing
		if line != "" {
			if header {
				header = false
			} else if key := CleanKey(line); key != "" {
				freq[key]++
			}
		}
		if err != nil {
			return freq, nil
		}
	}
}
