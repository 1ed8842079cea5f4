// Package report renders comparison results and key listings to a writer
// in text, YAML, JSON or CSV form.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/hamzabinkhalid/dataset-comparator/models"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/mapreduce"
	"github.com/oleg578/swiftcsv"
	"gopkg.in/yaml.v3"
)

// Report is everything a compare run can print.
// TopOverlap and Diff are optional sections.
type Report struct {
	RunID        string                  `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	LeftSources  []string                `json:"left_sources" yaml:"left_sources"`
	RightSources []string                `json:"right_sources" yaml:"right_sources"`
	Result       models.ComparisonResult `json:"result" yaml:"result"`
	TopOverlap   []mapreduce.KeyCount    `json:"top_overlap,omitempty" yaml:"top_overlap,omitempty"`
	Diff         *mapreduce.KeyDiff      `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// KeyListing is the output of the keys command for one file.
type KeyListing struct {
	Source   string               `json:"source" yaml:"source"`
	Count    int                  `json:"count" yaml:"count"`
	Distinct int                  `json:"distinct" yaml:"distinct"`
	Keys     []mapreduce.KeyCount `json:"keys" yaml:"keys"`
}

// Render writes rep in the requested format.
func Render(w io.Writer, rep Report, format models.OutputFormat) error {
	switch format {
	case models.FormatText, "":
		return renderText(w, rep)
	case models.FormatYAML:
		return writeYAML(w, rep)
	case models.FormatJSON:
		return writeJSON(w, rep)
	case models.FormatCSV:
		return writeCSV(w, resultRecords(rep))
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// RenderKeys writes a single-file key listing in the requested format.
func RenderKeys(w io.Writer, listing KeyListing, format models.OutputFormat) error {
	switch format {
	case models.FormatText, "":
		fmt.Fprintf(w, "%s: %d keys, %d distinct\n", listing.Source, listing.Count, listing.Distinct)
		for i, kc := range listing.Keys {
			if _, err := fmt.Fprintf(w, "%d. %s: %d\n", i+1, kc.Key, kc.Count); err != nil {
				return err
			}
		}
		return nil
	case models.FormatYAML:
		return writeYAML(w, listing)
	case models.FormatJSON:
		return writeJSON(w, listing)
	case models.FormatCSV:
		records := [][]string{{"key", "count"}}
		for _, kc := range listing.Keys {
			records = append(records, []string{kc.Key, strconv.Itoa(kc.Count)})
		}
		return writeCSV(w, records)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func renderText(w io.Writer, rep Report) error {
	for _, m := range rep.Result.Metrics() {
		if _, err := fmt.Fprintf(w, "%s is %d\n", m.Description, m.Value); err != nil {
			return err
		}
	}

	if len(rep.TopOverlap) > 0 {
		fmt.Fprintf(w, "\nTop overlapping keys:\n")
		for i, kc := range rep.TopOverlap {
			fmt.Fprintf(w, "%d. %s: %d\n", i+1, kc.Key, kc.Count)
		}
	}

	if rep.Diff != nil {
		writeKeyList(w, "Keys only in the first file", rep.Diff.OnlyLeft)
		writeKeyList(w, "Keys only in the second file", rep.Diff.OnlyRight)
		writeKeyList(w, "Keys in both files", rep.Diff.Common)
	}

	if rep.RunID != "" {
		fmt.Fprintf(w, "\nSaved as run %s\n", rep.RunID)
	}
	return nil
}

func writeKeyList(w io.Writer, title string, keys []string) {
	fmt.Fprintf(w, "\n%s (%d):\n", title, len(keys))
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\n", k)
	}
}

// resultRecords flattens a report into metric,value rows.
func resultRecords(rep Report) [][]string {
	records := [][]string{{"metric", "value"}}
	for _, m := range rep.Result.Metrics() {
		records = append(records, []string{m.Name, strconv.Itoa(m.Value)})
	}
	return records
}

func writeYAML(w io.Writer, v interface{}) error {
	yamlBytes, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	_, err = w.Write(yamlBytes)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	jsonData = append(jsonData, '\n')
	_, err = w.Write(jsonData)
	return err
}

func writeCSV(w io.Writer, records [][]string) error {
	cw := swiftcsv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return cw.Flush()
}
