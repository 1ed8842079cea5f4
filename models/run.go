package models

import "time"

// Run is a recorded comparison, persisted in the history database.
type Run struct {
	RunID        string           `json:"run_id" yaml:"run_id"`
	CreatedAt    time.Time        `json:"created_at" yaml:"created_at"`
	LeftSources  []string         `json:"left_sources" yaml:"left_sources"`
	RightSources []string         `json:"right_sources" yaml:"right_sources"`
	Result       ComparisonResult `json:"result" yaml:"result"`
}
