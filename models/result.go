package models

// ComparisonResult summarizes the key overlap between two frequency mappings.
// Count fields are row totals, Distinct fields are unique key counts.
type ComparisonResult struct {
	Count1          int `json:"count1" yaml:"count1"`
	Count2          int `json:"count2" yaml:"count2"`
	Distinct1       int `json:"distinct1" yaml:"distinct1"`
	Distinct2       int `json:"distinct2" yaml:"distinct2"`
	TotalOverlap    int `json:"total_overlap" yaml:"total_overlap"`
	DistinctOverlap int `json:"distinct_overlap" yaml:"distinct_overlap"`
}

// Metric pairs a human-readable description with one result value.
type Metric struct {
	Name        string
	Description string
	Value       int
}

// Metrics returns the six values in report order.
func (r ComparisonResult) Metrics() []Metric {
	return []Metric{
		{"count1", "The count of the keys in the first file", r.Count1},
		{"count2", "The count of the keys in the second file", r.Count2},
		{"distinct1", "The count of the distinct keys in the first file", r.Distinct1},
		{"distinct2", "The count of the distinct keys in the second file", r.Distinct2},
		{"total_overlap", "The count of the overlap of all keys between the files", r.TotalOverlap},
		{"distinct_overlap", "The count of the overlap of distinct keys between the files", r.DistinctOverlap},
	}
}
