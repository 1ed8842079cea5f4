package mapreduce

import (
	"github.com/hamzabinkhalid/dataset-comparator/models"
	"github.com/hamzabinkhalid/dataset-comparator/pkg/keyreader"
)

// Reduce merges several frequency maps into one by summing counts.
// Inputs are not modified.
func Reduce(intermediate []keyreader.FrequencyMap) keyreader.FrequencyMap {
	finalResults := make(keyreader.FrequencyMap)

	for _, counts := range intermediate {
		for key, count := range counts {
			finalResults[key] += count
		}
	}

	return finalResults
}

// Compare computes row totals, distinct counts and overlaps for two maps.
// The result depends only on map contents, never on iteration order.
func Compare(m1, m2 keyreader.FrequencyMap) models.ComparisonResult {
	var res models.ComparisonResult

	for key, freq := range m1 {
		res.Count1 += freq
		res.Distinct1++
		if freq2, ok := m2[key]; ok {
			res.TotalOverlap += freq * freq2
			res.DistinctOverlap++
		}
	}

	for _, freq := range m2 {
		res.Count2 += freq
		res.Distinct2++
	}

	return res
}

// OverlapKeys returns, for every key present in both maps, the product of
// its two frequencies. Its Total equals Compare's TotalOverlap.
func OverlapKeys(m1, m2 keyreader.FrequencyMap) keyreader.FrequencyMap {
	overlap := make(keyreader.FrequencyMap)
	for key, freq := range m1 {
		if freq2, ok := m2[key]; ok {
			overlap[key] = freq * freq2
		}
	}
	return overlap
}
