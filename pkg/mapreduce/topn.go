package mapreduce

import (
	"fmt"
	"sort"

	"github.com/hamzabinkhalid/dataset-comparator/pkg/keyreader"
)

// KeyCount is one entry of a ranked frequency listing.
type KeyCount struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

func (kc KeyCount) String() string {
	return fmt.Sprintf("%s:%d", kc.Key, kc.Count)
}

// TopKeys returns the n most frequent keys, highest count first.
// Ties are broken by key so the output is stable. n <= 0 returns every key.
func TopKeys(freq keyreader.FrequencyMap, n int) []KeyCount {
	ss := make([]KeyCount, 0, len(freq))
	for k, v := range freq {
		ss = append(ss, KeyCount{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Key < ss[j].Key
	})

	if n > 0 && len(ss) > n {
		ss = ss[:n]
	}
	return ss
}
