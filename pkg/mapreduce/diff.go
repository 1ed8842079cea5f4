package mapreduce

import (
	"github.com/hamzabinkhalid/dataset-comparator/pkg/keyreader"
	"k8s.io/apimachinery/pkg/util/sets"
)

// KeyDiff partitions the distinct keys of two maps. Each list is sorted.
type KeyDiff struct {
	OnlyLeft  []string `json:"only_left" yaml:"only_left"`
	OnlyRight []string `json:"only_right" yaml:"only_right"`
	Common    []string `json:"common" yaml:"common"`
}

// Diff reports which distinct keys appear on one side only and which on both.
// len(Common) always equals Compare's DistinctOverlap.
func Diff(m1, m2 keyreader.FrequencyMap) KeyDiff {
	left := sets.KeySet(m1)
	right := sets.KeySet(m2)

	return KeyDiff{
		OnlyLeft:  sets.List(left.Difference(right)),
		OnlyRight: sets.List(right.Difference(left)),
		Common:    sets.List(left.Intersection(right)),
	}
}
