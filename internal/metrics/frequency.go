package metrics

import (
	"sort"
)

// FrequencyCount is one ranked entry of a popularity report.
type FrequencyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// MostFrequent ranks keys by occurrence count, descending. Equal counts are
// ordered by key ascending so repeated runs over the same data produce the
// same ranking. A topN of zero or less returns the full ranking.
func MostFrequent(keys []string, topN int) []FrequencyCount {
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k]++
	}

	ranked := make([]FrequencyCount, 0, len(counts))
	for k, n := range counts {
		ranked = append(ranked, FrequencyCount{Key: k, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key < ranked[j].Key
	})

	if topN > 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}
