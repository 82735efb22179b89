package scheduler

import (
	"slices"
	"sort"

	"github.com/akuhn/pt/internal/models"
)

// DefaultWeight applies to keys without any history.
const DefaultWeight = 0.5

// ProbabilityTable maps every key with history to its selection weight in [0,1].
// It is built once per session and only read afterwards.
type ProbabilityTable struct {
	weights  map[models.Key]float64
	buckets  map[models.Key]Bucket
	fallback float64
}

type Entry struct {
	Key    models.Key
	Bucket Bucket
	Weight float64
}

// Weight returns the weight for key, or the table default when key has no history.
func (t ProbabilityTable) Weight(key models.Key) float64 {
	if w, ok := t.weights[key]; ok {
		return w
	}
	return t.fallback
}

func (t ProbabilityTable) Bucket(key models.Key) (Bucket, bool) {
	b, ok := t.buckets[key]
	return b, ok
}

func (t ProbabilityTable) Len() int {
	return len(t.weights)
}

// Entries lists the table by ascending weight.
func (t ProbabilityTable) Entries() []Entry {
	entries := make([]Entry, 0, len(t.weights))
	for key, w := range t.weights {
		entries = append(entries, Entry{Key: key, Bucket: t.buckets[key], Weight: w})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight < entries[j].Weight
		}
		return entries[i].Key.String() < entries[j].Key.String()
	})
	return entries
}

// Assign classifies every group, ranks it inside its bucket and turns the rank into a
// weight. fallback is returned by Weight for keys that have no group.
func Assign(groups map[models.Key]models.AttemptGroup, fallback float64) ProbabilityTable {
	partitions := make(map[Bucket][]models.AttemptGroup, len(Buckets))
	for _, g := range sortedGroups(groups) {
		b := Classify(g)
		partitions[b] = append(partitions[b], g)
	}

	table := ProbabilityTable{
		weights:  make(map[models.Key]float64, len(groups)),
		buckets:  make(map[models.Key]Bucket, len(groups)),
		fallback: fallback,
	}
	for _, b := range Buckets {
		for key, w := range weighBucket(b, partitions[b]) {
			table.weights[key] = w
			table.buckets[key] = b
		}
	}
	return table
}

func weighBucket(b Bucket, groups []models.AttemptGroup) map[models.Key]float64 {
	switch b {
	case BucketStreak, BucketFailureStreak:
		return applyWeighting(newestFirst(groups), boostStale)
	case BucketFailure:
		return applyWeighting(failuresThenOldest(groups), boostEdges)
	default:
		return applyWeighting(oldestFirst(groups), boostEdges)
	}
}

func applyWeighting(ranked []models.AttemptGroup, fun func(n, l int) float64) map[models.Key]float64 {
	weights := make(map[models.Key]float64, len(ranked))
	for i, g := range ranked {
		weights[g.Key] = fun(i+1, len(ranked))
	}
	return weights
}

// boostStale rises with rank: fresh entries are rarely asked, neglected ones often.
func boostStale(n, l int) float64 {
	x := float64(n) / float64(l)
	return x * x
}

// boostEdges favours both ends of the ranking and suppresses the middle.
func boostEdges(n, l int) float64 {
	y := 2*float64(n)/float64(l) - 1
	return y * y
}

func oldestFirst(groups []models.AttemptGroup) []models.AttemptGroup {
	ranked := slices.Clone(groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Latest().Timestamp.Before(ranked[j].Latest().Timestamp)
	})
	return ranked
}

func newestFirst(groups []models.AttemptGroup) []models.AttemptGroup {
	ranked := oldestFirst(groups)
	slices.Reverse(ranked)
	return ranked
}

func failuresThenOldest(groups []models.AttemptGroup) []models.AttemptGroup {
	ranked := slices.Clone(groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		fi, fj := recentFailures(ranked[i]), recentFailures(ranked[j])
		if fi != fj {
			return fi > fj
		}
		return ranked[i].Latest().Timestamp.Before(ranked[j].Latest().Timestamp)
	})
	return ranked
}

// sortedGroups fixes an order for map values so equal timestamps rank the same way
// on every run.
func sortedGroups(groups map[models.Key]models.AttemptGroup) []models.AttemptGroup {
	out := make([]models.AttemptGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}
