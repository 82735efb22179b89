// Package scheduler decides which vocabulary items to ask in a session and in which
// direction, based on the recorded attempt history.
package scheduler

import (
	"slices"
	"sort"

	"github.com/akuhn/pt/internal/models"
)

// Aggregate groups the attempt log by item and direction. Every group is ordered newest
// first. Attempts with equal timestamps are ordered by log position, later entries first.
func Aggregate(attempts []models.Attempt) map[models.Key]models.AttemptGroup {
	groups := make(map[models.Key]models.AttemptGroup)
	for _, a := range attempts {
		key := a.Key()
		g := groups[key]
		g.Key = key
		g.Attempts = append(g.Attempts, a)
		groups[key] = g
	}

	for key, g := range groups {
		sort.SliceStable(g.Attempts, func(i, j int) bool {
			return g.Attempts[i].Timestamp.Before(g.Attempts[j].Timestamp)
		})
		slices.Reverse(g.Attempts)
		groups[key] = g
	}

	return groups
}
