package scheduler

import "github.com/akuhn/pt/internal/models"

type Bucket int

const (
	BucketStreak Bucket = iota
	BucketSuccess
	BucketFailure
	BucketFailureStreak
)

var Buckets = []Bucket{BucketStreak, BucketSuccess, BucketFailure, BucketFailureStreak}

func (b Bucket) String() string {
	switch b {
	case BucketStreak:
		return "streak"
	case BucketSuccess:
		return "success"
	case BucketFailure:
		return "failure"
	case BucketFailureStreak:
		return "failure_streak"
	default:
		return "unknown"
	}
}

// recentWindow is how many of the newest attempts count towards a failure streak.
const recentWindow = 3

// Classify puts a group into exactly one bucket based on its newest attempts.
func Classify(g models.AttemptGroup) Bucket {
	switch leadingSuccesses(g) {
	case 0:
		if recentFailures(g) >= 2 {
			return BucketFailureStreak
		}
		return BucketFailure
	case 1:
		return BucketSuccess
	default:
		return BucketStreak
	}
}

func leadingSuccesses(g models.AttemptGroup) int {
	n := 0
	for _, a := range g.Attempts {
		if !a.Succeeded {
			break
		}
		n++
	}
	return n
}

func recentFailures(g models.AttemptGroup) int {
	n := 0
	for i, a := range g.Attempts {
		if i == recentWindow {
			break
		}
		if !a.Succeeded {
			n++
		}
	}
	return n
}
