package scheduler

import (
	"testing"
	"time"

	"github.com/akuhn/pt/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func attempt(ref string, d models.Direction, ok bool, at time.Time) models.Attempt {
	a := models.Attempt{Reference: ref, Direction: d, Succeeded: ok, Timestamp: at}
	if !ok {
		answer := "wrong " + ref
		a.TypedAnswer = &answer
	}
	return a
}

// history builds a group from outcomes listed newest first, one hour apart.
func history(ref string, d models.Direction, outcomes ...bool) []models.Attempt {
	attempts := make([]models.Attempt, 0, len(outcomes))
	for i, ok := range outcomes {
		attempts = append(attempts, attempt(ref, d, ok, t0.Add(-time.Duration(i)*time.Hour)))
	}
	return attempts
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	log := []models.Attempt{
		attempt("1.a", models.DirectionAB, true, t0),
		attempt("1.a", models.DirectionBA, false, t0.Add(time.Minute)),
		attempt("1.a", models.DirectionAB, false, t0.Add(2*time.Hour)),
		attempt("2.a", models.DirectionAB, true, t0.Add(time.Hour)),
		attempt("1.a", models.DirectionAB, true, t0.Add(time.Hour)),
	}

	groups := Aggregate(log)
	require.Len(t, groups, 3)

	ab := groups[models.Key{Reference: "1.a", Direction: models.DirectionAB}]
	require.Len(t, ab.Attempts, 3)
	assert.Equal(t, t0.Add(2*time.Hour), ab.Attempts[0].Timestamp)
	assert.Equal(t, t0.Add(time.Hour), ab.Attempts[1].Timestamp)
	assert.Equal(t, t0, ab.Attempts[2].Timestamp)
	assert.False(t, ab.Latest().Succeeded)

	ba := groups[models.Key{Reference: "1.a", Direction: models.DirectionBA}]
	require.Len(t, ba.Attempts, 1)
	assert.Equal(t, []string{"wrong 1.a"}, ba.WrongAnswers())

	_, ok := groups[models.Key{Reference: "2.a", Direction: models.DirectionBA}]
	assert.False(t, ok)
}

func TestAggregate_equalTimestamps(t *testing.T) {
	t.Parallel()

	first := attempt("1.a", models.DirectionAB, false, t0)
	second := attempt("1.a", models.DirectionAB, true, t0)

	groups := Aggregate([]models.Attempt{first, second})
	g := groups[first.Key()]

	require.Len(t, g.Attempts, 2)
	assert.True(t, g.Attempts[0].Succeeded, "later log entry counts as newer")
	assert.False(t, g.Attempts[1].Succeeded)
}

func TestAggregate_empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Aggregate(nil))
}
