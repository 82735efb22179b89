package scheduler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/akuhn/pt/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence replays fixed draws, wrapping around at the end.
type sequence struct {
	draws []float64
	next  int
}

func (s *sequence) Float64() float64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

func constant(v float64) *sequence {
	return &sequence{draws: []float64{v}}
}

func catalogOf(n int) []models.Item {
	items := make([]models.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, models.Item{
			Reference: fmt.Sprintf("%d.a", i+1),
			FormA:     fmt.Sprintf("palavra %d", i+1),
			FormB:     fmt.Sprintf("word %d", i+1),
		})
	}
	return items
}

func tableOf(weights map[models.Key]float64) ProbabilityTable {
	buckets := make(map[models.Key]Bucket, len(weights))
	for key := range weights {
		buckets[key] = BucketSuccess
	}
	return ProbabilityTable{weights: weights, buckets: buckets, fallback: DefaultWeight}
}

func TestSelector_Select_sessionCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rnd  RandomSource
	}{
		{name: "always below weight", rnd: constant(0)},
		{name: "seeded generator", rnd: rand.New(rand.NewSource(42))},
		{name: "alternating draws", rnd: &sequence{draws: []float64{0.9, 0.1, 0.7, 0.3}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			questions := NewSelector(tt.rnd, DefaultSessionSize).Select(catalogOf(200), Assign(nil, DefaultWeight))

			assert.LessOrEqual(t, len(questions), DefaultSessionSize)

			seen := make(map[string]bool)
			for _, q := range questions {
				q := q
				assert.False(t, seen[q.Item.Reference], "item asked twice: %s", q.Item.Reference)
				seen[q.Item.Reference] = true
			}
		})
	}
}

func TestSelector_Select_fillsCap(t *testing.T) {
	t.Parallel()

	questions := NewSelector(constant(0), 0).Select(catalogOf(200), Assign(nil, DefaultWeight))

	require.Len(t, questions, DefaultSessionSize)
	for _, q := range questions {
		q := q
		assert.Equal(t, models.DirectionAB, q.Direction)
	}
}

func TestSelector_Select_skipsWhenBothDrawsMiss(t *testing.T) {
	t.Parallel()

	questions := NewSelector(constant(0.99), 10).Select(catalogOf(30), Assign(nil, DefaultWeight))

	assert.Empty(t, questions)
}

func TestSelector_Select_directions(t *testing.T) {
	t.Parallel()

	item := models.Item{Reference: "7.c", FormA: "Sim", FormB: "Yes"}

	tests := []struct {
		name    string
		weights map[models.Key]float64
		draws   []float64
		want    []Question
	}{
		{
			name:    "first draw picks A→B",
			weights: map[models.Key]float64{item.Key(models.DirectionAB): 0.3},
			draws:   []float64{0.2},
			want:    []Question{{Item: item, Direction: models.DirectionAB}},
		},
		{
			name: "second draw picks B→A",
			weights: map[models.Key]float64{
				item.Key(models.DirectionAB): 0.3,
				item.Key(models.DirectionBA): 0.8,
			},
			draws: []float64{0.5, 0.7},
			want:  []Question{{Item: item, Direction: models.DirectionBA}},
		},
		{
			name: "both draws miss",
			weights: map[models.Key]float64{
				item.Key(models.DirectionAB): 0,
				item.Key(models.DirectionBA): 0,
			},
			draws: []float64{0},
			want:  []Question{},
		},
		{
			name:    "unknown B→A uses the default weight",
			weights: map[models.Key]float64{item.Key(models.DirectionAB): 0},
			draws:   []float64{0.1, 0.49},
			want:    []Question{{Item: item, Direction: models.DirectionBA}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rnd := &sequence{draws: tt.draws}
			got := NewSelector(rnd, DefaultSessionSize).Select([]models.Item{item}, tableOf(tt.weights))

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelector_Select_doesNotReorderInput(t *testing.T) {
	t.Parallel()

	items := catalogOf(10)
	before := append([]models.Item(nil), items...)

	NewSelector(rand.New(rand.NewSource(7)), 5).Select(items, Assign(nil, DefaultWeight))

	assert.Equal(t, before, items)
}

func TestSelector_shuffle(t *testing.T) {
	t.Parallel()

	items := catalogOf(4)
	s := NewSelector(constant(0), 1)
	s.shuffle(items)

	// A constant zero draw swaps every position with the head.
	refs := make([]string, 0, len(items))
	for _, item := range items {
		item := item
		refs = append(refs, item.Reference)
	}
	assert.Equal(t, []string{"2.a", "3.a", "4.a", "1.a"}, refs)
}
