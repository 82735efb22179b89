package scheduler

import (
	"math/rand"
	"time"

	"github.com/akuhn/pt/internal/models"
)

// DefaultSessionSize caps the number of questions in one session.
const DefaultSessionSize = 25

// RandomSource draws uniform values in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a process-local generator seeded from the clock.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

type Question struct {
	Item      models.Item
	Direction models.Direction
}

func (q Question) Key() models.Key {
	return q.Item.Key(q.Direction)
}

type Selector struct {
	rnd  RandomSource
	size int
}

func NewSelector(rnd RandomSource, size int) *Selector {
	if size <= 0 {
		size = DefaultSessionSize
	}
	return &Selector{rnd: rnd, size: size}
}

// Select walks the items in random order and asks each one at most once. A first draw
// against the A→B weight picks A→B; otherwise a second draw against the B→A weight
// picks B→A; otherwise the item is skipped. Selection stops at the session size.
func (s *Selector) Select(items []models.Item, table ProbabilityTable) []Question {
	order := make([]models.Item, len(items))
	copy(order, items)
	s.shuffle(order)

	questions := make([]Question, 0, min(s.size, len(order)))
	for _, item := range order {
		if len(questions) == s.size {
			break
		}
		d, ok := s.pickDirection(item, table)
		if !ok {
			continue
		}
		questions = append(questions, Question{Item: item, Direction: d})
	}
	return questions
}

func (s *Selector) pickDirection(item models.Item, table ProbabilityTable) (models.Direction, bool) {
	for _, d := range models.Directions {
		if s.rnd.Float64() < table.Weight(item.Key(d)) {
			return d, true
		}
	}
	return 0, false
}

// shuffle is a Fisher-Yates shuffle driven by the injected source.
func (s *Selector) shuffle(items []models.Item) {
	for i := len(items) - 1; i > 0; i-- {
		j := int(s.rnd.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		items[i], items[j] = items[j], items[i]
	}
}
