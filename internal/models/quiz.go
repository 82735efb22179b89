package models

import "time"

// Attempt is one recorded question and answer. TypedAnswer is only kept for failures.
type Attempt struct {
	Reference   string
	Direction   Direction
	Succeeded   bool
	TypedAnswer *string
	Timestamp   time.Time
}

func (a Attempt) Key() Key {
	return Key{Reference: a.Reference, Direction: a.Direction}
}

// AttemptGroup holds every attempt for one key, newest first. It is never empty.
type AttemptGroup struct {
	Key      Key
	Attempts []Attempt
}

func (g AttemptGroup) Latest() Attempt {
	return g.Attempts[0]
}

// WrongAnswers returns the typed answers of failed attempts, newest first.
func (g AttemptGroup) WrongAnswers() []string {
	var answers []string
	for _, a := range g.Attempts {
		if a.Succeeded || a.TypedAnswer == nil {
			continue
		}
		answers = append(answers, *a.TypedAnswer)
	}
	return answers
}

type SessionStats struct {
	Correct int
	Wrong   int
}

func (s SessionStats) Total() int {
	return s.Correct + s.Wrong
}

func (s SessionStats) Percent() int {
	if s.Total() == 0 {
		return 0
	}
	return 100 * s.Correct / s.Total()
}

// Difficulty is one line of the hardest items report.
type Difficulty struct {
	Item         Item
	Direction    Direction
	Score        float64
	WrongAnswers []string
}

type AttemptStats struct {
	TotalCount int `db:"total_count"`
	RightCount int `db:"right_count"`
	WrongCount int `db:"wrong_count"`
}
