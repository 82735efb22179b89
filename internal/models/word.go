package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDirection = errors.New("unknown direction")

// Item is one bilingual vocabulary entry. Reference is stable across runs, e.g. "12.a".
type Item struct {
	Reference string `db:"reference"`
	FormA     string `db:"form_a"`
	FormB     string `db:"form_b"`
}

// Direction says which form is asked for. DirectionAB prompts with form A and expects form B.
type Direction uint8

const (
	DirectionAB Direction = iota + 1
	DirectionBA
)

// Directions lists the directions in the order the selector tries them.
var Directions = []Direction{DirectionAB, DirectionBA}

func (d Direction) Code() string {
	switch d {
	case DirectionAB:
		return "ab"
	case DirectionBA:
		return "ba"
	default:
		return ""
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionAB:
		return "A→B"
	case DirectionBA:
		return "B→A"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

func (d Direction) Valid() bool {
	return d == DirectionAB || d == DirectionBA
}

func ParseDirection(code string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "ab":
		return DirectionAB, nil
	case "ba":
		return DirectionBA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, code)
	}
}

// Question returns the text shown to the user.
func (i Item) Question(d Direction) string {
	if d == DirectionBA {
		return i.FormB
	}
	return i.FormA
}

// Answer returns the expected text, possibly several alternatives separated by "/".
func (i Item) Answer(d Direction) string {
	if d == DirectionBA {
		return i.FormA
	}
	return i.FormB
}

func (i Item) Key(d Direction) Key {
	return Key{Reference: i.Reference, Direction: d}
}

// Key identifies one attempt history: an item asked in one direction.
type Key struct {
	Reference string
	Direction Direction
}

func (k Key) String() string {
	return k.Reference + "/" + k.Direction.Code()
}
