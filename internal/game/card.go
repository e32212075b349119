// Package game implements the 5 Takes rules engine: cards, rows, table
// placement, player state, and the round/turn lifecycle.
//
// The package is pure state machinery. It performs no I/O and never logs
// free-form text; observable transitions are recorded as typed events
// (see internal/log) for the presentation layer to render.
package game

import "fmt"

// Fixed ruleset dimensions: 4 rows of up to 5 cards, 10-card hands,
// 104-card deck, game ends past 50 points.
const (
	DeckSize       = 104
	NumRows        = 4
	RowCapacity    = 5
	CardsPerPlayer = 10
	MinPlayers     = 3
	MaxPlayers     = 10
	TargetScore    = 50
)

// Card is a single card, identified by its face value in [1, DeckSize].
// The zero Card is "no card" and is never dealt.
type Card struct {
	value int
}

// NewCard constructs a Card, rejecting values outside [1, DeckSize].
func NewCard(value int) (Card, error) {
	if value < 1 || value > DeckSize {
		return Card{}, fmt.Errorf("card value %d: %w", value, ErrOutOfRange)
	}
	return Card{value: value}, nil
}

// Value returns the card's face value.
func (c Card) Value() int { return c.value }

// IsZero reports whether this is the "no card" zero value.
func (c Card) IsZero() bool { return c.value == 0 }

// Points returns the penalty value of the card.
// The 55 check must come first: 55 is also divisible by 5 and by 11,
// and the rules give it its own value.
func (c Card) Points() int {
	switch {
	case c.value == 55:
		return 7
	case c.value%11 == 0:
		return 5
	case c.value%10 == 0:
		return 3
	case c.value%5 == 0:
		return 2
	default:
		return 1
	}
}

// Less orders cards by face value.
func (c Card) Less(other Card) bool { return c.value < other.value }

func (c Card) String() string { return fmt.Sprintf("[%d]", c.value) }
