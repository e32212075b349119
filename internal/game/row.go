package game

import (
	"fmt"
	"strings"
)

// Row is one ascending lane of cards on the table. A row always holds
// between 1 and RowCapacity cards, strictly increasing by value; the only
// transient violation happens inside a forced wipe, which immediately
// reseeds the row.
type Row struct {
	cards []Card
}

// NewRow creates a row holding only the given seed card.
func NewRow(seed Card) *Row {
	return &Row{cards: []Card{seed}}
}

// Cards returns a copy of the row's cards, first to last.
func (r *Row) Cards() []Card {
	return append([]Card(nil), r.cards...)
}

// LastCard returns the rightmost card in the row.
func (r *Row) LastCard() Card { return r.cards[len(r.cards)-1] }

// Len returns the number of cards in the row.
func (r *Row) Len() int { return len(r.cards) }

// IsFull reports whether the row is at capacity.
func (r *Row) IsFull() bool { return len(r.cards) >= RowCapacity }

// TotalPoints sums the penalty points of the row's current cards.
// Used for wipe-cost previews, not by placement itself.
func (r *Row) TotalPoints() int {
	total := 0
	for _, c := range r.cards {
		total += c.Points()
	}
	return total
}

// CanAccept reports whether card may legally extend this row.
func (r *Row) CanAccept(card Card) bool {
	return card.value > r.LastCard().value && !r.IsFull()
}

// Place appends card to the row. Reaching capacity triggers a wipe in the
// same call: all cards except the just-placed one are returned and the row
// is reseeded with the placed card. There is no idle "full row" state.
func (r *Row) Place(card Card) ([]Card, error) {
	if card.value <= r.LastCard().value {
		return nil, fmt.Errorf("card %d after %d: %w", card.value, r.LastCard().value, ErrIllegalPlacement)
	}
	if r.IsFull() {
		return nil, fmt.Errorf("row at capacity: %w", ErrIllegalPlacement)
	}
	r.cards = append(r.cards, card)
	if r.IsFull() {
		wiped := append([]Card(nil), r.cards[:len(r.cards)-1]...)
		r.cards = []Card{card}
		return wiped, nil
	}
	return nil, nil
}

// ForceWipe unconditionally returns the row's entire contents and reseeds
// the row with newSeed. Used when a player's card is lower than every
// row's last card and they chose this row.
func (r *Row) ForceWipe(newSeed Card) []Card {
	wiped := r.cards
	r.cards = []Card{newSeed}
	return wiped
}

func (r *Row) String() string {
	parts := make([]string, len(r.cards))
	for i, c := range r.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
