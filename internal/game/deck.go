package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Deck holds the undealt cards for the current round. Every identity in
// [1, DeckSize] appears exactly once after Reset; dealing strictly shrinks
// the deck until the next Reset.
type Deck struct {
	cards []Card
	rng   *rand.Rand

	// noShuffle keeps the deck in ascending order for deterministic tests,
	// mirroring the same switch on the game config.
	noShuffle bool
}

// NewDeck builds a full deck and shuffles it with the given source.
// A nil source falls back to a time-seeded one.
func NewDeck(rng *rand.Rand) *Deck {
	return newDeck(rng, false)
}

func newDeck(rng *rand.Rand, noShuffle bool) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Deck{rng: rng, noShuffle: noShuffle}
	d.Reset()
	return d
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int { return len(d.cards) }

// Shuffle randomizes the order of the undealt cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Reset restores the full identity range and reshuffles. Called at the
// start of every round so rounds are independent.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for v := 1; v <= DeckSize; v++ {
		d.cards = append(d.cards, Card{value: v})
	}
	if !d.noShuffle {
		d.Shuffle()
	}
}

// DealOne removes and returns the top card.
func (d *Deck) DealOne() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, fmt.Errorf("deal: %w", ErrDeckDepleted)
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// DealMany removes and returns n cards. The deal is atomic: if fewer than
// n cards remain, nothing is dealt.
func (d *Deck) DealMany(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("deal %d with %d remaining: %w", n, len(d.cards), ErrInsufficientCards)
	}
	dealt := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.DealOne()
		if err != nil {
			return nil, err
		}
		dealt = append(dealt, card)
	}
	return dealt, nil
}
