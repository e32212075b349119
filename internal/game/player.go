package game

import (
	"fmt"
	"sort"
	"strings"
)

// Player holds one participant's hand, scores, and the single-slot turn
// selection. Hands are kept sorted ascending by value at all times.
type Player struct {
	name       string
	hand       []Card
	totalScore int
	roundScore int

	// selected is the pending card for this turn; the zero Card means no
	// selection. The card stays in the hand until PlaySelected.
	selected Card

	// forcedRow is the pre-registered row override for a forced wipe,
	// -1 when unset. Set via Game.SetForcedRowChoice and consumed (or
	// cleared) by the next ResolveTurn.
	forcedRow int
}

// NewPlayer creates a player. The name is trimmed and must be non-empty.
func NewPlayer(name string) (*Player, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("name %q: %w", name, ErrPlayerName)
	}
	return &Player{name: trimmed, forcedRow: -1}, nil
}

// Name returns the player's trimmed name.
func (p *Player) Name() string { return p.name }

// Hand returns a copy of the hand in ascending order.
func (p *Player) Hand() []Card {
	return append([]Card(nil), p.hand...)
}

// HandSize returns the number of cards in hand.
func (p *Player) HandSize() int { return len(p.hand) }

// TotalScore returns the cumulative penalty points across the whole game.
func (p *Player) TotalScore() int { return p.totalScore }

// RoundScore returns the penalty points gained this round.
func (p *Player) RoundScore() int { return p.roundScore }

// SelectedCard returns the pending selection, if any.
func (p *Player) SelectedCard() (Card, bool) {
	return p.selected, !p.selected.IsZero()
}

// HasSelection reports whether a selection is pending.
func (p *Player) HasSelection() bool { return !p.selected.IsZero() }

// Deal adds cards to the hand, keeping it sorted.
func (p *Player) Deal(cards []Card) {
	p.hand = append(p.hand, cards...)
	sort.Slice(p.hand, func(i, j int) bool { return p.hand[i].Less(p.hand[j]) })
}

// HasCard reports whether card is in the hand.
func (p *Player) HasCard(card Card) bool {
	for _, c := range p.hand {
		if c == card {
			return true
		}
	}
	return false
}

// CardAt returns the card at the given position in the sorted hand.
func (p *Player) CardAt(index int) (Card, error) {
	if index < 0 || index >= len(p.hand) {
		return Card{}, fmt.Errorf("hand index %d of %d: %w", index, len(p.hand), ErrOutOfRange)
	}
	return p.hand[index], nil
}

// Select marks card as this turn's selection. The card must be in hand and
// no selection may already be pending.
func (p *Player) Select(card Card) error {
	if !p.HasCard(card) {
		return fmt.Errorf("%s selecting %s: %w", p.name, card, ErrNotInHand)
	}
	if p.HasSelection() {
		return fmt.Errorf("%s: %w", p.name, ErrAlreadySelected)
	}
	p.selected = card
	return nil
}

// PlaySelected removes the selected card from the hand, clears the
// selection slot, and returns the card.
func (p *Player) PlaySelected() (Card, error) {
	if !p.HasSelection() {
		return Card{}, fmt.Errorf("%s: %w", p.name, ErrNoSelection)
	}
	played := p.selected
	for i, c := range p.hand {
		if c == played {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			break
		}
	}
	p.selected = Card{}
	return played, nil
}

// ClearSelection drops any pending selection without playing it.
func (p *Player) ClearSelection() { p.selected = Card{} }

// CreditPenalty adds points to both the round and total score.
func (p *Player) CreditPenalty(points int) error {
	if points < 0 {
		return fmt.Errorf("%d points: %w", points, ErrNegativePoints)
	}
	p.roundScore += points
	p.totalScore += points
	return nil
}

// ResetRound zeroes the round score only. Hands and totals are untouched.
func (p *Player) ResetRound() { p.roundScore = 0 }

func (p *Player) String() string {
	return fmt.Sprintf("%s (Score: %d)", p.name, p.totalScore)
}
