package game

import (
	"fmt"
	"sort"
	"strings"
)

// Stateless rules: pure validation and pure functions over players and
// cards. Nothing here mutates game state.

// ValidatePlayerCount checks the player count is within [MinPlayers, MaxPlayers].
func ValidatePlayerCount(count int) error {
	if count < MinPlayers || count > MaxPlayers {
		return fmt.Errorf("%d players, need %d-%d: %w", count, MinPlayers, MaxPlayers, ErrPlayerCount)
	}
	return nil
}

// ValidatePlayerNames checks names are non-empty after trimming and
// pairwise distinct after trimming. Case is significant: "Alice" and
// "alice" are different players.
func ValidatePlayerNames(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("no names given: %w", ErrPlayerName)
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf("empty name: %w", ErrPlayerName)
		}
		if seen[trimmed] {
			return fmt.Errorf("duplicate name %q: %w", trimmed, ErrPlayerName)
		}
		seen[trimmed] = true
	}
	return nil
}

// CardsNeeded returns the cards required to set up a round: a full hand
// per player plus the four row seeds.
func CardsNeeded(playerCount int) int {
	return playerCount*CardsPerPlayer + NumRows
}

// IsGameOver reports whether any player's total exceeds the target score.
func IsGameOver(players []*Player, target int) bool {
	for _, p := range players {
		if p.totalScore > target {
			return true
		}
	}
	return false
}

// Winner returns the player with the lowest total score. Ties go to the
// earliest-seated player.
func Winner(players []*Player) (*Player, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("winner: %w", ErrNoPlayers)
	}
	best := players[0]
	for _, p := range players[1:] {
		if p.totalScore < best.totalScore {
			best = p
		}
	}
	return best, nil
}

// IsRoundOver reports whether every player's hand is empty.
func IsRoundOver(players []*Player) bool {
	for _, p := range players {
		if p.HandSize() > 0 {
			return false
		}
	}
	return true
}

// AllSelected reports whether every player has a pending selection.
func AllSelected(players []*Player) bool {
	for _, p := range players {
		if !p.HasSelection() {
			return false
		}
	}
	return true
}

// SortBySelectedCard returns the players with pending selections, ordered
// ascending by selected card value. Players without a selection are
// excluded; with AllSelected enforced upstream that never drops anyone,
// but the function tolerates partial input.
func SortBySelectedCard(players []*Player) []*Player {
	ordered := make([]*Player, 0, len(players))
	for _, p := range players {
		if p.HasSelection() {
			ordered = append(ordered, p)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].selected.Less(ordered[j].selected)
	})
	return ordered
}

// PenaltyPoints sums the penalty points of a set of wiped cards.
func PenaltyPoints(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}

// ValidateSelection checks that player may select card this turn.
func ValidateSelection(player *Player, card Card) error {
	if !player.HasCard(card) {
		return fmt.Errorf("%s does not hold %s: %w", player.name, card, ErrNotInHand)
	}
	if player.HasSelection() {
		return fmt.Errorf("%s: %w", player.name, ErrAlreadySelected)
	}
	return nil
}
