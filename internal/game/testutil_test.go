package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// card builds a Card or fails the test; for fixtures only.
func card(t *testing.T, value int) Card {
	t.Helper()
	c, err := NewCard(value)
	require.NoError(t, err)
	return c
}

func cards(t *testing.T, values ...int) []Card {
	t.Helper()
	out := make([]Card, 0, len(values))
	for _, v := range values {
		out = append(out, card(t, v))
	}
	return out
}

func values(cs []Card) []int {
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Value())
	}
	return out
}

// newTestGame builds a seeded game so shuffles are reproducible.
func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()
	g, err := NewGame(names, Config{Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	return g
}

// fixTable replaces the game's table with known row seeds, bypassing the
// deck. Tests that need exact placements build their own table state.
func fixTable(t *testing.T, g *Game, seeds ...int) {
	t.Helper()
	table, err := NewTable(cards(t, seeds...))
	require.NoError(t, err)
	g.table = table
	if g.state.RoundNumber == 0 {
		g.state.RoundNumber = 1
	}
}

// giveHand replaces a player's hand with the given card values.
func giveHand(t *testing.T, p *Player, vals ...int) {
	t.Helper()
	p.hand = nil
	p.Deal(cards(t, vals...))
}
