package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardRange(t *testing.T) {
	for _, v := range []int{1, 2, 55, 103, 104} {
		c, err := NewCard(v)
		require.NoError(t, err)
		assert.Equal(t, v, c.Value())
	}
	for _, v := range []int{0, -1, 105, 1000} {
		_, err := NewCard(v)
		assert.ErrorIs(t, err, ErrOutOfRange, "value %d", v)
	}
}

func TestPoints(t *testing.T) {
	cases := []struct {
		value, points int
	}{
		{55, 7},  // special case, beats both %5 and %11
		{11, 5},
		{22, 5},
		{99, 5},
		{10, 3},
		{20, 3},
		{100, 3},
		{5, 2},
		{15, 2},
		{95, 2},
		{1, 1},
		{54, 1},
		{104, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.points, Card{value: tc.value}.Points(), "card %d", tc.value)
	}
}

func TestPointsFullTable(t *testing.T) {
	// Re-derive every card's points from the rule order and check the
	// whole deck sums to the known total.
	total := 0
	for v := 1; v <= DeckSize; v++ {
		c := card(t, v)
		var want int
		switch {
		case v == 55:
			want = 7
		case v%11 == 0:
			want = 5
		case v%10 == 0:
			want = 3
		case v%5 == 0:
			want = 2
		default:
			want = 1
		}
		require.Equal(t, want, c.Points(), "card %d", v)
		total += c.Points()
	}
	// 1×7 + 8×5 + 10×3 + 9×2 + 76×1
	assert.Equal(t, 171, total)
}

func TestCardOrdering(t *testing.T) {
	low, high := card(t, 3), card(t, 70)
	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))
	assert.False(t, low.Less(low))
	assert.Equal(t, low, card(t, 3))
	assert.NotEqual(t, low, high)
}

func TestCardZero(t *testing.T) {
	assert.True(t, Card{}.IsZero())
	assert.False(t, card(t, 1).IsZero())
}
