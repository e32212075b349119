package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableWith(t *testing.T, seeds ...int) *Table {
	t.Helper()
	table, err := NewTable(cards(t, seeds...))
	require.NoError(t, err)
	return table
}

func TestNewTableSeedCount(t *testing.T) {
	_, err := NewTable(cards(t, 1, 2, 3))
	assert.Error(t, err)
	_, err = NewTable(cards(t, 1, 2, 3, 4, 5))
	assert.Error(t, err)
	table := tableWith(t, 10, 20, 30, 40)
	assert.Len(t, table.Rows(), NumRows)
}

func TestBestRowForMinimizesGap(t *testing.T) {
	table := tableWith(t, 10, 20, 30, 40)

	cases := []struct {
		card, row int
	}{
		{11, 0},  // gap 1 to row 0
		{25, 1},  // gap 5 to row 1 beats gap 15 to row 0
		{31, 2},
		{104, 3}, // gap 64 to row 3 beats larger gaps elsewhere
		{41, 3},
	}
	for _, tc := range cases {
		row, ok := table.BestRowFor(card(t, tc.card))
		require.True(t, ok, "card %d", tc.card)
		assert.Equal(t, tc.row, row, "card %d", tc.card)
	}

	_, ok := table.BestRowFor(card(t, 5))
	assert.False(t, ok)
	assert.True(t, table.MustForceWipe(card(t, 5)))
	assert.False(t, table.MustForceWipe(card(t, 11)))
}

func TestTablePlaceNoValidRow(t *testing.T) {
	table := tableWith(t, 10, 20, 30, 40)
	_, _, err := table.Place(card(t, 9))
	assert.ErrorIs(t, err, ErrNoValidRow)
}

func TestTableForceWipe(t *testing.T) {
	table := tableWith(t, 10, 20, 30, 40)
	_, _, err := table.Place(card(t, 12))
	require.NoError(t, err)

	// Forcing is legal even where normal placement would be possible;
	// the engine, not the table, restricts when it is used.
	wiped, err := table.ForceWipe(card(t, 9), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 12}, values(wiped))

	row, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, values(row.Cards()))

	_, err = table.ForceWipe(card(t, 9), 4)
	assert.ErrorIs(t, err, ErrInvalidRowIndex)
	_, err = table.ForceWipe(card(t, 9), -1)
	assert.ErrorIs(t, err, ErrInvalidRowIndex)
}

func TestTablePlaceWipesFullRow(t *testing.T) {
	table := tableWith(t, 10, 50, 60, 70)
	for _, v := range []int{11, 12, 13} {
		row, wiped, err := table.Place(card(t, v))
		require.NoError(t, err)
		require.Equal(t, 0, row)
		require.Nil(t, wiped)
	}

	row, wiped, err := table.Place(card(t, 14))
	require.NoError(t, err)
	assert.Equal(t, 0, row)
	assert.Equal(t, []int{10, 11, 12, 13}, values(wiped))

	r0, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{14}, values(r0.Cards()))
}

func TestTableSnapshotDoesNotAlias(t *testing.T) {
	table := tableWith(t, 10, 20, 30, 40)
	snap := table.Snapshot()

	_, _, err := snap.Place(card(t, 11))
	require.NoError(t, err)
	_, err = snap.ForceWipe(card(t, 5), 1)
	require.NoError(t, err)

	r0, err := table.Row(0)
	require.NoError(t, err)
	r1, err := table.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, values(r0.Cards()))
	assert.Equal(t, []int{20}, values(r1.Cards()))
}

func TestTableRowIndexBounds(t *testing.T) {
	table := tableWith(t, 10, 20, 30, 40)
	_, err := table.Row(-1)
	assert.ErrorIs(t, err, ErrInvalidRowIndex)
	_, err = table.Row(NumRows)
	assert.ErrorIs(t, err, ErrInvalidRowIndex)
}
