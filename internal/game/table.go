package game

import (
	"fmt"
	"strings"
)

// Table is the shared playing area: exactly NumRows rows, indices 0..3.
// Created once per round from four seed cards and mutated every turn.
type Table struct {
	rows [NumRows]*Row
}

// NewTable creates a table with one seed card per row.
func NewTable(seeds []Card) (*Table, error) {
	if len(seeds) != NumRows {
		return nil, fmt.Errorf("table requires exactly %d starting cards, got %d", NumRows, len(seeds))
	}
	t := &Table{}
	for i, seed := range seeds {
		t.rows[i] = NewRow(seed)
	}
	return t, nil
}

// Rows returns the table's rows in index order. The slice is a copy; the
// rows themselves are live.
func (t *Table) Rows() []*Row {
	rows := make([]*Row, NumRows)
	copy(rows, t.rows[:])
	return rows
}

// Row returns the row at the given index.
func (t *Table) Row(index int) (*Row, error) {
	if index < 0 || index >= NumRows {
		return nil, fmt.Errorf("row %d: %w", index, ErrInvalidRowIndex)
	}
	return t.rows[index], nil
}

// BestRowFor returns the index of the row that accepts card with the
// smallest positive gap to its last card. ok is false when no row accepts
// the card. Ties cannot occur: all identities on the table are distinct,
// so no two accepting rows share a last value.
func (t *Table) BestRowFor(card Card) (index int, ok bool) {
	best, bestGap := -1, 0
	for i, row := range t.rows {
		if !row.CanAccept(card) {
			continue
		}
		gap := card.value - row.LastCard().value
		if best == -1 || gap < bestGap {
			best, bestGap = i, gap
		}
	}
	return best, best != -1
}

// MustForceWipe reports whether card cannot be placed on any row, forcing
// the player to choose a row to wipe.
func (t *Table) MustForceWipe(card Card) bool {
	_, ok := t.BestRowFor(card)
	return !ok
}

// Place puts card on its best row and returns the row index plus any cards
// wiped by filling that row. Fails with ErrNoValidRow when no row accepts
// the card; the caller must then use ForceWipe with an explicit row choice.
func (t *Table) Place(card Card) (index int, wiped []Card, err error) {
	target, ok := t.BestRowFor(card)
	if !ok {
		return 0, nil, fmt.Errorf("card %d: %w", card.value, ErrNoValidRow)
	}
	wiped, err = t.rows[target].Place(card)
	if err != nil {
		return 0, nil, err
	}
	return target, wiped, nil
}

// ForceWipe wipes the chosen row outright and reseeds it with card,
// returning the wiped cards. The engine only takes this path when
// MustForceWipe is true, but the table does not enforce that itself.
func (t *Table) ForceWipe(card Card, index int) ([]Card, error) {
	if index < 0 || index >= NumRows {
		return nil, fmt.Errorf("row %d: %w", index, ErrInvalidRowIndex)
	}
	return t.rows[index].ForceWipe(card), nil
}

// Snapshot returns a deep value copy of the table. Exploratory queries
// (the forced-choice preview) run against a snapshot so they can never
// alias or mutate the live rows.
func (t *Table) Snapshot() *Table {
	snap := &Table{}
	for i, row := range t.rows {
		snap.rows[i] = &Row{cards: row.Cards()}
	}
	return snap
}

func (t *Table) String() string {
	lines := make([]string, NumRows)
	for i, row := range t.rows {
		lines[i] = fmt.Sprintf("Row %d: %s", i+1, row)
	}
	return strings.Join(lines, "\n")
}
