package game

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/fivetakes/fivetakes/internal/log"
)

// Config holds construction options for a Game.
type Config struct {
	Rand        *rand.Rand      // randomness source; nil for a time-seeded one
	TargetScore int             // game-over threshold; 0 for the standard 50
	NoShuffle   bool            // keep the deck ordered (deterministic tests)
	Logger      log.EventLogger // event sink; nil for an in-memory logger
}

// State is a read-only snapshot of the game's lifecycle position.
type State struct {
	RoundNumber int
	TurnNumber  int
	Over        bool
	Winner      *Player // set only once Over
}

// TurnResult records one player's outcome within a resolved turn.
type TurnResult struct {
	Player   *Player
	Card     Card
	RowIndex int
	Wiped    []Card // nil when the placement wiped nothing
}

// Score is one row of the scoreboard.
type Score struct {
	Name       string
	RoundScore int
	TotalScore int
}

// ForcedChoice identifies a player whose selected card would force a wipe
// this turn, in resolution order.
type ForcedChoice struct {
	Player *Player
	Card   Card
}

// Game orchestrates the round lifecycle, turn resolution, and game-end
// detection. One Game is a fully owned, single-threaded unit of state:
// operations must not run concurrently.
type Game struct {
	ID uuid.UUID

	players     []*Player
	deck        *Deck
	table       *Table
	state       State
	turnResults []TurnResult
	targetScore int
	logger      log.EventLogger
}

// NewGame creates a game for the given player roster. Names are validated
// per the rules (3-10 players, trimmed, unique) before any player exists.
func NewGame(names []string, cfg Config) (*Game, error) {
	if err := ValidatePlayerCount(len(names)); err != nil {
		return nil, err
	}
	if err := ValidatePlayerNames(names); err != nil {
		return nil, err
	}

	players := make([]*Player, 0, len(names))
	for _, name := range names {
		p, err := NewPlayer(name)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	target := cfg.TargetScore
	if target == 0 {
		target = TargetScore
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	return &Game{
		ID:          uuid.New(),
		players:     players,
		deck:        newDeck(cfg.Rand, cfg.NoShuffle),
		targetScore: target,
		logger:      logger,
	}, nil
}

// --- Query surface ---

// Players returns the seating-ordered player list. The slice is a copy;
// the players are live.
func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

// Table returns the current table, or nil before the first round.
func (g *Game) Table() *Table { return g.table }

// State returns a snapshot of the lifecycle state.
func (g *Game) State() State { return g.state }

// TurnResults returns the results of the last resolved turn.
func (g *Game) TurnResults() []TurnResult {
	return append([]TurnResult(nil), g.turnResults...)
}

// Scores returns the scoreboard in seating order.
func (g *Game) Scores() []Score {
	scores := make([]Score, 0, len(g.players))
	for _, p := range g.players {
		scores = append(scores, Score{Name: p.name, RoundScore: p.roundScore, TotalScore: p.totalScore})
	}
	return scores
}

// PlayerByName finds a player by trimmed name.
func (g *Game) PlayerByName(name string) (*Player, bool) {
	for _, p := range g.players {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

// Events returns everything recorded so far.
func (g *Game) Events() []log.GameEvent { return g.logger.Events() }

// --- Command surface ---

// StartRound begins a new round: resets round scores and selections,
// rebuilds and reshuffles the deck, seeds a fresh table with four cards
// (ascending), and deals a full hand to every player.
func (g *Game) StartRound() error {
	g.state.RoundNumber++
	g.state.TurnNumber = 0
	g.turnResults = nil

	for _, p := range g.players {
		p.ResetRound()
		p.ClearSelection()
		p.forcedRow = -1
		p.hand = nil
	}

	g.deck.Reset()
	g.logger.Log(log.NewRoundStartEvent(g.state.RoundNumber))

	seeds, err := g.deck.DealMany(NumRows)
	if err != nil {
		return err
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i].Less(seeds[j]) })
	table, err := NewTable(seeds)
	if err != nil {
		return err
	}
	g.table = table
	g.logger.Log(log.NewSeedRowsEvent(g.state.RoundNumber, cardStrings(seeds)))

	for _, p := range g.players {
		cards, err := g.deck.DealMany(CardsPerPlayer)
		if err != nil {
			return err
		}
		p.Deal(cards)
		g.logger.Log(log.NewDealEvent(g.state.RoundNumber, p.name, len(cards)))
	}
	return nil
}

// SelectFor records a player's selection for the pending turn. This is the
// only sanctioned path to mutate a selection from outside.
func (g *Game) SelectFor(player *Player, card Card) error {
	if err := ValidateSelection(player, card); err != nil {
		return err
	}
	return player.Select(card)
}

// AllSelected reports whether every player has a pending selection.
func (g *Game) AllSelected() bool { return AllSelected(g.players) }

// SetForcedRowChoice pre-registers the row a player will wipe if their
// selected card forces a wipe this turn. The override is consumed by the
// next ResolveTurn and cleared afterwards whether or not it was used.
func (g *Game) SetForcedRowChoice(player *Player, rowIndex int) error {
	if rowIndex < 0 || rowIndex >= NumRows {
		return fmt.Errorf("row %d: %w", rowIndex, ErrInvalidRowIndex)
	}
	player.forcedRow = rowIndex
	return nil
}

// PlayersNeedingForcedChoice simulates the pending turn against a snapshot
// of the table and returns the players whose selected card would force a
// wipe, in resolution order. Normal placements mutate the snapshot exactly
// as resolution will; a simulated forced wipe does not, since the chosen
// row is unknown at preview time. That can over-report a later borderline
// player, which is harmless: their recorded override is simply never
// consumed.
func (g *Game) PlayersNeedingForcedChoice() []ForcedChoice {
	if g.table == nil {
		return nil
	}
	snap := g.table.Snapshot()
	var forced []ForcedChoice
	for _, p := range SortBySelectedCard(g.players) {
		card, _ := p.SelectedCard()
		if snap.MustForceWipe(card) {
			forced = append(forced, ForcedChoice{Player: p, Card: card})
			continue
		}
		snap.Place(card)
	}
	return forced
}

// ResolveTurn plays every pending selection in ascending card order.
// Sequencing is causally significant: each player sees the table as
// already mutated by the players before them in the same turn. Returns
// the ordered per-player results.
func (g *Game) ResolveTurn() ([]TurnResult, error) {
	if !g.AllSelected() {
		return nil, fmt.Errorf("resolve turn: %w", ErrNotAllSelected)
	}

	g.state.TurnNumber++
	g.turnResults = nil
	round, turn := g.state.RoundNumber, g.state.TurnNumber

	for _, p := range SortBySelectedCard(g.players) {
		card, err := p.PlaySelected()
		if err != nil {
			return nil, err
		}
		g.logger.Log(log.NewPlayEvent(round, turn, p.name, card.String()))

		var rowIndex int
		var wiped []Card
		if g.table.MustForceWipe(card) {
			rowIndex = 0 // default when no override was recorded
			if p.forcedRow >= 0 {
				rowIndex = p.forcedRow
				p.forcedRow = -1
			}
			wiped, err = g.table.ForceWipe(card, rowIndex)
			if err != nil {
				return nil, err
			}
			g.logger.Log(log.NewForcedWipeEvent(round, turn, p.name, card.String(), rowIndex, cardStrings(wiped), PenaltyPoints(wiped)))
		} else {
			rowIndex, wiped, err = g.table.Place(card)
			if err != nil {
				return nil, err
			}
			g.logger.Log(log.NewPlaceEvent(round, turn, p.name, card.String(), rowIndex))
			if len(wiped) > 0 {
				g.logger.Log(log.NewWipeEvent(round, turn, p.name, rowIndex, cardStrings(wiped), PenaltyPoints(wiped)))
			}
		}

		if len(wiped) > 0 {
			points := PenaltyPoints(wiped)
			if err := p.CreditPenalty(points); err != nil {
				return nil, err
			}
			g.logger.Log(log.NewPenaltyEvent(round, turn, p.name, points, p.roundScore, p.totalScore))
		}

		g.turnResults = append(g.turnResults, TurnResult{Player: p, Card: card, RowIndex: rowIndex, Wiped: wiped})
	}

	// Unconsumed overrides must not leak into later turns.
	for _, p := range g.players {
		p.forcedRow = -1
	}

	g.logger.Log(log.NewTurnResolvedEvent(round, turn))
	if g.RoundOver() {
		g.logger.Log(log.NewRoundOverEvent(round))
	}
	return g.TurnResults(), nil
}

// RoundOver reports whether every player's hand is empty.
func (g *Game) RoundOver() bool { return IsRoundOver(g.players) }

// CheckGameEnd freezes the over-flag and winner once any player's total
// exceeds the target. Idempotent: once over, the recorded winner never
// changes.
func (g *Game) CheckGameEnd() (bool, error) {
	if g.state.Over {
		return true, nil
	}
	if !IsGameOver(g.players, g.targetScore) {
		return false, nil
	}
	winner, err := Winner(g.players)
	if err != nil {
		return false, err
	}
	g.state.Over = true
	g.state.Winner = winner
	g.logger.Log(log.NewGameOverEvent(g.state.RoundNumber, winner.name))
	return true, nil
}

func cardStrings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
